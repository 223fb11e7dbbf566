package main

import (
	"testing"
	"time"

	"github.com/taskflowhq/taskflow/internal/config"
	"github.com/taskflowhq/taskflow/session"
	"github.com/taskflowhq/taskflow/tracker"
)

func TestUserFromConfigDefaults(t *testing.T) {
	user := userFromConfig(&config.Config{})

	if user.ID != "local" {
		t.Errorf("expected default user id local, got %q", user.ID)
	}
	if user.Role != session.RoleMember {
		t.Errorf("expected default role member, got %q", user.Role)
	}
}

func TestUserFromConfigExplicit(t *testing.T) {
	user := userFromConfig(&config.Config{
		User: config.User{ID: "alex", Name: "Alex", Email: "alex@example.com", Role: "manager"},
	})

	if user.ID != "alex" || user.Role != session.RoleManager {
		t.Fatalf("unexpected user %+v", user)
	}
}

func TestRemoteFromConfig(t *testing.T) {
	if remote := remoteFromConfig(&config.Config{}); remote != nil {
		t.Fatalf("expected nil remote for zero config, got %T", remote)
	}

	remote := remoteFromConfig(&config.Config{
		Remote: config.Remote{LatencyMS: 5, FailEvery: 3},
	})
	simulated, ok := remote.(*tracker.SimulatedRemote)
	if !ok {
		t.Fatalf("expected SimulatedRemote, got %T", remote)
	}
	if simulated.Latency != 5*time.Millisecond || simulated.FailEvery != 3 {
		t.Fatalf("unexpected remote settings %+v", simulated)
	}
}
