package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/taskflowhq/taskflow/internal/config"
	"github.com/taskflowhq/taskflow/internal/taskdb"
	"github.com/taskflowhq/taskflow/internal/ui"
	"github.com/taskflowhq/taskflow/session"
	"github.com/taskflowhq/taskflow/tracker"
)

// app wires the store to its config, database, and acting user for the
// duration of one command.
type app struct {
	cfg   *config.Config
	db    *taskdb.DB
	store *tracker.Store
	user  session.User
}

func openApp() (*app, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, err
	}

	db, err := taskdb.Open(cfg.Database.Path)
	if err != nil {
		return nil, err
	}

	store := tracker.NewStore(tracker.Options{Remote: remoteFromConfig(cfg)})

	projects, err := db.LoadProjects()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("load projects: %w", err)
	}
	tasks, err := db.LoadTasks()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	store.Seed(projects, tasks)

	store.Subscribe(func(change tracker.Change) {
		if err := db.Apply(change); err != nil {
			fmt.Fprintf(os.Stderr, "taskflow: persist change: %v\n", err)
		}
	})

	return &app{
		cfg:   cfg,
		db:    db,
		store: store,
		user:  userFromConfig(cfg),
	}, nil
}

func (a *app) Close() error {
	return a.db.Close()
}

// resolveID expands an id prefix to a full entity id.
func (a *app) resolveID(prefix string) (string, error) {
	return a.store.IDIndex().Resolve(prefix)
}

func (a *app) highlight(id string) string {
	lengths := a.store.IDIndex().PrefixLengths()
	return ui.HighlightID(id, ui.PrefixLength(lengths, id))
}

func remoteFromConfig(cfg *config.Config) tracker.Remote {
	if cfg.Remote.LatencyMS <= 0 && cfg.Remote.FailEvery <= 0 {
		return nil
	}
	return &tracker.SimulatedRemote{
		Latency:   time.Duration(cfg.Remote.LatencyMS) * time.Millisecond,
		FailEvery: cfg.Remote.FailEvery,
	}
}

func userFromConfig(cfg *config.Config) session.User {
	user := session.User{
		ID:    cfg.User.ID,
		Name:  cfg.User.Name,
		Email: cfg.User.Email,
		Role:  session.Role(cfg.User.Role),
	}
	if user.ID == "" {
		user.ID = "local"
	}
	if !user.Role.IsValid() {
		user.Role = session.RoleMember
	}
	return user
}

func encodeJSONToStdout(value any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
