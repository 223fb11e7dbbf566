package testsupport

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/taskflowhq/taskflow/tracker"
)

var (
	buildOnce    sync.Once
	taskflowPath string
	buildErr     error
)

// BuildTaskflow builds the taskflow binary once and returns its path.
func BuildTaskflow(t testing.TB) string {
	t.Helper()

	buildOnce.Do(func() {
		moduleRoot, err := findModuleRoot()
		if err != nil {
			buildErr = err
			return
		}

		binDir, err := os.MkdirTemp("", "taskflow-bin-")
		if err != nil {
			buildErr = err
			return
		}

		taskflowPath = filepath.Join(binDir, "taskflow")
		cmd := exec.Command("go", "build", "-o", taskflowPath, "./cmd/taskflow")
		cmd.Dir = moduleRoot
		output, err := cmd.CombinedOutput()
		if err != nil {
			buildErr = fmt.Errorf("build taskflow: %w: %s", err, strings.TrimSpace(string(output)))
		}
	})

	if buildErr != nil {
		t.Fatalf("%v", buildErr)
	}

	return taskflowPath
}

// SetupScriptEnv configures common environment variables for testscript.
func SetupScriptEnv(t testing.TB, env *testscript.Env) error {
	t.Helper()

	env.Setenv("TASKFLOW", BuildTaskflow(t))

	homeDir := filepath.Join(env.WorkDir, "home")
	if err := EnsureHomeDirs(homeDir); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	env.Setenv("NO_COLOR", "1")
	return nil
}

// CmdEnvSet stores the trimmed contents of a file in an env var.
func CmdEnvSet(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("envset does not support negation")
	}
	if len(args) != 2 {
		ts.Fatalf("usage: envset VAR FILE")
	}

	value := strings.TrimSpace(ts.ReadFile(args[1]))
	ts.Setenv(args[0], value)
}

// CmdProjectID finds a project by name in a JSON listing and stores its id in
// an env var.
func CmdProjectID(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("projectid does not support negation")
	}
	if len(args) != 3 {
		ts.Fatalf("usage: projectid FILE NAME VAR")
	}

	var projects []tracker.Project
	data := ts.ReadFile(args[0])
	if err := json.Unmarshal([]byte(data), &projects); err != nil {
		ts.Fatalf("parse project list: %v", err)
	}

	for _, project := range projects {
		if project.Name == args[1] {
			ts.Setenv(args[2], project.ID)
			return
		}
	}

	ts.Fatalf("project named %q not found", args[1])
}

// CmdTaskID finds a task by title in a JSON listing and stores its id in an
// env var.
func CmdTaskID(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("taskid does not support negation")
	}
	if len(args) != 3 {
		ts.Fatalf("usage: taskid FILE TITLE VAR")
	}

	var tasks []tracker.Task
	data := ts.ReadFile(args[0])
	if err := json.Unmarshal([]byte(data), &tasks); err != nil {
		ts.Fatalf("parse task list: %v", err)
	}

	for _, task := range tasks {
		if task.Title == args[1] {
			ts.Setenv(args[2], task.ID)
			return
		}
	}

	ts.Fatalf("task titled %q not found", args[1])
}

func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find module root (go.mod)")
		}
		dir = parent
	}
}
