package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"hookguard": mainFunc,
	})
}

// mainFunc wraps the CLI for testscript execution.
func mainFunc() {
	// Reset flags for each invocation (Cobra reuses the same command)
	hookType = ""
	debugMode = false
	traceMode = false
	configPath = ""
	forceFlag = false
	outcomeExitCode = 0

	os.Exit(mainWithExitCode())
}

// setupTestEnv points HOME at the work directory so the logger can create
// its log file there.
func setupTestEnv(env *testscript.Env) error {
	claudeHooksDir := filepath.Join(env.WorkDir, ".claude", "hooks")
	if err := os.MkdirAll(claudeHooksDir, 0o755); err != nil {
		return err
	}

	env.Setenv("HOME", env.WorkDir)

	return nil
}

func TestScriptHooks(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   "testdata/scripts/hooks",
		Setup: setupTestEnv,
	})
}

func TestScriptConfig(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   "testdata/scripts/config",
		Setup: setupTestEnv,
	})
}
