// Package main provides the CLI entry point for hookguard.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	internalconfig "github.com/hookguard/hookguard/internal/config"
	"github.com/hookguard/hookguard/internal/config/factory"
	"github.com/hookguard/hookguard/internal/dispatcher"
	"github.com/hookguard/hookguard/internal/hookresponse"
	"github.com/hookguard/hookguard/internal/parser"
	"github.com/hookguard/hookguard/pkg/config"
	"github.com/hookguard/hookguard/pkg/hook"
	"github.com/hookguard/hookguard/pkg/logger"
)

var (
	hookType   string
	debugMode  bool
	traceMode  bool
	configPath string

	// outcomeExitCode carries the hook decision out of the cobra run
	// function; cobra errors map to an internal fault instead.
	outcomeExitCode int
)

func main() {
	os.Exit(mainWithExitCode())
}

func mainWithExitCode() (exitCode int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Hook error: panic: %v\n", r)

			exitCode = hookresponse.ExitInternalError
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Hook error: %v\n", err)

		return hookresponse.ExitInternalError
	}

	return outcomeExitCode
}

var rootCmd = &cobra.Command{
	Use:   "hookguard",
	Short: "Claude Code hook decision filter",
	Long: `Claude Code hook decision filter - evaluates tool invocations, prompts,
and stop events against security and hygiene rules before Claude Code acts.`,
	RunE:              run,
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

func init() {
	rootCmd.Flags().StringVarP(
		&hookType,
		"hook-type",
		"T",
		"",
		"Hook event type (PreToolUse, PostToolUse, UserPromptSubmit, Stop); "+
			"when omitted, the payload's hook_event_name routes, "+
			"falling back to PreToolUse",
	)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&traceMode, "trace", false, "Enable trace logging")
	rootCmd.PersistentFlags().StringVarP(
		&configPath,
		"config",
		"c",
		"",
		"Path to configuration file",
	)
}

func run(_ *cobra.Command, _ []string) error {
	log, err := setupLogger()
	if err != nil {
		return errors.Wrap(err, "creating logger")
	}

	// Determine event type using the enumer-generated function. When the
	// flag is absent or invalid, the payload's hook_event_name routes.
	eventType, err := hook.EventTypeString(hookType)
	if err != nil {
		eventType = hook.EventTypeUnknown
	}

	log.Info("hook invoked",
		"eventType", eventType,
		"debug", debugMode,
		"trace", traceMode,
	)

	jsonParser := parser.NewJSONParser(os.Stdin)

	ctx, err := jsonParser.Parse(eventType)
	if err != nil {
		log.Error("input parsing failed", "error", err)
		emit(hookresponse.InternalError(err), log)

		return nil
	}

	if ctx.EventType == hook.EventTypeUnknown {
		log.Debug("no event type from flag or payload, assuming PreToolUse")

		ctx.EventType = hook.EventTypePreToolUse
	}

	log.Info("context parsed",
		"eventType", ctx.EventType,
		"tool", ctx.ToolName,
		"file", filepath.Base(ctx.GetFilePath()),
	)

	cfg, err := loadConfig(log)
	if err != nil {
		log.Error("config loading failed", "error", err)
		emit(hookresponse.InternalError(err), log)

		return nil
	}

	registry := factory.NewRegistryBuilder(log).Build(cfg)
	disp := dispatcher.NewDispatcher(registry, log)

	result := disp.Dispatch(context.Background(), ctx)

	outcome := hookresponse.Build(ctx.EventType, result)
	emit(outcome, log)

	return nil
}

// emit writes the outcome to stdout/stderr and records the exit code.
func emit(outcome *hookresponse.Outcome, log logger.Logger) {
	for _, line := range outcome.InfoLines {
		fmt.Fprintln(os.Stdout, line)
	}

	if outcome.Response != nil {
		data, err := json.Marshal(outcome.Response)
		if err != nil {
			log.Error("marshaling hook response failed", "error", err)
			fmt.Fprintln(os.Stderr, "Hook error: "+err.Error())

			outcomeExitCode = hookresponse.ExitInternalError

			return
		}

		fmt.Fprintf(os.Stdout, "%s\n", data)
	}

	for _, line := range outcome.StderrLines {
		fmt.Fprintln(os.Stderr, line)
	}

	switch outcome.ExitCode {
	case hookresponse.ExitBlock:
		log.Error("operation blocked", "stderr", outcome.StderrLines)
	case hookresponse.ExitInternalError:
		log.Error("internal fault", "stderr", outcome.StderrLines)
	default:
		log.Info("operation allowed")
	}

	outcomeExitCode = outcome.ExitCode
}

func setupLogger() (logger.Logger, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, "getting home directory")
	}

	logFile := filepath.Join(homeDir, ".claude", "hooks", "hookguard.log")

	return logger.NewFileLogger(logFile, debugMode, traceMode)
}

func loadConfig(log logger.Logger) (*config.Config, error) {
	loader := internalconfig.NewLoader(log, configPath)

	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}

	log.Debug("configuration loaded")

	return cfg, nil
}
