// Package factory provides factories for creating validators from configuration.
package factory

import (
	"github.com/hookguard/hookguard/internal/exec"
	"github.com/hookguard/hookguard/internal/validator"
	filevalidators "github.com/hookguard/hookguard/internal/validators/file"
	promptvalidators "github.com/hookguard/hookguard/internal/validators/prompt"
	shellvalidators "github.com/hookguard/hookguard/internal/validators/shell"
	stopvalidators "github.com/hookguard/hookguard/internal/validators/stop"
	"github.com/hookguard/hookguard/pkg/config"
	"github.com/hookguard/hookguard/pkg/hook"
	"github.com/hookguard/hookguard/pkg/logger"
)

// ValidatorWithPredicate pairs a validator with its registration predicate.
type ValidatorWithPredicate struct {
	Validator validator.Validator
	Predicate validator.Predicate
}

// ValidatorFactory creates validators from configuration.
type ValidatorFactory struct {
	log     logger.Logger
	runner  exec.CommandRunner
	checker exec.ToolChecker
}

// NewValidatorFactory creates a ValidatorFactory backed by the real command
// runner and tool checker.
func NewValidatorFactory(log logger.Logger, defaultTimeout config.Duration) *ValidatorFactory {
	return &ValidatorFactory{
		log:     log,
		runner:  exec.NewCommandRunner(defaultTimeout.ToDuration()),
		checker: exec.NewToolChecker(),
	}
}

// CreateAll creates every enabled validator with its predicate, in
// deterministic registration order.
func (f *ValidatorFactory) CreateAll(cfg *config.Config) []ValidatorWithPredicate {
	var all []ValidatorWithPredicate

	all = append(all, f.createShellValidators(cfg)...)
	all = append(all, f.createFileValidators(cfg)...)
	all = append(all, f.createPromptValidators(cfg)...)
	all = append(all, f.createStopValidators(cfg)...)

	return all
}

func (f *ValidatorFactory) createShellValidators(cfg *config.Config) []ValidatorWithPredicate {
	shellCfg := cfg.GetShell()
	if shellCfg != nil && !shellCfg.IsEnabled() {
		return nil
	}

	return []ValidatorWithPredicate{{
		Validator: shellvalidators.NewDangerousCommandValidator(f.log, shellCfg),
		Predicate: validator.And(
			validator.EventTypeIs(hook.EventTypePreToolUse),
			validator.ToolTypeIs(hook.ToolTypeBash),
		),
	}}
}

func (f *ValidatorFactory) createFileValidators(cfg *config.Config) []ValidatorWithPredicate {
	var validators []ValidatorWithPredicate

	fileCfg := cfg.GetFile()
	if fileCfg == nil || fileCfg.IsEnabled() {
		validators = append(validators, ValidatorWithPredicate{
			Validator: filevalidators.NewSensitiveFileValidator(f.log, fileCfg),
			Predicate: validator.And(
				validator.EventTypeIs(hook.EventTypePreToolUse),
				validator.ToolTypeIn(
					hook.ToolTypeWrite,
					hook.ToolTypeEdit,
					hook.ToolTypeMultiEdit,
				),
			),
		})
	}

	formatCfg := cfg.GetFormat()
	if formatCfg == nil || formatCfg.IsEnabled() {
		validators = append(validators, ValidatorWithPredicate{
			Validator: filevalidators.NewFormatValidator(
				f.log,
				formatCfg,
				cfg.Global.GetDefaultTimeout(),
				f.runner,
				f.checker,
			),
			Predicate: validator.And(
				validator.EventTypeIs(hook.EventTypePostToolUse),
				validator.ToolTypeIn(
					hook.ToolTypeWrite,
					hook.ToolTypeEdit,
					hook.ToolTypeMultiEdit,
				),
			),
		})
	}

	return validators
}

func (f *ValidatorFactory) createPromptValidators(cfg *config.Config) []ValidatorWithPredicate {
	promptCfg := cfg.GetPrompt()
	if promptCfg != nil && !promptCfg.IsEnabled() {
		return nil
	}

	return []ValidatorWithPredicate{{
		Validator: promptvalidators.NewValidator(f.log, promptCfg),
		Predicate: validator.EventTypeIs(hook.EventTypeUserPromptSubmit),
	}}
}

func (f *ValidatorFactory) createStopValidators(cfg *config.Config) []ValidatorWithPredicate {
	stopCfg := cfg.GetStop()
	if stopCfg != nil && !stopCfg.IsEnabled() {
		return nil
	}

	return []ValidatorWithPredicate{{
		Validator: stopvalidators.NewValidator(f.log, stopCfg),
		Predicate: validator.EventTypeIs(hook.EventTypeStop),
	}}
}
