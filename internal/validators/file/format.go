package file

import (
	"context"
	"time"
	"unicode"

	execpkg "github.com/hookguard/hookguard/internal/exec"
	"github.com/hookguard/hookguard/internal/formatters"
	"github.com/hookguard/hookguard/internal/validator"
	"github.com/hookguard/hookguard/pkg/config"
	"github.com/hookguard/hookguard/pkg/hook"
	"github.com/hookguard/hookguard/pkg/logger"
)

// FormatValidator formats freshly written code files in place. It never
// blocks: formatter failures and missing tools are reported as warnings.
type FormatValidator struct {
	validator.BaseValidator
	config         *config.FormatValidatorConfig
	defaultTimeout time.Duration
	formatters     []formatters.Formatter
}

// NewFormatValidator creates a FormatValidator with the standard formatter set.
func NewFormatValidator(
	log logger.Logger,
	cfg *config.FormatValidatorConfig,
	defaultTimeout time.Duration,
	runner execpkg.CommandRunner,
	checker execpkg.ToolChecker,
) *FormatValidator {
	fs := make([]formatters.Formatter, 0, 2)

	if cfg.IsPythonEnabled() {
		fs = append(fs, formatters.NewBlackFormatter(runner, checker, cfg.GetBlackPath()))
	}

	if cfg.IsJavaScriptEnabled() {
		fs = append(fs, formatters.NewPrettierFormatter(runner, checker, cfg.GetPrettierPath()))
	}

	return NewFormatValidatorWithFormatters(log, cfg, defaultTimeout, fs...)
}

// NewFormatValidatorWithFormatters creates a FormatValidator with custom
// formatters (for testing).
func NewFormatValidatorWithFormatters(
	log logger.Logger,
	cfg *config.FormatValidatorConfig,
	defaultTimeout time.Duration,
	fs ...formatters.Formatter,
) *FormatValidator {
	return &FormatValidator{
		BaseValidator:  *validator.NewBaseValidator("auto-format", log),
		config:         cfg,
		defaultTimeout: defaultTimeout,
		formatters:     fs,
	}
}

// Validate formats the written file with the first matching formatter.
func (v *FormatValidator) Validate(
	_ context.Context,
	hookCtx *hook.Context,
) *validator.Result {
	log := v.Logger()

	path := hookCtx.GetFilePath()
	if path == "" {
		log.Debug("Empty file path, skipping formatting")
		return validator.Pass()
	}

	timeout := v.config.GetTimeout(v.defaultTimeout)

	for _, f := range v.formatters {
		if !f.CanFormat(path) {
			continue
		}

		result := f.Format(path, timeout)

		switch {
		case result.Skipped:
			log.Debug("formatter skipped", "formatter", f.Name(), "reason", result.SkipReason)

			return validator.Warn(
				"⚠️ " + displayName(f.Name()) + " formatter not available for: " + path,
			)
		case result.Succeeded():
			log.Info("file formatted", "formatter", f.Name(), "path", path)

			return validator.PassWithMessage("✅ Auto-formatted: " + path)
		default:
			log.Info("formatter failed",
				"formatter", f.Name(),
				"path", path,
				"output", result.RawOut,
			)

			return validator.Warn("⚠️ Failed to format: " + path)
		}
	}

	return validator.Pass()
}

// displayName capitalizes the first letter of a formatter name for messages.
func displayName(name string) string {
	runes := []rune(name)
	if len(runes) == 0 {
		return name
	}

	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}

// Ensure FormatValidator implements validator.Validator
var _ validator.Validator = (*FormatValidator)(nil)
