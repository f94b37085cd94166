// Package prompt provides validation of user prompt submissions.
package prompt

import (
	"context"
	"fmt"
	"regexp"
	"slices"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	"github.com/hookguard/hookguard/internal/validator"
	"github.com/hookguard/hookguard/pkg/config"
	"github.com/hookguard/hookguard/pkg/hook"
	"github.com/hookguard/hookguard/pkg/logger"
)

// ShortPromptContext is injected into the conversation when a prompt is
// shorter than the configured minimum length.
const ShortPromptContext = "Note: This is a very short prompt. " +
	"Consider providing more context for better results."

// Validator scans prompt text for sensitive patterns and enforces length
// boundaries. Pattern checks run first; the first matching pattern blocks
// the prompt and suppresses all later checks.
type Validator struct {
	validator.BaseValidator
	config   *config.PromptValidatorConfig
	patterns []Pattern
}

// NewValidator creates a prompt Validator from configuration.
func NewValidator(log logger.Logger, cfg *config.PromptValidatorConfig) *Validator {
	return &Validator{
		BaseValidator: *validator.NewBaseValidator("prompt", log),
		config:        cfg,
		patterns:      buildPatterns(log, cfg),
	}
}

// buildPatterns assembles the effective pattern list: defaults minus
// disabled names, plus compiled custom patterns.
func buildPatterns(log logger.Logger, cfg *config.PromptValidatorConfig) []Pattern {
	var disabled []string
	if cfg != nil {
		disabled = cfg.DisabledPatterns
	}

	patterns := make([]Pattern, 0)

	for _, p := range DefaultPatterns() {
		if slices.Contains(disabled, p.Name) {
			continue
		}

		patterns = append(patterns, p)
	}

	if cfg == nil {
		return patterns
	}

	for _, custom := range cfg.CustomPatterns {
		re, err := regexp.Compile(custom.Regex)
		if err != nil {
			log.Error("invalid custom prompt pattern",
				"name", custom.Name,
				"error", err,
			)

			continue
		}

		patterns = append(patterns, Pattern{
			Name:        custom.Name,
			Description: custom.Description,
			Regex:       re,
		})
	}

	return patterns
}

// Validate checks the prompt against patterns and length boundaries.
func (v *Validator) Validate(_ context.Context, hookCtx *hook.Context) *validator.Result {
	log := v.Logger()
	prompt := hookCtx.Prompt

	severity := config.SeverityError
	if v.config != nil {
		severity = v.config.GetSeverity()
	}

	for _, p := range v.patterns {
		if p.Regex.MatchString(prompt) {
			log.Info("sensitive pattern matched", "pattern", p.Name)

			msg := "Prompt contains potentially sensitive information: " + p.Description

			if !severity.ShouldBlock() {
				return validator.Warn(msg).AddDetail("pattern", p.Name)
			}

			return validator.Fail(msg).AddDetail("pattern", p.Name)
		}
	}

	length := utf8.RuneCountInString(prompt)
	maxLength := v.config.GetMaxLength()
	minLength := v.config.GetMinLength()

	if length > maxLength {
		log.Info("prompt too long", "length", length, "max", maxLength)

		msg := fmt.Sprintf("Prompt is too long (>%d characters)", maxLength)

		if !severity.ShouldBlock() {
			return validator.Warn(msg).AddDetail("length", humanize.Comma(int64(length)))
		}

		return validator.Fail(msg).AddDetail("length", humanize.Comma(int64(length)))
	}

	if length < minLength {
		log.Debug("prompt below minimum length", "length", length, "min", minLength)

		return validator.Augment(ShortPromptContext)
	}

	return validator.Pass()
}

// Ensure Validator implements validator.Validator
var _ validator.Validator = (*Validator)(nil)
