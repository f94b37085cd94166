package config_test

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/hookguard/hookguard/pkg/config"
)

func TestConfig(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Config Suite")
}

var _ = Describe("ValidatorConfig", func() {
	It("is enabled by default", func() {
		cfg := &config.ValidatorConfig{}
		Expect(cfg.IsEnabled()).To(BeTrue())
	})

	It("can be disabled explicitly", func() {
		disabled := false
		cfg := &config.ValidatorConfig{Enabled: &disabled}
		Expect(cfg.IsEnabled()).To(BeFalse())
	})

	It("defaults severity to error", func() {
		cfg := &config.ValidatorConfig{}
		Expect(cfg.GetSeverity()).To(Equal(config.SeverityError))
		Expect(cfg.GetSeverity().ShouldBlock()).To(BeTrue())
	})

	It("honors warning severity", func() {
		cfg := &config.ValidatorConfig{Severity: config.SeverityWarning}
		Expect(cfg.GetSeverity().ShouldBlock()).To(BeFalse())
	})
})

var _ = Describe("ShellValidatorConfig", func() {
	It("falls back to the built-in dangerous command list", func() {
		var cfg *config.ShellValidatorConfig
		Expect(cfg.GetDangerousCommands()).To(Equal(config.DefaultDangerousCommands))
	})

	It("replaces the list when configured", func() {
		cfg := &config.ShellValidatorConfig{DangerousCommands: []string{"dd if="}}
		Expect(cfg.GetDangerousCommands()).To(Equal([]string{"dd if="}))
	})

	It("appends extra commands to the defaults", func() {
		cfg := &config.ShellValidatorConfig{ExtraCommands: []string{"shutdown"}}
		cmds := cfg.GetDangerousCommands()
		Expect(cmds).To(ContainElements("rm -rf", "sudo", "shutdown"))
	})
})

var _ = Describe("FileValidatorConfig", func() {
	It("falls back to the built-in sensitive path list", func() {
		var cfg *config.FileValidatorConfig
		Expect(cfg.GetSensitivePaths()).To(Equal(config.DefaultSensitivePaths))
	})

	It("has no glob patterns by default", func() {
		var cfg *config.FileValidatorConfig
		Expect(cfg.GetSensitiveGlobs()).To(BeEmpty())
	})
})

var _ = Describe("PromptValidatorConfig", func() {
	It("uses the documented length boundaries by default", func() {
		var cfg *config.PromptValidatorConfig
		Expect(cfg.GetMaxLength()).To(Equal(10000))
		Expect(cfg.GetMinLength()).To(Equal(10))
	})

	It("honors overridden boundaries", func() {
		maxLen, minLen := 500, 3
		cfg := &config.PromptValidatorConfig{MaxLength: &maxLen, MinLength: &minLen}
		Expect(cfg.GetMaxLength()).To(Equal(500))
		Expect(cfg.GetMinLength()).To(Equal(3))
	})
})

var _ = Describe("FormatValidatorConfig", func() {
	It("uses the fallback timeout when unset", func() {
		var cfg *config.FormatValidatorConfig
		Expect(cfg.GetTimeout(10 * time.Second)).To(Equal(10 * time.Second))
	})

	It("prefers its own timeout when set", func() {
		cfg := &config.FormatValidatorConfig{Timeout: config.Duration(2 * time.Second)}
		Expect(cfg.GetTimeout(10 * time.Second)).To(Equal(2 * time.Second))
	})

	It("formats both language families by default", func() {
		var cfg *config.FormatValidatorConfig
		Expect(cfg.IsPythonEnabled()).To(BeTrue())
		Expect(cfg.IsJavaScriptEnabled()).To(BeTrue())
	})

	It("resolves formatter binaries from PATH by default", func() {
		var cfg *config.FormatValidatorConfig
		Expect(cfg.GetBlackPath()).To(Equal("black"))
		Expect(cfg.GetPrettierPath()).To(Equal("prettier"))
	})
})

var _ = Describe("StopValidatorConfig", func() {
	It("uses the default completion message", func() {
		var cfg *config.StopValidatorConfig
		Expect(cfg.GetCompletionMessage()).
			To(Equal("Claude Code execution completed successfully"))
	})

	It("defaults to enabled", func() {
		var cfg config.StopValidatorConfig
		Expect(cfg.IsEnabled()).To(BeTrue())
	})

	It("can be disabled", func() {
		disabled := false
		cfg := config.StopValidatorConfig{Enabled: &disabled}
		Expect(cfg.IsEnabled()).To(BeFalse())
	})
})

var _ = Describe("Duration", func() {
	It("parses duration strings", func() {
		var d config.Duration
		Expect(d.UnmarshalText([]byte("5s"))).To(Succeed())
		Expect(d.ToDuration()).To(Equal(5 * time.Second))
	})

	It("rejects negative durations", func() {
		var d config.Duration
		Expect(d.UnmarshalText([]byte("-1s"))).To(MatchError(ContainSubstring("non-negative")))
	})

	It("round-trips through text", func() {
		d := config.Duration(90 * time.Second)
		text, err := d.MarshalText()
		Expect(err).ToNot(HaveOccurred())
		Expect(string(text)).To(Equal("1m30s"))
	})
})
