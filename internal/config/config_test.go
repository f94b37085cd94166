package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	internalconfig "github.com/hookguard/hookguard/internal/config"
	"github.com/hookguard/hookguard/pkg/config"
	"github.com/hookguard/hookguard/pkg/logger"
)

func TestConfig(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Config Loader Suite")
}

func writeConfigFile(dir, content string) string {
	path := filepath.Join(dir, "config.toml")
	Expect(os.WriteFile(path, []byte(content), 0o600)).To(Succeed())

	return path
}

var _ = Describe("Loader", func() {
	var tmpDir string

	BeforeEach(func() {
		tmpDir = GinkgoT().TempDir()
	})

	newLoader := func(path string) *internalconfig.Loader {
		return internalconfig.NewLoader(logger.NewNoOpLogger(), path)
	}

	Describe("defaults", func() {
		It("loads built-in defaults without any file", func() {
			cfg, err := newLoader("").Load()

			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Version).To(Equal(config.CurrentConfigVersion))
			Expect(cfg.Global.GetDefaultTimeout()).To(Equal(10 * time.Second))
			Expect(cfg.GetShell().IsEnabled()).To(BeTrue())
			Expect(cfg.GetShell().GetSeverity()).To(Equal(config.SeverityError))
			Expect(cfg.GetFormat().GetSeverity()).To(Equal(config.SeverityWarning))
			Expect(cfg.GetPrompt().GetMaxLength()).To(Equal(10000))
			Expect(cfg.GetPrompt().GetMinLength()).To(Equal(10))
			Expect(cfg.GetStop().GetCompletionMessage()).To(
				Equal("Claude Code execution completed successfully"),
			)
		})
	})

	Describe("file layer", func() {
		It("overrides defaults from an explicit TOML file", func() {
			path := writeConfigFile(tmpDir, `
[global]
default_timeout = "30s"

[validators.shell]
enabled = false
severity = "warning"
extra_commands = ["dd if="]

[validators.prompt]
max_length = 500
`)

			cfg, err := newLoader(path).Load()

			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Global.GetDefaultTimeout()).To(Equal(30 * time.Second))
			Expect(cfg.GetShell().IsEnabled()).To(BeFalse())
			Expect(cfg.GetShell().GetSeverity()).To(Equal(config.SeverityWarning))
			Expect(cfg.GetShell().GetDangerousCommands()).To(ContainElement("dd if="))
			Expect(cfg.GetShell().GetDangerousCommands()).To(ContainElement("rm -rf"))
			Expect(cfg.GetPrompt().GetMaxLength()).To(Equal(500))
		})

		It("keeps defaults for sections the file does not mention", func() {
			path := writeConfigFile(tmpDir, `
[validators.shell]
enabled = false
`)

			cfg, err := newLoader(path).Load()

			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.GetFile().IsEnabled()).To(BeTrue())
			Expect(cfg.GetPrompt().GetMaxLength()).To(Equal(10000))
		})

		It("fails when the explicit file does not exist", func() {
			_, err := newLoader(filepath.Join(tmpDir, "nope.toml")).Load()

			Expect(err).To(MatchError(internalconfig.ErrConfigNotFound))
		})

		It("rejects world-writable config files", func() {
			path := writeConfigFile(tmpDir, "[global]\n")
			Expect(os.Chmod(path, 0o666)).To(Succeed())

			_, err := newLoader(path).Load()

			Expect(err).To(MatchError(internalconfig.ErrWorldWritableConfig))
		})

		It("fails on malformed TOML", func() {
			path := writeConfigFile(tmpDir, "[[[not toml")

			_, err := newLoader(path).Load()

			Expect(err).To(MatchError(internalconfig.ErrInvalidTOML))
		})
	})

	Describe("environment layer", func() {
		It("overrides file values from HOOKGUARD_ variables", func() {
			path := writeConfigFile(tmpDir, `
[validators.shell]
enabled = true
`)
			GinkgoT().Setenv("HOOKGUARD_VALIDATORS_SHELL_ENABLED", "false")
			GinkgoT().Setenv("HOOKGUARD_VALIDATORS_PROMPT_MAX_LENGTH", "42")
			GinkgoT().Setenv("HOOKGUARD_GLOBAL_DEFAULT_TIMEOUT", "5s")

			cfg, err := newLoader(path).Load()

			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.GetShell().IsEnabled()).To(BeFalse())
			Expect(cfg.GetPrompt().GetMaxLength()).To(Equal(42))
			Expect(cfg.Global.GetDefaultTimeout()).To(Equal(5 * time.Second))
		})
	})

	Describe("type decoding", func() {
		It("decodes severity strings and duration strings", func() {
			path := writeConfigFile(tmpDir, `
[validators.file]
severity = "warning"

[validators.format]
timeout = "3s"
`)

			cfg, err := newLoader(path).Load()

			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.GetFile().GetSeverity()).To(Equal(config.SeverityWarning))
			Expect(cfg.GetFormat().GetTimeout(time.Minute)).To(Equal(3 * time.Second))
		})

		It("rejects invalid severity values", func() {
			path := writeConfigFile(tmpDir, `
[validators.shell]
severity = "fatal"
`)

			_, err := newLoader(path).Load()

			Expect(err).To(HaveOccurred())
		})
	})
})

var _ = Describe("Writer", func() {
	It("writes a config that the loader reads back", func() {
		tmpDir := GinkgoT().TempDir()
		path := filepath.Join(tmpDir, "nested", "config.toml")

		cfg := internalconfig.DefaultConfig()
		cfg.Validators.Prompt.DisabledPatterns = []string{"email"}

		Expect(internalconfig.NewWriter().Write(path, cfg)).To(Succeed())

		info, err := os.Stat(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(info.Mode().Perm()).To(Equal(os.FileMode(0o600)))

		loaded, err := internalconfig.NewLoader(logger.NewNoOpLogger(), path).Load()
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded.GetPrompt().DisabledPatterns).To(Equal([]string{"email"}))
		Expect(loaded.GetStop().GetCompletionMessage()).To(
			Equal("Claude Code execution completed successfully"),
		)
	})

	It("marshals severity as its lowercase name", func() {
		data, err := internalconfig.NewWriter().Marshal(internalconfig.DefaultConfig())

		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(ContainSubstring(`severity = 'error'`))
		Expect(string(data)).To(ContainSubstring(`default_timeout = '10s'`))
	})
})
