package factory_test

import (
	"context"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/hookguard/hookguard/internal/config/factory"
	"github.com/hookguard/hookguard/pkg/config"
	"github.com/hookguard/hookguard/pkg/hook"
	"github.com/hookguard/hookguard/pkg/logger"
)

func TestFactory(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Factory Suite")
}

func disabled() *bool {
	v := false
	return &v
}

var _ = Describe("RegistryBuilder", func() {
	var builder *factory.RegistryBuilder

	BeforeEach(func() {
		builder = factory.NewRegistryBuilder(logger.NewNoOpLogger())
	})

	It("registers all five validators by default", func() {
		registry := builder.Build(&config.Config{})

		Expect(registry.Count()).To(Equal(5))
	})

	It("builds from a nil config", func() {
		registry := builder.Build(nil)

		Expect(registry.Count()).To(Equal(5))
	})

	It("skips disabled validators", func() {
		registry := builder.Build(&config.Config{
			Validators: &config.ValidatorsConfig{
				Shell: &config.ShellValidatorConfig{
					ValidatorConfig: config.ValidatorConfig{Enabled: disabled()},
				},
				Format: &config.FormatValidatorConfig{
					ValidatorConfig: config.ValidatorConfig{Enabled: disabled()},
				},
			},
		})

		Expect(registry.Count()).To(Equal(3))
	})

	Describe("predicate wiring", func() {
		It("routes bash pre-execution to the shell validator", func() {
			reg := builder.Build(&config.Config{})

			matched := reg.FindValidators(&hook.Context{
				EventType: hook.EventTypePreToolUse,
				ToolName:  hook.ToolTypeBash,
			})

			Expect(matched).To(HaveLen(1))
			Expect(matched[0].Name()).To(Equal("dangerous-command"))
		})

		It("routes file writes to the sensitive-file validator", func() {
			reg := builder.Build(&config.Config{})

			matched := reg.FindValidators(&hook.Context{
				EventType: hook.EventTypePreToolUse,
				ToolName:  hook.ToolTypeWrite,
			})

			Expect(matched).To(HaveLen(1))
			Expect(matched[0].Name()).To(Equal("sensitive-file"))
		})

		It("routes post-write events to the auto-formatter", func() {
			reg := builder.Build(&config.Config{})

			matched := reg.FindValidators(&hook.Context{
				EventType: hook.EventTypePostToolUse,
				ToolName:  hook.ToolTypeEdit,
			})

			Expect(matched).To(HaveLen(1))
			Expect(matched[0].Name()).To(Equal("auto-format"))
		})

		It("routes prompt submissions to the prompt validator", func() {
			reg := builder.Build(&config.Config{})

			matched := reg.FindValidators(&hook.Context{
				EventType: hook.EventTypeUserPromptSubmit,
				Prompt:    "hello there, world",
			})

			Expect(matched).To(HaveLen(1))
			Expect(matched[0].Name()).To(Equal("prompt"))
		})

		It("routes stop events to the stop controller", func() {
			reg := builder.Build(&config.Config{})

			matched := reg.FindValidators(&hook.Context{
				EventType: hook.EventTypeStop,
			})

			Expect(matched).To(HaveLen(1))
			Expect(matched[0].Name()).To(Equal("stop-control"))
		})

		It("never routes post-write events to security validators", func() {
			reg := builder.Build(&config.Config{})

			matched := reg.FindValidators(&hook.Context{
				EventType: hook.EventTypePostToolUse,
				ToolName:  hook.ToolTypeBash,
			})

			Expect(matched).To(BeEmpty())
		})
	})

	It("wires validators that honor their configuration", func() {
		reg := builder.Build(&config.Config{})

		matched := reg.FindValidators(&hook.Context{
			EventType: hook.EventTypePreToolUse,
			ToolName:  hook.ToolTypeBash,
		})
		Expect(matched).To(HaveLen(1))

		result := matched[0].Validate(context.Background(), &hook.Context{
			EventType: hook.EventTypePreToolUse,
			ToolName:  hook.ToolTypeBash,
			ToolInput: hook.ToolInput{Command: "sudo rm -rf /"},
		})

		Expect(result.Passed).To(BeFalse())
		Expect(result.ShouldBlock).To(BeTrue())
	})
})
