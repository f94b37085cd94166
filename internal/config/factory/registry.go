package factory

import (
	"github.com/hookguard/hookguard/internal/validator"
	"github.com/hookguard/hookguard/pkg/config"
	"github.com/hookguard/hookguard/pkg/logger"
)

// RegistryBuilder builds a validator registry from configuration.
type RegistryBuilder struct {
	log logger.Logger
}

// NewRegistryBuilder creates a new RegistryBuilder.
func NewRegistryBuilder(log logger.Logger) *RegistryBuilder {
	return &RegistryBuilder{log: log}
}

// Build creates a validator registry with every enabled validator registered
// under its predicate.
func (b *RegistryBuilder) Build(cfg *config.Config) *validator.Registry {
	registry := validator.NewRegistry()

	if cfg == nil {
		cfg = &config.Config{}
	}

	defaultTimeout := config.Duration(cfg.Global.GetDefaultTimeout())

	factory := NewValidatorFactory(b.log, defaultTimeout)

	validatorsWithPredicates := factory.CreateAll(cfg)
	for _, vp := range validatorsWithPredicates {
		registry.Register(vp.Validator, vp.Predicate)
	}

	b.log.Debug("registry built",
		"validator_count", len(validatorsWithPredicates),
	)

	return registry
}
