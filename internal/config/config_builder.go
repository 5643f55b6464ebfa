package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error

	// hasDefaults is set once the built-in defaults are the first source.
	hasDefaults bool
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// build merges the collected sources in order, later ones overriding the
// non-zero fields of earlier ones, fills derived values, and validates.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if len(b.configs) == 0 {
		return config, nil
	}

	config.resolveHTTPAddress()

	return config, config.validate()
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append([]*StructuredConfig{defaults()}, b.configs...)
	b.hasDefaults = true
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagsCfg, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flagsCfg)
	return b
}

// withJSON loads the JSON file named by any already collected source and
// places it right after the defaults, so env and flags still override it.
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	position := 0
	if b.hasDefaults {
		position = 1
	}
	b.configs = append(b.configs[:position], append([]*StructuredConfig{jsonCfg}, b.configs[position:]...)...)

	return b
}

// resolveHTTPAddress derives the HTTP address from PORT when no explicit
// address was configured.
func (cfg *StructuredConfig) resolveHTTPAddress() {
	if cfg.Server.HTTPAddress != "" {
		return
	}

	if cfg.Port != "" {
		cfg.Server.HTTPAddress = ":" + cfg.Port
		return
	}

	cfg.Server.HTTPAddress = defaultHTTPAddress
}
