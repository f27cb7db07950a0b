package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects configuration sources and merges them in priority
// order. Sources are kept in separate slots so the order in which the with*
// methods are called does not change the result.
type configBuilder struct {
	env   *StructuredConfig
	flags *StructuredConfig
	json  *StructuredConfig
	err   error

	args []string
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{}
}

// build merges defaults, the JSON file, environment and flags, each one
// overriding the non-zero fields of the previous ones.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := defaults()
	for _, cfg := range []*StructuredConfig{b.json, b.env, b.flags} {
		if cfg == nil {
			continue
		}
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	config.JSONFilePath = b.jsonFilePath()

	return config, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.env = envCfg
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags, err := parseFlags(b.args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.flags = flags
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	jsonPath := b.jsonFilePath()
	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.json = jsonCfg
	return b
}

// jsonFilePath returns the JSON config path, preferring the flag over env.
func (b *configBuilder) jsonFilePath() string {
	if b.flags != nil && b.flags.JSONFilePath != "" {
		return b.flags.JSONFilePath
	}
	if b.env != nil {
		return b.env.JSONFilePath
	}
	return ""
}
