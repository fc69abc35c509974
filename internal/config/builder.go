package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// builder accumulates partial [Config] values from different sources and
// merges them into one on [build]. Each with* method appends a source and
// returns the same *builder so calls chain; mergo.Merge only fills zero
// fields of the accumulator, so sources appended earlier take precedence.
type builder struct {
	configs []*Config
	rest    []string
	err     error
}

func newBuilder() *builder {
	return &builder{configs: make([]*Config, 0, 4)}
}

// withFlags appends args's parsed flags and records the remaining
// arguments for the caller. Flags take precedence over every other
// source, matching spec.md's command-line-first precedence.
func (b *builder) withFlags(args []string) *builder {
	flags, rest, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, flags)
	b.rest = rest
	return b
}

// withEnv appends the process environment, read below flags.
func (b *builder) withEnv() *builder {
	envCfg := &Config{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, envCfg)
	return b
}

// withJSON looks for a JSONFilePath among the sources accumulated so far
// and, if found, appends the file it names. A JSON value only fills
// fields neither flags nor env already set.
func (b *builder) withJSON() *builder {
	var path string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			path = cfg.JSONFilePath
		}
	}
	if path == "" {
		return b
	}

	jsonCfg, err := parseJSON(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)
	return b
}

// withDefaults appends the built-in defaults last, so they only fill
// fields nothing else set.
func (b *builder) withDefaults() *builder {
	b.configs = append(b.configs, Default())
	return b
}

func (b *builder) build() (*Config, error) {
	if b.err != nil {
		return nil, fmt.Errorf("build config: %w", b.err)
	}

	cfg := &Config{}
	for _, src := range b.configs {
		if err := mergo.Merge(cfg, src); err != nil {
			return nil, fmt.Errorf("merge config: %w", err)
		}
	}
	return cfg, nil
}

// Load builds pm's configuration from flags, environment variables, and
// an optional JSON file, in that order of precedence, falling back to
// [Default] for anything none of them set. It also returns the arguments
// left over after global flags were consumed: the subcommand and its own
// arguments, for internal/cliapp to dispatch.
func Load(args []string) (*Config, []string, error) {
	b := newBuilder().
		withFlags(args).
		withEnv().
		withJSON().
		withDefaults()
	cfg, err := b.build()
	if err != nil {
		return nil, nil, err
	}
	return cfg, b.rest, nil
}
