// Package config loads driver registry configuration from YAML files and
// the environment.
//
// The registry itself only accepts an explicit driver.Config value; this
// package is the optional bridge for hosts that keep their engine list in a
// file. Precedence: defaults < file < environment.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/coxery/dbgate/pkg/driver"
)

// DefaultEnvPrefix is the prefix for environment overrides, e.g.
// DBGATE_ENGINES=postgres,sqlite.
const DefaultEnvPrefix = "DBGATE_"

// fileConfig is the on-disk shape.
type fileConfig struct {
	Engines []engineEntry `koanf:"engines"`
}

type engineEntry struct {
	ID      string `koanf:"id"`
	Dialect string `koanf:"dialect"`
	Title   string `koanf:"title"`
}

// Load reads a YAML config file into a driver.Config. An empty path yields
// the defaults (no engines).
func Load(path string) (driver.Config, error) {
	return load(path, "")
}

// LoadWithEnv is Load plus environment overrides under the given prefix
// (DefaultEnvPrefix when empty). <PREFIX>ENGINES is a comma-separated list
// of dialect names replacing the file's engine list.
func LoadWithEnv(path, prefix string) (driver.Config, error) {
	if prefix == "" {
		prefix = DefaultEnvPrefix
	}
	return load(path, prefix)
}

func load(path, envPrefix string) (driver.Config, error) {
	k := koanf.New(".")

	// Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"engines": []engineEntry{},
	}, "."), nil); err != nil {
		return driver.Config{}, fmt.Errorf("loading defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return driver.Config{}, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if envPrefix != "" {
		err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
			return strings.ToLower(strings.TrimPrefix(s, envPrefix))
		}), nil)
		if err != nil {
			return driver.Config{}, fmt.Errorf("loading environment: %w", err)
		}
	}

	// The env override flattens the engine list to a comma-separated string
	// of dialect names.
	if engines, ok := k.Get("engines").(string); ok {
		var cfg driver.Config
		for _, name := range strings.Split(engines, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			cfg.Engines = append(cfg.Engines, driver.EngineConfig{Dialect: name})
		}
		return cfg, nil
	}

	var fc fileConfig
	if err := k.Unmarshal("", &fc); err != nil {
		return driver.Config{}, fmt.Errorf("parsing config: %w", err)
	}

	var cfg driver.Config
	for i, e := range fc.Engines {
		if e.Dialect == "" {
			return driver.Config{}, fmt.Errorf("engines[%d]: dialect name is required", i)
		}
		cfg.Engines = append(cfg.Engines, driver.EngineConfig{
			ID:      e.ID,
			Dialect: e.Dialect,
			Title:   e.Title,
		})
	}
	return cfg, nil
}
