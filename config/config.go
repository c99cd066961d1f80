// Package config loads named transformation pipelines and runtime settings
// from a YAML file, overlaid with TRANSMUTE_ environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/sonnes/transmute/applyer"
	"github.com/sonnes/transmute/core"
)

// DefaultPath is the config file read when none is given.
const DefaultPath = ".transmute.yaml"

// EnvPrefix is stripped from environment variables; "__" separates nested
// keys, e.g. TRANSMUTE_SERVER__PORT=9090.
const EnvPrefix = "TRANSMUTE_"

// Config is the top-level config file.
type Config struct {
	Default   string     `koanf:"default"` // pipeline used when none is named
	Stream    string     `koanf:"stream"`  // lines|markdown
	Format    string     `koanf:"format"`  // terminal|json|yaml|raw
	Server    Server     `koanf:"server"`
	Pipelines []Pipeline `koanf:"pipelines"`
}

type Server struct {
	Port int `koanf:"port"`
}

// Pipeline is an ordered list of named steps.
type Pipeline struct {
	Name  string `koanf:"name"`
	Steps []Step `koanf:"steps"`
}

// Step is one named applyer in a pipeline. Name defaults to the type.
type Step struct {
	Name         string `koanf:"name"`
	applyer.Spec `koanf:",squash"`
}

// Load merges the YAML file at path (if present) with environment variables
// and applies defaults.
func Load(path string) (Config, error) {
	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil &&
			!errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, "__", envKey), nil); err != nil {
		return Config{}, fmt.Errorf("load config env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	applyDefaults(&cfg)
	return cfg, nil
}

func envKey(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

func applyDefaults(c *Config) {
	if c.Stream == "" {
		c.Stream = "lines"
	}
	if c.Format == "" {
		c.Format = "terminal"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Default == "" && len(c.Pipelines) == 1 {
		c.Default = c.Pipelines[0].Name
	}
}

// Pipeline returns the pipeline called name.
func (c Config) Pipeline(name string) (Pipeline, bool) {
	for _, p := range c.Pipelines {
		if p.Name == name {
			return p, true
		}
	}
	return Pipeline{}, false
}

// Build resolves every step into a Transformation, in order.
func (p Pipeline) Build() (*core.Compound, error) {
	seen := make(map[string]bool, len(p.Steps))
	ts := make([]*core.Transformation, 0, len(p.Steps))
	for i, step := range p.Steps {
		name := step.Name
		if name == "" {
			name = step.Type
		}
		if name == "" {
			return nil, fmt.Errorf("pipeline %q step %d: type is required", p.Name, i)
		}
		if seen[name] {
			return nil, fmt.Errorf("pipeline %q step %d: duplicate step name %q", p.Name, i, name)
		}
		seen[name] = true

		a, err := applyer.Build(step.Spec)
		if err != nil {
			return nil, fmt.Errorf("pipeline %q step %d: %w", p.Name, i, err)
		}
		ts = append(ts, core.NewTransformation(name, a))
	}
	return core.Of(ts...), nil
}

// BuildAll builds every pipeline, keyed by name.
func (c Config) BuildAll() (map[string]core.Transformations, error) {
	out := make(map[string]core.Transformations, len(c.Pipelines))
	for _, p := range c.Pipelines {
		if p.Name == "" {
			return nil, fmt.Errorf("pipeline name is required")
		}
		if _, ok := out[p.Name]; ok {
			return nil, fmt.Errorf("duplicate pipeline %q", p.Name)
		}
		ts, err := p.Build()
		if err != nil {
			return nil, err
		}
		out[p.Name] = ts
	}
	return out, nil
}
