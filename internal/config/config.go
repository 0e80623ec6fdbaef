// Package config loads the sysfirst YAML configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/sirkon/sysfirst/internal/diag"
)

// DefaultFileName is looked up in the working directory when no config
// path was given explicitly.
const DefaultFileName = ".sysfirst.yaml"

// Config is the whole tool configuration.
type Config struct {
	// Jobs limits parallel file processing. Zero or negative means
	// "one worker per CPU".
	Jobs int `yaml:"jobs"`

	// Skip lists glob patterns matched against file base names.
	Skip []string `yaml:"skip"`

	Rules RulesConfig `yaml:"rules"`
}

// RulesConfig gates and tunes individual rules.
type RulesConfig struct {
	SystemFirst RuleConfig `yaml:"system-first"`
}

// RuleConfig is a per-rule toggle. The rule itself knows nothing about
// it: a disabled rule is simply never invoked.
type RuleConfig struct {
	Disabled bool     `yaml:"disabled"`
	Severity Severity `yaml:"severity"`
}

// Enabled reports whether the rule should run.
func (c RuleConfig) Enabled() bool {
	return !c.Disabled
}

// EffectiveSeverity resolves the configured severity, warning by default.
func (c RuleConfig) EffectiveSeverity() diag.Severity {
	if diag.Severity(c.Severity) == diag.SeverityInvalid {
		return diag.SeverityWarning
	}

	return diag.Severity(c.Severity)
}

// Severity adapts diag.Severity to YAML scalars: the yaml package does
// not consult encoding.TextUnmarshaler on its own.
type Severity diag.Severity

func (s *Severity) UnmarshalYAML(node *yaml.Node) error {
	var text string
	if err := node.Decode(&text); err != nil {
		return fmt.Errorf("severity must be a string: %w", err)
	}

	var sev diag.Severity
	if err := sev.UnmarshalText([]byte(text)); err != nil {
		return err
	}
	*s = Severity(sev)

	return nil
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{}
}

// Load reads and decodes the config file at path. Unknown fields are
// rejected to catch typos early.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	switch err := dec.Decode(&cfg); {
	case err == nil:
	case errors.Is(err, io.EOF):
		// An empty config file means defaults.
		return Default(), nil
	default:
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	return &cfg, nil
}

// Discover loads the config at path when given, otherwise looks for
// DefaultFileName in the working directory and falls back to Default.
func Discover(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}

	cfg, err := Load(DefaultFileName)
	switch {
	case err == nil:
		return cfg, nil
	case errors.Is(err, fs.ErrNotExist):
		return Default(), nil
	default:
		return nil, err
	}
}

// EffectiveJobs resolves the worker count.
func (c *Config) EffectiveJobs() int {
	if c.Jobs <= 0 {
		return runtime.NumCPU()
	}

	return c.Jobs
}

// Skipped reports whether the file name matches a skip pattern.
// A malformed pattern never matches.
func (c *Config) Skipped(path string) bool {
	base := filepath.Base(path)
	for _, pat := range c.Skip {
		ok, err := filepath.Match(pat, base)
		if err != nil {
			continue
		}
		if ok {
			return true
		}
	}

	return false
}
