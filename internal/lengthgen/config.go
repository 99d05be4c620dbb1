// SPDX-License-Identifier: MIT
// Package: initwith/internal/lengthgen
//
// config.go — generator configuration, defaults and validation.

package lengthgen

import (
	"fmt"
	"go/token"
	"os"

	"gopkg.in/yaml.v3"
)

// MaxSupportedLen bounds MaxLen. Each length adds one term to the Array union
// and one instantiation per generic call site, so very large unions slow the
// compiler down without adding anything useful.
const MaxSupportedLen = 1024

// Deterministic defaults.
const (
	DefaultPackage    = "fixed"
	DefaultMaxLen     = 32
	DefaultOutput     = "lengths_gen.go"
	DefaultTestOutput = "lengths_gen_test.go"
)

// Config describes one generation run.
type Config struct {
	Package    string `yaml:"package" mapstructure:"package"`         // target package name
	MaxLen     int    `yaml:"max_len" mapstructure:"max_len"`         // largest supported length, inclusive
	Output     string `yaml:"output" mapstructure:"output"`           // path of the generated source
	TestOutput string `yaml:"test_output" mapstructure:"test_output"` // path of the generated test; "" disables it
}

// DefaultConfig returns the configuration used by the fixed package.
func DefaultConfig() Config {
	return Config{
		Package:    DefaultPackage,
		MaxLen:     DefaultMaxLen,
		Output:     DefaultOutput,
		TestOutput: DefaultTestOutput,
	}
}

// Validate checks cfg, returning the first violation found.
// Priority: package name → length bounds → output path.
func (cfg Config) Validate() error {
	if !token.IsIdentifier(cfg.Package) {
		return fmt.Errorf("package %q: %w", cfg.Package, ErrBadPackage)
	}
	if cfg.MaxLen < 0 || cfg.MaxLen > MaxSupportedLen {
		return fmt.Errorf("max_len %d not in [0,%d]: %w", cfg.MaxLen, MaxSupportedLen, ErrBadMaxLen)
	}
	if cfg.Output == "" {
		return ErrNoOutput
	}

	return nil
}

// LoadFile reads a YAML config from path over DefaultConfig; keys missing
// from the file keep their defaults. The result is not validated.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("LoadFile: %w", err)
	}
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("LoadFile: %s: %w", path, err)
	}

	return cfg, nil
}
