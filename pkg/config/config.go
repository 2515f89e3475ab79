// Package config reads bspgeom settings from an INI-style file:
//
//	[precision]
//	epsilon = 1e-10
//
//	[engine]
//	timeout = 5000 ; milliseconds
//
//	[mesh]
//	cells = 200
//	height = 1
//
// Variables missing from the file keep their defaults.
package config

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/gcfg.v1"

	"github.com/chazu/bspgeom/pkg/precision"
)

// Defaults.
const (
	DefaultEpsilon   = 1e-10
	DefaultTimeoutMS = 5000
	DefaultCells     = 200
	DefaultHeight    = 1.0
)

var ErrInvalid = errors.New("invalid configuration")

type PrecisionConfig struct {
	Epsilon float64
}

type EngineConfig struct {
	Timeout int // milliseconds
}

type MeshConfig struct {
	Cells  int
	Height float64
}

// Config is the complete application configuration.
type Config struct {
	Precision PrecisionConfig
	Engine    EngineConfig
	Mesh      MeshConfig
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Precision: PrecisionConfig{Epsilon: DefaultEpsilon},
		Engine:    EngineConfig{Timeout: DefaultTimeoutMS},
		Mesh:      MeshConfig{Cells: DefaultCells, Height: DefaultHeight},
	}
}

// Load reads the file at path over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if err := gcfg.ReadFileInto(&cfg, path); err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse is Load for in-memory text.
func Parse(text string) (Config, error) {
	cfg := Default()
	if err := gcfg.ReadStringInto(&cfg, text); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects non-positive timeouts, cell counts and heights, and
// tolerances precision.NewEpsilon refuses.
func (c Config) Validate() error {
	if _, err := precision.NewEpsilon(c.Precision.Epsilon); err != nil {
		return fmt.Errorf("config: precision.epsilon: %w", err)
	}
	if c.Engine.Timeout <= 0 {
		return fmt.Errorf("config: engine.timeout = %d: %w", c.Engine.Timeout, ErrInvalid)
	}
	if c.Mesh.Cells <= 0 {
		return fmt.Errorf("config: mesh.cells = %d: %w", c.Mesh.Cells, ErrInvalid)
	}
	if !(c.Mesh.Height > 0) {
		return fmt.Errorf("config: mesh.height = %g: %w", c.Mesh.Height, ErrInvalid)
	}
	return nil
}

// Context returns the precision context for the configured tolerance.
func (c Config) Context() precision.Context {
	return precision.MustEpsilon(c.Precision.Epsilon)
}

// Timeout returns the engine evaluation timeout.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.Engine.Timeout) * time.Millisecond
}
