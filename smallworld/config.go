package smallworld

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/smallworld/builder"
)

// OppositeTarget asks for the vertex diametrically opposite the source.
const OppositeTarget = -1

// Defaults of a single experiment.
const (
	DefaultNodes    = 60
	DefaultFraction = 0.059
	DefaultSeed     = int64(1)
	DefaultSource   = 0
)

// Config describes one experiment.
type Config struct {
	// Nodes is the ring size.
	Nodes int `yaml:"nodes"`
	// Hops is the lattice radius (2 links every vertex to ±1 and ±2).
	Hops int `yaml:"hops"`
	// Fraction of lattice edges selected for rewiring, in [0, 1].
	Fraction float64 `yaml:"fraction"`
	// Seed of the random source.
	Seed int64 `yaml:"seed"`
	// Source vertex of the path query.
	Source int `yaml:"source"`
	// Target vertex of the path query; OppositeTarget resolves to
	// (Source + Nodes/2) mod Nodes.
	Target int `yaml:"target"`
}

// DefaultConfig returns the classic 60-node experiment.
func DefaultConfig() Config {
	return Config{
		Nodes:    DefaultNodes,
		Hops:     builder.DefaultHops,
		Fraction: DefaultFraction,
		Seed:     DefaultSeed,
		Source:   DefaultSource,
		Target:   OppositeTarget,
	}
}

// ResolvedTarget returns Target, or the vertex opposite Source when Target is
// OppositeTarget.
func (c Config) ResolvedTarget() int {
	if c.Target == OppositeTarget && c.Nodes > 0 {
		return (c.Source + c.Nodes/2) % c.Nodes
	}

	return c.Target
}

// Validate checks every field and reports the first violation.
func (c Config) Validate() error {
	switch {
	case c.Nodes < builder.MinLatticeNodes:
		return fmt.Errorf("%w: nodes=%d < %d", ErrInvalidConfig, c.Nodes, builder.MinLatticeNodes)
	case c.Hops < builder.MinHops:
		return fmt.Errorf("%w: hops=%d < %d", ErrInvalidConfig, c.Hops, builder.MinHops)
	case math.IsNaN(c.Fraction) || c.Fraction < 0 || c.Fraction > 1:
		return fmt.Errorf("%w: fraction=%v not in [0,1]", ErrInvalidConfig, c.Fraction)
	case c.Source < 0 || c.Source >= c.Nodes:
		return fmt.Errorf("%w: source=%d not in [0,%d)", ErrInvalidConfig, c.Source, c.Nodes)
	}
	if t := c.ResolvedTarget(); t < 0 || t >= c.Nodes {
		return fmt.Errorf("%w: target=%d not in [0,%d)", ErrInvalidConfig, t, c.Nodes)
	}

	return nil
}

// LoadConfig reads a YAML file on top of DefaultConfig. Keys absent from the
// file keep their defaults; unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("LoadConfig: %w", err)
	}

	return ParseConfig(raw)
}

// ParseConfig decodes YAML bytes on top of DefaultConfig and validates the
// result. Empty input yields the defaults.
func ParseConfig(raw []byte) (Config, error) {
	cfg := DefaultConfig()
	if len(bytes.TrimSpace(raw)) == 0 {
		return cfg, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("ParseConfig: %w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("ParseConfig: %w", err)
	}

	return cfg, nil
}
