package cli

import (
	"fmt"
	"os"

	"github.com/born-ml/flipflop/internal/flipflop"
	"gopkg.in/yaml.v3"
)

// Config describes the synthetic reads the commands run on.
type Config struct {
	NBase     int     `yaml:"nbase"`
	NBlock    int     `yaml:"nblock"`
	Reads     int     `yaml:"reads"`
	Seed      uint64  `yaml:"seed"`
	Scale     float64 `yaml:"scale"`
	Alphabet  string  `yaml:"alphabet"`
	Workers   int     `yaml:"workers"`
	Tolerance float64 `yaml:"tolerance"`
}

// DefaultConfig returns a DNA setup of modest size.
func DefaultConfig() Config {
	return Config{
		NBase:     4,
		NBlock:    1000,
		Reads:     8,
		Seed:      1,
		Scale:     1,
		Alphabet:  flipflop.DefaultAlphabet,
		Workers:   0,
		Tolerance: 1e-4,
	}
}

// LoadConfig reads a YAML file over the defaults. Keys missing from the file
// keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first unusable setting.
func (c Config) Validate() error {
	if _, err := flipflop.NewLayout(c.NBase); err != nil {
		return err
	}
	if c.NBlock < 0 {
		return fmt.Errorf("%w: got %d", flipflop.ErrBlockCount, c.NBlock)
	}
	if c.Reads < 1 {
		return fmt.Errorf("reads must be at least 1, got %d", c.Reads)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %g", c.Scale)
	}
	if c.Tolerance <= 0 {
		return fmt.Errorf("tolerance must be positive, got %g", c.Tolerance)
	}
	return nil
}

// Scorer builds a scorer that uses up to Workers goroutines per batch.
func (c Config) Scorer() *flipflop.Scorer {
	sc := flipflop.DefaultConfig()
	sc.BatchWorkers = c.Workers
	return flipflop.NewScorer(sc)
}
