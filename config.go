package cohortsim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is an on-disk generation scenario. It mirrors Config plus the
// cohort table, so one YAML file describes a full reproducible run:
//
//	samples: 1000
//	seed: 42
//	cohorts:
//	  - label: micro
//	    firm_size_low: 1
//	    firm_size_high: 6
//	    correlation:
//	      - [1.0, -0.6, 0.15, 0.2]
//	      - [-0.6, 1.0, -0.15, -0.2]
//	      - [0.15, -0.15, 1.0, 0.55]
//	      - [0.2, -0.2, 0.55, 1.0]
type Scenario struct {
	// Samples is the per-cohort observation count.
	Samples int `yaml:"samples"`

	// Seed is the base seed for the per-cohort sub-streams.
	Seed uint64 `yaml:"seed"`

	// Parallel samples cohorts concurrently. Output is identical either
	// way; this only trades wall time.
	Parallel bool `yaml:"parallel,omitempty"`

	// Cohorts is the ordered cohort table. Order determines output order.
	Cohorts []CohortSpec `yaml:"cohorts"`
}

// LoadScenario reads and decodes a YAML scenario file. Decode failures are
// configuration errors; semantic validation happens in Generate.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: parse scenario %s: %v", ErrInvalidConfig, path, err)
	}
	return &s, nil
}

// Config converts the scenario's generation settings.
func (s *Scenario) Config() Config {
	return Config{
		NumSamples: s.Samples,
		Seed:       s.Seed,
		Parallel:   s.Parallel,
	}
}
