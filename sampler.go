package cohortsim

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distmv"
)

// ErrInvalidConfig reports a configuration the sampler refuses to run:
// non-positive sample count, malformed correlation matrix (including
// non-PSD), empty firm-size bounds, bad mean vector, or duplicate labels.
// Configuration errors abort the whole run; a dataset is never partial.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config controls dataset generation.
type Config struct {
	NumSamples int       // Observations drawn per cohort (must be > 0)
	Mean       []float64 // Mean of the four variables (nil = zeros)
	Seed       uint64    // Base seed for the per-cohort sub-streams
	Parallel   bool      // Sample cohorts concurrently
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		NumSamples: 1000,
		Seed:       1,
	}
}

// Generate draws Config.NumSamples observations per cohort and
// concatenates the cohort tables in the order given.
//
// Per cohort, in order: draw the 4-vectors from N(mean, correlation),
// label them, and attach one uniform firm size from [low, high) per
// observation, in draw order. Firm size is deliberately not correlated
// with the four variables.
//
// Every cohort samples from its own sub-stream derived from cfg.Seed, so
// output is identical for sequential and parallel execution and fully
// reproducible under a fixed seed.
func Generate(cfg Config, specs []CohortSpec) (*Dataset, error) {
	if cfg.NumSamples <= 0 {
		return nil, fmt.Errorf("%w: sample count must be positive, got %d",
			ErrInvalidConfig, cfg.NumSamples)
	}
	mean := cfg.Mean
	if mean == nil {
		mean = make([]float64, NumVariables)
	}
	if len(mean) != NumVariables {
		return nil, fmt.Errorf("%w: mean vector must have %d entries, got %d",
			ErrInvalidConfig, NumVariables, len(mean))
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("%w: at least one cohort spec is required", ErrInvalidConfig)
	}
	seen := make(map[string]bool, len(specs))
	for i, spec := range specs {
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("cohort %d (%q): %w", i, spec.Label, err)
		}
		if seen[spec.Label] {
			return nil, fmt.Errorf("%w: duplicate cohort label %q", ErrInvalidConfig, spec.Label)
		}
		seen[spec.Label] = true
	}

	blocks := make([][]Observation, len(specs))
	errs := make([]error, len(specs))

	if cfg.Parallel {
		var wg sync.WaitGroup
		for i, spec := range specs {
			wg.Add(1)
			go func(i int, spec CohortSpec) {
				defer wg.Done()
				blocks[i], errs[i] = sampleCohort(spec, cfg.NumSamples, mean, subSeed(cfg.Seed, i))
			}(i, spec)
		}
		wg.Wait()
	} else {
		for i, spec := range specs {
			blocks[i], errs[i] = sampleCohort(spec, cfg.NumSamples, mean, subSeed(cfg.Seed, i))
		}
	}

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("cohort %d (%q): %w", i, specs[i].Label, err)
		}
	}

	ds := &Dataset{Observations: make([]Observation, 0, cfg.NumSamples*len(specs))}
	for _, block := range blocks {
		ds.Observations = append(ds.Observations, block...)
	}
	return ds, nil
}

// sampleCohort draws one cohort's table from its own random sub-stream.
func sampleCohort(spec CohortSpec, n int, mean []float64, seed uint64) ([]Observation, error) {
	src := rand.NewSource(seed)
	normal, ok := distmv.NewNormal(mean, spec.Correlation.Sym(), src)
	if !ok {
		// Cholesky failed: structurally valid but not PSD.
		return nil, fmt.Errorf("%w: correlation matrix is not positive semi-definite",
			ErrInvalidConfig)
	}
	rng := rand.New(src)
	span := spec.FirmSizeHigh - spec.FirmSizeLow

	obs := make([]Observation, n)
	vec := make([]float64, NumVariables)
	for i := 0; i < n; i++ {
		normal.Rand(vec)
		obs[i] = Observation{
			JobSat:    vec[0],
			IntQui:    vec[1],
			Age:       vec[2],
			OrgTenure: vec[3],
			Cohort:    spec.Label,
			FirmSize:  spec.FirmSizeLow + rng.Intn(span),
		}
	}
	return obs, nil
}

// subSeed derives cohort i's stream seed via a splitmix64 mix, keeping
// cohort streams independent of each other and of scheduling order.
func subSeed(seed uint64, i int) uint64 {
	z := seed + uint64(i+1)*0x9E3779B97F4A7C15
	z ^= z >> 30
	z *= 0xBF58476D1CE4E5B9
	z ^= z >> 27
	z *= 0x94D049BB133111EB
	z ^= z >> 31
	return z
}
