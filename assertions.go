package cohortsim

import (
	"math"
	"testing"
)

// AssertionConfig contains tolerances for dataset properties.
type AssertionConfig struct {
	// Maximum |empirical − configured| gap per correlation coefficient.
	// Sampling error shrinks as 1/√n, so tighten this with sample count.
	CorrelationTolerance float64
}

// DefaultAssertionConfig returns tolerances suitable for n ≥ 1000 rows
// per cohort.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		CorrelationTolerance: 0.1,
	}
}

// AssertRowCount verifies the dataset has exactly want rows.
func AssertRowCount(t *testing.T, ds *Dataset, want int) {
	t.Helper()

	if got := ds.Len(); got != want {
		t.Errorf("Row count = %d, want %d", got, want)
		return
	}
	t.Logf("✓ Row count: %d", want)
}

// AssertCohortBalance verifies every configured cohort contributes exactly
// perCohort rows and no unknown labels appear.
func AssertCohortBalance(t *testing.T, ds *Dataset, specs []CohortSpec, perCohort int) {
	t.Helper()

	counts := ds.CountByCohort()
	for _, spec := range specs {
		if got := counts[spec.Label]; got != perCohort {
			t.Errorf("Cohort %q has %d rows, want %d", spec.Label, got, perCohort)
		}
		delete(counts, spec.Label)
	}
	for label, n := range counts {
		t.Errorf("Unknown cohort label %q with %d rows", label, n)
	}
	t.Logf("✓ Cohort balance: %d rows × %d cohorts", perCohort, len(specs))
}

// AssertFirmSizeBounds verifies every row's firm size falls inside its
// cohort's configured half-open band [low, high).
func AssertFirmSizeBounds(t *testing.T, ds *Dataset, specs []CohortSpec) {
	t.Helper()

	bounds := make(map[string][2]int, len(specs))
	for _, spec := range specs {
		bounds[spec.Label] = [2]int{spec.FirmSizeLow, spec.FirmSizeHigh}
	}
	bad := 0
	for i, o := range ds.Observations {
		b, ok := bounds[o.Cohort]
		if !ok {
			t.Errorf("Row %d: unknown cohort %q", i, o.Cohort)
			continue
		}
		if o.FirmSize < b[0] || o.FirmSize >= b[1] {
			if bad < 5 {
				t.Errorf("Row %d (%s): firm_size %d outside [%d, %d)",
					i, o.Cohort, o.FirmSize, b[0], b[1])
			}
			bad++
		}
	}
	if bad > 0 {
		t.Errorf("%d rows outside their firm-size band", bad)
		return
	}
	t.Logf("✓ Firm sizes within configured bands for all %d rows", ds.Len())
}

// AssertCohortOrder verifies rows form contiguous cohort blocks in spec
// order (concatenation is order-preserving, never sorted).
func AssertCohortOrder(t *testing.T, ds *Dataset, specs []CohortSpec) {
	t.Helper()

	if ds.Len()%len(specs) != 0 {
		t.Fatalf("Row count %d not divisible by %d cohorts", ds.Len(), len(specs))
	}
	block := ds.Len() / len(specs)
	for i, o := range ds.Observations {
		want := specs[i/block].Label
		if o.Cohort != want {
			t.Errorf("Row %d in cohort %q, want %q (blocks out of order)", i, o.Cohort, want)
			return
		}
	}
	t.Logf("✓ Cohort order preserved: %d blocks of %d rows", len(specs), block)
}

// AssertCorrelation verifies one cohort's empirical correlation matrix
// stays within tolerance of its configured matrix.
func AssertCorrelation(t *testing.T, ds *Dataset, spec CohortSpec, cfg AssertionConfig) {
	t.Helper()

	sub := ds.Select(spec.Label)
	if sub.Len() == 0 {
		t.Fatalf("No rows for cohort %q", spec.Label)
	}
	got := Summarize(sub).Correlation

	worst := 0.0
	for i := 0; i < NumVariables; i++ {
		for j := i + 1; j < NumVariables; j++ {
			gap := math.Abs(got[i][j] - spec.Correlation[i][j])
			if gap > worst {
				worst = gap
			}
			if gap > cfg.CorrelationTolerance {
				t.Errorf("Cohort %q corr(%s, %s) = %.3f, configured %.3f (gap %.3f > %.3f)",
					spec.Label, Variables[i], Variables[j],
					got[i][j], spec.Correlation[i][j], gap, cfg.CorrelationTolerance)
			}
		}
	}
	t.Logf("✓ Cohort %q correlation within ±%.2f (worst gap %.3f, n=%d)",
		spec.Label, cfg.CorrelationTolerance, worst, sub.Len())
}

// AssertDataset runs the structural assertions with the given specs.
func AssertDataset(t *testing.T, ds *Dataset, specs []CohortSpec, perCohort int) {
	t.Helper()

	t.Run("RowCount", func(t *testing.T) {
		AssertRowCount(t, ds, perCohort*len(specs))
	})
	t.Run("CohortBalance", func(t *testing.T) {
		AssertCohortBalance(t, ds, specs, perCohort)
	})
	t.Run("FirmSizeBounds", func(t *testing.T) {
		AssertFirmSizeBounds(t, ds, specs)
	})
	t.Run("CohortOrder", func(t *testing.T) {
		AssertCohortOrder(t, ds, specs)
	})
}
