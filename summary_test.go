package cohortsim

import (
	"math"
	"testing"
)

func TestSummarize_Empty(t *testing.T) {
	stats := Summarize(&Dataset{})
	if stats.Rows != 0 || len(stats.Cohorts) != 0 {
		t.Errorf("empty dataset summarized as %+v", stats)
	}
}

func TestSummarize_Moments(t *testing.T) {
	spec := CohortSpec{Label: "only", Correlation: Identity(), FirmSizeLow: 3, FirmSizeHigh: 7}

	cfg := DefaultConfig()
	cfg.NumSamples = 10000
	cfg.Seed = 21

	ds, err := Generate(cfg, []CohortSpec{spec})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	stats := Summarize(ds)

	if stats.Rows != 10000 {
		t.Fatalf("Rows = %d, want 10000", stats.Rows)
	}
	for j, col := range stats.Columns {
		if col.Name != Variables[j] {
			t.Errorf("Columns[%d].Name = %q, want %q", j, col.Name, Variables[j])
		}
		if math.Abs(col.Mean) > 0.05 {
			t.Errorf("%s mean = %.4f, want ≈ 0", col.Name, col.Mean)
		}
		if math.Abs(col.Stddev-1) > 0.05 {
			t.Errorf("%s stddev = %.4f, want ≈ 1", col.Name, col.Stddev)
		}
		if col.Min >= col.Max {
			t.Errorf("%s min %.3f not below max %.3f", col.Name, col.Min, col.Max)
		}
	}

	c, ok := stats.Cohort("only")
	if !ok {
		t.Fatal("cohort stats missing")
	}
	if c.Rows != 10000 {
		t.Errorf("cohort rows = %d, want 10000", c.Rows)
	}
	// At n=10000 over a 4-value band, both ends get hit.
	if c.FirmSizeMin != 3 || c.FirmSizeMax != 6 {
		t.Errorf("observed firm sizes [%d, %d], want [3, 6]", c.FirmSizeMin, c.FirmSizeMax)
	}

	t.Logf("✓ Moments near (0, 1), firm sizes span the band")
}

func TestSummarize_CohortOrder(t *testing.T) {
	ds := sampleDataset(t, 10)

	stats := Summarize(ds)
	if len(stats.Cohorts) != 2 {
		t.Fatalf("got %d cohorts, want 2", len(stats.Cohorts))
	}
	if stats.Cohorts[0].Label != "micro" || stats.Cohorts[1].Label != "large" {
		t.Errorf("cohort order = [%s, %s], want [micro, large]",
			stats.Cohorts[0].Label, stats.Cohorts[1].Label)
	}

	if _, ok := stats.Cohort("missing"); ok {
		t.Error("Cohort(missing) reported present")
	}
}

func TestSummarize_CorrelationDiagonal(t *testing.T) {
	ds := sampleDataset(t, 500)

	stats := Summarize(ds)
	for i := 0; i < NumVariables; i++ {
		if math.Abs(stats.Correlation[i][i]-1) > 1e-9 {
			t.Errorf("empirical correlation diagonal [%d][%d] = %g, want 1",
				i, i, stats.Correlation[i][i])
		}
	}
}
