package cohortsim

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ColumnStats holds the moments of one z-scored column.
//
// For a well-behaved run, Mean ≈ 0 and Stddev ≈ 1 at large sample counts;
// drift beyond sampling error indicates a misconfigured mean vector or a
// correlation matrix that was not a correlation matrix.
type ColumnStats struct {
	Name   string
	Mean   float64
	Stddev float64
	Min    float64
	Max    float64
}

// CohortStats holds per-cohort row accounting and the observed firm-size
// range, the basis of the CLI's bounds checks.
type CohortStats struct {
	Label       string
	Rows        int
	FirmSizeMin int
	FirmSizeMax int
}

// Stats summarizes a generated dataset.
type Stats struct {
	Rows        int
	Columns     [NumVariables]ColumnStats
	Cohorts     []CohortStats // first-appearance order, i.e. generation order
	Correlation Matrix        // empirical correlation of the four columns
}

// Summarize computes column moments, per-cohort accounting, and the
// empirical correlation matrix of a dataset.
func Summarize(d *Dataset) Stats {
	s := Stats{Rows: d.Len()}
	if s.Rows == 0 {
		return s
	}

	cols := make([][]float64, NumVariables)
	for j := range cols {
		cols[j] = make([]float64, d.Len())
	}
	for i, o := range d.Observations {
		cols[0][i] = o.JobSat
		cols[1][i] = o.IntQui
		cols[2][i] = o.Age
		cols[3][i] = o.OrgTenure
	}
	for j, col := range cols {
		s.Columns[j] = ColumnStats{
			Name:   Variables[j],
			Mean:   stat.Mean(col, nil),
			Stddev: stat.StdDev(col, nil),
			Min:    floats.Min(col),
			Max:    floats.Max(col),
		}
	}

	index := make(map[string]int)
	for _, o := range d.Observations {
		k, ok := index[o.Cohort]
		if !ok {
			k = len(s.Cohorts)
			index[o.Cohort] = k
			s.Cohorts = append(s.Cohorts, CohortStats{
				Label:       o.Cohort,
				FirmSizeMin: o.FirmSize,
				FirmSizeMax: o.FirmSize,
			})
		}
		c := &s.Cohorts[k]
		c.Rows++
		if o.FirmSize < c.FirmSizeMin {
			c.FirmSizeMin = o.FirmSize
		}
		if o.FirmSize > c.FirmSizeMax {
			c.FirmSizeMax = o.FirmSize
		}
	}

	corr := mat.NewSymDense(NumVariables, nil)
	stat.CorrelationMatrix(corr, d.Matrix(), nil)
	for i := 0; i < NumVariables; i++ {
		for j := 0; j < NumVariables; j++ {
			s.Correlation[i][j] = corr.At(i, j)
		}
	}
	return s
}

// Cohort looks up one cohort's stats by label.
func (s Stats) Cohort(label string) (CohortStats, bool) {
	for _, c := range s.Cohorts {
		if c.Label == label {
			return c, true
		}
	}
	return CohortStats{}, false
}
