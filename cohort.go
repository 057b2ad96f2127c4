package cohortsim

import "fmt"

// CohortSpec configures one firm-size cohort.
type CohortSpec struct {
	// Label identifies the cohort in the output table. Labels must be
	// unique across a Generate call.
	Label string `yaml:"label"`

	// Correlation is the cohort's correlation structure over
	// {job_sat, int_qui, age, org_tnr}, used directly as the sampling
	// covariance (variables are z-scored).
	Correlation Matrix `yaml:"correlation"`

	// FirmSizeLow and FirmSizeHigh bound the uniform integer firm-size
	// draw, half-open: [FirmSizeLow, FirmSizeHigh).
	FirmSizeLow  int `yaml:"firm_size_low"`
	FirmSizeHigh int `yaml:"firm_size_high"`
}

// Validate checks the spec's structural invariants.
func (c CohortSpec) Validate() error {
	if c.Label == "" {
		return fmt.Errorf("%w: cohort label must not be empty", ErrInvalidConfig)
	}
	if c.FirmSizeLow >= c.FirmSizeHigh {
		return fmt.Errorf("%w: firm size bounds [%d, %d) are empty",
			ErrInvalidConfig, c.FirmSizeLow, c.FirmSizeHigh)
	}
	return c.Correlation.Validate()
}

// surveyMatrix builds a cohort correlation matrix with the couplings that
// stay constant across firm sizes baked in. Only the satisfaction↔quit
// coefficient varies by cohort.
//
// Fixed couplings:
//
//	job_sat↔age      0.15    int_qui↔age     -0.15
//	job_sat↔org_tnr  0.20    int_qui↔org_tnr -0.20
//	age↔org_tnr      0.55
//
// Every row's off-diagonal magnitude sums below 1 for |satQuit| ≤ 0.6, so
// the matrix is strictly diagonally dominant and hence positive definite.
func surveyMatrix(satQuit float64) Matrix {
	return Matrix{
		{1, satQuit, 0.15, 0.20},
		{satQuit, 1, -0.15, -0.20},
		{0.15, -0.15, 1, 0.55},
		{0.20, -0.20, 0.55, 1},
	}
}

// DefaultCohorts returns the five firm-size cohorts of the standard
// turnover scenario. The satisfaction↔quit coupling weakens as firms grow,
// which is the interaction effect the downstream analysis looks for.
func DefaultCohorts() []CohortSpec {
	return []CohortSpec{
		{Label: "micro", Correlation: surveyMatrix(-0.60), FirmSizeLow: 1, FirmSizeHigh: 6},
		{Label: "small", Correlation: surveyMatrix(-0.50), FirmSizeLow: 6, FirmSizeHigh: 26},
		{Label: "medium", Correlation: surveyMatrix(-0.40), FirmSizeLow: 26, FirmSizeHigh: 101},
		{Label: "large", Correlation: surveyMatrix(-0.30), FirmSizeLow: 101, FirmSizeHigh: 501},
		{Label: "very_large", Correlation: surveyMatrix(-0.20), FirmSizeLow: 501, FirmSizeHigh: 1001},
	}
}
