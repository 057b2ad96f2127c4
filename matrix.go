package cohortsim

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// NumVariables is the dimensionality of every cohort draw.
const NumVariables = 4

// Variables names the four z-scored columns, in dataset column order.
var Variables = [NumVariables]string{"job_sat", "int_qui", "age", "org_tnr"}

// Matrix is a correlation matrix over the four survey variables.
//
// It doubles as the covariance matrix during sampling, which is valid only
// because the variables are z-scores. Validate enforces the structural
// preconditions (symmetry, unit diagonal, off-diagonals in [-1, 1]);
// positive semi-definiteness is checked by the Cholesky factorization
// inside the sampler, since that is the operation that actually needs it.
type Matrix [NumVariables][NumVariables]float64

// Identity returns the correlation matrix of four independent variables.
func Identity() Matrix {
	var m Matrix
	for i := range m {
		m[i][i] = 1
	}
	return m
}

// matrixEps absorbs float noise when checking symmetry and the diagonal.
const matrixEps = 1e-12

// Validate checks the structural correlation-matrix invariants.
//
// Violations are reported as ErrInvalidConfig. PSD violations are not
// detected here; they surface from Generate with the same error kind.
func (m Matrix) Validate() error {
	for i := 0; i < NumVariables; i++ {
		if d := m[i][i]; math.IsNaN(d) || math.Abs(d-1) > matrixEps {
			return fmt.Errorf("%w: correlation diagonal [%d][%d] = %g, want 1",
				ErrInvalidConfig, i, i, d)
		}
		for j := i + 1; j < NumVariables; j++ {
			if math.IsNaN(m[j][i]) || math.Abs(m[i][j]-m[j][i]) > matrixEps {
				return fmt.Errorf("%w: correlation matrix not symmetric at [%d][%d]: %g vs %g",
					ErrInvalidConfig, i, j, m[i][j], m[j][i])
			}
			if v := m[i][j]; v < -1 || v > 1 || math.IsNaN(v) {
				return fmt.Errorf("%w: correlation [%s][%s] = %g outside [-1, 1]",
					ErrInvalidConfig, Variables[i], Variables[j], v)
			}
		}
	}
	return nil
}

// Sym converts the matrix to gonum's symmetric form for sampling.
func (m Matrix) Sym() *mat.SymDense {
	s := mat.NewSymDense(NumVariables, nil)
	for i := 0; i < NumVariables; i++ {
		for j := i; j < NumVariables; j++ {
			s.SetSym(i, j, m[i][j])
		}
	}
	return s
}
