package numeric

import (
	"errors"
	"fmt"
)

// Domain errors for the numerical routines.
var (
	// ErrSubdivisions indicates a quadrature subdivision count the rule cannot use.
	ErrSubdivisions = errors.New("numeric: invalid number of subdivisions")

	// ErrNotSymmetric indicates a method that requires a symmetric matrix got another one.
	ErrNotSymmetric = errors.New("numeric: matrix is not symmetric")

	// ErrDimensionMismatch indicates mismatched matrix/vector dimensions.
	ErrDimensionMismatch = errors.New("numeric: dimension mismatch")

	// ErrNotEnoughDerivatives indicates a Taylor expansion longer than the derivatives supplied.
	ErrNotEnoughDerivatives = errors.New("numeric: not enough derivatives for requested terms")
)

// RuleError reports a subdivision count rejected by a quadrature rule.
type RuleError struct {
	Rule    string
	N       int
	Divisor int
}

func (e *RuleError) Error() string {
	if e.N < 1 {
		return fmt.Sprintf("number of intervals (n) must be positive for %s, got %d", e.Rule, e.N)
	}
	return fmt.Sprintf("number of intervals (n) must be divisible by %d for %s, got %d", e.Divisor, e.Rule, e.N)
}

func (e *RuleError) Unwrap() error {
	return ErrSubdivisions
}
