package solve

import (
	"fmt"
	"io"
	"os"
)

// Solver solves linear and quadratic equations, announcing each equation on
// Out before returning its symbolic solution.
//
// The zero value writes to os.Stdout.
type Solver struct {
	Out io.Writer
}

func (s *Solver) out() io.Writer {
	if s == nil || s.Out == nil {
		return os.Stdout
	}
	return s.Out
}

// announce writes "Solve <poly> = 0" for the given coefficients.
func (s *Solver) announce(coeffs []float64) error {
	poly, err := FormatPolynomial(coeffs)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(s.out(), "Solve %s = 0\n", poly)
	return err
}

// SolveLinear solves ax + b = 0. coeffs must be [b, a], lowest order first.
//
// The solution -b/a is returned undivided as a [Ratio] with denominator a.
// It returns a [ValidationError], and writes nothing, if coeffs does not hold
// exactly two coefficients. A zero a is not rejected.
func (s *Solver) SolveLinear(coeffs []float64) (Ratio, error) {
	if err := checkArity("SolveLinear", coeffs, 2, "two"); err != nil {
		return Ratio{}, err
	}
	b, a := coeffs[0], coeffs[1]
	if err := s.announce(coeffs); err != nil {
		return Ratio{}, err
	}
	return NewRatio(a, neg(b)), nil
}

// SolveQuadratic solves ax² + bx + c = 0. coeffs must be [c, b, a], lowest
// order first.
//
// It returns both roots, the [Plus] branch first and the [Minus] branch
// second. Whether the roots are real or complex is only decided when they are
// evaluated. It returns a [ValidationError], and writes nothing, if coeffs
// does not hold exactly three coefficients.
func (s *Solver) SolveQuadratic(coeffs []float64) ([2]Root, error) {
	if err := checkArity("SolveQuadratic", coeffs, 3, "three"); err != nil {
		return [2]Root{}, err
	}
	c, b, a := coeffs[0], coeffs[1], coeffs[2]
	if err := s.announce(coeffs); err != nil {
		return [2]Root{}, err
	}
	return [2]Root{
		{a: a, b: b, c: c, sign: Plus},
		{a: a, b: b, c: c, sign: Minus},
	}, nil
}

var std Solver

// SolveLinear is like [Solver.SolveLinear] but writes to os.Stdout.
func SolveLinear(coeffs []float64) (Ratio, error) {
	return std.SolveLinear(coeffs)
}

// SolveQuadratic is like [Solver.SolveQuadratic] but writes to os.Stdout.
func SolveQuadratic(coeffs []float64) ([2]Root, error) {
	return std.SolveQuadratic(coeffs)
}
