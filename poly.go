package solve

import (
	"math"
	"math/cmplx"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"
)

// Poly is a polynomial in x. The coefficient at index i belongs to x^i, so
// Poly{2, 3, 1} is x² + 3x + 2.
type Poly []float64

// Degree returns the highest order of p, which is len(p)-1. It does not skip
// zero leading coefficients. The degree of an empty polynomial is -1.
func (p Poly) Degree() int {
	return len(p) - 1
}

// String returns the same as [FormatPolynomial], or the empty string for an
// empty polynomial.
func (p Poly) String() string {
	s, _ := FormatPolynomial(p)
	return s
}

// Eval evaluates p at x using Horner's scheme.
func (p Poly) Eval(x float64) float64 {
	if len(p) == 0 {
		return 0
	}
	v := p[len(p)-1]
	for i := len(p) - 2; i >= 0; i-- {
		v = v*x + p[i]
	}
	return v
}

// EvalComplex evaluates p at z using Horner's scheme.
func (p Poly) EvalComplex(z complex128) complex128 {
	if len(p) == 0 {
		return 0
	}
	v := complex(p[len(p)-1], 0)
	for i := len(p) - 2; i >= 0; i-- {
		v = v*z + complex(p[i], 0)
	}
	return v
}

// HasRoot reports whether p(z) is zero to within tol, relative to the
// magnitude of the terms of p at z. That is, |p(z)| must not exceed
// tol * Σ|cᵢ||z|ⁱ.
//
// A z with infinite or NaN components is never a root.
func (p Poly) HasRoot(z Number, tol float64) bool {
	zc := z.Complex()
	if cmplx.IsInf(zc) || cmplx.IsNaN(zc) {
		return false
	}
	var scale float64
	abs := cmplx.Abs(zc)
	for i, c := range p {
		scale += math.Abs(c) * math.Pow(abs, float64(i))
	}
	return scalar.EqualWithinAbs(cmplx.Abs(p.EvalComplex(zc)), 0, tol*scale)
}

// FormatPolynomial renders coefficients as an algebraic expression, highest
// order first. coeffs[i] is the coefficient of x^i.
//
// Every coefficient is printed verbatim, including coefficients of 1 and
// negative coefficients:
//
//	FormatPolynomial([]float64{2, 2, 1}) == "1x^2 + 2x + 2"
//	FormatPolynomial([]float64{-1, 1})   == "1x + -1"
//
// It returns a [ValidationError] if coeffs is empty.
func FormatPolynomial(coeffs []float64) (string, error) {
	if len(coeffs) == 0 {
		return "", validationErrorf("FormatPolynomial", "expected at least one coefficient, got 0")
	}
	var sb strings.Builder
	for order := len(coeffs) - 1; order >= 0; order-- {
		sb.WriteString(formatFloat(coeffs[order]))
		switch order {
		case 0:
		case 1:
			sb.WriteString("x")
		default:
			sb.WriteString("x^")
			sb.WriteString(strconv.Itoa(order))
		}
		if order > 0 {
			sb.WriteString(" + ")
		}
	}
	return sb.String(), nil
}
