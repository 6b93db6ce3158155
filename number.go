package solve

import (
	"fmt"
	"strconv"
)

// Number is the result of numerically evaluating a [Root]. It is either a
// [Real] or a [Complex].
type Number interface {
	// Complex returns the value as a complex number. For a Real, the
	// imaginary part is zero.
	Complex() complex128
	String() string

	isNumber()
}

var (
	_ Number = Real(0)
	_ Number = Complex(0)
)

// Real is a real-valued [Number].
type Real float64

func (r Real) Complex() complex128 { return complex(float64(r), 0) }
func (r Real) String() string      { return formatFloat(float64(r)) }
func (Real) isNumber()             {}

// Complex is a [Number] with a non-zero imaginary part.
//
// Values produced by [CollapseIfReal] never have a zero imaginary part, but a
// Complex constructed directly may.
type Complex complex128

func (c Complex) Complex() complex128 { return complex128(c) }

// String formats c the way fmt formats complex128 values, e.g. "(-1+1i)".
func (c Complex) String() string { return fmt.Sprint(complex128(c)) }
func (Complex) isNumber()        {}

// Real returns the real part of c.
func (c Complex) Real() float64 { return real(c) }

// Imag returns the imaginary part of c.
func (c Complex) Imag() float64 { return imag(c) }

// CollapseIfReal returns z as a [Real] if its imaginary part is exactly zero,
// and as a [Complex] otherwise.
//
// CollapseIfReal(CollapseIfReal(z).Complex()) == CollapseIfReal(z) for all z.
func CollapseIfReal(z complex128) Number {
	if imag(z) == 0 {
		return Real(real(z))
	}
	return Complex(z)
}

// formatFloat formats x in the shortest representation that round-trips.
func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// neg negates x without ever producing a negative zero.
func neg(x float64) float64 {
	return 0 - x
}

func negComplex(z complex128) complex128 {
	return complex(neg(real(z)), neg(imag(z)))
}
