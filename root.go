package solve

import (
	"math/cmplx"
	"strconv"
	"strings"
)

// Sign selects one branch of the quadratic formula.
type Sign byte

const (
	Plus  Sign = '+'
	Minus Sign = '-'
)

func (s Sign) String() string {
	if !s.valid() {
		return "Sign(" + strconv.Itoa(int(s)) + ")"
	}
	return string(rune(s))
}

func (s Sign) valid() bool { return s == Plus || s == Minus }

// ParseSign parses the tokens "+" and "-". Any other token results in a
// [ValidationError].
func ParseSign(tok string) (Sign, error) {
	switch tok {
	case "+":
		return Plus, nil
	case "-":
		return Minus, nil
	default:
		return 0, validationErrorf("ParseSign", "sign must be + or -, got %q", tok)
	}
}

// Root is one root of the quadratic equation ax² + bx + c = 0, kept in the
// unevaluated form (-b ± √(b² - 4ac)) / 2a. The sign picks the branch.
//
// Roots are immutable and safe for concurrent use. The zero value is not a
// valid Root, as it has no sign; use [NewRoot] or [SolveQuadratic].
type Root struct {
	a, b, c float64
	sign    Sign
}

// NewRoot returns the root of ax² + bx + c = 0 on the given branch of the
// quadratic formula. It returns a [ValidationError] if sign is neither [Plus]
// nor [Minus].
//
// Note the coefficient order, which is highest order first, unlike the
// coefficient lists accepted by [SolveQuadratic].
func NewRoot(a, b, c float64, sign Sign) (Root, error) {
	if !sign.valid() {
		return Root{}, validationErrorf("NewRoot", "sign must be + or -, got %q", rune(sign))
	}
	return Root{a: a, b: b, c: c, sign: sign}, nil
}

// Coefficients returns the coefficients of ax² + bx + c.
func (r Root) Coefficients() (a, b, c float64) { return r.a, r.b, r.c }

// Sign returns the branch of the quadratic formula r represents.
func (r Root) Sign() Sign { return r.sign }

// Discriminant returns b² - 4ac.
func (r Root) Discriminant() float64 {
	return r.b*r.b - 4*r.a*r.c
}

// String returns the quadratic formula with the coefficients substituted
// verbatim, such as "(-3 + sqrt[3^2 - 4*1*2])/(2*1)". No simplification takes
// place; a negative b produces a double negative in the discriminant.
func (r Root) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(formatFloat(neg(r.b)))
	sb.WriteString(" ")
	sb.WriteString(r.sign.String())
	sb.WriteString(" sqrt[")
	sb.WriteString(formatFloat(r.b))
	sb.WriteString("^2 - 4*")
	sb.WriteString(formatFloat(r.a))
	sb.WriteString("*")
	sb.WriteString(formatFloat(r.c))
	sb.WriteString("])/(2*")
	sb.WriteString(formatFloat(r.a))
	sb.WriteString(")")
	return sb.String()
}

// Eval computes the root. The square root of the discriminant is always taken
// in the complex plane, so negative discriminants yield a [Complex] and
// non-negative ones a [Real].
//
// A zero a is not checked for and results in infinite or NaN components. With
// a non-negative discriminant the imaginary part is then 0/0, so the result is
// a [Complex] holding a NaN, not a [Real].
func (r Root) Eval() Number {
	return CollapseIfReal(r.eval())
}

func (r Root) eval() complex128 {
	sq := cmplx.Sqrt(complex(r.Discriminant(), 0))
	if r.sign == Minus {
		sq = -sq
	}
	num := complex(neg(r.b), 0) + sq
	den := 2 * r.a
	return complex(real(num)/den, imag(num)/den)
}

// Factor returns the linear factor whose zero is r, as "(x + k)" with
// k = -r.Eval(). For example, the root -2 has the factor "(x + 2)" and the
// root -1+1i has the factor "(x + (1-1i))".
func (r Root) Factor() string {
	k := CollapseIfReal(negComplex(r.eval()))
	return "(x + " + k.String() + ")"
}
