package solve

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"
)

func mustRoot(t *testing.T, a, b, c float64, sign Sign) Root {
	t.Helper()
	r, err := NewRoot(a, b, c, sign)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestNewRootInvalidSign(t *testing.T) {
	for _, sign := range []Sign{0, '*', 'x', '±'} {
		_, err := NewRoot(1, 3, 2, sign)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("NewRoot with sign %q: got error %v, want *ValidationError", rune(sign), err)
		}
	}
}

func TestParseSign(t *testing.T) {
	for tok, want := range map[string]Sign{"+": Plus, "-": Minus} {
		got, err := ParseSign(tok)
		if err != nil {
			t.Errorf("ParseSign(%q) returned error: %s", tok, err)
		}
		if got != want {
			t.Errorf("ParseSign(%q) = %v, want %v", tok, got, want)
		}
	}
	for _, tok := range []string{"", "+-", "plus", " -", "*"} {
		if _, err := ParseSign(tok); !errors.Is(err, ErrValidation) {
			t.Errorf("ParseSign(%q): got error %v, want validation error", tok, err)
		}
	}
}

func TestRootString(t *testing.T) {
	tests := []struct {
		a, b, c float64
		sign    Sign
		want    string
	}{
		{1, 3, 2, Plus, "(-3 + sqrt[3^2 - 4*1*2])/(2*1)"},
		{1, 3, 2, Minus, "(-3 - sqrt[3^2 - 4*1*2])/(2*1)"},
		{1, 2, 2, Plus, "(-2 + sqrt[2^2 - 4*1*2])/(2*1)"},
		// A negative b is substituted verbatim.
		{2, -3, -0.5, Minus, "(3 - sqrt[-3^2 - 4*2*-0.5])/(2*2)"},
		{1, 0, -4, Plus, "(0 + sqrt[0^2 - 4*1*-4])/(2*1)"},
	}
	for _, tt := range tests {
		r := mustRoot(t, tt.a, tt.b, tt.c, tt.sign)
		if got := r.String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestRootEval(t *testing.T) {
	tests := []struct {
		a, b, c float64
		want    [2]Number
	}{
		{1, 3, 2, [2]Number{Real(-1), Real(-2)}},
		{1, 2, 2, [2]Number{Complex(complex(-1, 1)), Complex(complex(-1, -1))}},
		{1, 2, 1, [2]Number{Real(-1), Real(-1)}},
		{1, 0, -4, [2]Number{Real(2), Real(-2)}},
		{1, 0, 4, [2]Number{Complex(complex(0, 2)), Complex(complex(0, -2))}},
		{2, -3, -2, [2]Number{Real(2), Real(-0.5)}},
		{-1, 0, 1, [2]Number{Real(-1), Real(1)}},
	}
	for _, tt := range tests {
		got := [2]Number{
			mustRoot(t, tt.a, tt.b, tt.c, Plus).Eval(),
			mustRoot(t, tt.a, tt.b, tt.c, Minus).Eval(),
		}
		diff(t, tt.want, got, numberComparer)
	}
}

func TestRootEvalIdempotent(t *testing.T) {
	r := mustRoot(t, 1, 2, 2, Minus)
	first := r.Eval()
	for i := 0; i < 3; i++ {
		if got := r.Eval(); got != first {
			t.Fatalf("Eval changed from %v to %v", first, got)
		}
	}
}

func TestRootEvalZeroLeadingCoefficient(t *testing.T) {
	// Division by zero is not guarded against and shows up in the result.
	z := mustRoot(t, 0, 3, 2, Minus).Eval().Complex()
	if !cmplx.IsInf(z) && !cmplx.IsNaN(z) {
		t.Errorf("got %v, want infinite or NaN result", z)
	}
}

func TestRootFactor(t *testing.T) {
	tests := []struct {
		a, b, c float64
		sign    Sign
		want    string
	}{
		{1, 3, 2, Plus, "(x + 1)"},
		{1, 3, 2, Minus, "(x + 2)"},
		{1, 2, 2, Plus, "(x + (1-1i))"},
		{1, 2, 2, Minus, "(x + (1+1i))"},
		{1, 0, -4, Plus, "(x + -2)"},
		{1, 0, 0, Plus, "(x + 0)"},
	}
	for _, tt := range tests {
		r := mustRoot(t, tt.a, tt.b, tt.c, tt.sign)
		if got := r.Factor(); got != tt.want {
			t.Errorf("%s: got factor %q, want %q", r, got, tt.want)
		}
	}
}

func TestRootAccessors(t *testing.T) {
	r := mustRoot(t, 1, 2, 3, Minus)
	a, b, c := r.Coefficients()
	diff(t, [3]float64{1, 2, 3}, [3]float64{a, b, c})
	diff(t, Minus, r.Sign())
	diff(t, -8.0, r.Discriminant())
	diff(t, "-", r.Sign().String())
}

func TestRootsSatisfyTheirEquation(t *testing.T) {
	for _, coeffs := range [][3]float64{
		{1, 3, 2},
		{1, 2, 2},
		{3, -7, 0.25},
		{-2, 0, 8},
		{1, 0, -2},
	} {
		a, b, c := coeffs[0], coeffs[1], coeffs[2]
		p := Poly{c, b, a}
		for _, sign := range []Sign{Plus, Minus} {
			r := mustRoot(t, a, b, c, sign)
			if !p.HasRoot(r.Eval(), 1e-12) {
				t.Errorf("%s = %v is not a root of %s", r, r.Eval(), p)
			}
		}
	}
}

func TestRootsOfOtherEquation(t *testing.T) {
	// -1 and -2 solve x² + 3x + 2 = 0 but not x² + 3x + 5 = 0.
	other := Poly{5, 3, 1}
	for _, sign := range []Sign{Plus, Minus} {
		r := mustRoot(t, 1, 3, 2, sign)
		if other.HasRoot(r.Eval(), 1e-9) {
			t.Errorf("%v unexpectedly is a root of %s", r.Eval(), other)
		}
	}
}

func TestRootZeroValueString(t *testing.T) {
	diff(t, "(0 Sign(0) sqrt[0^2 - 4*0*0])/(2*0)", Root{}.String())
	diff(t, "+", Plus.String())
	diff(t, "Sign(42)", Sign('*').String())
}

func TestRootEvalZeroLeadingCoefficientIsComplex(t *testing.T) {
	v, ok := mustRoot(t, 0, 3, 2, Minus).Eval().(Complex)
	if !ok {
		t.Fatalf("got %#v, want a Complex", v)
	}
	if !math.IsInf(v.Real(), -1) || !math.IsNaN(v.Imag()) {
		t.Errorf("got %v, want (-Inf+NaNi)", v)
	}
}

func TestRootComplexParts(t *testing.T) {
	v, ok := mustRoot(t, 1, 2, 5, Plus).Eval().(Complex)
	if !ok {
		t.Fatalf("expected complex root")
	}
	if v.Real() != -1 || math.Abs(v.Imag()-2) > epsilon {
		t.Errorf("got %v, want -1+2i", v)
	}
}
