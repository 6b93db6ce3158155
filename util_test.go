package solve

import (
	"math/cmplx"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

const epsilon = 1e-12

// numberComparer considers two Numbers equal if they are of the same kind
// and their values agree to within epsilon.
var numberComparer = cmp.Comparer(func(n1, n2 Number) bool {
	switch n1 := n1.(type) {
	case Real:
		n2, ok := n2.(Real)
		return ok && cmplx.Abs(n1.Complex()-n2.Complex()) <= epsilon
	case Complex:
		n2, ok := n2.(Complex)
		return ok && cmplx.Abs(n1.Complex()-n2.Complex()) <= epsilon
	default:
		return false
	}
})
