package solve

import "strings"

// Factors concatenates the linear factors of roots. For the two roots of a
// quadratic returned by [SolveQuadratic] this is the factored form of the
// quadratic divided by its leading coefficient, such as "(x + 1)(x + 2)".
func Factors(roots ...Root) string {
	var sb strings.Builder
	for _, r := range roots {
		sb.WriteString(r.Factor())
	}
	return sb.String()
}

// Expand multiplies the linear factors of r0 and r1 and returns the
// coefficients of the resulting monic quadratic, lowest order first.
//
// For the two roots of ax² + bx + c = 0, multiplying the result by a yields
// [c, b, a] up to rounding error.
func Expand(r0, r1 Root) [3]complex128 {
	z0, z1 := r0.eval(), r1.eval()
	// (x - z0)(x - z1) = x² - (z0 + z1)x + z0z1
	return [3]complex128{z0 * z1, -(z0 + z1), 1}
}
