// Package solve solves linear and quadratic equations and returns their
// solutions in symbolic form instead of as decimals.
//
// Dividing two floating-point numbers frequently produces a decimal expansion
// that is infinite or lossy, even though the answer is a simple ratio of the
// coefficients. This package keeps the unevaluated expression around and
// only computes a numeric value when asked to.
//
// # Coefficients
//
// All functions that accept a list of coefficients order them lowest order
// first: index i holds the coefficient of xⁱ. [Poly] is the named form of
// such a list. The solvers validate the number of coefficients and nothing
// else. In particular, a leading coefficient of zero is not rejected; it
// surfaces as infinite or NaN values once the solution is evaluated.
//
// # Linear equations
//
// [SolveLinear] solves ax + b = 0 and returns a [Ratio], the fraction -b/a.
// Its String method prints the fraction verbatim, as in "-5/3". Ratio
// intentionally has no method that divides; callers wanting a decimal divide
// [Ratio.Num] by [Ratio.Den] themselves.
//
// # Quadratic equations
//
// [SolveQuadratic] solves ax² + bx + c = 0 and returns two [Root] values, the
// branches of the quadratic formula with the plus sign and the minus sign, in
// that order. A Root can be displayed as the formula with its coefficients
// substituted ([Root.String]), evaluated ([Root.Eval]) and written as a
// linear factor ([Root.Factor]).
//
// Evaluation always takes the square root of the discriminant in the complex
// plane. The result is a [Number], which is a [Real] when the imaginary part
// is zero and a [Complex] otherwise. See [CollapseIfReal].
//
// # Output
//
// Both solvers announce the equation they are about to solve by writing a
// line such as
//
//	Solve 1x^2 + 3x + 2 = 0
//
// to standard output. Every coefficient is printed as is; there is no special
// treatment of coefficients equal to 1 or of negative coefficients. Use a
// [Solver] with a different Out to redirect the line.
//
// # Graphs
//
// [Plot] and [WritePlot] draw a polynomial and its real roots using
// gonum.org/v1/plot. [Chart] and [WriteChart] produce an interactive HTML
// chart using go-echarts.
package solve
