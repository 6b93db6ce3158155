package solve

// Ratio is the solution of a linear equation, kept as an undivided fraction.
//
// There is deliberately no method that performs the division. Callers that
// want a decimal compute r.Num() / r.Den() themselves.
type Ratio struct {
	den float64
	num float64
}

// NewRatio returns the ratio num/den. The denominator is not checked; a zero
// denominator yields a degenerate Ratio.
func NewRatio(den, num float64) Ratio {
	return Ratio{den: den, num: num}
}

// Num returns the numerator.
func (r Ratio) Num() float64 { return r.num }

// Den returns the denominator.
func (r Ratio) Den() float64 { return r.den }

// String returns "num/den", without reducing the fraction or hiding a
// denominator of 1.
func (r Ratio) String() string {
	return formatFloat(r.num) + "/" + formatFloat(r.den)
}
