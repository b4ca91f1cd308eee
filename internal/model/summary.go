package model

// Summary holds the cross-iteration aggregate: the mean and sample
// standard deviation of every IterationStats field across the full
// iteration log, plus the fraction of iterations whose t-test value fell
// below the significance threshold.
type Summary struct {
	Iterations            int            `json:"iterations"`
	Mean                  IterationStats `json:"mean"`
	Stdev                 IterationStats `json:"stdev"`
	ProportionSignificant float64        `json:"proportion_significant"`
}

// Scalar is one named value of the console report.
type Scalar struct {
	Name  string
	Value float64
}

// Scalars enumerates every aggregate value in a fixed order: the mean of
// each IterationStats field, then the standard deviation of each, then
// proportion_significant.
func (s Summary) Scalars() []Scalar {
	names := StatNames()
	means := s.Mean.Values()
	stdevs := s.Stdev.Values()

	out := make([]Scalar, 0, 2*len(names)+1)
	for i, name := range names {
		out = append(out, Scalar{Name: name + "_mean", Value: means[i]})
	}
	for i, name := range names {
		out = append(out, Scalar{Name: name + "_stdev", Value: stdevs[i]})
	}
	out = append(out, Scalar{Name: "proportion_significant", Value: s.ProportionSignificant})
	return out
}
