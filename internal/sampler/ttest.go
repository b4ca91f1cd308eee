package sampler

import (
	"math"

	"github.com/rotisserie/eris"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// TTestResult holds the outcome of a paired t-test.
//
// P is the Student's-t probability density evaluated at T, not a tail
// probability. Downstream compares it against the significance threshold
// the same way the original tooling always has, so the computation is
// kept bit-for-bit rather than replaced with a proper two-tailed p-value.
type TTestResult struct {
	T float64
	P float64
}

// PairedT computes the paired t statistic over two equal-length series:
// per-pair differences x[i]-y[i], their mean and sample standard
// deviation (n-1), standard error sd/sqrt(n), t = mean/se, and the
// density of a Student's t distribution with n-1 degrees of freedom at t.
//
// Degenerate samples (fewer than two pairs, or zero standard error)
// return ErrDegenerateSample together with a result whose values follow
// IEEE-754 semantics (NaN or infinities). Callers decide whether to
// record or reject such results.
func PairedT(x, y []float64) (TTestResult, error) {
	if len(x) != len(y) {
		return TTestResult{}, eris.Errorf("ttest: series length mismatch: %d vs %d", len(x), len(y))
	}
	n := len(x)
	if n < 2 {
		return TTestResult{T: math.NaN(), P: math.NaN()},
			eris.Wrapf(ErrDegenerateSample, "ttest: %d pairs", n)
	}

	d := make([]float64, n)
	for i := range x {
		d[i] = x[i] - y[i]
	}

	dbar := stat.Mean(d, nil)
	sd := stat.StdDev(d, nil)
	se := sd / math.Sqrt(float64(n))
	t := dbar / se

	res := TTestResult{T: t}
	if math.IsNaN(t) || math.IsInf(t, 0) {
		res.P = math.NaN()
		return res, eris.Wrap(ErrDegenerateSample, "ttest: zero standard error")
	}

	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}
	res.P = dist.Prob(t)
	return res, nil
}
