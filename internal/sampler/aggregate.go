package sampler

import (
	"github.com/rotisserie/eris"

	"github.com/Seacant/adjei-sampling/internal/model"
)

// Aggregate computes second-order statistics across the full iteration
// log: the mean and sample standard deviation of every IterationStats
// field, and the fraction of iterations whose t-test value fell below
// threshold. With a single iteration the means equal that iteration's
// values and the standard deviations are NaN.
func Aggregate(log []model.IterationStats, threshold float64) (model.Summary, error) {
	if len(log) == 0 {
		return model.Summary{}, eris.Wrap(ErrEmptyIterationSet, "aggregate")
	}

	n := len(log)
	fields := len(model.StatNames())

	series := make([][]float64, fields)
	for i := range series {
		series[i] = make([]float64, n)
	}
	for j, it := range log {
		for i, v := range it.Values() {
			series[i][j] = v
		}
	}

	means := make([]float64, fields)
	stdevs := make([]float64, fields)
	for i, xs := range series {
		means[i], stdevs[i] = meanStdev(xs)
	}

	significant := 0
	for _, it := range log {
		if it.PostTPValue < threshold {
			significant++
		}
	}

	return model.Summary{
		Iterations:            n,
		Mean:                  model.StatsFromValues(means),
		Stdev:                 model.StatsFromValues(stdevs),
		ProportionSignificant: float64(significant) / float64(n),
	}, nil
}
