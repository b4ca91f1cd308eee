package sampler

import (
	"math/rand"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/Seacant/adjei-sampling/internal/model"
)

// RunIteration executes one resampling trial: shuffle the small group
// with rng, greedily match it against the big group on Pre, then compute
// the per-side descriptive statistics and the paired t-test on Post.
//
// Neither input slice is mutated; each call works on its own copies. The
// generator is the only state shared across iterations, so a fixed seed
// reproduces the full run.
func RunIteration(rng *rand.Rand, big, small []model.Record) (model.IterationStats, error) {
	shuffled := make([]model.Record, len(small))
	copy(shuffled, small)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	pairs, err := MatchNearest(big, shuffled)
	if err != nil {
		return model.IterationStats{}, err
	}

	smallPre := series(pairs, func(p model.Pair) float64 { return p.Small.Pre })
	smallPost := series(pairs, func(p model.Pair) float64 { return p.Small.Post })
	smallMid := series(pairs, func(p model.Pair) float64 { return p.Small.Mid })
	smallGain := series(pairs, func(p model.Pair) float64 { return p.Small.Gain })

	bigPre := series(pairs, func(p model.Pair) float64 { return p.Big.Pre })
	bigPost := series(pairs, func(p model.Pair) float64 { return p.Big.Post })
	bigMid := series(pairs, func(p model.Pair) float64 { return p.Big.Mid })
	bigGain := series(pairs, func(p model.Pair) float64 { return p.Big.Gain })

	var s model.IterationStats
	s.SmallPreMean, s.SmallPreStdev = meanStdev(smallPre)
	s.SmallPostMean, s.SmallPostStdev = meanStdev(smallPost)
	s.SmallMidMean, s.SmallMidStdev = meanStdev(smallMid)
	s.SmallGainMean, s.SmallGainStdev = meanStdev(smallGain)
	s.BigPreMean, s.BigPreStdev = meanStdev(bigPre)
	s.BigPostMean, s.BigPostStdev = meanStdev(bigPost)
	s.BigMidMean, s.BigMidStdev = meanStdev(bigMid)
	s.BigGainMean, s.BigGainStdev = meanStdev(bigGain)

	res, err := PairedT(smallPost, bigPost)
	if err != nil {
		if !eris.Is(err, ErrDegenerateSample) {
			return model.IterationStats{}, err
		}
		// Non-finite t-test values are recorded as-is; the run continues.
		zap.L().Warn("degenerate paired t-test sample", zap.Int("pairs", len(pairs)))
	}
	s.PostTPValue = res.P
	s.PostTTValue = res.T

	return s, nil
}

func series(pairs []model.Pair, f func(model.Pair) float64) []float64 {
	out := make([]float64, len(pairs))
	for i, p := range pairs {
		out[i] = f(p)
	}
	return out
}

// meanStdev returns the mean and sample standard deviation (n-1) of xs.
func meanStdev(xs []float64) (float64, float64) {
	return stat.Mean(xs, nil), stat.StdDev(xs, nil)
}
