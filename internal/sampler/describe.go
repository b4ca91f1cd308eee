package sampler

import "github.com/Seacant/adjei-sampling/internal/model"

// GroupStats summarizes one population's four measurements.
type GroupStats struct {
	N int

	PreMean  float64
	PreStdev float64

	MidMean  float64
	MidStdev float64

	PostMean  float64
	PostStdev float64

	GainMean  float64
	GainStdev float64
}

// Describe computes per-field mean and sample standard deviation over an
// unmatched population.
func Describe(records []model.Record) GroupStats {
	pre := make([]float64, len(records))
	mid := make([]float64, len(records))
	post := make([]float64, len(records))
	gain := make([]float64, len(records))
	for i, r := range records {
		pre[i] = r.Pre
		mid[i] = r.Mid
		post[i] = r.Post
		gain[i] = r.Gain
	}

	var g GroupStats
	g.N = len(records)
	g.PreMean, g.PreStdev = meanStdev(pre)
	g.MidMean, g.MidStdev = meanStdev(mid)
	g.PostMean, g.PostStdev = meanStdev(post)
	g.GainMean, g.GainStdev = meanStdev(gain)
	return g
}
