package model

// IterationStats holds the descriptive statistics of one resampling
// iteration. Field order is the persisted column order; csv tags name the
// output columns.
type IterationStats struct {
	SmallPreMean  float64 `csv:"small_pre_mean" json:"small_pre_mean"`
	SmallPostMean float64 `csv:"small_post_mean" json:"small_post_mean"`
	SmallMidMean  float64 `csv:"small_mid_mean" json:"small_mid_mean"`
	SmallGainMean float64 `csv:"small_gain_mean" json:"small_gain_mean"`

	BigPreMean  float64 `csv:"big_pre_mean" json:"big_pre_mean"`
	BigPostMean float64 `csv:"big_post_mean" json:"big_post_mean"`
	BigMidMean  float64 `csv:"big_mid_mean" json:"big_mid_mean"`
	BigGainMean float64 `csv:"big_gain_mean" json:"big_gain_mean"`

	SmallPreStdev  float64 `csv:"small_pre_stdev" json:"small_pre_stdev"`
	SmallPostStdev float64 `csv:"small_post_stdev" json:"small_post_stdev"`
	SmallMidStdev  float64 `csv:"small_mid_stdev" json:"small_mid_stdev"`
	SmallGainStdev float64 `csv:"small_gain_stdev" json:"small_gain_stdev"`

	BigPreStdev  float64 `csv:"big_pre_stdev" json:"big_pre_stdev"`
	BigPostStdev float64 `csv:"big_post_stdev" json:"big_post_stdev"`
	BigMidStdev  float64 `csv:"big_mid_stdev" json:"big_mid_stdev"`
	BigGainStdev float64 `csv:"big_gain_stdev" json:"big_gain_stdev"`

	PostTPValue float64 `csv:"post_t_pvalue" json:"post_t_pvalue"`
	PostTTValue float64 `csv:"post_t_tvalue" json:"post_t_tvalue"`
}

var statNames = []string{
	"small_pre_mean",
	"small_post_mean",
	"small_mid_mean",
	"small_gain_mean",
	"big_pre_mean",
	"big_post_mean",
	"big_mid_mean",
	"big_gain_mean",
	"small_pre_stdev",
	"small_post_stdev",
	"small_mid_stdev",
	"small_gain_stdev",
	"big_pre_stdev",
	"big_post_stdev",
	"big_mid_stdev",
	"big_gain_stdev",
	"post_t_pvalue",
	"post_t_tvalue",
}

// StatNames returns the IterationStats field names in persisted column
// order. Callers must not mutate the returned slice.
func StatNames() []string { return statNames }

// Values returns the fields in StatNames order.
func (s IterationStats) Values() []float64 {
	return []float64{
		s.SmallPreMean,
		s.SmallPostMean,
		s.SmallMidMean,
		s.SmallGainMean,
		s.BigPreMean,
		s.BigPostMean,
		s.BigMidMean,
		s.BigGainMean,
		s.SmallPreStdev,
		s.SmallPostStdev,
		s.SmallMidStdev,
		s.SmallGainStdev,
		s.BigPreStdev,
		s.BigPostStdev,
		s.BigMidStdev,
		s.BigGainStdev,
		s.PostTPValue,
		s.PostTTValue,
	}
}

// StatsFromValues is the inverse of Values. It panics if vs does not have
// exactly one value per field.
func StatsFromValues(vs []float64) IterationStats {
	if len(vs) != len(statNames) {
		panic("model: StatsFromValues: wrong value count")
	}
	return IterationStats{
		SmallPreMean:   vs[0],
		SmallPostMean:  vs[1],
		SmallMidMean:   vs[2],
		SmallGainMean:  vs[3],
		BigPreMean:     vs[4],
		BigPostMean:    vs[5],
		BigMidMean:     vs[6],
		BigGainMean:    vs[7],
		SmallPreStdev:  vs[8],
		SmallPostStdev: vs[9],
		SmallMidStdev:  vs[10],
		SmallGainStdev: vs[11],
		BigPreStdev:    vs[12],
		BigPostStdev:   vs[13],
		BigMidStdev:    vs[14],
		BigGainStdev:   vs[15],
		PostTPValue:    vs[16],
		PostTTValue:    vs[17],
	}
}
