package sampler

import (
	"math"
	"math/rand"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Seacant/adjei-sampling/internal/model"
)

func TestAggregate_Empty(t *testing.T) {
	t.Parallel()

	_, err := Aggregate(nil, 0.05)
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrEmptyIterationSet))
}

func TestAggregate_KnownProportion(t *testing.T) {
	t.Parallel()

	log := []model.IterationStats{
		{PostTPValue: 0.01},
		{PostTPValue: 0.049},
		{PostTPValue: 0.05}, // not strictly below the threshold
		{PostTPValue: 0.9},
	}

	s, err := Aggregate(log, 0.05)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Iterations)
	assert.InDelta(t, 0.5, s.ProportionSignificant, 1e-12)
	assert.GreaterOrEqual(t, s.ProportionSignificant, 0.0)
	assert.LessOrEqual(t, s.ProportionSignificant, 1.0)
}

func TestAggregate_MeanAndStdev(t *testing.T) {
	t.Parallel()

	a := model.IterationStats{SmallPreMean: 1, BigGainStdev: 10, PostTTValue: -2}
	b := model.IterationStats{SmallPreMean: 3, BigGainStdev: 30, PostTTValue: 2}

	s, err := Aggregate([]model.IterationStats{a, b}, 0.05)
	require.NoError(t, err)

	assert.InDelta(t, 2.0, s.Mean.SmallPreMean, 1e-12)
	assert.InDelta(t, 20.0, s.Mean.BigGainStdev, 1e-12)
	assert.InDelta(t, 0.0, s.Mean.PostTTValue, 1e-12)

	// Sample stdev of {x, y} is |x-y|/sqrt(2).
	assert.InDelta(t, 2.0/math.Sqrt2, s.Stdev.SmallPreMean, 1e-12)
	assert.InDelta(t, 20.0/math.Sqrt2, s.Stdev.BigGainStdev, 1e-12)
	assert.InDelta(t, 4.0/math.Sqrt2, s.Stdev.PostTTValue, 1e-12)
}

func TestAggregate_SingleIteration(t *testing.T) {
	t.Parallel()

	// One iteration of the size 5 / size 3 scenario: the aggregate means
	// equal that single row and the aggregate stdevs are undefined.
	big, small := trialGroups()
	st, err := RunIteration(rand.New(rand.NewSource(11)), big, small)
	require.NoError(t, err)

	s, err := Aggregate([]model.IterationStats{st}, 0.05)
	require.NoError(t, err)

	assert.Equal(t, 1, s.Iterations)
	assert.Equal(t, st, s.Mean)
	for i, v := range s.Stdev.Values() {
		assert.True(t, math.IsNaN(v), "stdev field %s should be NaN for n=1", model.StatNames()[i])
	}
}
