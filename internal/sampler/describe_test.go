package sampler

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Seacant/adjei-sampling/internal/model"
)

func TestDescribe(t *testing.T) {
	t.Parallel()

	g := Describe([]model.Record{
		{Pre: 1, Mid: 2, Post: 3, Gain: 2},
		{Pre: 3, Mid: 4, Post: 5, Gain: 2},
	})

	assert.Equal(t, 2, g.N)
	assert.InDelta(t, 2.0, g.PreMean, 1e-12)
	assert.InDelta(t, 3.0, g.MidMean, 1e-12)
	assert.InDelta(t, 4.0, g.PostMean, 1e-12)
	assert.InDelta(t, 2.0, g.GainMean, 1e-12)
	assert.InDelta(t, math.Sqrt2, g.PreStdev, 1e-12)
	assert.Zero(t, g.GainStdev)
}

func TestDescribe_Empty(t *testing.T) {
	t.Parallel()

	g := Describe(nil)
	assert.Equal(t, 0, g.N)
	assert.True(t, math.IsNaN(g.PreMean))
}
