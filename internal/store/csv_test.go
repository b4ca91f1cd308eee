package store

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Seacant/adjei-sampling/internal/model"
)

func TestCSVWriter_WriteIterations(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "iterations.csv")
	w := NewCSV(path)
	t.Cleanup(func() { w.Close() }) //nolint:errcheck

	stats := []model.IterationStats{
		{SmallPreMean: 1.5, BigPreMean: 2.5, PostTPValue: 0.04, PostTTValue: -2.1},
		{SmallPreMean: 1.6, BigPreMean: 2.4, PostTPValue: 0.2, PostTTValue: 0.3},
	}

	require.NoError(t, w.WriteIterations(context.Background(), RunInfo{ID: "run-1"}, stats))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// Header matches the canonical column order.
	assert.Equal(t, model.StatNames(), rows[0])

	v, err := strconv.ParseFloat(rows[1][0], 64)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, v, 1e-12)

	v, err = strconv.ParseFloat(rows[2][17], 64)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, v, 1e-12)
}

func TestCSVWriter_NoFileUntilWrite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "iterations.csv")
	NewCSV(path)

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
