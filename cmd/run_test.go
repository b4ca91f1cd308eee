package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Seacant/adjei-sampling/internal/model"
	"github.com/Seacant/adjei-sampling/internal/store"
)

const testCSV = `condition,mid,pre,gain,final
Big-Group,55,50,10,60
Big-Group,45,40,8,48
Big-Group,65,60,12,72
Big-Group,35,30,6,36
Big-Group,25,20,4,24
Treatment,50,48,15,63
Treatment,30,28,11,35
Treatment,22,18,9,29
`

func writeTestInput(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "observations.csv")
	require.NoError(t, os.WriteFile(path, []byte(testCSV), 0o644))
	return path
}

func TestPrintSummary_Order(t *testing.T) {
	s := model.Summary{
		Iterations:            2,
		Mean:                  model.IterationStats{SmallPreMean: 1.5},
		ProportionSignificant: 0.5,
	}

	var buf bytes.Buffer
	printSummary(&buf, s)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 37)
	assert.Equal(t, "small_pre_mean_mean = 1.5", lines[0])
	assert.Equal(t, "proportion_significant = 0.5", lines[36])
}

func TestNewWriter_Dispatch(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	w, err := newWriter(ctx, "csv", filepath.Join(dir, "out.csv"))
	require.NoError(t, err)
	assert.IsType(t, &store.CSVWriter{}, w)
	require.NoError(t, w.Close())

	w, err = newWriter(ctx, "sqlite", filepath.Join(dir, "out.db"))
	require.NoError(t, err)
	assert.IsType(t, &store.SQLiteStore{}, w)
	require.NoError(t, w.Close())

	_, err = newWriter(ctx, "parquet", filepath.Join(dir, "out.parquet"))
	require.Error(t, err)
}

func TestRunCommand_EndToEnd(t *testing.T) {
	input := writeTestInput(t)
	output := filepath.Join(t.TempDir(), "iterations.csv")

	rootCmd.SetArgs([]string{"run", input, "-i", "3", "--seed", "7", "-o", output})
	require.NoError(t, rootCmd.Execute())

	f, err := os.Open(output)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4, "header plus one row per iteration")
	assert.Equal(t, model.StatNames(), rows[0])
}

func TestRunCommand_InsufficientPopulation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "observations.csv")
	require.NoError(t, os.WriteFile(path, []byte(`condition,mid,pre,gain,final
Big-Group,1,1,1,1
Treatment,1,1,1,1
Treatment,2,2,2,2
`), 0o644))
	output := filepath.Join(t.TempDir(), "iterations.csv")

	rootCmd.SetArgs([]string{"run", path, "-i", "2", "-o", output})
	require.Error(t, rootCmd.Execute())

	// A failed run leaves no output behind.
	_, err := os.Stat(output)
	assert.True(t, os.IsNotExist(err))
}
