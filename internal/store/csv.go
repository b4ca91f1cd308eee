package store

import (
	"context"
	"encoding/csv"
	"os"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"

	"github.com/Seacant/adjei-sampling/internal/model"
)

// CSVWriter writes the iteration table to a CSV file, one row per
// iteration, columns in IterationStats field order.
type CSVWriter struct {
	path string
}

// NewCSV returns a writer targeting path. The file is created only when
// WriteIterations is called, so a failed run leaves nothing behind.
func NewCSV(path string) *CSVWriter {
	return &CSVWriter{path: path}
}

func (w *CSVWriter) WriteIterations(_ context.Context, _ RunInfo, stats []model.IterationStats) error {
	f, err := os.Create(w.path)
	if err != nil {
		return eris.Wrap(err, "store: create csv")
	}

	cw := csv.NewWriter(f)
	enc := csvutil.NewEncoder(cw)
	for _, s := range stats {
		if err := enc.Encode(s); err != nil {
			f.Close()
			return eris.Wrap(err, "store: encode iteration")
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		return eris.Wrap(err, "store: flush csv")
	}

	return eris.Wrap(f.Close(), "store: close csv")
}

func (w *CSVWriter) Close() error { return nil }
