package dataset

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/Seacant/adjei-sampling/internal/model"
)

// requiredCols are the input columns every row must carry. "final" maps
// to Record.Post.
var requiredCols = []string{"condition", "mid", "pre", "gain", "final"}

// Load reads the observation table at path, dispatching on the file
// extension: .xlsx workbooks go through the XLSX reader, everything else
// is treated as CSV.
func Load(path string) ([]model.Record, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return LoadXLSX(path)
	}
	return LoadCSV(path)
}

// LoadCSV reads a CSV observation table. Any row that fails to parse
// aborts the whole load.
func LoadCSV(path string) ([]model.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "dataset: open csv")
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, eris.Wrap(err, "dataset: read csv")
	}

	return recordsFromRows(rows)
}

// recordsFromRows parses a header row plus data rows into records.
func recordsFromRows(rows [][]string) ([]model.Record, error) {
	if len(rows) < 2 {
		return nil, eris.New("dataset: no data rows")
	}

	header := rows[0]
	colIdx := make(map[string]int, len(header))
	for i, col := range header {
		colIdx[strings.TrimSpace(col)] = i
	}
	for _, col := range requiredCols {
		if _, ok := colIdx[col]; !ok {
			return nil, eris.Errorf("dataset: missing required column %q", col)
		}
	}

	records := make([]model.Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec := model.Record{Condition: getCol(row, colIdx, "condition")}
		if rec.Condition == "" {
			return nil, eris.Errorf("dataset: row %d: empty condition", i+1)
		}

		var err error
		if rec.Mid, err = parseCol(row, colIdx, "mid"); err != nil {
			return nil, eris.Wrapf(err, "dataset: row %d", i+1)
		}
		if rec.Pre, err = parseCol(row, colIdx, "pre"); err != nil {
			return nil, eris.Wrapf(err, "dataset: row %d", i+1)
		}
		if rec.Gain, err = parseCol(row, colIdx, "gain"); err != nil {
			return nil, eris.Wrapf(err, "dataset: row %d", i+1)
		}
		if rec.Post, err = parseCol(row, colIdx, "final"); err != nil {
			return nil, eris.Wrapf(err, "dataset: row %d", i+1)
		}

		records = append(records, rec)
	}

	return records, nil
}

// getCol safely retrieves a column value from a row.
func getCol(row []string, colIdx map[string]int, col string) string {
	idx, ok := colIdx[col]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseCol(row []string, colIdx map[string]int, col string) (float64, error) {
	raw := getCol(row, colIdx, col)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, eris.Wrapf(err, "parse %s %q", col, raw)
	}
	return v, nil
}
