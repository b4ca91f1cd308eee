package store

import (
	"context"
	"time"

	"github.com/Seacant/adjei-sampling/internal/model"
)

// RunInfo identifies one resampling run.
type RunInfo struct {
	ID         string    `json:"id"`
	InputPath  string    `json:"input_path"`
	Iterations int       `json:"iterations"`
	Seed       int64     `json:"seed"`
	CreatedAt  time.Time `json:"created_at"`
}

// Writer persists the per-iteration statistics table. Rows are written
// in iteration order, once, after the full run has completed.
type Writer interface {
	WriteIterations(ctx context.Context, run RunInfo, stats []model.IterationStats) error
	Close() error
}
