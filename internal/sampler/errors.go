package sampler

import "github.com/rotisserie/eris"

var (
	// ErrInsufficientPopulation means the to-be-matched group cannot be
	// fully matched against the reference group without replacement.
	ErrInsufficientPopulation = eris.New("sampler: insufficient matched-against population")

	// ErrDegenerateSample means a paired t-test had fewer than two pairs
	// or zero standard error. Results carry non-finite values instead of
	// aborting the run.
	ErrDegenerateSample = eris.New("sampler: degenerate t-test sample")

	// ErrEmptyIterationSet means aggregation was requested over zero
	// iterations.
	ErrEmptyIterationSet = eris.New("sampler: empty iteration set")
)
