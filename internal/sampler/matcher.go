package sampler

import (
	"math"

	"github.com/rotisserie/eris"

	"github.com/Seacant/adjei-sampling/internal/model"
)

// MatchNearest pairs every record of targets with the remaining pool
// record whose Pre value is closest in absolute difference, consuming
// each pool record at most once. Targets are processed in the order
// given, so the pairing depends on that order whenever two targets
// contend for the same pool record. Ties on distance go to the candidate
// at the lowest current pool index.
//
// The pool itself is never mutated; selection works on an internal copy.
func MatchNearest(pool, targets []model.Record) ([]model.Pair, error) {
	if len(targets) == 0 {
		return nil, eris.Wrap(ErrInsufficientPopulation, "matcher: no records to match")
	}
	if len(pool) < len(targets) {
		return nil, eris.Wrapf(ErrInsufficientPopulation,
			"matcher: %d records to match against a pool of %d", len(targets), len(pool))
	}

	remaining := make([]model.Record, len(pool))
	copy(remaining, pool)

	pairs := make([]model.Pair, 0, len(targets))
	for _, t := range targets {
		best := 0
		bestDist := math.Abs(remaining[0].Pre - t.Pre)
		for j := 1; j < len(remaining); j++ {
			if d := math.Abs(remaining[j].Pre - t.Pre); d < bestDist {
				best, bestDist = j, d
			}
		}

		pairs = append(pairs, model.Pair{Small: t, Big: remaining[best]})

		// Swap-remove the consumed record from the live pool.
		remaining[best] = remaining[len(remaining)-1]
		remaining = remaining[:len(remaining)-1]
	}

	return pairs, nil
}
