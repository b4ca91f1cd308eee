package dataset

import "github.com/Seacant/adjei-sampling/internal/model"

// Partition splits records into the reference ("big") group and the
// to-be-matched ("small") group. Only exact equality with label selects
// the reference side; every other condition value, expected or not,
// lands in the matchable group. This fail-open split matches the
// original tooling and is deliberately not validated against a
// two-label assumption.
func Partition(records []model.Record, label string) (big, small []model.Record) {
	for _, r := range records {
		if r.Condition == label {
			big = append(big, r)
		} else {
			small = append(small, r)
		}
	}
	return big, small
}
