package model

// Record is one observation row from the input table. The input column
// "final" maps to Post.
type Record struct {
	Condition string  `json:"condition"`
	Pre       float64 `json:"pre"`
	Mid       float64 `json:"mid"`
	Post      float64 `json:"post"`
	Gain      float64 `json:"gain"`
}

// Pair couples one small-group record with the big-group record it was
// matched against. Both sides are by-value copies; a Pair never aliases
// the source populations.
type Pair struct {
	Small Record
	Big   Record
}
