package types

// FieldResult is the classification of one table column: whether its
// recorded values vary across rows, and a human-readable range or
// sample summary. Built once per run, never mutated.
type FieldResult struct {
	Type     string
	Variable bool
	Range    string
}
