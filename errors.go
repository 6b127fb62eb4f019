package clusterest

import "errors"

var (
	// ErrEmptyCandidates is returned when the candidate matrix has no rows.
	ErrEmptyCandidates = errors.New("clusterest: empty candidate set")

	// ErrNoPeak is returned when no candidate has a positive net potential
	// on the first scan, e.g. because alpha is NaN.
	ErrNoPeak = errors.New("clusterest: no candidate with positive potential")

	// ErrRaggedRows is returned when input rows do not share one dimension.
	ErrRaggedRows = errors.New("clusterest: rows have different dimensions")

	// ErrShape is returned when flat data does not match rows*cols.
	ErrShape = errors.New("clusterest: data length does not match shape")

	// ErrNotInt16 is returned when a value cannot be represented as int16.
	ErrNotInt16 = errors.New("clusterest: value is not a 16-bit integer")
)
