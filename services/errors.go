package services

import "errors"

// Lookup outcomes are reported as tagged errors so callers branch with
// errors.Is instead of comparing message strings.
var (
	// ErrNotFound means no row matched the requested id.
	ErrNotFound = errors.New("record not found")

	// ErrNoRecords means a collection query matched nothing. Kept separate
	// from ErrNotFound because the API reports the two cases differently.
	ErrNoRecords = errors.New("no records found")
)
