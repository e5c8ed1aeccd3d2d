package addressgen

import "errors"

// Package-specific errors
var (
	// ErrStateNotFound is returned by CityIn when the given state matches
	// neither an abbreviation nor a full name and the fallback is FallbackError.
	ErrStateNotFound = errors.New("state not found")

	// ErrUnknownToken indicates a street template referencing a placeholder
	// with no bound resolver. New catches this at construction time.
	ErrUnknownToken = errors.New("unknown placeholder token")

	// ErrInvalidDataset indicates a dataset that failed validation.
	ErrInvalidDataset = errors.New("invalid dataset")
)
