package registry

import "errors"

// Sentinel errors callers branch on with errors.Is.
var (
	// ErrNotFound is returned when a mutation targets an entity that is not
	// in the registry.
	ErrNotFound = errors.New("not found in registry")

	// ErrIDSpaceExhausted is returned when every 4-digit member ID is taken.
	ErrIDSpaceExhausted = errors.New("member ID space exhausted")
)
