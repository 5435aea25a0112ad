package typeahead

import "errors"

// Sentinel errors returned by the typeahead package.
var (
	// ErrEmptyID indicates an Add call supplied an empty entry id.
	ErrEmptyID = errors.New("typeahead: entry id must not be empty")

	// ErrBadType indicates an Add call supplied a type outside
	// {topic, question, user, board}.
	ErrBadType = errors.New("typeahead: unrecognized entry type")

	// ErrBadResultCap indicates Query/WeightedQuery was called with a
	// non-positive result cap k.
	ErrBadResultCap = errors.New("typeahead: result cap k must be positive")
)
