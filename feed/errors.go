package feed

import "errors"

// Sentinel errors returned by the feed package.
var (
	// ErrMissingStory indicates an internal inconsistency: a story id was
	// expected to be present in both the by-id map and its height bucket,
	// but was not found in one of them. In normal operation the pruner
	// never triggers this; it exists to guard against invariant violations.
	ErrMissingStory = errors.New("feed: story not found")

	// ErrBadTimeWindow indicates a non-positive time window was supplied
	// to NewSession.
	ErrBadTimeWindow = errors.New("feed: time window must be positive")

	// ErrBadBrowserHeight indicates a non-positive browser height was
	// supplied to NewSession.
	ErrBadBrowserHeight = errors.New("feed: browser height must be positive")

	// ErrBadStoryHeight indicates a story height of zero, a negative
	// value, or a value exceeding the session's configured browser height.
	ErrBadStoryHeight = errors.New("feed: story height out of range")
)
