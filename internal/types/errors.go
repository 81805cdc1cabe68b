package types

import "errors"

var (
	// ErrNavigationFailed is returned when a source page cannot be reached
	// within the navigation timeout.
	ErrNavigationFailed = errors.New("page navigation failed")

	// ErrMarkerNotFound is returned when the expected content marker never
	// appeared. Extraction still proceeds against whatever DOM rendered.
	ErrMarkerNotFound = errors.New("content marker not found")

	// ErrInvalidQuery is returned when a free-text search has no query.
	ErrInvalidQuery = errors.New("search query is required")

	// ErrInvalidCategory is returned for a category outside the four outfit slots.
	ErrInvalidCategory = errors.New("unknown product category")
)
