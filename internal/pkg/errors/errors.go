package errors

import "errors"

var (
	// ErrEmptyInput is returned when an analysis is requested without any
	// health records. It is the only fatal input condition besides a record
	// violating its documented range.
	ErrEmptyInput = errors.New("no health records provided")
	// ErrCacheUnavailable signals the report cache collaborator is down.
	// Callers treat it as degraded operation, never as a request failure.
	ErrCacheUnavailable = errors.New("cache unavailable")
)
