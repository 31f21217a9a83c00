package prune

import "errors"

var (
	// ErrInvalidMaxAttempts is returned when maxAttempts is <= 0
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than 0")

	// ErrAnnotationRepositoryRequired is returned when an annotation repository is not provided.
	ErrAnnotationRepositoryRequired = errors.New("annotation repository required")
)
