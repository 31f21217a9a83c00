package annotate

import "errors"

var (
	// ErrAnnotationRepositoryRequired is returned when an annotation repository is not provided.
	ErrAnnotationRepositoryRequired = errors.New("annotation repository required")

	// ErrCheckpointRepositoryRequired is returned when a checkpoint repository is not provided.
	ErrCheckpointRepositoryRequired = errors.New("checkpoint repository required")

	// ErrDocumentRequired is returned when Run is called without a document.
	ErrDocumentRequired = errors.New("document required")
)
