package storage

import (
	"context"

	"github.com/poiesic/marginalia/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// AnnotationRepository provides operations for managing annotations.
type AnnotationRepository interface {
	Repository
	// AddAnnotations stores one or more annotations.
	// Every annotation receives a new ID from the sequence and its
	// InsertedAt and UpdatedAt timestamps.
	// Returns ErrInvalidRecord, wrapping the validation error, if any
	// annotation is malformed; nothing is stored in that case.
	AddAnnotations(ctx context.Context, annotations ...*core.Annotation) ([]*core.Annotation, error)

	// DeleteAnnotations removes annotations by their IDs, along with their
	// page index entries.
	// Returns ErrNotFound if any annotation doesn't exist.
	DeleteAnnotations(ctx context.Context, ids ...core.ID) error

	// GetAnnotation retrieves a single annotation by ID.
	// Returns ErrNotFound if the annotation doesn't exist.
	GetAnnotation(ctx context.Context, id core.ID) (*core.Annotation, error)

	// GetAnnotationsByPage retrieves the annotations of one document page,
	// in insertion order.
	GetAnnotationsByPage(ctx context.Context, document core.ID, page int) ([]*core.Annotation, error)

	// GetAnnotationsByDocument retrieves every annotation of a document,
	// ordered by page and then by insertion.
	GetAnnotationsByDocument(ctx context.Context, document core.ID) ([]*core.Annotation, error)

	// CountAnnotations returns the number of annotations stored for a document.
	CountAnnotations(ctx context.Context, document core.ID) (int, error)
}

// CheckpointRepository persists the outcome of annotation runs.
type CheckpointRepository interface {
	// SaveCheckpoint stores the checkpoint for its document, replacing any
	// earlier one. UpdatedAt is set automatically.
	SaveCheckpoint(ctx context.Context, checkpoint *core.Checkpoint) error

	// LoadCheckpoint retrieves the checkpoint of a document.
	// Returns nil, nil if no checkpoint exists.
	LoadCheckpoint(ctx context.Context, document core.ID) (*core.Checkpoint, error)
}
