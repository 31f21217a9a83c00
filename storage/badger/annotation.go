package badger

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/marginalia/core"
	"github.com/poiesic/marginalia/storage"
)

// AnnotationRepository implements storage.AnnotationRepository for BadgerDB.
type AnnotationRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.AnnotationRepository = (*AnnotationRepository)(nil)

// NewAnnotationRepository creates a new AnnotationRepository.
func NewAnnotationRepository(backend *Backend) (*AnnotationRepository, error) {
	idSeq, err := backend.GetSequence(annotationIDSeq)
	if err != nil {
		return nil, err
	}

	return &AnnotationRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *AnnotationRepository) Close() error {
	return r.idSeq.Release()
}

// WithTransaction delegates to the backend.
func (r *AnnotationRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddAnnotations stores one or more annotations.
func (r *AnnotationRepository) AddAnnotations(ctx context.Context, annotations ...*core.Annotation) ([]*core.Annotation, error) {
	for _, annotation := range annotations {
		if err := core.ValidateAnnotation(annotation); err != nil {
			return nil, fmt.Errorf("%w: %w", storage.ErrInvalidRecord, err)
		}
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		now := time.Now().UTC()
		for _, annotation := range annotations {
			id, err := r.nextID()
			if err != nil {
				return err
			}
			annotation.Id = id
			annotation.InsertedAt = now
			annotation.UpdatedAt = now

			key := makeAnnotationKey(annotation.Id)
			if err := tx.Set(key, storage.MarshalAnnotation(annotation)); err != nil {
				return err
			}

			pageKey := makeAnnotationPageKey(annotation.Document, annotation.Page, annotation.Id)
			if err := tx.Set(pageKey, storage.MarshalID(annotation.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, err
	}

	r.backend.logger.Debug("annotations stored", "count", len(annotations))
	return annotations, nil
}

// DeleteAnnotations removes annotations by their IDs.
func (r *AnnotationRepository) DeleteAnnotations(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeAnnotationKey(id)

			// Read the annotation to find its page index entry
			annotation, err := readAnnotation(tx, key)
			if err != nil {
				return err
			}
			if annotation == nil {
				return fmt.Errorf("%w: annotation %d", storage.ErrNotFound, id)
			}

			pageKey := makeAnnotationPageKey(annotation.Document, annotation.Page, annotation.Id)
			if err := tx.Delete(pageKey); err != nil {
				return err
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetAnnotation retrieves a single annotation by ID.
func (r *AnnotationRepository) GetAnnotation(ctx context.Context, id core.ID) (*core.Annotation, error) {
	var result *core.Annotation
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readAnnotation(tx, makeAnnotationKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return fmt.Errorf("%w: annotation %d", storage.ErrNotFound, id)
		}
		return nil
	}, false)
	return result, err
}

// GetAnnotationsByPage retrieves the annotations of one document page.
func (r *AnnotationRepository) GetAnnotationsByPage(ctx context.Context, document core.ID, page int) ([]*core.Annotation, error) {
	if page < 1 {
		return nil, fmt.Errorf("%w: page %d", storage.ErrInvalidQuery, page)
	}
	return r.scanIndex(makePartialAnnotationPageKey(document, page))
}

// GetAnnotationsByDocument retrieves every annotation of a document.
func (r *AnnotationRepository) GetAnnotationsByDocument(ctx context.Context, document core.ID) ([]*core.Annotation, error) {
	return r.scanIndex(makeAnnotationDocumentKey(document))
}

// CountAnnotations returns the number of annotations stored for a document.
func (r *AnnotationRepository) CountAnnotations(ctx context.Context, document core.ID) (int, error) {
	return r.backend.countPrefix(makeAnnotationDocumentKey(document))
}

// Helper methods

// nextID returns the next annotation ID. BadgerDB sequences start at 0,
// which is reserved for unsaved annotations.
func (r *AnnotationRepository) nextID() (core.ID, error) {
	next, err := r.idSeq.Next()
	if err != nil {
		return 0, err
	}
	if next == 0 {
		if next, err = r.idSeq.Next(); err != nil {
			return 0, err
		}
	}
	return core.ID(next), nil
}

// scanIndex loads the annotations referenced by page index entries under prefix.
func (r *AnnotationRepository) scanIndex(prefix []byte) ([]*core.Annotation, error) {
	var results []*core.Annotation
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var id core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				id, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			annotation, err := readAnnotation(tx, makeAnnotationKey(id))
			if err != nil {
				return err
			}
			if annotation != nil {
				results = append(results, annotation)
			}
		}
		return nil
	}, false)
	return results, err
}

// readAnnotation reads an annotation from the transaction.
// Returns nil, nil if the key doesn't exist.
func readAnnotation(tx *badger.Txn, key []byte) (*core.Annotation, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var annotation *core.Annotation
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		annotation, unmarshalErr = storage.UnmarshalAnnotation(val)
		return unmarshalErr
	})
	return annotation, err
}
