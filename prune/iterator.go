// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package prune

import (
	"context"

	"github.com/poiesic/marginalia/core"
	"github.com/poiesic/marginalia/storage"
)

const (
	// DefaultBatchSize is the default number of annotations handed out per batch
	DefaultBatchSize = 100
)

// AnnotationIterator walks a document's annotations in batches.
type AnnotationIterator struct {
	repo      storage.AnnotationRepository
	batchSize int
}

// NewAnnotationIterator creates a new annotation iterator.
// batchSize: number of annotations per batch; values <= 0 use DefaultBatchSize
func NewAnnotationIterator(repo storage.AnnotationRepository, batchSize int) *AnnotationIterator {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	return &AnnotationIterator{
		repo:      repo,
		batchSize: batchSize,
	}
}

// ForEach calls fn for each batch of the document's annotations, in page
// order. Iteration stops on the first error from fn.
// Context cancellation is checked between batches.
func (it *AnnotationIterator) ForEach(ctx context.Context, document core.ID, fn func([]*core.Annotation) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	annotations, err := it.repo.GetAnnotationsByDocument(ctx, document)
	if err != nil {
		return err
	}

	for i := 0; i < len(annotations); i += it.batchSize {
		end := min(i+it.batchSize, len(annotations))
		if err := fn(annotations[i:end]); err != nil {
			return err
		}

		if err := ctx.Err(); err != nil {
			return err
		}
	}

	return nil
}
