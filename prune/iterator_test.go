package prune

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/marginalia/core"
	"github.com/poiesic/marginalia/storage"
	"github.com/poiesic/marginalia/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDocument = core.IDFromContent("report.pdf")

func newTestRepo(t *testing.T) storage.AnnotationRepository {
	t.Helper()
	annotations, _, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		annotations.Close()
		backend.Close()
	})
	return annotations
}

func newAnnotation(page int, comment, subject string) *core.Annotation {
	return &core.Annotation{
		Document: testDocument,
		Page:     page,
		Action:   core.ActionHighlight,
		Kind:     core.KindDetail,
		Text:     "net revenue",
		Comment:  comment,
		Subject:  subject,
		Author:   "marginalia",
		Color:    core.KindDetail.Color(),
		Quads:    []core.Quad{core.QuadFromRect(core.Rect{X0: 72, Y0: 90, X1: 140, Y1: 102})},
	}
}

func seed(t *testing.T, repo storage.AnnotationRepository, n int, comment string) {
	t.Helper()
	annotations := make([]*core.Annotation, n)
	for i := range annotations {
		annotations[i] = newAnnotation(i%3+1, comment, "")
	}
	_, err := repo.AddAnnotations(context.Background(), annotations...)
	require.NoError(t, err)
}

func TestAnnotationIterator_Batches(t *testing.T) {
	repo := newTestRepo(t)
	seed(t, repo, 25, "Detail:x")

	it := NewAnnotationIterator(repo, 10)
	var sizes []int
	err := it.ForEach(context.Background(), testDocument, func(batch []*core.Annotation) error {
		sizes = append(sizes, len(batch))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{10, 10, 5}, sizes)
}

func TestAnnotationIterator_Empty(t *testing.T) {
	repo := newTestRepo(t)

	called := false
	err := NewAnnotationIterator(repo, 10).ForEach(context.Background(), testDocument, func([]*core.Annotation) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.False(t, called, "should not call fn for an empty document")
}

func TestAnnotationIterator_DefaultBatchSize(t *testing.T) {
	it := NewAnnotationIterator(nil, 0)
	assert.Equal(t, DefaultBatchSize, it.batchSize)
}

func TestAnnotationIterator_StopsOnError(t *testing.T) {
	repo := newTestRepo(t)
	seed(t, repo, 30, "Detail:x")

	boom := errors.New("boom")
	calls := 0
	err := NewAnnotationIterator(repo, 10).ForEach(context.Background(), testDocument, func([]*core.Annotation) error {
		calls++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestAnnotationIterator_ContextCanceled(t *testing.T) {
	repo := newTestRepo(t)
	seed(t, repo, 30, "Detail:x")

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := NewAnnotationIterator(repo, 10).ForEach(ctx, testDocument, func([]*core.Annotation) error {
		calls++
		cancel()
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)

	calls = 0
	err = NewAnnotationIterator(repo, 10).ForEach(ctx, testDocument, func([]*core.Annotation) error {
		calls++
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls, "should not start with a canceled context")
}
