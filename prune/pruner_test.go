package prune

import (
	"bytes"
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	badgerdb "github.com/dgraph-io/badger/v4"
	"github.com/poiesic/marginalia/core"
	"github.com/poiesic/marginalia/instruction"
	"github.com/poiesic/marginalia/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		BatchSize:      4,
		ReportInterval: 1,
		MaxRetries:     3,
		RetryDelay:     time.Millisecond,
	}
}

func TestNewPruner_Validation(t *testing.T) {
	_, err := NewPruner(nil, nil, nil)
	assert.ErrorIs(t, err, ErrAnnotationRepositoryRequired)

	repo := newTestRepo(t)
	_, err = NewPruner(repo, &Config{BatchSize: 10, MaxRetries: 0}, nil)
	assert.ErrorIs(t, err, ErrInvalidMaxAttempts)

	p, err := NewPruner(repo, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), p.config)
}

func TestPruner_Run(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	var toClear []*core.Annotation
	for i := 0; i < 6; i++ {
		toClear = append(toClear, newAnnotation(i%2+1, "Detail:revenue grew", "finance"))
	}
	_, err := repo.AddAnnotations(ctx, toClear...)
	require.NoError(t, err)
	_, err = repo.AddAnnotations(ctx,
		newAnnotation(1, "Detail:revenue grew", "other subject"),
		newAnnotation(2, "Key:margin", "finance"),
		newAnnotation(3, "revenue grew", "legacy"),
	)
	require.NoError(t, err)

	keys := instruction.ClearKeys([]core.Instruction{
		{Text: "net revenue", Comment: "revenue grew", Subject: "finance"},
		{Text: "net revenue", Comment: "revenue grew", Subject: "legacy"},
	})

	var out bytes.Buffer
	p, err := NewPruner(repo, testConfig(), &out)
	require.NoError(t, err)

	result, err := p.Run(ctx, testDocument, keys)
	require.NoError(t, err)
	assert.Equal(t, &Result{Scanned: 9, Removed: 7}, result)
	assert.Contains(t, out.String(), "Scanning 9 annotations")
	assert.Contains(t, out.String(), "9/9")

	remaining, err := repo.GetAnnotationsByDocument(ctx, testDocument)
	require.NoError(t, err)
	require.Len(t, remaining, 2)
	assert.Equal(t, "other subject", remaining[0].Subject)
	assert.Equal(t, "Key:margin", remaining[1].Comment)

	// A second run finds nothing left to remove.
	result, err = p.Run(ctx, testDocument, keys)
	require.NoError(t, err)
	assert.Equal(t, &Result{Scanned: 2, Removed: 0}, result)
}

func TestPruner_NothingToClear(t *testing.T) {
	repo := newTestRepo(t)
	var out bytes.Buffer
	p, err := NewPruner(repo, testConfig(), &out)
	require.NoError(t, err)

	result, err := p.Run(context.Background(), testDocument, map[instruction.ClearKey]struct{}{
		{Comment: "Detail:x"}: {},
	})
	require.NoError(t, err)
	assert.Equal(t, &Result{}, result)
	assert.Contains(t, out.String(), "Nothing to clear")
}

// conflictingRepo fails the first few deletes with a transaction conflict.
type conflictingRepo struct {
	storage.AnnotationRepository
	conflicts atomic.Int32
	deletes   atomic.Int32
	err       error
}

func (r *conflictingRepo) DeleteAnnotations(ctx context.Context, ids ...core.ID) error {
	r.deletes.Add(1)
	if r.conflicts.Add(-1) >= 0 {
		return r.err
	}
	return r.AnnotationRepository.DeleteAnnotations(ctx, ids...)
}

func TestPruner_RetriesConflicts(t *testing.T) {
	repo := &conflictingRepo{AnnotationRepository: newTestRepo(t), err: badgerdb.ErrConflict}
	repo.conflicts.Store(2)
	seed(t, repo, 3, "Detail:x")

	p, err := NewPruner(repo, testConfig(), nil)
	require.NoError(t, err)

	result, err := p.Run(context.Background(), testDocument, instruction.ClearKeys([]core.Instruction{{Comment: "x"}}))
	require.NoError(t, err)
	assert.Equal(t, 3, result.Removed)
	assert.Equal(t, int32(3), repo.deletes.Load(), "two conflicts then success")

	count, err := repo.CountAnnotations(context.Background(), testDocument)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestPruner_PermanentErrorNotRetried(t *testing.T) {
	boom := errors.New("disk on fire")
	repo := &conflictingRepo{AnnotationRepository: newTestRepo(t), err: boom}
	repo.conflicts.Store(10)
	seed(t, repo, 3, "Detail:x")

	p, err := NewPruner(repo, testConfig(), nil)
	require.NoError(t, err)

	result, err := p.Run(context.Background(), testDocument, instruction.ClearKeys([]core.Instruction{{Comment: "x"}}))
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, result.Removed)
	assert.Equal(t, int32(1), repo.deletes.Load())
}
