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
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/poiesic/marginalia/core"
	"github.com/poiesic/marginalia/instruction"
	"github.com/poiesic/marginalia/storage"
)

// Config holds configuration for the prune operation.
type Config struct {
	// BatchSize is the number of annotations scanned and deleted per transaction
	BatchSize int

	// ReportInterval is how often to report progress (number of annotations)
	ReportInterval int

	// MaxRetries is the maximum number of attempts for a conflicting delete
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BatchSize:      100,
		ReportInterval: 100,
		MaxRetries:     3,
		RetryDelay:     1 * time.Second,
	}
}

// Result summarises a prune.
type Result struct {
	Scanned int
	Removed int
}

// Option configures a Pruner.
type Option func(*Pruner) error

// WithLogger sets the logger for the pruner.
// If not provided, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pruner) error {
		p.logger = logger
		return nil
	}
}

// Pruner removes the annotations created for a set of instructions.
type Pruner struct {
	repo     storage.AnnotationRepository
	config   *Config
	progress io.Writer
	iterator *AnnotationIterator
	logger   *slog.Logger
}

// NewPruner creates a new pruner.
// progress: where to write progress output (typically os.Stderr); nil discards it
func NewPruner(repo storage.AnnotationRepository, config *Config, progress io.Writer, opts ...Option) (*Pruner, error) {
	if repo == nil {
		return nil, ErrAnnotationRepositoryRequired
	}
	if config == nil {
		config = DefaultConfig()
	}
	if config.MaxRetries <= 0 {
		return nil, ErrInvalidMaxAttempts
	}
	if progress == nil {
		progress = io.Discard
	}

	p := &Pruner{
		repo:     repo,
		config:   config,
		progress: progress,
		iterator: NewAnnotationIterator(repo, config.BatchSize),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	p.logger = p.logger.With("component", "pruner")
	return p, nil
}

// Run deletes every annotation of document whose (comment, subject) pair is
// in keys. Each batch is deleted in one transaction; a batch that conflicts
// with a concurrent writer is retried with exponential backoff.
func (p *Pruner) Run(ctx context.Context, document core.ID, keys map[instruction.ClearKey]struct{}) (*Result, error) {
	total, err := p.repo.CountAnnotations(ctx, document)
	if err != nil {
		return nil, fmt.Errorf("failed to count annotations: %w", err)
	}

	result := &Result{}
	if total == 0 || len(keys) == 0 {
		fmt.Fprintf(p.progress, "Nothing to clear (%d annotations, %d keys)\n", total, len(keys))
		return result, nil
	}

	fmt.Fprintf(p.progress, "Scanning %d annotations (batch size: %d)\n", total, p.iterator.batchSize)

	tracker := NewProgressTracker(p.progress, total, p.config.ReportInterval)
	tracker.Start()

	err = p.iterator.ForEach(ctx, document, func(batch []*core.Annotation) error {
		var ids []core.ID
		for _, a := range batch {
			if _, ok := keys[instruction.ClearKey{Comment: a.Comment, Subject: a.Subject}]; ok {
				ids = append(ids, a.Id)
			}
		}

		if len(ids) > 0 {
			err := RetryWithBackoff(ctx, func() error {
				return p.repo.DeleteAnnotations(ctx, ids...)
			}, p.config.MaxRetries, p.config.RetryDelay, IsConflict)
			if err != nil {
				return fmt.Errorf("failed to delete batch: %w", err)
			}
		}

		result.Scanned += len(batch)
		result.Removed += len(ids)
		tracker.Advance(len(batch), len(ids))
		return nil
	})
	if err != nil {
		p.logger.Error("prune failed", "document", document, "removed", result.Removed, "err", err)
		return result, err
	}

	tracker.Finish()
	p.logger.Info("prune complete",
		"document", document,
		"scanned", result.Scanned,
		"removed", result.Removed,
		"elapsed", tracker.Elapsed().Round(time.Millisecond))

	return result, nil
}
