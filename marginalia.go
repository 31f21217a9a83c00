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


// Package marginalia ties the annotation store to the pipelines that fill
// and prune it.
package marginalia

import (
	"io"
	"log/slog"

	"github.com/poiesic/marginalia/annotate"
	"github.com/poiesic/marginalia/prune"
	"github.com/poiesic/marginalia/storage"
	"github.com/poiesic/marginalia/storage/badger"
)

type Database struct {
	backend        *badger.Backend
	annotationRepo *badger.AnnotationRepository
	checkpointRepo storage.CheckpointRepository
	logger         *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	logger   *slog.Logger
	inMemory bool
}

// WithLogger sets the logger used by the database and its storage backend.
func WithLogger(logger *slog.Logger) DatabaseOption {
	return func(o *databaseOptions) {
		o.logger = logger
	}
}

// InMemory keeps the database in memory; the path is ignored.
func InMemory() DatabaseOption {
	return func(o *databaseOptions) {
		o.inMemory = true
	}
}

func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	options := &databaseOptions{}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory, badger.WithLogger(options.logger))
	if err != nil {
		return nil, err
	}

	annotationRepo, err := badger.NewAnnotationRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	return &Database{
		backend:        backend,
		annotationRepo: annotationRepo,
		checkpointRepo: badger.NewCheckpointRepository(backend),
		logger:         options.logger,
	}, nil
}

func (db *Database) Close() error {
	if err := db.annotationRepo.Close(); err != nil {
		db.logger.Error("error closing annotation repository", "err", err)
		return err
	}

	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (db *Database) AnnotationRepository() storage.AnnotationRepository {
	return db.annotationRepo
}

func (db *Database) CheckpointRepository() storage.CheckpointRepository {
	return db.checkpointRepo
}

// NewPipeline creates an annotation pipeline writing to this database.
// The caller must Release it.
func (db *Database) NewPipeline(opts ...annotate.Option) (*annotate.Pipeline, error) {
	opts = append([]annotate.Option{annotate.WithLogger(db.logger)}, opts...)
	return annotate.NewPipeline(db.annotationRepo, db.checkpointRepo, opts...)
}

// NewPruner creates a pruner over this database's annotations.
func (db *Database) NewPruner(config *prune.Config, progress io.Writer) (*prune.Pruner, error) {
	return prune.NewPruner(db.annotationRepo, config, progress, prune.WithLogger(db.logger))
}
