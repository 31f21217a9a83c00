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


// Package storage provides the storage abstraction layer for marginalia.
//
// This package defines repository interfaces that decouple storage implementation
// from the annotation pipeline. Annotations and run checkpoints live in a sidecar
// store next to the PDF; the document itself is never modified.
//
// # Constructor Return Type Pattern
//
// Public constructors in backend packages return these interfaces:
//
//	repo, err := badger.NewAnnotationRepository(backend) // storage.AnnotationRepository
//
// Internal helpers may return concrete types since they're only used within
// the implementation package.
//
// # Architecture
//
//   - Repository: transactions and Close, shared by every repository
//   - AnnotationRepository: annotations indexed by document and page
//   - CheckpointRepository: the outcome of the last run per document
//
// # Usage
//
//	backend, err := badger.OpenBackend("/path/to/db", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer backend.Close()
//
// Use in tests with in-memory storage:
//
//	annotations, checkpoints, backend, err := badger.NewMemoryRepositories()
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines.
package storage
