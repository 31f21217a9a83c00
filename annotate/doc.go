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


// Package annotate turns annotation instructions into stored annotations.
//
// A run over a document goes through three phases:
//   - Plan: interpret typed prefixes, apply defaults and drop repeated
//     instructions
//   - Find: locate every instruction on its pages, concurrently on a worker pool
//   - Apply: in instruction order, drop quads already covered by an annotation
//     with the same metadata and store the rest
//
// The counts of a run are returned as core.RunStats and saved as the
// document's checkpoint.
package annotate
