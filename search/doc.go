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


// Package search locates a phrase on a page and returns the quads covering it.
//
// The Searcher runs a cascade of increasingly permissive stages and stops at
// the first one that produces geometry:
//   - Exact search of each candidate spelling of the phrase (raw, whitespace
//     normalized, de-hyphenated, hyphen preserving)
//   - Exact search of every sentence part and sliding word window of the
//     candidates, concatenating all hits
//   - Fuzzy alignment of the longest segment against the page's word stream,
//     followed by an exact search of the aligned page text
//
// A phrase that cannot be found yields an empty result and a nil error. Only
// failures of the Page itself are returned as errors.
package search
