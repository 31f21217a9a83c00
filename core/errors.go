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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidInstruction indicates an Instruction failed validation.
	ErrInvalidInstruction = errors.New("invalid instruction")

	// ErrInvalidAnnotation indicates an Annotation failed validation.
	ErrInvalidAnnotation = errors.New("invalid annotation")

	// ErrEmptyText indicates the instruction or annotation text is empty.
	ErrEmptyText = errors.New("text cannot be empty")

	// ErrUnknownAction indicates an action other than highlight or underline.
	ErrUnknownAction = errors.New("unknown annotation action")

	// ErrInvalidPage indicates a page number below the valid range.
	ErrInvalidPage = errors.New("invalid page number")

	// ErrNoQuads indicates an annotation without any quads.
	ErrNoQuads = errors.New("annotation has no quads")

	// ErrInvalidQuad indicates a quad with non-finite coordinates.
	ErrInvalidQuad = errors.New("invalid quad")
)
