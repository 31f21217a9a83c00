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

import (
	"fmt"
	"math"
	"strings"
)

// ValidateInstruction validates an Instruction according to domain rules.
//
// Validation rules:
//   - Text must not be blank
//   - Action must be empty, "highlight" or "underline"
//   - Page must not be negative (0 means every page)
//
// NOT validated:
//   - Page upper bound (depends on the document being annotated)
//   - Comment, Subject and Author (free text)
func ValidateInstruction(ins *Instruction) error {
	if ins == nil {
		return fmt.Errorf("%w: instruction is nil", ErrInvalidInstruction)
	}

	if strings.TrimSpace(ins.Text) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidInstruction, ErrEmptyText)
	}

	if _, err := ParseAction(ins.Action); err != nil {
		return fmt.Errorf("%w: %w: %q", ErrInvalidInstruction, err, ins.Action)
	}

	if ins.Page < 0 {
		return fmt.Errorf("%w: %w: %d", ErrInvalidInstruction, ErrInvalidPage, ins.Page)
	}

	return nil
}

// ValidateAnnotation validates an Annotation according to domain rules.
//
// Validation rules:
//   - Page must be 1 or greater
//   - Action must be highlight or underline
//   - At least one quad, each with finite coordinates
//
// NOT validated (populated by the repository):
//   - ID (0 is valid before insertion)
//   - InsertedAt / UpdatedAt
func ValidateAnnotation(ann *Annotation) error {
	if ann == nil {
		return fmt.Errorf("%w: annotation is nil", ErrInvalidAnnotation)
	}

	if ann.Page < 1 {
		return fmt.Errorf("%w: %w: %d", ErrInvalidAnnotation, ErrInvalidPage, ann.Page)
	}

	if ann.Action != ActionHighlight && ann.Action != ActionUnderline {
		return fmt.Errorf("%w: %w: %d", ErrInvalidAnnotation, ErrUnknownAction, ann.Action)
	}

	if len(ann.Quads) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidAnnotation, ErrNoQuads)
	}

	for i := range ann.Quads {
		if err := ValidateQuad(ann.Quads[i]); err != nil {
			return fmt.Errorf("%w: quad %d: %w", ErrInvalidAnnotation, i, err)
		}
	}

	return nil
}

// ValidateQuad checks that every corner of the quad is a finite point.
func ValidateQuad(q Quad) error {
	for _, p := range [4]Point{q.UL, q.UR, q.LL, q.LR} {
		if !isFinite(p.X) || !isFinite(p.Y) {
			return fmt.Errorf("%w: non-finite corner (%v, %v)", ErrInvalidQuad, p.X, p.Y)
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
