package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing or database sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// ActionType identifies how an annotation marks its text.
type ActionType int

const (
	// ActionHighlight paints a coloured background behind the text.
	ActionHighlight ActionType = iota + 1
	// ActionUnderline draws a line under the text.
	ActionUnderline
)

// ParseAction maps an instruction's action name onto an ActionType.
// Matching is case-insensitive; an empty name means highlight.
func ParseAction(name string) (ActionType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "highlight":
		return ActionHighlight, nil
	case "underline":
		return ActionUnderline, nil
	default:
		return 0, ErrUnknownAction
	}
}

func (a ActionType) String() string {
	switch a {
	case ActionHighlight:
		return "highlight"
	case ActionUnderline:
		return "underline"
	default:
		return "unknown"
	}
}

// CommentKind is the typed prefix of an instruction comment ("key:", "detail:", "parameter:").
type CommentKind int

const (
	KindKey CommentKind = iota + 1
	KindDetail
	KindParameter
)

// Color is an RGB colour with components in [0, 1].
type Color struct {
	R float64
	G float64
	B float64
}

var kindColors = map[CommentKind]Color{
	KindKey:       {R: 1.0, G: 0.97, B: 0.7},
	KindDetail:    {R: 0.85, G: 0.98, B: 0.85},
	KindParameter: {R: 0.82, G: 0.9, B: 1.0},
}

// ParseCommentKind recognises a typed prefix. The second result is false for
// anything that is not a known kind.
func ParseCommentKind(prefix string) (CommentKind, bool) {
	switch strings.ToLower(strings.TrimSpace(prefix)) {
	case "key":
		return KindKey, true
	case "detail":
		return KindDetail, true
	case "parameter":
		return KindParameter, true
	default:
		return 0, false
	}
}

// Color returns the highlight colour used for the kind.
// Unknown kinds fall back to the detail colour.
func (k CommentKind) Color() Color {
	if c, ok := kindColors[k]; ok {
		return c
	}
	return kindColors[KindDetail]
}

func (k CommentKind) String() string {
	switch k {
	case KindKey:
		return "key"
	case KindDetail:
		return "detail"
	case KindParameter:
		return "parameter"
	default:
		return "unknown"
	}
}

// Title returns the kind name with its first letter upper-cased, as used in
// normalized comments ("Key:", "Detail:", "Parameter:").
func (k CommentKind) Title() string {
	s := k.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// Instruction asks for one phrase to be marked in a document.
type Instruction struct {
	Text    string // Phrase to locate, optionally with a typed prefix
	Action  string // "highlight" (default) or "underline"
	Page    int    // 1-based page number; 0 searches every page
	Comment string
	Subject string
	Author  string
}

// InfoKey groups annotations that share their visible metadata.
// Two annotations with the same InfoKey covering the same quads are duplicates.
type InfoKey struct {
	Action  ActionType
	Comment string
	Subject string
	Author  string
}

// Annotation is a highlight or underline recorded for a document page.
type Annotation struct {
	Id         ID
	Document   ID
	Page       int // 1-based
	Action     ActionType
	Kind       CommentKind
	Text       string // Phrase the annotation was created for
	Comment    string
	Subject    string
	Author     string
	Color      Color
	Quads      []Quad
	OpenPopup  bool
	PopupRect  Rect
	InsertedAt time.Time
	UpdatedAt  time.Time
}

// InfoKey returns the metadata key used for duplicate suppression.
func (a *Annotation) InfoKey() InfoKey {
	return InfoKey{
		Action:  a.Action,
		Comment: a.Comment,
		Subject: a.Subject,
		Author:  a.Author,
	}
}

// Bounds returns the union of the annotation's quads.
func (a *Annotation) Bounds() Rect {
	var r Rect
	for i, q := range a.Quads {
		if i == 0 {
			r = q.Rect()
			continue
		}
		r = r.Union(q.Rect())
	}
	return r
}

// Checkpoint records the outcome of the last annotation run over a document.
type Checkpoint struct {
	Document     ID
	Instructions int
	Matched      int
	Expected     int
	Added        int
	Duplicates   int
	UpdatedAt    time.Time
}

// RunStats summarises an annotation run.
type RunStats struct {
	Matched    int // Instructions found on at least one page
	Expected   int // Distinct, actionable instructions
	Added      int // Matched instructions that produced a new annotation
	Duplicates int // Matched instructions whose quads were all annotated already
}
