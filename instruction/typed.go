package instruction

import (
	"strings"
	"unicode"

	"github.com/poiesic/marginalia/core"
)

// StripTypedPrefix removes a leading "key:", "detail:" or "parameter:" from
// text. Text is returned unchanged when the prefix is unknown or nothing
// follows it.
func StripTypedPrefix(text string) string {
	prefix, rest, found := strings.Cut(text, ":")
	if !found {
		return text
	}
	if _, ok := core.ParseCommentKind(prefix); !ok {
		return text
	}
	if rest = strings.TrimSpace(rest); rest == "" {
		return text
	}
	return rest
}

// ParseTypedComment splits a comment into its kind and its normalized form
// "Kind:rest". Comments without a known prefix are details.
func ParseTypedComment(comment string) (core.CommentKind, string) {
	raw := strings.TrimSpace(comment)
	if prefix, rest, found := strings.Cut(raw, ":"); found {
		if kind, ok := core.ParseCommentKind(prefix); ok {
			return kind, kind.Title() + ":" + strings.TrimLeftFunc(rest, unicode.IsSpace)
		}
	}
	return core.KindDetail, core.KindDetail.Title() + ":" + raw
}

// NormalizeComment returns the normalized form of a comment.
func NormalizeComment(comment string) string {
	_, normalized := ParseTypedComment(comment)
	return normalized
}

// ClearKey identifies stored annotations created for an instruction.
type ClearKey struct {
	Comment string
	Subject string
}

// ClearKeys returns the (comment, subject) pairs that identify annotations
// made from instructions. Each instruction contributes its normalized comment
// and, when it differs, its raw trimmed comment.
func ClearKeys(instructions []core.Instruction) map[ClearKey]struct{} {
	keys := make(map[ClearKey]struct{})
	for _, ins := range instructions {
		normalized := NormalizeComment(ins.Comment)
		keys[ClearKey{Comment: normalized, Subject: ins.Subject}] = struct{}{}
		if raw := strings.TrimSpace(ins.Comment); raw != "" && raw != normalized {
			keys[ClearKey{Comment: raw, Subject: ins.Subject}] = struct{}{}
		}
	}
	return keys
}
