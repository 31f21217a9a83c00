// Package prune removes stored annotations that were created from a set of
// instructions.
//
// An annotation is removed when its (comment, subject) pair matches an
// instruction's normalized or raw comment together with its subject. The
// document's annotations are scanned in batches; each batch is deleted in its
// own transaction and retried with exponential backoff when it conflicts with
// a concurrent writer.
package prune
