package search

import (
	"github.com/poiesic/marginalia/core"
)

// Stage names a step of the matching cascade.
type Stage string

const (
	StageCandidates Stage = "candidates"
	StageSegments   Stage = "segments"
	StageNoSegments Stage = "no-segments"
	StageFuzzy      Stage = "fuzzy"
)

// MatchMonitor provides hooks to observe the matching process.
// Implement this interface to trace which stage located a phrase and why.
type MatchMonitor interface {
	Start(phrase string)
	AfterCandidates(candidates []string)
	CandidateSearched(candidate string, hits int)
	AfterSegments(segments []string)
	SegmentSearched(segment string, hits int)
	FuzzyAligned(target, span string, ratio float64, accepted bool)
	Finish(stage Stage, quads []core.Quad)
}

// noopMonitor is a no-op implementation of MatchMonitor
type noopMonitor struct{}

var _ MatchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                              {}
func (n *noopMonitor) AfterCandidates(_ []string)                  {}
func (n *noopMonitor) CandidateSearched(_ string, _ int)           {}
func (n *noopMonitor) AfterSegments(_ []string)                    {}
func (n *noopMonitor) SegmentSearched(_ string, _ int)             {}
func (n *noopMonitor) FuzzyAligned(_, _ string, _ float64, _ bool) {}
func (n *noopMonitor) Finish(_ Stage, _ []core.Quad)               {}
