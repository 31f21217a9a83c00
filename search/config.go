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


package search

import (
	"fmt"
	"regexp"

	"github.com/dlclark/regexp2"
)

// Config holds the patterns and thresholds of the matching pipeline.
// A Searcher copies and compiles its Config once; later changes to the
// value passed in have no effect on it.
type Config struct {
	// SplitPattern separates a phrase into sentence-like parts.
	// Default: `[.!?;:]+`
	SplitPattern string

	// WordPattern matches the words counted by the segment filter and
	// aligned by the fuzzy matcher.
	// Default: `[A-Za-z0-9]+`
	WordPattern string

	// DehyphenPattern matches a line-wrap hyphen and the whitespace after it.
	// It needs lookaround, so it is compiled with regexp2.
	// Default: `(?<=\w)-\s+(?=\w)`
	DehyphenPattern string

	// WindowWords is the number of words in a sliding segment window.
	// Parts with at most this many words are searched whole.
	// Default: 8
	WindowWords int

	// WindowStep is the stride of the sliding segment window.
	// Default: 6
	WindowStep int

	// MinSegmentWords is the fewest words a segment may have.
	// Default: 2
	MinSegmentWords int

	// MinSegmentAlnum is the fewest alphanumeric characters a segment may have.
	// Default: 6
	MinSegmentAlnum int

	// MinFuzzyWords is the fewest words a fuzzy alignment target may have.
	// Default: 6
	MinFuzzyWords int

	// MinFuzzyRatio is the similarity a fuzzy window must reach to be accepted.
	// Default: 0.75
	MinFuzzyRatio float64
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithSplitPattern sets the sentence split pattern.
func WithSplitPattern(pattern string) ConfigOption {
	return func(c *Config) {
		c.SplitPattern = pattern
	}
}

// WithWordPattern sets the word pattern.
func WithWordPattern(pattern string) ConfigOption {
	return func(c *Config) {
		c.WordPattern = pattern
	}
}

// WithWindow sets the segment window size and stride.
func WithWindow(words, step int) ConfigOption {
	return func(c *Config) {
		c.WindowWords = words
		c.WindowStep = step
	}
}

// WithMinSegment sets the segment filter thresholds.
func WithMinSegment(words, alnum int) ConfigOption {
	return func(c *Config) {
		c.MinSegmentWords = words
		c.MinSegmentAlnum = alnum
	}
}

// WithMinFuzzyWords sets the shortest target the fuzzy matcher will align.
func WithMinFuzzyWords(words int) ConfigOption {
	return func(c *Config) {
		c.MinFuzzyWords = words
	}
}

// WithMinFuzzyRatio sets the fuzzy acceptance threshold.
func WithMinFuzzyRatio(ratio float64) ConfigOption {
	return func(c *Config) {
		c.MinFuzzyRatio = ratio
	}
}

// DefaultConfig returns the thresholds tuned for text extracted from typeset PDFs.
func DefaultConfig() *Config {
	return &Config{
		SplitPattern:    `[.!?;:]+`,
		WordPattern:     `[A-Za-z0-9]+`,
		DehyphenPattern: `(?<=\w)-\s+(?=\w)`,
		WindowWords:     8,
		WindowStep:      6,
		MinSegmentWords: 2,
		MinSegmentAlnum: 6,
		MinFuzzyWords:   6,
		MinFuzzyRatio:   0.75,
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
//
// Example:
//
//	cfg := NewConfig(
//	    WithWindow(10, 8),
//	    WithMinFuzzyRatio(0.8),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Validate checks that the configuration is complete and its patterns compile.
func (c *Config) Validate() error {
	if _, err := regexp.Compile(c.SplitPattern); err != nil || c.SplitPattern == "" {
		return fmt.Errorf("%w: SplitPattern %q", ErrInvalidConfig, c.SplitPattern)
	}
	if _, err := regexp.Compile(c.WordPattern); err != nil || c.WordPattern == "" {
		return fmt.Errorf("%w: WordPattern %q", ErrInvalidConfig, c.WordPattern)
	}
	if _, err := regexp2.Compile(c.DehyphenPattern, regexp2.None); err != nil || c.DehyphenPattern == "" {
		return fmt.Errorf("%w: DehyphenPattern %q", ErrInvalidConfig, c.DehyphenPattern)
	}
	if c.WindowWords < 1 {
		return fmt.Errorf("%w: WindowWords must be positive", ErrInvalidConfig)
	}
	if c.WindowStep < 1 || c.WindowStep > c.WindowWords {
		return fmt.Errorf("%w: WindowStep must be between 1 and WindowWords", ErrInvalidConfig)
	}
	if c.MinSegmentWords < 1 || c.MinSegmentAlnum < 0 {
		return fmt.Errorf("%w: segment thresholds out of range", ErrInvalidConfig)
	}
	if c.MinFuzzyWords < 1 {
		return fmt.Errorf("%w: MinFuzzyWords must be positive", ErrInvalidConfig)
	}
	if c.MinFuzzyRatio <= 0 || c.MinFuzzyRatio > 1 {
		return fmt.Errorf("%w: MinFuzzyRatio must be in (0, 1]", ErrInvalidConfig)
	}
	return nil
}

// compiledConfig is a validated Config with its patterns compiled.
type compiledConfig struct {
	Config
	split    *regexp.Regexp
	word     *regexp.Regexp
	dehyphen *regexp2.Regexp
}

func (c *Config) compile() (*compiledConfig, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &compiledConfig{
		Config:   *c,
		split:    regexp.MustCompile(c.SplitPattern),
		word:     regexp.MustCompile(c.WordPattern),
		dehyphen: regexp2.MustCompile(c.DehyphenPattern, regexp2.None),
	}, nil
}
