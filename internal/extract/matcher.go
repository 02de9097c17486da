// Package extract maps free-text health complaints onto the fixed symptom
// vocabulary. A fast exact-substring pass handles verbatim mentions; a fuzzy
// pass over short token windows recovers misspellings, plurals, and
// paraphrases without a full NLP pipeline.
package extract

import (
	"strings"

	"github.com/arkodeep/healthtriage/internal/vocab"
)

// DefaultFuzzyCutoff is the minimum similarity ratio for a token window to
// be accepted as a vocabulary symptom.
const DefaultFuzzyCutoff = 0.70

// maxWindow is the longest token window considered by the fuzzy pass.
const maxWindow = 3

// Config holds matcher tuning knobs.
type Config struct {
	// FuzzyCutoff is the acceptance threshold for the fuzzy pass.
	FuzzyCutoff float64
}

// DefaultConfig returns the standard matcher configuration.
func DefaultConfig() Config {
	return Config{FuzzyCutoff: DefaultFuzzyCutoff}
}

// Matcher extracts known symptoms from arbitrary free text.
type Matcher struct {
	vocab *vocab.Vocabulary
	cfg   Config

	// lowercased vocabulary symptoms, index-aligned with the vocabulary.
	lowered []string
}

// NewMatcher creates a Matcher over the given vocabulary.
func NewMatcher(v *vocab.Vocabulary, cfg Config) *Matcher {
	if cfg.FuzzyCutoff <= 0 {
		cfg.FuzzyCutoff = DefaultFuzzyCutoff
	}
	lowered := make([]string, len(v.Symptoms()))
	for i, s := range v.Symptoms() {
		lowered[i] = strings.ToLower(s)
	}
	return &Matcher{vocab: v, cfg: cfg, lowered: lowered}
}

// Extract returns vocabulary symptoms found in text, in order of first
// discovery, deduplicated case-insensitively, with canonical vocabulary
// casing. Empty text or an empty vocabulary yields an empty result.
func (m *Matcher) Extract(text string) []string {
	if text == "" || m.vocab.Len() == 0 {
		return nil
	}
	lower := strings.ToLower(text)

	var found []string
	seen := make(map[string]bool)
	add := func(idx int) {
		key := m.lowered[idx]
		if !seen[key] {
			seen[key] = true
			found = append(found, m.vocab.Symptom(idx))
		}
	}

	// Exact pass: vocabulary iteration order.
	for i, sym := range m.lowered {
		if strings.Contains(lower, sym) {
			add(i)
		}
	}

	// Fuzzy pass over 1-, 2-, and 3-token windows.
	for _, phrase := range tokenWindows(lower) {
		if idx, ok := m.closestSymptom(phrase); ok {
			add(idx)
		}
	}

	return found
}

// closestSymptom returns the single best vocabulary match for a phrase, or
// false when no symptom clears the cutoff.
func (m *Matcher) closestSymptom(phrase string) (int, bool) {
	best, bestIdx := 0.0, -1
	for i, sym := range m.lowered {
		if r := Similarity(phrase, sym); r > best {
			best, bestIdx = r, i
		}
	}
	if bestIdx < 0 || best < m.cfg.FuzzyCutoff {
		return 0, false
	}
	return bestIdx, true
}

// tokenWindows splits lowered text into words and returns every contiguous
// window of 1 to maxWindow tokens. Windows of length k are only formed
// while at least k tokens remain.
func tokenWindows(lower string) []string {
	cleaned := strings.NewReplacer(",", " ", ".", " ").Replace(lower)
	words := strings.Fields(cleaned)

	var phrases []string
	for k := 1; k <= maxWindow; k++ {
		for i := 0; i+k <= len(words); i++ {
			phrases = append(phrases, strings.Join(words[i:i+k], " "))
		}
	}
	return phrases
}
