// Package vocab holds the fixed symptom vocabulary exported by the offline
// training job. The vocabulary is loaded once at startup and read-only
// thereafter, so it is safe to share across concurrent requests.
package vocab

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Metadata mirrors the metadata.json artifact written by the training job.
type Metadata struct {
	Symptoms       []string `json:"symptoms"`
	SymptomColumns []string `json:"symptom_columns"`
	Diseases       []string `json:"diseases"`
	NSymptoms      int      `json:"n_symptoms"`
	NDiseases      int      `json:"n_diseases"`
	Accuracy       float64  `json:"accuracy"`
}

// Vocabulary is the ordered catalogue of known symptom names, their raw
// feature-column identifiers, and the disease label set. Symptom display
// names and raw columns are index-aligned 1:1.
type Vocabulary struct {
	symptoms []string
	columns  []string
	diseases []string
	accuracy float64

	// lowercased display name → column index, built once.
	index map[string]int
}

// New builds a Vocabulary from ordered symptom names, raw column identifiers,
// and disease names. Symptoms and columns must be index-aligned.
func New(symptoms, columns, diseases []string) (*Vocabulary, error) {
	if len(symptoms) != len(columns) {
		return nil, fmt.Errorf("vocabulary misaligned: %d symptoms vs %d columns", len(symptoms), len(columns))
	}
	idx := make(map[string]int, len(symptoms))
	for i, s := range symptoms {
		idx[strings.ToLower(s)] = i
	}
	return &Vocabulary{
		symptoms: symptoms,
		columns:  columns,
		diseases: diseases,
		index:    idx,
	}, nil
}

// Empty returns a zero-length vocabulary. Core components degrade to
// empty results when given one, they never fail.
func Empty() *Vocabulary {
	return &Vocabulary{index: map[string]int{}}
}

// Load reads a metadata.json artifact from disk.
func Load(path string) (*Vocabulary, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read metadata: %w", err)
	}
	var meta Metadata
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, fmt.Errorf("parse metadata: %w", err)
	}
	v, err := New(meta.Symptoms, meta.SymptomColumns, meta.Diseases)
	if err != nil {
		return nil, err
	}
	v.accuracy = meta.Accuracy
	return v, nil
}

// Symptoms returns the ordered symptom display names.
func (v *Vocabulary) Symptoms() []string { return v.symptoms }

// Diseases returns the ordered disease names.
func (v *Vocabulary) Diseases() []string { return v.diseases }

// Len returns the number of feature columns.
func (v *Vocabulary) Len() int { return len(v.columns) }

// Accuracy returns the held-out accuracy recorded by the training job,
// or 0 when the artifact did not carry one.
func (v *Vocabulary) Accuracy() float64 { return v.accuracy }

// Index returns the feature-column index for a symptom display name,
// matched case-insensitively.
func (v *Vocabulary) Index(name string) (int, bool) {
	i, ok := v.index[strings.ToLower(name)]
	return i, ok
}

// Symptom returns the canonical-cased display name at index i.
func (v *Vocabulary) Symptom(i int) string { return v.symptoms[i] }
