package vocab

// Encoder converts symptom name sets into fixed-length binary feature
// vectors aligned to the vocabulary's column order.
type Encoder struct {
	vocab *Vocabulary
}

// NewEncoder creates an Encoder over the given vocabulary.
func NewEncoder(v *Vocabulary) *Encoder {
	return &Encoder{vocab: v}
}

// Encode returns a vector of vocabulary length with 1.0 at the indices of
// present symptoms and 0.0 elsewhere. Names are matched case-insensitively;
// unknown names are ignored rather than rejected, since callers pass
// free-form strings from checkboxes and "other" fields.
func (e *Encoder) Encode(symptoms []string) []float64 {
	vec := make([]float64, e.vocab.Len())
	for _, s := range symptoms {
		if i, ok := e.vocab.Index(s); ok {
			vec[i] = 1.0
		}
	}
	return vec
}
