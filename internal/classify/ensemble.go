package classify

import (
	"fmt"
	"math"
	"sort"

	"github.com/arkodeep/healthtriage/internal/vocab"
)

// Confidence buckets a probability into a coarse tier.
type Confidence string

const (
	ConfidenceHigh   Confidence = "High"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceLow    Confidence = "Low"
)

// Tier thresholds: High above 0.50, Medium above 0.20, Low otherwise.
const (
	highThreshold   = 0.50
	mediumThreshold = 0.20
)

// Condition is one ranked disease candidate.
type Condition struct {
	Name string `json:"name"`
	// Confidence is the coarse tier derived from the score.
	Confidence Confidence `json:"confidence"`
	// ConfidenceScore is the ensemble probability as a percentage,
	// rounded to one decimal place.
	ConfidenceScore float64 `json:"confidence_score"`
	Reasoning       string  `json:"reasoning"`
}

// Result is the structured output of one diagnosis call. Degraded states
// (missing models, empty input) are encoded in Err rather than raised, so
// callers always receive a well-formed value.
type Result struct {
	ExtractedSymptoms []string          `json:"extracted_symptoms,omitempty"`
	TopConditions     []Condition       `json:"top_conditions"`
	Details           map[string]string `json:"details,omitempty"`
	Err               string            `json:"error,omitempty"`
}

// Config holds the ensemble's policy knobs. The defaults reproduce the
// trained configuration; the forest weight in particular is an unvalidated
// 50/50 split and deliberately left tunable.
type Config struct {
	// ForestWeight is the forest's share of the ensemble mean; the SVM
	// receives 1 - ForestWeight.
	ForestWeight float64
	// TopN caps the number of returned conditions.
	TopN int
	// MinScore drops candidates below this ensemble probability.
	MinScore float64
}

// DefaultConfig returns the standard ensemble configuration.
func DefaultConfig() Config {
	return Config{
		ForestWeight: 0.5,
		TopN:         3,
		MinScore:     0.01,
	}
}

// Ensemble combines the two classifiers over a shared vocabulary.
type Ensemble struct {
	artifact *Artifact
	encoder  *vocab.Encoder
	cfg      Config
}

// NewEnsemble creates an Ensemble. A nil artifact is allowed and puts the
// ensemble in a degraded state where Diagnose returns error-flagged results.
func NewEnsemble(artifact *Artifact, enc *vocab.Encoder, cfg Config) *Ensemble {
	if cfg.TopN <= 0 {
		cfg.TopN = DefaultConfig().TopN
	}
	return &Ensemble{artifact: artifact, encoder: enc, cfg: cfg}
}

// Ready reports whether both classifiers and the label mapping are loaded.
func (e *Ensemble) Ready() bool {
	return e.artifact != nil && e.artifact.Forest != nil && e.artifact.SVM != nil && len(e.artifact.Labels) > 0
}

// Labels returns the disease label set, in training order.
func (e *Ensemble) Labels() []string {
	if e.artifact == nil {
		return nil
	}
	return e.artifact.Labels
}

// Diagnose scores a symptom set and returns up to TopN ranked conditions.
// It never fails: missing models or an empty symptom list yield a Result
// with Err set and an empty condition list.
func (e *Ensemble) Diagnose(symptoms []string) Result {
	if !e.Ready() || len(symptoms) == 0 {
		return Result{
			Err:           "No symptoms or models not loaded",
			TopConditions: []Condition{},
		}
	}

	vec := e.encoder.Encode(symptoms)
	nClasses := len(e.artifact.Labels)

	forestProbs := e.artifact.Forest.Probabilities(vec, nClasses)
	svmProbs := e.artifact.SVM.Probabilities(vec)

	w := e.cfg.ForestWeight
	avg := make([]float64, nClasses)
	for c := range avg {
		avg[c] = w*forestProbs[c] + (1-w)*svmProbs[c]
	}

	// Rank by descending probability, ties broken by lower label index.
	order := make([]int, nClasses)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return avg[order[a]] > avg[order[b]]
	})

	conditions := []Condition{}
	for _, idx := range order {
		if len(conditions) == e.cfg.TopN {
			break
		}
		score := avg[idx]
		if score < e.cfg.MinScore {
			continue
		}
		pct := math.Round(score*1000) / 10
		conditions = append(conditions, Condition{
			Name:            e.artifact.Labels[idx],
			Confidence:      tierFor(score),
			ConfidenceScore: pct,
			Reasoning:       fmt.Sprintf("Ensemble (RF+SVM): %.1f%% probability", pct),
		})
	}

	return Result{
		ExtractedSymptoms: symptoms,
		TopConditions:     conditions,
		Details: map[string]string{
			"RandomForest": fmt.Sprintf("%d trees", len(e.artifact.Forest.Trees)),
			"SVM":          fmt.Sprintf("RBF kernel, gamma=%g", e.artifact.SVM.Gamma),
		},
	}
}

func tierFor(score float64) Confidence {
	switch {
	case score > highThreshold:
		return ConfidenceHigh
	case score > mediumThreshold:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
