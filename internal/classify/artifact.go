// Package classify turns a symptom set into ranked disease candidates using
// an ensemble of two pre-trained probabilistic classifiers: a random forest
// and an RBF-kernel SVM. Model fitting happens in an offline batch job; this
// package only loads its exported artifact and scores feature vectors.
package classify

import (
	"encoding/json"
	"fmt"
	"os"
)

// Artifact is the serialized model bundle exported by the training job.
// Both classifiers share the identical feature ordering and label encoding.
type Artifact struct {
	FeatureCount int      `json:"feature_count"`
	Labels       []string `json:"labels"`
	Forest       *Forest  `json:"forest"`
	SVM          *SVM     `json:"svm"`
}

// LoadArtifact reads and validates a model artifact from disk.
func LoadArtifact(path string) (*Artifact, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}
	var a Artifact
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("parse model artifact: %w", err)
	}
	if err := a.validate(); err != nil {
		return nil, fmt.Errorf("invalid model artifact: %w", err)
	}
	return &a, nil
}

func (a *Artifact) validate() error {
	if len(a.Labels) == 0 {
		return fmt.Errorf("no labels")
	}
	if a.Forest == nil || len(a.Forest.Trees) == 0 {
		return fmt.Errorf("no forest trees")
	}
	if a.SVM == nil || len(a.SVM.Classes) != len(a.Labels) {
		return fmt.Errorf("SVM class count %d does not match %d labels", svmClassCount(a.SVM), len(a.Labels))
	}
	for _, tree := range a.Forest.Trees {
		for i, n := range tree.Nodes {
			if n.Feature >= 0 {
				if n.Left < 0 || n.Left >= len(tree.Nodes) || n.Right < 0 || n.Right >= len(tree.Nodes) {
					return fmt.Errorf("tree node %d has out-of-range children", i)
				}
				if n.Feature >= a.FeatureCount {
					return fmt.Errorf("tree node %d splits on feature %d beyond %d", i, n.Feature, a.FeatureCount)
				}
			} else if len(n.Distribution) != len(a.Labels) {
				return fmt.Errorf("leaf node %d has %d-class distribution, want %d", i, len(n.Distribution), len(a.Labels))
			}
		}
	}
	return nil
}

func svmClassCount(s *SVM) int {
	if s == nil {
		return 0
	}
	return len(s.Classes)
}
