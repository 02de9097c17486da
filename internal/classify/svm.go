package classify

import "math"

// SVMClass is one one-vs-rest binary SVM: an RBF-kernel decision function
// plus the Platt sigmoid parameters fitted during training to map decision
// values onto probabilities.
type SVMClass struct {
	SupportVectors [][]float64 `json:"support_vectors"`
	Coefficients   []float64   `json:"coefficients"`
	Intercept      float64     `json:"intercept"`
	PlattA         float64     `json:"platt_a"`
	PlattB         float64     `json:"platt_b"`
}

// SVM is a multiclass RBF-kernel classifier assembled from one-vs-rest
// binary machines. Per-class Platt probabilities are normalized to a
// distribution.
type SVM struct {
	Gamma   float64    `json:"gamma"`
	Classes []SVMClass `json:"classes"`
}

// Probabilities scores one feature vector and returns a distribution over
// the class set. When every sigmoid output is zero the result degrades to
// the uniform distribution.
func (s *SVM) Probabilities(vec []float64) []float64 {
	probs := make([]float64, len(s.Classes))
	sum := 0.0
	for c, cls := range s.Classes {
		d := cls.decision(vec, s.Gamma)
		p := 1.0 / (1.0 + math.Exp(cls.PlattA*d+cls.PlattB))
		probs[c] = p
		sum += p
	}
	if sum <= 0 {
		for c := range probs {
			probs[c] = 1.0 / float64(len(probs))
		}
		return probs
	}
	for c := range probs {
		probs[c] /= sum
	}
	return probs
}

func (c *SVMClass) decision(vec []float64, gamma float64) float64 {
	d := c.Intercept
	for i, sv := range c.SupportVectors {
		if i < len(c.Coefficients) {
			d += c.Coefficients[i] * rbf(sv, vec, gamma)
		}
	}
	return d
}

// rbf is the Gaussian kernel exp(-gamma * ||u-v||²).
func rbf(u, v []float64, gamma float64) float64 {
	sq := 0.0
	n := max(len(u), len(v))
	for i := 0; i < n; i++ {
		var a, b float64
		if i < len(u) {
			a = u[i]
		}
		if i < len(v) {
			b = v[i]
		}
		diff := a - b
		sq += diff * diff
	}
	return math.Exp(-gamma * sq)
}
