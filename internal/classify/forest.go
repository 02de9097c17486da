package classify

// TreeNode is one node of a serialized decision tree. Internal nodes carry
// Feature >= 0 with a split threshold and child indices; leaves carry
// Feature == -1 and a per-class probability distribution.
type TreeNode struct {
	Feature      int       `json:"feature"`
	Threshold    float64   `json:"threshold"`
	Left         int       `json:"left"`
	Right        int       `json:"right"`
	Distribution []float64 `json:"distribution,omitempty"`
}

// Tree is a flattened decision tree, rooted at node 0.
type Tree struct {
	Nodes []TreeNode `json:"nodes"`
}

// Forest is a random-forest classifier: per-class probabilities are the
// mean of the leaf distributions reached across all trees.
type Forest struct {
	Trees []Tree `json:"trees"`
}

// Probabilities scores one feature vector and returns a distribution over
// nClasses labels.
func (f *Forest) Probabilities(vec []float64, nClasses int) []float64 {
	probs := make([]float64, nClasses)
	if len(f.Trees) == 0 {
		return probs
	}
	for _, tree := range f.Trees {
		leaf := tree.walk(vec)
		for c := 0; c < nClasses && c < len(leaf); c++ {
			probs[c] += leaf[c]
		}
	}
	n := float64(len(f.Trees))
	for c := range probs {
		probs[c] /= n
	}
	return probs
}

func (t *Tree) walk(vec []float64) []float64 {
	i := 0
	for {
		n := t.Nodes[i]
		if n.Feature < 0 {
			return n.Distribution
		}
		x := 0.0
		if n.Feature < len(vec) {
			x = vec[n.Feature]
		}
		if x <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}
