package extract

// Similarity returns a normalized edit-distance ratio between two strings:
// 1.0 for identical inputs, 0.0 for no overlap at all. The ratio is
// 1 - levenshtein(a, b) / max(len(a), len(b)).
func Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	la, lb := len(a), len(b)
	if la == 0 || lb == 0 {
		return 0.0
	}

	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}
	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	maxLen := max(la, lb)
	return 1.0 - float64(prev[lb])/float64(maxLen)
}
