package store

import (
	"context"
	"sort"
	"sync"
)

// MemoryRecorder keeps records in process memory. It is the fallback when
// no database is configured and the backend used in tests.
type MemoryRecorder struct {
	mu      sync.Mutex
	records []Record
}

// NewMemoryRecorder creates an empty in-memory recorder.
func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{}
}

func (m *MemoryRecorder) Record(_ context.Context, r Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, r)
	return nil
}

func (m *MemoryRecorder) Stats(_ context.Context) (Stats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.records) == 0 {
		return emptyStats("local"), nil
	}

	diseases := make(map[string]int)
	ages := make(map[string]int)
	for _, r := range m.records {
		if r.PredictedDisease != "" {
			diseases[r.PredictedDisease]++
		}
		if r.AgeRange != "" && r.AgeRange != "N/A" {
			ages[r.AgeRange]++
		}
	}

	return Stats{
		Source:         "local",
		TotalCheckups:  len(m.records),
		UniqueDiseases: len(diseases),
		TopDiseases:    topCounts(diseases, topDiseaseLimit),
		ByAge:          ageCounts(ages),
	}, nil
}

func (m *MemoryRecorder) Close() error { return nil }

func topCounts(counts map[string]int, limit int) []DiseaseCount {
	out := make([]DiseaseCount, 0, len(counts))
	for d, c := range counts {
		out = append(out, DiseaseCount{Disease: d, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Disease < out[j].Disease
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func ageCounts(counts map[string]int) []AgeCount {
	out := make([]AgeCount, 0, len(counts))
	for a, c := range counts {
		out = append(out, AgeCount{Age: a, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Age < out[j].Age
	})
	return out
}
