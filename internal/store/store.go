// Package store persists anonymized checkup records for population health
// analytics. Three backends implement the same Recorder interface: an
// in-memory fallback, a local SQLite file, and Postgres for shared
// deployments. Recording failures never abort an analysis.
package store

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/arkodeep/healthtriage/internal/classify"
)

// Record is one anonymized checkup. The complaint is truncated and
// lowercased before storage so no free-text PII beyond the first 100
// characters is kept.
type Record struct {
	ID               string            `json:"id"`
	CreatedAt        time.Time         `json:"created_at"`
	AgeRange         string            `json:"age_range"`
	Gender           string            `json:"gender"`
	Complaint        string            `json:"complaint"`
	Severity         string            `json:"severity"`
	Duration         string            `json:"duration"`
	Symptoms         []string          `json:"symptoms"`
	PredictedDisease string            `json:"predicted_disease"`
	Confidence       float64           `json:"confidence"`
	BodyAreas        []string          `json:"body_areas"`
	Preexisting      []string          `json:"preexisting"`
	Lifestyle        map[string]string `json:"lifestyle"`
}

// DiseaseCount is one row of the top-diseases aggregate.
type DiseaseCount struct {
	Disease string `json:"disease"`
	Count   int    `json:"count"`
}

// AgeCount is one row of the by-age aggregate.
type AgeCount struct {
	Age   string `json:"age"`
	Count int    `json:"count"`
}

// Stats is the aggregate view served by the stats endpoint.
type Stats struct {
	Source         string         `json:"source"`
	TotalCheckups  int            `json:"total_checkups"`
	UniqueDiseases int            `json:"unique_diseases"`
	TopDiseases    []DiseaseCount `json:"top_diseases"`
	ByAge          []AgeCount     `json:"by_age"`
	Message        string         `json:"message,omitempty"`
}

// Recorder persists checkup records and serves aggregates.
type Recorder interface {
	Record(ctx context.Context, r Record) error
	Stats(ctx context.Context) (Stats, error)
	Close() error
}

const (
	maxComplaintLen = 100
	maxStoredSymp   = 5
	topDiseaseLimit = 5
)

// NewRecord builds a sanitized Record from intake fields and the final
// diagnosis. Only the top-ranked condition and the first five symptoms are
// kept.
func NewRecord(complaint, ageRange, gender, severity, duration string,
	symptoms, bodyAreas, preexisting []string, lifestyle map[string]string,
	diagnosis classify.Result) Record {

	r := Record{
		ID:          uuid.NewString(),
		CreatedAt:   time.Now().UTC(),
		AgeRange:    orNA(ageRange),
		Gender:      orNA(gender),
		Complaint:   categorizeComplaint(complaint),
		Severity:    orNA(severity),
		Duration:    orNA(duration),
		Symptoms:    firstN(symptoms, maxStoredSymp),
		BodyAreas:   bodyAreas,
		Preexisting: preexisting,
		Lifestyle:   lifestyle,
	}
	if len(diagnosis.TopConditions) > 0 {
		top := diagnosis.TopConditions[0]
		r.PredictedDisease = top.Name
		r.Confidence = top.ConfidenceScore
	}
	return r
}

// categorizeComplaint strips the complaint down to a lowercase category
// string, dropping anything past 100 characters.
func categorizeComplaint(complaint string) string {
	c := strings.ToLower(strings.TrimSpace(complaint))
	if len(c) > maxComplaintLen {
		c = c[:maxComplaintLen]
	}
	return c
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

func firstN(xs []string, n int) []string {
	if len(xs) <= n {
		return xs
	}
	return xs[:n]
}

func emptyStats(source string) Stats {
	return Stats{
		Source:      source,
		TopDiseases: []DiseaseCount{},
		ByAge:       []AgeCount{},
		Message:     "No data yet. Complete a health checkup to see analytics.",
	}
}
