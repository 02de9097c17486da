// Package enhance runs the optional LLM agents that refine the local
// pipeline's output. Every method degrades gracefully: if the provider is
// absent, errors, or returns malformed content, the caller's local result
// is handed back unchanged with used=false.
package enhance

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/arkodeep/healthtriage/internal/classify"
	"github.com/arkodeep/healthtriage/internal/llm"
	"github.com/arkodeep/healthtriage/internal/recommend"
	"github.com/arkodeep/healthtriage/internal/report"
)

// Profile is the patient intake snapshot sent to the agents.
type Profile struct {
	Complaint     string            `json:"complaint"`
	Age           string            `json:"age"`
	Gender        string            `json:"gender"`
	Duration      string            `json:"duration"`
	Severity      string            `json:"severity"`
	BodyAreas     []string          `json:"body_areas"`
	Preexisting   []string          `json:"preexisting"`
	Lifestyle     map[string]string `json:"lifestyle"`
	FamilyHistory []string          `json:"family_history"`
	AllSymptoms   []string          `json:"all_symptoms"`
}

// Agents wraps an LLM provider with the three triage agents.
type Agents struct {
	provider llm.Provider
	diseases []string
}

// Config tunes generation; zero values use the defaults below.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns generation defaults shared by all three agents.
func DefaultConfig() Config {
	return Config{MaxTokens: 2048, Temperature: 0.2}
}

var defaults = DefaultConfig()

// New creates the agent set. provider may be nil, in which case every
// method reports used=false. diseases constrains diagnosis output to the
// model's known labels.
func New(provider llm.Provider, diseases []string) *Agents {
	return &Agents{provider: provider, diseases: diseases}
}

// Enabled reports whether an LLM provider is wired in.
func (a *Agents) Enabled() bool {
	return a != nil && a.provider != nil
}

// Diagnosis asks the LLM to refine the local diagnosis. Returns the refined
// result and true, or the local result and false when the agent could not
// produce a well-formed refinement.
func (a *Agents) Diagnosis(ctx context.Context, profile Profile, local classify.Result) (classify.Result, bool) {
	if !a.Enabled() {
		return local, false
	}

	profileJSON, _ := json.MarshalIndent(profile, "", "  ")
	localJSON, _ := json.MarshalIndent(local, "", "  ")

	resp, err := a.provider.Generate(llm.WithPurpose(ctx, "diagnosis"), llm.Request{
		System: diagnosisSystemPrompt,
		Messages: userMessage(
			fmt.Sprintf("Patient Data:\n%s", profileJSON),
			fmt.Sprintf("ML Prediction:\n%s", localJSON),
			"Produce the refined diagnosis.",
		),
		Schema:      diagnosisSchema(a.diseases),
		MaxTokens:   defaults.MaxTokens,
		Temperature: defaults.Temperature,
	})
	if err != nil {
		return local, false
	}

	var refined classify.Result
	if err := json.Unmarshal(resp.Content, &refined); err != nil {
		return local, false
	}
	if len(refined.TopConditions) == 0 {
		return local, false
	}
	// Carry over the ensemble details the agent does not produce.
	refined.Details = local.Details
	return refined, true
}

// Recommendations asks the LLM for treatment recommendations. Falls back to
// the local recommendation database on any failure.
func (a *Agents) Recommendations(ctx context.Context, diagnosis classify.Result) (recommend.Set, bool) {
	local := recommend.ForDiagnosis(diagnosis)
	if !a.Enabled() {
		return local, false
	}

	diagJSON, _ := json.MarshalIndent(diagnosis, "", "  ")

	resp, err := a.provider.Generate(llm.WithPurpose(ctx, "recommendations"), llm.Request{
		System: recommendationSystemPrompt,
		Messages: userMessage(
			fmt.Sprintf("Diagnosis:\n%s", diagJSON),
			"Produce the recommendations.",
		),
		Schema:      recommendationSchema(),
		MaxTokens:   defaults.MaxTokens,
		Temperature: defaults.Temperature,
	})
	if err != nil {
		return local, false
	}

	var set recommend.Set
	if err := json.Unmarshal(resp.Content, &set); err != nil {
		return local, false
	}
	if len(set.Recommendations) == 0 {
		return local, false
	}
	return set, true
}

// Summary asks the LLM for the patient-facing markdown report. Falls back
// to the locally rendered report on any failure.
func (a *Agents) Summary(ctx context.Context, profile Profile, diagnosis classify.Result, recs recommend.Set, modelAccuracy float64) (string, bool) {
	patient := report.Patient{
		Name:      "",
		Age:       profile.Age,
		Gender:    profile.Gender,
		Complaint: profile.Complaint,
	}
	local := report.Render(patient, diagnosis, recs, modelAccuracy)
	if !a.Enabled() {
		return local, false
	}

	profileJSON, _ := json.MarshalIndent(profile, "", "  ")
	diagJSON, _ := json.MarshalIndent(diagnosis, "", "  ")
	recsJSON, _ := json.MarshalIndent(recs, "", "  ")

	resp, err := a.provider.Generate(llm.WithPurpose(ctx, "summary"), llm.Request{
		System: summarySystemPrompt,
		Messages: userMessage(
			fmt.Sprintf("Patient:\n%s", profileJSON),
			fmt.Sprintf("Diagnosis:\n%s", diagJSON),
			fmt.Sprintf("Recommendations:\n%s", recsJSON),
			"Generate the report.",
		),
		MaxTokens:   defaults.MaxTokens,
		Temperature: defaults.Temperature,
	})
	if err != nil {
		return local, false
	}

	text := decodeText(resp.Content)
	if text == "" {
		return local, false
	}
	return text, true
}

// decodeText handles both raw markdown and markdown wrapped as a JSON
// string, depending on how the provider returned unstructured output.
func decodeText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
