// Package engine wires the triage pipeline together: symptom extraction,
// ensemble diagnosis, step planning, recommendations, report rendering,
// optional LLM enhancement, and analytics recording.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/arkodeep/healthtriage/internal/classify"
	"github.com/arkodeep/healthtriage/internal/enhance"
	"github.com/arkodeep/healthtriage/internal/extract"
	"github.com/arkodeep/healthtriage/internal/recommend"
	"github.com/arkodeep/healthtriage/internal/steps"
	"github.com/arkodeep/healthtriage/internal/store"
	"github.com/arkodeep/healthtriage/internal/vocab"
)

// Intake is the full set of answers collected across the questionnaire
// steps plus the free-text complaint.
type Intake struct {
	Complaint        string            `json:"complaint"`
	Age              string            `json:"age"`
	Gender           string            `json:"gender"`
	Duration         string            `json:"duration"`
	Severity         string            `json:"severity"`
	BodyAreas        []string          `json:"body_areas"`
	SelectedSymptoms []string          `json:"selected_symptoms"`
	OtherSymptoms    string            `json:"other_symptoms"`
	OtherConditions  string            `json:"other_conditions"`
	OtherBodyAreas   string            `json:"other_body_areas"`
	Preexisting      []string          `json:"preexisting"`
	Lifestyle        map[string]string `json:"lifestyle"`
	FamilyHistory    []string          `json:"family_history"`
}

// Analysis is the full pipeline output.
type Analysis struct {
	Report          string          `json:"report"`
	Diagnosis       classify.Result `json:"diagnosis"`
	Recommendations recommend.Set   `json:"recommendations"`
	PoweredBy       string          `json:"powered_by"`
	LLMUsed         bool            `json:"llm_used"`
}

// Status describes what the engine has loaded.
type Status struct {
	ModelLoaded   bool    `json:"ml_model_loaded"`
	ModelAccuracy float64 `json:"model_accuracy"`
	Symptoms      int     `json:"n_symptoms"`
	Diseases      int     `json:"n_diseases"`
	LLMEnabled    bool    `json:"llm_available"`
	Analytics     string  `json:"analytics_backend"`
}

// Engine owns every pipeline component. All methods are safe for
// concurrent use; the components are immutable after construction.
type Engine struct {
	vocab    *vocab.Vocabulary
	matcher  *extract.Matcher
	ensemble *classify.Ensemble
	planner  *steps.Planner
	agents   *enhance.Agents
	recorder store.Recorder
	logger   *slog.Logger

	analyticsName string
}

// Options collects the engine's dependencies. Vocabulary and Recorder must
// be set; a nil Artifact or Agents degrades gracefully.
type Options struct {
	Vocabulary *vocab.Vocabulary
	Artifact   *classify.Artifact

	ExtractConfig  extract.Config
	EnsembleConfig classify.Config
	PlannerConfig  steps.Config

	Agents   *enhance.Agents
	Recorder store.Recorder

	// AnalyticsName labels the recorder backend in Status ("memory",
	// "sqlite", "postgres").
	AnalyticsName string

	Logger *slog.Logger
}

// New builds an Engine. Missing optional dependencies are replaced with
// degraded defaults so every operation still answers.
func New(opts Options) *Engine {
	v := opts.Vocabulary
	if v == nil {
		v = vocab.Empty()
	}
	matcher := extract.NewMatcher(v, opts.ExtractConfig)
	ecfg := opts.EnsembleConfig
	if ecfg == (classify.Config{}) {
		ecfg = classify.DefaultConfig()
	}
	ensemble := classify.NewEnsemble(opts.Artifact, vocab.NewEncoder(v), ecfg)
	planner := steps.NewPlanner(matcher, opts.PlannerConfig)

	agents := opts.Agents
	if agents == nil {
		agents = enhance.New(nil, v.Diseases())
	}

	recorder := opts.Recorder
	name := opts.AnalyticsName
	if recorder == nil {
		recorder = store.NewMemoryRecorder()
		name = "memory"
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Engine{
		vocab:         v,
		matcher:       matcher,
		ensemble:      ensemble,
		planner:       planner,
		agents:        agents,
		recorder:      recorder,
		logger:        logger,
		analyticsName: name,
	}
}

// Status reports component availability.
func (e *Engine) Status() Status {
	return Status{
		ModelLoaded:   e.ensemble.Ready(),
		ModelAccuracy: e.vocab.Accuracy(),
		Symptoms:      e.vocab.Len(),
		Diseases:      len(e.vocab.Diseases()),
		LLMEnabled:    e.agents.Enabled(),
		Analytics:     e.analyticsName,
	}
}

// Symptoms returns the display vocabulary.
func (e *Engine) Symptoms() []string {
	return e.vocab.Symptoms()
}

// Extract runs symptom extraction over free text.
func (e *Engine) Extract(text string) []string {
	return e.matcher.Extract(text)
}

// ValidateComplaint checks that a complaint is health-related.
func (e *Engine) ValidateComplaint(text string) (bool, string) {
	return e.matcher.ValidateComplaint(text)
}

// Plan builds the questionnaire steps for a complaint.
func (e *Engine) Plan(complaint string) []steps.Step {
	return e.planner.Plan(complaint)
}

// Diagnose classifies an explicit symptom list without the rest of the
// pipeline. Used by the CLI.
func (e *Engine) Diagnose(symptoms []string) classify.Result {
	return e.ensemble.Diagnose(symptoms)
}

// Stats returns the analytics aggregates.
func (e *Engine) Stats(ctx context.Context) (store.Stats, error) {
	return e.recorder.Stats(ctx)
}

// Analyze runs the full pipeline: symptom collection, diagnosis,
// enhancement-or-local recommendations and report, analytics recording.
// Bad input never fails the call; degraded output carries the explanation.
func (e *Engine) Analyze(ctx context.Context, in Intake) Analysis {
	symptoms := e.collectSymptoms(in)

	local := e.ensemble.Diagnose(symptoms)

	profile := enhance.Profile{
		Complaint:     in.Complaint,
		Age:           orNA(in.Age),
		Gender:        orNA(in.Gender),
		Duration:      orNA(in.Duration),
		Severity:      orNA(in.Severity),
		BodyAreas:     in.BodyAreas,
		Preexisting:   in.Preexisting,
		Lifestyle:     in.Lifestyle,
		FamilyHistory: in.FamilyHistory,
		AllSymptoms:   symptoms,
	}

	diagnosis, usedDiag := e.agents.Diagnosis(ctx, profile, local)
	recs, usedRecs := e.agents.Recommendations(ctx, diagnosis)
	reportText, usedSummary := e.agents.Summary(ctx, profile, diagnosis, recs, e.vocab.Accuracy())

	rec := store.NewRecord(in.Complaint, in.Age, in.Gender, in.Severity, in.Duration,
		symptoms, in.BodyAreas, in.Preexisting, in.Lifestyle, diagnosis)
	if err := e.recorder.Record(ctx, rec); err != nil {
		e.logger.WarnContext(ctx, "analytics record failed", slog.String("error", err.Error()))
	}

	llmUsed := usedDiag || usedRecs || usedSummary

	return Analysis{
		Report:          reportText,
		Diagnosis:       diagnosis,
		Recommendations: recs,
		PoweredBy:       e.poweredBy(llmUsed),
		LLMUsed:         llmUsed,
	}
}

// collectSymptoms gathers symptoms from every intake field: complaint
// extraction, explicit selections, the other-text escape hatches, and the
// body-area symptom map. Order-preserving, case-insensitively deduplicated.
func (e *Engine) collectSymptoms(in Intake) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(s string) {
		key := strings.ToLower(strings.TrimSpace(s))
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		out = append(out, s)
	}

	for _, s := range e.matcher.Extract(in.Complaint) {
		add(s)
	}
	for _, s := range in.SelectedSymptoms {
		add(s)
	}
	for _, other := range []string{in.OtherSymptoms, in.OtherConditions, in.OtherBodyAreas} {
		for _, s := range e.matcher.Extract(other) {
			add(s)
		}
	}
	for _, area := range in.BodyAreas {
		for _, s := range steps.SymptomsForArea(area) {
			add(s)
		}
	}
	return out
}

func (e *Engine) poweredBy(llmUsed bool) string {
	var sources []string
	if e.ensemble.Ready() {
		sources = append(sources, fmt.Sprintf("ML Model (%.1f%%)", e.vocab.Accuracy()))
	}
	if llmUsed {
		sources = append(sources, "AI Enhancement")
	}
	if len(sources) == 0 {
		return "HealthAI"
	}
	return strings.Join(sources, " + ")
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
