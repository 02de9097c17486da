package engine

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/arkodeep/healthtriage/internal/classify"
	"github.com/arkodeep/healthtriage/internal/enhance"
	"github.com/arkodeep/healthtriage/internal/llm"
	"github.com/arkodeep/healthtriage/internal/store"
	"github.com/arkodeep/healthtriage/internal/vocab"
)

func testVocabulary(t *testing.T) *vocab.Vocabulary {
	t.Helper()
	v, err := vocab.New(
		[]string{"itching", "skin rash", "headache", "nausea", "vomiting", "high fever"},
		[]string{"itching", "skin_rash", "headache", "nausea", "vomiting", "high_fever"},
		[]string{"Fungal infection", "Migraine", "Gastroenteritis"},
	)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

// testArtifact mirrors the hand-built model used by the classify tests:
// {itching, skin rash} → Fungal infection, {headache, nausea} → Migraine.
func testArtifact() *classify.Artifact {
	leaf := func(dist ...float64) classify.TreeNode {
		return classify.TreeNode{Feature: -1, Distribution: dist}
	}
	split := func(feature, left, right int) classify.TreeNode {
		return classify.TreeNode{Feature: feature, Threshold: 0.5, Left: left, Right: right}
	}
	forest := &classify.Forest{Trees: []classify.Tree{
		{Nodes: []classify.TreeNode{
			split(0, 1, 2),
			leaf(0.1, 0.45, 0.45),
			split(1, 3, 4),
			leaf(0.5, 0.25, 0.25),
			leaf(1, 0, 0),
		}},
		{Nodes: []classify.TreeNode{
			split(2, 1, 2),
			split(3, 3, 4),
			leaf(0.05, 0.9, 0.05),
			leaf(0.6, 0.2, 0.2),
			leaf(0.1, 0.2, 0.7),
		}},
	}}
	proto := func(sv []float64) classify.SVMClass {
		return classify.SVMClass{
			SupportVectors: [][]float64{sv},
			Coefficients:   []float64{1},
			PlattA:         -6,
			PlattB:         3,
		}
	}
	svm := &classify.SVM{Gamma: 1, Classes: []classify.SVMClass{
		proto([]float64{1, 1, 0, 0, 0, 0}),
		proto([]float64{0, 0, 1, 1, 0, 0}),
		proto([]float64{0, 0, 0, 1, 1, 0}),
	}}
	return &classify.Artifact{
		FeatureCount: 6,
		Labels:       []string{"Fungal infection", "Migraine", "Gastroenteritis"},
		Forest:       forest,
		SVM:          svm,
	}
}

func newTestEngine(t *testing.T, agents *enhance.Agents, recorder store.Recorder) *Engine {
	t.Helper()
	return New(Options{
		Vocabulary:    testVocabulary(t),
		Artifact:      testArtifact(),
		Agents:        agents,
		Recorder:      recorder,
		AnalyticsName: "memory",
	})
}

func TestStatus(t *testing.T) {
	e := newTestEngine(t, nil, nil)
	st := e.Status()

	if !st.ModelLoaded {
		t.Error("expected model loaded")
	}
	if st.Symptoms != 6 || st.Diseases != 3 {
		t.Errorf("counts = %d symptoms / %d diseases", st.Symptoms, st.Diseases)
	}
	if st.LLMEnabled {
		t.Error("LLM should be disabled without a provider")
	}
	if st.Analytics != "memory" {
		t.Errorf("analytics = %q", st.Analytics)
	}
}

func TestStatus_Degraded(t *testing.T) {
	e := New(Options{})
	st := e.Status()

	if st.ModelLoaded {
		t.Error("no artifact should mean no model")
	}
	if st.Symptoms != 0 || st.Diseases != 0 {
		t.Errorf("degraded counts = %+v", st)
	}
}

func TestAnalyze_LocalPipeline(t *testing.T) {
	recorder := store.NewMemoryRecorder()
	e := newTestEngine(t, nil, recorder)

	out := e.Analyze(context.Background(), Intake{
		Complaint: "I have itching and a skin rash on my arm",
		Age:       "25-34",
	})

	if out.LLMUsed {
		t.Error("no provider, LLMUsed must be false")
	}
	if out.Diagnosis.Err != "" {
		t.Fatalf("unexpected diagnosis error: %s", out.Diagnosis.Err)
	}
	if out.Diagnosis.TopConditions[0].Name != "Fungal infection" {
		t.Errorf("top condition = %q", out.Diagnosis.TopConditions[0].Name)
	}
	if out.Recommendations.Recommendations[0].Condition != "Fungal infection" {
		t.Errorf("recommendation condition = %q", out.Recommendations.Recommendations[0].Condition)
	}
	if !strings.Contains(out.Report, "## Health Assessment Report") {
		t.Error("report missing header")
	}
	if !strings.Contains(out.PoweredBy, "ML Model") {
		t.Errorf("powered_by = %q", out.PoweredBy)
	}

	stats, err := recorder.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalCheckups != 1 {
		t.Errorf("checkups recorded = %d, want 1", stats.TotalCheckups)
	}
	if stats.TopDiseases[0].Disease != "Fungal infection" {
		t.Errorf("recorded disease = %q", stats.TopDiseases[0].Disease)
	}
}

func TestAnalyze_CollectsFromAllSources(t *testing.T) {
	e := newTestEngine(t, nil, nil)

	out := e.Analyze(context.Background(), Intake{
		Complaint:        "my headache won't stop",
		SelectedSymptoms: []string{"Nausea"},
		OtherSymptoms:    "also vomiting a lot",
		BodyAreas:        []string{"Head"},
	})

	got := out.Diagnosis.ExtractedSymptoms
	want := map[string]bool{"headache": false, "nausea": false, "vomiting": false}
	for _, s := range got {
		key := strings.ToLower(s)
		if _, ok := want[key]; ok {
			want[key] = true
		}
	}
	for s, found := range want {
		if !found {
			t.Errorf("symptom %q not collected, got %v", s, got)
		}
	}
	// The Head body area re-suggests headache; it must not duplicate.
	seen := map[string]int{}
	for _, s := range got {
		seen[strings.ToLower(s)]++
	}
	if seen["headache"] != 1 {
		t.Errorf("headache appears %d times", seen["headache"])
	}
}

func TestAnalyze_EmptyIntakeDegrades(t *testing.T) {
	e := newTestEngine(t, nil, nil)

	out := e.Analyze(context.Background(), Intake{})
	if out.Diagnosis.Err == "" {
		t.Error("expected error-flagged diagnosis for empty intake")
	}
	if len(out.Diagnosis.TopConditions) != 0 {
		t.Errorf("expected no conditions, got %v", out.Diagnosis.TopConditions)
	}
	if out.Report == "" {
		t.Error("report should still render")
	}
}

func TestAnalyze_WithEnhancement(t *testing.T) {
	refined := `{"extracted_symptoms":["itching","skin rash"],"top_conditions":[{"name":"Fungal infection","confidence":"High","confidence_score":91.0,"reasoning":"Refined"}]}`
	recs := `{"recommendations":[{"condition":"Fungal infection","medicines":["Clotrimazole cream (OTC)"],"home_remedies":["Keep area dry"],"dietary_advice":["Less sugar"],"lifestyle_changes":["Cotton clothes"],"specialist":"Dermatologist"}]}`
	summary := `"## Health Assessment Report\n\nRefined summary."`

	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(refined)},
		llm.MockResponse{Content: json.RawMessage(recs)},
		llm.MockResponse{Content: json.RawMessage(summary)},
	)
	agents := enhance.New(mock, []string{"Fungal infection", "Migraine", "Gastroenteritis"})
	e := newTestEngine(t, agents, nil)

	out := e.Analyze(context.Background(), Intake{Complaint: "itching and skin rash"})

	if !out.LLMUsed {
		t.Fatal("expected LLMUsed")
	}
	if out.Diagnosis.TopConditions[0].ConfidenceScore != 91.0 {
		t.Errorf("refined score = %.1f", out.Diagnosis.TopConditions[0].ConfidenceScore)
	}
	if !strings.Contains(out.Report, "Refined summary.") {
		t.Errorf("report = %q", out.Report)
	}
	if !strings.Contains(out.PoweredBy, "AI Enhancement") {
		t.Errorf("powered_by = %q", out.PoweredBy)
	}
	if mock.CallCount() != 3 {
		t.Errorf("llm calls = %d, want 3", mock.CallCount())
	}
}

func TestValidateComplaintPassthrough(t *testing.T) {
	e := newTestEngine(t, nil, nil)

	if ok, _ := e.ValidateComplaint("I have a terrible headache"); !ok {
		t.Error("health complaint rejected")
	}
	if ok, msg := e.ValidateComplaint("how do I file my taxes"); ok || msg == "" {
		t.Error("non-health complaint accepted")
	}
}

func TestPlanPassthrough(t *testing.T) {
	e := newTestEngine(t, nil, nil)
	plan := e.Plan("severe headache and nausea")
	if len(plan) != 7 {
		t.Fatalf("plan steps = %d, want 7", len(plan))
	}
	if plan[0].ID != "duration" {
		t.Errorf("first step = %q", plan[0].ID)
	}
}
