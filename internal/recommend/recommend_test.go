package recommend

import (
	"testing"

	"github.com/arkodeep/healthtriage/internal/classify"
)

func TestForDiagnosis_KnownConditions(t *testing.T) {
	result := classify.Result{
		TopConditions: []classify.Condition{
			{Name: "Migraine", Confidence: "High"},
			{Name: "GERD", Confidence: "Low"},
		},
	}

	set := ForDiagnosis(result)
	if len(set.Recommendations) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(set.Recommendations))
	}
	if set.Recommendations[0].Condition != "Migraine" {
		t.Errorf("first condition = %q, want Migraine", set.Recommendations[0].Condition)
	}
	if set.Recommendations[0].Specialist != "Neurologist" {
		t.Errorf("Migraine specialist = %q, want Neurologist", set.Recommendations[0].Specialist)
	}
	if set.Recommendations[1].Specialist != "Gastroenterologist" {
		t.Errorf("GERD specialist = %q, want Gastroenterologist", set.Recommendations[1].Specialist)
	}
}

func TestForDiagnosis_UnknownConditionFallsBack(t *testing.T) {
	result := classify.Result{
		TopConditions: []classify.Condition{{Name: "Mystery Illness"}},
	}

	set := ForDiagnosis(result)
	if len(set.Recommendations) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(set.Recommendations))
	}
	rec := set.Recommendations[0]
	if rec.Condition != "Mystery Illness" {
		t.Errorf("condition = %q, want Mystery Illness", rec.Condition)
	}
	if rec.Specialist != "General Physician" {
		t.Errorf("fallback specialist = %q, want General Physician", rec.Specialist)
	}
	if len(rec.Medicines) == 0 || rec.Medicines[0] != "Consult a doctor" {
		t.Errorf("fallback medicines = %v", rec.Medicines)
	}
}

func TestForDiagnosis_EmptyDiagnosis(t *testing.T) {
	set := ForDiagnosis(classify.Result{})
	if len(set.Recommendations) != 0 {
		t.Errorf("expected no recommendations, got %d", len(set.Recommendations))
	}
	if set.UrgentWarning != "" {
		t.Errorf("expected no urgent warning, got %q", set.UrgentWarning)
	}
}

func TestDatabase_EveryEntryComplete(t *testing.T) {
	for name, e := range database {
		if len(e.Medicines) == 0 {
			t.Errorf("%s: no medicines", name)
		}
		if len(e.HomeRemedies) == 0 {
			t.Errorf("%s: no home remedies", name)
		}
		if len(e.DietaryAdvice) == 0 {
			t.Errorf("%s: no dietary advice", name)
		}
		if len(e.LifestyleChanges) == 0 {
			t.Errorf("%s: no lifestyle changes", name)
		}
		if e.Specialist == "" {
			t.Errorf("%s: no specialist", name)
		}
	}
}
