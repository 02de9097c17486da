package extract

import (
	"reflect"
	"testing"

	"github.com/arkodeep/healthtriage/internal/vocab"
)

func testMatcher(t *testing.T) *Matcher {
	t.Helper()
	v, err := vocab.New(
		[]string{"itching", "skin rash", "headache", "nausea", "diarrhoea", "chest pain"},
		[]string{"itching", "skin_rash", "headache", "nausea", "diarrhoea", "chest_pain"},
		[]string{"Fungal infection", "Migraine", "Gastroenteritis"},
	)
	if err != nil {
		t.Fatal(err)
	}
	return NewMatcher(v, DefaultConfig())
}

func TestExtract_ExactSubstrings(t *testing.T) {
	m := testMatcher(t)
	got := m.Extract("I have a severe headache and nausea")
	want := []string{"headache", "nausea"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract = %v, want %v", got, want)
	}
}

func TestExtract_CaseInsensitiveAndDeduplicated(t *testing.T) {
	m := testMatcher(t)
	got := m.Extract("HEADACHE, headache, and more headache")
	if len(got) != 1 || got[0] != "headache" {
		t.Errorf("Extract = %v, want [headache] exactly once", got)
	}
}

func TestExtract_FuzzyMisspelling(t *testing.T) {
	// "diarhoea" is one edit from "diarrhoea": similarity 8/9 ≈ 0.89 ≥ 0.70.
	m := testMatcher(t)
	got := m.Extract("I've had diarhoea since lunch")
	found := false
	for _, s := range got {
		if s == "diarrhoea" {
			found = true
		}
	}
	if !found {
		t.Errorf("Extract = %v, want diarrhoea via fuzzy pass", got)
	}
}

func TestExtract_FuzzyBelowCutoffIsEmpty(t *testing.T) {
	// With this vocabulary no window of "my hed hurts" reaches 0.70
	// similarity against any symptom, so the result is empty.
	m := testMatcher(t)
	if got := m.Extract("my hed hurts"); len(got) != 0 {
		t.Errorf("Extract = %v, want empty", got)
	}
}

func TestExtract_MultiWordWindow(t *testing.T) {
	m := testMatcher(t)
	got := m.Extract("crushing chest pains since morning")
	found := false
	for _, s := range got {
		if s == "chest pain" {
			found = true
		}
	}
	if !found {
		t.Errorf("Extract = %v, want chest pain via 2-token window", got)
	}
}

func TestExtract_EmptyInputs(t *testing.T) {
	m := testMatcher(t)
	if got := m.Extract(""); got != nil {
		t.Errorf("Extract(\"\") = %v, want nil", got)
	}

	empty := NewMatcher(vocab.Empty(), DefaultConfig())
	if got := empty.Extract("headache and nausea"); got != nil {
		t.Errorf("empty vocabulary Extract = %v, want nil", got)
	}
}

func TestExtract_ShortTextWindowBounds(t *testing.T) {
	// One- and two-word texts must not panic building 3-token windows.
	m := testMatcher(t)
	m.Extract("headache")
	m.Extract("bad headache")
}

func TestTokenWindows(t *testing.T) {
	got := tokenWindows("a b c")
	want := []string{"a", "b", "c", "a b", "b c", "a b c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tokenWindows = %v, want %v", got, want)
	}
}

func TestSimilarity(t *testing.T) {
	cases := []struct {
		a, b string
		want float64
	}{
		{"headache", "headache", 1.0},
		{"", "headache", 0.0},
		{"diarhoea", "diarrhoea", 1.0 - 1.0/9.0},
		{"abc", "xyz", 0.0},
	}
	for _, c := range cases {
		if got := Similarity(c.a, c.b); got < c.want-1e-9 || got > c.want+1e-9 {
			t.Errorf("similarity(%q, %q) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestValidateComplaint(t *testing.T) {
	m := testMatcher(t)
	cases := []struct {
		text string
		ok   bool
	}{
		{"I have a persistent cough and fever", true},
		{"my stomach hurts after meals", true},
		{"terrible headaches every evening", true}, // suffix stem
		{"hi", false},
		{"hello", false},
		{"what is the capital of France", false},
	}
	for _, c := range cases {
		ok, msg := m.ValidateComplaint(c.text)
		if ok != c.ok {
			t.Errorf("ValidateComplaint(%q) = %v (%q), want %v", c.text, ok, msg, c.ok)
		}
		if !ok && msg == "" {
			t.Errorf("ValidateComplaint(%q) rejected without a message", c.text)
		}
	}
}
