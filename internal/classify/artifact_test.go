package classify

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func writeArtifact(t *testing.T, a *Artifact) string {
	t.Helper()
	raw, err := json.Marshal(a)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "model.json")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadArtifact_RoundTrip(t *testing.T) {
	path := writeArtifact(t, fixtureArtifact())
	a, err := LoadArtifact(path)
	if err != nil {
		t.Fatalf("LoadArtifact: %v", err)
	}
	if len(a.Labels) != 3 {
		t.Errorf("labels = %v", a.Labels)
	}
	if len(a.Forest.Trees) != 2 {
		t.Errorf("trees = %d, want 2", len(a.Forest.Trees))
	}
	if a.SVM.Gamma != 1 {
		t.Errorf("gamma = %v, want 1", a.SVM.Gamma)
	}
}

func TestLoadArtifact_MissingFile(t *testing.T) {
	if _, err := LoadArtifact(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing artifact")
	}
}

func TestLoadArtifact_RejectsMismatchedSVM(t *testing.T) {
	a := fixtureArtifact()
	a.SVM.Classes = a.SVM.Classes[:2] // 2 classes vs 3 labels
	if _, err := LoadArtifact(writeArtifact(t, a)); err == nil {
		t.Fatal("expected validation error for SVM/label mismatch")
	}
}

func TestLoadArtifact_RejectsBadTree(t *testing.T) {
	a := fixtureArtifact()
	a.Forest.Trees[0].Nodes[0].Left = 99
	if _, err := LoadArtifact(writeArtifact(t, a)); err == nil {
		t.Fatal("expected validation error for out-of-range child")
	}
}
