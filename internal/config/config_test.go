package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 8000 {
		t.Errorf("port = %d, want 8000", cfg.Server.Port)
	}
	if cfg.Analytics.Backend != "memory" {
		t.Errorf("backend = %q, want memory", cfg.Analytics.Backend)
	}
	if cfg.Triage.FuzzyCutoff != 0.70 {
		t.Errorf("fuzzy cutoff = %g, want 0.70", cfg.Triage.FuzzyCutoff)
	}
	if cfg.Triage.ForestWeight != 0.5 {
		t.Errorf("forest weight = %g, want 0.5", cfg.Triage.ForestWeight)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
server:
  port: 9090
analytics:
  backend: sqlite
  sqlite_path: /tmp/ht.db
triage:
  forest_weight: 0.7
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Analytics.Backend != "sqlite" {
		t.Errorf("backend = %q, want sqlite", cfg.Analytics.Backend)
	}
	if cfg.Triage.ForestWeight != 0.7 {
		t.Errorf("forest weight = %g, want 0.7", cfg.Triage.ForestWeight)
	}
	// Untouched keys keep their defaults.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("host = %q, want default", cfg.Server.Host)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 9090\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HEALTHTRIAGE_PORT", "7070")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("port = %d, want env override 7070", cfg.Server.Port)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for explicitly named missing file")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"bad backend", "analytics:\n  backend: snowflake\n"},
		{"bad port", "server:\n  port: -1\n"},
		{"bad cutoff", "triage:\n  fuzzy_cutoff: 1.5\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tc.body), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
