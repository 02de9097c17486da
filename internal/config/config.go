// Package config loads application configuration from an optional YAML file
// with environment variable overrides. Precedence: flags > env > file >
// defaults. A missing file is not an error; the defaults stand.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/arkodeep/healthtriage/internal/classify"
	"github.com/arkodeep/healthtriage/internal/extract"
	"github.com/arkodeep/healthtriage/internal/steps"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Model     ModelConfig     `yaml:"model"`
	Analytics AnalyticsConfig `yaml:"analytics"`
	Triage    TriageConfig    `yaml:"triage"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// ModelConfig points at the offline training job's exported artifacts.
type ModelConfig struct {
	MetadataPath string `yaml:"metadata_path"`
	ArtifactPath string `yaml:"artifact_path"`
}

// AnalyticsConfig selects the checkup recorder backend.
// Backend is one of "memory", "sqlite", "postgres".
type AnalyticsConfig struct {
	Backend     string `yaml:"backend"`
	SQLitePath  string `yaml:"sqlite_path"`
	PostgresDSN string `yaml:"postgres_dsn"`
}

// TriageConfig exposes the tunable constants of the triage pipeline.
type TriageConfig struct {
	FuzzyCutoff    float64 `yaml:"fuzzy_cutoff"`
	CategoryCutoff float64 `yaml:"category_cutoff"`
	TopCategories  int     `yaml:"top_categories"`
	ForestWeight   float64 `yaml:"forest_weight"`
	TopConditions  int     `yaml:"top_conditions"`
	MinScore       float64 `yaml:"min_score"`
}

// Default returns the configuration used when nothing is specified.
func Default() Config {
	ec := classify.DefaultConfig()
	return Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8000,
			AllowedOrigins:  []string{"*"},
			ShutdownTimeout: 10 * time.Second,
		},
		Model: ModelConfig{
			MetadataPath: "models/metadata.json",
			ArtifactPath: "models/artifact.json",
		},
		Analytics: AnalyticsConfig{
			Backend: "memory",
		},
		Triage: TriageConfig{
			FuzzyCutoff:    extract.DefaultFuzzyCutoff,
			CategoryCutoff: steps.DefaultCategoryCutoff,
			TopCategories:  5,
			ForestWeight:   ec.ForestWeight,
			TopConditions:  ec.TopN,
			MinScore:       ec.MinScore,
		},
	}
}

// Load builds the configuration: defaults, then the YAML file at path (if
// path is non-empty or the file exists), then environment overrides. A .env
// file in the working directory is folded into the environment first.
func Load(path string) (Config, error) {
	// Missing .env is the common case; ignore it.
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.Server.Host, "HEALTHTRIAGE_HOST")
	setInt(&cfg.Server.Port, "HEALTHTRIAGE_PORT")
	setString(&cfg.Model.MetadataPath, "HEALTHTRIAGE_METADATA")
	setString(&cfg.Model.ArtifactPath, "HEALTHTRIAGE_ARTIFACT")
	setString(&cfg.Analytics.Backend, "HEALTHTRIAGE_ANALYTICS_BACKEND")
	setString(&cfg.Analytics.SQLitePath, "HEALTHTRIAGE_DB")
	setString(&cfg.Analytics.PostgresDSN, "HEALTHTRIAGE_POSTGRES_DSN")
	setFloat(&cfg.Triage.FuzzyCutoff, "HEALTHTRIAGE_FUZZY_CUTOFF")
	setFloat(&cfg.Triage.ForestWeight, "HEALTHTRIAGE_FOREST_WEIGHT")
}

func (c Config) validate() error {
	switch c.Analytics.Backend {
	case "memory", "sqlite", "postgres":
	default:
		return fmt.Errorf("unknown analytics backend: %q", c.Analytics.Backend)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Triage.FuzzyCutoff < 0 || c.Triage.FuzzyCutoff > 1 {
		return fmt.Errorf("fuzzy cutoff out of range: %g", c.Triage.FuzzyCutoff)
	}
	if c.Triage.ForestWeight < 0 || c.Triage.ForestWeight > 1 {
		return fmt.Errorf("forest weight out of range: %g", c.Triage.ForestWeight)
	}
	return nil
}

// Addr returns the host:port the server binds to.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setFloat(dst *float64, key string) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}
