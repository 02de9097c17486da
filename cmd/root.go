// Package cmd implements the healthtriage CLI.
package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/arkodeep/healthtriage/internal/classify"
	"github.com/arkodeep/healthtriage/internal/config"
	"github.com/arkodeep/healthtriage/internal/engine"
	"github.com/arkodeep/healthtriage/internal/enhance"
	"github.com/arkodeep/healthtriage/internal/extract"
	"github.com/arkodeep/healthtriage/internal/llm"
	"github.com/arkodeep/healthtriage/internal/steps"
	"github.com/arkodeep/healthtriage/internal/store"
	"github.com/arkodeep/healthtriage/internal/vocab"
)

var rootCmd = &cobra.Command{
	Use:   "healthtriage",
	Short: "Symptom triage engine",
	Long: "HealthTriage — symptom extraction, questionnaire planning, and ensemble\n" +
		"disease classification over a pre-trained model artifact, with optional\n" +
		"LLM-enhanced reports.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().String("metadata", "", "Path to model metadata JSON (overrides config)")
	rootCmd.PersistentFlags().String("artifact", "", "Path to model artifact JSON (overrides config)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(diagnoseCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if p, _ := cmd.Flags().GetString("metadata"); p != "" {
		cfg.Model.MetadataPath = p
	}
	if p, _ := cmd.Flags().GetString("artifact"); p != "" {
		cfg.Model.ArtifactPath = p
	}
	return cfg, nil
}

// buildEngine wires the full pipeline from configuration. Missing model
// files degrade the engine rather than failing startup; the returned
// cleanup closes the analytics recorder.
func buildEngine(ctx context.Context, cfg config.Config, logger *slog.Logger) (*engine.Engine, func(), error) {
	v, err := vocab.Load(cfg.Model.MetadataPath)
	if err != nil {
		logger.Warn("model metadata unavailable, running degraded",
			slog.String("path", cfg.Model.MetadataPath), slog.String("error", err.Error()))
		v = vocab.Empty()
	}

	artifact, err := classify.LoadArtifact(cfg.Model.ArtifactPath)
	if err != nil {
		logger.Warn("model artifact unavailable, diagnosis disabled",
			slog.String("path", cfg.Model.ArtifactPath), slog.String("error", err.Error()))
		artifact = nil
	}

	recorder, backend, err := openRecorder(ctx, cfg.Analytics, logger)
	if err != nil {
		return nil, nil, err
	}

	agents := enhance.New(buildLLM(ctx, logger), v.Diseases())

	e := engine.New(engine.Options{
		Vocabulary: v,
		Artifact:   artifact,
		ExtractConfig: extract.Config{
			FuzzyCutoff: cfg.Triage.FuzzyCutoff,
		},
		EnsembleConfig: classify.Config{
			ForestWeight: cfg.Triage.ForestWeight,
			TopN:         cfg.Triage.TopConditions,
			MinScore:     cfg.Triage.MinScore,
		},
		PlannerConfig: steps.Config{
			CategoryCutoff: cfg.Triage.CategoryCutoff,
			TopCategories:  cfg.Triage.TopCategories,
		},
		Agents:        agents,
		Recorder:      recorder,
		AnalyticsName: backend,
		Logger:        logger,
	})

	cleanup := func() {
		if err := recorder.Close(); err != nil {
			logger.Warn("closing analytics recorder", slog.String("error", err.Error()))
		}
	}
	return e, cleanup, nil
}

func openRecorder(ctx context.Context, cfg config.AnalyticsConfig, logger *slog.Logger) (store.Recorder, string, error) {
	switch cfg.Backend {
	case "sqlite":
		path := cfg.SQLitePath
		if path == "" {
			var err error
			path, err = store.DefaultDBPath()
			if err != nil {
				return nil, "", err
			}
		}
		rec, err := store.OpenSQLite(path)
		if err != nil {
			return nil, "", err
		}
		return rec, "sqlite", nil
	case "postgres":
		rec, err := store.OpenPostgres(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, "", err
		}
		return rec, "postgres", nil
	default:
		return store.NewMemoryRecorder(), "memory", nil
	}
}

// buildLLM returns a provider when one is configured, nil otherwise. An
// explicit HEALTHTRIAGE_LLM_PROVIDER wins; failing that, standard API key
// env vars are probed.
func buildLLM(ctx context.Context, logger *slog.Logger) llm.Provider {
	var cfg llm.Config
	if os.Getenv("HEALTHTRIAGE_LLM_PROVIDER") != "" {
		cfg = llm.ConfigFromEnv()
	} else {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return nil
		}
		cfg = discovered
	}

	if err := cfg.Validate(); err != nil {
		logger.Warn("LLM config invalid, enhancement disabled", slog.String("error", err.Error()))
		return nil
	}
	provider, err := llm.NewProvider(ctx, cfg, logger)
	if err != nil {
		logger.Warn("LLM provider init failed, enhancement disabled", slog.String("error", err.Error()))
		return nil
	}
	logger.Info("LLM enhancement enabled", slog.String("model", provider.ModelID()))
	return provider
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}
