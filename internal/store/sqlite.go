package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists checkups in a local SQLite file.
type SQLiteRecorder struct {
	db *sql.DB
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS health_checkups (
	id TEXT PRIMARY KEY,
	created_at TIMESTAMP NOT NULL,
	age_range TEXT,
	gender TEXT,
	complaint TEXT,
	severity TEXT,
	duration TEXT,
	symptoms TEXT,
	predicted_disease TEXT,
	confidence REAL,
	body_areas TEXT,
	preexisting TEXT,
	lifestyle TEXT
)`

// OpenSQLite opens (or creates) the SQLite database at dsn, applies
// recommended pragmas, and ensures the checkup table exists.
func OpenSQLite(dsn string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLiteRecorder{db: db}, nil
}

func (s *SQLiteRecorder) Record(ctx context.Context, r Record) error {
	symptoms, _ := json.Marshal(r.Symptoms)
	bodyAreas, _ := json.Marshal(r.BodyAreas)
	preexisting, _ := json.Marshal(r.Preexisting)
	lifestyle, _ := json.Marshal(r.Lifestyle)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO health_checkups (id, created_at, age_range, gender, complaint,
			severity, duration, symptoms, predicted_disease, confidence,
			body_areas, preexisting, lifestyle)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.CreatedAt, r.AgeRange, r.Gender, r.Complaint,
		r.Severity, r.Duration, string(symptoms), r.PredictedDisease, r.Confidence,
		string(bodyAreas), string(preexisting), string(lifestyle))
	if err != nil {
		return fmt.Errorf("insert checkup: %w", err)
	}
	return nil
}

func (s *SQLiteRecorder) Stats(ctx context.Context) (Stats, error) {
	stats := Stats{Source: "sqlite", TopDiseases: []DiseaseCount{}, ByAge: []AgeCount{}}

	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM health_checkups`).Scan(&stats.TotalCheckups); err != nil {
		return Stats{}, fmt.Errorf("count checkups: %w", err)
	}
	if stats.TotalCheckups == 0 {
		return emptyStats("sqlite"), nil
	}

	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(DISTINCT predicted_disease) FROM health_checkups
		 WHERE predicted_disease != ''`).Scan(&stats.UniqueDiseases); err != nil {
		return Stats{}, fmt.Errorf("count diseases: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT predicted_disease, COUNT(*) AS cnt FROM health_checkups
		WHERE predicted_disease != ''
		GROUP BY predicted_disease ORDER BY cnt DESC, predicted_disease ASC
		LIMIT ?`, topDiseaseLimit)
	if err != nil {
		return Stats{}, fmt.Errorf("query top diseases: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var dc DiseaseCount
		if err := rows.Scan(&dc.Disease, &dc.Count); err != nil {
			return Stats{}, fmt.Errorf("scan disease row: %w", err)
		}
		stats.TopDiseases = append(stats.TopDiseases, dc)
	}
	if err := rows.Err(); err != nil {
		return Stats{}, err
	}

	ageRows, err := s.db.QueryContext(ctx, `
		SELECT age_range, COUNT(*) AS cnt FROM health_checkups
		WHERE age_range != '' AND age_range != 'N/A'
		GROUP BY age_range ORDER BY cnt DESC, age_range ASC`)
	if err != nil {
		return Stats{}, fmt.Errorf("query by age: %w", err)
	}
	defer ageRows.Close()
	for ageRows.Next() {
		var ac AgeCount
		if err := ageRows.Scan(&ac.Age, &ac.Count); err != nil {
			return Stats{}, fmt.Errorf("scan age row: %w", err)
		}
		stats.ByAge = append(stats.ByAge, ac)
	}
	if err := ageRows.Err(); err != nil {
		return Stats{}, err
	}

	return stats, nil
}

func (s *SQLiteRecorder) Close() error {
	return s.db.Close()
}

// applyPragmas configures SQLite for reliable concurrent access.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the analytics database file path in priority order:
// 1. HEALTHTRIAGE_DB environment variable
// 2. $XDG_DATA_HOME/healthtriage/healthtriage.db
// 3. ~/.local/share/healthtriage/healthtriage.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("HEALTHTRIAGE_DB"); p != "" {
		return p, ensureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "healthtriage", "healthtriage.db")
	return p, ensureDir(p)
}

// ensureDir creates the parent directory of path if it doesn't exist.
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
