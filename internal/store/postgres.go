package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRecorder persists checkups in Postgres for shared deployments.
type PostgresRecorder struct {
	pool *pgxpool.Pool
}

const postgresSchema = `
CREATE TABLE IF NOT EXISTS health_checkups (
	id UUID PRIMARY KEY,
	created_at TIMESTAMPTZ NOT NULL,
	age_range TEXT,
	gender TEXT,
	complaint TEXT,
	severity TEXT,
	duration TEXT,
	symptoms JSONB,
	predicted_disease TEXT,
	confidence DOUBLE PRECISION,
	body_areas JSONB,
	preexisting JSONB,
	lifestyle JSONB
)`

// OpenPostgres connects to the database at dsn and ensures the checkup
// table exists.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresRecorder, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &PostgresRecorder{pool: pool}, nil
}

func (p *PostgresRecorder) Record(ctx context.Context, r Record) error {
	symptoms, _ := json.Marshal(r.Symptoms)
	bodyAreas, _ := json.Marshal(r.BodyAreas)
	preexisting, _ := json.Marshal(r.Preexisting)
	lifestyle, _ := json.Marshal(r.Lifestyle)

	_, err := p.pool.Exec(ctx, `
		INSERT INTO health_checkups (id, created_at, age_range, gender, complaint,
			severity, duration, symptoms, predicted_disease, confidence,
			body_areas, preexisting, lifestyle)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		r.ID, r.CreatedAt, r.AgeRange, r.Gender, r.Complaint,
		r.Severity, r.Duration, symptoms, r.PredictedDisease, r.Confidence,
		bodyAreas, preexisting, lifestyle)
	if err != nil {
		return fmt.Errorf("insert checkup: %w", err)
	}
	return nil
}

func (p *PostgresRecorder) Stats(ctx context.Context) (Stats, error) {
	stats := Stats{Source: "postgres", TopDiseases: []DiseaseCount{}, ByAge: []AgeCount{}}

	if err := p.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM health_checkups`).Scan(&stats.TotalCheckups); err != nil {
		return Stats{}, fmt.Errorf("count checkups: %w", err)
	}
	if stats.TotalCheckups == 0 {
		return emptyStats("postgres"), nil
	}

	if err := p.pool.QueryRow(ctx,
		`SELECT COUNT(DISTINCT predicted_disease) FROM health_checkups
		 WHERE predicted_disease <> ''`).Scan(&stats.UniqueDiseases); err != nil {
		return Stats{}, fmt.Errorf("count diseases: %w", err)
	}

	rows, err := p.pool.Query(ctx, `
		SELECT predicted_disease, COUNT(*) AS cnt FROM health_checkups
		WHERE predicted_disease <> ''
		GROUP BY predicted_disease ORDER BY cnt DESC, predicted_disease ASC
		LIMIT $1`, topDiseaseLimit)
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

	ageRows, err := p.pool.Query(ctx, `
		SELECT age_range, COUNT(*) AS cnt FROM health_checkups
		WHERE age_range <> '' AND age_range <> 'N/A'
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

func (p *PostgresRecorder) Close() error {
	p.pool.Close()
	return nil
}
