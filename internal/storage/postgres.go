// Package storage persists completed conversion and generation records. The
// engine itself never reads them back; persistence exists for the account
// surface ("my conversions", "my automations").
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/autoflow/autoflow/pkg/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ConversionRecord is one completed blueprint conversion.
type ConversionRecord struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	SourcePlatform  domain.Platform `json:"source_platform"`
	TargetPlatform  domain.Platform `json:"target_platform"`
	OriginalJSON    string          `json:"original_json"`
	ConvertedJSON   string          `json:"converted_json"`
	ConversionNotes []string        `json:"conversion_notes"`
	CreatedAt       time.Time       `json:"created_at"`
}

// AutomationRecord is one completed automation generation.
type AutomationRecord struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	TaskDescription string          `json:"task_description"`
	Platform        domain.Platform `json:"platform"`
	BlueprintJSON   string          `json:"blueprint_json"`
	IsTemplate      bool            `json:"is_template"`
	CreatedAt       time.Time       `json:"created_at"`
}

// RecordStore saves completed results. A nil store disables persistence.
type RecordStore interface {
	SaveConversion(ctx context.Context, record ConversionRecord) error
	ListConversions(ctx context.Context, userID string, limit int) ([]ConversionRecord, error)
	SaveAutomation(ctx context.Context, record AutomationRecord) error
	ListAutomations(ctx context.Context, userID string, limit int) ([]AutomationRecord, error)
}

// PostgresStore is the pgx-backed RecordStore.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}

	store := &PostgresStore{pool: pool}
	if err := store.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return store, nil
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS blueprint_conversions (
	id               TEXT PRIMARY KEY,
	user_id          TEXT NOT NULL,
	source_platform  TEXT NOT NULL,
	target_platform  TEXT NOT NULL,
	original_json    TEXT NOT NULL,
	converted_json   TEXT NOT NULL,
	conversion_notes TEXT[] NOT NULL DEFAULT '{}',
	created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS automations (
	id               TEXT PRIMARY KEY,
	user_id          TEXT NOT NULL,
	task_description TEXT NOT NULL,
	platform         TEXT NOT NULL,
	blueprint_json   TEXT NOT NULL,
	is_template      BOOLEAN NOT NULL DEFAULT FALSE,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_conversions_user ON blueprint_conversions (user_id, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_automations_user ON automations (user_id, created_at DESC);`

	if _, err := s.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) SaveConversion(ctx context.Context, record ConversionRecord) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO blueprint_conversions
			(id, user_id, source_platform, target_platform, original_json, converted_json, conversion_notes, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		record.ID, record.UserID, record.SourcePlatform, record.TargetPlatform,
		record.OriginalJSON, record.ConvertedJSON, record.ConversionNotes, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save conversion record: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListConversions(ctx context.Context, userID string, limit int) ([]ConversionRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, user_id, source_platform, target_platform, original_json, converted_json, conversion_notes, created_at
		 FROM blueprint_conversions
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversion records: %w", err)
	}
	defer rows.Close()

	records := []ConversionRecord{}
	for rows.Next() {
		var r ConversionRecord
		if err := rows.Scan(&r.ID, &r.UserID, &r.SourcePlatform, &r.TargetPlatform,
			&r.OriginalJSON, &r.ConvertedJSON, &r.ConversionNotes, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan conversion record: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *PostgresStore) SaveAutomation(ctx context.Context, record AutomationRecord) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO automations
			(id, user_id, task_description, platform, blueprint_json, is_template, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		record.ID, record.UserID, record.TaskDescription, record.Platform,
		record.BlueprintJSON, record.IsTemplate, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save automation record: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListAutomations(ctx context.Context, userID string, limit int) ([]AutomationRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, user_id, task_description, platform, blueprint_json, is_template, created_at
		 FROM automations
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list automation records: %w", err)
	}
	defer rows.Close()

	records := []AutomationRecord{}
	for rows.Next() {
		var r AutomationRecord
		if err := rows.Scan(&r.ID, &r.UserID, &r.TaskDescription, &r.Platform,
			&r.BlueprintJSON, &r.IsTemplate, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan automation record: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
