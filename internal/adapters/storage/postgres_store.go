package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/stoik/link-guard/internal/domain"
)

// PostgresStore implements ports.Storage for PostgreSQL
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a new PostgreSQL storage instance
func NewPostgresStore(connStr string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Warnings are written one row per lookalike link; a small pool is plenty
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	return &PostgresStore{db: db}, nil
}

// Close closes the database connection
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// InitSchema creates database tables if they don't exist
func (s *PostgresStore) InitSchema() error {
	schema := `
	-- ============================================================================
	-- WARNINGS TABLE
	-- ============================================================================
	-- One row per lookalike link reported to a channel, whether or not the
	-- warning message reached the channel. Audit only: nothing reads this table
	-- to suppress later warnings.
	--
	-- Message, channel, guild and author are the chat platform's snowflake IDs,
	-- kept as text since they exceed BIGINT range on some platforms.
	CREATE TABLE IF NOT EXISTS warnings (
		id UUID PRIMARY KEY,
		message_id VARCHAR(32) NOT NULL,
		channel_id VARCHAR(32) NOT NULL,
		guild_id VARCHAR(32),
		author_id VARCHAR(32) NOT NULL,
		link TEXT NOT NULL,
		host TEXT NOT NULL,
		lookalike VARCHAR(253) NOT NULL,
		distance SMALLINT NOT NULL CHECK (distance > 0),
		delivered BOOLEAN NOT NULL DEFAULT FALSE,
		delivery_error TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	-- Backs ListRecentWarnings
	CREATE INDEX IF NOT EXISTS idx_warnings_created_at ON warnings(created_at DESC);
	-- Investigation: "which lookalikes of discord.com were posted this week"
	CREATE INDEX IF NOT EXISTS idx_warnings_lookalike ON warnings(lookalike, created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// RecordWarning inserts a warning, assigning an ID and timestamp when missing
func (s *PostgresStore) RecordWarning(ctx context.Context, warning *domain.Warning) error {
	if warning.ID == uuid.Nil {
		warning.ID = uuid.New()
	}
	if warning.CreatedAt.IsZero() {
		warning.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO warnings (
			id, message_id, channel_id, guild_id, author_id,
			link, host, lookalike, distance,
			delivered, delivery_error, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := s.db.ExecContext(ctx, query,
		warning.ID, warning.MessageID, warning.ChannelID, nullString(warning.GuildID), warning.AuthorID,
		warning.Link, warning.Host, warning.Lookalike, warning.Distance,
		warning.Delivered, nullString(warning.DeliveryError), warning.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert warning: %w", err)
	}
	return nil
}

// ListRecentWarnings retrieves the most recent warnings
func (s *PostgresStore) ListRecentWarnings(ctx context.Context, limit int) ([]domain.Warning, error) {
	if limit <= 0 {
		return []domain.Warning{}, nil
	}

	query := `
		SELECT id, message_id, channel_id, guild_id, author_id,
		       link, host, lookalike, distance,
		       delivered, delivery_error, created_at
		FROM warnings
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	warnings := make([]domain.Warning, 0)
	for rows.Next() {
		var w domain.Warning
		var guildID, deliveryError sql.NullString

		err := rows.Scan(
			&w.ID, &w.MessageID, &w.ChannelID, &guildID, &w.AuthorID,
			&w.Link, &w.Host, &w.Lookalike, &w.Distance,
			&w.Delivered, &deliveryError, &w.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		w.GuildID = guildID.String
		w.DeliveryError = deliveryError.String
		warnings = append(warnings, w)
	}

	return warnings, rows.Err()
}

// nullString maps empty strings to SQL NULL
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
