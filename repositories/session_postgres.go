package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSessionStore keeps device sessions in the device_sessions table,
// one row per key.
type PostgresSessionStore struct {
	db *pgxpool.Pool
}

func NewPostgresSessionStore(db *pgxpool.Pool) *PostgresSessionStore {
	return &PostgresSessionStore{db: db}
}

func (s *PostgresSessionStore) Get(ctx context.Context, deviceID, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(ctx,
		`SELECT value FROM device_sessions WHERE device_id = $1 AND key = $2`,
		deviceID, key,
	).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read session: %w", err)
	}
	return value, true, nil
}

func (s *PostgresSessionStore) All(ctx context.Context, deviceID string) (map[string]string, error) {
	rows, err := s.db.Query(ctx,
		`SELECT key, value FROM device_sessions WHERE device_id = $1`,
		deviceID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	defer rows.Close()

	values := map[string]string{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	return values, nil
}

func (s *PostgresSessionStore) Set(ctx context.Context, deviceID, key, value string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO device_sessions (device_id, key, value, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (device_id, key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
		deviceID, key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

func (s *PostgresSessionStore) Remove(ctx context.Context, deviceID, key string) error {
	_, err := s.db.Exec(ctx,
		`DELETE FROM device_sessions WHERE device_id = $1 AND key = $2`,
		deviceID, key,
	)
	if err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

func (s *PostgresSessionStore) Clear(ctx context.Context, deviceID string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM device_sessions WHERE device_id = $1`, deviceID)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
