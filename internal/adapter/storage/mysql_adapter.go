package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const createClientStorageTable = `
CREATE TABLE IF NOT EXISTS client_storage (
	storage_key   VARCHAR(64)  NOT NULL PRIMARY KEY,
	storage_value TEXT         NOT NULL,
	expires_at    DATETIME(3)  NULL,
	updated_at    DATETIME(3)  NOT NULL
)`

// MySQLAdapter keeps client storage in a MySQL table. Expired rows are
// ignored on read and removed by DeleteExpired.
type MySQLAdapter struct {
	db  *sql.DB
	now func() time.Time
}

func NewMySQLAdapter(db *sql.DB) *MySQLAdapter {
	return &MySQLAdapter{db: db, now: time.Now}
}

func (m *MySQLAdapter) EnsureSchema(ctx context.Context) error {
	if _, err := m.db.ExecContext(ctx, createClientStorageTable); err != nil {
		return fmt.Errorf("create client_storage: %w", err)
	}
	return nil
}

func (m *MySQLAdapter) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	now := m.now().UTC()

	var expiresAt sql.NullTime
	if ttl > 0 {
		expiresAt = sql.NullTime{Time: now.Add(ttl), Valid: true}
	}

	_, err := m.db.ExecContext(ctx, `
		INSERT INTO client_storage (storage_key, storage_value, expires_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE storage_value = VALUES(storage_value),
			expires_at = VALUES(expires_at), updated_at = VALUES(updated_at)`,
		key, value, expiresAt, now,
	)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

func (m *MySQLAdapter) Get(ctx context.Context, key string) (string, bool, error) {
	var (
		value     string
		expiresAt sql.NullTime
	)
	err := m.db.QueryRowContext(ctx, `
		SELECT storage_value, expires_at
		FROM client_storage WHERE storage_key = ?`, key,
	).Scan(&value, &expiresAt)

	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query %s: %w", key, err)
	}

	if expiresAt.Valid && !m.now().UTC().Before(expiresAt.Time) {
		return "", false, nil
	}
	return value, true, nil
}

// DeleteExpired removes expired rows and returns how many were removed.
func (m *MySQLAdapter) DeleteExpired(ctx context.Context) (int64, error) {
	result, err := m.db.ExecContext(ctx, `
		DELETE FROM client_storage
		WHERE expires_at IS NOT NULL AND expires_at <= ?`, m.now().UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("delete expired: %w", err)
	}

	rows, _ := result.RowsAffected()
	return rows, nil
}
