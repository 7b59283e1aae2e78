package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pressly/goose"

	"github.com/TonySyv/yshstob/internal/app/config"
)

// DBKV is the Postgres-backed KVStore. The pool is expected to be opened
// with the pgx stdlib driver.
type DBKV struct {
	pool *sql.DB
}

// NewDBKV wraps an opened connection pool.
func NewDBKV(pool *sql.DB) *DBKV {
	return &DBKV{pool}
}

// Bootstrap applies the pending goose migrations from the configured directory.
func (d *DBKV) Bootstrap() error {
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(d.pool, config.Settings.MigrationsDir)
}

// Get implements KVStore.
func (d *DBKV) Get(ctx context.Context, key string) (string, error) {
	readStmt, err := d.pool.PrepareContext(ctx, "SELECT value FROM kv_pairs WHERE key = $1")
	if err != nil {
		return "", err
	}
	defer readStmt.Close()
	var value string
	err = readStmt.QueryRowContext(ctx, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrKeyNotFound
		}
		return "", err
	}
	return value, nil
}

// Put implements KVStore.
func (d *DBKV) Put(ctx context.Context, key string, value string) error {
	upsertStmt, err := d.pool.PrepareContext(
		ctx, "INSERT INTO kv_pairs (key, value) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value")
	if err != nil {
		return err
	}
	defer upsertStmt.Close()
	_, err = upsertStmt.ExecContext(ctx, key, value)
	return err
}

// PutIfAbsent implements KVStore. Postgres gives a real conditional create,
// so a concurrent duplicate shows up as a unique violation instead of a
// silent overwrite.
func (d *DBKV) PutIfAbsent(ctx context.Context, key string, value string) (bool, error) {
	insertStmt, err := d.pool.PrepareContext(ctx, "INSERT INTO kv_pairs (key, value) VALUES ($1, $2)")
	if err != nil {
		return false, err
	}
	defer insertStmt.Close()
	_, err = insertStmt.ExecContext(ctx, key, value)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// List implements KVStore.
func (d *DBKV) List(ctx context.Context, cursor string, limit int) ([]string, string, error) {
	listStmt, err := d.pool.PrepareContext(
		ctx, "SELECT key FROM kv_pairs WHERE key > $1 ORDER BY key LIMIT $2")
	if err != nil {
		return nil, "", err
	}
	defer listStmt.Close()
	rows, err := listStmt.QueryContext(ctx, cursor, limit)
	if err != nil {
		return nil, "", err
	}
	defer rows.Close()
	var keys []string
	for rows.Next() {
		var key string
		if err = rows.Scan(&key); err != nil {
			return nil, "", err
		}
		keys = append(keys, key)
	}
	if err = rows.Err(); err != nil {
		return nil, "", err
	}
	if len(keys) < limit {
		return keys, "", nil
	}
	return keys, keys[len(keys)-1], nil
}

// Ping implements KVStore.
func (d *DBKV) Ping(ctx context.Context) error {
	return d.pool.PingContext(ctx)
}

// Close implements KVStore.
func (d *DBKV) Close() error {
	return d.pool.Close()
}
