package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// settingsRepo implements SettingsRepo on the settings table.
type settingsRepo struct {
	db *sql.DB
}

func (r *settingsRepo) Get(ctx context.Context, key string) (string, bool, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select("value").
		From(entsql.Table(settingsTable)).
		Where(entsql.EQ("name", key)).
		Limit(1).
		Query()

	var value string
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get setting %q: %w", key, err)
	}
	return value, true, nil
}

func (r *settingsRepo) Set(ctx context.Context, key, value string) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(settingsTable).
		Columns("name", "value", "updated_at").
		Values(key, value, time.Now().UTC()).
		OnConflict(
			entsql.ConflictColumns("name"),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set setting %q: %w", key, err)
	}
	return nil
}

func (r *settingsRepo) SetIfAbsent(ctx context.Context, key, value string) (string, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(settingsTable).
		Columns("name", "value", "updated_at").
		Values(key, value, time.Now().UTC()).
		OnConflict(
			entsql.ConflictColumns("name"),
			entsql.DoNothing(),
		).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return "", fmt.Errorf("set setting %q: %w", key, err)
	}

	stored, ok, err := r.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("setting %q missing after insert", key)
	}
	return stored, nil
}
