// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/danielhkuo/ajax-example/db"
)

// SQLStore keeps options in the ajax_option table.
type SQLStore struct {
	db     *sql.DB
	driver string
	now    func() time.Time
}

func NewSQLStore(conn *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: conn, driver: driver, now: time.Now}
}

var placeholder = regexp.MustCompile(`\$\d+`)

// q adapts a query written with $N placeholders to the driver.
// Every query here uses each argument once, in order.
func (s *SQLStore) q(query string) string {
	if s.driver == db.DriverSQLite {
		return placeholder.ReplaceAllString(query, "?")
	}
	return query
}

func (s *SQLStore) Get(ctx context.Context, name string) (Option, bool, error) {
	var (
		value     sql.NullString
		updatedAt sql.NullTime
	)
	err := s.db.QueryRowContext(ctx, s.q(`
		SELECT value, updated_at FROM ajax_option WHERE name = $1
	`), name).Scan(&value, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Option{}, false, nil
	}
	if err != nil {
		return Option{}, false, fmt.Errorf("failed to get option %s: %w", name, err)
	}
	if !value.Valid {
		return Option{}, false, nil
	}

	opt := Option{Name: name, Value: value.String}
	if updatedAt.Valid {
		opt.UpdatedAt = updatedAt.Time
	}
	return opt, true, nil
}

func (s *SQLStore) Update(ctx context.Context, name, value string) (bool, error) {
	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO ajax_option (name, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`), name, value, s.now().UTC())
	if err != nil {
		return false, fmt.Errorf("failed to update option %s: %w", name, err)
	}
	return true, nil
}

func (s *SQLStore) Add(ctx context.Context, name string) (bool, error) {
	res, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO ajax_option (name, value, autoload)
		VALUES ($1, NULL, 'no')
		ON CONFLICT (name) DO NOTHING
	`), name)
	if err != nil {
		return false, fmt.Errorf("failed to add option %s: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to add option %s: %w", name, err)
	}
	return n > 0, nil
}

func (s *SQLStore) Delete(ctx context.Context, name string) (bool, error) {
	res, err := s.db.ExecContext(ctx, s.q(`
		DELETE FROM ajax_option WHERE name = $1
	`), name)
	if err != nil {
		return false, fmt.Errorf("failed to delete option %s: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete option %s: %w", name, err)
	}
	return n > 0, nil
}
