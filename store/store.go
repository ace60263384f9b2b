// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"time"
)

// Option is a single named value in the options table.
// UpdatedAt is zero until the first write.
type Option struct {
	Name      string
	Value     string
	UpdatedAt time.Time
}

// OptionStore persists named option values. Writes are last-writer-wins.
type OptionStore interface {
	// Get returns the option and true, or false if it is missing or has
	// never been given a value.
	Get(ctx context.Context, name string) (Option, bool, error)

	// Update stores value under name, creating the option if needed.
	// It reports whether the write happened.
	Update(ctx context.Context, name, value string) (bool, error)

	// Add creates the option with no value. It reports false if the
	// option already exists.
	Add(ctx context.Context, name string) (bool, error)

	// Delete removes the option. It reports false if there was nothing
	// to remove.
	Delete(ctx context.Context, name string) (bool, error)
}

// GetValue returns the option's value, or "" if it has none.
func GetValue(ctx context.Context, s OptionStore, name string) (string, error) {
	opt, ok, err := s.Get(ctx, name)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}
	return opt.Value, nil
}
