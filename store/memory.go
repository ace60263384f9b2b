// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"sync"
	"time"
)

type memOption struct {
	value     *string
	updatedAt time.Time
}

// Memory is an in-process OptionStore. Values are lost on exit.
type Memory struct {
	mu      sync.RWMutex
	options map[string]memOption
	now     func() time.Time
}

func NewMemory() *Memory {
	return &Memory{options: make(map[string]memOption), now: time.Now}
}

func (m *Memory) Get(_ context.Context, name string) (Option, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	o, ok := m.options[name]
	if !ok || o.value == nil {
		return Option{}, false, nil
	}
	return Option{Name: name, Value: *o.value, UpdatedAt: o.updatedAt}, true, nil
}

func (m *Memory) Update(_ context.Context, name, value string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.options[name] = memOption{value: &value, updatedAt: m.now().UTC()}
	return true, nil
}

func (m *Memory) Add(_ context.Context, name string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.options[name]; ok {
		return false, nil
	}
	m.options[name] = memOption{}
	return true, nil
}

func (m *Memory) Delete(_ context.Context, name string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.options[name]; !ok {
		return false, nil
	}
	delete(m.options, name)
	return true, nil
}
