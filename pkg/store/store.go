package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gupta19esha/HealthScribeGPT/pkg/health"
	"github.com/gupta19esha/HealthScribeGPT/pkg/logger"
)

// Keys under which each collection is persisted.
const (
	KeyJournalEntries = "journalEntries"
	KeyGoals          = "goals"
	KeyHabits         = "habits"
	KeyMeals          = "meals"
	KeyWaterIntake    = "waterIntake"
)

var (
	ErrKeyNotFound = errors.New("key not found")
	ErrQuota       = errors.New("storage quota exceeded")
)

// Backend is the raw key/value port the store is built on.
type Backend interface {
	// Get returns ErrKeyNotFound when key has never been written.
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// Collection is a JSON array of records persisted under one key.
type Collection[T any] struct {
	backend Backend
	key     string
}

// NewCollection binds a collection of T to key on backend.
func NewCollection[T any](backend Backend, key string) *Collection[T] {
	return &Collection[T]{backend: backend, key: key}
}

// Key returns the storage key of the collection.
func (c *Collection[T]) Key() string {
	return c.key
}

// Get returns the stored records in order. Missing, unreadable or corrupt
// data yields an empty slice; the failure is logged, never returned.
func (c *Collection[T]) Get(ctx context.Context) []T {
	raw, err := c.backend.Get(ctx, c.key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			logger.Warn("failed to read collection", "key", c.key, "error", err)
		}
		return []T{}
	}

	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		logger.Debug("discarding corrupt collection", "key", c.key, "error", err)
		return []T{}
	}
	if records == nil {
		return []T{}
	}
	return records
}

// Save replaces the whole collection.
func (c *Collection[T]) Save(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", c.key, err)
	}
	if err := c.backend.Put(ctx, c.key, raw); err != nil {
		logger.Error("failed to save collection", "key", c.key, "error", err)
		return fmt.Errorf("failed to save %s: %w", c.key, err)
	}
	return nil
}

// Add prepends record and returns the new full sequence. On a failed write
// it returns nil and the error.
func (c *Collection[T]) Add(ctx context.Context, record T) ([]T, error) {
	current := c.Get(ctx)
	updated := make([]T, 0, len(current)+1)
	updated = append(updated, record)
	updated = append(updated, current...)
	if err := c.Save(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Append adds record at the end and returns the new full sequence. On a
// failed write it returns nil and the error.
func (c *Collection[T]) Append(ctx context.Context, record T) ([]T, error) {
	updated := append(c.Get(ctx), record)
	if err := c.Save(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Store groups the typed collections of the journal.
type Store struct {
	backend Backend

	Entries *Collection[health.JournalEntry]
	Goals   *Collection[health.Goal]
	Habits  *Collection[health.Habit]
	Meals   *Collection[health.Meal]
}

// New builds a Store on top of backend.
func New(backend Backend) *Store {
	return &Store{
		backend: backend,
		Entries: NewCollection[health.JournalEntry](backend, KeyJournalEntries),
		Goals:   NewCollection[health.Goal](backend, KeyGoals),
		Habits:  NewCollection[health.Habit](backend, KeyHabits),
		Meals:   NewCollection[health.Meal](backend, KeyMeals),
	}
}

// WaterIntake returns today's water intake in milliliters, 0 when unset or
// unreadable.
func (s *Store) WaterIntake(ctx context.Context) int {
	raw, err := s.backend.Get(ctx, KeyWaterIntake)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			logger.Warn("failed to read water intake", "error", err)
		}
		return 0
	}
	ml, err := strconv.ParseFloat(strings.TrimSpace(string(raw)), 64)
	if err != nil || ml < 0 {
		logger.Debug("discarding corrupt water intake", "value", string(raw))
		return 0
	}
	return int(ml)
}

// SetWaterIntake stores ml as a decimal string.
func (s *Store) SetWaterIntake(ctx context.Context, ml int) error {
	if err := s.backend.Put(ctx, KeyWaterIntake, []byte(strconv.Itoa(ml))); err != nil {
		logger.Error("failed to save water intake", "error", err)
		return fmt.Errorf("failed to save %s: %w", KeyWaterIntake, err)
	}
	return nil
}
