package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/gupta19esha/HealthScribeGPT/pkg/logger"
)

// StoreComponent names the key/value store in healthscribe_versions.
const StoreComponent = "storedb"

// ErrSchemaTooNew is returned when the database was written by a newer
// build.
var ErrSchemaTooNew = errors.New("database schema is newer than this build supports")

// SchemaVersion reports the store schema version recorded in db, or 0 for a
// database that was never initialized.
func SchemaVersion(db *sql.DB) (int64, error) {
	var version int64
	err := db.QueryRow(`SELECT version FROM healthscribe_versions WHERE component = ?`, StoreComponent).Scan(&version)
	switch {
	case err == nil:
		return version, nil
	case errors.Is(err, sql.ErrNoRows):
		return 0, nil
	case strings.Contains(err.Error(), "no such table"):
		return 0, nil
	default:
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
}

// Migrate applies every migration above the recorded version up to target,
// each in its own transaction. name only labels log lines.
func Migrate(db *sql.DB, name string, target int64) error {
	current, err := SchemaVersion(db)
	if err != nil {
		return err
	}
	if current > target {
		return fmt.Errorf("%w: '%s' is at version %d, this build supports up to %d", ErrSchemaTooNew, name, current, target)
	}
	if current == target {
		logger.Debug("database up to date", "db", name, "version", current)
		return nil
	}

	for _, m := range migrations {
		if m.version <= current || m.version > target {
			continue
		}
		if err := apply(db, m); err != nil {
			return fmt.Errorf("failed to migrate '%s' to version %d: %w", name, m.version, err)
		}
		logger.Info("database migrated", "db", name, "version", m.version)
	}
	return nil
}

// MigrateLatest brings db to LatestVersion.
func MigrateLatest(db *sql.DB, name string) error {
	return Migrate(db, name, LatestVersion)
}

func apply(db *sql.DB, m migration) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(m.sql); err != nil {
		return err
	}
	_, err = tx.Exec(`
INSERT INTO healthscribe_versions (component, version) VALUES (?, ?)
ON CONFLICT(component) DO UPDATE SET version = excluded.version, created_at = unixepoch()`,
		StoreComponent, m.version)
	if err != nil {
		return err
	}
	return tx.Commit()
}
