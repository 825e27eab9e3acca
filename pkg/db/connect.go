package db

import (
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

var syncModes = []string{"OFF", "NORMAL", "FULL", "EXTRA"}

// Options tunes the SQLite connection.
type Options struct {
	// WAL switches the journal to write-ahead logging.
	WAL bool
	// Sync is the synchronous pragma (OFF, NORMAL, FULL or EXTRA, any case).
	// Empty keeps the SQLite default.
	Sync string
}

func (o Options) dsn(path string) (string, error) {
	params := url.Values{}
	if o.WAL {
		params.Set("_journal_mode", "WAL")
	}
	if o.Sync != "" {
		mode := strings.ToUpper(o.Sync)
		valid := false
		for _, m := range syncModes {
			valid = valid || m == mode
		}
		if !valid {
			return "", fmt.Errorf("invalid sync pragma value: %s. Must be one of %s", o.Sync, strings.Join(syncModes, ", "))
		}
		params.Set("_synchronous", mode)
	}

	if len(params) == 0 {
		return path, nil
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + params.Encode(), nil
}

// Open connects to the SQLite database at path (or MemoryDSN) and checks
// that it answers.
func Open(path string, opts Options) (*sql.DB, error) {
	dsn, err := opts.dsn(path)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %q: %w", dsn, err)
	}
	// A single connection keeps MemoryDSN databases alive across queries.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database %q: %w", dsn, err)
	}
	return conn, nil
}
