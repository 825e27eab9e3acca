package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/gupta19esha/HealthScribeGPT/pkg/analyzer"
	pkgdb "github.com/gupta19esha/HealthScribeGPT/pkg/db"
	"github.com/gupta19esha/HealthScribeGPT/pkg/journal"
	"github.com/gupta19esha/HealthScribeGPT/pkg/store"
	"github.com/gupta19esha/HealthScribeGPT/pkg/utils"
)

// openDB opens the database at --db (or the default path) and brings its
// schema up to date.
func openDB() (*sql.DB, string, error) {
	path, err := utils.ResolveAndEnsureDBPath(dbPath)
	if err != nil {
		return nil, "", err
	}

	dbConn, err := pkgdb.Open(path, dbOptions())
	if err != nil {
		return nil, "", err
	}
	if err := pkgdb.MigrateLatest(dbConn, path); err != nil {
		dbConn.Close()
		return nil, "", fmt.Errorf("failed to prepare database: %w", err)
	}
	return dbConn, path, nil
}

// openService wires the journal service over the SQLite store and the
// OpenAI analyzer. The caller closes the returned database.
func openService() (*journal.Service, *sql.DB, string, error) {
	dbConn, path, err := openDB()
	if err != nil {
		return nil, nil, "", err
	}

	st := store.New(store.NewSQLBackend(dbConn))
	svc := journal.NewService(st,
		journal.WithAnalyzer(analyzer.New(analyzer.NewOpenAIProvider(cfg.OpenAI))),
		journal.WithBatchOptions(analyzer.BatchOptions{
			Concurrency: cfg.AnalyzeConcurrency,
			Timeout:     cfg.OpenAI.Timeout,
		}),
	)
	return svc, dbConn, path, nil
}

func dbOptions() pkgdb.Options {
	return pkgdb.Options{WAL: walMode, Sync: syncMode}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", s, err)
	}
	return id, nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
