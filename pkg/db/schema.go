package db

// migration moves the store component from version-1 to version.
type migration struct {
	version int64
	sql     string
}

// migrations are applied in order. The first one also creates the version
// table.
var migrations = []migration{
	{version: 1, sql: `
CREATE TABLE IF NOT EXISTS healthscribe_versions (
    component TEXT PRIMARY KEY,
    version INTEGER NOT NULL,
    created_at REAL DEFAULT (unixepoch())
);

CREATE TABLE IF NOT EXISTS kv_store (
    key VARCHAR(128) PRIMARY KEY,
    value TEXT NOT NULL,
    created_at REAL DEFAULT (unixepoch())
);
`},
	{version: 2, sql: `
ALTER TABLE kv_store ADD COLUMN updated_at REAL;
UPDATE kv_store SET updated_at = created_at;
`},
}

// LatestVersion is the schema version this build writes.
var LatestVersion = migrations[len(migrations)-1].version
