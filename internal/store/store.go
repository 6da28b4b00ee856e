// Package store opens the SQLite database the repositories run against.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/clinickit/clinicdesk/pkg/entity"
)

// Open opens (creating if needed) the SQLite database at path and verifies
// the connection. A path of ":memory:" opens an in-memory database pinned
// to a single connection, since each pooled connection would otherwise see
// its own empty database.
func Open(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("create data directory: %w: %w", entity.ErrConnection, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w: %w", path, entity.ErrConnection, err)
	}
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database %s: %w: %w", path, entity.ErrConnection, err)
	}
	return db, nil
}
