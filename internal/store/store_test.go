package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinickit/clinicdesk/pkg/entity"
)

func TestOpenCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clinic.db")

	db, err := Open(path)
	require.NoError(t, err)
	defer db.Close()

	var one int
	require.NoError(t, db.QueryRow("SELECT 1").Scan(&one))
	assert.Equal(t, 1, one)
}

func TestOpenCreatesDataDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "clinic.db")

	db, err := Open(path)
	require.NoError(t, err)
	db.Close()
}

func TestOpenInMemory(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec("CREATE TABLE t (id INTEGER PRIMARY KEY)")
	require.NoError(t, err)

	// Single pinned connection: later statements must see the table.
	_, err = db.Exec("INSERT INTO t (id) VALUES (1)")
	require.NoError(t, err)
}

func TestOpenBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	_, err := Open(filepath.Join(path, "sub", "clinic.db"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrConnection))
}
