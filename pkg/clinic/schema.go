package clinic

import (
	"database/sql"
	_ "embed"
	"fmt"

	"github.com/clinickit/clinicdesk/pkg/entity"
)

//go:embed schema.sql
var schemaSQL string

// EnsureSchema creates the clinic tables if they do not exist yet.
func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("ensure schema: %w: %w", entity.ErrQuery, err)
	}
	return nil
}
