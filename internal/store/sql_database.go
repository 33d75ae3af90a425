package store

import (
	"github.com/jb131997/gymdesk/migrations"
)

// Migrate applies all pending schema migrations to the connected database.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
