package migrations

import "database/sql"

func init() {
	Register(&v1Settings{})
}

// v1Settings creates the metadata and settings key/value tables.
type v1Settings struct{}

func (m *v1Settings) Version() int { return 1 }

func (m *v1Settings) Description() string {
	return "Create metadata and settings tables"
}

func (m *v1Settings) Up(db *sql.DB) error {
	return ExecStatements(db, []string{
		`CREATE TABLE IF NOT EXISTS metadata (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	})
}
