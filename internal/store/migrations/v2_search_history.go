package migrations

import "database/sql"

func init() {
	Register(&v2SearchHistory{})
}

// v2SearchHistory adds the table of submitted searches.
type v2SearchHistory struct{}

func (m *v2SearchHistory) Version() int { return 2 }

func (m *v2SearchHistory) Description() string {
	return "Add search history table for recent searches"
}

func (m *v2SearchHistory) Up(db *sql.DB) error {
	return ExecStatements(db, []string{
		`CREATE TABLE IF NOT EXISTS search_history (
			search_term TEXT PRIMARY KEY,
			last_used INTEGER NOT NULL,
			use_count INTEGER DEFAULT 1
		)`,
		`CREATE INDEX IF NOT EXISTS idx_search_history_last_used ON search_history(last_used DESC)`,
	})
}
