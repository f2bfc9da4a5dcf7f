// Package migrations holds the versioned schema changes of the nxtwatch
// database.
package migrations

import (
	"database/sql"
	"fmt"
	"sort"
)

// Migration defines a database schema migration.
type Migration interface {
	// Version is the schema version after this migration is applied.
	Version() int

	Description() string

	// Up applies the migration. It must be safe to run more than once.
	Up(db *sql.DB) error
}

var registry []Migration

// Register adds a migration. Called from init() in each migration file.
func Register(m Migration) {
	registry = append(registry, m)
}

// All returns all registered migrations sorted by version.
func All() []Migration {
	sorted := make([]Migration, len(registry))
	copy(sorted, registry)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Version() < sorted[j].Version()
	})

	return sorted
}

// LatestVersion returns the highest registered version, or 0.
func LatestVersion() int {
	latest := 0
	for _, m := range registry {
		if m.Version() > latest {
			latest = m.Version()
		}
	}
	return latest
}

// ExecStatements runs each statement in order.
func ExecStatements(db *sql.DB, statements []string) error {
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", firstLine(stmt), err)
		}
	}
	return nil
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
