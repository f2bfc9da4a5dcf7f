// Package store persists search history and settings in SQLite.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/interpretive-systems/nxtwatch/internal/store/migrations"
)

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("store closed")

// ErrSchemaTooNew is returned by Open when the database was migrated by a
// newer nxtwatch.
var ErrSchemaTooNew = errors.New("database schema is newer than this build")

// Store wraps the nxtwatch sqlite database.
type Store struct {
	db  *sql.DB
	log *zap.Logger
	now func() time.Time
}

// Open opens (creating if needed) the database at path and applies
// pending migrations.
func Open(path string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}

	s := &Store{db: db, log: log, now: time.Now}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// SchemaVersion returns the applied schema version.
func (s *Store) SchemaVersion() (int, error) {
	if s.db == nil {
		return 0, ErrClosed
	}
	return readVersion(s.db)
}

func (s *Store) migrate() error {
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS metadata (key TEXT PRIMARY KEY, value TEXT NOT NULL)`); err != nil {
		return fmt.Errorf("create metadata table: %w", err)
	}
	current, err := readVersion(s.db)
	if err != nil {
		return err
	}
	if latest := migrations.LatestVersion(); current > latest {
		return fmt.Errorf("%w: database is at v%d, this build knows v%d", ErrSchemaTooNew, current, latest)
	}
	for _, m := range migrations.All() {
		if m.Version() <= current {
			continue
		}
		s.log.Debug("applying migration", zap.Int("version", m.Version()), zap.String("description", m.Description()))
		if err := m.Up(s.db); err != nil {
			return fmt.Errorf("migration v%d (%s): %w", m.Version(), m.Description(), err)
		}
		if _, err := s.db.Exec(
			`INSERT OR REPLACE INTO metadata (key, value) VALUES ('schema_version', ?)`,
			strconv.Itoa(m.Version()),
		); err != nil {
			return fmt.Errorf("record schema version: %w", err)
		}
		current = m.Version()
	}
	return nil
}

func readVersion(db *sql.DB) (int, error) {
	var v string
	err := db.QueryRow(`SELECT value FROM metadata WHERE key = 'schema_version'`).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parse schema version %q: %w", v, err)
	}
	return n, nil
}

// GetSetting returns the value stored under key.
func (s *Store) GetSetting(key string) (string, bool, error) {
	if s.db == nil {
		return "", false, ErrClosed
	}
	var v string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get setting %s: %w", key, err)
	}
	return v, true, nil
}

// SetSetting stores value under key.
func (s *Store) SetSetting(key, value string) error {
	if s.db == nil {
		return ErrClosed
	}
	if _, err := s.db.Exec(`INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)`, key, value); err != nil {
		return fmt.Errorf("set setting %s: %w", key, err)
	}
	return nil
}

func normalizeSearchTerm(term string) string {
	return strings.TrimSpace(term)
}

// AddSearch records a submitted search. Blank terms are ignored.
func (s *Store) AddSearch(term string) error {
	if s.db == nil {
		return ErrClosed
	}
	term = normalizeSearchTerm(term)
	if term == "" {
		return nil
	}
	_, err := s.db.Exec(`
		INSERT INTO search_history (search_term, last_used, use_count)
		VALUES (?, ?, 1)
		ON CONFLICT(search_term) DO UPDATE SET
			last_used = excluded.last_used,
			use_count = use_count + 1`,
		term, s.now().UnixNano())
	if err != nil {
		return fmt.Errorf("add search: %w", err)
	}
	return nil
}

// SearchEntry is one row of the search history.
type SearchEntry struct {
	Term     string
	LastUsed time.Time
	Uses     int
}

// RecentSearches returns up to limit entries, most recent first.
func (s *Store) RecentSearches(limit int) ([]SearchEntry, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT search_term, last_used, use_count FROM search_history ORDER BY last_used DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query search history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []SearchEntry
	for rows.Next() {
		var (
			e  SearchEntry
			ns int64
		)
		if err := rows.Scan(&e.Term, &ns, &e.Uses); err != nil {
			return nil, fmt.Errorf("scan search history: %w", err)
		}
		e.LastUsed = time.Unix(0, ns)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate search history: %w", err)
	}
	return out, nil
}

// RecentTerms is RecentSearches reduced to the terms.
func (s *Store) RecentTerms(limit int) ([]string, error) {
	entries, err := s.RecentSearches(limit)
	if err != nil {
		return nil, err
	}
	terms := make([]string, 0, len(entries))
	for _, e := range entries {
		terms = append(terms, e.Term)
	}
	return terms, nil
}

// ClearSearchHistory deletes every entry and reports how many were removed.
func (s *Store) ClearSearchHistory() (int64, error) {
	if s.db == nil {
		return 0, ErrClosed
	}
	res, err := s.db.Exec(`DELETE FROM search_history`)
	if err != nil {
		return 0, fmt.Errorf("clear search history: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
