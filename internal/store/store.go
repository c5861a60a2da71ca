// Package store keeps a local snapshot of the last successful search so the
// export and stats commands work without the API. The snapshot is replaced
// wholesale on every successful fetch, never merged.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/lokeshkumar99/ai-competition-scout/internal/briefing"
)

type Store struct {
	readDB  *sql.DB
	writeDB *sql.DB
}

// LastSearch describes the query that produced the current snapshot.
type LastSearch struct {
	Competitor  string
	ProductLine string
	FetchedAt   time.Time
}

func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating snapshot dir: %w", err)
	}

	writeDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening write db: %w", err)
	}
	writeDB.SetMaxOpenConns(1)

	readDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		writeDB.Close()
		return nil, fmt.Errorf("opening read db: %w", err)
	}

	s := &Store{readDB: readDB, writeDB: writeDB}
	if err := s.init(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	_, err := s.writeDB.Exec(`
		CREATE TABLE IF NOT EXISTS briefings (
			position       INTEGER PRIMARY KEY,
			competitor     TEXT NOT NULL DEFAULT '',
			product_line   TEXT NOT NULL DEFAULT '',
			feature_update TEXT NOT NULL DEFAULT '',
			summary        TEXT NOT NULL DEFAULT '',
			pm_analysis    TEXT NOT NULL DEFAULT '',
			source_url     TEXT NOT NULL DEFAULT '',
			processed_at   TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS meta (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	var errs []error
	if s.readDB != nil {
		errs = append(errs, s.readDB.Close())
	}
	if s.writeDB != nil {
		errs = append(errs, s.writeDB.Close())
	}
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

// Replace swaps the whole snapshot for the given result set and records the
// search that produced it. Position preserves the server's ordering; the
// first row stays the most recent briefing.
func (s *Store) Replace(briefings []briefing.Briefing, search LastSearch) error {
	tx, err := s.writeDB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM briefings`); err != nil {
		return fmt.Errorf("clearing snapshot: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO briefings (position, competitor, product_line, feature_update, summary, pm_analysis, source_url, processed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, b := range briefings {
		_, err := stmt.Exec(i, b.Competitor, b.ProductLine, b.FeatureUpdate, b.Summary, b.PMAnalysis, b.SourceURL, b.ProcessedAt)
		if err != nil {
			return fmt.Errorf("inserting briefing %d: %w", i, err)
		}
	}

	if err := setMeta(tx, "last_competitor", search.Competitor); err != nil {
		return err
	}
	if err := setMeta(tx, "last_product_line", search.ProductLine); err != nil {
		return err
	}
	at := search.FetchedAt
	if at.IsZero() {
		at = time.Now()
	}
	if err := setMeta(tx, "last_fetched_at", at.Format(time.RFC3339)); err != nil {
		return err
	}

	return tx.Commit()
}

func setMeta(tx *sql.Tx, key, value string) error {
	_, err := tx.Exec(`
		INSERT INTO meta (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}

// Load returns the snapshot in its stored (server) order.
func (s *Store) Load() ([]briefing.Briefing, error) {
	rows, err := s.readDB.Query(`
		SELECT competitor, product_line, feature_update, summary, pm_analysis, source_url, processed_at
		FROM briefings ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("querying snapshot: %w", err)
	}
	defer rows.Close()

	var briefings []briefing.Briefing
	for rows.Next() {
		var b briefing.Briefing
		if err := rows.Scan(&b.Competitor, &b.ProductLine, &b.FeatureUpdate, &b.Summary, &b.PMAnalysis, &b.SourceURL, &b.ProcessedAt); err != nil {
			return nil, fmt.Errorf("scanning briefing: %w", err)
		}
		briefings = append(briefings, b)
	}
	return briefings, rows.Err()
}

// Last returns the metadata of the search that filled the snapshot. ok is
// false when no search has been recorded yet.
func (s *Store) Last() (LastSearch, bool) {
	var last LastSearch
	var at string
	err := s.readDB.QueryRow(`SELECT value FROM meta WHERE key = 'last_fetched_at'`).Scan(&at)
	if err != nil {
		return last, false
	}
	last.FetchedAt, _ = time.Parse(time.RFC3339, at)
	s.readDB.QueryRow(`SELECT value FROM meta WHERE key = 'last_competitor'`).Scan(&last.Competitor)
	s.readDB.QueryRow(`SELECT value FROM meta WHERE key = 'last_product_line'`).Scan(&last.ProductLine)
	return last, true
}

// Stats reports the snapshot row count and file size.
func (s *Store) Stats(dbPath string) (count int, size int64, err error) {
	if err = s.readDB.QueryRow(`SELECT COUNT(*) FROM briefings`).Scan(&count); err != nil {
		return 0, 0, fmt.Errorf("counting briefings: %w", err)
	}
	info, err := os.Stat(dbPath)
	if err != nil {
		return count, 0, err
	}
	return count, info.Size(), nil
}
