// Package analytics records privacy-conscious page visits in sqlite.
// Raw IP addresses are never stored; only a salted, truncated hash.
package analytics

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS visitors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	user_agent TEXT,
	path TEXT,
	visited_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_visitors_visited_at ON visitors(visited_at);
`

// PageStat is a path with its view count.
type PageStat struct {
	Path  string `json:"path"`
	Views int64  `json:"views"`
}

// Stats are aggregate counts only; nothing per-visitor leaves the store.
type Stats struct {
	TotalVisits    int64      `json:"total_visits"`
	UniqueVisitors int64      `json:"unique_visitors"`
	VisitsToday    int64      `json:"visits_today"`
	VisitsThisWeek int64      `json:"visits_this_week"`
	TopPages       []PageStat `json:"top_pages"`
}

type Store struct {
	db   *sql.DB
	salt string
	now  func() time.Time
}

// Open creates or migrates the database at path. The IP hashing salt is
// generated per process, so hashes are only comparable within one run.
func Open(path string) (store *Store, err error) {
	if dir := filepath.Dir(path); dir != "." {
		err = os.MkdirAll(dir, 0750)
		if err != nil {
			err = errors.Wrapf(err, "failed to create database directory: %s", dir)
			return store, err
		}
	}

	var db *sql.DB
	db, err = sql.Open("sqlite", path)
	if err != nil {
		err = errors.Wrapf(err, "failed to open database: %s", path)
		return store, err
	}
	db.SetMaxOpenConns(1)

	_, err = db.Exec(schema)
	if err != nil {
		db.Close()
		err = errors.Wrap(err, "failed to create visitors table")
		return store, err
	}

	var salt string
	salt, err = randomHex(32)
	if err != nil {
		db.Close()
		return store, err
	}

	store = &Store{db: db, salt: salt, now: time.Now}
	return store, err
}

func (s *Store) Close() error {
	return s.db.Close()
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Wrap(err, "failed to generate salt")
	}
	return hex.EncodeToString(b), nil
}

// HashIP is stable for a given IP within the life of the store.
func (s *Store) HashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + s.salt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

// Record stores one visit.
func (s *Store) Record(ctx context.Context, ip, userAgent, path string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO visitors (hashed_ip, user_agent, path, visited_at)
		VALUES (?, ?, ?, ?)
	`, s.HashIP(ip), userAgent, path, s.now().Unix())
	if err != nil {
		return errors.Wrap(err, "failed to record visitor")
	}
	return nil
}

// Cleanup deletes visits older than retentionMonths and reports how many
// rows were removed.
func (s *Store) Cleanup(ctx context.Context, retentionMonths int) (int64, error) {
	cutoff := s.now().AddDate(0, -retentionMonths, 0).Unix()
	result, err := s.db.ExecContext(ctx, `DELETE FROM visitors WHERE visited_at < ?`, cutoff)
	if err != nil {
		return 0, errors.Wrap(err, "failed to clean up visitor data")
	}
	return result.RowsAffected()
}

// Stats summarises visits. Days are UTC days.
func (s *Store) Stats(ctx context.Context) (stats Stats, err error) {
	now := s.now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Unix()
	weekAgo := now.AddDate(0, 0, -7).Unix()

	counts := []struct {
		query string
		args  []any
		dest  *int64
	}{
		{`SELECT COUNT(*) FROM visitors`, nil, &stats.TotalVisits},
		{`SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil, &stats.UniqueVisitors},
		{`SELECT COUNT(*) FROM visitors WHERE visited_at >= ?`, []any{startOfDay}, &stats.VisitsToday},
		{`SELECT COUNT(*) FROM visitors WHERE visited_at >= ?`, []any{weekAgo}, &stats.VisitsThisWeek},
	}
	for _, c := range counts {
		err = s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dest)
		if err != nil {
			err = errors.Wrap(err, "failed to count visitors")
			return stats, err
		}
	}

	var rows *sql.Rows
	rows, err = s.db.QueryContext(ctx, `
		SELECT path, COUNT(*) AS views
		FROM visitors
		GROUP BY path
		ORDER BY views DESC, path ASC
		LIMIT 10
	`)
	if err != nil {
		err = errors.Wrap(err, "failed to load top pages")
		return stats, err
	}
	defer rows.Close()

	stats.TopPages = []PageStat{}
	for rows.Next() {
		var page PageStat
		err = rows.Scan(&page.Path, &page.Views)
		if err != nil {
			err = errors.Wrap(err, "failed to scan top page")
			return stats, err
		}
		stats.TopPages = append(stats.TopPages, page)
	}
	err = rows.Err()
	if err != nil {
		err = errors.Wrap(err, "failed to read top pages")
	}
	return stats, err
}
