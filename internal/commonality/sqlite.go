// internal/commonality/sqlite.go
//
// SQLite-backed commonality lookup.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout).
//   - Ensuring the word_freq schema exists.
//   - Bulk-importing "word zipf" text files in one transaction.
//   - Per-word zipf lookup with a 0 fallback for unknown words.
//
// The database holds static reference data, not solver state; sessions
// never write to it outside of an explicit import.

package commonality

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

const schema = `CREATE TABLE IF NOT EXISTS word_freq (
	word TEXT PRIMARY KEY,
	zipf REAL NOT NULL
);`

// DB is a SQLite-backed commonality table.
type DB struct {
	db *sql.DB
}

// Open opens (and creates if missing) the commonality database.
//
//   - Ensures the parent directory exists for relative DSNs
//     (e.g. ./data/commonality.db).
//   - Configures busy timeout and WAL journaling mode.
//   - Creates the word_freq table if missing.
func Open(dsn string) (*DB, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return &DB{db: db}, nil
}

// Close releases the underlying database handle.
func (d *DB) Close() error { return d.db.Close() }

// Score looks up the zipf score for word. Unknown words score 0; lookup
// errors are logged and also score 0, keeping the scorer pure from the
// caller's point of view.
func (d *DB) Score(word string) float64 {
	var zipf float64
	err := d.db.QueryRow(`SELECT zipf FROM word_freq WHERE word = ?`,
		strings.ToLower(strings.TrimSpace(word))).Scan(&zipf)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Warn().Err(err).Str("word", word).Msg("commonality lookup")
		}
		return 0
	}
	return zipf
}

// Count returns the number of stored words.
func (d *DB) Count(ctx context.Context) (int, error) {
	var n int
	err := d.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM word_freq`).Scan(&n)
	return n, err
}

// ImportFile bulk-loads a "word zipf" text file into word_freq, replacing
// existing rows. Returns the number of imported pairs.
func (d *DB) ImportFile(ctx context.Context, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR REPLACE INTO word_freq(word, zipf) VALUES(?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	n := 0
	lineNo := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word, zipf, err := parsePair(line)
		if err != nil {
			return 0, fmt.Errorf("%s line %d: %w", path, lineNo, err)
		}
		if _, err := stmt.ExecContext(ctx, word, zipf); err != nil {
			return 0, fmt.Errorf("insert %q: %w", word, err)
		}
		n++
	}
	if err := sc.Err(); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return n, nil
}
