// Package audit persists one row per processed post: the decision, the
// score, and the full reasoning trail. Operators use it to answer why the
// bot did or did not respond; no post is ever dropped without a row here.
package audit

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"
)

// #region schema

const schema = `
CREATE TABLE IF NOT EXISTS engagement_log (
    id               TEXT PRIMARY KEY,
    post_excerpt     TEXT NOT NULL,
    author           TEXT,
    decision         TEXT NOT NULL,
    category         TEXT NOT NULL,
    score            INTEGER NOT NULL,
    reasoning_json   TEXT NOT NULL,
    response_source  TEXT,
    response_text    TEXT,
    template_id      TEXT,
    created_at       TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_engagement_log_decision
ON engagement_log(decision, created_at);
`

// #endregion schema

// #region open

// OpenDB opens the SQLite database used for audit rows and template usage.
func OpenDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	return db, nil
}

// #endregion open

// #region store

// Store writes and reads engagement log rows.
type Store struct {
	db *sql.DB
}

// NewStore runs migrations and returns a store.
func NewStore(db *sql.DB) (*Store, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate engagement_log: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion store

// #region entry

// Decision values for an entry.
const (
	DecisionRespond = "respond"
	DecisionSkip    = "skip"
)

// Entry is one processed post's outcome.
type Entry struct {
	ID             string
	PostExcerpt    string
	Author         string
	Decision       string
	Category       string
	Score          int
	Reasoning      []string
	ResponseSource string
	ResponseText   string
	TemplateID     string
	CreatedAt      time.Time
}

// #endregion entry

// #region log

const excerptLimit = 200

// Log writes one row. The entry id is assigned here (sortable ULID).
func (s *Store) Log(e Entry) (string, error) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	e.ID = ulid.Make().String()

	reasoning, err := json.Marshal(e.Reasoning)
	if err != nil {
		return "", fmt.Errorf("marshal reasoning: %w", err)
	}

	excerpt := e.PostExcerpt
	if len(excerpt) > excerptLimit {
		excerpt = excerpt[:excerptLimit]
	}

	_, err = s.db.Exec(`
		INSERT INTO engagement_log
		(id, post_excerpt, author, decision, category, score, reasoning_json,
		 response_source, response_text, template_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID,
		excerpt,
		nullIfEmpty(e.Author),
		e.Decision,
		e.Category,
		e.Score,
		string(reasoning),
		nullIfEmpty(e.ResponseSource),
		nullIfEmpty(e.ResponseText),
		nullIfEmpty(e.TemplateID),
		e.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("log engagement: %w", err)
	}
	return e.ID, nil
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion log

// #region recent

// Recent returns the newest n entries, newest first.
func (s *Store) Recent(n int) ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, post_excerpt, COALESCE(author, ''), decision, category, score,
		       reasoning_json, COALESCE(response_source, ''), COALESCE(response_text, ''),
		       COALESCE(template_id, ''), created_at
		FROM engagement_log
		ORDER BY id DESC
		LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("query engagement_log: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var reasoning, createdAt string
		if err := rows.Scan(&e.ID, &e.PostExcerpt, &e.Author, &e.Decision, &e.Category,
			&e.Score, &reasoning, &e.ResponseSource, &e.ResponseText, &e.TemplateID,
			&createdAt); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		if err := json.Unmarshal([]byte(reasoning), &e.Reasoning); err != nil {
			return nil, fmt.Errorf("unmarshal reasoning: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			e.CreatedAt = ts
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// #endregion recent
