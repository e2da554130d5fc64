package template

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// #region schema

const usageSchema = `
CREATE TABLE IF NOT EXISTS template_usage (
    template_id  TEXT PRIMARY KEY,
    use_count    INTEGER NOT NULL DEFAULT 0,
    updated_at   TEXT NOT NULL
);
`

// #endregion schema

// #region usage-store

// UsageStore persists per-template use counts in SQLite so selection
// fairness survives restarts.
type UsageStore struct {
	db *sql.DB
}

// NewUsageStore initializes the template_usage table over an open handle.
func NewUsageStore(db *sql.DB) (*UsageStore, error) {
	if _, err := db.Exec(usageSchema); err != nil {
		return nil, fmt.Errorf("migrate template_usage: %w", err)
	}
	return &UsageStore{db: db}, nil
}

// #endregion usage-store

// #region load

// Load returns all recorded counts keyed by template id.
func (u *UsageStore) Load() (map[string]int, error) {
	rows, err := u.db.Query(`SELECT template_id, use_count FROM template_usage`)
	if err != nil {
		return nil, fmt.Errorf("query usage: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var id string
		var n int
		if err := rows.Scan(&id, &n); err != nil {
			return nil, fmt.Errorf("scan usage row: %w", err)
		}
		counts[id] = n
	}
	return counts, rows.Err()
}

// #endregion load

// #region record

// Record upserts the count for one template.
func (u *UsageStore) Record(templateID string, count int) error {
	_, err := u.db.Exec(`
		INSERT INTO template_usage (template_id, use_count, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(template_id) DO UPDATE SET use_count = excluded.use_count,
		                                       updated_at = excluded.updated_at`,
		templateID, count, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record usage: %w", err)
	}
	return nil
}

// #endregion record
