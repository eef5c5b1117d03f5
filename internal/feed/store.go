// Package feed provides the storage layer for the Whence demo feed.
//
// The demo feed is the living exhibit for the readable library: a
// small SQLite-backed timeline of posts whose timestamps the CLI and
// TUI render through pkg/readable. SQLite runs in WAL mode with
// prepared statements on the insert path; use ":memory:" for tests.
package feed

import (
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaFS embed.FS

// Store defines the interface for feed persistence. The abstraction
// exists so the digest and TUI can be tested against fixtures.
type Store interface {
	// InsertItem persists a feed item, replacing any item with the
	// same ID.
	InsertItem(item *Item) error
	// BatchInsertItems inserts multiple items in one transaction.
	BatchInsertItems(items []*Item) error
	// QueryItems returns items matching the filter, newest first.
	QueryItems(filter Filter) ([]*Item, error)
	// Stats returns aggregate figures for the whole feed.
	Stats() (*FeedStats, error)
	// Close shuts down the database connection.
	Close() error
}

// Item is a single feed entry. PostedAt is Unix milliseconds, the
// resolution the readable library formats at.
type Item struct {
	ItemID   string            `json:"item_id"`
	Author   string            `json:"author"`
	Body     string            `json:"body"`
	PostedAt int64             `json:"posted_at"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Filter defines query parameters for item listing.
type Filter struct {
	Author *string `json:"author,omitempty"`
	Since  *int64  `json:"since,omitempty"` // Unix milliseconds
	Until  *int64  `json:"until,omitempty"` // Unix milliseconds
	Limit  int     `json:"limit"`
	Offset int     `json:"offset"`
}

// FeedStats holds aggregate figures for the feed.
type FeedStats struct {
	TotalItems  int   `json:"total_items"`
	Authors     int   `json:"authors"`
	OldestMs    int64 `json:"oldest_ms"`
	NewestMs    int64 `json:"newest_ms"`
	DBSizeBytes int64 `json:"db_size_bytes"`
}

// FeedDB implements Store on SQLite. A read-write mutex serializes
// writers; SQLite itself supports a single writer at a time.
type FeedDB struct {
	db   *sql.DB
	mu   sync.RWMutex
	path string

	stmtInsertItem *sql.Stmt
}

// Open creates a feed store at path, initializing the schema and the
// insert statement. Use ":memory:" for an in-memory feed.
func Open(path string) (*FeedDB, error) {
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_synchronous=NORMAL&_foreign_keys=ON", path)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening feed database at %s: %w", path, err)
	}

	// One writer at a time; WAL handles concurrent readers.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	f := &FeedDB{
		db:   db,
		path: path,
	}

	if err := f.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing feed schema: %w", err)
	}

	f.stmtInsertItem, err = db.Prepare(`
		INSERT INTO items (item_id, author, body, posted_at, metadata)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(item_id) DO UPDATE SET
			author = excluded.author,
			body = excluded.body,
			posted_at = excluded.posted_at,
			metadata = COALESCE(excluded.metadata, items.metadata)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("preparing InsertItem: %w", err)
	}

	return f, nil
}

// initSchema executes the embedded schema.sql.
func (f *FeedDB) initSchema() error {
	schema, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("reading embedded schema: %w", err)
	}
	if _, err := f.db.Exec(string(schema)); err != nil {
		return fmt.Errorf("executing schema: %w", err)
	}
	return nil
}

// InsertItem persists a feed item, replacing any item with the same ID.
func (f *FeedDB) InsertItem(item *Item) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.execInsert(f.stmtInsertItem, item)
}

// BatchInsertItems inserts multiple items within a single transaction.
func (f *FeedDB) BatchInsertItems(items []*Item) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	tx, err := f.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning batch item transaction: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	stmt := tx.Stmt(f.stmtInsertItem)
	for _, item := range items {
		if err := f.execInsert(stmt, item); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing batch item transaction: %w", err)
	}
	return nil
}

func (f *FeedDB) execInsert(stmt *sql.Stmt, item *Item) error {
	var metadataJSON *string
	if item.Metadata != nil {
		b, err := json.Marshal(item.Metadata)
		if err != nil {
			return fmt.Errorf("marshaling metadata for item %s: %w", item.ItemID, err)
		}
		str := string(b)
		metadataJSON = &str
	}

	if _, err := stmt.Exec(item.ItemID, item.Author, item.Body, item.PostedAt, metadataJSON); err != nil {
		return fmt.Errorf("inserting item %s: %w", item.ItemID, err)
	}
	return nil
}

// QueryItems returns items matching the filter, ordered by posted_at
// descending (newest first).
func (f *FeedDB) QueryItems(filter Filter) ([]*Item, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	query := `SELECT item_id, author, body, posted_at, metadata FROM items WHERE 1=1`
	args := make([]interface{}, 0)

	if filter.Author != nil {
		query += ` AND author = ?`
		args = append(args, *filter.Author)
	}
	if filter.Since != nil {
		query += ` AND posted_at >= ?`
		args = append(args, *filter.Since)
	}
	if filter.Until != nil {
		query += ` AND posted_at <= ?`
		args = append(args, *filter.Until)
	}

	query += ` ORDER BY posted_at DESC`

	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	} else {
		query += ` LIMIT 100`
	}
	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := f.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying items: %w", err)
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		it := &Item{}
		var metadataStr *string
		if err := rows.Scan(&it.ItemID, &it.Author, &it.Body, &it.PostedAt, &metadataStr); err != nil {
			return nil, fmt.Errorf("scanning item row: %w", err)
		}
		if metadataStr != nil {
			it.Metadata = make(map[string]string)
			if err := json.Unmarshal([]byte(*metadataStr), &it.Metadata); err != nil {
				// Non-fatal: metadata is supplementary
				it.Metadata = map[string]string{"_raw": *metadataStr}
			}
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Stats returns aggregate figures for the feed. DBSizeBytes is zero
// for in-memory databases.
func (f *FeedDB) Stats() (*FeedStats, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	stats := &FeedStats{}
	err := f.db.QueryRow(`
		SELECT COUNT(*),
			COUNT(DISTINCT author),
			COALESCE(MIN(posted_at), 0),
			COALESCE(MAX(posted_at), 0)
		FROM items
	`).Scan(&stats.TotalItems, &stats.Authors, &stats.OldestMs, &stats.NewestMs)
	if err != nil {
		return nil, fmt.Errorf("querying feed stats: %w", err)
	}

	if f.path != ":memory:" {
		if info, err := os.Stat(f.path); err == nil {
			stats.DBSizeBytes = info.Size()
		}
	}
	return stats, nil
}

// Close gracefully shuts down the database connection.
func (f *FeedDB) Close() error {
	if f.stmtInsertItem != nil {
		f.stmtInsertItem.Close()
	}
	return f.db.Close()
}
