package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// MemoryDSN keeps the catalog in process memory only.
const MemoryDSN = ":memory:"

const schema = `
CREATE TABLE IF NOT EXISTS menu_items (
    id                TEXT PRIMARY KEY,
    position          INTEGER NOT NULL,
    category_id       TEXT NOT NULL,
    name              TEXT NOT NULL,
    price             REAL NOT NULL CHECK(price >= 0),
    image_seed        INTEGER NOT NULL DEFAULT 0,
    custom_image      TEXT,
    description       TEXT,
    ingredients       TEXT,
    glass_type        TEXT,
    intensity         TEXT CHECK(intensity IN ('Soft','Medium','Strong') OR intensity IS NULL),
    bartender_notes   TEXT,
    garnish           TEXT,
    preparation_steps TEXT,
    flavor_profile    TEXT,
    allergens         TEXT,
    tags              TEXT,
    updated_at        TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
);

CREATE INDEX IF NOT EXISTS idx_menu_items_position ON menu_items(position);
CREATE INDEX IF NOT EXISTS idx_menu_items_category_id ON menu_items(category_id);
`

// Open opens the SQLite catalog and initializes the schema.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}
