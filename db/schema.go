// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// Supported database types
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

// DriverName maps a database type to its database/sql driver name.
func DriverName(dbType string) (string, error) {
	switch dbType {
	case TypeSQLite:
		return "sqlite", nil
	case TypePostgres:
		return "postgres", nil
	}
	return "", fmt.Errorf("unsupported database type %q", dbType)
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The schema sticks to types and defaults both sqlite and postgres accept.
const schema = `
-- Wishlist items
CREATE TABLE IF NOT EXISTS wishlist_item (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    repository_url TEXT NOT NULL,
    html_url TEXT NOT NULL UNIQUE,
    author_login TEXT NOT NULL,
    author_avatar_url TEXT NOT NULL DEFAULT '',
    reactions TEXT NOT NULL DEFAULT '{}',
    reaction_total INTEGER NOT NULL DEFAULT 0 CHECK (reaction_total >= 0),
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_wishlist_item_rank ON wishlist_item(reaction_total, created_at);

-- Filterable attributes, one row per "key:value" token
CREATE TABLE IF NOT EXISTS item_attribute (
    item_id TEXT NOT NULL REFERENCES wishlist_item(id) ON DELETE CASCADE,
    attr_key TEXT NOT NULL,
    attr_value TEXT NOT NULL,
    PRIMARY KEY (item_id, attr_key, attr_value)
);

CREATE INDEX IF NOT EXISTS idx_item_attribute_kv ON item_attribute(attr_key, attr_value);

-- Banned URLs
CREATE TABLE IF NOT EXISTS banned (
    url TEXT PRIMARY KEY,
    banned_by TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`
