// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation and seeding.

# Database Types

Two backends are supported, selected by DATABASE_TYPE:

	sqlite   -> modernc.org/sqlite (driver "sqlite")
	postgres -> github.com/lib/pq  (driver "postgres")

DriverName maps the type to the database/sql driver name. The schema uses
only types and defaults both accept.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - wishlist_item: one contribution opportunity; reactions stored as JSON text
    with reaction_total kept alongside for ordering
  - item_attribute: (attr_key, attr_value) pairs per item, matching filter tokens
  - banned: URLs hidden from the wishlist, keyed by url

# Relationships

	wishlist_item 1──* item_attribute
	banned.url ~ wishlist_item.html_url (no foreign key; bans may precede items)

# Seeding

Items are loaded from YAML at startup:

	items:
	  - title: Support ESM config files
	    repository_url: https://api.github.com/repos/webpack/webpack
	    html_url: https://github.com/webpack/webpack/issues/1
	    login: octocat
	    created_at: 2023-01-02T15:04:05Z
	    reactions: {total_count: 3, heart: 3}
	    attributes:
	      label: [BE]
	      language: [JavaScript]

	items, err := db.LoadSeed("seed.yaml")
	added, err := db.Seed(conn, items)

The repo attribute is derived from repository_url. Items whose html_url is
already stored are skipped.
*/
package db
