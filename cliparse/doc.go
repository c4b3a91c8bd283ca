// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: sqlite file or PostgreSQL connection string (required)
  - DatabaseType: sqlite (default) or postgres
  - SessionSecret: Secret for session token HMAC (required)
  - AdminEmails: Addresses allowed to manage banned URLs
  - CatalogPath: Optional attribute catalog YAML (built-in catalog otherwise)
  - SeedPath: Optional wishlist seed YAML
  - IssueToken: Print a session token for an email and exit

# CLI Flags

	-p                Server port
	-d                Database URL
	-t                Database type
	-session-secret   Session token secret
	-admin-emails     Comma-separated administrator emails
	-catalog          Catalog file
	-seed             Seed file
	-issue-token      Email to issue a session token for

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	SESSION_SECRET → -session-secret
	ADMIN_EMAILS   → -admin-emails
	CATALOG_FILE   → -catalog
	SEED_FILE      → -seed

CLI flags take precedence over environment variables. A .env file in the
working directory is loaded with godotenv before the lookups; variables
already present in the environment win over the file.

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided (unless -issue-token is set)
  - SESSION_SECRET must be provided
  - DATABASE_TYPE must be sqlite or postgres

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	driver, _ := db.DriverName(cfg.DatabaseType)
	conn, err := sql.Open(driver, cfg.DatabaseURL)
	// ...
	mux := router.NewRouter(conn, cfg, cat)
*/
package cliparse
