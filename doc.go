// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Catchup Days wishlist server.

The wishlist lists open-source issues worth contributing to. Visitors narrow
it with attribute filters (repository, library, label, language) that live
in the page URL, so any filtered view can be shared as a link.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=wishlist.db SESSION_SECRET=... go run .

Or with flags:

	go run . -p 3318 -d wishlist.db -session-secret ... -seed seed.yaml

PostgreSQL works as well:

	go run . -t postgres -d "postgres://..." -session-secret ...

A .env file in the working directory is read first.

# Configuration

Required settings:

  - DATABASE_URL (-d): sqlite file or PostgreSQL connection string
  - SESSION_SECRET (-session-secret): Secret for session token HMAC

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - ADMIN_EMAILS (-admin-emails): Administrator allowlist
  - CATALOG_FILE (-catalog): Attribute catalog YAML
  - SEED_FILE (-seed): Wishlist items YAML, applied at startup

# Admin Sessions

Print a session token for an allowlisted address and exit:

	go run . -issue-token admin@catchupdays.org -session-secret ...

Send it as "Authorization: Bearer <token>" to /api/banned.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (wishlist, banned, autocomplete, pages)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, request IDs, metrics, JSON helpers
  - models: Request/response types
  - auth: Session tokens and the admin allowlist
  - db: Schema creation and seeding
  - cliparse: Configuration parsing
  - catalog: Attribute groups
  - filter: Filter set and tag input state
  - urlsync: Query string encoding of the filter set
  - fetcher: Wishlist client with stale-response discard
  - tui: Terminal browser, run by cmd/wishlist-browse

See package documentation for each component.
*/
package main
