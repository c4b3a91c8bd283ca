// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Catchup Days wishlist.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg, cat)

# Endpoints

Operations:

	GET /health   - 200 "OK" when the database answers, 503 otherwise
	GET /metrics  - Prometheus metrics

Pages:

	GET  /                 - Home page
	GET  /wishlist         - Filter page; the query string is the filter set
	POST /wishlist/filters - Form actions, 303 back to /wishlist

API (public):

	GET /api/wishlist     - Filtered items
	GET /api/autocomplete - Suggestions for a draft

API (admin session):

	POST /api/banned - Ban or unban a URL
	GET  /api/banned - List banned URLs

# Handler Initialization

The router creates handler instances with dependency injection:

	wishlistHandler := handlers.NewWishlistHandler(db, cfg)
	bannedHandler := handlers.NewBannedHandler(db, cfg)
	autocompleteHandler := handlers.NewAutocompleteHandler(cat)
	pageHandler := handlers.NewPageHandler(db, cfg, cat)

Every route except /health and /metrics is wrapped with
middleware.WithLogging.
*/
package router
