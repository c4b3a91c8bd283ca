// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Catchup Days wishlist.

# Handler Types

Each handler is a struct with its dependencies:

  - WishlistHandler: filtered wishlist JSON
  - BannedHandler: admin-only banned URL management
  - AutocompleteHandler: catalog suggestions for a draft
  - PageHandler: server-rendered home and wishlist pages

Handlers are created via constructor functions:

	wishlistHandler := handlers.NewWishlistHandler(db, cfg)
	pageHandler := handlers.NewPageHandler(db, cfg, cat)

# Filtering

The query string is the filter set, one key=value pair per token:

	GET /api/wishlist?language=Rust&language=GoLang&label=FE

Values of the same key are OR-ed, different keys are AND-ed. Banned URLs are
never returned. Results are ordered by total reactions, then newest first.
Keys the catalog does not know are applied like any other and simply match
nothing. QueryItems is shared by the JSON endpoint and the page.

# Autocomplete

	GET /api/autocomplete?draft=type&selected=language:Rust

Returns up to five suggestions whose value contains every word of the
draft, skipping selected tokens. more is true when further matches were cut.
Drafts under two characters return nothing.

# Banned URLs

	POST /api/banned {"url": "...", "delete": false}
	GET  /api/banned

Both require "Authorization: Bearer <session token>" (or the session cookie)
for an email on the admin allowlist, and answer 401 {"error":"forbidden"}
otherwise. Banning an already banned URL is 409; unbanning a URL that is not
banned is 404.

# Pages

	GET  /                  home page
	GET  /wishlist?<pairs>  filter page with tags, group selectors and results
	POST /wishlist/filters  form actions (add, remove, group, clear)

Form actions rebuild the set from the posted "selected" tokens, apply one
change, and redirect 303 to the canonical /wishlist URL, so the address bar
always mirrors the active filters. A failed lookup renders a single inline
error instead of the results.
*/
package handlers
