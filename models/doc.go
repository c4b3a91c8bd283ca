// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

  - BanRequest: url, delete

# Response Types

  - AutocompleteResponse: suggestions, more
  - Suggestion: token, key, value, title
  - ErrorResponse: error, message

# Domain Types

  - WishlistItem: one contribution opportunity shown as a card
  - User: author login and avatar
  - Reactions: named reaction counts (total_count, +1, -1, laugh, ...)
  - BannedEntry: a URL hidden from the wishlist

WishlistItem.Repo derives "owner/name" from the repository URL:

	https://api.github.com/repos/vercel/next.js -> vercel/next.js
*/
package models
