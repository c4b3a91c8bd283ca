// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides session tokens and the administrator check used by
the banned-URL endpoints.

# Session Tokens

Session tokens bind an email address with HMAC-SHA256:

	token := auth.IssueSessionToken("admin@example.com", secret)
	email, err := auth.ParseSessionToken(token, secret)

The token is URL-safe base64 without padding. Since it's deterministic,
the same email and secret always produce the same token, so nothing needs
to be stored. Rotating SESSION_SECRET invalidates every token.

Tokens are issued by the server binary:

	wishlist -issue-token admin@example.com

# Requests

SessionFromRequest reads "Authorization: Bearer <token>" and falls back to
the "session" cookie. Authorize combines that with ParseSessionToken and
IsAdmin:

	email, err := auth.Authorize(r, cfg.SessionSecret, cfg.AdminEmails)
	if err != nil {
		// respond 401 {"error":"forbidden"}
	}

IsAdmin compares addresses case-insensitively.
*/
package auth
