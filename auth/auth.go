// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
)

// SessionCookie is the cookie consulted when no Authorization header is set.
const SessionCookie = "session"

var (
	ErrInvalidSession = errors.New("invalid session token")
	ErrNoSession      = errors.New("no session token")
)

// IssueSessionToken signs an email address into a session token of the form
// base64(email) "." base64(hmac). The token is deterministic for a given
// secret so it can be handed out once by the CLI.
func IssueSessionToken(email, secret string) string {
	payload := base64.RawURLEncoding.EncodeToString([]byte(email))
	return payload + "." + sign(payload, secret)
}

// ParseSessionToken verifies a token and returns the email it carries.
func ParseSessionToken(token, secret string) (string, error) {
	payload, sig, ok := strings.Cut(token, ".")
	if !ok || payload == "" || sig == "" {
		return "", ErrInvalidSession
	}
	if !hmac.Equal([]byte(sig), []byte(sign(payload, secret))) {
		return "", ErrInvalidSession
	}
	email, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil || len(email) == 0 {
		return "", ErrInvalidSession
	}
	return string(email), nil
}

func sign(payload, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}

// SessionFromRequest extracts the raw session token from the Authorization
// bearer header, falling back to the session cookie.
func SessionFromRequest(r *http.Request) (string, error) {
	if h := r.Header.Get("Authorization"); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			return "", ErrInvalidSession
		}
		return strings.TrimSpace(token), nil
	}
	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		return c.Value, nil
	}
	return "", ErrNoSession
}

// IsAdmin reports whether email is on the allowlist. Comparison ignores case.
func IsAdmin(email string, allowlist []string) bool {
	if email == "" {
		return false
	}
	for _, a := range allowlist {
		if strings.EqualFold(strings.TrimSpace(a), email) {
			return true
		}
	}
	return false
}

// Authorize resolves the request's session and checks it against the
// allowlist, returning the administrator's email.
func Authorize(r *http.Request, secret string, allowlist []string) (string, error) {
	token, err := SessionFromRequest(r)
	if err != nil {
		return "", err
	}
	email, err := ParseSessionToken(token, secret)
	if err != nil {
		return "", err
	}
	if !IsAdmin(email, allowlist) {
		return "", ErrInvalidSession
	}
	return email, nil
}
