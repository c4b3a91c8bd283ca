// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/catchupdays/wishlist/auth"
	"github.com/catchupdays/wishlist/cliparse"
	"github.com/catchupdays/wishlist/middleware"
	"github.com/catchupdays/wishlist/models"
)

type BannedHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewBannedHandler(db *sql.DB, cfg cliparse.Config) *BannedHandler {
	return &BannedHandler{db: db, cfg: cfg}
}

// forbidden is the body of every rejected admin request.
var forbidden = models.ErrorResponse{Error: "forbidden"}

// authorize writes the 401 response and returns false when the request does
// not carry an administrator session.
func (h *BannedHandler) authorize(w http.ResponseWriter, r *http.Request) (string, bool) {
	email, err := auth.Authorize(r, h.cfg.SessionSecret, h.cfg.AdminEmails)
	if err != nil {
		slog.Warn("rejected admin request", "path", r.URL.Path, "error", err)
		middleware.JSONResponse(w, http.StatusUnauthorized, forbidden)
		return "", false
	}
	return email, true
}

// Toggle handles POST /api/banned
// Bans body.url, or unbans it when body.delete is true
func (h *BannedHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	email, ok := h.authorize(w, r)
	if !ok {
		return
	}

	var req models.BanRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	req.URL = strings.TrimSpace(req.URL)
	if req.URL == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "url is required")
		return
	}

	if req.Delete {
		res, err := h.db.ExecContext(r.Context(), `DELETE FROM banned WHERE url = $1`, req.URL)
		if err != nil {
			slog.Error("failed to unban url", "error", err, "url", req.URL)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		if n, _ := res.RowsAffected(); n == 0 {
			middleware.ErrorResponse(w, http.StatusNotFound, "url is not banned")
			return
		}
		slog.Info("url unbanned", "url", req.URL, "by", email)
		middleware.JSONResponse(w, http.StatusOK, struct{}{})
		return
	}

	res, err := h.db.ExecContext(r.Context(), `
		INSERT INTO banned (url, banned_by, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (url) DO NOTHING
	`, req.URL, email, time.Now())
	if err != nil {
		slog.Error("failed to ban url", "error", err, "url", req.URL)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		middleware.ErrorResponse(w, http.StatusConflict, "url already banned")
		return
	}

	slog.Info("url banned", "url", req.URL, "by", email)
	middleware.JSONResponse(w, http.StatusOK, struct{}{})
}

// List handles GET /api/banned
func (h *BannedHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.authorize(w, r); !ok {
		return
	}

	rows, err := h.db.QueryContext(r.Context(), `
		SELECT url, banned_by, created_at
		FROM banned
		ORDER BY created_at DESC, url
	`)
	if err != nil {
		slog.Error("failed to query banned urls", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	entries := []models.BannedEntry{}
	for rows.Next() {
		var e models.BannedEntry
		if err := rows.Scan(&e.URL, &e.BannedBy, &e.CreatedAt); err != nil {
			slog.Error("failed to scan banned url", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read banned urls", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, entries)
}
