// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/catchupdays/wishlist/cliparse"
	"github.com/catchupdays/wishlist/filter"
	"github.com/catchupdays/wishlist/middleware"
	"github.com/catchupdays/wishlist/models"
	"github.com/catchupdays/wishlist/urlsync"
)

type WishlistHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewWishlistHandler(db *sql.DB, cfg cliparse.Config) *WishlistHandler {
	return &WishlistHandler{db: db, cfg: cfg}
}

// List handles GET /api/wishlist?<key>=<value>...
// Values of the same key are OR-ed, different keys are AND-ed
func (h *WishlistHandler) List(w http.ResponseWriter, r *http.Request) {
	set := urlsync.Decode(r.URL.RawQuery)

	items, err := QueryItems(r.Context(), h.db, set)
	if err != nil {
		slog.Error("failed to query wishlist", "error", err, "filters", set.String())
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, items)
}

// criterion is one attribute key with the values any of which must match.
type criterion struct {
	key    string
	values []string
}

// criteria groups the set's tokens by key in order of first appearance.
func criteria(set filter.Set) []criterion {
	var out []criterion
	index := map[string]int{}
	for _, token := range set.Tokens() {
		key, value := filter.Split(token)
		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, criterion{key: key})
		}
		out[i].values = append(out[i].values, value)
	}
	return out
}

// QueryItems returns the items matching set, excluding banned URLs, ordered
// by reaction total then creation time, both descending.
func QueryItems(ctx context.Context, db *sql.DB, set filter.Set) ([]models.WishlistItem, error) {
	var (
		where []string
		args  []interface{}
	)
	for _, c := range criteria(set) {
		args = append(args, c.key)
		keyArg := len(args)

		placeholders := make([]string, len(c.values))
		for i, v := range c.values {
			args = append(args, v)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}

		where = append(where, fmt.Sprintf(`EXISTS (
			SELECT 1 FROM item_attribute a
			WHERE a.item_id = i.id AND a.attr_key = $%d AND a.attr_value IN (%s)
		)`, keyArg, strings.Join(placeholders, ", ")))
	}

	query := `
		SELECT i.id, i.title, i.repository_url, i.html_url, i.author_login,
		       i.author_avatar_url, i.reactions, i.created_at
		FROM wishlist_item i
		WHERE NOT EXISTS (SELECT 1 FROM banned b WHERE b.url = i.html_url)`
	for _, clause := range where {
		query += "\n\t\tAND " + clause
	}
	query += "\n\t\tORDER BY i.reaction_total DESC, i.created_at DESC"

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	items := []models.WishlistItem{}
	byID := map[string]int{}
	for rows.Next() {
		var item models.WishlistItem
		var reactions string
		if err := rows.Scan(&item.ID, &item.Title, &item.RepositoryURL, &item.HTMLURL,
			&item.User.Login, &item.User.AvatarURL, &reactions, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		var rc models.Reactions
		if err := json.Unmarshal([]byte(reactions), &rc); err != nil {
			return nil, fmt.Errorf("failed to decode reactions of %s: %w", item.ID, err)
		}
		item.Reactions = &rc
		byID[item.ID] = len(items)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read items: %w", err)
	}

	if len(items) == 0 {
		return items, nil
	}
	if err := loadAttributes(ctx, db, items, byID); err != nil {
		return nil, err
	}
	return items, nil
}

func loadAttributes(ctx context.Context, db *sql.DB, items []models.WishlistItem, byID map[string]int) error {
	placeholders := make([]string, len(items))
	args := make([]interface{}, len(items))
	for i, item := range items {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = item.ID
	}

	rows, err := db.QueryContext(ctx, `
		SELECT item_id, attr_key, attr_value
		FROM item_attribute
		WHERE item_id IN (`+strings.Join(placeholders, ", ")+`)
		ORDER BY attr_key, attr_value
	`, args...)
	if err != nil {
		return fmt.Errorf("failed to query attributes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, key, value string
		if err := rows.Scan(&id, &key, &value); err != nil {
			return fmt.Errorf("failed to scan attribute: %w", err)
		}
		if i, ok := byID[id]; ok {
			items[i].Attributes = append(items[i].Attributes, filter.Join(key, value))
		}
	}
	return rows.Err()
}
