// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/catchupdays/wishlist/catalog"
	"github.com/catchupdays/wishlist/cliparse"
	"github.com/catchupdays/wishlist/handlers"
	"github.com/catchupdays/wishlist/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, cat *catalog.Catalog) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	wishlistHandler := handlers.NewWishlistHandler(db, cfg)
	bannedHandler := handlers.NewBannedHandler(db, cfg)
	autocompleteHandler := handlers.NewAutocompleteHandler(cat)
	pageHandler := handlers.NewPageHandler(db, cfg, cat)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			slog.Error("health check failed", "error", err)
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", middleware.MetricsHandler())

	// JSON API (public)
	mux.HandleFunc("GET /api/wishlist", middleware.WithLogging(wishlistHandler.List))
	mux.HandleFunc("GET /api/autocomplete", middleware.WithLogging(autocompleteHandler.Suggest))

	// Banned URLs (admin session)
	mux.HandleFunc("POST /api/banned", middleware.WithLogging(bannedHandler.Toggle))
	mux.HandleFunc("GET /api/banned", middleware.WithLogging(bannedHandler.List))

	// Pages
	mux.HandleFunc("GET /{$}", middleware.WithLogging(pageHandler.Home))
	mux.HandleFunc("GET /wishlist", middleware.WithLogging(pageHandler.Wishlist))
	mux.HandleFunc("POST /wishlist/filters", middleware.WithLogging(pageHandler.UpdateFilters))

	return mux
}
