// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/catchupdays/wishlist/auth"
	"github.com/catchupdays/wishlist/catalog"
	"github.com/catchupdays/wishlist/cliparse"
	"github.com/catchupdays/wishlist/db"
	"github.com/catchupdays/wishlist/middleware"
	"github.com/catchupdays/wishlist/router"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	if cfg.IssueToken != "" {
		fmt.Println(auth.IssueSessionToken(cfg.IssueToken, cfg.SessionSecret))
		return
	}

	// Load the attribute catalog
	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		cat, err = catalog.Load(cfg.CatalogPath)
		if err != nil {
			slog.Error("catalog load failed", "error", err, "path", cfg.CatalogPath)
			os.Exit(1)
		}
	}
	slog.Info("Catalog ready", "groups", len(cat.Groups()), "entries", len(cat.Entries()))

	// Connect to the database
	driver, err := db.DriverName(cfg.DatabaseType)
	if err != nil {
		slog.Error("database type rejected", "error", err)
		os.Exit(1)
	}
	dbConn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()
	if cfg.DatabaseType == db.TypeSQLite {
		// sqlite allows a single writer
		dbConn.SetMaxOpenConns(1)
	}

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	// Seed wishlist items
	if cfg.SeedPath != "" {
		items, err := db.LoadSeed(cfg.SeedPath)
		if err != nil {
			slog.Error("seed load failed", "error", err, "path", cfg.SeedPath)
			os.Exit(1)
		}
		added, err := db.Seed(dbConn, items)
		if err != nil {
			slog.Error("seeding failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Seed applied", "items", len(items), "added", added)
	}

	// Create router
	mux := router.NewRouter(dbConn, cfg, cat)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "admins", len(cfg.AdminEmails))
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
