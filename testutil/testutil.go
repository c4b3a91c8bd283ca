// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/catchupdays/wishlist/auth"
	"github.com/catchupdays/wishlist/cliparse"
	"github.com/catchupdays/wishlist/db"
	"github.com/catchupdays/wishlist/models"
)

// AdminEmail is on the allowlist of GetTestConfig.
const AdminEmail = "admin@catchupdays.test"

// SetupTestDB creates a fresh in-memory sqlite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// Every pooled connection would get its own in-memory database.
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3318,
		DatabaseURL:   "file::memory:",
		DatabaseType:  db.TypeSQLite,
		SessionSecret: "test-session-secret",
		AdminEmails:   []string{AdminEmail},
	}
}

// AdminToken returns a session token for the test administrator
func AdminToken(cfg cliparse.Config) string {
	return auth.IssueSessionToken(AdminEmail, cfg.SessionSecret)
}

// CreateTestItem stores an item with the given attribute tokens and returns it
func CreateTestItem(t *testing.T, conn *sql.DB, title, repo string, reactions int, createdAt time.Time, attrs ...string) models.WishlistItem {
	t.Helper()

	item := models.WishlistItem{
		Title:         title,
		RepositoryURL: "https://api.github.com/repos/" + repo,
		HTMLURL:       "https://github.com/" + repo + "/issues/" + title,
		User:          models.User{Login: "octocat", AvatarURL: "https://avatars.example/octocat.png"},
		CreatedAt:     createdAt,
		Reactions:     &models.Reactions{TotalCount: reactions, Heart: reactions},
		Attributes:    append([]string{"repo:" + repo}, attrs...),
	}

	ok, err := db.InsertItem(conn, item)
	if err != nil {
		t.Fatalf("Failed to create test item: %v", err)
	}
	if !ok {
		t.Fatalf("Test item %q was not inserted", title)
	}

	return item
}

// BanTestURL inserts a banned URL
func BanTestURL(t *testing.T, conn *sql.DB, url string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO banned (url, banned_by, created_at)
		VALUES ($1, $2, $3)
	`, url, AdminEmail, time.Now())
	if err != nil {
		t.Fatalf("Failed to ban test URL: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
