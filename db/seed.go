// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/catchupdays/wishlist/models"
)

// RepoKey is the attribute key derived from an item's repository URL.
const RepoKey = "repo"

var ErrInvalidItem = errors.New("invalid wishlist item")

// SeedItem is the YAML form of a wishlist item.
type SeedItem struct {
	ID            string              `yaml:"id"`
	Title         string              `yaml:"title"`
	RepositoryURL string              `yaml:"repository_url"`
	HTMLURL       string              `yaml:"html_url"`
	Login         string              `yaml:"login"`
	AvatarURL     string              `yaml:"avatar_url"`
	CreatedAt     time.Time           `yaml:"created_at"`
	Reactions     *models.Reactions   `yaml:"reactions"`
	Attributes    map[string][]string `yaml:"attributes"`
}

type seedFile struct {
	Items []SeedItem `yaml:"items"`
}

// ParseSeed reads seed items from YAML.
func ParseSeed(data []byte) ([]SeedItem, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}
	return f.Items, nil
}

// LoadSeed reads seed items from a YAML file.
func LoadSeed(path string) ([]SeedItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed: %w", err)
	}
	return ParseSeed(data)
}

// Item converts a seed entry to a WishlistItem with its attribute tokens.
// The repo attribute is always derived from RepositoryURL.
func (s SeedItem) Item() models.WishlistItem {
	item := models.WishlistItem{
		ID:            s.ID,
		Title:         s.Title,
		RepositoryURL: s.RepositoryURL,
		HTMLURL:       s.HTMLURL,
		User:          models.User{Login: s.Login, AvatarURL: s.AvatarURL},
		CreatedAt:     s.CreatedAt,
		Reactions:     s.Reactions,
	}

	keys := make([]string, 0, len(s.Attributes))
	for k := range s.Attributes {
		if k != RepoKey {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	item.Attributes = append(item.Attributes, RepoKey+":"+item.Repo())
	for _, k := range keys {
		for _, v := range s.Attributes[k] {
			item.Attributes = append(item.Attributes, k+":"+v)
		}
	}
	return item
}

// InsertItem stores an item and its attributes. Items whose html_url is
// already present are skipped; inserted reports whether a row was added.
func InsertItem(conn *sql.DB, item models.WishlistItem) (inserted bool, err error) {
	if item.Title == "" || item.HTMLURL == "" || item.RepositoryURL == "" {
		return false, fmt.Errorf("%w: title, html_url and repository_url are required", ErrInvalidItem)
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}

	reactions := models.Reactions{}
	if item.Reactions != nil {
		reactions = *item.Reactions
	}
	payload, err := json.Marshal(reactions)
	if err != nil {
		return false, fmt.Errorf("failed to encode reactions: %w", err)
	}

	tx, err := conn.Begin()
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO wishlist_item (id, title, repository_url, html_url, author_login, author_avatar_url, reactions, reaction_total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (html_url) DO NOTHING
	`, item.ID, item.Title, item.RepositoryURL, item.HTMLURL, item.User.Login, item.User.AvatarURL,
		string(payload), reactions.Total(), item.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("failed to insert item: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil || n == 0 {
		return false, err
	}

	for _, token := range item.Attributes {
		key, value, ok := cutToken(token)
		if !ok {
			continue
		}
		_, err := tx.Exec(`
			INSERT INTO item_attribute (item_id, attr_key, attr_value)
			VALUES ($1, $2, $3)
			ON CONFLICT DO NOTHING
		`, item.ID, key, value)
		if err != nil {
			return false, fmt.Errorf("failed to insert attribute: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit item: %w", err)
	}
	return true, nil
}

// Seed inserts every item, skipping those already stored. It returns how
// many were added.
func Seed(conn *sql.DB, items []SeedItem) (int, error) {
	added := 0
	for _, s := range items {
		ok, err := InsertItem(conn, s.Item())
		if err != nil {
			return added, fmt.Errorf("seed item %q: %w", s.HTMLURL, err)
		}
		if ok {
			added++
		}
	}
	return added, nil
}

func cutToken(token string) (key, value string, ok bool) {
	key, value, ok = strings.Cut(token, ":")
	return key, value, ok && key != ""
}
