// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"database/sql"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/catchupdays/wishlist/catalog"
	"github.com/catchupdays/wishlist/cliparse"
	"github.com/catchupdays/wishlist/filter"
	"github.com/catchupdays/wishlist/middleware"
	"github.com/catchupdays/wishlist/models"
	"github.com/catchupdays/wishlist/urlsync"
)

//go:embed templates/*.html
var templateFS embed.FS

// FullDateLayout renders dates like "Monday, 2 January 2023".
const FullDateLayout = "Monday, 2 January 2006"

var pageTemplates = template.Must(template.New("pages").Funcs(template.FuncMap{
	"ago":      humanize.Time,
	"fulldate": func(t time.Time) string { return t.Format(FullDateLayout) },
}).ParseFS(templateFS, "templates/*.html"))

type PageHandler struct {
	db  *sql.DB
	cfg cliparse.Config
	cat *catalog.Catalog
	now func() time.Time
}

func NewPageHandler(db *sql.DB, cfg cliparse.Config, cat *catalog.Catalog) *PageHandler {
	return &PageHandler{db: db, cfg: cfg, cat: cat, now: time.Now}
}

type pageData struct {
	Title   string
	OGTitle string
	Year    int

	Tags    []filter.Tag
	Groups  []filter.GroupView
	Entries []catalog.Entry
	Items   []models.WishlistItem
	Error   string
}

func (h *PageHandler) render(w http.ResponseWriter, name string, data pageData) {
	data.Year = h.now().Year()

	// Render into a buffer so a template error still yields a clean 500.
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("failed to render page", "page", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// Home handles GET /
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, "home", pageData{Title: "Catchup Days", OGTitle: "Catchup Days"})
}

// Wishlist handles GET /wishlist?<key>=<value>...
// The query string is the filter set; a failed lookup is shown inline.
func (h *PageHandler) Wishlist(w http.ResponseWriter, r *http.Request) {
	state := filter.NewState(urlsync.Decode(r.URL.RawQuery))

	data := pageData{
		Title:   "The Wishlist | Catchup Days",
		OGTitle: "Wishlist | Catchup Days",
		Tags:    state.Tags(h.cat),
		Groups:  state.Groups(h.cat),
		Entries: h.cat.Entries(),
	}

	items, err := QueryItems(r.Context(), h.db, state.Set)
	if err != nil {
		slog.Error("failed to query wishlist", "error", err, "filters", state.Set.String())
		data.Error = "could not load the wishlist"
	} else {
		data.Items = items
	}

	h.render(w, "wishlist", data)
}

// UpdateFilters handles POST /wishlist/filters
// The form carries the current tokens as "selected" plus one action:
//
//	remove=<token>                 drop one token
//	action=add&token=<text>        add a token, or the catalog entry whose value is <text>
//	action=group&group=<key>&value=<v>...  replace a group's selection
//	action=clear                   drop everything
//
// It answers 303 See Other with the canonical /wishlist URL.
func (h *PageHandler) UpdateFilters(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid form")
		return
	}

	state := filter.NewState(filter.NewSet(r.PostForm["selected"]...))

	switch action := r.PostForm.Get("action"); {
	case r.PostForm.Get("remove") != "":
		state = state.Remove(r.PostForm.Get("remove"))
	case action == "add":
		token, ok := h.resolveToken(r.PostForm.Get("token"))
		if !ok {
			middleware.ErrorResponse(w, http.StatusBadRequest, "unknown filter")
			return
		}
		state = state.Add(token)
	case action == "group":
		g, ok := h.cat.Group(r.PostForm.Get("group"))
		if !ok {
			middleware.ErrorResponse(w, http.StatusBadRequest, "unknown group")
			return
		}
		var tokens []string
		for _, v := range r.PostForm["value"] {
			tokens = append(tokens, g.Token(v))
		}
		state = state.ReplaceGroup(g.Key, tokens)
	case action == "clear":
		state = filter.NewState(filter.Set{})
	case action == "keep":
		// Enter in the text field lands here and leaves the selection alone.
	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, "unknown action")
		return
	}

	target := "/wishlist"
	if q := urlsync.Encode(state.Set); q != "" {
		target += "?" + q
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// resolveToken accepts a "key:value" token as typed, or a display value
// naming exactly one catalog entry.
func (h *PageHandler) resolveToken(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}
	if strings.Contains(text, ":") {
		return text, true
	}

	var match string
	for _, e := range h.cat.Entries() {
		if strings.EqualFold(e.Value, text) {
			if match != "" {
				return "", false
			}
			match = e.Token
		}
	}
	return match, match != ""
}
