// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/catchupdays/wishlist/catalog"
	"github.com/catchupdays/wishlist/filter"
	"github.com/catchupdays/wishlist/middleware"
	"github.com/catchupdays/wishlist/models"
)

type AutocompleteHandler struct {
	cat *catalog.Catalog
}

func NewAutocompleteHandler(cat *catalog.Catalog) *AutocompleteHandler {
	return &AutocompleteHandler{cat: cat}
}

// Suggest handles GET /api/autocomplete?draft=<text>&selected=<token>...
// Drafts shorter than two characters yield no suggestions
func (h *AutocompleteHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	state := filter.NewState(filter.NewSet(q["selected"]...)).Type(q.Get("draft"))

	resp := models.AutocompleteResponse{Suggestions: []models.Suggestion{}}
	if state.SuggestionsVisible() {
		for _, c := range state.Candidates(h.cat) {
			if c.More {
				resp.More = true
				continue
			}
			resp.Suggestions = append(resp.Suggestions, models.Suggestion{
				Token: c.Token,
				Key:   c.Key,
				Value: c.Value,
				Title: c.Title,
			})
		}
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}
