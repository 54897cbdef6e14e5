// Package handlers implements the HTTP endpoints of the correction API.
package handlers

import (
	"encoding/json"
	"net/http"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/seqspell/internal/barcode"
)

// LookupHandler handles the lookup endpoints
type LookupHandler struct {
	Set *barcode.Set
}

// SuggestionResult is the JSON shape of a single match.
type SuggestionResult struct {
	Term     string `json:"term"`
	Query    string `json:"query"`
	Distance int    `json:"distance"`
}

// BatchRequest is the JSON body of a batch lookup.
type BatchRequest struct {
	Queries []string `json:"queries"`
}

// Lookup handles GET /api/lookup?q=<query>: the closest whitelist barcodes
// to a single query.
func (h *LookupHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		http.Error(w, "Query parameter q required", http.StatusBadRequest)
		return
	}

	writeSuggestions(w, h.Set.Lookup(query))
}

// LookupBatch handles POST /api/lookup/batch with a JSON list of queries.
// Duplicate queries collapse before lookup.
func (h *LookupHandler) LookupBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if len(req.Queries) == 0 {
		http.Error(w, "At least one query required", http.StatusBadRequest)
		return
	}

	queries := mapset.NewThreadUnsafeSet[string](req.Queries...)
	writeSuggestions(w, h.Set.LookupBatch(queries))
}

// Scan handles GET /api/scan?q=<read>: locate a whitelist barcode embedded
// anywhere in a longer read.
func (h *LookupHandler) Scan(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		http.Error(w, "Query parameter q required", http.StatusBadRequest)
		return
	}

	writeSuggestions(w, h.Set.LookupSubstrings(query))
}

func writeSuggestions(w http.ResponseWriter, suggestions []barcode.Suggestion) {
	results := make([]SuggestionResult, 0, len(suggestions))
	for _, sg := range suggestions {
		results = append(results, SuggestionResult{
			Term:     sg.Term,
			Query:    sg.Query,
			Distance: sg.Distance,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(results)
}
