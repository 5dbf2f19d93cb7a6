package handlers

import (
	"encoding/json"
	"net/http"

	"request-portal/core/suggest"
)

type SuggestionsHandler struct {
	index *suggest.Index
}

func NewSuggestionsHandler(index *suggest.Index) *SuggestionsHandler {
	return &SuggestionsHandler{index: index}
}

// Lookup is the stateless catalog query. An empty q returns an empty list.
func (h *SuggestionsHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	matches := h.index.Lookup(r.URL.Query().Get("q"))
	if matches == nil {
		matches = []suggest.Entry{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": matches})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
