// Package server exposes the current word as a JSON feed for widget
// processes.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dailywordwidget/dailyword/internal/widget"
)

// WordHandler serves the mirrored daily word. It reads the shared store
// only, it never triggers a refresh.
type WordHandler struct {
	store *widget.SharedStore
}

// NewWordHandler creates a WordHandler backed by the shared store.
func NewWordHandler(store *widget.SharedStore) *WordHandler {
	return &WordHandler{store: store}
}

// Register mounts the handler routes on mux.
func (h *WordHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /word", h.handleWord)
	mux.HandleFunc("GET /playing", h.handlePlaying)
}

func (h *WordHandler) handleWord(w http.ResponseWriter, r *http.Request) {
	word, err := h.store.Word()
	if err != nil {
		slog.Default().Error("Failed to read the shared word", "error", err)
		http.Error(w, "failed to read the current word", http.StatusInternalServerError)
		return
	}
	if word == nil {
		// Nothing has been fetched yet.
		http.Error(w, "no word available", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(word); err != nil {
		slog.Default().Error("Failed to encode the current word", "error", err)
	}
}

func (h *WordHandler) handlePlaying(w http.ResponseWriter, r *http.Request) {
	playing, err := h.store.Playing()
	if err != nil {
		slog.Default().Error("Failed to read the playback flag", "error", err)
		http.Error(w, "failed to read the playback state", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]bool{"isPlaying": playing}); err != nil {
		slog.Default().Error("Failed to encode the playback state", "error", err)
	}
}
