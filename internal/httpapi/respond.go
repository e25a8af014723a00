package httpapi

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/specialistvlad/jmxforge/internal/ctxlog"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.FromContext(r.Context()).Error("Failed to encode response.", "error", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]any{"error": msg})
}
