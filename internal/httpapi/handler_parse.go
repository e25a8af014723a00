package httpapi

import (
	"io"
	"net/http"

	"github.com/specialistvlad/jmxforge/internal/ctxlog"
	"github.com/specialistvlad/jmxforge/internal/jmx"
	"github.com/specialistvlad/jmxforge/internal/planstore"
)

// maxUploadBytes bounds how much of an uploaded document is read; the core
// has no internal limits, so the transport applies one.
const maxUploadBytes = 16 << 20

// ParseHandler reconstructs a plan from an uploaded .jmx document and keeps
// it in the store for later editing. Recoverable issues are reported
// alongside the plan; only malformed XML fails the request.
func ParseHandler(store *planstore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxUploadBytes))
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "failed to read request body")
			return
		}

		result, err := jmx.Parse(string(body))
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}

		store.Put(result.Plan)
		ctxlog.FromContext(r.Context()).Info("Parsed JMX document.",
			"plan", result.Plan.Name, "components", result.Plan.Len(), "issues", len(result.Issues))

		writeJSON(w, r, http.StatusOK, map[string]any{
			"plan":   result.Plan,
			"issues": result.Issues,
		})
	}
}
