package httpapi

import (
	"errors"
	"net/http"

	"github.com/specialistvlad/jmxforge/internal/ctxlog"
	"github.com/specialistvlad/jmxforge/internal/jmx"
	"github.com/specialistvlad/jmxforge/internal/plan"
)

// GenerateHandler renders a plan as a .jmx document. An invalid plan yields
// a 400 carrying the full validation error list instead of any XML.
func GenerateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := plan.DecodeJSON(r.Body)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}

		doc, err := jmx.Generate(p)
		if err != nil {
			var verr *jmx.ValidationError
			if errors.As(err, &verr) {
				writeJSON(w, r, http.StatusBadRequest, map[string]any{
					"error":   "test plan validation failed",
					"details": verr.Result.Errors,
				})
				return
			}
			writeError(w, r, http.StatusInternalServerError, err.Error())
			return
		}

		ctxlog.FromContext(r.Context()).Info("Generated JMX document.",
			"plan", p.Name, "components", p.Len())
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(doc))
	}
}
