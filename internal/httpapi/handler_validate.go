package httpapi

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/specialistvlad/jmxforge/internal/plan"
	"github.com/specialistvlad/jmxforge/internal/validate"
)

// ValidateComponentHandler checks a single component against the catalog.
func ValidateComponentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var c plan.Component
		if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid component payload: "+err.Error())
			return
		}
		writeJSON(w, r, http.StatusOK, validate.Component(&c))
	}
}

// ValidatePlanHandler checks a whole plan.
func ValidatePlanHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := plan.DecodeJSON(r.Body)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, r, http.StatusOK, validate.Plan(p))
	}
}
