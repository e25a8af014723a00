package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/specialistvlad/jmxforge/internal/plan"
	"github.com/specialistvlad/jmxforge/internal/planstore"
)

// planSummary is the listing shape: enough to pick a plan without shipping
// whole trees.
type planSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Components int    `json:"components"`
}

// ListPlansHandler lists stored plans.
func ListPlansHandler(store *planstore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summaries := []planSummary{}
		for _, p := range store.List() {
			summaries = append(summaries, planSummary{ID: p.ID, Name: p.Name, Components: p.Len()})
		}
		writeJSON(w, r, http.StatusOK, map[string]any{"plans": summaries})
	}
}

// CreatePlanHandler stores a plan supplied in interchange form.
func CreatePlanHandler(store *planstore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := plan.DecodeJSON(r.Body)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		store.Put(p)
		writeJSON(w, r, http.StatusCreated, map[string]string{"id": p.ID})
	}
}

// GetPlanHandler fetches one stored plan.
func GetPlanHandler(store *planstore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := store.Get(chi.URLParam(r, "id"))
		if !ok {
			writeError(w, r, http.StatusNotFound, "plan not found")
			return
		}
		writeJSON(w, r, http.StatusOK, p)
	}
}

// DeletePlanHandler removes a stored plan.
func DeletePlanHandler(store *planstore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store.Delete(chi.URLParam(r, "id"))
		w.WriteHeader(http.StatusNoContent)
	}
}

// SampleHandler stores and returns the demonstration plan.
func SampleHandler(store *planstore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := plan.Sample()
		store.Put(p)
		writeJSON(w, r, http.StatusOK, map[string]any{"plan": p})
	}
}
