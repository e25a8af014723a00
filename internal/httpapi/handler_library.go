package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/specialistvlad/jmxforge/internal/catalog"
)

// LibraryHandler lists the complete component catalog in catalog order.
func LibraryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var out []*catalog.Schema
		for _, typeTag := range catalog.Types() {
			if s, ok := catalog.Lookup(typeTag); ok {
				out = append(out, s)
			}
		}
		writeJSON(w, r, http.StatusOK, map[string]any{"components": out})
	}
}

// LibraryCategoryHandler lists the catalog entries of one category.
func LibraryCategoryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cat := catalog.Category(chi.URLParam(r, "category"))
		writeJSON(w, r, http.StatusOK, map[string]any{
			"components": catalog.ListByCategory(cat),
		})
	}
}
