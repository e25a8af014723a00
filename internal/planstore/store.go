package planstore

import (
	"sort"
	"sync"

	"github.com/specialistvlad/jmxforge/internal/plan"
)

// Store is an in-memory plan registry safe for concurrent use.
type Store struct {
	plans sync.Map // key: plan id string, value: *plan.TestPlan
}

// New creates a new, empty plan store.
func New() *Store {
	return &Store{}
}

// Put inserts or replaces a plan under its own id.
func (s *Store) Put(p *plan.TestPlan) {
	s.plans.Store(p.ID, p)
}

// Get retrieves a plan by id.
func (s *Store) Get(id string) (*plan.TestPlan, bool) {
	v, ok := s.plans.Load(id)
	if !ok {
		return nil, false
	}
	return v.(*plan.TestPlan), true
}

// Delete removes a plan by id. Deleting an absent id is a no-op.
func (s *Store) Delete(id string) {
	s.plans.Delete(id)
}

// List returns every stored plan, ordered by id for stable output.
func (s *Store) List() []*plan.TestPlan {
	var out []*plan.TestPlan
	s.plans.Range(func(_, v any) bool {
		out = append(out, v.(*plan.TestPlan))
		return true
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
