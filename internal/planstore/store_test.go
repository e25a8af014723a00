package planstore

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/jmxforge/internal/plan"
)

func TestStore(t *testing.T) {
	s := New()

	a := plan.New("A")
	b := plan.New("B")
	s.Put(a)
	s.Put(b)

	got, ok := s.Get(a.ID)
	require.True(t, ok)
	assert.Same(t, a, got)

	_, ok = s.Get("plan_missing")
	assert.False(t, ok)

	list := s.List()
	require.Len(t, list, 2)
	assert.Less(t, list[0].ID, list[1].ID, "listing is ordered by id")

	s.Delete(a.ID)
	_, ok = s.Get(a.ID)
	assert.False(t, ok)
	assert.Len(t, s.List(), 1)

	// Absent id is a no-op.
	s.Delete(a.ID)
	assert.Len(t, s.List(), 1)
}

func TestStorePutReplaces(t *testing.T) {
	s := New()
	p := plan.New("v1")
	s.Put(p)

	p2 := *p
	p2.Name = "v2"
	s.Put(&p2)

	got, ok := s.Get(p.ID)
	require.True(t, ok)
	assert.Equal(t, "v2", got.Name)
	assert.Len(t, s.List(), 1)
}

func TestStoreConcurrentAccess(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p := plan.New("worker")
			s.Put(p)
			_, _ = s.Get(p.ID)
			_ = s.List()
			s.Delete(p.ID)
		}()
	}
	wg.Wait()
	assert.Empty(t, s.List())
}
