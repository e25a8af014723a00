package plan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONRoundTrip(t *testing.T) {
	p := Sample()

	var buf strings.Builder
	require.NoError(t, p.EncodeJSON(&buf))

	got, err := DecodeJSON(strings.NewReader(buf.String()))
	require.NoError(t, err)

	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, p.Name, got.Name)
	assert.Equal(t, p.RootComponents, got.RootComponents)
	require.Equal(t, p.Len(), got.Len())

	for id, want := range p.Components {
		c, ok := got.Get(id)
		require.True(t, ok, "component %s missing after round trip", id)
		assert.Equal(t, want.Type, c.Type)
		assert.Equal(t, want.Name, c.Name)
		assert.Equal(t, want.Enabled, c.Enabled)
		assert.Equal(t, want.Children, c.Children)
		assert.Equal(t, want.Parent, c.Parent)
	}

	// Decoded numbers come back as float64; the accessor view is unchanged.
	tgID := got.Components[got.RootComponents[0]].Children[0]
	tg, _ := got.Get(tgID)
	n, ok := tg.Int("num_threads")
	require.True(t, ok)
	assert.Equal(t, 10, n)
}

func TestDecodeJSONDefaults(t *testing.T) {
	t.Run("enabled defaults to true when omitted", func(t *testing.T) {
		in := `{
			"id": "plan_x",
			"name": "p",
			"components": {
				"comp_a": {"id": "comp_a", "type": "http_request", "name": "Req", "properties": {}},
				"comp_b": {"id": "comp_b", "type": "http_request", "name": "Off", "enabled": false, "properties": {}}
			},
			"root_components": ["comp_a", "comp_b"]
		}`
		p, err := DecodeJSON(strings.NewReader(in))
		require.NoError(t, err)
		assert.True(t, p.Components["comp_a"].Enabled)
		assert.False(t, p.Components["comp_b"].Enabled)
	})

	t.Run("nil components map is materialized", func(t *testing.T) {
		p, err := DecodeJSON(strings.NewReader(`{"id": "plan_x", "name": "p"}`))
		require.NoError(t, err)
		require.NotNil(t, p.Components)
		assert.Equal(t, 0, p.Len())
	})

	t.Run("malformed input", func(t *testing.T) {
		_, err := DecodeJSON(strings.NewReader(`{"id": `))
		assert.ErrorContains(t, err, "decode test plan")
	})
}

func TestSample(t *testing.T) {
	p := Sample()
	require.Equal(t, 5, p.Len())
	require.Len(t, p.RootComponents, 1)

	root, ok := p.Get(p.RootComponents[0])
	require.True(t, ok)
	assert.Equal(t, "test_plan", root.Type)
	require.Len(t, root.Children, 1)

	tg, _ := p.Get(root.Children[0])
	assert.Equal(t, "thread_group", tg.Type)
	assert.Len(t, tg.Children, 3)

	var types []string
	p.Walk(func(c *Component, depth int) { types = append(types, c.Type) })
	assert.Equal(t, []string{
		"test_plan", "thread_group", "http_request", "header_manager", "view_results_tree",
	}, types)
}
