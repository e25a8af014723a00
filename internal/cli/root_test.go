package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/jmxforge/internal/plan"
)

func TestLoadPlan(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	t.Run("json plan", func(t *testing.T) {
		var buf strings.Builder
		require.NoError(t, plan.Sample().EncodeJSON(&buf))
		path := filepath.Join(dir, "sample.json")
		require.NoError(t, os.WriteFile(path, []byte(buf.String()), 0o644))

		p, err := loadPlan(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, "Sample Test Plan", p.Name)
		assert.Equal(t, 5, p.Len())
	})

	t.Run("hcl plan", func(t *testing.T) {
		path := filepath.Join(dir, "tiny.hcl")
		require.NoError(t, os.WriteFile(path, []byte(`
plan "Tiny" {
  component "test_plan" {
    component "thread_group" {}
  }
}
`), 0o644))

		p, err := loadPlan(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, "Tiny", p.Name)
		assert.Equal(t, 2, p.Len())
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := loadPlan(ctx, filepath.Join(dir, "plan.toml"))
		assert.ErrorContains(t, err, "expected .hcl or .json")
	})
}
