package hclplan

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/specialistvlad/jmxforge/internal/catalog"
	"github.com/specialistvlad/jmxforge/internal/ctxlog"
	"github.com/specialistvlad/jmxforge/internal/fsutil"
	"github.com/specialistvlad/jmxforge/internal/plan"
)

// fileRoot decodes the top-level blocks of a plan file.
type fileRoot struct {
	Plans  []*planBlock `hcl:"plan,block"`
	Remain hcl.Body     `hcl:",remain"`
}

type planBlock struct {
	Name       string            `hcl:"name,label"`
	Components []*componentBlock `hcl:"component,block"`
}

// componentBlock is self-referential: nesting in the file is the tree.
type componentBlock struct {
	Type       string            `hcl:"type,label"`
	Name       string            `hcl:"name,optional"`
	Enabled    *bool             `hcl:"enabled,optional"`
	Props      *propsBlock       `hcl:"props,block"`
	Components []*componentBlock `hcl:"component,block"`
}

type propsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// Loader reads .hcl plan files.
type Loader struct{}

// NewLoader creates a plan file loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the plan from the given path, which may be a single .hcl file
// or a directory searched recursively. Exactly one `plan` block must be
// present across all discovered files.
func (l *Loader) Load(ctx context.Context, path string) (*plan.TestPlan, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.CollectFiles(path, ".hcl")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl plan files found at %s", path)
	}
	logger.Debug("Discovered plan files.", "count", len(files))

	parser := hclparse.NewParser()
	var blocks []*planBlock

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse %s: %s", file, diags.Error())
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode %s: %s", file, diags.Error())
		}
		blocks = append(blocks, root.Plans...)
	}

	if len(blocks) != 1 {
		return nil, fmt.Errorf("expected exactly one plan block, found %d", len(blocks))
	}
	return l.translatePlan(ctx, blocks[0])
}

func (l *Loader) translatePlan(ctx context.Context, block *planBlock) (*plan.TestPlan, error) {
	p := plan.New(block.Name)
	for _, cb := range block.Components {
		if err := l.attachComponent(ctx, p, cb, ""); err != nil {
			return nil, err
		}
	}
	ctxlog.FromContext(ctx).Debug("Plan translated.", "name", p.Name, "components", p.Len())
	return p, nil
}

func (l *Loader) attachComponent(ctx context.Context, p *plan.TestPlan, cb *componentBlock, parentID string) error {
	if _, ok := catalog.Lookup(cb.Type); !ok {
		return fmt.Errorf("unknown component type %q in plan file", cb.Type)
	}

	c, err := plan.NewComponent(cb.Type, cb.Name)
	if err != nil {
		return err
	}
	if cb.Enabled != nil {
		c.Enabled = *cb.Enabled
	}

	if cb.Props != nil {
		props, err := evalProps(cb.Props.Body)
		if err != nil {
			return fmt.Errorf("component %q: %w", c.Name, err)
		}
		for name, value := range props {
			c.Properties[name] = value
		}
		// A name property set via props wins over the block label default.
		if name, ok := props["name"].(string); ok && cb.Name == "" {
			c.Name = name
		}
	}

	if err := p.Attach(c, parentID); err != nil {
		return err
	}
	for _, child := range cb.Components {
		if err := l.attachComponent(ctx, p, child, c.ID); err != nil {
			return err
		}
	}
	return nil
}

// evalProps evaluates every attribute of a props block as a literal
// expression and converts the resulting cty values to native Go values.
func evalProps(body hcl.Body) (map[string]any, error) {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid props block: %s", diags.Error())
	}

	props := make(map[string]any, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("property %q: %s", name, diags.Error())
		}
		native, err := ctyToNative(val)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", name, err)
		}
		props[name] = native
	}
	return props, nil
}
