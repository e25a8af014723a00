package plan

import (
	"fmt"
	"slices"

	"github.com/specialistvlad/jmxforge/internal/catalog"
	"github.com/specialistvlad/jmxforge/internal/planid"
)

// Component is one node of the test-plan tree. The ID is opaque and unique
// within the owning plan; Parent is a weak back-reference and the empty
// string for root components.
type Component struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Name       string         `json:"name"`
	Enabled    bool           `json:"enabled"`
	Properties map[string]any `json:"properties"`
	Children   []string       `json:"children"`
	Parent     string         `json:"parent,omitempty"`
}

// TestPlan is the aggregate root. Components maps every component id in the
// tree; RootComponents lists the ids that have no parent, in order.
type TestPlan struct {
	ID             string                `json:"id"`
	Name           string                `json:"name"`
	Components     map[string]*Component `json:"components"`
	RootComponents []string              `json:"root_components"`
}

// New creates an empty test plan.
func New(name string) *TestPlan {
	return &TestPlan{
		ID:         planid.NewPlan(),
		Name:       name,
		Components: make(map[string]*Component),
	}
}

// NewComponent creates a fresh component of the given type with every schema
// property set to its default. The type tag must resolve in the catalog.
func NewComponent(typeTag, name string) (*Component, error) {
	schema, ok := catalog.Lookup(typeTag)
	if !ok {
		return nil, fmt.Errorf("unknown component type: %s", typeTag)
	}
	if name == "" {
		name = schema.DisplayName
	}

	props := make(map[string]any, len(schema.Properties))
	for _, p := range schema.Properties {
		props[p.Name] = p.Default
	}
	props["name"] = name

	return &Component{
		ID:         planid.New(),
		Type:       typeTag,
		Name:       name,
		Enabled:    true,
		Properties: props,
	}, nil
}

// Attach inserts a component into the plan under parentID, or as a root
// component when parentID is empty. The component id must not already exist
// in the plan and a non-empty parentID must resolve.
func (p *TestPlan) Attach(c *Component, parentID string) error {
	if c.ID == "" {
		c.ID = planid.New()
	}
	if _, exists := p.Components[c.ID]; exists {
		return fmt.Errorf("component id already present in plan: %s", c.ID)
	}

	if parentID == "" {
		c.Parent = ""
		p.Components[c.ID] = c
		p.RootComponents = append(p.RootComponents, c.ID)
		return nil
	}

	parent, ok := p.Components[parentID]
	if !ok {
		return fmt.Errorf("parent not found: %s", parentID)
	}
	c.Parent = parentID
	p.Components[c.ID] = c
	parent.Children = append(parent.Children, c.ID)
	return nil
}

// Get returns the component with the given id, if present.
func (p *TestPlan) Get(id string) (*Component, bool) {
	c, ok := p.Components[id]
	return c, ok
}

// Remove deletes the component and its entire subtree from the plan. The
// cascade keeps the tree consistent: a deleted node's descendants would
// otherwise hold a dangling parent reference. Removing an id that is not in
// the plan is a no-op.
func (p *TestPlan) Remove(id string) {
	c, ok := p.Components[id]
	if !ok {
		return
	}

	for _, childID := range slices.Clone(c.Children) {
		p.Remove(childID)
	}

	if c.Parent == "" {
		p.RootComponents = deleteID(p.RootComponents, id)
	} else if parent, ok := p.Components[c.Parent]; ok {
		parent.Children = deleteID(parent.Children, id)
	}
	delete(p.Components, id)
}

// Reparent relinks a component (with its subtree intact) under a new parent,
// or to the root list when newParentID is empty. It refuses to create a
// cycle: the new parent must not be the component itself or one of its
// descendants.
func (p *TestPlan) Reparent(id, newParentID string) error {
	c, ok := p.Components[id]
	if !ok {
		return fmt.Errorf("component not found: %s", id)
	}
	if newParentID != "" {
		if _, ok := p.Components[newParentID]; !ok {
			return fmt.Errorf("parent not found: %s", newParentID)
		}
		for cur := newParentID; cur != ""; {
			if cur == id {
				return fmt.Errorf("cannot reparent %s under its own subtree", id)
			}
			cur = p.Components[cur].Parent
		}
	}

	if c.Parent == "" {
		p.RootComponents = deleteID(p.RootComponents, id)
	} else if old, ok := p.Components[c.Parent]; ok {
		old.Children = deleteID(old.Children, id)
	}

	c.Parent = newParentID
	if newParentID == "" {
		p.RootComponents = append(p.RootComponents, id)
	} else {
		parent := p.Components[newParentID]
		parent.Children = append(parent.Children, id)
	}
	return nil
}

// Walk visits every component depth-first, preserving child-list order at
// each level. The walk starts from RootComponents; ids that do not resolve
// are skipped.
func (p *TestPlan) Walk(visit func(c *Component, depth int)) {
	var descend func(ids []string, depth int)
	descend = func(ids []string, depth int) {
		for _, id := range ids {
			c, ok := p.Components[id]
			if !ok {
				continue
			}
			visit(c, depth)
			descend(c.Children, depth+1)
		}
	}
	descend(p.RootComponents, 0)
}

// Len returns the number of components in the plan.
func (p *TestPlan) Len() int { return len(p.Components) }

func deleteID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return slices.Delete(ids, i, i+1)
		}
	}
	return ids
}
