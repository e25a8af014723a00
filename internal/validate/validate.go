package validate

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/jmxforge/internal/catalog"
	"github.com/specialistvlad/jmxforge/internal/plan"
)

// Result is the outcome of a validation pass. Errors make the subject
// invalid; warnings never do.
type Result struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func newResult() Result {
	return Result{Errors: []string{}, Warnings: []string{}}
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func (r *Result) finish() Result {
	r.Valid = len(r.Errors) == 0
	return *r
}

// Component validates a single component against its catalog schema.
func Component(c *plan.Component) Result {
	res := newResult()

	schema, ok := catalog.Lookup(c.Type)
	if !ok {
		res.errorf("unknown component type: %s", c.Type)
		return res.finish()
	}

	for _, prop := range schema.Properties {
		value, present := c.Properties[prop.Name]
		if !present {
			if prop.Required {
				res.errorf("missing required property: %s", prop.Name)
			}
			continue
		}
		checkValue(&res, prop, value)
	}

	// Soft check: a request without a target is almost certainly a mistake,
	// but JMeter will still load the plan.
	if c.Type == "http_request" {
		domain, _ := c.Properties["domain"].(string)
		path, _ := c.Properties["path"].(string)
		if domain == "" && !strings.HasPrefix(path, "http") {
			res.warnf("HTTP Request should have a domain or full URL in path")
		}
	}

	return res.finish()
}

func checkValue(res *Result, prop catalog.Property, value any) {
	switch prop.Kind {
	case catalog.KindNumber:
		n, isNumber := plan.Number(value)
		if !isNumber {
			// Optional numeric fields may carry an empty string placeholder.
			if s, isString := value.(string); isString && s == "" {
				return
			}
			res.errorf("property '%s' must be a number", prop.Name)
			return
		}
		if prop.Min != nil && n < *prop.Min {
			res.errorf("property '%s' must be >= %v", prop.Name, *prop.Min)
		}
		if prop.Max != nil && n > *prop.Max {
			res.errorf("property '%s' must be <= %v", prop.Name, *prop.Max)
		}
	case catalog.KindBoolean:
		if _, isBool := value.(bool); !isBool {
			res.errorf("property '%s' must be a boolean", prop.Name)
		}
	}
}

// Plan validates the whole tree: per-component schema conformance plus the
// structural rules that only make sense at plan scope.
func Plan(p *plan.TestPlan) Result {
	res := newResult()

	hasThreads := false
	for _, c := range p.Components {
		if schema, ok := catalog.Lookup(c.Type); ok && schema.Category == catalog.CategoryThreads {
			hasThreads = true
			break
		}
	}
	if !hasThreads {
		res.errorf("test plan must contain at least one Thread Group")
	}

	// Iterate the owning map rather than walking from the roots so that even
	// a component orphaned by a broken parent reference is still checked.
	for _, c := range p.Components {
		cr := Component(c)
		for _, e := range cr.Errors {
			res.errorf("component '%s': %s", c.Name, e)
		}
		for _, w := range cr.Warnings {
			res.warnf("component '%s': %s", c.Name, w)
		}
	}

	for _, c := range p.Components {
		if c.Parent == "" {
			continue
		}
		parent, ok := p.Components[c.Parent]
		if !ok {
			res.errorf("component '%s' has invalid parent reference", c.Name)
			continue
		}
		parentSchema, ok := catalog.Lookup(parent.Type)
		if !ok {
			continue // reported as an unknown type on the parent itself
		}
		childCategory := catalog.CategoryUnknown
		if childSchema, ok := catalog.Lookup(c.Type); ok {
			childCategory = childSchema.Category
		}
		if !parentSchema.AllowsChild(childCategory) {
			res.errorf("component '%s' cannot be a child of '%s'", c.Name, parent.Name)
		}
	}

	return res.finish()
}
