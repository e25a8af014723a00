package catalog

// Category is the coarse classification of a component type. Hierarchy rules
// are expressed in terms of categories, not concrete types.
type Category string

const (
	CategoryRoot       Category = "root"
	CategoryThreads    Category = "threads"
	CategorySampler    Category = "sampler"
	CategoryController Category = "controller"
	CategoryConfig     Category = "config_element"
	CategoryListener   Category = "listener"
	CategoryAssertion  Category = "assertion"
	CategoryTimer      Category = "timer"

	// CategoryUnknown is carried only by the synthetic "unknown" type. It is
	// exempt from allowed-children enforcement because nothing meaningful can
	// be said about an element the parser could not classify.
	CategoryUnknown Category = "unknown"
)

// Kind identifies how a property value is typed and edited.
type Kind string

const (
	KindString       Kind = "string"
	KindNumber       Kind = "number"
	KindBoolean      Kind = "boolean"
	KindSelect       Kind = "select"
	KindTextarea     Kind = "textarea"
	KindKeyValueList Kind = "key_value_list"
	KindStringList   Kind = "string_list"
)

// Property defines a single schema property: its kind, default value and
// optional constraints. Placeholder is editor hint text and carries no
// semantic weight.
type Property struct {
	Name        string   `json:"name"`
	Kind        Kind     `json:"kind"`
	Default     any      `json:"default"`
	Required    bool     `json:"required,omitempty"`
	Min         *float64 `json:"min,omitempty"`
	Max         *float64 `json:"max,omitempty"`
	Options     []string `json:"options,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
}

// Schema is one catalog entry: a component type with its display metadata,
// ordered properties and the categories it accepts as children. An empty
// AllowedChildren set means no restriction is enforced.
type Schema struct {
	Type            string     `json:"type"`
	DisplayName     string     `json:"display_name"`
	Category        Category   `json:"category"`
	Icon            string     `json:"icon,omitempty"`
	Description     string     `json:"description,omitempty"`
	Properties      []Property `json:"properties"`
	AllowedChildren []Category `json:"allowed_children,omitempty"`
}

// Property returns the definition of the named property, if declared.
func (s *Schema) Property(name string) (*Property, bool) {
	for i := range s.Properties {
		if s.Properties[i].Name == name {
			return &s.Properties[i], true
		}
	}
	return nil, false
}

// Default returns the schema default for the named property, or nil when the
// property is not declared.
func (s *Schema) Default(name string) any {
	if p, ok := s.Property(name); ok {
		return p.Default
	}
	return nil
}

// AllowsChild reports whether a child of the given category may be attached
// under this component type. An empty AllowedChildren set allows everything,
// and unknown-category children are never rejected.
func (s *Schema) AllowsChild(cat Category) bool {
	if len(s.AllowedChildren) == 0 || cat == CategoryUnknown {
		return true
	}
	for _, allowed := range s.AllowedChildren {
		if allowed == cat {
			return true
		}
	}
	return false
}

func bound(v float64) *float64 { return &v }
