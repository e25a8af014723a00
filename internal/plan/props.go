package plan

import (
	"fmt"
	"strconv"

	"github.com/specialistvlad/jmxforge/internal/catalog"
)

// Header is one entry of a key_value_list property, preserving list order.
type Header struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Number reports whether v carries a numeric value and returns it as float64.
// Every decoder in the repo produces one of these representations: authored
// plans use int, JSON decoding yields float64, HCL conversion yields int64.
func Number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	}
	return 0, false
}

// Text returns the named property rendered as plain text, falling back to
// the schema default when the property is absent. Booleans render as
// "true"/"false" and nil renders as the empty string, which the JMX dialect
// permits for optional numeric fields.
func (c *Component) Text(name string) string {
	v, ok := c.Properties[name]
	if !ok {
		v = schemaDefault(c.Type, name)
	}
	return scalarText(v)
}

// Bool returns the named property as a boolean, falling back to the schema
// default for absent or non-boolean values.
func (c *Component) Bool(name string) bool {
	if v, ok := c.Properties[name]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	if d, ok := schemaDefault(c.Type, name).(bool); ok {
		return d
	}
	return false
}

// Int returns the named property as an integer when it carries a whole
// numeric value.
func (c *Component) Int(name string) (int, bool) {
	if n, ok := Number(c.Properties[name]); ok {
		return int(n), true
	}
	return 0, false
}

// HeaderList coerces a key_value_list property into its entries. It accepts
// both the native []Header form and the []any-of-maps form produced by JSON
// decoding; malformed entries are skipped.
func (c *Component) HeaderList(name string) []Header {
	switch v := c.Properties[name].(type) {
	case []Header:
		return v
	case []any:
		var out []Header
		for _, item := range v {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			key, _ := m["key"].(string)
			value, _ := m["value"].(string)
			if key != "" {
				out = append(out, Header{Key: key, Value: value})
			}
		}
		return out
	}
	return nil
}

// StringList coerces a string_list property into its entries.
func (c *Component) StringList(name string) []string {
	switch v := c.Properties[name].(type) {
	case []string:
		return v
	case []any:
		var out []string
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func schemaDefault(typeTag, name string) any {
	if schema, ok := catalog.Lookup(typeTag); ok {
		return schema.Default(name)
	}
	return nil
}

func scalarText(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case bool:
		return strconv.FormatBool(s)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case float64:
		// Whole numbers are by far the common case; keep them free of a
		// trailing ".0" so generated documents match hand-written ones.
		if s == float64(int64(s)) {
			return strconv.FormatInt(int64(s), 10)
		}
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
