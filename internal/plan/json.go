package plan

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// UnmarshalJSON keeps the enabled flag defaulting to true when the
// interchange form omits it.
func (c *Component) UnmarshalJSON(data []byte) error {
	type alias Component
	tmp := alias{Enabled: true}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*c = Component(tmp)
	return nil
}

// DecodeJSON reads a test plan from its JSON interchange form.
func DecodeJSON(r io.Reader) (*TestPlan, error) {
	var p TestPlan
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode test plan: %w", err)
	}
	if p.Components == nil {
		p.Components = make(map[string]*Component)
	}
	return &p, nil
}

// EncodeJSON writes the plan in its JSON interchange form.
func (p *TestPlan) EncodeJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encode test plan: %w", err)
	}
	return nil
}
