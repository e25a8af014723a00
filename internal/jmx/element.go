package jmx

import (
	"encoding/xml"
	"io"
	"strings"
)

// element is a minimal DOM node: just enough structure for the positional
// hashTree walk and attribute-filtered property lookups.
type element struct {
	name     string
	attrs    map[string]string
	text     string
	children []*element
}

// decodeTree reads a whole XML document into an element tree. Any
// well-formedness error is returned as-is; the caller decides whether that
// is fatal.
func decodeTree(r io.Reader) (*element, error) {
	dec := xml.NewDecoder(r)
	root := &element{name: ""} // synthetic holder for the document element
	stack := []*element{root}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			e := &element{name: t.Name.Local, attrs: make(map[string]string, len(t.Attr))}
			for _, a := range t.Attr {
				e.attrs[a.Name.Local] = a.Value
			}
			parent := stack[len(stack)-1]
			parent.children = append(parent.children, e)
			stack = append(stack, e)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			cur := stack[len(stack)-1]
			cur.text += string(t)
		}
	}

	if len(root.children) == 0 {
		return nil, io.ErrUnexpectedEOF
	}
	return root.children[0], nil
}

// attr returns the named attribute or a fallback when absent.
func (e *element) attr(name, fallback string) string {
	if v, ok := e.attrs[name]; ok {
		return v
	}
	return fallback
}

// child returns the first direct child with the given element name.
func (e *element) child(name string) *element {
	for _, c := range e.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// find searches the subtree (depth-first, excluding e itself) for the first
// element with the given name whose attribute matches. An empty attrName
// matches any element of that name.
func (e *element) find(name, attrName, attrValue string) *element {
	for _, c := range e.children {
		if c.name == name && (attrName == "" || c.attrs[attrName] == attrValue) {
			return c
		}
		if found := c.find(name, attrName, attrValue); found != nil {
			return found
		}
	}
	return nil
}

// findAll collects every direct child with the given name.
func (e *element) findAll(name string) []*element {
	var out []*element
	for _, c := range e.children {
		if c.name == name {
			out = append(out, c)
		}
	}
	return out
}

// stringProp returns the text of the named <stringProp>, or the fallback
// when the property is absent.
func (e *element) stringProp(name, fallback string) string {
	p := e.find("stringProp", "name", name)
	if p == nil {
		return fallback
	}
	return strings.TrimSpace(p.text)
}

// boolProp returns the value of the named <boolProp>, or the fallback when
// the property is absent or carries anything but a boolean literal.
func (e *element) boolProp(name string, fallback bool) bool {
	p := e.find("boolProp", "name", name)
	if p == nil {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(p.text)) {
	case "true":
		return true
	case "false":
		return false
	}
	return fallback
}
