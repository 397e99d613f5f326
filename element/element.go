package element

import "strings"

// Element is one node of a generic document tree. XML documents map onto
// it directly; JSON documents are normalized into the equivalent XML
// form first (see FromJSON). Values of leaf fields live in the "value"
// attribute, following the interchange standard's XML representation.
type Element struct {
	// Name is the local element name, without namespace prefix.
	Name string

	// Attrs holds the attributes by local name.
	Attrs map[string]string

	// Text is the character data directly inside the element.
	Text string

	// Children are the child elements in document order.
	Children []*Element
}

// Attr returns the named attribute or "".
func (e *Element) Attr(name string) string {
	if e == nil || e.Attrs == nil {
		return ""
	}
	return e.Attrs[name]
}

// Value returns the "value" attribute if present, else the text content.
func (e *Element) Value() string {
	if e == nil {
		return ""
	}
	if v, ok := e.Attrs["value"]; ok {
		return v
	}
	return strings.TrimSpace(e.Text)
}

// Named returns all direct children with the given name.
func (e *Element) Named(name string) []*Element {
	if e == nil {
		return nil
	}
	var out []*Element
	for _, c := range e.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// First walks the path of child names and returns the first match at
// each step, or nil if any step has no match.
func (e *Element) First(path ...string) *Element {
	cur := e
	for _, name := range path {
		if cur == nil {
			return nil
		}
		var next *Element
		for _, c := range cur.Children {
			if c.Name == name {
				next = c
				break
			}
		}
		cur = next
	}
	return cur
}

// All walks the path of child names, following every match at each
// step, and returns all elements reached at the end of the path.
func (e *Element) All(path ...string) []*Element {
	if e == nil {
		return nil
	}
	frontier := []*Element{e}
	for _, name := range path {
		var next []*Element
		for _, el := range frontier {
			next = append(next, el.Named(name)...)
		}
		frontier = next
	}
	return frontier
}

// ValueOf returns First(path...).Value().
func (e *Element) ValueOf(path ...string) string {
	return e.First(path...).Value()
}

// Contains reports whether the given string occurs anywhere in this
// subtree: in text content or attribute values. Element names are not
// searched.
func (e *Element) Contains(s string) bool {
	if e == nil || s == "" {
		return false
	}
	if strings.Contains(e.Text, s) {
		return true
	}
	for _, v := range e.Attrs {
		if strings.Contains(v, s) {
			return true
		}
	}
	for _, c := range e.Children {
		if c.Contains(s) {
			return true
		}
	}
	return false
}
