package element

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

// ParseXML reads an XML document into an element tree. Namespace
// prefixes are dropped; only local names are kept.
func ParseXML(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)

	var root *Element
	var stack []*Element

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{
				Name:  t.Name.Local,
				Attrs: make(map[string]string, len(t.Attr)),
			}
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
					continue
				}
				el.Attrs[a.Name.Local] = a.Value
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("malformed xml: multiple root elements")
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)

		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("malformed xml: unexpected end element %q", t.Name.Local)
			}
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) > 0 {
				cur := stack[len(stack)-1]
				cur.Text += string(t)
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("malformed xml: no root element")
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("malformed xml: unclosed element %q", stack[len(stack)-1].Name)
	}

	root.trimText()
	return root, nil
}

// ParseXMLFile parses the XML file at path into an element tree.
func ParseXMLFile(path string) (*Element, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ParseXML(f)
}

func (e *Element) trimText() {
	e.Text = strings.TrimSpace(e.Text)
	for _, c := range e.Children {
		c.trimText()
	}
}
