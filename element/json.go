package element

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
)

// FromJSON normalizes a JSON resource document into the equivalent
// XML-form element tree: the "resourceType" member becomes the root
// element name, object members become child elements, scalars become
// "value" attributes and arrays repeat the element. Members starting
// with "_" (primitive element extensions) are skipped.
func FromJSON(data []byte) (*Element, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("malformed json: %w", err)
	}

	name, _ := raw["resourceType"].(string)
	if name == "" {
		return nil, fmt.Errorf("json document has no resourceType")
	}

	root := &Element{Name: name, Attrs: map[string]string{}}
	if err := appendMembers(root, raw); err != nil {
		return nil, err
	}
	return root, nil
}

// ParseJSONFile normalizes the JSON file at path into an element tree.
func ParseJSONFile(path string) (*Element, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return FromJSON(data)
}

func appendMembers(parent *Element, obj map[string]any) error {
	for _, key := range sortedKeys(obj) {
		if key == "resourceType" || (len(key) > 0 && key[0] == '_') {
			continue
		}
		if err := appendValue(parent, key, obj[key]); err != nil {
			return err
		}
	}
	return nil
}

func appendValue(parent *Element, name string, value any) error {
	switch v := value.(type) {
	case map[string]any:
		child := &Element{Name: name, Attrs: map[string]string{}}
		parent.Children = append(parent.Children, child)
		return appendMembers(child, v)
	case []any:
		for _, item := range v {
			if err := appendValue(parent, name, item); err != nil {
				return err
			}
		}
		return nil
	case nil:
		return nil
	default:
		child := &Element{
			Name:  name,
			Attrs: map[string]string{"value": scalarString(v)},
		}
		parent.Children = append(parent.Children, child)
		return nil
	}
}

func scalarString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	case bool:
		return strconv.FormatBool(s)
	default:
		return fmt.Sprintf("%v", s)
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// Keep deterministic child order; JSON object order is not
	// preserved by encoding/json maps.
	sort.Strings(keys)
	return keys
}
