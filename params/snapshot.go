package params

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Snapshot returns the current values as a nested map keyed by path segment.
func (s *Store) Snapshot() map[string]any {
	root := make(map[string]any)
	for _, path := range s.order {
		parts := strings.Split(path, ".")
		m := root
		for _, part := range parts[:len(parts)-1] {
			next, ok := m[part].(map[string]any)
			if !ok {
				next = make(map[string]any)
				m[part] = next
			}
			m = next
		}
		m[parts[len(parts)-1]] = s.entries[path].value.Interface()
	}
	return root
}

// WriteYAML encodes the current values as a YAML document, keeping groups
// and fields in definition order.
func (s *Store) WriteYAML(w io.Writer) error {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, path := range s.order {
		parts := strings.Split(path, ".")
		m := doc
		for _, part := range parts[:len(parts)-1] {
			m = mappingChild(m, part)
		}
		m.Content = append(m.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: parts[len(parts)-1]},
			scalarNode(s.entries[path].value),
		)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("params: encode yaml: %w", err)
	}
	return enc.Close()
}

func mappingChild(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	child := &yaml.Node{Kind: yaml.MappingNode}
	m.Content = append(m.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key}, child)
	return child
}

func scalarNode(v Value) *yaml.Node {
	if v.Kind() == KindColor {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.String(), Style: yaml.DoubleQuotedStyle}
	}
	// Untagged plain scalars resolve back to int/float/bool on decode.
	return &yaml.Node{Kind: yaml.ScalarNode, Value: v.String()}
}
