package option

import (
	"fmt"

	"go.yaml.in/yaml/v3"
)

// List is a YAML-decodable sequence of sources. Scalars decode to
// StringOption and mappings to RecordOption.
type List []Source

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *List) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: options must be a list", node.Line)
	}
	out := make(List, 0, len(node.Content))
	for i, item := range node.Content {
		switch item.Kind {
		case yaml.ScalarNode:
			out = append(out, StringOption(item.Value))
		case yaml.MappingNode:
			var r RecordOption
			if err := item.Decode(&r); err != nil {
				return &InvalidSourceError{Index: i, Reason: err.Error()}
			}
			out = append(out, r)
		default:
			return &InvalidSourceError{Index: i, Reason: fmt.Sprintf("line %d: expected a string or a label/value map", item.Line)}
		}
	}
	*l = out
	return nil
}

// Parse decodes a YAML (or JSON) list of options.
func Parse(data []byte) ([]Source, error) {
	var l List
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parsing options: %w", err)
	}
	return l, nil
}
