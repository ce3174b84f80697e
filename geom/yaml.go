package geom

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

var rectKeys = [4]string{"left", "top", "width", "height"}

// UnmarshalYAML accepts either a [left, top, width, height] sequence or a
// mapping with those keys. Integer rectangles reject non-integer scalars
// rather than truncating them.
func (r *Rect[T]) UnmarshalYAML(value *yaml.Node) error {
	var nodes [4]*yaml.Node
	switch value.Kind {
	case yaml.SequenceNode:
		if len(value.Content) != 4 {
			return fmt.Errorf("geom: decode rect: line %d: want 4 values, got %d", value.Line, len(value.Content))
		}
		copy(nodes[:], value.Content)
	case yaml.MappingNode:
		for i := 0; i+1 < len(value.Content); i += 2 {
			key, val := value.Content[i], value.Content[i+1]
			idx := -1
			for j, k := range rectKeys {
				if key.Value == k {
					idx = j
				}
			}
			if idx < 0 {
				return fmt.Errorf("geom: decode rect: line %d: unknown field %q", key.Line, key.Value)
			}
			nodes[idx] = val
		}
	default:
		return fmt.Errorf("geom: decode rect: line %d: want sequence or mapping", value.Line)
	}

	var vals [4]T
	for i, n := range nodes {
		if n == nil {
			continue
		}
		v, err := decodeYAMLScalar[T](n)
		if err != nil {
			return fmt.Errorf("geom: decode rect %s: %w", rectKeys[i], err)
		}
		vals[i] = v
	}
	*r = Rect[T]{Left: vals[0], Top: vals[1], Width: vals[2], Height: vals[3]}
	return nil
}

func decodeYAMLScalar[T Scalar](n *yaml.Node) (T, error) {
	var v T
	if n.Kind != yaml.ScalarNode {
		return v, fmt.Errorf("line %d: want a number", n.Line)
	}
	if !isFloat[T]() && n.ShortTag() != "!!int" {
		return v, fmt.Errorf("line %d: %q is not an integer", n.Line, n.Value)
	}
	if err := n.Decode(&v); err != nil {
		return v, err
	}
	return v, nil
}

// MarshalYAML writes r as a flow sequence.
func (r Rect[T]) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range [4]T{r.Left, r.Top, r.Width, r.Height} {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: fmt.Sprint(v)})
	}
	return n, nil
}
