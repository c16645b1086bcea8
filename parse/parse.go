package parse

import (
	"fmt"

	"github.com/attrtree/go-attrtree/format"
	"github.com/attrtree/go-attrtree/ir"
	"github.com/goccy/go-yaml"
)

// Parse decodes one JSON or YAML document, JSON by default. Mappings
// become Nodes with their keys in document order, integers stay ints and
// sequences become lists.
func Parse(d []byte, opts ...ParseOption) (ir.Value, error) {
	pOpts := &parseOpts{}
	for _, opt := range opts {
		opt(pOpts)
	}
	var (
		v   ir.Value
		err error
	)
	switch pOpts.format {
	case format.JSONFormat:
		v, err = ir.FromJSON(d)
	case format.YAMLFormat:
		v, err = parseYAML(d, pOpts)
	default:
		return ir.Value{}, fmt.Errorf("%w: cannot parse %s", format.ErrBadFormat, pOpts.format)
	}
	if err != nil {
		return ir.Value{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if pOpts.maxDepth > 0 {
		if depth := depthOf(v); depth > pOpts.maxDepth {
			return ir.Value{}, fmt.Errorf("%w: depth %d exceeds %d", ErrParse, depth, pOpts.maxDepth)
		}
	}
	return v, nil
}

// ParseNode is like Parse but requires the document to be a mapping.
func ParseNode(d []byte, opts ...ParseOption) (*ir.Node, error) {
	v, err := Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	if v.Type != ir.NodeType {
		return nil, fmt.Errorf("%w: got %s", ErrNotNode, v.Type)
	}
	return v.Node, nil
}

func parseYAML(d []byte, pOpts *parseOpts) (ir.Value, error) {
	var doc any
	if err := yaml.UnmarshalWithOptions(d, &doc, pOpts.yamlOpts()...); err != nil {
		return ir.Value{}, err
	}
	x, err := fromYAML(doc, false)
	if err != nil {
		return ir.Value{}, err
	}
	return ir.ValueOf(x), nil
}

// fromYAML turns ordered YAML data into data [ir.ValueOf] understands.
// Sequences used as keys become tuples.
func fromYAML(x any, key bool) (any, error) {
	switch v := x.(type) {
	case yaml.MapSlice:
		if key {
			return nil, ErrMapKey
		}
		res := make(ir.Map, 0, len(v))
		for _, item := range v {
			k, err := fromYAML(item.Key, true)
			if err != nil {
				return nil, err
			}
			if _, err := ir.KeyOf(k); err != nil {
				return nil, err
			}
			val, err := fromYAML(item.Value, false)
			if err != nil {
				return nil, fmt.Errorf("%v: %w", item.Key, err)
			}
			res = append(res, ir.P(k, val))
		}
		return res, nil
	case []any:
		res := make([]any, len(v))
		for i := range v {
			elt, err := fromYAML(v[i], key)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			res[i] = elt
		}
		if key {
			return ir.Tuple(res), nil
		}
		return res, nil
	}
	return x, nil
}

func depthOf(v ir.Value) int {
	res := 0
	switch v.Type {
	case ir.NodeType:
		for _, x := range v.Node.Values() {
			res = max(res, depthOf(x))
		}
	case ir.ListType, ir.TupleType:
		for _, x := range v.Values {
			res = max(res, depthOf(x))
		}
	default:
		return 0
	}
	return res + 1
}
