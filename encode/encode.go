package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/attrtree/go-attrtree/format"
	"github.com/attrtree/go-attrtree/ir"
	"github.com/goccy/go-yaml"
)

type EncState struct {
	col           int
	depth, indent int

	format format.Format
	colors *Colors

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes n to w followed by a newline, as JSON by default.
func Encode(n *ir.Node, w io.Writer, opts ...EncodeOption) error {
	return EncodeValue(ir.FromNode(n), w, opts...)
}

// EncodeValue is Encode for any Value.
func EncodeValue(v ir.Value, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.JSONFormat:
		if err := encodeJSON(v, w, es); err != nil {
			return err
		}
		return writeString(w, "\n")
	case format.YAMLFormat:
		return encodeYAML(v, w, es)
	case format.ReprFormat:
		return writeString(w, v.Repr()+"\n")
	}
	return fmt.Errorf("%w: %s", format.ErrBadFormat, es.format)
}

// Helper functions for writing
func writeNL(w io.Writer, es *EncState) error {
	if es.indent == 0 {
		return nil
	}
	indentString := strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
	if err := writeString(w, "\n"+indentString); err != nil {
		return err
	}
	es.col = len(indentString)
	return nil
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeColored(w io.Writer, es *EncState, t ir.Type, a ColorAttr, s string) error {
	if es.Color != nil {
		s = es.Color(t, a, s)
	}
	es.col += len(s)
	return writeString(w, s)
}

func encodeJSON(v ir.Value, w io.Writer, es *EncState) error {
	switch v.Type {
	case ir.NodeType:
		entries := v.Node.Entries()
		if len(entries) == 0 {
			return writeColored(w, es, ir.NodeType, SepColor, "{}")
		}
		if err := writeColored(w, es, ir.NodeType, SepColor, "{"); err != nil {
			return err
		}
		es.depth++
		for i, e := range entries {
			if i != 0 {
				if err := writeColored(w, es, ir.NodeType, SepColor, ","); err != nil {
					return err
				}
			}
			if err := writeNL(w, es); err != nil {
				return err
			}
			k, err := ir.JSONKey(e.Key)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrEncoding, err)
			}
			kd, err := ir.FromString(k).MarshalJSON()
			if err != nil {
				return err
			}
			if err := writeColored(w, es, e.Key.Type, FieldColor, string(kd)); err != nil {
				return err
			}
			sep := ":"
			if es.indent != 0 {
				sep = ": "
			}
			if err := writeColored(w, es, ir.NodeType, SepColor, sep); err != nil {
				return err
			}
			if err := encodeJSON(e.Value, w, es); err != nil {
				return err
			}
		}
		es.depth--
		if err := writeNL(w, es); err != nil {
			return err
		}
		return writeColored(w, es, ir.NodeType, SepColor, "}")
	case ir.ListType, ir.TupleType:
		if len(v.Values) == 0 {
			return writeColored(w, es, v.Type, SepColor, "[]")
		}
		if err := writeColored(w, es, v.Type, SepColor, "["); err != nil {
			return err
		}
		es.depth++
		for i, x := range v.Values {
			if i != 0 {
				if err := writeColored(w, es, v.Type, SepColor, ","); err != nil {
					return err
				}
			}
			if err := writeNL(w, es); err != nil {
				return err
			}
			if err := encodeJSON(x, w, es); err != nil {
				return err
			}
		}
		es.depth--
		if err := writeNL(w, es); err != nil {
			return err
		}
		return writeColored(w, es, v.Type, SepColor, "]")
	}
	d, err := v.MarshalJSON()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return writeColored(w, es, v.Type, ValueColor, string(d))
}

func encodeYAML(v ir.Value, w io.Writer, es *EncState) error {
	x, err := toYAML(v)
	if err != nil {
		return err
	}
	indent := es.indent
	if indent == 0 {
		indent = 2
	}
	d, err := yaml.MarshalWithOptions(x, yaml.Indent(indent), yaml.IndentSequence(true))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	if es.colors == nil {
		_, err = w.Write(d)
		return err
	}
	return writeString(w, colorYAML(string(d)))
}

// toYAML converts v to ordered data for the YAML encoder. Keys are
// written as strings the same way JSON member names are, so tuple keys
// cannot be written.
func toYAML(v ir.Value) (any, error) {
	switch v.Type {
	case ir.NodeType:
		res := make(yaml.MapSlice, 0, v.Node.Len())
		for _, e := range v.Node.Entries() {
			k, err := ir.JSONKey(e.Key)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
			}
			x, err := toYAML(e.Value)
			if err != nil {
				return nil, err
			}
			res = append(res, yaml.MapItem{Key: k, Value: x})
		}
		return res, nil
	case ir.ListType, ir.TupleType:
		res := make([]any, len(v.Values))
		for i := range v.Values {
			x, err := toYAML(v.Values[i])
			if err != nil {
				return nil, err
			}
			res[i] = x
		}
		return res, nil
	}
	return ir.ToPlainValue(v), nil
}
