package ir

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// irBase is the persisted form of a Value. Unlike the JSON text of a
// Node it keeps ints apart from floats, lists apart from tuples, and
// non-string keys.
type irBase struct {
	Type   Type      `json:"type"`
	Fields []*irBase `json:"fields,omitempty"`
	Values []*irBase `json:"values,omitempty"`

	Bool    bool   `json:"bool,omitempty"`
	Int64   *int64 `json:"int,omitempty"`
	Float64 string `json:"float,omitempty"`
	String  string `json:"string,omitempty"`
}

// MarshalBinary implements [encoding.BinaryMarshaler], so a Node can be
// sent through encoding/gob. A Node reachable by several paths is stored
// once per path. Opaque leaves fail with ErrOpaque and cycles fail.
func (n *Node) MarshalBinary() ([]byte, error) {
	base, err := toBase(FromNode(n), map[*Node]bool{})
	if err != nil {
		return nil, err
	}
	return json.Marshal(base)
}

// UnmarshalBinary replaces the entries of n with those encoded in d by
// [Node.MarshalBinary].
func (n *Node) UnmarshalBinary(d []byte) error {
	base := &irBase{}
	if err := json.Unmarshal(d, base); err != nil {
		return err
	}
	v, err := fromBase(base)
	if err != nil {
		return err
	}
	if v.Type != NodeType {
		return fmt.Errorf("%w: decoded %s", ErrNotNode, v.Type)
	}
	n.kl = v.Node.kl
	return nil
}

// ToBytes is n.MarshalBinary().
func ToBytes(n *Node) ([]byte, error) {
	return n.MarshalBinary()
}

// FromBytes decodes a Node encoded by [ToBytes]. The result is equal to
// the Node that was encoded.
func FromBytes(d []byte) (*Node, error) {
	n := &Node{}
	if err := n.UnmarshalBinary(d); err != nil {
		return nil, err
	}
	return n, nil
}

func toBase(v Value, visiting map[*Node]bool) (*irBase, error) {
	base := &irBase{Type: v.Type}
	switch v.Type {
	case NullType:
	case BoolType:
		base.Bool = v.Bool
	case NumberType:
		if v.Int64 != nil {
			i := *v.Int64
			base.Int64 = &i
			break
		}
		base.Float64 = strconv.FormatFloat(*v.Float64, 'g', -1, 64)
	case StringType:
		base.String = v.String
	case NodeType:
		if visiting[v.Node] {
			return nil, fmt.Errorf("cannot persist a Node containing itself")
		}
		visiting[v.Node] = true
		defer delete(visiting, v.Node)
		base.Fields = make([]*irBase, 0, v.Node.Len())
		base.Values = make([]*irBase, 0, v.Node.Len())
		for _, e := range v.Node.kl.Values {
			k, err := toBase(e.Key, visiting)
			if err != nil {
				return nil, err
			}
			x, err := toBase(e.Value, visiting)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", reprValue(e.Key), err)
			}
			base.Fields = append(base.Fields, k)
			base.Values = append(base.Values, x)
		}
	case ListType, TupleType:
		base.Values = make([]*irBase, len(v.Values))
		for i := range v.Values {
			x, err := toBase(v.Values[i], visiting)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			base.Values[i] = x
		}
	case OpaqueType:
		return nil, fmt.Errorf("%w: %T cannot be persisted", ErrOpaque, v.Opaque)
	default:
		return nil, fmt.Errorf("unknown type %d", v.Type)
	}
	return base, nil
}

func fromBase(base *irBase) (Value, error) {
	if base == nil {
		return Value{}, fmt.Errorf("malformed encoding: missing value")
	}
	switch base.Type {
	case NullType:
		return Null(), nil
	case BoolType:
		return FromBool(base.Bool), nil
	case NumberType:
		if base.Int64 != nil {
			return FromInt(*base.Int64), nil
		}
		f, err := strconv.ParseFloat(base.Float64, 64)
		if err != nil {
			return Value{}, fmt.Errorf("malformed float %q: %w", base.Float64, err)
		}
		return FromFloat(f), nil
	case StringType:
		return FromString(base.String), nil
	case NodeType:
		if len(base.Fields) != len(base.Values) {
			return Value{}, fmt.Errorf("malformed Node with %d keys and %d values", len(base.Fields), len(base.Values))
		}
		n := &Node{}
		for i := range base.Fields {
			k, err := fromBase(base.Fields[i])
			if err != nil {
				return Value{}, err
			}
			if _, err := keyID(k); err != nil {
				return Value{}, err
			}
			v, err := fromBase(base.Values[i])
			if err != nil {
				return Value{}, err
			}
			n.set(k, v)
		}
		return FromNode(n), nil
	case ListType, TupleType:
		vs := make([]Value, len(base.Values))
		for i := range base.Values {
			v, err := fromBase(base.Values[i])
			if err != nil {
				return Value{}, err
			}
			vs[i] = v
		}
		return Value{Type: base.Type, Values: vs}, nil
	}
	return Value{}, fmt.Errorf("malformed encoding: type %s", base.Type)
}
