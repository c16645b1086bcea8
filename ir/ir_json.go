package ir

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
)

// MarshalJSON encodes n as a JSON object with the entries in order. It
// gives the same text as encoding the equivalent plain data would, with
// scalar keys turned into strings: 1 gives "1", 1.5 gives "1.5", true
// gives "true" and null gives "null". Tuple keys fail with
// ErrUnsupportedKey. Tuples encode as arrays and opaque leaves with
// [json.Marshal].
func (n *Node) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := writeJSON(buf, FromNode(n)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalJSON replaces the entries of n with the JSON object in d,
// keeping the order of its members. Integers decode as ints.
func (n *Node) UnmarshalJSON(d []byte) error {
	v, err := FromJSON(d)
	if err != nil {
		return err
	}
	if v.Type != NodeType {
		return fmt.Errorf("%w: JSON %s is not an object", ErrNotNode, v.Type)
	}
	n.kl = v.Node.kl
	return nil
}

// MarshalJSON encodes the data held by v, see [Node.MarshalJSON].
func (v Value) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := writeJSON(buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v *Value) UnmarshalJSON(d []byte) error {
	res, err := FromJSON(d)
	if err != nil {
		return err
	}
	*v = res
	return nil
}

func writeJSON(buf *bytes.Buffer, v Value) error {
	switch v.Type {
	case NullType:
		buf.WriteString("null")
	case BoolType:
		buf.WriteString(strconv.FormatBool(v.Bool))
	case NumberType:
		if v.Int64 != nil {
			buf.WriteString(strconv.FormatInt(*v.Int64, 10))
			return nil
		}
		return writeMarshaled(buf, *v.Float64)
	case StringType:
		return writeMarshaled(buf, v.String)
	case NodeType:
		buf.WriteByte('{')
		for i, e := range v.Node.kl.Values {
			if i != 0 {
				buf.WriteByte(',')
			}
			k, err := JSONKey(e.Key)
			if err != nil {
				return err
			}
			if err := writeMarshaled(buf, k); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSON(buf, e.Value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case ListType, TupleType:
		buf.WriteByte('[')
		for i := range v.Values {
			if i != 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, v.Values[i]); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case OpaqueType:
		return writeMarshaled(buf, v.Opaque)
	default:
		return fmt.Errorf("unknown type %d", v.Type)
	}
	return nil
}

func writeMarshaled(buf *bytes.Buffer, x any) error {
	d, err := json.Marshal(x)
	if err != nil {
		return err
	}
	buf.Write(d)
	return nil
}

// JSONKey formats a scalar key as a JSON object member name. Tuple keys
// fail with ErrUnsupportedKey.
func JSONKey(k Value) (string, error) {
	switch k.Type {
	case StringType:
		return k.String, nil
	case NullType:
		return "null", nil
	case BoolType:
		return strconv.FormatBool(k.Bool), nil
	case NumberType:
		if k.Int64 != nil {
			return strconv.FormatInt(*k.Int64, 10), nil
		}
		f := *k.Float64
		switch {
		case math.IsNaN(f):
			return "NaN", nil
		case math.IsInf(f, 1):
			return "Infinity", nil
		case math.IsInf(f, -1):
			return "-Infinity", nil
		}
		return formatFloat(f), nil
	}
	return "", fmt.Errorf("%w: %s key %s cannot be a JSON object member name", ErrUnsupportedKey, k.Type, reprValue(k))
}

// FromJSON decodes one JSON value. Objects become Nodes with their
// members in order, arrays become lists, and numbers become ints when
// they are integers.
func FromJSON(d []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	v, err := decodeJSON(dec)
	if err != nil {
		return Value{}, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Value{}, fmt.Errorf("invalid JSON: data after top-level value")
	}
	return v, nil
}

func decodeJSON(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			n := &Node{}
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				k, ok := kt.(string)
				if !ok {
					return Value{}, fmt.Errorf("invalid JSON: object key %v", kt)
				}
				v, err := decodeJSON(dec)
				if err != nil {
					return Value{}, err
				}
				n.set(FromString(k), v)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return FromNode(n), nil
		case '[':
			vs := []Value{}
			for dec.More() {
				v, err := decodeJSON(dec)
				if err != nil {
					return Value{}, err
				}
				vs = append(vs, v)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return FromList(vs), nil
		}
		return Value{}, fmt.Errorf("invalid JSON: unexpected %v", t)
	case json.Number:
		return ValueOf(t), nil
	}
	return ValueOf(tok), nil
}
