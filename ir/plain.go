package ir

import (
	"fmt"
	"reflect"
)

// ToPlain converts n and everything below it to plain Go values: Nodes
// become map[any]any, lists []any and tuples Tuple. Keys are plain
// scalars, and tuple keys become arrays of type [N]any so that they stay
// usable as map keys. Numbers are int64 or float64.
func (n *Node) ToPlain() map[any]any {
	res := make(map[any]any, n.Len())
	for _, e := range n.Entries() {
		res[plainKey(e.Key)] = ToPlainValue(e.Value)
	}
	return res
}

// ToPlainValue is [Node.ToPlain] for any Value.
func ToPlainValue(v Value) any {
	switch v.Type {
	case NullType:
		return nil
	case BoolType:
		return v.Bool
	case NumberType:
		if v.Int64 != nil {
			return *v.Int64
		}
		f, _ := v.Float()
		return f
	case StringType:
		return v.String
	case NodeType:
		return v.Node.ToPlain()
	case ListType:
		res := make([]any, len(v.Values))
		for i := range v.Values {
			res[i] = ToPlainValue(v.Values[i])
		}
		return res
	case TupleType:
		res := make(Tuple, len(v.Values))
		for i := range v.Values {
			res[i] = ToPlainValue(v.Values[i])
		}
		return res
	case OpaqueType:
		return v.Opaque
	}
	panic(fmt.Sprintf("unknown type %d", v.Type))
}

var anyType = reflect.TypeFor[any]()

func plainKey(k Value) any {
	if k.Type != TupleType {
		return ToPlainValue(k)
	}
	arr := reflect.New(reflect.ArrayOf(len(k.Values), anyType)).Elem()
	for i := range k.Values {
		if e := plainKey(k.Values[i]); e != nil {
			arr.Index(i).Set(reflect.ValueOf(e))
		}
	}
	return arr.Interface()
}

// ToPairs converts n to the ordered plain form: Nodes become Map, with
// the same conversions as [Node.ToPlain] otherwise. Tuple keys become
// Tuple. [ValueOf] of the result is equal to n.
func (n *Node) ToPairs() Map {
	res := make(Map, 0, n.Len())
	for _, e := range n.Entries() {
		res = append(res, Pair{Key: pairsValue(e.Key), Value: pairsValue(e.Value)})
	}
	return res
}

func pairsValue(v Value) any {
	switch v.Type {
	case NodeType:
		return v.Node.ToPairs()
	case ListType:
		res := make([]any, len(v.Values))
		for i := range v.Values {
			res[i] = pairsValue(v.Values[i])
		}
		return res
	case TupleType:
		res := make(Tuple, len(v.Values))
		for i := range v.Values {
			res[i] = pairsValue(v.Values[i])
		}
		return res
	}
	return ToPlainValue(v)
}

// ToStringMap converts n to the form produced by decoding JSON with
// encoding/json: map[string]any, []any for both sequence kinds, and
// scalar keys formatted as JSON object keys. Tuple keys fail with
// ErrUnsupportedKey.
func (n *Node) ToStringMap() (map[string]any, error) {
	res := make(map[string]any, n.Len())
	for _, e := range n.Entries() {
		k, err := JSONKey(e.Key)
		if err != nil {
			return nil, err
		}
		v, err := StringMapValue(e.Value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}
		res[k] = v
	}
	return res, nil
}

// StringMapValue is [Node.ToStringMap] for any Value.
func StringMapValue(v Value) (any, error) {
	switch v.Type {
	case NodeType:
		return v.Node.ToStringMap()
	case ListType, TupleType:
		res := make([]any, len(v.Values))
		for i := range v.Values {
			x, err := StringMapValue(v.Values[i])
			if err != nil {
				return nil, err
			}
			res[i] = x
		}
		return res, nil
	}
	return ToPlainValue(v), nil
}
