package ir

import (
	"fmt"
	"slices"
)

// Add returns a + b.
//
// An empty Node on the left is the identity and gives b. This is how a
// counter can be incremented through a key that was only auto-vivified:
//
//	n.Child("x").AddAssign("y", 1) // n == {'x': {'y': 1}}
//
// A non-empty Node on the left is an error. Otherwise numbers add (two
// ints stay an int, bools count as 0 or 1), strings concatenate and two
// sequences of the same kind concatenate. Any other combination fails
// with ErrUnsupportedAdd.
func Add(a, b Value) (Value, error) {
	if a.Type == NodeType {
		if a.Node.Len() != 0 {
			return Value{}, fmt.Errorf("%w: Node with %d entries + %s", ErrUnsupportedAdd, a.Node.Len(), b.Type)
		}
		return b, nil
	}
	switch {
	case isNumeric(a) && isNumeric(b):
		ai, aInt := intOf(a)
		bi, bInt := intOf(b)
		if aInt && bInt {
			return FromInt(ai + bi), nil
		}
		af, _ := floatOf(a)
		bf, _ := floatOf(b)
		return FromFloat(af + bf), nil
	case a.Type == StringType && b.Type == StringType:
		return FromString(a.String + b.String), nil
	case a.Type.IsSeq() && a.Type == b.Type:
		return Value{Type: a.Type, Values: slices.Concat(a.Values, b.Values)}, nil
	}
	return Value{}, fmt.Errorf("%w: %s + %s", ErrUnsupportedAdd, a.Type, b.Type)
}

func isNumeric(v Value) bool {
	return v.Type == NumberType || v.Type == BoolType
}

func intOf(v Value) (int64, bool) {
	switch {
	case v.Type == BoolType:
		if v.Bool {
			return 1, true
		}
		return 0, true
	case v.IsInt():
		return *v.Int64, true
	}
	return 0, false
}

func floatOf(v Value) (float64, bool) {
	if i, ok := intOf(v); ok {
		return float64(i), true
	}
	return v.Float()
}

// AddAssign performs n[key] += rhs. A missing key is auto-vivified first,
// so it starts out as the empty Node and takes the value of rhs. On error
// n is unchanged, apart from the vivified entry.
func (n *Node) AddAssign(key, rhs any) error {
	return n.addAssign(key, rhs, false)
}

// AddAttr is the attribute-style form of [Node.AddAssign]. A reserved
// name fails with ErrReservedName before anything is read.
func (n *Node) AddAttr(name string, rhs any) error {
	return n.addAssign(name, rhs, true)
}

func (n *Node) addAssign(key, rhs any, attr bool) error {
	if attr {
		if err := checkAttr(key); err != nil {
			return err
		}
	}
	res, err := Add(n.getOrInsert(key), ValueOf(rhs))
	if err != nil {
		return err
	}
	return n.put(key, res, attr)
}
