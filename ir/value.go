package ir

import "math"

// Value is a tagged union. Which fields are meaningful depends on Type:
//
//   - NullType: none
//   - BoolType: Bool
//   - NumberType: exactly one of Int64 or Float64
//   - StringType: String
//   - NodeType: Node (never nil)
//   - ListType, TupleType: Values
//   - OpaqueType: Opaque
//
// The zero Value is null.
type Value struct {
	Type Type

	Bool    bool
	Int64   *int64
	Float64 *float64
	String  string
	Node    *Node
	Values  []Value
	Opaque  any
}

// Pair is a key/value pair of unnormalized Go values.
type Pair struct {
	Key, Value any
}

// P returns the Pair (key, val).
func P(key, val any) Pair {
	return Pair{Key: key, Value: val}
}

// Map is an ordered mapping literal. It normalizes to a Node holding the
// pairs in order.
type Map []Pair

// Kw holds named arguments for [New] and [Node.Update]. They are applied
// after all positional arguments.
type Kw []Pair

// Tuple is the plain form of a tuple-like sequence. Go arrays also
// normalize to tuples.
type Tuple []any

// Entry is a normalized key/value pair stored in a Node.
type Entry struct {
	Key, Value Value
}

func Null() Value {
	return Value{Type: NullType}
}

func FromBool(v bool) Value {
	return Value{Type: BoolType, Bool: v}
}

func FromInt(v int64) Value {
	return Value{Type: NumberType, Int64: &v}
}

func FromFloat(f float64) Value {
	return Value{Type: NumberType, Float64: &f}
}

func FromString(v string) Value {
	return Value{Type: StringType, String: v}
}

// FromNode wraps n. A nil n gives null.
func FromNode(n *Node) Value {
	if n == nil {
		return Null()
	}
	return Value{Type: NodeType, Node: n}
}

func FromList(vs []Value) Value {
	if vs == nil {
		vs = []Value{}
	}
	return Value{Type: ListType, Values: vs}
}

func FromTuple(vs []Value) Value {
	if vs == nil {
		vs = []Value{}
	}
	return Value{Type: TupleType, Values: vs}
}

// FromOpaque stores x as an uninterpreted leaf.
func FromOpaque(x any) Value {
	return Value{Type: OpaqueType, Opaque: x}
}

// Len returns the number of entries of a Node or elements of a sequence,
// and 0 for leaves.
func (v Value) Len() int {
	switch v.Type {
	case NodeType:
		return v.Node.Len()
	case ListType, TupleType:
		return len(v.Values)
	}
	return 0
}

// IsInt reports whether v is an integer number.
func (v Value) IsInt() bool {
	return v.Type == NumberType && v.Int64 != nil
}

// Float returns v as a float64 if v is a number.
func (v Value) Float() (float64, bool) {
	if v.Type != NumberType {
		return 0, false
	}
	if v.Int64 != nil {
		return float64(*v.Int64), true
	}
	if v.Float64 != nil {
		return *v.Float64, true
	}
	return 0, false
}

func (v Value) isZeroNumber() bool {
	f, ok := v.Float()
	return ok && f == 0
}

func (v Value) integral() (int64, bool) {
	if v.Int64 != nil {
		return *v.Int64, true
	}
	if v.Float64 == nil {
		return 0, false
	}
	f := *v.Float64
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// Get is [Node.Get] on v's Node. It returns null when v is not a Node.
func (v Value) Get(key any) Value {
	if v.Type != NodeType {
		return Null()
	}
	return v.Node.Get(key)
}

// Set is [Node.Set] on v's Node.
func (v Value) Set(key, x any) error {
	if v.Type != NodeType {
		return ErrNotNode
	}
	v.Node.Set(key, x)
	return nil
}

// Delete is [Node.Delete] on v's Node.
func (v Value) Delete(key any) bool {
	if v.Type != NodeType {
		return false
	}
	return v.Node.Delete(key)
}

// Attr is [Node.Attr] on v's Node. It returns null when v is not a Node.
func (v Value) Attr(name string) Value {
	if v.Type != NodeType {
		return Null()
	}
	return v.Node.Attr(name)
}

// SetAttr is [Node.SetAttr] on v's Node.
func (v Value) SetAttr(name string, x any) error {
	if v.Type != NodeType {
		return ErrNotNode
	}
	return v.Node.SetAttr(name, x)
}

// DelAttr is [Node.DelAttr] on v's Node.
func (v Value) DelAttr(name string) bool {
	if v.Type != NodeType {
		return false
	}
	return v.Node.DelAttr(name)
}

// AddAssign is [Node.AddAssign] on v's Node.
func (v Value) AddAssign(key, rhs any) error {
	if v.Type != NodeType {
		return ErrNotNode
	}
	return v.Node.AddAssign(key, rhs)
}

// AddAttr is [Node.AddAttr] on v's Node.
func (v Value) AddAttr(name string, rhs any) error {
	if v.Type != NodeType {
		return ErrNotNode
	}
	return v.Node.AddAttr(name, rhs)
}
