package ir

import (
	"cmp"
	"fmt"
	"math"
	"reflect"
	"strings"
)

// Compare returns an integer comparing two values.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Values of different kinds are ordered by kind. Numbers
// compare by value regardless of representation, Nodes compare entry by
// entry in their order. Compare is a total order on hashable values, which
// makes it usable for sorting keys.
func Compare(a, b Value) int {
	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case NumberType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.String, b.String)
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case ListType, TupleType:
		return compareSeqs(a.Values, b.Values)
	case NodeType:
		return compareNodes(a.Node, b.Node)
	case OpaqueType:
		return strings.Compare(fmt.Sprintf("%T%v", a.Opaque, a.Opaque), fmt.Sprintf("%T%v", b.Opaque, b.Opaque))
	}
	return 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Number < String < Tuple < List < Node < Opaque
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case NumberType:
		return 2
	case StringType:
		return 3
	case TupleType:
		return 4
	case ListType:
		return 5
	case NodeType:
		return 6
	case OpaqueType:
		return 7
	}
	return 100
}

func compareNumbers(a, b Value) int {
	if a.Int64 != nil && b.Int64 != nil {
		return cmp.Compare(*a.Int64, *b.Int64)
	}
	fa, _ := a.Float()
	fb, _ := b.Float()
	if c := cmp.Compare(fa, fb); c != 0 {
		return c
	}
	// 1 and 1.0 are equal as numbers; order ints first to stay total.
	return cmp.Compare(numberSubRank(a), numberSubRank(b))
}

func numberSubRank(v Value) int {
	if v.Int64 != nil {
		return 0
	}
	return 1
}

func compareSeqs(a, b []Value) int {
	for i := range min(len(a), len(b)) {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func compareNodes(a, b *Node) int {
	if a == b {
		return 0
	}
	ea, eb := a.Entries(), b.Entries()
	for i := range min(len(ea), len(eb)) {
		if c := Compare(ea[i].Key, eb[i].Key); c != 0 {
			return c
		}
		if c := Compare(ea[i].Value, eb[i].Value); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(ea), len(eb))
}

// Equal reports whether a and b hold the same data. Nodes are equal when
// they have the same keys mapped to equal values, whatever the order.
// Numbers are equal by value, so 1 equals 1.0, but a bool never equals a
// number. A list never equals a tuple. Opaque leaves are compared with
// [reflect.DeepEqual].
func Equal(a, b Value) bool {
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case NumberType:
		if a.Int64 != nil && b.Int64 != nil {
			return *a.Int64 == *b.Int64
		}
		fa, _ := a.Float()
		fb, _ := b.Float()
		return fa == fb && !math.IsNaN(fa)
	case StringType:
		return a.String == b.String
	case NodeType:
		return nodesEqual(a.Node, b.Node)
	case ListType, TupleType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case OpaqueType:
		return reflect.DeepEqual(a.Opaque, b.Opaque)
	}
	return false
}

func nodesEqual(a, b *Node) bool {
	if a == b {
		return true
	}
	if a.Len() != b.Len() {
		return false
	}
	for i, id := range a.kl.Keys {
		bv, ok := b.lookupID(id)
		if !ok || !Equal(a.kl.Values[i].Value, bv) {
			return false
		}
	}
	return true
}

// Equal reports whether n is equal to the normalization of x, so that a
// Node compares equal to the plain structure it was built from.
func (n *Node) Equal(x any) bool {
	switch v := x.(type) {
	case *Node:
		return Equal(FromNode(n), FromNode(v))
	case Value:
		return Equal(FromNode(n), v)
	}
	return Equal(FromNode(n), ValueOf(x))
}
