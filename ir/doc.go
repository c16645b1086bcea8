// Package ir provides the auto-vivifying ordered mapping, [Node], and the
// tagged [Value] it holds.
//
// # Overview
//
// A Node maps hashable keys to Values and remembers the order in which
// keys were first stored. Reading a key which is absent does not fail:
// an empty Node is created, stored under the key and returned, so that
// arbitrarily deep structures can be built without declaring the
// intermediate levels:
//
//	n := &ir.Node{}
//	n.Get("a").Get("b").Set("c", []int{1, 2, 3})
//	// n.String() == "{'a': {'b': {'c': [1, 2, 3]}}}"
//
// # Values
//
// The Value is a recursive tagged union, where data is placed in fields
// depending on the Type:
//
//   - NullType, BoolType, NumberType (int64 or float64), StringType
//   - NodeType: a *Node
//   - ListType and TupleType: the two kinds of sequence, which are kept
//     apart through every operation
//   - OpaqueType: any other Go value, stored as is
//
// Plain Go data is turned into Values with [ValueOf]. Every mapping found,
// at any depth and inside sequences too, becomes a Node. [Node.ToPlain]
// goes the other way.
//
// # Keys
//
// Keys are null, bools, numbers, strings and tuples of keys. An int and
// a float of the same value are the same key. A bool is never the same
// key as a number. Using any other Value as a key panics with
// ErrUnhashable, as using an unhashable key with a Go map does.
//
// # Access Styles
//
// Every entry can be reached key style ([Node.Get], [Node.Set],
// [Node.Delete]) or attribute style ([Node.Attr], [Node.SetAttr],
// [Node.DelAttr]), and both go through the same get-or-insert and put
// paths. The names of the Node's own operations, listed by
// [ReservedNames], cannot be written attribute style; they can still be
// stored as ordinary keys.
//
// # Thread Safety
//
// Nodes are not safe for concurrent use. Callers sharing a Node between
// goroutines must serialize access themselves, including reads, since
// reads may create entries.
package ir
