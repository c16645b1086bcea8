package ir

import (
	"fmt"
	"iter"

	"github.com/attrtree/go-attrtree/internal/keylist"
)

// Node is an ordered mapping from hashable keys to Values which creates
// missing children on read. The zero Node is empty and ready to use.
type Node struct {
	kl keylist.List[string, Entry]
}

// New builds a Node from positional arguments followed by named ones.
//
// A positional argument is either a mapping (*Node, Map or any Go map),
// which must then be the only non-empty positional argument, or a source
// of pairs: a Pair, a 2-element Tuple or array, a slice of pairs, or an
// iter.Seq of pairs / iter.Seq2 of keys and values. Pair sources are
// consumed once, in order, and merged left to right; a repeated key keeps
// its first position and takes the last value. Kw arguments are applied
// after all positional ones.
//
// Non-iterable arguments give ErrInvalidArgument, iterables whose elements
// are not pairs give ErrMalformedPairs.
func New(args ...any) (*Node, error) {
	res, err := collect(args, -1)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// MustNew is like New but panics on error.
func MustNew(args ...any) *Node {
	res, err := New(args...)
	if err != nil {
		panic(err)
	}
	return res
}

// Len returns the number of entries in n.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	return n.kl.Len()
}

// Keys returns the keys of n in order.
func (n *Node) Keys() []Value {
	res := make([]Value, n.Len())
	for i := range res {
		res[i] = n.kl.Values[i].Key
	}
	return res
}

// Values returns the values of n in order.
func (n *Node) Values() []Value {
	res := make([]Value, n.Len())
	for i := range res {
		res[i] = n.kl.Values[i].Value
	}
	return res
}

// Entries returns the entries of n in order.
func (n *Node) Entries() []Entry {
	res := make([]Entry, n.Len())
	copy(res, n.kl.Values)
	return res
}

// All iterates over the keys and values of n in order.
func (n *Node) All() iter.Seq2[Value, Value] {
	return func(yield func(Value, Value) bool) {
		for _, e := range n.Entries() {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Has reports whether key is present. It never creates entries.
func (n *Node) Has(key any) bool {
	_, id := mustKey(key)
	return n.kl.IndexByKey(id) >= 0
}

// Lookup returns the value at key and whether it was present. It never
// creates entries.
func (n *Node) Lookup(key any) (Value, bool) {
	_, id := mustKey(key)
	return n.lookupID(id)
}

func (n *Node) lookupID(id string) (Value, bool) {
	e, ok := n.kl.AtTry(id)
	if !ok {
		return Value{}, false
	}
	return e.Value, true
}

// Get returns the value at key. If key is absent, a new empty Node is
// stored under key and returned, so that
//
//	n.Get("a").Get("b").Set("c", 1)
//
// works without declaring the intermediate levels.
//
// Like indexing a Go map, Get panics if key is not hashable.
func (n *Node) Get(key any) Value {
	return n.getOrInsert(key)
}

// Set stores the normalization of x under key, keeping the position of
// an existing key.
func (n *Node) Set(key, x any) {
	k, _ := mustKey(key)
	n.set(k, ValueOf(x))
}

// Delete removes key from n only, returning whether it was present.
func (n *Node) Delete(key any) bool {
	return n.del(key)
}

// Pop removes key and returns the value it held.
func (n *Node) Pop(key any) (Value, bool) {
	_, id := mustKey(key)
	v, ok := n.lookupID(id)
	if ok {
		n.kl.DeleteByKey(id)
	}
	return v, ok
}

// Clear removes all entries.
func (n *Node) Clear() {
	n.kl.Reset()
}

// Child is Get for chaining Nodes. It returns nil if key holds a value
// which is not a Node.
func (n *Node) Child(key any) *Node {
	v := n.getOrInsert(key)
	if v.Type != NodeType {
		return nil
	}
	return v.Node
}

// Dig follows keys from n, creating missing levels, and returns the Node
// at the end. It fails with ErrNotNode if a key on the way holds a leaf.
func (n *Node) Dig(keys ...any) (*Node, error) {
	cur := n
	for i, key := range keys {
		next := cur.Child(key)
		if next == nil {
			return nil, fmt.Errorf("%w: key %d (%v)", ErrNotNode, i, key)
		}
		cur = next
	}
	return cur, nil
}

// getOrInsert is the one place where reads create entries.
func (n *Node) getOrInsert(key any) Value {
	k, id := mustKey(key)
	if v, ok := n.lookupID(id); ok {
		return v
	}
	child := FromNode(&Node{})
	n.kl.Set(id, Entry{Key: k, Value: child})
	return child
}

// put stores v under key, refusing reserved names when attr is set.
func (n *Node) put(key any, v Value, attr bool) error {
	if attr {
		if err := checkAttr(key); err != nil {
			return err
		}
	}
	k, _ := mustKey(key)
	n.set(k, v)
	return nil
}

func (n *Node) del(key any) bool {
	_, id := mustKey(key)
	return n.kl.DeleteByKey(id)
}

// set stores v under the normalized key k. An existing entry keeps its
// original key and position.
func (n *Node) set(k, v Value) {
	id, err := keyID(k)
	if err != nil {
		panic(err)
	}
	if idx := n.kl.IndexByKey(id); idx >= 0 {
		n.kl.Values[idx].Value = v
		return
	}
	n.kl.Set(id, Entry{Key: k, Value: v})
}
