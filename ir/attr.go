package ir

import (
	"fmt"
	"slices"
)

// reserved holds the names of the Node's own operations, in both the Go
// spelling and the snake_case spelling used in text and queries. They
// cannot be written attribute style.
var reserved = map[string]bool{
	"AddAssign": true, "AddAttr": true, "All": true, "Attr": true,
	"Child": true, "Clear": true, "Copy": true, "DeepClone": true,
	"DelAttr": true, "Delete": true, "Dig": true, "Dir": true,
	"Entries": true, "Equal": true, "Get": true, "GetPath": true,
	"Has": true, "Keys": true, "Len": true, "ListPath": true, "Lookup": true,
	"LookupAttr": true, "MarshalBinary": true, "MarshalJSON": true,
	"Pop": true, "Prune": true, "Set": true, "SetAttr": true,
	"SetPath": true, "String": true, "ToPairs": true, "ToPlain": true,
	"ToStringMap": true, "UnmarshalBinary": true, "UnmarshalJSON": true,
	"Update": true, "Values": true,

	"clear": true, "copy": true, "deep_clone": true, "fromkeys": true,
	"get": true, "items": true, "keys": true, "pop": true,
	"popitem": true, "prune": true, "setdefault": true, "to_plain": true,
	"update": true, "values": true,
}

// IsReserved reports whether name is reserved for the Node's operations.
func IsReserved(name string) bool {
	return reserved[name]
}

// ReservedNames returns the reserved names, sorted.
func ReservedNames() []string {
	res := make([]string, 0, len(reserved))
	for k := range reserved {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}

func checkAttr(key any) error {
	name, ok := key.(string)
	if !ok || !reserved[name] {
		return nil
	}
	return fmt.Errorf("%w: cannot assign attribute %q", ErrReservedName, name)
}

// Attr is the attribute-style form of [Node.Get]: a missing name is
// created as an empty Node. Reserved names are never created and read as
// null unless a key of that name was stored key style.
func (n *Node) Attr(name string) Value {
	if reserved[name] {
		v, _ := n.Lookup(name)
		return v
	}
	return n.getOrInsert(name)
}

// LookupAttr is the attribute-style form of [Node.Lookup].
func (n *Node) LookupAttr(name string) (Value, bool) {
	return n.Lookup(name)
}

// SetAttr is the attribute-style form of [Node.Set]. It fails with
// ErrReservedName and leaves n unchanged if name is reserved.
func (n *Node) SetAttr(name string, x any) error {
	return n.put(name, ValueOf(x), true)
}

// DelAttr is the attribute-style form of [Node.Delete].
func (n *Node) DelAttr(name string) bool {
	return n.del(name)
}

// Dir lists the reserved names together with every string key of n,
// sorted and without duplicates.
func (n *Node) Dir() []string {
	res := ReservedNames()
	for i := range n.Len() {
		k := n.kl.Values[i].Key
		if k.Type == StringType {
			res = append(res, k.String)
		}
	}
	slices.Sort(res)
	return slices.Compact(res)
}
