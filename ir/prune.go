package ir

import "github.com/attrtree/go-attrtree/debug"

type pruneOpts struct {
	zero      bool
	emptyList bool
}

type PruneOption func(*pruneOpts)

// PruneZero makes numbers equal to zero removable. Bools are never
// removed. The default is false.
func PruneZero(v bool) PruneOption {
	return func(o *pruneOpts) { o.zero = v }
}

// PruneEmptyList makes lists which are empty after pruning removable.
// Empty tuples are always removed. The default is true.
func PruneEmptyList(v bool) PruneOption {
	return func(o *pruneOpts) { o.emptyList = v }
}

func pruneOptions(opts []PruneOption) *pruneOpts {
	o := &pruneOpts{emptyList: true}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Prune removes, depth first and throughout n, every entry and sequence
// element which is empty after its own pruning: Nodes with no entries,
// tuples with no elements and, by default, lists with no elements. With
// PruneZero, zero numbers are removed as well. Survivors keep their
// order. n is modified in place and returned.
//
// Pruning twice with the same options gives the same result as pruning
// once.
func (n *Node) Prune(opts ...PruneOption) *Node {
	n.prune(pruneOptions(opts))
	return n
}

// PruneValue prunes v. Nodes are pruned in place; sequences are rebuilt
// as new sequences of the same kind, so a caller holding a sequence must
// store the result.
func PruneValue(v Value, opts ...PruneOption) Value {
	return pruneValue(v, pruneOptions(opts))
}

func (n *Node) prune(o *pruneOpts) {
	for i := range n.kl.Values {
		e := &n.kl.Values[i]
		e.Value = pruneValue(e.Value, o)
	}
	n.kl.Retain(func(_ string, e Entry) bool {
		if o.removable(e.Value) {
			if debug.Prune() {
				debug.Logf("prune: drop %s (%s)\n", reprValue(e.Key), e.Value.Type)
			}
			return false
		}
		return true
	})
}

func pruneValue(v Value, o *pruneOpts) Value {
	switch v.Type {
	case NodeType:
		v.Node.prune(o)
		return v
	case ListType, TupleType:
		vs := make([]Value, 0, len(v.Values))
		for _, elt := range v.Values {
			elt = pruneValue(elt, o)
			if o.removable(elt) {
				continue
			}
			vs = append(vs, elt)
		}
		return Value{Type: v.Type, Values: vs}
	}
	return v
}

func (o *pruneOpts) removable(v Value) bool {
	switch v.Type {
	case NodeType:
		return v.Node.Len() == 0
	case ListType:
		return o.emptyList && len(v.Values) == 0
	case TupleType:
		return len(v.Values) == 0
	case NumberType:
		return o.zero && v.isZeroNumber()
	}
	return false
}
