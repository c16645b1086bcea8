package ir

import "github.com/mohae/deepcopy"

// Copy returns a shallow copy of n. The copy has its own entries, so
// setting or deleting a key of the copy does not affect n, but the
// values are shared: child Nodes reached through the copy are the
// children of n.
func (n *Node) Copy() *Node {
	if n == nil {
		return nil
	}
	return &Node{kl: *n.kl.Clone()}
}

// DeepClone returns a copy of n sharing no mutable state with it. A Node
// reachable by several paths, or through a cycle, is cloned once and the
// clone keeps the same shape. Opaque leaves are copied with
// [deepcopy.Copy].
func (n *Node) DeepClone() *Node {
	if n == nil {
		return nil
	}
	return n.cloneTo(map[*Node]*Node{})
}

// DeepCloneValue is [Node.DeepClone] for any Value.
func DeepCloneValue(v Value) Value {
	return cloneValue(v, map[*Node]*Node{})
}

func (n *Node) cloneTo(memo map[*Node]*Node) *Node {
	if c, ok := memo[n]; ok {
		return c
	}
	res := &Node{}
	memo[n] = res
	for _, e := range n.kl.Values {
		res.set(cloneValue(e.Key, memo), cloneValue(e.Value, memo))
	}
	return res
}

func cloneValue(v Value, memo map[*Node]*Node) Value {
	switch v.Type {
	case NumberType:
		if v.Int64 != nil {
			return FromInt(*v.Int64)
		}
		if v.Float64 != nil {
			return FromFloat(*v.Float64)
		}
		return v
	case NodeType:
		return FromNode(v.Node.cloneTo(memo))
	case ListType, TupleType:
		vs := make([]Value, len(v.Values))
		for i := range v.Values {
			vs[i] = cloneValue(v.Values[i], memo)
		}
		return Value{Type: v.Type, Values: vs}
	case OpaqueType:
		return FromOpaque(deepcopy.Copy(v.Opaque))
	}
	return v
}
