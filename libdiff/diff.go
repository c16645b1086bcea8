package libdiff

import (
	"github.com/attrtree/go-attrtree/debug"
	"github.com/attrtree/go-attrtree/ir"
)

// DiffFunc computes the diff of two values, nil when they are the same.
type DiffFunc func(from, to ir.Value) *ir.Node

// Diff returns the diff from from to to, or nil when they hold the same
// data with the same number kinds. Nodes, sequences of the same kind
// and strings are compared piecewise, anything else is replaced whole.
func Diff(from, to ir.Value) *ir.Node {
	res := diff(from, to)
	if debug.Diff() && res != nil {
		debug.Logf("diff %s -> %s: %s\n", from.Repr(), to.Repr(), res)
	}
	return res
}

func diff(from, to ir.Value) *ir.Node {
	if from.Type != to.Type {
		return MakeDiff(&from, &to)
	}
	switch from.Type {
	case ir.NodeType:
		if from.Node == to.Node {
			return nil
		}
		return DiffNode(from.Node, to.Node, diff)
	case ir.ListType, ir.TupleType:
		return DiffArrayByIndex(from.Values, to.Values, diff)
	case ir.StringType:
		return DiffString(from.String, to.String)
	case ir.NumberType:
		return DiffNumber(from, to)
	}
	if ir.Equal(from, to) {
		return nil
	}
	return MakeDiff(&from, &to)
}
