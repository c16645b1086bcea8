package libdiff

import (
	"fmt"

	"github.com/attrtree/go-attrtree/ir"
)

func op(name string, arg ir.Value) *ir.Node {
	n := &ir.Node{}
	n.Set(name, arg)
	return n
}

// MakeDiff gives the diff from from to to without looking inside them. A
// nil from gives an insert and a nil to a delete.
func MakeDiff(from, to *ir.Value) *ir.Node {
	switch {
	case from == nil:
		return op(InsertOp, ir.DeepCloneValue(*to))
	case to == nil:
		return op(DeleteOp, ir.DeepCloneValue(*from))
	default:
		return op(ReplaceOp, replaceArg(ir.DeepCloneValue(*from), ir.DeepCloneValue(*to)))
	}
}

func replaceArg(from, to ir.Value) ir.Value {
	n := &ir.Node{}
	n.Set("from", from)
	n.Set("to", to)
	return ir.FromNode(n)
}

// Split returns the operation name and argument of diff.
func Split(diff *ir.Node) (string, ir.Value, error) {
	if diff.Len() != 1 {
		return "", ir.Value{}, fmt.Errorf("%w: %d entries in %s", ErrMalformed, diff.Len(), diff)
	}
	e := diff.Entries()[0]
	if e.Key.Type != ir.StringType {
		return "", ir.Value{}, fmt.Errorf("%w: operation %s", ErrMalformed, e.Key.Repr())
	}
	switch e.Key.String {
	case InsertOp, DeleteOp, ReplaceOp:
	case ObjectOp, ArrayDiffOp, StrDiffOp:
		if e.Value.Type != ir.NodeType {
			return "", ir.Value{}, fmt.Errorf("%w: %s of %s", ErrMalformed, e.Key.String, e.Value.Type)
		}
	default:
		return "", ir.Value{}, fmt.Errorf("%w: unknown operation %q", ErrMalformed, e.Key.String)
	}
	return e.Key.String, e.Value, nil
}

// fromTo returns the arguments of a replace operation.
func fromTo(arg ir.Value) (from, to ir.Value, err error) {
	if arg.Type != ir.NodeType {
		return from, to, fmt.Errorf("%w: %s of %s", ErrMalformed, ReplaceOp, arg.Type)
	}
	from, ok := arg.Node.Lookup("from")
	if !ok {
		return from, to, fmt.Errorf("%w: missing 'from' under %s", ErrMalformed, ReplaceOp)
	}
	to, ok = arg.Node.Lookup("to")
	if !ok {
		return from, to, fmt.Errorf("%w: missing 'to' under %s", ErrMalformed, ReplaceOp)
	}
	return from, to, nil
}
