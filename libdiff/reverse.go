package libdiff

import (
	"fmt"
	"unicode/utf8"

	"github.com/attrtree/go-attrtree/ir"
)

// Reverse returns the diff which undoes diff. diff is not modified.
func Reverse(diff *ir.Node) (*ir.Node, error) {
	if diff == nil {
		return nil, nil
	}
	name, arg, err := Split(diff)
	if err != nil {
		return nil, err
	}
	switch name {
	case InsertOp:
		return op(DeleteOp, ir.DeepCloneValue(arg)), nil
	case DeleteOp:
		return op(InsertOp, ir.DeepCloneValue(arg)), nil
	case ReplaceOp:
		from, to, err := fromTo(arg)
		if err != nil {
			return nil, err
		}
		return MakeDiff(&to, &from), nil
	case ObjectOp:
		res := &ir.Node{}
		for _, e := range arg.Node.Entries() {
			if e.Value.Type != ir.NodeType {
				return nil, fmt.Errorf("%w: %s under %s", ErrMalformed, e.Value.Type, e.Key.Repr())
			}
			rev, err := Reverse(e.Value.Node)
			if err != nil {
				return nil, err
			}
			res.Set(e.Key, rev)
		}
		return op(ObjectOp, ir.FromNode(res)), nil
	case ArrayDiffOp, StrDiffOp:
		return reverseIndexed(name, arg.Node)
	}
	panic(name)
}

// reverseIndexed moves every entry of an array or string diff to the
// position where it starts in the patched value.
func reverseIndexed(name string, patch *ir.Node) (*ir.Node, error) {
	ops, err := indexedOps(patch)
	if err != nil {
		return nil, err
	}
	res := &ir.Node{}
	delta := 0
	for _, o := range ops {
		rev, err := Reverse(o.diff)
		if err != nil {
			return nil, err
		}
		res.Set(o.at+delta, rev)
		switch o.name {
		case InsertOp:
			delta += runLen(o.arg)
		case DeleteOp:
			delta -= runLen(o.arg)
		case ReplaceOp:
			from, to, err := fromTo(o.arg)
			if err != nil {
				return nil, err
			}
			delta += runLen(to) - runLen(from)
		}
	}
	return op(name, ir.FromNode(res)), nil
}

func runLen(v ir.Value) int {
	if v.Type == ir.StringType {
		return utf8.RuneCountInString(v.String)
	}
	return len(v.Values)
}
