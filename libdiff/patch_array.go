package libdiff

import (
	"fmt"
	"slices"

	"github.com/attrtree/go-attrtree/ir"
)

type indexedOp struct {
	at   int
	name string
	arg  ir.Value
	diff *ir.Node
}

// indexedOps returns the entries of an array or string diff ordered by
// position.
func indexedOps(patch *ir.Node) ([]indexedOp, error) {
	res := make([]indexedOp, 0, patch.Len())
	for _, e := range patch.Entries() {
		if !e.Key.IsInt() {
			return nil, fmt.Errorf("%w: position %s", ErrMalformed, e.Key.Repr())
		}
		if e.Value.Type != ir.NodeType {
			return nil, fmt.Errorf("%w: %s at %s", ErrMalformed, e.Value.Type, e.Key.Repr())
		}
		name, arg, err := Split(e.Value.Node)
		if err != nil {
			return nil, err
		}
		res = append(res, indexedOp{at: int(*e.Key.Int64), name: name, arg: arg, diff: e.Value.Node})
	}
	slices.SortFunc(res, func(a, b indexedOp) int { return a.at - b.at })
	return res, nil
}

func PatchArrayByIndex(doc []ir.Value, patch *ir.Node, pf PatchFunc) ([]ir.Value, error) {
	ops, err := indexedOps(patch)
	if err != nil {
		return nil, err
	}
	res := make([]ir.Value, 0, len(doc))
	fi := 0
	for _, op := range ops {
		if op.at < fi || op.at > len(doc) {
			return nil, fmt.Errorf("%w: arraydiff index %d out of range", ErrConflict, op.at)
		}
		res = append(res, doc[fi:op.at]...)
		fi = op.at
		switch op.name {
		case InsertOp:
			if op.arg.Type != ir.ListType {
				return nil, fmt.Errorf("%w: arraydiff %s of %s", ErrMalformed, op.name, op.arg.Type)
			}
			res = append(res, ir.DeepCloneValue(op.arg).Values...)
		case DeleteOp:
			if fi, err = consume(doc, fi, op.arg); err != nil {
				return nil, err
			}
		case ReplaceOp:
			from, to, err := fromTo(op.arg)
			if err != nil {
				return nil, err
			}
			if to.Type != ir.ListType {
				return nil, fmt.Errorf("%w: arraydiff %s to %s", ErrMalformed, op.name, to.Type)
			}
			if fi, err = consume(doc, fi, from); err != nil {
				return nil, err
			}
			res = append(res, ir.DeepCloneValue(to).Values...)
		default:
			if fi == len(doc) {
				return nil, fmt.Errorf("%w: arraydiff index %d out of range", ErrConflict, fi)
			}
			v, err := pf(doc[fi], op.diff)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", fi, err)
			}
			res = append(res, v)
			fi++
		}
	}
	return append(res, doc[fi:]...), nil
}

// consume checks that doc holds the run want at fi and returns the index
// after it.
func consume(doc []ir.Value, fi int, want ir.Value) (int, error) {
	if want.Type != ir.ListType {
		return 0, fmt.Errorf("%w: arraydiff run of %s", ErrMalformed, want.Type)
	}
	if fi+len(want.Values) > len(doc) {
		return 0, fmt.Errorf("%w: arraydiff run at %d past the end", ErrConflict, fi)
	}
	for i, w := range want.Values {
		if !ir.Equal(doc[fi+i], w) {
			return 0, fmt.Errorf("%w: at [%d]", conflict(doc[fi+i], w), fi+i)
		}
	}
	return fi + len(want.Values), nil
}
