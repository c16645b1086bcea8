package libdiff

import (
	"fmt"

	"github.com/attrtree/go-attrtree/debug"
	"github.com/attrtree/go-attrtree/ir"
)

// PatchFunc applies a diff to a value.
type PatchFunc func(doc ir.Value, diff *ir.Node) (ir.Value, error)

// Patch applies diff to doc and returns the result. doc is not modified,
// unchanged parts of it are shared with the result. Values removed or
// replaced by the diff must be present in doc, otherwise Patch fails with
// ErrConflict. A nil diff returns doc.
func Patch(doc ir.Value, diff *ir.Node) (ir.Value, error) {
	if diff == nil {
		return doc, nil
	}
	name, arg, err := Split(diff)
	if err != nil {
		return ir.Value{}, err
	}
	if debug.Diff() {
		debug.Logf("patch %s with %s\n", doc.Repr(), diff)
	}
	switch name {
	case InsertOp:
		return ir.DeepCloneValue(arg), nil
	case DeleteOp:
		if !ir.Equal(doc, arg) {
			return ir.Value{}, conflict(doc, arg)
		}
		return ir.Null(), nil
	case ReplaceOp:
		from, to, err := fromTo(arg)
		if err != nil {
			return ir.Value{}, err
		}
		if !ir.Equal(doc, from) {
			return ir.Value{}, conflict(doc, from)
		}
		return ir.DeepCloneValue(to), nil
	case ObjectOp:
		if doc.Type != ir.NodeType {
			return ir.Value{}, fmt.Errorf("%w: %s applied to %s", ErrConflict, name, doc.Type)
		}
		res, err := PatchNode(doc.Node, arg.Node, Patch)
		if err != nil {
			return ir.Value{}, err
		}
		return ir.FromNode(res), nil
	case ArrayDiffOp:
		if !doc.Type.IsSeq() {
			return ir.Value{}, fmt.Errorf("%w: %s applied to %s", ErrConflict, name, doc.Type)
		}
		vs, err := PatchArrayByIndex(doc.Values, arg.Node, Patch)
		if err != nil {
			return ir.Value{}, err
		}
		if doc.Type == ir.TupleType {
			return ir.FromTuple(vs), nil
		}
		return ir.FromList(vs), nil
	case StrDiffOp:
		if doc.Type != ir.StringType {
			return ir.Value{}, fmt.Errorf("%w: %s applied to %s", ErrConflict, name, doc.Type)
		}
		s, err := PatchStringRunes(doc.String, arg.Node)
		if err != nil {
			return ir.Value{}, err
		}
		return ir.FromString(s), nil
	}
	panic(name)
}

// PatchNode applies the per-key diffs of an object diff to a shallow
// copy of doc.
func PatchNode(doc, diffs *ir.Node, pf PatchFunc) (*ir.Node, error) {
	res := doc.Copy()
	for _, e := range diffs.Entries() {
		if e.Value.Type != ir.NodeType {
			return nil, fmt.Errorf("%w: %s under %s", ErrMalformed, e.Value.Type, e.Key.Repr())
		}
		name, arg, err := Split(e.Value.Node)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Key.Repr(), err)
		}
		cur, ok := res.Lookup(e.Key)
		switch name {
		case InsertOp:
			if ok {
				return nil, fmt.Errorf("%w: insert of existing key %s", ErrConflict, e.Key.Repr())
			}
			res.Set(e.Key, ir.DeepCloneValue(arg))
			continue
		case DeleteOp:
			if !ok || !ir.Equal(cur, arg) {
				return nil, fmt.Errorf("%w: delete of %s", ErrConflict, e.Key.Repr())
			}
			res.Delete(e.Key)
			continue
		}
		if !ok {
			return nil, fmt.Errorf("%w: missing key %s", ErrConflict, e.Key.Repr())
		}
		v, err := pf(cur, e.Value.Node)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Key.Repr(), err)
		}
		res.Set(e.Key, v)
	}
	return res, nil
}

func conflict(doc, want ir.Value) error {
	return fmt.Errorf("%w: unexpected value %s, expected %s", ErrConflict, doc.Repr(), want.Repr())
}
