package attrtree

import (
	"fmt"

	"github.com/attrtree/go-attrtree/debug"
	"github.com/attrtree/go-attrtree/ir"
	"github.com/attrtree/go-attrtree/libdiff"
)

type (
	Node  = ir.Node
	Value = ir.Value
)

// New is [ir.New].
func New(args ...any) (*Node, error) {
	return ir.New(args...)
}

// MustNew is [ir.MustNew].
func MustNew(args ...any) *Node {
	return ir.MustNew(args...)
}

// Merge returns a deep copy of dst updated with each of srcs in turn.
// Neither dst nor srcs are modified.
func Merge(dst *Node, srcs ...*Node) (*Node, error) {
	res := dst.DeepClone()
	for i, src := range srcs {
		if err := res.Update(src.DeepClone()); err != nil {
			return nil, fmt.Errorf("merge source %d: %w", i, err)
		}
	}
	if debug.Update() {
		debug.Logf("merged %d sources: %s\n", len(srcs), res)
	}
	return res, nil
}

// Diff returns the diff from from to to, nil when there is none. See
// package libdiff for the format.
func Diff(from, to *Node) *Node {
	return libdiff.Diff(ir.FromNode(from), ir.FromNode(to))
}

// Patch applies a diff made by [Diff] to doc.
func Patch(doc, diff *Node) (*Node, error) {
	v, err := libdiff.Patch(ir.FromNode(doc), diff)
	if err != nil {
		return nil, err
	}
	if v.Type != ir.NodeType {
		return nil, fmt.Errorf("%w: patch gave %s", ir.ErrNotNode, v.Type)
	}
	return v.Node, nil
}
