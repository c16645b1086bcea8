package mergeop

import (
	"fmt"

	"github.com/attrtree/go-attrtree/debug"
	"github.com/attrtree/go-attrtree/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

// JSONPatch applies the operations in patch, a list of operation
// objects, to doc and returns the result. doc is not modified.
func JSONPatch(doc *ir.Node, patch ir.Value) (*ir.Node, error) {
	d, err := patch.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return ApplyJSONPatch(doc, d)
}

// ApplyJSONPatch is JSONPatch with the operations given as JSON text.
func ApplyJSONPatch(doc *ir.Node, patchJSON []byte) (*ir.Node, error) {
	ops, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	if debug.Patch() {
		for _, op := range ops {
			path, _ := op.Path()
			debug.Logf("json-patch %s %s\n", op.Kind(), path)
		}
	}
	d, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return fromJSON(doc, out, ErrPatch)
}

func fromJSON(orig *ir.Node, d []byte, kind error) (*ir.Node, error) {
	v, err := ir.FromJSON(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", kind, err)
	}
	if v.Type != ir.NodeType {
		return nil, fmt.Errorf("%w: %w: result is %s", kind, ir.ErrNotNode, v.Type)
	}
	return restoreNode(orig, v.Node), nil
}
