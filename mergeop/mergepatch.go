package mergeop

import (
	"fmt"

	"github.com/attrtree/go-attrtree/debug"
	"github.com/attrtree/go-attrtree/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

// MergePatch applies patch to doc as a JSON merge patch: objects merge
// recursively, null deletes a key and anything else replaces. doc is not
// modified.
func MergePatch(doc, patch *ir.Node) (*ir.Node, error) {
	if debug.Patch() {
		debug.Logf("merge-patch %s with %s\n", doc, patch)
	}
	d, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMergePatch, err)
	}
	p, err := patch.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMergePatch, err)
	}
	out, err := jsonpatch.MergePatch(d, p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMergePatch, err)
	}
	return fromJSON(doc, out, ErrMergePatch)
}

// CreateMergePatch returns the merge patch which turns from into to.
func CreateMergePatch(from, to *ir.Node) (*ir.Node, error) {
	f, err := from.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMergePatch, err)
	}
	t, err := to.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMergePatch, err)
	}
	out, err := jsonpatch.CreateMergePatch(f, t)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMergePatch, err)
	}
	return fromJSON(to, out, ErrMergePatch)
}
