package dirbuild

import (
	"fmt"
	"os"
	"path/filepath"

	attrtree "github.com/attrtree/go-attrtree"
	"github.com/attrtree/go-attrtree/debug"
	"github.com/attrtree/go-attrtree/encode"
	"github.com/attrtree/go-attrtree/format"
	"github.com/attrtree/go-attrtree/ir"
	"github.com/attrtree/go-attrtree/mergeop"
	"github.com/attrtree/go-attrtree/parse"
	"github.com/attrtree/go-attrtree/query"
)

type PatchKind string

const (
	// MergeKind deep merges the patch as [ir.Node.Update] does.
	MergeKind PatchKind = "merge"
	// MergePatchKind applies a JSON merge patch (RFC 7386).
	MergePatchKind PatchKind = "mergepatch"
	// JSONPatchKind applies a list of JSON patch operations (RFC 6902).
	JSONPatchKind PatchKind = "jsonpatch"
	// DiffKind applies a diff made by [attrtree.Diff].
	DiffKind PatchKind = "diff"
)

// DirPatch is a patch given inline or in a file. It applies only when
// If is empty or holds for the env.
type DirPatch struct {
	If    string    `json:"if,omitempty"`
	Kind  PatchKind `json:"kind,omitempty"`
	Patch *ir.Value `json:"patch,omitempty"`
	File  string    `json:"file,omitempty"`
}

func (d *DirPatch) String() string {
	patch := "<nil>"
	if d.Patch != nil {
		patch = d.Patch.Repr()
	}
	return fmt.Sprintf("kind: %s if: %s patch: %s file: %s", d.Kind, d.If, patch, d.File)
}

func (d *DirPatch) apply(root string, env, doc *ir.Node) (*ir.Node, error) {
	if d.If != "" {
		ok, err := query.Test(env, d.If)
		if err != nil {
			return nil, err
		}
		if debug.Patch() {
			debug.Logf("patch %s: condition %t\n", d, ok)
		}
		if !ok {
			return doc, nil
		}
	}
	patch, err := d.load(root)
	if err != nil {
		return nil, err
	}
	var res *ir.Node
	switch d.Kind {
	case "", MergeKind:
		if patch.Type != ir.NodeType {
			return nil, fmt.Errorf("%w: merge patch is %s", ir.ErrNotNode, patch.Type)
		}
		res, err = attrtree.Merge(doc, patch.Node)
	case MergePatchKind:
		if patch.Type != ir.NodeType {
			return nil, fmt.Errorf("%w: merge patch is %s", ir.ErrNotNode, patch.Type)
		}
		res, err = mergeop.MergePatch(doc, patch.Node)
	case JSONPatchKind:
		res, err = mergeop.JSONPatch(doc, patch)
	case DiffKind:
		if patch.Type != ir.NodeType {
			return nil, fmt.Errorf("%w: diff is %s", ir.ErrNotNode, patch.Type)
		}
		res, err = attrtree.Patch(doc, patch.Node)
	default:
		return nil, fmt.Errorf("%w: unknown patch kind %q", ErrBuild, d.Kind)
	}
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("patched\n%s\n", encode.MustString(res))
	}
	return res, nil
}

func (d *DirPatch) load(root string) (ir.Value, error) {
	switch {
	case d.Patch != nil && d.File != "":
		return ir.Value{}, fmt.Errorf("%w: patch has both patch and file", ErrBuild)
	case d.Patch != nil:
		return *d.Patch, nil
	case d.File != "":
		path := filepath.Join(root, d.File)
		data, err := os.ReadFile(path)
		if err != nil {
			return ir.Value{}, err
		}
		f, ok := format.FromSuffix(filepath.Ext(path))
		if !ok {
			f = format.YAMLFormat
		}
		v, err := parse.Parse(data, parse.ParseFormat(f))
		if err != nil {
			return ir.Value{}, fmt.Errorf("%s: %w", path, err)
		}
		return v, nil
	}
	return ir.Value{}, fmt.Errorf("%w: patch has neither patch nor file", ErrBuild)
}
