// Package dirbuild builds a mapping from a build directory.
//
// A build directory holds a build.yaml or build.json file of the form
//
//	sources:
//	- file: base.yaml
//	- dir: overlays
//	- exec: ./gen.sh $region
//	patches:
//	- if: env == "prod"
//	  patch: {replicas: 3}
//	- file: fix.yaml
//	  kind: diff
//	env:
//	  env: dev
//
// The sources are deep merged in order, then the patches whose condition
// holds are applied in order. Conditions are query expressions over the
// env, which can be overridden from the ATT_ENV environment variable.
package dirbuild

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	attrtree "github.com/attrtree/go-attrtree"
	"github.com/attrtree/go-attrtree/debug"
	"github.com/attrtree/go-attrtree/encode"
	"github.com/attrtree/go-attrtree/gomap"
	"github.com/attrtree/go-attrtree/ir"
)

var ErrBuild = errors.New("build error")

type Dir struct {
	Root    string         `json:"-"`
	Sources []DirSource    `json:"sources"`
	Patches []DirPatch     `json:"patches,omitempty"`
	Env     map[string]any `json:"env,omitempty"`
}

// OpenDir reads the build file in path. Entries of env replace those of
// the build file, deeply.
func OpenDir(path string, env map[string]any) (*Dir, error) {
	var (
		node *ir.Node
		err  error
	)
	for _, name := range []string{"build.yaml", "build.json"} {
		node, err = attrtree.ReadFile(filepath.Join(path, name))
		if err == nil {
			break
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	if node == nil {
		return nil, fmt.Errorf("%w: could not find build.{yaml,json} in %q", ErrBuild, path)
	}
	dir := &Dir{}
	if err := gomap.FromIR(node, dir); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	dir.Root = path
	if env != nil {
		dir.Env, err = mergeEnv(dir.Env, env)
		if err != nil {
			return nil, err
		}
	}
	if debug.Build() {
		debug.Logf("opened %s with env:\n", path)
		debug.LogAny(dir.Env)
	}
	return dir, nil
}

func mergeEnv(dst, p map[string]any) (map[string]any, error) {
	doc, err := ir.New(dst)
	if err != nil {
		return nil, err
	}
	patch, err := ir.New(p)
	if err != nil {
		return nil, err
	}
	res, err := attrtree.Merge(doc, patch)
	if err != nil {
		return nil, err
	}
	return res.ToStringMap()
}

// Build merges the sources and applies the patches.
func (d *Dir) Build() (*ir.Node, error) {
	var err error
	env := &ir.Node{}
	if d.Env != nil {
		if env, err = ir.New(d.Env); err != nil {
			return nil, fmt.Errorf("%w: env: %w", ErrBuild, err)
		}
	}
	res := &ir.Node{}
	for i := range d.Sources {
		src := &d.Sources[i]
		docs, err := src.Fetch(d.Root, d.Env)
		if err != nil {
			return nil, fmt.Errorf("%w: source %s: %w", ErrBuild, src, err)
		}
		for _, doc := range docs {
			if err := res.Update(doc); err != nil {
				return nil, fmt.Errorf("%w: source %s: %w", ErrBuild, src, err)
			}
		}
	}
	if debug.Build() {
		debug.Logf("merged %d sources:\n%s\n", len(d.Sources), encode.MustString(res))
	}
	for i := range d.Patches {
		res, err = d.Patches[i].apply(d.Root, env, res)
		if err != nil {
			return nil, fmt.Errorf("%w: patch %d: %w", ErrBuild, i, err)
		}
	}
	return res, nil
}
