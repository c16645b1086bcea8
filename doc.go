// Package attrtree gathers the entry points for working with Nodes:
// construction, merging, diffing and patching, and reading and writing
// files.
//
// The Node type itself lives in package ir, see there for the details of
// keys, values, attribute access and normalization.
//
// # Usage
//
//	cfg := attrtree.MustNew()
//	cfg.Attr("server").Node.SetAttr("port", 8080)
//
//	base, err := attrtree.ReadFile("base.yaml")
//	merged, err := attrtree.Merge(base, cfg)
//	diff := attrtree.Diff(base, merged)
//
// # Related Packages
//
//   - github.com/attrtree/go-attrtree/ir - the Node and Value types
//   - github.com/attrtree/go-attrtree/parse - decoding JSON and YAML
//   - github.com/attrtree/go-attrtree/encode - encoding JSON, YAML and repr
//   - github.com/attrtree/go-attrtree/libdiff - structural diffs
//   - github.com/attrtree/go-attrtree/mergeop - JSON Patch and merge patch
//   - github.com/attrtree/go-attrtree/query - expressions over Nodes
package attrtree
