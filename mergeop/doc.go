// Package mergeop applies JSON Patch (RFC 6902) and JSON Merge Patch
// (RFC 7386) documents to Nodes.
//
// Patches operate on the JSON encoding of a Node, so keys are seen as
// JSON member names and tuples as arrays. The result is mapped back onto
// the input: surviving keys keep their position and their original kind,
// and values which compare equal keep their number kind and tuple form.
// Keys added by a patch come after the surviving ones.
//
// # Related Packages
//
//   - github.com/attrtree/go-attrtree/ir - the Node type
//   - github.com/attrtree/go-attrtree/libdiff - structural diffs
package mergeop
