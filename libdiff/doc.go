// Package libdiff computes, reverses and applies structural diffs between
// values.
//
// # Usage
//
//	// Compute the diff between two values, nil when there is none
//	diff := libdiff.Diff(ir.FromNode(a), ir.FromNode(b))
//
//	// Apply it to a
//	patched, err := libdiff.Patch(ir.FromNode(a), diff)
//
//	// Undo it
//	rev, err := libdiff.Reverse(diff)
//
// # Format
//
// A diff is itself a Node, so it can be encoded, stored and parsed back
// like any other document. Every diff Node has exactly one entry whose
// key names the operation:
//
//	{"!insert": x}                          x was added
//	{"!delete": x}                          x was removed
//	{"!replace": {"from": x, "to": y}}      x became y
//	{"!object": {key: diff, ...}}           per-key changes of a Node
//	{"!arraydiff": {index: op, ...}}        changes of a list or tuple
//	{"!strdiff": {offset: op, ...}}         changes of a string
//
// Array and string diffs are keyed by the position in the original value
// where each change starts. Their insert, delete and replace arguments
// hold runs: lists for sequences and substrings for strings. An array
// entry may also hold a nested diff for an element that changed in
// place.
package libdiff
