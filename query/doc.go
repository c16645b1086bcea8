// Package query evaluates expressions against the data in a Node.
//
// Expressions use the expr language (github.com/expr-lang/expr). The
// string keys of the Node are variables; other keys are reached with
// $env["1"], as the Node is seen in its JSON form. Two functions are
// added:
//
//	path(p)   the value at path p, see [ir.Node.GetPath], nil if absent
//	has(p)    whether path p is present
//
// They hide Node keys with the same names.
//
// For example
//
//	query.Test(n, `replicas > 1 && has("$.container.image")`)
package query
