// Package parse decodes JSON and YAML text into attribute trees.
//
// # Usage
//
//	n, err := parse.ParseNode(data, parse.ParseYAML())
//	v, err := parse.Parse(data) // JSON, any top-level value
//
// Mapping keys keep their document order. YAML keys which are not
// strings keep their type, so `1: a` gives a Node with the int key 1.
//
// # Related Packages
//
//   - github.com/attrtree/go-attrtree/ir - Nodes and Values
//   - github.com/attrtree/go-attrtree/encode - Encode Nodes to text
package parse
