// Package format names the text formats attribute trees are read from
// and written to.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	n, err := parse.Parse(data, parse.ParseFormat(f))
//
// JSON and YAML can be both parsed and encoded. The repr format is the
// string form of a Node and is only encoded.
//
// # Related Packages
//
//   - github.com/attrtree/go-attrtree/parse - Parse text to Nodes
//   - github.com/attrtree/go-attrtree/encode - Encode Nodes to text
package format
