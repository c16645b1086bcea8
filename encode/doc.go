// Package encode encodes attribute trees as JSON, YAML or repr text.
//
// # Usage
//
//	n := ir.MustNew(ir.Map{ir.P("name", "alice"), ir.P("age", 30)})
//	err := encode.Encode(n, os.Stdout)
//
//	// Encode to YAML, colored for a terminal
//	err := encode.Encode(n, os.Stdout,
//	    encode.EncodeFormat(format.YAMLFormat),
//	    encode.EncodeColors(encode.NewColors()))
//
// Keys are written in Node order. JSON output turns scalar keys into
// strings as [ir.JSONKey] does; YAML output keeps their type.
//
// # Related Packages
//
//   - github.com/attrtree/go-attrtree/ir - Nodes and Values
//   - github.com/attrtree/go-attrtree/parse - Parse text to Nodes
package encode
