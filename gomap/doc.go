// Package gomap converts between Nodes and Go values.
//
// # Usage
//
//	type Server struct {
//	    Host string `json:"host"`
//	    Port int    `json:"port"`
//	}
//
//	// Go value to Node, fields in declaration order
//	node, err := gomap.ToIR(Server{Host: "localhost", Port: 80})
//
//	// Node to Go value
//	var s Server
//	err = gomap.FromIR(node, &s)
//
//	// JSON or YAML text to Go value
//	err = gomap.Load(data, &s, gomap.LoadFormat(format.YAMLFormat))
//
// Conversion goes through the JSON form of the Node, so struct fields are
// named by their json tags and Go values must be representable in JSON.
//
// # Related Packages
//
//   - github.com/attrtree/go-attrtree/ir - the Node type
package gomap
