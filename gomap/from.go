package gomap

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/attrtree/go-attrtree/format"
	"github.com/attrtree/go-attrtree/ir"
	"github.com/attrtree/go-attrtree/parse"
)

// IRFromer is implemented by types which decode themselves from a Node.
type IRFromer interface {
	FromIR(*ir.Node) error
}

// FromIR stores the data of node in the value pointed to by p, as
// [json.Unmarshal] would for the JSON form of node. Unknown fields are
// an error.
func FromIR(node *ir.Node, p any) error {
	if x, ok := p.(IRFromer); ok {
		return x.FromIR(node)
	}
	d, err := node.MarshalJSON()
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.DisallowUnknownFields()
	if err := dec.Decode(p); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}

// Load parses d, YAML unless a format is given, and stores the result in
// the value pointed to by p.
func Load(d []byte, p any, opts ...FromOption) error {
	do := &fromOpts{format: format.YAMLFormat}
	for _, f := range opts {
		f(do)
	}
	node, err := parse.ParseNode(d, do.parseOpts()...)
	if err != nil {
		return err
	}
	return FromIR(node, p)
}
