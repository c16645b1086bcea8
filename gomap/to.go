package gomap

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/attrtree/go-attrtree/ir"
)

var ErrDecode = errors.New("gomap decode error")

// IRToer is implemented by types which encode themselves as a Node.
type IRToer interface {
	ToIR() (*ir.Node, error)
}

// ToIR converts v to a Node through its JSON encoding. Struct fields keep
// their declaration order and Go maps come out with sorted keys. v must
// encode as a JSON object.
func ToIR(v any) (*ir.Node, error) {
	if x, ok := v.(IRToer); ok {
		return x.ToIR()
	}
	d, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	res, err := ir.FromJSON(d)
	if err != nil {
		return nil, err
	}
	if res.Type != ir.NodeType {
		return nil, fmt.Errorf("%w: %T encodes as %s", ir.ErrNotNode, v, res.Type)
	}
	return res.Node, nil
}
