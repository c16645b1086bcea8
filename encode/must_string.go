package encode

import (
	"bytes"
	"strings"

	"github.com/attrtree/go-attrtree/ir"
)

func MustString(n *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(n, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
