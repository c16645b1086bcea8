package attrtree

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/attrtree/go-attrtree/encode"
	"github.com/attrtree/go-attrtree/format"
	"github.com/attrtree/go-attrtree/ir"
	"github.com/attrtree/go-attrtree/parse"
)

// ReadFile parses the mapping in the file at path. The format follows
// the file name extension, YAML when there is none, and can be set with
// opts.
func ReadFile(path string, opts ...parse.ParseOption) (*Node, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, ok := format.FromSuffix(filepath.Ext(path))
	if !ok {
		f = format.YAMLFormat
	}
	n, err := parse.ParseNode(d, append([]parse.ParseOption{parse.ParseFormat(f)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}

// WriteFile encodes n to the file at path, choosing the format from the
// file name extension like [ReadFile] unless opts set one.
func WriteFile(path string, n *Node, opts ...encode.EncodeOption) error {
	f, ok := format.FromSuffix(filepath.Ext(path))
	if !ok {
		f = format.YAMLFormat
	}
	buf := &bytes.Buffer{}
	if err := encode.Encode(n, buf, append([]encode.EncodeOption{encode.EncodeFormat(f)}, opts...)...); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// Save stores n at path in the binary form of [ir.ToBytes], which keeps
// every key and value kind.
func Save(path string, n *Node) error {
	d, err := ir.ToBytes(n)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return os.WriteFile(path, d, 0o644)
}

// Load reads a Node stored by [Save].
func Load(path string) (*Node, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	n, err := ir.FromBytes(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}
