package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/attrtree/go-attrtree/ir"
	"github.com/attrtree/go-attrtree/parse"

	"github.com/scott-cotton/cli"
)

func readArg(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func getObjFile(cc *cli.Context, path string, opts ...parse.ParseOption) (*ir.Node, error) {
	d, err := readArg(cc, path)
	if err != nil {
		return nil, err
	}
	return parse.ParseNode(d, opts...)
}

// getish reads a document given inline or as a file path. Without -s or
// -f an argument naming an existing file is read as a file.
func getish(s, f bool, cc *cli.Context, arg string, opts []parse.ParseOption) (*ir.Node, error) {
	if s == f && s {
		return nil, fmt.Errorf("%w: only one of -s, -f may be specified", cli.ErrUsage)
	}
	var d []byte
	switch {
	case s:
		d = []byte(arg)
	case f:
		fd, err := readArg(cc, arg)
		if err != nil {
			return nil, err
		}
		d = fd
	default:
		if _, err := os.Stat(arg); err == nil || arg == "-" {
			return getish(false, true, cc, arg, opts)
		}
		d = []byte(arg)
	}
	res, err := parse.ParseNode(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", strings.TrimSpace(arg), err)
	}
	return res, nil
}

// inputs returns the file arguments, stdin when there are none.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func writeSep(w io.Writer) error {
	_, err := w.Write([]byte("---\n"))
	return err
}
