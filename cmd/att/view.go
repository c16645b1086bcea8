package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/attrtree/go-attrtree/encode"
	"github.com/attrtree/go-attrtree/parse"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	for i, file := range inputs(args) {
		if i > 0 {
			if err := writeSep(cc.Out); err != nil {
				return err
			}
		}
		d, err := readArg(cc, file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		if err := viewDocs(cfg, cc.Out, d); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}

func viewDocs(cfg *ViewConfig, w io.Writer, in []byte) error {
	docs := bytes.Split(in, []byte("\n---\n"))
	n := len(docs)
	opts := cfg.encOpts(w)
	for i, doc := range docs {
		v, err := parse.Parse(doc, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding document %d: %w", i, err)
		}
		if err := encode.EncodeValue(v, w, opts...); err != nil {
			return fmt.Errorf("error encoding result %d: %w", i, err)
		}
		if i < n-1 {
			if err := writeSep(w); err != nil {
				return fmt.Errorf("error writing document %d: %w", i, err)
			}
		}
	}
	return nil
}
