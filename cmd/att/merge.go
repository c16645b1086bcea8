package main

import (
	"fmt"

	attrtree "github.com/attrtree/go-attrtree"
	"github.com/attrtree/go-attrtree/encode"
	"github.com/attrtree/go-attrtree/ir"

	"github.com/scott-cotton/cli"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: merge requires at least one file", cli.ErrUsage)
	}
	nodes := make([]*ir.Node, len(args))
	for i, arg := range args {
		nodes[i], err = getObjFile(cc, arg, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
	}
	res, err := attrtree.Merge(nodes[0], nodes[1:]...)
	if err != nil {
		return err
	}
	return encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...)
}
