package main

import (
	"fmt"

	"github.com/attrtree/go-attrtree/encode"
	"github.com/attrtree/go-attrtree/ir"

	"github.com/scott-cotton/cli"
)

func prune(cfg *PruneConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Prune.Parse(cc, args)
	if err != nil {
		cfg.Prune.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for i, arg := range inputs(args) {
		target, err := getObjFile(cc, arg, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		target.Prune(ir.PruneZero(cfg.Zero), ir.PruneEmptyList(!cfg.KeepEmptyLists))
		if i > 0 {
			if err := writeSep(cc.Out); err != nil {
				return err
			}
		}
		if err := encode.Encode(target, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}
