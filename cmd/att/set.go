package main

import (
	"fmt"

	"github.com/attrtree/go-attrtree/encode"
	"github.com/attrtree/go-attrtree/ir"
	"github.com/attrtree/go-attrtree/parse"

	"github.com/scott-cotton/cli"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	path, args, err := pathArg(args)
	if err != nil {
		return err
	}
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: set requires a path, a value and at most one file", cli.ErrUsage)
	}
	val := ir.FromString(args[0])
	if !cfg.String {
		val, err = parse.Parse([]byte(args[0]), parse.ParseYAML())
		if err != nil {
			return fmt.Errorf("%w: value %q: %w", cli.ErrUsage, args[0], err)
		}
	}
	target, err := getObjFile(cc, inputs(args[1:])[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding target: %w", err)
	}
	if err := target.SetPath(path, val); err != nil {
		return err
	}
	return encode.Encode(target, cc.Out, cfg.encOpts(cc.Out)...)
}
