package main

import (
	"fmt"

	"github.com/attrtree/go-attrtree/encode"
	"github.com/attrtree/go-attrtree/ir"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: dump takes at most one file", cli.ErrUsage)
	}
	file := inputs(args)[0]
	n, err := getObjFile(cc, file, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	d, err := ir.ToBytes(n)
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(d)
	return err
}

func load(cfg *LoadConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Load.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: load takes at most one file", cli.ErrUsage)
	}
	file := inputs(args)[0]
	d, err := readArg(cc, file)
	if err != nil {
		return err
	}
	n, err := ir.FromBytes(d)
	if err != nil {
		return fmt.Errorf("error loading %s: %w", file, err)
	}
	return encode.Encode(n, cc.Out, cfg.encOpts(cc.Out)...)
}
