package main

import (
	"fmt"

	attrtree "github.com/attrtree/go-attrtree"
	"github.com/attrtree/go-attrtree/encode"
	"github.com/attrtree/go-attrtree/ir"
	"github.com/attrtree/go-attrtree/libdiff"
	"github.com/attrtree/go-attrtree/mergeop"
	"github.com/attrtree/go-attrtree/parse"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a patch, and a file to which to apply it", cli.ErrUsage)
	}
	if cfg.JSON && cfg.Merge {
		return fmt.Errorf("%w: only one of -json, -merge may be specified", cli.ErrUsage)
	}
	if cfg.Reverse && (cfg.JSON || cfg.Merge) {
		return fmt.Errorf("%w: -r only applies to diffs", cli.ErrUsage)
	}
	target, err := getObjFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	var res *ir.Node
	switch {
	case cfg.JSON:
		ops, err := getJSONPatch(cfg, cc, args[0])
		if err != nil {
			return err
		}
		res, err = mergeop.JSONPatch(target, ops)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", args[1], err)
		}
	default:
		p, err := getPatch(cfg, cc, args[0])
		if err != nil {
			return err
		}
		if cfg.Merge {
			res, err = mergeop.MergePatch(target, p)
		} else {
			if cfg.Reverse {
				if p, err = libdiff.Reverse(p); err != nil {
					return fmt.Errorf("error reversing patch: %w", err)
				}
			}
			res, err = attrtree.Patch(target, p)
		}
		if err != nil {
			return fmt.Errorf("error patching %s: %w", args[1], err)
		}
	}
	if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

func getPatch(cfg *PatchConfig, cc *cli.Context, arg string) (*ir.Node, error) {
	res, err := getish(cfg.String, cfg.File, cc, arg, cfg.parseOpts())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return res, nil
}

// getJSONPatch reads a list of json patch operations.
func getJSONPatch(cfg *PatchConfig, cc *cli.Context, arg string) (ir.Value, error) {
	d := []byte(arg)
	if !cfg.String {
		fd, err := readArg(cc, arg)
		if err != nil && cfg.File {
			return ir.Value{}, err
		}
		if err == nil {
			d = fd
		}
	}
	v, err := parse.Parse(d, cfg.parseOpts()...)
	if err != nil {
		return ir.Value{}, fmt.Errorf("%w: error decoding json patch: %w", cli.ErrUsage, err)
	}
	if v.Type != ir.ListType {
		return ir.Value{}, fmt.Errorf("%w: json patch must be a list, got %s", cli.ErrUsage, v.Type)
	}
	return v, nil
}
