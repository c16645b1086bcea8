package main

import (
	"fmt"

	"github.com/attrtree/go-attrtree/encode"
	"github.com/attrtree/go-attrtree/ir"
	q "github.com/attrtree/go-attrtree/query"

	"github.com/scott-cotton/cli"
)

func pathArg(args []string) (string, []string, error) {
	if len(args) == 0 {
		return "", nil, fmt.Errorf("%w: a path argument is required", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return "", nil, fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	return path, args[1:], nil
}

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	path, args, err := pathArg(args)
	if err != nil {
		return err
	}
	for i, arg := range inputs(args) {
		target, err := getObjFile(cc, arg, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		res, ok, err := target.GetPath(path)
		if err != nil {
			return fmt.Errorf("error executing get on %s: %w", arg, err)
		}
		if !ok {
			// don't encode anything and don't yell either
			continue
		}
		if i > 0 {
			if err := writeSep(cc.Out); err != nil {
				return err
			}
		}
		if err := encode.EncodeValue(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	path, args, err := pathArg(args)
	if err != nil {
		return err
	}
	var res []ir.Value
	for _, arg := range inputs(args) {
		target, err := getObjFile(cc, arg, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		res, err = target.ListPath(res, path)
		if err != nil {
			return fmt.Errorf("error executing list on %s: %w", arg, err)
		}
	}
	if cfg.Where != "" {
		res, err = q.Filter(res, cfg.Where)
		if err != nil {
			return err
		}
	}
	if res == nil {
		res = []ir.Value{}
	}
	if err := encode.EncodeValue(ir.FromList(res), cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires an expression", cli.ErrUsage)
	}
	src := args[0]
	holds := true
	for _, arg := range inputs(args[1:]) {
		target, err := getObjFile(cc, arg, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		if cfg.Test {
			ok, err := q.Test(target, src)
			if err != nil {
				return fmt.Errorf("%s: %w", arg, err)
			}
			if !ok {
				theLog.Info("expression does not hold", "file", arg)
			}
			holds = holds && ok
			continue
		}
		res, err := q.Eval(target, src)
		if err != nil {
			return fmt.Errorf("%s: %w", arg, err)
		}
		if err := encode.EncodeValue(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	if !holds {
		return cli.ExitCodeErr(1)
	}
	return nil
}
