package main

import (
	"fmt"
	"maps"
	"strings"

	"github.com/attrtree/go-attrtree/dirbuild"
	"github.com/attrtree/go-attrtree/encode"
	"github.com/attrtree/go-attrtree/ir"
	"github.com/attrtree/go-attrtree/parse"

	"github.com/scott-cotton/cli"
)

func build(cfg *BuildConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Build.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: build takes at most one directory", cli.ErrUsage)
	}
	dirPath := "."
	if len(args) != 0 {
		dirPath = args[0]
	}
	env, err := dirbuild.LoadEnv()
	if err != nil {
		return err
	}
	if len(cfg.Env) != 0 {
		if env == nil {
			env = map[string]any{}
		}
		maps.Copy(env, cfg.Env)
	}
	dir, err := dirbuild.OpenDir(dirPath, env)
	if err != nil {
		return err
	}
	if cfg.ShowEnv {
		n, err := ir.New(dir.Env)
		if err != nil {
			return err
		}
		return encode.Encode(n, cc.Out, cfg.encOpts(cc.Out)...)
	}
	res, err := dir.Build()
	if err != nil {
		return err
	}
	return encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...)
}

func envOptTypeFunc(env map[string]any) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		if err := envFunc(env, a); err != nil {
			return nil, err
		}
		return 0, nil
	}
}

// envFunc sets env[key] from "key=val", val being parsed as YAML.
func envFunc(env map[string]any, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok || key == "" {
		return fmt.Errorf("%w: env %q is not key=val", cli.ErrUsage, a)
	}
	v, err := parse.Parse([]byte(val), parse.ParseYAML())
	if err != nil {
		return fmt.Errorf("%w: env %s: %w", cli.ErrUsage, key, err)
	}
	x, err := ir.StringMapValue(v)
	if err != nil {
		return fmt.Errorf("%w: env %s: %w", cli.ErrUsage, key, err)
	}
	env[key] = x
	return nil
}
