package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/attrtree/go-attrtree/encode"
	"github.com/attrtree/go-attrtree/format"
	"github.com/attrtree/go-attrtree/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	Compact bool `cli:"name=compact desc='output single-line json'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) inFormat() format.Format {
	fmat := format.YAMLFormat
	if cfg.J {
		fmat = format.JSONFormat
	}
	if cfg.InFormat != nil {
		fmat = *cfg.InFormat
	}
	return fmat
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{
		parse.ParseFormat(cfg.inFormat()),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	fmat := format.YAMLFormat
	if cfg.J {
		fmat = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmat),
	}
	if cfg.Compact {
		res = append(res, encode.Indent(0))
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ListConfig struct {
	*MainConfig
	Where string `cli:"name=where desc='keep only nodes for which the expression holds'"`

	List *cli.Command
}

type QueryConfig struct {
	*MainConfig
	Test bool `cli:"name=t desc='exit 1 unless the expression holds'"`

	Query *cli.Command
}

type SetConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='value is a string'"`

	Set *cli.Command
}

type PruneConfig struct {
	*MainConfig
	Zero           bool `cli:"name=zero desc='also remove numeric zeros'"`
	KeepEmptyLists bool `cli:"name=keepEmptyLists desc='keep empty lists'"`

	Prune *cli.Command
}

type MergeConfig struct {
	*MainConfig

	Merge *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse   bool   `cli:"name=r desc='reverse the diff'"`
	Loop      string `cli:"name=loop desc='command to produce objects to diff in a loop'"`
	LoopEvery time.Duration
	LoopLim   int `cli:"name=loopLim desc='max number of times to loop'"`

	Diff *cli.Command
}

func (cfg *DiffConfig) mkLoopEvery() func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		d, err := time.ParseDuration(a)
		if err != nil {
			return nil, err
		}
		cfg.LoopEvery = d
		return d, nil
	}
}

type PatchConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='apply diff reversed'"`
	JSON    bool `cli:"name=json desc='patch is a json patch (RFC 6902)'"`
	Merge   bool `cli:"name=merge desc='patch is a json merge patch (RFC 7386)'"`
	String  bool `cli:"name=s desc='patch arg as string'"`
	File    bool `cli:"name=f desc='patch arg as file'"`

	Patch *cli.Command
}

type DumpConfig struct {
	*MainConfig
	Dump *cli.Command
}

type LoadConfig struct {
	*MainConfig
	Load *cli.Command
}

type BuildConfig struct {
	*MainConfig
	Env map[string]any

	ShowEnv bool `cli:"name=s aliases=show desc='show environment'"`

	Build *cli.Command
}
