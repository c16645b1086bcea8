package gomap

import (
	"github.com/attrtree/go-attrtree/format"
	"github.com/attrtree/go-attrtree/parse"
)

type fromOpts struct {
	format   format.Format
	maxDepth int
}

func (do *fromOpts) parseOpts() []parse.ParseOption {
	res := []parse.ParseOption{
		parse.ParseFormat(do.format),
	}
	if do.maxDepth > 0 {
		res = append(res, parse.MaxDepth(do.maxDepth))
	}
	return res
}

type FromOption func(*fromOpts)

func LoadFormat(f format.Format) FromOption { return func(o *fromOpts) { o.format = f } }
func LoadMaxDepth(n int) FromOption         { return func(o *fromOpts) { o.maxDepth = n } }
