package parse

import (
	"github.com/attrtree/go-attrtree/format"
	"github.com/goccy/go-yaml"
)

type parseOpts struct {
	format       format.Format
	allowDupKeys bool
	maxDepth     int
}

func (o *parseOpts) yamlOpts() []yaml.DecodeOption {
	res := []yaml.DecodeOption{yaml.UseOrderedMap()}
	if o.allowDupKeys {
		res = append(res, yaml.AllowDuplicateMapKey())
	}
	return res
}

type ParseOption func(*parseOpts)

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// AllowDuplicateKeys makes a repeated YAML mapping key keep its first
// position and take the last value, as JSON objects do, instead of
// failing.
func AllowDuplicateKeys(v bool) ParseOption {
	return func(o *parseOpts) { o.allowDupKeys = v }
}

// MaxDepth rejects documents nested deeper than n levels. Zero means no
// limit.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// GetFormat extracts the format from the provided options.
func GetFormat(opts ...ParseOption) format.Format {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts.format
}
