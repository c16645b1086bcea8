package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Normalize bool
	Prune     bool
	Update    bool
	Patch     bool
	Diff      bool
	Query     bool
	Build     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Normalize = boolEnv("ATT_DEBUG_NORMALIZE")
	d.Prune = boolEnv("ATT_DEBUG_PRUNE")
	d.Update = boolEnv("ATT_DEBUG_UPDATE")
	d.Patch = boolEnv("ATT_DEBUG_PATCH")
	d.Diff = boolEnv("ATT_DEBUG_DIFF")
	d.Query = boolEnv("ATT_DEBUG_QUERY")
	d.Build = boolEnv("ATT_DEBUG_BUILD")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Normalize() bool {
	return d.Normalize
}
func Prune() bool {
	return d.Prune
}
func Update() bool {
	return d.Update
}
func Patch() bool {
	return d.Patch
}
func Diff() bool {
	return d.Diff
}
func Query() bool {
	return d.Query
}
func Build() bool {
	return d.Build
}
