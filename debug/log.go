package debug

import (
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
)

var (
	out io.Writer = os.Stderr

	dumper = spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
	}
)

// SetOutput redirects debug output, returning the previous writer.
func SetOutput(w io.Writer) io.Writer {
	prev := out
	out = w
	return prev
}

func Logf(format string, args ...any) {
	fmt.Fprintf(out, format, args...)
}

// LogAny dumps v with its Go types, one field per line.
func LogAny(v any) {
	dumper.Fdump(out, v)
}
