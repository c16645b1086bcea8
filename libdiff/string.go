package libdiff

import (
	"strings"
	"unicode/utf8"

	"github.com/attrtree/go-attrtree/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffString diffs two strings by rune. When more than half of the
// shorter string changes the whole string is replaced instead.
func DiffString(from, to string) *ir.Node {
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := diffCfg.DiffMain(from, to, doMultiLine)

	res := &ir.Node{}
	diffSize := 0
	fi := 0
	var pend *stringRun
	flush := func() {
		if pend != nil {
			res.Set(pend.at, pend.diff())
			pend = nil
		}
	}
	for i := range diffs {
		diff := &diffs[i]
		n := utf8.RuneCountInString(diff.Text)
		switch diff.Type {
		case diffpatch.DiffDelete:
			if pend == nil {
				pend = &stringRun{at: fi}
			}
			pend.del += diff.Text
			diffSize += n
			fi += n
		case diffpatch.DiffInsert:
			if pend == nil {
				pend = &stringRun{at: fi}
			}
			pend.ins += diff.Text
			diffSize += n
		case diffpatch.DiffEqual:
			flush()
			fi += n
		}
	}
	flush()
	if diffSize == 0 {
		return nil
	}
	if diffSize > min(utf8.RuneCountInString(from), utf8.RuneCountInString(to))/2 {
		f, t := ir.FromString(from), ir.FromString(to)
		return MakeDiff(&f, &t)
	}
	return op(StrDiffOp, ir.FromNode(res))
}

type stringRun struct {
	at       int
	del, ins string
}

func (r *stringRun) diff() *ir.Node {
	del, ins := ir.FromString(r.del), ir.FromString(r.ins)
	switch {
	case r.ins == "":
		return MakeDiff(&del, nil)
	case r.del == "":
		return MakeDiff(nil, &ins)
	}
	return MakeDiff(&del, &ins)
}
