package libdiff

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/attrtree/go-attrtree/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// we map each element to a rune standing for its summary:
//
//  1. scalars are summarized by type and value, containers and
//     multi-line strings by type alone
//  2. diff the sequence of summaries
//  3. matching summaries recurse with df, which only finds changes
//     inside containers and multi-line strings
//  4. runs of unmatched elements become insert, delete or replace
//     entries keyed by the index where they start
func DiffArrayByIndex(from, to []ir.Value, df DiffFunc) *ir.Node {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	res := &ir.Node{}
	fi, ti := 0, 0
	var pend *arrayRun
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
				pend = &arrayRun{at: fi}
			}
			pend.del = append(pend.del, from[fi:fi+n]...)
			fi += n
		case diffpatch.DiffInsert:
			if pend == nil {
				pend = &arrayRun{at: fi}
			}
			pend.ins = append(pend.ins, to[ti:ti+n]...)
			ti += n
		case diffpatch.DiffEqual:
			for range n {
				d := df(from[fi], to[ti])
				switch {
				case d == nil:
				case pend != nil:
					// the run and the change start at the same index
					pend.del = append(pend.del, from[fi])
					pend.ins = append(pend.ins, to[ti])
				case isRunOp(d):
					res.Set(fi, MakeDiff(seqArg(from[fi]), seqArg(to[ti])))
				default:
					res.Set(fi, d)
				}
				flush()
				fi++
				ti++
			}
		}
	}
	flush()
	if res.Len() == 0 {
		return nil
	}
	return op(ArrayDiffOp, ir.FromNode(res))
}

type arrayRun struct {
	at       int
	del, ins []ir.Value
}

func (r *arrayRun) diff() *ir.Node {
	del, ins := ir.FromList(r.del), ir.FromList(r.ins)
	switch {
	case len(r.ins) == 0:
		return MakeDiff(&del, nil)
	case len(r.del) == 0:
		return MakeDiff(nil, &ins)
	}
	return MakeDiff(&del, &ins)
}

func seqArg(v ir.Value) *ir.Value {
	res := ir.FromList([]ir.Value{v})
	return &res
}

func isRunOp(d *ir.Node) bool {
	return d.Has(InsertOp) || d.Has(DeleteOp) || d.Has(ReplaceOp)
}

func mapValues(m map[string]rune, vs []ir.Value) []rune {
	rs := make([]rune, len(vs))
	for i, v := range vs {
		sum := summaryStr(v)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

func summaryStr(v ir.Value) string {
	switch v.Type {
	case ir.BoolType:
		return v.Type.String() + "-" + strconv.FormatBool(v.Bool)
	case ir.StringType:
		if strings.Contains(v.String, "\n") {
			return v.Type.String() + "/m"
		}
		return v.Type.String() + "-" + v.String
	case ir.NumberType:
		if v.IsInt() {
			return v.Type.String() + "-i-" + strconv.FormatInt(*v.Int64, 10)
		}
		return v.Type.String() + "-f-" + strconv.FormatFloat(*v.Float64, 'g', -1, 64)
	default:
		return v.Type.String()
	}
}
