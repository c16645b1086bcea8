package libdiff

import (
	"fmt"

	"github.com/attrtree/go-attrtree/ir"
)

func PatchStringRunes(doc string, patch *ir.Node) (string, error) {
	ops, err := indexedOps(patch)
	if err != nil {
		return "", err
	}
	txt := []rune(doc)
	res := make([]rune, 0, len(txt))
	fi := 0
	for _, op := range ops {
		if op.at < fi || op.at > len(txt) {
			return "", fmt.Errorf("%w: strdiff offset %d out of range", ErrConflict, op.at)
		}
		res = append(res, txt[fi:op.at]...)
		fi = op.at
		switch op.name {
		case InsertOp:
			if op.arg.Type != ir.StringType {
				return "", fmt.Errorf("%w: strdiff %s of %s", ErrMalformed, op.name, op.arg.Type)
			}
			res = append(res, []rune(op.arg.String)...)
		case DeleteOp:
			if fi, err = consumeRunes(txt, fi, op.arg); err != nil {
				return "", err
			}
		case ReplaceOp:
			from, to, err := fromTo(op.arg)
			if err != nil {
				return "", err
			}
			if to.Type != ir.StringType {
				return "", fmt.Errorf("%w: strdiff %s to %s", ErrMalformed, op.name, to.Type)
			}
			if fi, err = consumeRunes(txt, fi, from); err != nil {
				return "", err
			}
			res = append(res, []rune(to.String)...)
		default:
			return "", fmt.Errorf("%w: unexpected strdiff op %s", ErrMalformed, op.name)
		}
	}
	return string(append(res, txt[fi:]...)), nil
}

func consumeRunes(txt []rune, fi int, want ir.Value) (int, error) {
	if want.Type != ir.StringType {
		return 0, fmt.Errorf("%w: strdiff run of %s", ErrMalformed, want.Type)
	}
	if !runesHasPrefix(txt[fi:], want.String) {
		return 0, fmt.Errorf("%w: unexpected text %q, expected %q", ErrConflict, string(txt[fi:]), want.String)
	}
	return fi + len([]rune(want.String)), nil
}

func runesHasPrefix(txt []rune, str string) bool {
	n := 0
	for _, r := range str {
		if n >= len(txt) || txt[n] != r {
			return false
		}
		n++
	}
	return true
}
