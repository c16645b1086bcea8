package libdiff

import "errors"

// Each diff is a Node with a single entry. The key names the operation
// and the value holds its argument.
const (
	InsertOp    = "!insert"
	DeleteOp    = "!delete"
	ReplaceOp   = "!replace"
	ObjectOp    = "!object"
	ArrayDiffOp = "!arraydiff"
	StrDiffOp   = "!strdiff"
)

var (
	ErrMalformed = errors.New("malformed diff")
	ErrConflict  = errors.New("diff does not apply")
)
