package mergeop

import "errors"

var (
	ErrPatch      = errors.New("patch error")
	ErrMergePatch = errors.New("merge patch error")
)
