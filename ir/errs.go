package ir

import "errors"

var (
	// ErrInvalidArgument reports a constructor or Update argument that is
	// not a mapping or an iterable of pairs, or too many mapping arguments.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrMalformedPairs reports an iterable argument whose elements are
	// not 2-element pairs.
	ErrMalformedPairs = errors.New("malformed pair sequence")
	// ErrReservedName reports an attribute-style write to a name that
	// belongs to the Node's own operations.
	ErrReservedName = errors.New("reserved name")
	// ErrUnsupportedAdd reports an addition that is not defined for its
	// operands.
	ErrUnsupportedAdd = errors.New("unsupported augmented assignment")

	ErrUnhashable     = errors.New("unhashable key")
	ErrNotNode        = errors.New("not a node")
	ErrUnsupportedKey = errors.New("unsupported key")
	ErrOpaque         = errors.New("opaque value")
)
