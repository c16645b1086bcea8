package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse   = errors.New("parse error")
	ErrMapKey  = fmt.Errorf("%w: mapping key cannot be a mapping", ErrParse)
	ErrNotNode = fmt.Errorf("%w: document is not a mapping", ErrParse)
)
