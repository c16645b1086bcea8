package ir

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// KeyOf normalizes x for use as a Node key. Only null, bools, numbers,
// strings and tuples of those are hashable.
func KeyOf(x any) (Value, error) {
	k := ValueOf(x)
	if _, err := keyID(k); err != nil {
		return Value{}, err
	}
	return k, nil
}

// mustKey is like KeyOf but panics on unhashable keys, as indexing a Go
// map with an unhashable interface key does.
func mustKey(x any) (Value, string) {
	k := ValueOf(x)
	id, err := keyID(k)
	if err != nil {
		panic(err)
	}
	return k, id
}

// keyID returns the identity of a key: two keys address the same entry
// iff their ids are equal. Integral floats share the id of the equal int.
func keyID(k Value) (string, error) {
	var b strings.Builder
	if err := writeKeyID(&b, k); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeKeyID(b *strings.Builder, k Value) error {
	switch k.Type {
	case NullType:
		b.WriteByte('n')
	case BoolType:
		if k.Bool {
			b.WriteString("b1")
		} else {
			b.WriteString("b0")
		}
	case NumberType:
		if i, ok := k.integral(); ok {
			b.WriteByte('i')
			b.WriteString(strconv.FormatInt(i, 10))
			return nil
		}
		f := *k.Float64
		b.WriteByte('f')
		if math.IsNaN(f) {
			b.WriteString("NaN")
			return nil
		}
		b.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	case StringType:
		b.WriteByte('s')
		b.WriteString(strconv.Itoa(len(k.String)))
		b.WriteByte(':')
		b.WriteString(k.String)
	case TupleType:
		b.WriteString("t(")
		for i := range k.Values {
			if i != 0 {
				b.WriteByte(',')
			}
			if err := writeKeyID(b, k.Values[i]); err != nil {
				return err
			}
		}
		b.WriteByte(')')
	default:
		return fmt.Errorf("%w: %s", ErrUnhashable, k.Type)
	}
	return nil
}
