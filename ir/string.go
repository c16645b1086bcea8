package ir

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// String returns the repr of n, which is the same as the repr of the
// plain mapping holding the same data, in order:
//
//	{'a': {'b': {'c': [1, 2, 3]}}, 'k': (1,)}
func (n *Node) String() string {
	return reprValue(FromNode(n))
}

// Repr returns the repr of v.
func (v Value) Repr() string {
	return reprValue(v)
}

func reprValue(v Value) string {
	var b strings.Builder
	writeRepr(&b, v, map[*Node]bool{})
	return b.String()
}

func writeRepr(b *strings.Builder, v Value, seen map[*Node]bool) {
	switch v.Type {
	case NullType:
		b.WriteString("None")
	case BoolType:
		if v.Bool {
			b.WriteString("True")
		} else {
			b.WriteString("False")
		}
	case NumberType:
		if v.Int64 != nil {
			b.WriteString(strconv.FormatInt(*v.Int64, 10))
			return
		}
		f, _ := v.Float()
		b.WriteString(formatFloat(f))
	case StringType:
		b.WriteString(quote(v.String))
	case NodeType:
		if seen[v.Node] {
			b.WriteString("{...}")
			return
		}
		seen[v.Node] = true
		defer delete(seen, v.Node)
		b.WriteByte('{')
		for i, e := range v.Node.kl.Values {
			if i != 0 {
				b.WriteString(", ")
			}
			writeRepr(b, e.Key, seen)
			b.WriteString(": ")
			writeRepr(b, e.Value, seen)
		}
		b.WriteByte('}')
	case ListType:
		b.WriteByte('[')
		writeReprs(b, v.Values, seen)
		b.WriteByte(']')
	case TupleType:
		b.WriteByte('(')
		writeReprs(b, v.Values, seen)
		if len(v.Values) == 1 {
			b.WriteByte(',')
		}
		b.WriteByte(')')
	case OpaqueType:
		fmt.Fprintf(b, "%v", v.Opaque)
	}
}

func writeReprs(b *strings.Builder, vs []Value, seen map[*Node]bool) {
	for i := range vs {
		if i != 0 {
			b.WriteString(", ")
		}
		writeRepr(b, vs[i], seen)
	}
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// quote uses single quotes unless s contains a single quote and no
// double quote.
func quote(s string) string {
	q := byte('\'')
	if strings.IndexByte(s, '\'') >= 0 && strings.IndexByte(s, '"') < 0 {
		q = '"'
	}
	var b strings.Builder
	b.WriteByte(q)
	for _, r := range s {
		switch {
		case r == rune(q) || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case unicode.IsPrint(r):
			b.WriteRune(r)
		case r < 0x100:
			fmt.Fprintf(&b, `\x%02x`, r)
		case r < 0x10000:
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			fmt.Fprintf(&b, `\U%08x`, r)
		}
	}
	b.WriteByte(q)
	return b.String()
}
