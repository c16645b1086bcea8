package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path is a parsed path expression such as
//
//	$.a.'b.c'[0]
//
// A field selects a string key of a Node. An index selects an element
// of a sequence, or the int key of a Node. [*] selects every element or
// value and .. selects every Node and sequence at any depth; both are
// only meaningful to [Node.ListPath].
type Path struct {
	IndexAll bool
	Index    *int
	Field    *string
	Subtree  bool
	Next     *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	x := p
	for x != nil {
		if x.Subtree {
			buf.WriteString("..")
			x = x.Next
			continue
		}
		if x.IndexAll {
			buf.WriteString("[*]")
			x = x.Next
			continue
		}
		if x.Field != nil {
			buf.WriteString("." + pathString(*x.Field))
			x = x.Next
			continue
		}
		if x.Index != nil {
			fmt.Fprintf(buf, "[%d]", *x.Index)
			x = x.Next
			continue
		}
		x = x.Next
	}
	return buf.String()
}

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("path %q should start with '$'", p)
	}
	root := &Path{}
	if len(p) == 1 {
		return root, nil
	}
	err := parseFrag(p[1:], root)
	if err != nil {
		return nil, fmt.Errorf("path %q: %w", p, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	if len(frag) == 0 {
		return nil
	}
	switch frag[0] {
	case '.':
		if len(frag) > 1 && frag[1] == '.' {
			parent.Subtree = true
			next := &Path{}
			err := parseFrag(frag[2:], next)
			if err != nil {
				return err
			}
			parent.Next = next
			return nil
		}
		field, rest, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		if len(rest) == 0 {
			return nil
		}
		next := &Path{}
		err = parseFrag(rest, next)
		if err != nil {
			return err
		}
		parent.Next = next
		return nil
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		index, all, err := parseIndex(frag[1 : i+1])
		if err != nil {
			return err
		}
		parent.IndexAll = all
		if !all {
			parent.Index = &index
		}
		if len(frag) == i+2 {
			return nil
		}
		next := &Path{}
		err = parseFrag(frag[i+2:], next)
		if err != nil {
			return err
		}
		parent.Next = next
		return nil
	default:
		return fmt.Errorf("expected '.' or '['")
	}
}

func parseIndex(is string) (index int, all bool, err error) {
	if len(is) == 1 && is[0] == '*' {
		return 0, true, nil
	}
	i64, err := strconv.ParseInt(is, 10, 64)
	if err != nil {
		return 0, false, err
	}
	return int(i64), false, nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch c {
		case '\\':
			if escaped {
				escaped = false
				res = append(res, c)
				continue
			}
			escaped = true
		case '\'':
			if !escaped {
				return string(res), frag[i+1:], nil
			}
			fallthrough
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

func pathString(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[]\\") == -1 {
		return f
	}
	f = strings.ReplaceAll(f, "\\", "\\\\")
	return "'" + strings.ReplaceAll(f, "'", "\\'") + "'"
}

// key returns the key a path segment selects in a Node.
func (p *Path) key() any {
	if p.Field != nil {
		return *p.Field
	}
	return *p.Index
}

// GetPath returns the value at path and whether it exists. Unlike
// [Node.Get] it never creates entries.
func (n *Node) GetPath(path string) (Value, bool, error) {
	yp, err := ParsePath(path)
	if err != nil {
		return Value{}, false, err
	}
	res := FromNode(n)
	for ; yp != nil; yp = yp.Next {
		if yp.IndexAll {
			return Value{}, false, fmt.Errorf("any index in get")
		}
		if yp.Subtree {
			return Value{}, false, fmt.Errorf("recurse .. in get")
		}
		if yp.Field == nil && yp.Index == nil {
			continue
		}
		switch {
		case res.Type == NodeType:
			v, ok := res.Node.Lookup(yp.key())
			if !ok {
				return Value{}, false, nil
			}
			res = v
		case res.Type.IsSeq() && yp.Index != nil:
			index := *yp.Index
			if index < 0 || index >= len(res.Values) {
				return Value{}, false, nil
			}
			res = res.Values[index]
		default:
			return Value{}, false, fmt.Errorf("%w: cannot select %s in %s", ErrNotNode, yp.stepString(), res.Type)
		}
	}
	return res, true, nil
}

// SetPath stores x at path, creating missing Nodes on the way as
// [Node.Get] does. An index past the end of a list is an error, and
// tuples cannot be assigned into.
func (n *Node) SetPath(path string, x any) error {
	yp, err := ParsePath(path)
	if err != nil {
		return err
	}
	if yp.Field == nil && yp.Index == nil && yp.Next == nil {
		return fmt.Errorf("cannot set the root")
	}
	cur := FromNode(n)
	for ; yp != nil; yp = yp.Next {
		if yp.IndexAll || yp.Subtree {
			return fmt.Errorf("wildcard in set")
		}
		if yp.Field == nil && yp.Index == nil {
			continue
		}
		last := yp.Next == nil
		switch {
		case cur.Type == NodeType:
			if last {
				cur.Node.Set(yp.key(), x)
				return nil
			}
			cur = cur.Node.Get(yp.key())
		case cur.Type == ListType && yp.Index != nil:
			index := *yp.Index
			if index < 0 || index >= len(cur.Values) {
				return fmt.Errorf("index out of bounds %d (len %d)", index, len(cur.Values))
			}
			if last {
				cur.Values[index] = ValueOf(x)
				return nil
			}
			cur = cur.Values[index]
		default:
			return fmt.Errorf("%w: cannot assign %s in %s", ErrNotNode, yp.stepString(), cur.Type)
		}
	}
	return nil
}

func (p *Path) stepString() string {
	if p.Field != nil {
		return "." + pathString(*p.Field)
	}
	return "[" + strconv.Itoa(*p.Index) + "]"
}

// ListPath returns every value matched by path, which may contain [*]
// and .. wildcards. Like [Node.GetPath] it never creates entries.
func (n *Node) ListPath(dst []Value, path string) ([]Value, error) {
	yp, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return listPath(dst, FromNode(n), yp), nil
}

func listPath(dst []Value, v Value, yp *Path) []Value {
	if yp == nil {
		return append(dst, v)
	}
	if yp.Subtree {
		visit(v, func(x Value) {
			if !x.Type.IsLeaf() {
				dst = listPath(dst, x, yp.Next)
			}
		})
		return dst
	}
	if yp.Field == nil && yp.Index == nil && !yp.IndexAll {
		return listPath(dst, v, yp.Next)
	}
	switch v.Type {
	case NodeType:
		if yp.IndexAll {
			for _, e := range v.Node.Entries() {
				dst = listPath(dst, e.Value, yp.Next)
			}
			return dst
		}
		if x, ok := v.Node.Lookup(yp.key()); ok {
			dst = listPath(dst, x, yp.Next)
		}
		return dst
	case ListType, TupleType:
		if yp.Field != nil {
			return dst
		}
		if yp.IndexAll {
			for _, x := range v.Values {
				dst = listPath(dst, x, yp.Next)
			}
			return dst
		}
		idx := *yp.Index
		if 0 <= idx && idx < len(v.Values) {
			dst = listPath(dst, v.Values[idx], yp.Next)
		}
	}
	return dst
}

// visit calls f on v and then on everything below it, depth first.
func visit(v Value, f func(Value)) {
	f(v)
	switch v.Type {
	case NodeType:
		for _, e := range v.Node.Entries() {
			visit(e.Value, f)
		}
	case ListType, TupleType:
		for _, x := range v.Values {
			visit(x, f)
		}
	}
}
