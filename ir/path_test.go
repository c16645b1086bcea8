package ir

import (
	"testing"
)

type pathTest struct {
	Path  string
	Doc   any
	Res   string
	NoGet bool
}

var pathTests = []pathTest{
	{
		Path: "$",
		Doc:  Map{},
		Res:  "{}",
	},
	{
		Path: "$.f",
		Doc:  Map{P("f", 1)},
		Res:  "1",
	},
	{
		Path: "$.f[1]",
		Doc:  Map{P("f", []any{1, 2, 3})},
		Res:  "2",
	},
	{
		Path: "$.f[1].g",
		Doc:  Map{P("f", []any{0, Map{P("g", 2), P("h", 3)}})},
		Res:  "2",
	},
	{
		Path: "$.'f[3]'[2]",
		Doc:  Map{P("a", []any{1, 2}), P("f[3]", []any{0, 1, 2, "three"})},
		Res:  "2",
	},
	{
		Path: "$[3]",
		Doc:  Map{P(3, "int key")},
		Res:  "'int key'",
	},
	{
		Path:  "$.f[*]",
		Doc:   Map{P("f", []any{1, 2})},
		Res:   "[1, 2]",
		NoGet: true,
	},
	{
		Path:  "$...x",
		Doc:   Map{P("x", 1), P("a", Map{P("x", 2), P("l", []any{Map{P("x", 3)}})})},
		Res:   "[1, 2, 3]",
		NoGet: true,
	},
	{
		Path:  "$.a[*].b",
		Doc:   Map{P("a", Map{P("p", Map{P("b", 1)}), P("q", Map{P("c", 2)}), P("r", Map{P("b", 3)})})},
		Res:   "[1, 3]",
		NoGet: true,
	},
}

func TestPaths(t *testing.T) {
	for _, pt := range pathTests {
		t.Run(pt.Path, func(t *testing.T) {
			n := MustNew(pt.Doc)
			if !pt.NoGet {
				v, ok, err := n.GetPath(pt.Path)
				if err != nil || !ok {
					t.Fatalf("GetPath: %t %v", ok, err)
				}
				if got := v.Repr(); got != pt.Res {
					t.Errorf("got %s want %s", got, pt.Res)
				}
				return
			}
			vs, err := n.ListPath(nil, pt.Path)
			if err != nil {
				t.Fatal(err)
			}
			if got := FromList(vs).Repr(); got != pt.Res {
				t.Errorf("got %s want %s", got, pt.Res)
			}
			if _, _, err := n.GetPath(pt.Path); err == nil {
				t.Errorf("GetPath accepted wildcard")
			}
		})
	}
}

func TestPathString(t *testing.T) {
	for _, s := range []string{"$", "$.a.b", "$.'a.b'[3]", "$[*].x", "$...y", "$..", `$.'it\'s'`} {
		p, err := ParsePath(s)
		if err != nil {
			t.Fatalf("%s: %v", s, err)
		}
		if p.String() != s {
			t.Errorf("got %s want %s", p, s)
		}
	}
	for _, s := range []string{"", "a", "$.", "$[x]", "$.'a", "$[1"} {
		if _, err := ParsePath(s); err == nil {
			t.Errorf("%q parsed", s)
		}
	}
}

func TestSetPath(t *testing.T) {
	n := MustNew(Map{P("l", []any{1, Map{}}), P("t", Tuple{1}), P("s", "x")})
	if err := n.SetPath("$.a.b.c", 1); err != nil {
		t.Fatal(err)
	}
	if err := n.SetPath("$.l[1].k", true); err != nil {
		t.Fatal(err)
	}
	if err := n.SetPath("$.l[0]", "zero"); err != nil {
		t.Fatal(err)
	}
	want := "{'l': ['zero', {'k': True}], 't': (1,), 's': 'x', 'a': {'b': {'c': 1}}}"
	if n.String() != want {
		t.Errorf("got %s want %s", n, want)
	}
	for _, p := range []string{"$", "$.l[5]", "$.t[0]", "$.s.x", "$.l[*]"} {
		if err := n.SetPath(p, 1); err == nil {
			t.Errorf("SetPath(%s) succeeded", p)
		}
	}
}
