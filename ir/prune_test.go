package ir

import "testing"

type pruneTest struct {
	name string
	in   any
	opts []PruneOption
	want string
}

var pruneTests = []pruneTest{
	{
		name: "empty nodes",
		in:   Map{P("a", Map{P("b", Map{})}), P("c", 2)},
		want: "{'c': 2}",
	},
	{
		name: "zero kept by default",
		in:   Map{P("a", 1), P("c", 0)},
		want: "{'a': 1, 'c': 0}",
	},
	{
		name: "prune zero",
		in:   Map{P("a", 1), P("c", 0)},
		opts: []PruneOption{PruneZero(true)},
		want: "{'a': 1}",
	},
	{
		name: "prune zero float, never false",
		in:   Map{P("f", false), P("z", 0.0), P("l", []any{0, false, 1})},
		opts: []PruneOption{PruneZero(true)},
		want: "{'f': False, 'l': [False, 1]}",
	},
	{
		name: "null and empty string kept",
		in:   Map{P("n", nil), P("s", ""), P("o", Map{})},
		want: "{'n': None, 's': ''}",
	},
	{
		name: "empty list",
		in:   Map{P("l", []any{}), P("a", 1)},
		want: "{'a': 1}",
	},
	{
		name: "keep empty list",
		in:   Map{P("l", []any{}), P("a", 1)},
		opts: []PruneOption{PruneEmptyList(false)},
		want: "{'l': [], 'a': 1}",
	},
	{
		name: "empty tuple always pruned",
		in:   Map{P("t", Tuple{}), P("a", 1)},
		opts: []PruneOption{PruneEmptyList(false)},
		want: "{'a': 1}",
	},
	{
		name: "sequence elements",
		in:   Map{P("l", []any{Map{}, 1, []any{}, Tuple{Map{}}})},
		want: "{'l': [1]}",
	},
	{
		name: "sequence elements keeping lists",
		in:   Map{P("l", []any{[]any{}, Tuple{}, Tuple{Map{}, 2}})},
		opts: []PruneOption{PruneEmptyList(false)},
		want: "{'l': [[], (2,)]}",
	},
	{
		name: "collapse through sequences",
		in:   Map{P("a", Map{P("b", []any{Map{P("c", Tuple{})}})}), P("k", 1)},
		want: "{'k': 1}",
	},
	{
		name: "list of nodes",
		in:   Map{P("l", []any{Map{P("a", Map{}), P("b", 1)}, Map{P("c", Map{})}})},
		want: "{'l': [{'b': 1}]}",
	},
	{
		name: "non-string keys",
		in:   Map{P(1, Map{}), P(Tuple{1, 2}, 3)},
		want: "{(1, 2): 3}",
	},
}

func TestPrune(t *testing.T) {
	for _, tc := range pruneTests {
		t.Run(tc.name, func(t *testing.T) {
			n := MustNew(tc.in)
			res := n.Prune(tc.opts...)
			if res != n {
				t.Errorf("Prune returned a different Node")
			}
			if got := n.String(); got != tc.want {
				t.Errorf("got %s want %s", got, tc.want)
			}
			again := n.DeepClone().Prune(tc.opts...)
			if !Equal(FromNode(again), FromNode(n)) {
				t.Errorf("not idempotent: %s then %s", n, again)
			}
		})
	}
}

func TestPruneUnreadBranches(t *testing.T) {
	n := &Node{}
	n.Attr("a").Attr("b").Attr("c").Attr("d")
	n.Attr("b")
	if err := n.SetAttr("c", 2); err != nil {
		t.Fatal(err)
	}
	n.Prune()
	if !n.Equal(map[string]int{"c": 2}) {
		t.Errorf("got %s", n)
	}
}

func TestPruneStoredNodeIsCopied(t *testing.T) {
	inner := MustNew(Map{P("x", Map{})})
	n := MustNew(Map{P("a", inner), P("b", inner)})
	n.Prune()
	if n.String() != "{}" {
		t.Errorf("got %s", n)
	}
	if inner.String() != "{'x': {}}" {
		t.Errorf("pruning reached the stored Node: %s", inner)
	}
}

func TestPruneValue(t *testing.T) {
	child := MustNew(Map{P("e", Map{}), P("k", 1)})
	v := ValueOf(Tuple{Map{}, child, 0})
	got := PruneValue(v, PruneZero(true))
	if len(v.Values) != 3 {
		t.Errorf("input sequence changed: %s", v.Repr())
	}
	if got.Type != TupleType || got.Repr() != "({'k': 1},)" {
		t.Errorf("got %s", got.Repr())
	}
	if c := v.Values[1].Node; c.String() != "{'k': 1}" {
		t.Errorf("Node in sequence not pruned in place: %s", c)
	}
	if child.Len() != 2 {
		t.Errorf("normalized input changed: %s", child)
	}
	if s := PruneValue(FromString("")); s.Type != StringType {
		t.Errorf("leaf changed: %s", s.Repr())
	}
}
