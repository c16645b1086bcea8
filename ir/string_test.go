package ir

import (
	"math"
	"testing"
)

func TestRepr(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, "None"},
		{true, "True"},
		{3, "3"},
		{2.0, "2.0"},
		{1e21, "1e+21"},
		{math.Inf(-1), "-inf"},
		{"it's", `"it's"`},
		{`a'b"c`, `'a\'b"c'`},
		{"tab\there", `'tab\there'`},
		{Tuple{}, "()"},
		{Tuple{1}, "(1,)"},
		{Tuple{1, "a"}, "(1, 'a')"},
		{[]any{}, "[]"},
		{Map{P("a", Map{P("b", Map{P("c", []int{1, 2, 3})})})}, "{'a': {'b': {'c': [1, 2, 3]}}}"},
		{Map{P(Tuple{1, 2}, nil), P(1.5, false)}, "{(1, 2): None, 1.5: False}"},
	}
	for _, tc := range tests {
		if got := ValueOf(tc.in).Repr(); got != tc.want {
			t.Errorf("repr of %#v = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestNodeStringMatchesPlain(t *testing.T) {
	n := MustNew(Map{P("b", 1), P("a", []any{Tuple{1}})})
	if n.String() != ValueOf(n.ToPairs()).Repr() {
		t.Errorf("%s != %s", n, ValueOf(n.ToPairs()).Repr())
	}
	var empty Node
	if empty.String() != "{}" {
		t.Errorf("zero Node: %s", empty.String())
	}
}
