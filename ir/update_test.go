package ir

import (
	"errors"
	"testing"
)

func TestUpdate(t *testing.T) {
	tests := []struct {
		name string
		recv any
		args []any
		want string
	}{
		{
			name: "recursive",
			recv: Map{P("a", Map{P("x", 1)})},
			args: []any{Map{P("a", Map{P("y", 2)})}},
			want: "{'a': {'x': 1, 'y': 2}}",
		},
		{
			name: "leaf replaced by node",
			recv: Map{P("a", 1)},
			args: []any{Map{P("a", Map{P("y", 2)})}},
			want: "{'a': {'y': 2}}",
		},
		{
			name: "node replaced by leaf",
			recv: Map{P("a", Map{P("y", 2)}), P("b", 1)},
			args: []any{Map{P("a", 1)}},
			want: "{'a': 1, 'b': 1}",
		},
		{
			name: "right biased",
			recv: Map{P("a", Map{P("x", 1), P("z", 0)})},
			args: []any{Map{P("a", Map{P("x", 2)})}},
			want: "{'a': {'x': 2, 'z': 0}}",
		},
		{
			name: "lists replaced",
			recv: Map{P("a", []any{1, 2, Map{P("a", "superman")}}), P("someother", 1)},
			args: []any{Map{P("a", []any{Map{P("b", 123)}})}},
			want: "{'a': [{'b': 123}], 'someother': 1}",
		},
		{
			name: "pairs",
			recv: Map{P("a", 1)},
			args: []any{[][2]any{{"b", 2}, {"a", 3}}},
			want: "{'a': 3, 'b': 2}",
		},
		{
			name: "kw after positional",
			recv: Map{P("a", 1)},
			args: []any{Kw{P("c", Map{P("x", 1)})}, Map{P("b", 2), P("c", 5)}},
			want: "{'a': 1, 'b': 2, 'c': {'x': 1}}",
		},
		{
			name: "kw only",
			recv: Map{P("a", Map{P("x", 1)})},
			args: []any{Kw{P("a", Map{P("y", 1)})}},
			want: "{'a': {'x': 1, 'y': 1}}",
		},
		{
			name: "go map",
			recv: Map{},
			args: []any{map[string]any{"b": map[string]int{"c": 1}, "a": nil}},
			want: "{'a': None, 'b': {'c': 1}}",
		},
		{
			name: "nothing",
			recv: Map{P("a", 1)},
			want: "{'a': 1}",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := MustNew(tc.recv)
			if err := n.Update(tc.args...); err != nil {
				t.Fatal(err)
			}
			if got := n.String(); got != tc.want {
				t.Errorf("got %s want %s", got, tc.want)
			}
		})
	}
}

func TestUpdateErrors(t *testing.T) {
	tests := []struct {
		name string
		args []any
		want error
	}{
		{"two sources", []any{Map{P("b", 1)}, Map{P("c", 1)}}, ErrInvalidArgument},
		{"two pair lists", []any{[]Pair{P("b", 1)}, []Pair{P("c", 1)}}, ErrInvalidArgument},
		{"number", []any{5}, ErrInvalidArgument},
		{"string", []any{"ab"}, ErrMalformedPairs},
		{"bad pair late", []any{[]any{Tuple{"b", 1}, 3}}, ErrMalformedPairs},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := MustNew(Map{P("a", 1)})
			err := n.Update(tc.args...)
			if !errors.Is(err, tc.want) {
				t.Errorf("got %v want %v", err, tc.want)
			}
			if n.String() != "{'a': 1}" {
				t.Errorf("changed on error: %s", n)
			}
		})
	}
}

func TestUpdateNormalizesNestedLists(t *testing.T) {
	n := &Node{}
	if err := n.Update(Map{P("a", []any{map[string]any{"b": 123}})}); err != nil {
		t.Fatal(err)
	}
	if n.Get("a").Values[0].Type != NodeType {
		t.Errorf("list element is %s", n.Get("a").Values[0].Type)
	}
	if err := n.Get("a").Values[0].SetAttr("c", 1); err != nil {
		t.Error(err)
	}
}

func TestUpdateDoesNotMutateSource(t *testing.T) {
	src := MustNew(Map{P("a", Map{P("y", 2)})})
	n := MustNew(Map{P("a", Map{P("x", 1)})})
	if err := n.Update(src); err != nil {
		t.Fatal(err)
	}
	if src.String() != "{'a': {'y': 2}}" {
		t.Errorf("source changed: %s", src)
	}
}

func TestUpdateSourceStaysIndependent(t *testing.T) {
	src := MustNew(Map{P("a", Map{P("y", 2)}), P("l", []any{Map{P("k", 1)}})})
	n := &Node{}
	if err := n.Update(src); err != nil {
		t.Fatal(err)
	}
	n.Child("a").Set("z", 3)
	if err := n.Update(Map{P("a", Map{P("q", 9)})}); err != nil {
		t.Fatal(err)
	}
	if err := n.Get("l").Values[0].Set("k", 2); err != nil {
		t.Fatal(err)
	}
	if src.String() != "{'a': {'y': 2}, 'l': [{'k': 1}]}" {
		t.Errorf("source changed through receiver: %s", src)
	}
	if n.String() != "{'a': {'y': 2, 'z': 3, 'q': 9}, 'l': [{'k': 2}]}" {
		t.Errorf("got %s", n)
	}
}

func TestUpdateSelf(t *testing.T) {
	n := MustNew(Map{P("a", Map{P("x", 1)})})
	if err := n.Update(n); err != nil {
		t.Fatal(err)
	}
	if n.String() != "{'a': {'x': 1}}" {
		t.Errorf("got %s", n)
	}
}
