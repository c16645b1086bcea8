package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestToPlain(t *testing.T) {
	n := MustNew(Map{
		P("a", Map{P("b", []any{1, Map{P("c", 2.5)}})}),
		P("t", Tuple{1, nil}),
		P(Tuple{1, "x"}, true),
		P(3, "three"),
	})
	want := map[any]any{
		"a":                   map[any]any{"b": []any{int64(1), map[any]any{"c": 2.5}}},
		"t":                   Tuple{int64(1), nil},
		[2]any{int64(1), "x"}: true,
		int64(3):              "three",
	}
	got := n.ToPlain()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToPlain mismatch (-want +got):\n%s", diff)
	}
	if _, isNode := got["a"].(*Node); isNode {
		t.Errorf("Node left in plain form")
	}
}

func TestPlainRoundTrip(t *testing.T) {
	inputs := []any{
		map[string]any{},
		map[string]any{"a": 1, "b": []any{1, "x", map[string]any{"c": nil}}},
		map[string]any{"t": Tuple{1, Tuple{2, map[string]any{"d": false}}}},
		map[any]any{1: "a", "1": "b", true: 1.5},
	}
	for _, x := range inputs {
		n := MustNew(x)
		if !n.Equal(x) {
			t.Errorf("New(%v) = %s is not equal to its input", x, n)
		}
		if !n.Equal(n.ToPlain()) {
			t.Errorf("ToPlain of %s is not equal", n)
		}
		if !Equal(ValueOf(n.ToPairs()), FromNode(n)) {
			t.Errorf("ToPairs of %s is not equal", n)
		}
	}
}

func TestToPairs(t *testing.T) {
	n := MustNew(Map{P("z", 1), P("a", Map{P("y", Tuple{1})})})
	want := Map{P("z", int64(1)), P("a", Map{P("y", Tuple{int64(1)})})}
	if diff := cmp.Diff(want, n.ToPairs()); diff != "" {
		t.Errorf("ToPairs mismatch (-want +got):\n%s", diff)
	}
}

func TestToStringMap(t *testing.T) {
	n := MustNew(Map{P("a", Map{P(1, Tuple{true})}), P(nil, "x")})
	got, err := n.ToStringMap()
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"a":    map[string]any{"1": []any{true}},
		"null": "x",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToStringMap mismatch (-want +got):\n%s", diff)
	}

	bad := MustNew(Map{P("a", Map{P(Tuple{1}, 1)})})
	if _, err := bad.ToStringMap(); !errors.Is(err, ErrUnsupportedKey) {
		t.Errorf("tuple key: %v", err)
	}
}
