package ir

import (
	"errors"
	"testing"
)

func TestAddAssignVivified(t *testing.T) {
	n := &Node{}
	if err := n.Attr("x").AddAttr("y", 1); err != nil {
		t.Fatal(err)
	}
	if got := n.Attr("x").Attr("y"); !got.IsInt() || *got.Int64 != 1 {
		t.Fatalf("x.y = %s", got.Repr())
	}
	if err := n.Attr("x").AddAttr("y", 1); err != nil {
		t.Fatal(err)
	}
	if got := n.Attr("x").Attr("y"); !got.IsInt() || *got.Int64 != 2 {
		t.Errorf("x.y = %s", got.Repr())
	}

	m := &Node{}
	if err := m.AddAssign("s", "abc"); err != nil {
		t.Fatal(err)
	}
	if err := m.AddAssign("l", []int{1}); err != nil {
		t.Fatal(err)
	}
	if m.String() != "{'s': 'abc', 'l': [1]}" {
		t.Errorf("got %s", m)
	}
}

func TestAddAssignErrors(t *testing.T) {
	n2 := &Node{}
	if err := n2.Attr("x").SetAttr("y", "s"); err != nil {
		t.Fatal(err)
	}
	if err := n2.Attr("x").AddAttr("y", 1); !errors.Is(err, ErrUnsupportedAdd) {
		t.Errorf("string += int: %v", err)
	}
	if n2.String() != "{'x': {'y': 's'}}" {
		t.Errorf("changed on error: %s", n2)
	}

	n := MustNew(Map{P("a", Map{P("b", 1)})})
	if err := n.AddAssign("a", 1); !errors.Is(err, ErrUnsupportedAdd) {
		t.Errorf("non-empty Node += int: %v", err)
	}

	e := &Node{}
	if err := e.AddAttr("keys", 1); !errors.Is(err, ErrReservedName) {
		t.Errorf("reserved: %v", err)
	}
	if e.Len() != 0 {
		t.Errorf("changed on error: %s", e)
	}
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want string
		err  error
	}{
		{"empty node", FromNode(&Node{}), FromInt(3), "3", nil},
		{"empty node string", FromNode(&Node{}), FromString("s"), "'s'", nil},
		{"ints", FromInt(1), FromInt(2), "3", nil},
		{"int float", FromInt(1), FromFloat(1.5), "2.5", nil},
		{"floats", FromFloat(0.5), FromFloat(0.5), "1.0", nil},
		{"bool int", FromBool(true), FromInt(1), "2", nil},
		{"int bool", FromInt(1), FromBool(true), "2", nil},
		{"float bool", FromFloat(0.5), FromBool(false), "0.5", nil},
		{"bools", FromBool(true), FromBool(true), "2", nil},
		{"strings", FromString("a"), FromString("b"), "'ab'", nil},
		{"lists", ValueOf([]int{1}), ValueOf([]int{2}), "[1, 2]", nil},
		{"tuples", ValueOf(Tuple{1}), ValueOf(Tuple{2}), "(1, 2)", nil},
		{"list tuple", ValueOf([]int{1}), ValueOf(Tuple{2}), "", ErrUnsupportedAdd},
		{"string int", FromString("a"), FromInt(1), "", ErrUnsupportedAdd},
		{"null int", Null(), FromInt(1), "", ErrUnsupportedAdd},
		{"full node", ValueOf(Map{P("a", 1)}), FromInt(1), "", ErrUnsupportedAdd},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Add(tc.a, tc.b)
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Errorf("got %v want %v", err, tc.err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got.Repr() != tc.want {
				t.Errorf("got %s want %s", got.Repr(), tc.want)
			}
		})
	}
}

func TestAddDoesNotAliasLists(t *testing.T) {
	a := ValueOf([]int{1})
	a.Values = a.Values[:1:1]
	res, err := Add(a, ValueOf([]int{2}))
	if err != nil {
		t.Fatal(err)
	}
	res.Values[0] = FromInt(9)
	if *a.Values[0].Int64 != 1 {
		t.Errorf("operand changed: %s", a.Repr())
	}
}
