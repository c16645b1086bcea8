package ir

import (
	"errors"
	"slices"
	"testing"
)

func TestReservedAttr(t *testing.T) {
	n := &Node{}
	for _, name := range []string{"keys", "items", "update", "prune", "to_plain", "Keys", "Update"} {
		if err := n.SetAttr(name, 2); !errors.Is(err, ErrReservedName) {
			t.Errorf("SetAttr(%s): %v", name, err)
		}
	}
	if n.Len() != 0 {
		t.Fatalf("node changed: %s", n)
	}
	if v := n.Attr("keys"); v.Type != NullType || n.Len() != 0 {
		t.Errorf("reading a reserved attribute created %s", n)
	}

	n.Set("keys", 2)
	if v := n.Attr("keys"); !v.IsInt() || *v.Int64 != 2 {
		t.Errorf("key named keys: %s", v.Repr())
	}
	if !n.DelAttr("keys") {
		t.Errorf("DelAttr(keys)")
	}
}

func TestAttrEquivalence(t *testing.T) {
	n := &Node{}
	if err := n.SetAttr("a", 1); err != nil {
		t.Fatal(err)
	}
	if v := n.Get("a"); *v.Int64 != 1 {
		t.Errorf("Get(a) = %s", v.Repr())
	}
	n.Set("b", 2)
	if v, ok := n.LookupAttr("b"); !ok || *v.Int64 != 2 {
		t.Errorf("LookupAttr(b) = %s", v.Repr())
	}
	n.DelAttr("a")
	if n.Has("a") {
		t.Errorf("DelAttr did not delete key")
	}
}

func TestDir(t *testing.T) {
	n := MustNew(Map{P("foo", 1), P(3, "x"), P("__members__", 1), P("keys", 0)})
	dir := n.Dir()
	if !slices.IsSorted(dir) {
		t.Errorf("not sorted: %v", dir)
	}
	for _, name := range []string{"foo", "__members__", "keys", "Update", "to_plain"} {
		if !slices.Contains(dir, name) {
			t.Errorf("%s missing from %v", name, dir)
		}
	}
	if slices.Contains(dir, "3") {
		t.Errorf("non-string key listed")
	}
	if len(slices.Compact(slices.Clone(dir))) != len(dir) {
		t.Errorf("duplicates in %v", dir)
	}
	if got := n.Keys(); len(got) != 4 || got[2].String != "__members__" {
		t.Errorf("keys %v", keyStrings(n))
	}
	if len((&Node{}).Dir()) != len(ReservedNames()) {
		t.Errorf("empty Node lists extra names")
	}
}
