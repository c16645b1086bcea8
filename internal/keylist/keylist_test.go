package keylist

import (
	"slices"
	"testing"
)

func TestSetKeepsFirstPosition(t *testing.T) {
	var kl List[string, int]
	kl.Set("a", 1)
	kl.Set("b", 2)
	kl.Set("a", 3)
	if got, want := kl.Keys, []string{"a", "b"}; !slices.Equal(got, want) {
		t.Errorf("Keys = %v, want %v", got, want)
	}
	if got, want := kl.Values, []int{3, 2}; !slices.Equal(got, want) {
		t.Errorf("Values = %v, want %v", got, want)
	}
}

func TestDeleteByKey(t *testing.T) {
	var kl List[string, int]
	kl.Set("a", 1)
	kl.Set("b", 2)
	kl.Set("c", 3)
	if !kl.DeleteByKey("b") {
		t.Fatalf("DeleteByKey(b) = false")
	}
	if kl.DeleteByKey("b") {
		t.Errorf("second DeleteByKey(b) = true")
	}
	if idx := kl.IndexByKey("c"); idx != 1 {
		t.Errorf("IndexByKey(c) = %d, want 1", idx)
	}
	if v, ok := kl.AtTry("c"); !ok || v != 3 {
		t.Errorf("AtTry(c) = %d, %t", v, ok)
	}
}

func TestRetain(t *testing.T) {
	var kl List[string, int]
	for i, k := range []string{"a", "b", "c", "d"} {
		kl.Set(k, i)
	}
	kl.Retain(func(_ string, v int) bool { return v%2 == 1 })
	if got, want := kl.Keys, []string{"b", "d"}; !slices.Equal(got, want) {
		t.Errorf("Keys = %v, want %v", got, want)
	}
	if idx := kl.IndexByKey("d"); idx != 1 {
		t.Errorf("IndexByKey(d) = %d, want 1", idx)
	}
	if idx := kl.IndexByKey("a"); idx != -1 {
		t.Errorf("IndexByKey(a) = %d, want -1", idx)
	}
}

func TestClone(t *testing.T) {
	var kl List[string, int]
	kl.Set("a", 1)
	c := kl.Clone()
	c.Set("a", 2)
	c.Set("b", 3)
	if v, _ := kl.AtTry("a"); v != 1 {
		t.Errorf("original changed: a = %d", v)
	}
	if kl.Len() != 1 || c.Len() != 2 {
		t.Errorf("Len = %d, %d", kl.Len(), c.Len())
	}
}
