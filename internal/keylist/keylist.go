// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package keylist implements an ordered list (slice) of items,
with a map from a key to indexes, to support fast lookup by key
while retaining insertion order.

Keys and values are held in separate parallel slices so that values
can be accessed and replaced in place without going through a tuple.
*/
package keylist

import "slices"

// List implements an ordered list (slice) of Values,
// with a map from a key to indexes.
// The zero value is an empty list ready to use.
type List[K comparable, V any] struct {
	// Values is the ordered slice of items.
	Values []V

	// Keys is the ordered list of keys, in same order as [List.Values]
	Keys []K

	// indexes is the key-to-index mapping.
	indexes map[K]int
}

func (kl *List[K, V]) makeIndexes() {
	kl.indexes = make(map[K]int, len(kl.Keys))
	for i, k := range kl.Keys {
		kl.indexes[k] = i
	}
}

// initIndexes ensures that the index map exists.
func (kl *List[K, V]) initIndexes() {
	if kl.indexes == nil {
		kl.makeIndexes()
	}
}

// Reset resets the list, removing any existing elements.
func (kl *List[K, V]) Reset() {
	kl.Values = nil
	kl.Keys = nil
	kl.indexes = nil
}

// Set sets given key to given value, adding to the end of the list
// if not already present, and otherwise replacing the value in place,
// keeping its position. This is the same semantics as a Go map.
func (kl *List[K, V]) Set(key K, val V) {
	kl.initIndexes()
	if idx, ok := kl.indexes[key]; ok {
		kl.Values[idx] = val
		return
	}
	kl.indexes[key] = len(kl.Values)
	kl.Values = append(kl.Values, val)
	kl.Keys = append(kl.Keys, key)
}

// AtTry returns the value corresponding to the given key,
// with false returned for a missing key.
func (kl *List[K, V]) AtTry(key K) (V, bool) {
	kl.initIndexes()
	idx, ok := kl.indexes[key]
	if ok {
		return kl.Values[idx], true
	}
	var zv V
	return zv, false
}

// IndexByKey returns the index of the given key, with a -1 for missing key.
func (kl *List[K, V]) IndexByKey(key K) int {
	kl.initIndexes()
	idx, ok := kl.indexes[key]
	if !ok {
		return -1
	}
	return idx
}

// Len returns the number of items in the list.
func (kl *List[K, V]) Len() int {
	if kl == nil {
		return 0
	}
	return len(kl.Values)
}

// DeleteByIndex deletes item(s) within the index range [i:j].
// This is relatively slow because it needs to regenerate the
// index map.
func (kl *List[K, V]) DeleteByIndex(i, j int) {
	ndel := j - i
	if ndel <= 0 {
		panic("index range is <= 0")
	}
	kl.Keys = slices.Delete(kl.Keys, i, j)
	kl.Values = slices.Delete(kl.Values, i, j)
	kl.makeIndexes()
}

// DeleteByKey deletes the item with the given key,
// returning false if it does not find it.
func (kl *List[K, V]) DeleteByKey(key K) bool {
	idx := kl.IndexByKey(key)
	if idx < 0 {
		return false
	}
	kl.DeleteByIndex(idx, idx+1)
	return true
}

// Retain keeps only the items for which keep returns true,
// preserving their relative order.
func (kl *List[K, V]) Retain(keep func(key K, val V) bool) {
	n := 0
	for i := range kl.Keys {
		if !keep(kl.Keys[i], kl.Values[i]) {
			continue
		}
		kl.Keys[n] = kl.Keys[i]
		kl.Values[n] = kl.Values[i]
		n++
	}
	clear(kl.Keys[n:])
	clear(kl.Values[n:])
	kl.Keys = kl.Keys[:n]
	kl.Values = kl.Values[:n]
	kl.makeIndexes()
}

// Clone returns a shallow copy of the list: the key and value slices
// are new, the items themselves are copied by assignment.
func (kl *List[K, V]) Clone() *List[K, V] {
	res := &List[K, V]{
		Keys:   slices.Clone(kl.Keys),
		Values: slices.Clone(kl.Values),
	}
	res.makeIndexes()
	return res
}
