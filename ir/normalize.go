package ir

import (
	"encoding/json"
	"fmt"
	"iter"
	"maps"
	"math"
	"reflect"
	"slices"
	"strconv"

	"github.com/attrtree/go-attrtree/debug"
)

// ValueOf normalizes a Go value. Mappings anywhere inside x, including
// inside sequences, become Nodes:
//
//   - nil gives null; bool, string, the integer and float kinds and
//     json.Number give the matching primitive
//   - a *Node, or a Value holding Nodes or sequences, gives new Nodes
//     and sequences with the same entries, so the result shares no
//     container with x
//   - Map, Kw and any Go map give a new Node; Go map keys are sorted
//     with [Compare]
//   - Tuple, Pair and Go arrays give a tuple; []byte is opaque; other
//     slices give a list
//   - anything else is opaque
//
// ValueOf panics if a Go map has keys which are not hashable.
func ValueOf(x any) Value {
	switch v := x.(type) {
	case nil:
		return Null()
	case Value:
		return rebuild(v, map[*Node]*Node{})
	case *Node:
		if v == nil {
			return Null()
		}
		return rebuild(FromNode(v), map[*Node]*Node{})
	case bool:
		return FromBool(v)
	case string:
		return FromString(v)
	case int:
		return FromInt(int64(v))
	case int8:
		return FromInt(int64(v))
	case int16:
		return FromInt(int64(v))
	case int32:
		return FromInt(int64(v))
	case int64:
		return FromInt(v)
	case uint:
		return fromUint(uint64(v))
	case uint8:
		return FromInt(int64(v))
	case uint16:
		return FromInt(int64(v))
	case uint32:
		return FromInt(int64(v))
	case uint64:
		return fromUint(v)
	case float32:
		return FromFloat(float64(v))
	case float64:
		return FromFloat(v)
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return FromInt(i)
		}
		if f, err := v.Float64(); err == nil {
			return FromFloat(f)
		}
		return FromString(string(v))
	case Map:
		return FromNode(nodeFromPairs(v))
	case Kw:
		return FromNode(nodeFromPairs(v))
	case Pair:
		return FromTuple([]Value{ValueOf(v.Key), ValueOf(v.Value)})
	case Tuple:
		return FromTuple(valuesOf(v))
	case []any:
		return FromList(valuesOf(v))
	case []byte:
		return FromOpaque(v)
	case map[string]any:
		n := &Node{}
		for _, k := range slices.Sorted(maps.Keys(v)) {
			n.set(FromString(k), ValueOf(v[k]))
		}
		return FromNode(n)
	}
	return valueOfReflect(reflect.ValueOf(x))
}

// rebuild copies the Nodes and sequences of v. Leaves are kept. A Node
// met again below itself maps to its own copy, so cycles stay cycles.
func rebuild(v Value, open map[*Node]*Node) Value {
	switch v.Type {
	case NodeType:
		if c, ok := open[v.Node]; ok {
			return FromNode(c)
		}
		c := &Node{}
		open[v.Node] = c
		for _, e := range v.Node.kl.Values {
			c.set(e.Key, rebuild(e.Value, open))
		}
		delete(open, v.Node)
		return FromNode(c)
	case ListType, TupleType:
		vs := make([]Value, len(v.Values))
		for i := range v.Values {
			vs[i] = rebuild(v.Values[i], open)
		}
		v.Values = vs
	}
	return v
}

func fromUint(u uint64) Value {
	if u > math.MaxInt64 {
		return FromFloat(float64(u))
	}
	return FromInt(int64(u))
}

func valuesOf(xs []any) []Value {
	res := make([]Value, len(xs))
	for i, x := range xs {
		res[i] = ValueOf(x)
	}
	return res
}

func valueOfReflect(rv reflect.Value) Value {
	switch rv.Kind() {
	case reflect.Map:
		return FromNode(nodeFromReflectMap(rv))
	case reflect.Slice:
		if rv.IsNil() {
			return FromList(nil)
		}
		return FromList(reflectElems(rv))
	case reflect.Array:
		return FromTuple(reflectElems(rv))
	case reflect.Bool:
		return FromBool(rv.Bool())
	case reflect.String:
		return FromString(rv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return FromInt(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return fromUint(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return FromFloat(rv.Float())
	}
	if debug.Normalize() {
		debug.Logf("normalize: opaque leaf %T\n", rv.Interface())
	}
	return FromOpaque(rv.Interface())
}

func reflectElems(rv reflect.Value) []Value {
	res := make([]Value, rv.Len())
	for i := range res {
		res[i] = ValueOf(rv.Index(i).Interface())
	}
	return res
}

func nodeFromReflectMap(rv reflect.Value) *Node {
	entries := make([]Entry, 0, rv.Len())
	it := rv.MapRange()
	for it.Next() {
		k, err := KeyOf(it.Key().Interface())
		if err != nil {
			panic(err)
		}
		entries = append(entries, Entry{Key: k, Value: ValueOf(it.Value().Interface())})
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		return Compare(a.Key, b.Key)
	})
	n := &Node{}
	for _, e := range entries {
		n.set(e.Key, e.Value)
	}
	return n
}

func nodeFromPairs(ps []Pair) *Node {
	n := &Node{}
	for _, p := range ps {
		k, _ := mustKey(p.Key)
		n.set(k, ValueOf(p.Value))
	}
	return n
}

// source is one positional argument of New or Update, flattened to its
// pairs in iteration order.
type source struct {
	pairs   []Pair
	mapping bool
}

// sourceOf classifies a positional argument. Mappings (*Node, Map, Go
// maps) give their entries; a single Pair, or a 2-element Tuple or array
// whose first element is not itself a pair, gives one pair; everything
// iterable gives its elements, each of which must be a pair.
func sourceOf(arg any) (source, error) {
	switch v := arg.(type) {
	case nil:
		return source{}, nil
	case *Node:
		if v == nil {
			return source{}, nil
		}
		ps := make([]Pair, 0, v.Len())
		for _, e := range v.kl.Values {
			ps = append(ps, Pair{Key: e.Key, Value: e.Value})
		}
		return source{pairs: ps, mapping: true}, nil
	case Map:
		return source{pairs: v, mapping: true}, nil
	case Value:
		switch {
		case v.Type == NodeType:
			return sourceOf(v.Node)
		case v.Type.IsSeq():
			return pairsOfElems(len(v.Values), func(i int) any { return v.Values[i] })
		}
		return source{}, fmt.Errorf("%w: %s is not a mapping or an iterable of pairs", ErrInvalidArgument, v.Type)
	case Pair:
		return source{pairs: []Pair{v}}, nil
	case []Pair:
		return source{pairs: v}, nil
	case Tuple:
		if len(v) == 2 && !isPairLike(v[0]) {
			return source{pairs: []Pair{{Key: v[0], Value: v[1]}}}, nil
		}
		return pairsOfElems(len(v), func(i int) any { return v[i] })
	case string:
		if v == "" {
			return source{}, nil
		}
		return source{}, fmt.Errorf("%w: element 0 of string %q is not a pair", ErrMalformedPairs, v)
	case iter.Seq[Pair]:
		var ps []Pair
		for p := range v {
			ps = append(ps, p)
		}
		return source{pairs: ps}, nil
	case iter.Seq2[any, any]:
		var ps []Pair
		for k, x := range v {
			ps = append(ps, Pair{Key: k, Value: x})
		}
		return source{pairs: ps}, nil
	}
	rv := reflect.ValueOf(arg)
	switch rv.Kind() {
	case reflect.Map:
		n := nodeFromReflectMap(rv)
		ps := make([]Pair, 0, n.Len())
		for _, e := range n.kl.Values {
			ps = append(ps, Pair{Key: e.Key, Value: e.Value})
		}
		return source{pairs: ps, mapping: true}, nil
	case reflect.Array:
		if rv.Len() == 2 && !isPairLike(rv.Index(0).Interface()) {
			return source{pairs: []Pair{{Key: rv.Index(0).Interface(), Value: rv.Index(1).Interface()}}}, nil
		}
		return pairsOfElems(rv.Len(), func(i int) any { return rv.Index(i).Interface() })
	case reflect.Slice:
		return pairsOfElems(rv.Len(), func(i int) any { return rv.Index(i).Interface() })
	case reflect.Func:
		return pairsOfSeq(rv)
	}
	return source{}, fmt.Errorf("%w: %T is not a mapping or an iterable of pairs", ErrInvalidArgument, arg)
}

func pairsOfElems(n int, at func(int) any) (source, error) {
	ps := make([]Pair, 0, n)
	for i := range n {
		p, ok := pairOf(at(i))
		if !ok {
			return source{}, fmt.Errorf("%w: element %d (%T) is not a 2-element pair", ErrMalformedPairs, i, at(i))
		}
		ps = append(ps, p)
	}
	return source{pairs: ps}, nil
}

// pairsOfSeq consumes a range-over-func iterator, either an iter.Seq of
// pair-like elements or an iter.Seq2 of keys and values.
func pairsOfSeq(rv reflect.Value) (source, error) {
	t := rv.Type()
	if t.NumIn() != 1 || t.NumOut() != 0 || rv.IsNil() {
		return source{}, fmt.Errorf("%w: %s is not an iterator", ErrInvalidArgument, t)
	}
	yt := t.In(0)
	if yt.Kind() != reflect.Func || yt.NumOut() != 1 || yt.Out(0).Kind() != reflect.Bool {
		return source{}, fmt.Errorf("%w: %s is not an iterator", ErrInvalidArgument, t)
	}
	var (
		ps  []Pair
		err error
	)
	yes := []reflect.Value{reflect.ValueOf(true)}
	no := []reflect.Value{reflect.ValueOf(false)}
	var yield reflect.Value
	switch yt.NumIn() {
	case 1:
		yield = reflect.MakeFunc(yt, func(args []reflect.Value) []reflect.Value {
			p, ok := pairOf(args[0].Interface())
			if !ok {
				err = fmt.Errorf("%w: element %d is not a 2-element pair", ErrMalformedPairs, len(ps))
				return no
			}
			ps = append(ps, p)
			return yes
		})
	case 2:
		yield = reflect.MakeFunc(yt, func(args []reflect.Value) []reflect.Value {
			ps = append(ps, Pair{Key: args[0].Interface(), Value: args[1].Interface()})
			return yes
		})
	default:
		return source{}, fmt.Errorf("%w: %s is not an iterator", ErrInvalidArgument, t)
	}
	rv.Call([]reflect.Value{yield})
	if err != nil {
		return source{}, err
	}
	return source{pairs: ps}, nil
}

func isPairLike(x any) bool {
	_, ok := pairOf(x)
	return ok
}

// pairOf accepts a Pair or any 2-element tuple, array or slice.
func pairOf(x any) (Pair, bool) {
	switch v := x.(type) {
	case Pair:
		return v, true
	case Tuple:
		if len(v) != 2 {
			return Pair{}, false
		}
		return Pair{Key: v[0], Value: v[1]}, true
	case Value:
		if !v.Type.IsSeq() || len(v.Values) != 2 {
			return Pair{}, false
		}
		return Pair{Key: v.Values[0], Value: v.Values[1]}, true
	case string, []byte:
		return Pair{}, false
	}
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Array, reflect.Slice:
		if rv.Len() != 2 {
			return Pair{}, false
		}
		return Pair{Key: rv.Index(0).Interface(), Value: rv.Index(1).Interface()}, true
	}
	return Pair{}, false
}

// collect merges positional and named arguments into one ordered Node,
// later keys overriding earlier ones in place. maxPositional < 0 means
// any number of pair iterables but at most one mapping, and a mapping
// must then be the only non-empty positional argument.
func collect(args []any, maxPositional int) (*Node, error) {
	var (
		positional []source
		named      []Pair
	)
	for i, arg := range args {
		if kw, ok := arg.(Kw); ok {
			named = append(named, kw...)
			continue
		}
		src, err := sourceOf(arg)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		positional = append(positional, src)
	}
	if maxPositional >= 0 && len(positional) > maxPositional {
		return nil, fmt.Errorf("%w: expected at most %d positional argument(s), got %d", ErrInvalidArgument, maxPositional, len(positional))
	}
	nonEmpty, mappings := 0, 0
	for _, src := range positional {
		if src.mapping {
			mappings++
		}
		if len(src.pairs) != 0 || src.mapping {
			nonEmpty++
		}
	}
	if mappings > 1 || (mappings == 1 && nonEmpty > 1) {
		return nil, fmt.Errorf("%w: a mapping argument must be the only positional argument", ErrInvalidArgument)
	}
	res := &Node{}
	for _, src := range positional {
		for _, p := range src.pairs {
			if err := res.putPair(p); err != nil {
				return nil, err
			}
		}
	}
	for _, p := range named {
		if err := res.putPair(p); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (n *Node) putPair(p Pair) error {
	k := ValueOf(p.Key)
	if _, err := keyID(k); err != nil {
		return fmt.Errorf("key %s: %w", describe(k), err)
	}
	n.set(k, ValueOf(p.Value))
	return nil
}

func describe(v Value) string {
	switch v.Type {
	case StringType:
		return strconv.Quote(v.String)
	case NodeType, ListType, TupleType:
		return v.Type.String()
	}
	return reprValue(v)
}
