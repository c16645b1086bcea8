package libdiff

import "github.com/attrtree/go-attrtree/ir"

// DiffNode diffs two Nodes key by key. Keys only in from are deleted,
// keys only in to are inserted and shared keys recurse with df. Key
// order is not part of the diff.
func DiffNode(from, to *ir.Node, df DiffFunc) *ir.Node {
	res := &ir.Node{}
	for _, e := range from.Entries() {
		tv, ok := to.Lookup(e.Key)
		if !ok {
			res.Set(e.Key, MakeDiff(&e.Value, nil))
			continue
		}
		if d := df(e.Value, tv); d != nil {
			res.Set(e.Key, d)
		}
	}
	for _, e := range to.Entries() {
		if from.Has(e.Key) {
			continue
		}
		res.Set(e.Key, MakeDiff(nil, &e.Value))
	}
	if res.Len() == 0 {
		return nil
	}
	return op(ObjectOp, ir.FromNode(res))
}
