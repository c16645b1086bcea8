package mergeop

import "github.com/attrtree/go-attrtree/ir"

// restoreNode maps the decoded JSON in res back onto orig.
func restoreNode(orig, res *ir.Node) *ir.Node {
	out := &ir.Node{}
	seen := map[string]bool{}
	for _, e := range orig.Entries() {
		k, err := ir.JSONKey(e.Key)
		if err != nil {
			continue
		}
		v, ok := res.Lookup(k)
		if !ok || seen[k] {
			continue
		}
		seen[k] = true
		out.Set(e.Key, restoreValue(e.Value, v))
	}
	for _, e := range res.Entries() {
		if !seen[e.Key.String] {
			out.Set(e.Key, e.Value)
		}
	}
	return out
}

func restoreValue(orig, res ir.Value) ir.Value {
	switch {
	case orig.Type == ir.NodeType && res.Type == ir.NodeType:
		return ir.FromNode(restoreNode(orig.Node, res.Node))
	case orig.Type.IsSeq() && res.Type == ir.ListType && len(orig.Values) == len(res.Values):
		vs := make([]ir.Value, len(res.Values))
		for i := range vs {
			vs[i] = restoreValue(orig.Values[i], res.Values[i])
		}
		if orig.Type == ir.TupleType {
			return ir.FromTuple(vs)
		}
		return ir.FromList(vs)
	case orig.Type == ir.NumberType && ir.Equal(orig, res):
		return orig
	}
	return res
}
