package ir

import (
	"fmt"

	"github.com/attrtree/go-attrtree/debug"
)

// Update deep-merges a source into n. args holds at most one positional
// source, a mapping or an iterable of pairs as accepted by [New], plus
// any number of Kw, which are applied after it.
//
// For each key of the source, if both n and the source hold a Node the
// two are merged recursively. Otherwise the normalized source value
// replaces what n holds; in particular lists are replaced as a whole,
// never merged element by element. Nodes and sequences stored this way
// are new, so later changes to n never reach the source.
//
// Arguments are checked before n is touched, so on error n is unchanged.
func (n *Node) Update(args ...any) error {
	src, err := collect(args, 1)
	if err != nil {
		return fmt.Errorf("update: %w", err)
	}
	n.merge(src)
	return nil
}

func (n *Node) merge(src *Node) {
	for _, e := range src.kl.Values {
		id, _ := keyID(e.Key)
		cur, ok := n.lookupID(id)
		if ok && cur.Type == NodeType && e.Value.Type == NodeType {
			if debug.Update() {
				debug.Logf("update: merge %s\n", reprValue(e.Key))
			}
			cur.Node.merge(e.Value.Node)
			continue
		}
		if debug.Update() {
			debug.Logf("update: set %s = %s\n", reprValue(e.Key), e.Value.Type)
		}
		n.set(e.Key, e.Value)
	}
}
