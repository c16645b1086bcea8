package libdiff

import "github.com/attrtree/go-attrtree/ir"

// DiffNumber treats an int and a float as different even when they are
// equal.
func DiffNumber(from, to ir.Value) *ir.Node {
	if from.IsInt() != to.IsInt() {
		return MakeDiff(&from, &to)
	}
	if from.IsInt() {
		if *from.Int64 != *to.Int64 {
			return MakeDiff(&from, &to)
		}
		return nil
	}
	if !ir.Equal(from, to) {
		return MakeDiff(&from, &to)
	}
	return nil
}
