package ir

// Truth reports whether v is truthy: non-empty Nodes and sequences,
// non-empty strings, non-zero numbers and true. Opaque leaves are truthy.
func Truth(v Value) bool {
	switch v.Type {
	case NodeType:
		return v.Node.Len() != 0
	case ListType, TupleType:
		return len(v.Values) != 0
	case StringType:
		return v.String != ""
	case NumberType:
		f, _ := v.Float()
		return f != 0
	case BoolType:
		return v.Bool
	case NullType:
		return false
	case OpaqueType:
		return true
	default:
		panic("type")
	}
}
