package ir

import "fmt"

// Type tags the variant held by a [Value].
type Type int

const (
	NullType Type = iota
	BoolType
	NumberType
	StringType
	NodeType
	ListType
	TupleType
	OpaqueType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:   "Null",
		BoolType:   "Bool",
		NumberType: "Number",
		StringType: "String",
		NodeType:   "Node",
		ListType:   "List",
		TupleType:  "Tuple",
		OpaqueType: "Opaque",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":   NullType,
		"Bool":   BoolType,
		"Number": NumberType,
		"String": StringType,
		"Node":   NodeType,
		"List":   ListType,
		"Tuple":  TupleType,
		"Opaque": OpaqueType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		BoolType,
		NumberType,
		StringType,
		NodeType,
		ListType,
		TupleType,
		OpaqueType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case NodeType, ListType, TupleType:
		return false
	default:
		return true
	}
}

// IsSeq reports whether t is one of the two sequence kinds.
func (t Type) IsSeq() bool {
	return t == ListType || t == TupleType
}
