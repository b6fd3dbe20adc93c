package types

// PrimitiveKind enumerates the value shapes a Primitive type can hold.
type PrimitiveKind int

const (
	PrimitiveVoid PrimitiveKind = iota
	PrimitiveBool
	PrimitiveInteger
	PrimitiveFloat
	PrimitiveString
	PrimitiveType // a primitive holding a type value ("meta-type")
)

func (k PrimitiveKind) String() string {
	switch k {
	case PrimitiveVoid:
		return "Void"
	case PrimitiveBool:
		return "Bool"
	case PrimitiveInteger:
		return "Integer"
	case PrimitiveFloat:
		return "Float"
	case PrimitiveString:
		return "String"
	case PrimitiveType:
		return "Type"
	default:
		return "Unknown"
	}
}

// Primitive is a built-in value type. For Kind == PrimitiveType, MetaType
// holds the type this primitive's value itself describes (spec §4.4:
// "for Type-primitives, the stored meta-type accepts the stored meta-type
// of T").
type Primitive struct {
	Kind     PrimitiveKind
	MetaType Type
}

func (p Primitive) AcceptsA(other Type) bool {
	op, ok := other.(Primitive)
	if !ok || op.Kind != p.Kind {
		return false
	}
	if p.Kind == PrimitiveType {
		if p.MetaType == nil || op.MetaType == nil {
			return p.MetaType == op.MetaType
		}
		return p.MetaType.AcceptsA(op.MetaType)
	}
	return true
}

func (p Primitive) Normalize() Type {
	if p.MetaType != nil {
		return Primitive{Kind: p.Kind, MetaType: p.MetaType.Normalize()}
	}
	return p
}

func (p Primitive) String() string {
	if p.Kind == PrimitiveType && p.MetaType != nil {
		return "Type<" + p.MetaType.String() + ">"
	}
	return p.Kind.String()
}
