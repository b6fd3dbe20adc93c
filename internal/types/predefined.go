package types

// Predefined is one of the 17 fixed kinds from spec §4.5, each with a
// hardcoded acceptance predicate rather than structural data.
type Predefined struct {
	Name string
}

// predefinedPredicates mirrors the table in spec §4.5. Each predicate
// receives the candidate type being tested via AcceptsA.
var predefinedPredicates = map[string]func(other Type) bool{
	"void": func(other Type) bool { return isVoid(other) },
	"_":    func(other Type) bool { return true },
	"any":  func(other Type) bool { _, ok := other.(Primitive); return ok },
	"bool": func(other Type) bool { return isPrimitiveKind(other, PrimitiveBool) },
	"int":  func(other Type) bool { return isPrimitiveKind(other, PrimitiveInteger) },
	"float": func(other Type) bool { return isPrimitiveKind(other, PrimitiveFloat) },
	"string": func(other Type) bool { return isPrimitiveKind(other, PrimitiveString) },
	"type": func(other Type) bool { return isPrimitiveKind(other, PrimitiveType) },
	"dict": func(other Type) bool { _, ok := other.(Dictionary); return ok },
	"Any": func(other Type) bool {
		switch other.(type) {
		case Composite, Reference:
			return true
		}
		return false
	},
	"Class":       func(other Type) bool { return isCompositeKind(other, CompositeClass) },
	"Enumeration": func(other Type) bool { return isCompositeKind(other, CompositeEnumeration) },
	"Function":    func(other Type) bool { return isCompositeKind(other, CompositeFunction) },
	"Namespace":   func(other Type) bool { return isCompositeKind(other, CompositeNamespace) },
	"Object":      func(other Type) bool { return isCompositeKind(other, CompositeObject) },
	"Protocol":    func(other Type) bool { return isCompositeKind(other, CompositeProtocol) },
	"Structure":   func(other Type) bool { return isCompositeKind(other, CompositeStructure) },
}

// PredefinedNames lists the 17 fixed kinds in table order, for CLI/
// diagnostic enumeration and tests that assert completeness.
var PredefinedNames = []string{
	"void", "_", "any", "bool", "int", "float", "string", "type", "dict",
	"Any", "Class", "Enumeration", "Function", "Namespace", "Object",
	"Protocol", "Structure",
}

func (p Predefined) AcceptsA(other Type) bool {
	pred, ok := predefinedPredicates[p.Name]
	if !ok {
		return false
	}
	return pred(other)
}

func (p Predefined) Normalize() Type { return p }
func (p Predefined) String() string  { return p.Name }

func isPrimitiveKind(t Type, kind PrimitiveKind) bool {
	p, ok := t.(Primitive)
	return ok && p.Kind == kind
}

func isCompositeKind(t Type, kind CompositeKind) bool {
	switch v := t.(type) {
	case Composite:
		return v.Kind == kind
	case Reference:
		return v.Target != nil && v.Target.Kind == kind
	}
	return false
}
