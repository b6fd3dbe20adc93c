package types

// CompositeKind distinguishes the composite declaration kinds the arena
// can hold (spec glossary "Composite").
type CompositeKind int

const (
	CompositeClass CompositeKind = iota
	CompositeStructure
	CompositeObject
	CompositeProtocol
	CompositeNamespace
	CompositeEnumeration
	CompositeFunction
)

func (k CompositeKind) String() string {
	switch k {
	case CompositeClass:
		return "class"
	case CompositeStructure:
		return "structure"
	case CompositeObject:
		return "object"
	case CompositeProtocol:
		return "protocol"
	case CompositeNamespace:
		return "namespace"
	case CompositeEnumeration:
		return "enumeration"
	case CompositeFunction:
		return "function"
	default:
		return "unknown"
	}
}

// Composite is the type-level description of a declared class/structure/
// object/protocol/namespace/enumeration: its name, kind, direct
// superclasses/adopted protocols (Inherits), and declared generic
// parameter types.
type Composite struct {
	Name             string
	Kind             CompositeKind
	Inherits         []*Composite
	GenericParams    []Type
	GenericArguments []Type // arguments this specific instantiation carries
}

// AcceptsA: a composite C accepts D iff D is C or inherits from C through
// the full inheritance chain, and (if generic parameters are declared)
// each parameter type accepts the corresponding generic argument of D.
func (c Composite) AcceptsA(other Type) bool {
	var d *Composite
	var dArgs []Type
	switch v := other.(type) {
	case Composite:
		d = &v
		dArgs = v.GenericArguments
	case Reference:
		d = v.Target
		dArgs = v.Arguments
	default:
		return false
	}
	if d == nil || !c.identicalOrAncestorOf(d) {
		return false
	}
	if len(c.GenericParams) == 0 {
		return true
	}
	if len(dArgs) != len(c.GenericParams) {
		return false
	}
	for i, p := range c.GenericParams {
		if !p.AcceptsA(dArgs[i]) {
			return false
		}
	}
	return true
}

func (c Composite) identicalOrAncestorOf(d *Composite) bool {
	if d == nil {
		return false
	}
	if d.Name == c.Name && d.Kind == c.Kind {
		return true
	}
	for _, parent := range d.Inherits {
		if c.identicalOrAncestorOf(parent) {
			return true
		}
	}
	return false
}

func (c Composite) Normalize() Type { return c }

func (c Composite) String() string { return c.Name }

// Reference is a composite plus an optional generic-argument list — the
// "never concrete" wrapper form a script-level variable actually holds
// (spec's type table: "composite + optional generic-argument list").
type Reference struct {
	Target    *Composite
	Arguments []Type
}

func (r Reference) AcceptsA(other Type) bool {
	if r.Target == nil {
		return false
	}
	return Composite{
		Name: r.Target.Name, Kind: r.Target.Kind,
		Inherits: r.Target.Inherits, GenericParams: r.Target.GenericParams,
	}.AcceptsA(other)
}

func (r Reference) Normalize() Type { return r }

func (r Reference) String() string {
	if r.Target == nil {
		return "ref <nil>"
	}
	s := "ref " + r.Target.Name
	if len(r.Arguments) > 0 {
		s += "<" + joinTypes(r.Arguments, ", ") + ">"
	}
	return s
}
