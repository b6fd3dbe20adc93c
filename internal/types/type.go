// Package types implements the thirteen-variant type lattice used to check
// and normalize values and declared types (spec §4.4, §4.5).
package types

// Type is implemented by every lattice variant.
type Type interface {
	// AcceptsA reports whether this type accepts a value or type of
	// shape other, per the per-variant contract in spec §4.4.
	AcceptsA(other Type) bool
	// Normalize returns an equivalent type in canonical form.
	Normalize() Type
	// String renders the type for diagnostics.
	String() string
}

// ConformsTo is the mirror operation: T.ConformsTo(U) == U.AcceptsA(T).
func ConformsTo(t, u Type) bool { return u.AcceptsA(t) }

// Parenthesized groups a type expression; AcceptsA and Normalize both
// delegate to Inner.
type Parenthesized struct {
	Inner Type
}

func (p Parenthesized) AcceptsA(other Type) bool { return p.Inner.AcceptsA(other) }
func (p Parenthesized) Normalize() Type          { return p.Inner.Normalize() }
func (p Parenthesized) String() string           { return "(" + p.Inner.String() + ")" }

// Nillable(X) accepts Void, any Nillable(Y) where X accepts Y, or any Y
// where X accepts Y (i.e. it also accepts X directly per spec §9's open
// question resolution).
type Nillable struct {
	Inner Type
}

func (n Nillable) AcceptsA(other Type) bool {
	if isVoid(other) {
		return true
	}
	if on, ok := other.(Nillable); ok {
		return n.Inner.AcceptsA(on.Inner)
	}
	return n.Inner.AcceptsA(other)
}

func (n Nillable) Normalize() Type {
	inner := n.Inner.Normalize()
	// nested Nillable/Default collapse to a single Nillable
	switch v := inner.(type) {
	case Nillable:
		return Nillable{Inner: v.Inner}.Normalize()
	case Default:
		return Nillable{Inner: v.Inner}.Normalize()
	}
	return Nillable{Inner: inner}
}

func (n Nillable) String() string { return n.Inner.String() + "?" }

// Default(X) is semantically identical to Nillable(X) but kept as a
// distinct kind so diagnostics can distinguish "declared optional" from
// "has a default value" (spec §4.4).
type Default struct {
	Inner Type
	Value Type // the default value's own type, informational only
}

func (d Default) AcceptsA(other Type) bool {
	return Nillable{Inner: d.Inner}.AcceptsA(other)
}

func (d Default) Normalize() Type {
	return Nillable{Inner: d.Inner}.Normalize()
}

func (d Default) String() string { return d.Inner.String() + " = ..." }

func isVoid(t Type) bool {
	p, ok := t.(Predefined)
	return ok && p.Name == "void"
}
