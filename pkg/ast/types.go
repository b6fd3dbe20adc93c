package ast

// The following node kinds mirror the thirteen-variant type lattice (spec
// §4.5): each is an AST-level spelling the parser produces from a type
// expression, later resolved into a runtime types.Type by internal/types.

// ParenthesizedType is `(T)`, used to group a type expression away from
// surrounding union/intersection operators.
type ParenthesizedType struct {
	base
	Inner Node
}

func NewParenthesizedType(span Range, inner Node) *ParenthesizedType {
	return &ParenthesizedType{base: newBase("parenthesizedType", span), Inner: inner}
}

// NillableType is `T?`; per spec it also accepts T directly, which is
// enforced at the types.Type level rather than here.
type NillableType struct {
	base
	Inner Node
}

func NewNillableType(span Range, inner Node) *NillableType {
	return &NillableType{base: newBase("nillableType", span), Inner: inner}
}

// DefaultType is `T = value`, pairing a type with a default expression
// (used in parameter and dictionary-entry positions).
type DefaultType struct {
	base
	Inner Node
	Value Node
}

func NewDefaultType(span Range, inner, value Node) *DefaultType {
	return &DefaultType{base: newBase("defaultType", span), Inner: inner, Value: value}
}

// UnionType and IntersectionType hold two or more member types joined by
// `|` / `&` respectively.
type UnionType struct {
	base
	Members []Node
}

func NewUnionType(span Range, members []Node) *UnionType {
	return &UnionType{base: newBase("unionType", span), Members: members}
}

type IntersectionType struct {
	base
	Members []Node
}

func NewIntersectionType(span Range, members []Node) *IntersectionType {
	return &IntersectionType{base: newBase("intersectionType", span), Members: members}
}

// PredefinedType names a fixed built-in type keyword (e.g. `void`, `_`),
// matched against the predefined-type acceptance table (spec §4.5).
type PredefinedType struct {
	base
	Name string
}

func NewPredefinedType(span Range, name string) *PredefinedType {
	return &PredefinedType{base: newBase("predefinedType", span), Name: name}
}

// PrimitiveType is the parser's node for a lowercase-initial type name
// that is not a predefined name; a capitalized name such as `Integer`
// parses as a CompositeType instead.
type PrimitiveType struct {
	base
	Name string
}

func NewPrimitiveType(span Range, name string) *PrimitiveType {
	return &PrimitiveType{base: newBase("primitiveType", span), Name: name}
}

// DictionaryType is `[K: V]`.
type DictionaryType struct {
	base
	Key   Node
	Value Node
}

func NewDictionaryType(span Range, key, value Node) *DictionaryType {
	return &DictionaryType{base: newBase("dictionaryType", span), Key: key, Value: value}
}

// CompositeType references a user-declared class/structure/object/protocol
// by name, with optional generic type Arguments.
type CompositeType struct {
	base
	Name      string
	Arguments []Node
}

func NewCompositeType(span Range, name string, args []Node) *CompositeType {
	return &CompositeType{base: newBase("compositeType", span), Name: name, Arguments: args}
}

// ReferenceType is `ref T`, a reference-semantics wrapper around T.
type ReferenceType struct {
	base
	Inner Node
}

func NewReferenceType(span Range, inner Node) *ReferenceType {
	return &ReferenceType{base: newBase("referenceType", span), Inner: inner}
}

// FunctionType is `(P1, P2) -> R`.
type FunctionType struct {
	base
	Parameters []Node
	ReturnType Node
}

func NewFunctionType(span Range, params []Node, ret Node) *FunctionType {
	return &FunctionType{base: newBase("functionType", span), Parameters: params, ReturnType: ret}
}

// InoutType is `inout T`, marking a by-reference parameter.
type InoutType struct {
	base
	Inner Node
}

func NewInoutType(span Range, inner Node) *InoutType {
	return &InoutType{base: newBase("inoutType", span), Inner: inner}
}

// VariadicType is `T...`, accepting zero or more trailing arguments of
// type T; matched with backtracking by the list matcher (spec §4.5).
type VariadicType struct {
	base
	Inner Node
}

func NewVariadicType(span Range, inner Node) *VariadicType {
	return &VariadicType{base: newBase("variadicType", span), Inner: inner}
}
