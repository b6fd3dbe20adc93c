// Package ast defines the node kinds produced by the parser. Every node
// kind maps to a typed Go struct implementing Node; the structs stand in
// for what the source language represents as a heterogeneous
// string-keyed record (spec §3 "AST node"), since idiomatic Go prefers a
// dispatched interface to a dynamic map.
package ast

// Range is a pair of token indices into the filtered token stream the
// parser consumed. End is inclusive of the last token belonging to the
// node, per spec's "range.end >= range.start" invariant.
type Range struct {
	Start int
	End   int
}

// Node is implemented by every AST node, including the two fault
// tolerance sentinels (Unsupported, Separator).
type Node interface {
	Kind() string
	Span() Range
}

// base is embedded by every concrete node type to provide Kind/Span.
type base struct {
	NodeKind string
	NodeSpan Range
}

func (b base) Kind() string { return b.NodeKind }
func (b base) Span() Range  { return b.NodeSpan }

func newBase(kind string, span Range) base {
	return base{NodeKind: kind, NodeSpan: span}
}

// Module is the parser's single root node; Statements is the top-level
// sequence (spec §4.2 "Output").
type Module struct {
	base
	Statements []Node
}

func NewModule(span Range, statements []Node) *Module {
	return &Module{base: newBase("module", span), Statements: statements}
}

// Unsupported carries the raw tokens a failed parse couldn't assign to
// any grammar production (spec §3, §4.2 "Fault tolerance").
type Unsupported struct {
	base
	Tokens []int // filtered-stream indices of the raw tokens consumed
}

func NewUnsupported(span Range, tokens []int) *Unsupported {
	return &Unsupported{base: newBase("unsupported", span), Tokens: tokens}
}

// Separator is a transient node marking a valid delimiter position inside
// a skippable-node(s) run; it is erased before the final tree is handed
// back to the caller (spec §4.2 "Skippable-node(s) helper").
type Separator struct {
	base
}

func NewSeparator(span Range) *Separator {
	return &Separator{base: newBase("separator", span)}
}
