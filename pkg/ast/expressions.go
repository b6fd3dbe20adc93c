package ast

// Identifier is a bare name reference.
type Identifier struct {
	base
	Name string
}

func NewIdentifier(span Range, name string) *Identifier {
	return &Identifier{base: newBase("identifier", span), Name: name}
}

// NumberLiteral holds either an integer or float literal, Raw preserving
// the source text so re-lexing/printing round-trips exactly.
type NumberLiteral struct {
	base
	Raw      string
	IsFloat  bool
	Int      int64
	Float    float64
}

func NewNumberLiteral(span Range, raw string, isFloat bool, i int64, f float64) *NumberLiteral {
	return &NumberLiteral{base: newBase("numberLiteral", span), Raw: raw, IsFloat: isFloat, Int: i, Float: f}
}

// StringSegment is one literal chunk of a string (between interpolations).
type StringSegment struct {
	base
	Raw string // undecoded source text, see lexer.DecodeEscapes
}

func NewStringSegment(span Range, raw string) *StringSegment {
	return &StringSegment{base: newBase("stringSegment", span), Raw: raw}
}

// StringLiteral is a sequence of segments and embedded expressions in
// source order, e.g. 'x=\(1+2)' -> [StringSegment("x="), ExpressionsSequence].
type StringLiteral struct {
	base
	Parts []Node
}

func NewStringLiteral(span Range, parts []Node) *StringLiteral {
	return &StringLiteral{base: newBase("stringLiteral", span), Parts: parts}
}

// OperatorRef names an operator token's placement and literal spelling,
// e.g. "+" classified operatorInfix.
type OperatorRef struct {
	base
	Placement string // "prefix" | "infix" | "postfix"
	Symbol    string
}

func NewOperatorRef(span Range, placement, symbol string) *OperatorRef {
	return &OperatorRef{base: newBase("operator"+capitalize(placement), span), Placement: placement, Symbol: symbol}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}

// ExpressionsSequence is the left-to-right alternating value/operator list
// the expression-sequence algorithm (spec §4.2) produces. Values and
// Operators are interleaved: Values[0] Operators[0] Values[1] ... ; a
// well-formed sequence has len(Values) == len(Operators)+1.
type ExpressionsSequence struct {
	base
	Values    []Node
	Operators []*OperatorRef
}

func NewExpressionsSequence(span Range, values []Node, operators []*OperatorRef) *ExpressionsSequence {
	return &ExpressionsSequence{base: newBase("expressionsSequence", span), Values: values, Operators: operators}
}

// CallExpression, SubscriptExpression and MemberExpression form the
// left-recursion-free postfix hierarchy chain (spec §4.2 "Hierarchy"):
// each wraps an inner expression under a named field.

type CallExpression struct {
	base
	Callee         Node
	Arguments      []Node
	TrailingClosure *FunctionBody // never set by the parser: a block after a control-flow condition becomes the statement's body instead
}

func NewCallExpression(span Range, callee Node, args []Node) *CallExpression {
	return &CallExpression{base: newBase("callExpression", span), Callee: callee, Arguments: args}
}

type SubscriptExpression struct {
	base
	Target Node
	Index  Node
}

func NewSubscriptExpression(span Range, target, index Node) *SubscriptExpression {
	return &SubscriptExpression{base: newBase("subscriptExpression", span), Target: target, Index: index}
}

type MemberExpression struct {
	base
	Target Node
	Member string
}

func NewMemberExpression(span Range, target Node, member string) *MemberExpression {
	return &MemberExpression{base: newBase("memberExpression", span), Target: target, Member: member}
}

// InstantiationExpression is a composite construction, e.g. `new Foo(1,2)`.
type InstantiationExpression struct {
	base
	Type      Node
	Arguments []Node
}

func NewInstantiationExpression(span Range, typ Node, args []Node) *InstantiationExpression {
	return &InstantiationExpression{base: newBase("instantiationExpression", span), Type: typ, Arguments: args}
}

// ArrayLiteral and DictionaryLiteral are the two collection literal forms.

type ArrayLiteral struct {
	base
	Elements []Node
}

func NewArrayLiteral(span Range, elements []Node) *ArrayLiteral {
	return &ArrayLiteral{base: newBase("arrayLiteral", span), Elements: elements}
}

type DictionaryEntry struct {
	Key   Node
	Value Node
}

type DictionaryLiteral struct {
	base
	Entries []DictionaryEntry
}

func NewDictionaryLiteral(span Range, entries []DictionaryEntry) *DictionaryLiteral {
	return &DictionaryLiteral{base: newBase("dictionaryLiteral", span), Entries: entries}
}

// FunctionExpression is an inline (lambda) function literal usable as a
// value, distinct from FunctionDeclaration which binds a name.
type FunctionExpression struct {
	base
	Parameters []*Parameter
	ReturnType Node
	Body       *FunctionBody
}

func NewFunctionExpression(span Range, params []*Parameter, ret Node, body *FunctionBody) *FunctionExpression {
	return &FunctionExpression{base: newBase("functionExpression", span), Parameters: params, ReturnType: ret, Body: body}
}

// AssignmentExpression covers plain and trailing-closure-free assignment.
type AssignmentExpression struct {
	base
	Target Node
	Value  Node
}

func NewAssignmentExpression(span Range, target, value Node) *AssignmentExpression {
	return &AssignmentExpression{base: newBase("assignmentExpression", span), Target: target, Value: value}
}
