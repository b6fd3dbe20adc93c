package ast

// FunctionBody is a brace-delimited statement block. The parser sets
// IsStatementBody for every body it opened at a `{` token, without telling
// the lexer's `statementBody` and `brace` states apart, and leaves it
// false only for a body that had no `{`.
type FunctionBody struct {
	base
	Statements       []Node
	IsStatementBody  bool
}

func NewFunctionBody(span Range, statements []Node, isStatementBody bool) *FunctionBody {
	return &FunctionBody{base: newBase("functionBody", span), Statements: statements, IsStatementBody: isStatementBody}
}

// ExpressionStatement wraps a bare expression used as a statement.
type ExpressionStatement struct {
	base
	Expression Node
}

func NewExpressionStatement(span Range, expr Node) *ExpressionStatement {
	return &ExpressionStatement{base: newBase("expressionStatement", span), Expression: expr}
}

// ReturnStatement, ThrowStatement carry an optional value (nil for bare
// `return`/`throw`).
type ReturnStatement struct {
	base
	Value Node
}

func NewReturnStatement(span Range, value Node) *ReturnStatement {
	return &ReturnStatement{base: newBase("returnStatement", span), Value: value}
}

type ThrowStatement struct {
	base
	Value Node
}

func NewThrowStatement(span Range, value Node) *ThrowStatement {
	return &ThrowStatement{base: newBase("throwStatement", span), Value: value}
}

// BreakStatement, ContinueStatement optionally target a labeled enclosing
// loop by name.
type BreakStatement struct {
	base
	Label string
}

func NewBreakStatement(span Range, label string) *BreakStatement {
	return &BreakStatement{base: newBase("breakStatement", span), Label: label}
}

type ContinueStatement struct {
	base
	Label string
}

func NewContinueStatement(span Range, label string) *ContinueStatement {
	return &ContinueStatement{base: newBase("continueStatement", span), Label: label}
}

type FallthroughStatement struct {
	base
}

func NewFallthroughStatement(span Range) *FallthroughStatement {
	return &FallthroughStatement{base: newBase("fallthroughStatement", span)}
}

// IfStatement's Else holds either another *IfStatement (else-if chain) or
// a *FunctionBody, or nil.
type IfStatement struct {
	base
	Condition Node
	Then      *FunctionBody
	Else      Node
}

func NewIfStatement(span Range, cond Node, then *FunctionBody, els Node) *IfStatement {
	return &IfStatement{base: newBase("ifStatement", span), Condition: cond, Then: then, Else: els}
}

type WhileStatement struct {
	base
	Condition Node
	Body      *FunctionBody
}

func NewWhileStatement(span Range, cond Node, body *FunctionBody) *WhileStatement {
	return &WhileStatement{base: newBase("whileStatement", span), Condition: cond, Body: body}
}

// ForStatement covers the `for x in expr { ... }` iteration form; Binding
// is the loop variable's name.
type ForStatement struct {
	base
	Binding  string
	Iterable Node
	Body     *FunctionBody
}

func NewForStatement(span Range, binding string, iterable Node, body *FunctionBody) *ForStatement {
	return &ForStatement{base: newBase("forStatement", span), Binding: binding, Iterable: iterable, Body: body}
}

// CatchClause binds a caught value under Binding (empty string if the
// catch omits a binding) and guards it with an optional Type.
type CatchClause struct {
	base
	Binding string
	Type    Node
	Body    *FunctionBody
}

func NewCatchClause(span Range, binding string, typ Node, body *FunctionBody) *CatchClause {
	return &CatchClause{base: newBase("catchClause", span), Binding: binding, Type: typ, Body: body}
}

type TryStatement struct {
	base
	Body     *FunctionBody
	Catches  []*CatchClause
	Finally  *FunctionBody
}

func NewTryStatement(span Range, body *FunctionBody, catches []*CatchClause, finally *FunctionBody) *TryStatement {
	return &TryStatement{base: newBase("tryStatement", span), Body: body, Catches: catches, Finally: finally}
}

// ImportStatement names a module path and an optional alias list; an empty
// Names slice means "import everything exported".
type ImportStatement struct {
	base
	Path  string
	Names []string
}

func NewImportStatement(span Range, path string, names []string) *ImportStatement {
	return &ImportStatement{base: newBase("importStatement", span), Path: path, Names: names}
}

// VariableDeclaration / ConstantDeclaration bind Name to an optional
// declared Type and an optional initializer Value.
type VariableDeclaration struct {
	base
	Modifiers *Modifiers
	Name      string
	Type      Node
	Value     Node
}

func NewVariableDeclaration(span Range, mods *Modifiers, name string, typ, value Node) *VariableDeclaration {
	return &VariableDeclaration{base: newBase("variableDeclaration", span), Modifiers: mods, Name: name, Type: typ, Value: value}
}

type ConstantDeclaration struct {
	base
	Modifiers *Modifiers
	Name      string
	Type      Node
	Value     Node
}

func NewConstantDeclaration(span Range, mods *Modifiers, name string, typ, value Node) *ConstantDeclaration {
	return &ConstantDeclaration{base: newBase("constantDeclaration", span), Modifiers: mods, Name: name, Type: typ, Value: value}
}

// AssignmentStatement is a standalone `target = value` statement, distinct
// from AssignmentExpression used where assignment appears as a value.
type AssignmentStatement struct {
	base
	Target Node
	Value  Node
}

func NewAssignmentStatement(span Range, target, value Node) *AssignmentStatement {
	return &AssignmentStatement{base: newBase("assignmentStatement", span), Target: target, Value: value}
}
