package parser

import (
	"reflect"
	"testing"

	"github.com/rootscript/core/internal/lexer"
	"github.com/rootscript/core/internal/reportkit"
	"github.com/rootscript/core/pkg/ast"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) (*ast.Module, *Parser) {
	t.Helper()
	toks := lexer.Filtered(lexer.New(src).Lex())
	p := New(toks, src)
	mod := p.Parse()
	return mod, p
}

// walkNodes generically collects every ast.Node reachable from root via
// reflection, since the node set has no shared visitor (spec §9 "dynamic
// dispatch on nodes").
func walkNodes(root ast.Node, out *[]ast.Node) {
	if root == nil || reflect.ValueOf(root).IsNil() {
		return
	}
	*out = append(*out, root)
	walkValue(reflect.ValueOf(root).Elem(), out)
}

func walkValue(v reflect.Value, out *[]ast.Node) {
	if !v.IsValid() {
		return
	}
	switch v.Kind() {
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			walkValue(v.Field(i), out)
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			walkValue(v.Index(i), out)
		}
	case reflect.Ptr:
		if v.IsNil() {
			return
		}
		if n, ok := v.Interface().(ast.Node); ok {
			walkNodes(n, out)
			return
		}
		walkValue(v.Elem(), out)
	case reflect.Interface:
		if v.IsNil() {
			return
		}
		if n, ok := v.Interface().(ast.Node); ok {
			walkNodes(n, out)
		}
	}
}

// TestRangeValidity checks 0 <= node.range.start <= node.range.end <
// |filtered tokens| for every node a parse produces, across a handful of
// representative programs.
func TestRangeValidity(t *testing.T) {
	sources := []string{
		"return 1 + 2 * 3",
		"class Foo { var x = 0\n function bar() { return x } }",
		"if cond { body }",
		"func f(){",
		"for x in items { print(x) }",
	}
	for _, src := range sources {
		toks := lexer.Filtered(lexer.New(src).Lex())
		mod, _ := parse(t, src)
		var nodes []ast.Node
		walkNodes(mod, &nodes)
		for _, n := range nodes {
			sp := n.Span()
			require.GreaterOrEqualf(t, sp.Start, 0, "%s: node %s start", src, n.Kind())
			require.LessOrEqualf(t, sp.Start, sp.End, "%s: node %s start<=end", src, n.Kind())
			require.Lessf(t, sp.End, len(toks), "%s: node %s end within stream", src, n.Kind())
		}
	}
}

// TestDiagnosticMonotonicity checks that during a successful parse,
// diagnostic positions never decrease.
func TestDiagnosticMonotonicity(t *testing.T) {
	_, p := parse(t, "class Foo { !!! function bar() {} }")
	var last int = -1
	for _, d := range p.Diagnostics() {
		require.GreaterOrEqualf(t, d.Position, last, "diagnostic positions must not decrease")
		last = d.Position
	}
}

// TestTrailingClosureIsNotACall pins scenario 3: `if cond { body }` parses
// as an ifStatement whose condition is the bare identifier `cond` and
// whose then-body is a function body containing the single statement
// `body` — not a call to `cond` with a trailing closure argument.
func TestTrailingClosureIsNotACall(t *testing.T) {
	mod, _ := parse(t, "if cond { body }")
	require.Len(t, mod.Statements, 1)
	ifStmt, ok := mod.Statements[0].(*ast.IfStatement)
	require.True(t, ok, "expected an ifStatement, got %T", mod.Statements[0])

	ident, ok := ifStmt.Condition.(*ast.Identifier)
	require.True(t, ok, "expected condition to be a bare identifier, got %T", ifStmt.Condition)
	require.Equal(t, "cond", ident.Name)

	require.NotNil(t, ifStmt.Then)
	require.Len(t, ifStmt.Then.Statements, 1)
	exprStmt, ok := ifStmt.Then.Statements[0].(*ast.ExpressionStatement)
	require.True(t, ok, "expected then-body statement to be an expressionStatement, got %T", ifStmt.Then.Statements[0])
	bodyIdent, ok := exprStmt.Expression.(*ast.Identifier)
	require.True(t, ok)
	require.Equal(t, "body", bodyIdent.Name)
}

// TestUnclosedBraceAutocloses pins scenario 4: `func f(){` autocloses the
// body, reports one level-1 diagnostic, and still produces a node with a
// valid range.End.
func TestUnclosedBraceAutocloses(t *testing.T) {
	toks := lexer.Filtered(lexer.New("func f(){").Lex())
	mod, p := parse(t, "func f(){")

	require.Len(t, mod.Statements, 1)
	fn, ok := mod.Statements[0].(*ast.FunctionDeclaration)
	require.True(t, ok, "expected a functionDeclaration, got %T", mod.Statements[0])
	require.NotNil(t, fn.Body)
	require.GreaterOrEqual(t, fn.Body.Span().End, fn.Body.Span().Start)
	require.Less(t, fn.Body.Span().End, len(toks))

	var autoclosed int
	for _, d := range p.Diagnostics() {
		if d.Level == reportkit.LevelWarning {
			autoclosed++
		}
	}
	require.Equal(t, 1, autoclosed, "expected exactly one level-1 autoclose diagnostic")
}

// TestRollbackRetractsDiagnostics pins scenario 6 directly against the
// retraction primitive: a diagnostic emitted while tentatively parsing a
// node, followed by a rewind past that diagnostic's position, must not
// survive in the final diagnostic list.
func TestRollbackRetractsDiagnostics(t *testing.T) {
	toks := lexer.Filtered(lexer.New("a b c").Lex())
	p := New(toks, "a b c")

	start := p.position
	p.advance()
	p.addReport(reportkit.LevelWarning, "tentatively entered a node that will fail")
	require.Len(t, p.Diagnostics(), 1)

	p.rewind(start)
	require.Empty(t, p.Diagnostics(), "rewind must retract diagnostics emitted after the rollback point")

	// The same tokens succeed under an alternative rule after rollback.
	ident := p.parsePrimaryExpression()
	require.NotNil(t, ident)
	require.Empty(t, p.Diagnostics())
}
