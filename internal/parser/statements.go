package parser

import (
	"github.com/rootscript/core/internal/reportkit"
	"github.com/rootscript/core/pkg/ast"
	"github.com/rootscript/core/pkg/token"
)

// parseStatement dispatches on the current token to one of the per-kind
// statement parsers, falling back to an expression statement.
func (p *Parser) parseStatement() ast.Node {
	switch {
	case p.isKeyword("if"):
		return p.parseIfStatement()
	case p.isKeyword("while"):
		return p.parseWhileStatement()
	case p.isKeyword("for"):
		return p.parseForStatement()
	case p.isKeyword("try"):
		return p.parseTryStatement()
	case p.isKeyword("return"):
		return p.parseReturnStatement()
	case p.isKeyword("throw"):
		return p.parseThrowStatement()
	case p.isKeyword("break"):
		return p.parseBreakStatement()
	case p.isKeyword("continue"):
		return p.parseContinueStatement()
	case p.isKeyword("fallthrough"):
		return p.parseFallthroughStatement()
	case p.isKeyword("import"):
		return p.parseImportStatement()
	case p.isKeyword("var"):
		return p.parseVariableDeclaration()
	case p.isKeyword("const"):
		return p.parseConstantDeclaration()
	case p.isCompositeIntroducer():
		return p.parseCompositeDeclaration()
	case p.is(token.Separator):
		p.advance()
		return nil
	}
	return p.parseExpressionOrAssignmentStatement()
}

func (p *Parser) isCompositeIntroducer() bool {
	for _, kw := range []string{"class", "structure", "object", "protocol", "namespace", "enumeration", "function"} {
		if p.isModifierPrefixed(kw) {
			return true
		}
	}
	return false
}

// isModifierPrefixed looks past a run of modifier keywords to see if kw
// follows, without consuming anything.
func (p *Parser) isModifierPrefixed(kw string) bool {
	offset := 0
	for {
		tok := p.peekAt(offset)
		name, ok := keywordNameOf(tok)
		if !ok {
			return false
		}
		if name == kw {
			return true
		}
		if !isModifierKeywordName(name) {
			return false
		}
		offset++
	}
}

func keywordNameOf(t token.Token) (string, bool) {
	s := string(t.Type)
	const prefix = "keyword"
	if len(s) <= len(prefix) || s[:len(prefix)] != prefix {
		return "", false
	}
	return toLowerASCII(s[len(prefix):]), true
}

func isModifierKeywordName(name string) bool {
	switch name {
	case "private", "protected", "public", "static", "final", "lazy", "virtual":
		return true
	}
	return false
}

func (p *Parser) expectCloseBody() *ast.FunctionBody {
	return p.parseFunctionBody()
}

// parseFunctionBody parses a `{ ... }` block, autoclosing with a level-1
// diagnostic if the stream ends before a matching closer is found (spec
// §4.2 "Fault tolerance" autoclose exception, and scenario 4).
func (p *Parser) parseFunctionBody() *ast.FunctionBody {
	start := p.position
	if !p.match(token.BraceOpen) {
		return ast.NewFunctionBody(ast.Range{Start: start, End: start}, nil, false)
	}
	var statements []ast.Node
	for !p.atEnd() && !p.is(token.BraceClose) {
		before := p.position
		stmt := p.parseStatement()
		if stmt != nil {
			statements = append(statements, stmt)
		}
		if p.position == before {
			statements = append(statements, p.consumeUnsupportedOne())
		}
	}
	if p.atEnd() {
		p.addReportAt(reportkit.LevelWarning, p.position-1, p.tokens[clampIdx(p.position-1, len(p.tokens))].Location, "autoclosed at the end of stream")
		return ast.NewFunctionBody(ast.Range{Start: start, End: p.position - 1}, statements, true)
	}
	p.advance() // closing brace
	return ast.NewFunctionBody(ast.Range{Start: start, End: p.position - 1}, statements, true)
}

func (p *Parser) parseIfStatement() ast.Node {
	start := p.position
	p.advance() // if
	cond := p.parseExpression()
	then := p.parseBodyOrTrailingClosure(cond)
	var els ast.Node
	if p.isKeyword("else") {
		p.advance()
		if p.isKeyword("if") {
			els = p.parseIfStatement()
		} else {
			els = p.parseFunctionBody()
		}
	}
	return ast.NewIfStatement(ast.Range{Start: start, End: p.position - 1}, cond, then, els)
}

// parseBodyOrTrailingClosure implements the body-trailed-value detection
// for control-flow keywords: cond's own parse already stopped before the
// `{`, so the body here is simply the following block.
func (p *Parser) parseBodyOrTrailingClosure(_ ast.Node) *ast.FunctionBody {
	return p.parseFunctionBody()
}

func (p *Parser) parseWhileStatement() ast.Node {
	start := p.position
	p.advance()
	cond := p.parseExpression()
	body := p.parseFunctionBody()
	return ast.NewWhileStatement(ast.Range{Start: start, End: p.position - 1}, cond, body)
}

func (p *Parser) parseForStatement() ast.Node {
	start := p.position
	p.advance() // for
	binding := ""
	if p.is(token.Identifier) {
		binding = p.advance().Value
	}
	if p.isKeyword("in") {
		p.advance()
	}
	iterable := p.parseExpression()
	body := p.parseFunctionBody()
	return ast.NewForStatement(ast.Range{Start: start, End: p.position - 1}, binding, iterable, body)
}

func (p *Parser) parseTryStatement() ast.Node {
	start := p.position
	p.advance() // try
	body := p.parseFunctionBody()
	var catches []*ast.CatchClause
	for p.isKeyword("catch") {
		catches = append(catches, p.parseCatchClause())
	}
	var finally *ast.FunctionBody
	if p.isKeyword("finally") {
		p.advance()
		finally = p.parseFunctionBody()
	}
	return ast.NewTryStatement(ast.Range{Start: start, End: p.position - 1}, body, catches, finally)
}

func (p *Parser) parseCatchClause() *ast.CatchClause {
	start := p.position
	p.advance() // catch
	binding := ""
	var typ ast.Node
	if p.match(token.ParenOpen) {
		if p.is(token.Identifier) {
			binding = p.advance().Value
		}
		if p.isKeyword("is") || p.is(token.OperatorInfix) {
			p.advance()
			typ = p.parseType()
		}
		p.match(token.ParenClose)
	}
	body := p.parseFunctionBody()
	return ast.NewCatchClause(ast.Range{Start: start, End: p.position - 1}, binding, typ, body)
}

func (p *Parser) parseReturnStatement() ast.Node {
	start := p.position
	p.advance()
	var value ast.Node
	if !p.is(token.Separator) && !p.is(token.BraceClose) && !p.atEnd() {
		value = p.parseExpression()
	}
	return ast.NewReturnStatement(ast.Range{Start: start, End: p.position - 1}, value)
}

func (p *Parser) parseThrowStatement() ast.Node {
	start := p.position
	p.advance()
	var value ast.Node
	if !p.is(token.Separator) && !p.is(token.BraceClose) && !p.atEnd() {
		value = p.parseExpression()
	}
	return ast.NewThrowStatement(ast.Range{Start: start, End: p.position - 1}, value)
}

func (p *Parser) parseBreakStatement() ast.Node {
	start := p.position
	p.advance()
	label := ""
	if p.is(token.Identifier) {
		label = p.advance().Value
	}
	return ast.NewBreakStatement(ast.Range{Start: start, End: p.position - 1}, label)
}

func (p *Parser) parseContinueStatement() ast.Node {
	start := p.position
	p.advance()
	label := ""
	if p.is(token.Identifier) {
		label = p.advance().Value
	}
	return ast.NewContinueStatement(ast.Range{Start: start, End: p.position - 1}, label)
}

func (p *Parser) parseFallthroughStatement() ast.Node {
	start := p.position
	p.advance()
	return ast.NewFallthroughStatement(ast.Range{Start: start, End: start})
}

func (p *Parser) parseImportStatement() ast.Node {
	start := p.position
	p.advance() // import
	var names []string
	path := ""
	if p.is(token.Identifier) {
		path = p.advance().Value
	}
	for p.matchComma() {
		if p.is(token.Identifier) {
			names = append(names, p.advance().Value)
		}
	}
	return ast.NewImportStatement(ast.Range{Start: start, End: p.position - 1}, path, names)
}

func (p *Parser) parseVariableDeclaration() ast.Node {
	return p.parseBinding(false)
}

func (p *Parser) parseConstantDeclaration() ast.Node {
	return p.parseBinding(true)
}

func (p *Parser) parseBinding(constant bool) ast.Node {
	start := p.position
	p.advance() // var | const
	name := ""
	if p.is(token.Identifier) {
		name = p.advance().Value
	}
	var typ ast.Node
	if p.is(token.OperatorInfix) && p.current().Value == ":" {
		p.advance()
		typ = p.parseType()
	}
	var value ast.Node
	if p.is(token.OperatorInfix) && p.current().Value == "=" {
		p.advance()
		value = p.parseExpression()
	}
	if constant {
		return ast.NewConstantDeclaration(ast.Range{Start: start, End: p.position - 1}, &ast.Modifiers{}, name, typ, value)
	}
	return ast.NewVariableDeclaration(ast.Range{Start: start, End: p.position - 1}, &ast.Modifiers{}, name, typ, value)
}

// parseExpressionOrAssignmentStatement parses a bare expression and, if
// followed by `=`, reinterprets it as an assignment statement.
func (p *Parser) parseExpressionOrAssignmentStatement() ast.Node {
	start := p.position
	expr := p.parseExpression()
	if expr == nil {
		return nil
	}
	if p.is(token.OperatorInfix) && p.current().Value == "=" {
		p.advance()
		value := p.parseExpression()
		return ast.NewAssignmentStatement(ast.Range{Start: start, End: p.position - 1}, expr, value)
	}
	return ast.NewExpressionStatement(ast.Range{Start: start, End: p.position - 1}, expr)
}
