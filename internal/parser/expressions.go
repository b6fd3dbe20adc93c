package parser

import (
	"strconv"

	"github.com/rootscript/core/internal/lexer"
	"github.com/rootscript/core/pkg/ast"
	"github.com/rootscript/core/pkg/token"
)

// parseExpression implements the expression-sequence algorithm (spec
// §4.2): a left-to-right list alternating value and infix-operator
// nodes, with the subsequential operators as/in/is not advancing the
// expected-kind rotation. A sequence of exactly one value degenerates to
// that value directly instead of a wrapping ExpressionsSequence.
func (p *Parser) parseExpression() ast.Node {
	start := p.position
	first := p.parseHierarchyExpression()
	if first == nil {
		return nil
	}
	values := []ast.Node{first}
	var operators []*ast.OperatorRef

	for {
		op, ok := p.peekInfixOperator()
		if !ok {
			break
		}
		opStart := p.position
		opTok := p.advance()
		value := p.parseHierarchyExpression()
		if value == nil {
			// Final element would be an operator: rewind one element.
			p.rewind(opStart)
			break
		}
		operators = append(operators, ast.NewOperatorRef(ast.Range{Start: opStart, End: opStart}, "infix", op))
		_ = opTok
		values = append(values, value)
	}

	if len(values) == 1 {
		return values[0]
	}
	return ast.NewExpressionsSequence(ast.Range{Start: start, End: p.position - 1}, values, operators)
}

// peekInfixOperator reports whether the current token is usable as the
// operator slot of an expression sequence: an ordinary operatorInfix
// token, or one of the subsequential keywords as/in/is.
func (p *Parser) peekInfixOperator() (string, bool) {
	if p.is(token.OperatorInfix) && p.current().Value != "," {
		return p.current().Value, true
	}
	for _, kw := range []string{"as", "in", "is"} {
		if p.isKeyword(kw) {
			return kw, true
		}
	}
	return "", false
}

// parseHierarchyExpression parses a primary expression, then repeatedly
// wraps it in call/subscript/member nodes — the left-recursion-free
// postfix chain (spec §4.2 "Hierarchy").
func (p *Parser) parseHierarchyExpression() ast.Node {
	start := p.position
	node := p.parsePrefixExpression()
	if node == nil {
		return nil
	}
	for {
		switch {
		case p.is(token.ParenOpen):
			p.advance()
			args := p.skippableNodes(p.parseExpression, token.ParenOpen, token.ParenClose, token.Comma)
			node = ast.NewCallExpression(ast.Range{Start: start, End: p.position - 1}, node, args)
		case p.is(token.BracketOpen):
			p.advance()
			index := p.parseExpression()
			p.match(token.BracketClose)
			node = ast.NewSubscriptExpression(ast.Range{Start: start, End: p.position - 1}, node, index)
		case p.is(token.OperatorInfix) && p.current().Value == ".":
			p.advance()
			member := ""
			if p.is(token.Identifier) {
				member = p.advance().Value
			}
			node = ast.NewMemberExpression(ast.Range{Start: start, End: p.position - 1}, node, member)
		case p.is(token.OperatorPostfix):
			op := p.advance().Value
			node = wrapPostfix(ast.Range{Start: start, End: p.position - 1}, node, op)
		default:
			return node
		}
	}
}

func wrapPostfix(span ast.Range, inner ast.Node, op string) ast.Node {
	return ast.NewCallExpression(span, ast.NewOperatorRef(span, "postfix", op), []ast.Node{inner})
}

func (p *Parser) parsePrefixExpression() ast.Node {
	if p.is(token.OperatorPrefix) {
		start := p.position
		op := p.advance().Value
		inner := p.parsePrefixExpression()
		return ast.NewCallExpression(ast.Range{Start: start, End: p.position - 1}, ast.NewOperatorRef(ast.Range{Start: start, End: start}, "prefix", op), []ast.Node{inner})
	}
	return p.parsePrimaryExpression()
}

func (p *Parser) parsePrimaryExpression() ast.Node {
	start := p.position
	switch {
	case p.is(token.Identifier):
		name := p.advance().Value
		return ast.NewIdentifier(ast.Range{Start: start, End: start}, name)
	case p.is(token.NumberInteger):
		raw := p.advance().Value
		n, _ := strconv.ParseInt(raw, 10, 64)
		return ast.NewNumberLiteral(ast.Range{Start: start, End: start}, raw, false, n, 0)
	case p.is(token.NumberFloat):
		raw := p.advance().Value
		f, _ := strconv.ParseFloat(raw, 64)
		return ast.NewNumberLiteral(ast.Range{Start: start, End: start}, raw, true, 0, f)
	case p.is(token.StringOpen):
		return p.parseStringLiteral()
	case p.is(token.ParenOpen):
		p.advance()
		inner := p.parseExpression()
		p.match(token.ParenClose)
		return inner
	case p.is(token.BracketOpen):
		return p.parseArrayOrDictionaryLiteral()
	case p.isKeyword("function"):
		return p.parseFunctionExpression()
	case p.isKeyword("new"):
		return p.parseInstantiationExpression()
	case p.isKeyword("self") || p.isKeyword("super") || p.isKeyword("sub") || p.isKeyword("scope"):
		// The level-ID keywords double as identifiers inside expressions
		// (spec glossary "Level ID"); the token's Value preserves the
		// source's exact casing (self vs Self, super vs Super, ...) even
		// though isKeyword matches both, since KeywordType folds case.
		name := p.advance().Value
		return ast.NewIdentifier(ast.Range{Start: start, End: start}, name)
	default:
		return nil
	}
}

// parseInstantiationExpression parses `new Foo(1, 2)` — a composite-type
// expression followed by an optional parenthesized argument list (spec
// §4.3 "Composite creation").
func (p *Parser) parseInstantiationExpression() ast.Node {
	start := p.position
	p.advance() // new
	typ := p.parseType()
	var args []ast.Node
	if p.is(token.ParenOpen) {
		p.advance()
		args = p.skippableNodes(p.parseExpression, token.ParenOpen, token.ParenClose, token.Comma)
	}
	return ast.NewInstantiationExpression(ast.Range{Start: start, End: p.position - 1}, typ, args)
}

// parseStringLiteral assembles the segment/interpolation parts a
// stringOpen..stringClosed run produces (spec scenario 2).
func (p *Parser) parseStringLiteral() ast.Node {
	start := p.position
	p.advance() // stringOpen
	var parts []ast.Node
	for !p.atEnd() && !p.is(token.StringClosed) {
		switch {
		case p.is(token.StringSegment):
			raw := p.advance().Value
			parts = append(parts, ast.NewStringSegment(ast.Range{Start: p.position - 1, End: p.position - 1}, raw))
		case p.is(token.StringExpressionOpen):
			p.advance()
			expr := p.parseExpression()
			if expr != nil {
				parts = append(parts, expr)
			}
			p.match(token.StringExpressionClosed)
		default:
			p.advance()
		}
	}
	p.match(token.StringClosed)
	return ast.NewStringLiteral(ast.Range{Start: start, End: p.position - 1}, parts)
}

func (p *Parser) parseArrayOrDictionaryLiteral() ast.Node {
	start := p.position
	p.advance() // [
	if p.is(token.OperatorInfix) && p.current().Value == ":" {
		p.advance()
		p.match(token.BracketClose)
		return ast.NewDictionaryLiteral(ast.Range{Start: start, End: p.position - 1}, nil)
	}
	if p.is(token.BracketClose) {
		p.advance()
		return ast.NewArrayLiteral(ast.Range{Start: start, End: p.position - 1}, nil)
	}
	first := p.parseExpression()
	if p.is(token.OperatorInfix) && p.current().Value == ":" {
		p.advance()
		firstValue := p.parseExpression()
		entries := []ast.DictionaryEntry{{Key: first, Value: firstValue}}
		for p.matchComma() {
			k := p.parseExpression()
			p.match(token.OperatorInfix)
			v := p.parseExpression()
			entries = append(entries, ast.DictionaryEntry{Key: k, Value: v})
		}
		p.match(token.BracketClose)
		return ast.NewDictionaryLiteral(ast.Range{Start: start, End: p.position - 1}, entries)
	}
	elements := []ast.Node{first}
	for p.matchComma() {
		elements = append(elements, p.parseExpression())
	}
	p.match(token.BracketClose)
	return ast.NewArrayLiteral(ast.Range{Start: start, End: p.position - 1}, elements)
}

func (p *Parser) parseFunctionExpression() ast.Node {
	start := p.position
	p.advance() // function
	params := p.parseParameterList()
	var ret ast.Node
	if p.is(token.OperatorInfix) && p.current().Value == "->" {
		p.advance()
		ret = p.parseType()
	}
	body := p.parseFunctionBody()
	return ast.NewFunctionExpression(ast.Range{Start: start, End: p.position - 1}, params, ret, body)
}

func (p *Parser) parseParameterList() []*ast.Parameter {
	if !p.match(token.ParenOpen) {
		return nil
	}
	var params []*ast.Parameter
	for !p.atEnd() && !p.is(token.ParenClose) {
		name := ""
		if p.is(token.Identifier) {
			name = p.advance().Value
		}
		var typ ast.Node
		if p.is(token.OperatorInfix) && p.current().Value == ":" {
			p.advance()
			typ = p.parseType()
		}
		var def ast.Node
		if p.is(token.OperatorInfix) && p.current().Value == "=" {
			p.advance()
			def = p.parseExpression()
		}
		params = append(params, &ast.Parameter{Name: name, Type: typ, Default: def})
		if !p.matchComma() {
			break
		}
	}
	p.match(token.ParenClose)
	return params
}

// DecodeStringValue exposes lexer.DecodeEscapes to interp for evaluating
// string literal segments.
func DecodeStringValue(raw string) string { return lexer.DecodeEscapes(raw) }
