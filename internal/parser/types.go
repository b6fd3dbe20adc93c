package parser

import (
	"github.com/rootscript/core/pkg/ast"
	"github.com/rootscript/core/pkg/token"
)

// parseType parses a type expression into its AST-level spelling (spec
// §4.5), deferring lattice construction to internal/types.
func (p *Parser) parseType() ast.Node {
	start := p.position
	t := p.parseUnionType()
	if t == nil {
		return nil
	}
	if p.is(token.OperatorInfix) && p.current().Value == "=" {
		p.advance()
		value := p.parseExpression()
		return ast.NewDefaultType(ast.Range{Start: start, End: p.position - 1}, t, value)
	}
	return t
}

func (p *Parser) parseUnionType() ast.Node {
	start := p.position
	first := p.parseIntersectionType()
	if first == nil {
		return nil
	}
	members := []ast.Node{first}
	for p.is(token.OperatorInfix) && p.current().Value == "|" {
		p.advance()
		members = append(members, p.parseIntersectionType())
	}
	if len(members) == 1 {
		return first
	}
	return ast.NewUnionType(ast.Range{Start: start, End: p.position - 1}, members)
}

func (p *Parser) parseIntersectionType() ast.Node {
	start := p.position
	first := p.parseNillableType()
	if first == nil {
		return nil
	}
	members := []ast.Node{first}
	for p.is(token.OperatorInfix) && p.current().Value == "&" {
		p.advance()
		members = append(members, p.parseNillableType())
	}
	if len(members) == 1 {
		return first
	}
	return ast.NewIntersectionType(ast.Range{Start: start, End: p.position - 1}, members)
}

func (p *Parser) parseNillableType() ast.Node {
	start := p.position
	inner := p.parseVariadicType()
	if inner == nil {
		return nil
	}
	for p.is(token.OperatorPostfix) && p.current().Value == "?" {
		p.advance()
		inner = ast.NewNillableType(ast.Range{Start: start, End: p.position - 1}, inner)
	}
	return inner
}

func (p *Parser) parseVariadicType() ast.Node {
	start := p.position
	inner := p.parsePrimaryType()
	if inner == nil {
		return nil
	}
	if p.is(token.OperatorInfix) && p.current().Value == "..." {
		p.advance()
		return ast.NewVariadicType(ast.Range{Start: start, End: p.position - 1}, inner)
	}
	return inner
}

func (p *Parser) parsePrimaryType() ast.Node {
	start := p.position
	switch {
	case p.isKeyword("void") || p.is(token.Identifier) && p.current().Value == "_":
		name := p.advance().Value
		return ast.NewPredefinedType(ast.Range{Start: start, End: start}, name)
	case p.is(token.ParenOpen):
		p.advance()
		if p.is(token.ParenClose) {
			// `()` as a zero-parameter function type lead-in.
			p.advance()
			return p.parseFunctionTypeTail(start, nil)
		}
		first := p.parseType()
		if p.isComma() {
			params := []ast.Node{first}
			for p.matchComma() {
				params = append(params, p.parseType())
			}
			p.match(token.ParenClose)
			return p.parseFunctionTypeTail(start, params)
		}
		p.match(token.ParenClose)
		if p.is(token.OperatorInfix) && p.current().Value == "->" {
			return p.parseFunctionTypeTail(start, []ast.Node{first})
		}
		return ast.NewParenthesizedType(ast.Range{Start: start, End: p.position - 1}, first)
	case p.is(token.BracketOpen):
		p.advance()
		key := p.parseType()
		p.match(token.OperatorInfix) // ':'
		value := p.parseType()
		p.match(token.BracketClose)
		return ast.NewDictionaryType(ast.Range{Start: start, End: p.position - 1}, key, value)
	case p.isKeyword("sub") && p.peekAt(1).Value == "inout": // defensive, not expected
		p.advance()
		return nil
	case p.is(token.Identifier) && p.current().Value == "ref":
		p.advance()
		inner := p.parseType()
		return ast.NewReferenceType(ast.Range{Start: start, End: p.position - 1}, inner)
	case p.is(token.Identifier) && p.current().Value == "inout":
		p.advance()
		inner := p.parseType()
		return ast.NewInoutType(ast.Range{Start: start, End: p.position - 1}, inner)
	case p.is(token.Identifier):
		name := p.advance().Value
		if isPredefinedTypeName(name) {
			return ast.NewPredefinedType(ast.Range{Start: start, End: start}, name)
		}
		var args []ast.Node
		if p.is(token.AngleOpen) {
			p.advance()
			args = append(args, p.parseType())
			for p.matchComma() {
				args = append(args, p.parseType())
			}
			p.match(token.AngleClose)
		}
		if isUppercaseInitial(name) {
			return ast.NewCompositeType(ast.Range{Start: start, End: p.position - 1}, name, args)
		}
		return ast.NewPrimitiveType(ast.Range{Start: start, End: start}, name)
	default:
		return nil
	}
}

func (p *Parser) parseFunctionTypeTail(start int, params []ast.Node) ast.Node {
	var ret ast.Node
	if p.is(token.OperatorInfix) && p.current().Value == "->" {
		p.advance()
		ret = p.parseType()
	}
	return ast.NewFunctionType(ast.Range{Start: start, End: p.position - 1}, params, ret)
}

func isPredefinedTypeName(name string) bool {
	switch name {
	case "void", "_", "any", "bool", "int", "float", "string", "type", "dict",
		"Any", "Class", "Enumeration", "Function", "Namespace", "Object", "Protocol", "Structure":
		return true
	}
	return false
}

func isUppercaseInitial(s string) bool {
	return len(s) > 0 && s[0] >= 'A' && s[0] <= 'Z'
}
