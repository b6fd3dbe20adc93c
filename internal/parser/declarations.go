package parser

import (
	"github.com/rootscript/core/internal/grammar"
	"github.com/rootscript/core/internal/reportkit"
	"github.com/rootscript/core/pkg/ast"
	"github.com/rootscript/core/pkg/token"
)

// parseCompositeDeclaration consumes modifiers then dispatches on the
// declaration-introducing keyword to the matching node kind (spec §4.2,
// grammar.CompositeKeywords).
func (p *Parser) parseCompositeDeclaration() ast.Node {
	start := p.position
	mods := p.parseModifiers(grammar.ModifierGroups, grammar.ModifierKeywords)

	switch {
	case p.isKeyword("function"):
		return p.parseFunctionDeclaration(start, mods)
	case p.isKeyword("class"):
		return p.parseClassLikeDeclaration(start, mods, "class")
	case p.isKeyword("structure"):
		return p.parseClassLikeDeclaration(start, mods, "structure")
	case p.isKeyword("object"):
		return p.parseClassLikeDeclaration(start, mods, "object")
	case p.isKeyword("protocol"):
		return p.parseClassLikeDeclaration(start, mods, "protocol")
	case p.isKeyword("namespace"):
		return p.parseNamespaceDeclaration(start, mods)
	case p.isKeyword("enumeration"):
		return p.parseEnumerationDeclaration(start, mods)
	default:
		p.rewind(start)
		return nil
	}
}

func (p *Parser) parseFunctionDeclaration(start int, mods *ast.Modifiers) ast.Node {
	p.advance() // function
	placement := ""
	for _, kw := range []string{"prefix", "infix", "postfix"} {
		if p.isKeyword(kw) {
			placement = kw
			p.advance()
			break
		}
	}
	name := ""
	if p.is(token.Identifier) || p.is(token.OperatorInfix) || p.is(token.OperatorPrefix) || p.is(token.OperatorPostfix) {
		name = p.advance().Value
	}
	if name == "" {
		p.addReport(reportkit.LevelFatal, "function declaration requires a signature")
		p.rewind(start)
		return nil
	}
	params := p.parseParameterList()
	var ret ast.Node
	if p.is(token.OperatorInfix) && p.current().Value == "->" {
		p.advance()
		ret = p.parseType()
	}
	body := p.parseFunctionBody()
	return ast.NewFunctionDeclaration(ast.Range{Start: start, End: p.position - 1}, mods, name, placement, params, ret, body)
}

func (p *Parser) parseClassLikeDeclaration(start int, mods *ast.Modifiers, kind string) ast.Node {
	p.advance() // class|structure|object|protocol
	name := ""
	if p.is(token.Identifier) {
		name = p.advance().Value
	}
	var inherits []ast.Node
	if p.is(token.OperatorInfix) && p.current().Value == ":" {
		p.advance()
		inherits = append(inherits, p.parseType())
		for p.matchComma() {
			inherits = append(inherits, p.parseType())
		}
	}
	members := p.parseMemberBody()
	switch kind {
	case "class":
		return ast.NewClassDeclaration(ast.Range{Start: start, End: p.position - 1}, mods, name, inherits, members)
	case "structure":
		return ast.NewStructureDeclaration(ast.Range{Start: start, End: p.position - 1}, mods, name, inherits, members)
	case "object":
		return ast.NewObjectDeclaration(ast.Range{Start: start, End: p.position - 1}, mods, name, inherits, members)
	default:
		return ast.NewProtocolDeclaration(ast.Range{Start: start, End: p.position - 1}, mods, name, inherits, members)
	}
}

func (p *Parser) parseNamespaceDeclaration(start int, mods *ast.Modifiers) ast.Node {
	p.advance()
	name := ""
	if p.is(token.Identifier) {
		name = p.advance().Value
	}
	members := p.parseMemberBody()
	return ast.NewNamespaceDeclaration(ast.Range{Start: start, End: p.position - 1}, mods, name, members)
}

func (p *Parser) parseMemberBody() []ast.Node {
	if !p.match(token.BraceOpen) {
		return nil
	}
	return p.skippableNodes(p.parseStatement, token.BraceOpen, token.BraceClose, token.Separator)
}

func (p *Parser) parseEnumerationDeclaration(start int, mods *ast.Modifiers) ast.Node {
	p.advance() // enumeration
	name := ""
	if p.is(token.Identifier) {
		name = p.advance().Value
	}
	var rawType ast.Node
	if p.is(token.OperatorInfix) && p.current().Value == ":" {
		p.advance()
		rawType = p.parseType()
	}
	var cases []ast.EnumerationCase
	if p.match(token.BraceOpen) {
		for !p.atEnd() && !p.is(token.BraceClose) {
			if p.is(token.Identifier) {
				caseName := p.advance().Value
				var value ast.Node
				if p.is(token.OperatorInfix) && p.current().Value == "=" {
					p.advance()
					value = p.parseExpression()
				}
				cases = append(cases, ast.EnumerationCase{Name: caseName, Value: value})
			}
			if !p.matchComma() && !p.match(token.Separator) {
				break
			}
		}
		p.match(token.BraceClose)
	}
	return ast.NewEnumerationDeclaration(ast.Range{Start: start, End: p.position - 1}, mods, name, rawType, cases)
}
