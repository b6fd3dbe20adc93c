// Package parser implements the hand-written recursive-descent parser:
// one function per node kind, dispatched from Parse, with a position
// cursor that supports rollback-with-diagnostic-retraction and the fault
// tolerance helpers spec §4.2 names.
package parser

import (
	"github.com/rootscript/core/internal/reportkit"
	"github.com/rootscript/core/pkg/ast"
	"github.com/rootscript/core/pkg/token"
)

// Parser holds the filtered token stream and parse state. It is built
// fresh per parse; it is not safe for concurrent use (spec §5: "single-
// threaded cooperative").
type Parser struct {
	tokens   []token.Token
	position int
	reports  *reportkit.List
	source   string
}

// New creates a Parser over an already-filtered token stream (trivia
// removed, per lexer.Filtered).
func New(tokens []token.Token, source string) *Parser {
	return &Parser{tokens: tokens, reports: &reportkit.List{}, source: source}
}

// Diagnostics returns the accumulated diagnostic list after Parse.
func (p *Parser) Diagnostics() []reportkit.Diagnostic { return p.reports.Items() }

// Parse runs the parser to completion and returns the root module node.
func (p *Parser) Parse() *ast.Module {
	start := p.position
	var statements []ast.Node
	for !p.atEnd() {
		before := p.position
		stmt := p.parseStatement()
		if stmt != nil {
			statements = append(statements, stmt)
		}
		if p.position == before {
			// Guard against an accidental non-advancing parse: consume one
			// token into an unsupported node so the loop always progresses.
			statements = append(statements, p.consumeUnsupportedOne())
		}
	}
	end := p.position - 1
	if end < start {
		end = start
	}
	return ast.NewModule(ast.Range{Start: start, End: end}, statements)
}

func (p *Parser) atEnd() bool { return p.position >= len(p.tokens) }

func (p *Parser) current() token.Token {
	if p.atEnd() {
		if len(p.tokens) == 0 {
			return token.Token{Type: token.EOF}
		}
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.position]
}

func (p *Parser) peekAt(offset int) token.Token {
	idx := p.position + offset
	if idx < 0 || idx >= len(p.tokens) {
		return token.Token{Type: token.EOF}
	}
	return p.tokens[idx]
}

func (p *Parser) currentLoc() token.Position { return p.current().Location }

// advance consumes and returns the current token.
func (p *Parser) advance() token.Token {
	t := p.current()
	if !p.atEnd() {
		p.position++
	}
	return t
}

// is reports whether the current token has the given type.
func (p *Parser) is(typ token.Type) bool { return !p.atEnd() && p.current().Type == typ }

// isKeyword reports whether the current token is the named keyword. The
// case of the first letter is not distinguished, since token.KeywordType
// capitalizes it in the Type tag (self and Self share one tag).
func (p *Parser) isKeyword(name string) bool {
	return !p.atEnd() && p.current().Type == token.KeywordType(name)
}

// match consumes and returns true if the current token has typ.
func (p *Parser) match(typ token.Type) bool {
	if p.is(typ) {
		p.advance()
		return true
	}
	return false
}

// isComma reports whether the current token is a comma. The lexer never
// emits a dedicated comma token type — "," is scanned by the generic
// operator rule (its initializer-char handling keeps it from merging
// with neighboring operator characters) and surfaces as an OperatorInfix
// token whose Value is ",". List-separator parsing checks for that
// shape directly rather than a token.Comma type, which nothing emits.
func (p *Parser) isComma() bool {
	return p.is(token.OperatorInfix) && p.current().Value == ","
}

func (p *Parser) matchComma() bool {
	if p.isComma() {
		p.advance()
		return true
	}
	return false
}

// setPosition moves the cursor, emitting the removeAfterPosition
// notification contract (observed via retraction of diagnostics beyond
// the new cursor) whenever it decreases.
func (p *Parser) setPosition(pos int) {
	if pos < p.position {
		p.reports.RetractFrom(pos)
	}
	p.position = pos
}

// rewind implements the fault-tolerance rule: a failed node parse that
// already advanced the cursor must rewind to start before returning nil.
func (p *Parser) rewind(start int) {
	p.setPosition(start)
}

func (p *Parser) addReport(level reportkit.Level, message string) {
	p.reports.Add(reportkit.New(level, p.position, p.currentLoc(), message, p.source))
}

func (p *Parser) addReportAt(level reportkit.Level, pos int, loc token.Position, message string) {
	p.reports.Add(reportkit.New(level, pos, loc, message, p.source))
}

// locAt safely returns the location of tokens[idx], or the zero Position
// if the stream is empty or idx is out of range.
func (p *Parser) locAt(idx int) token.Position {
	if len(p.tokens) == 0 {
		return token.Position{}
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= len(p.tokens) {
		idx = len(p.tokens) - 1
	}
	return p.tokens[idx].Location
}

// consumeUnsupportedOne builds a single-token Unsupported node and
// advances past it — the last-resort fallback that guarantees progress.
func (p *Parser) consumeUnsupportedOne() *ast.Unsupported {
	start := p.position
	tok := p.advance()
	_ = tok
	return ast.NewUnsupported(ast.Range{Start: start, End: start}, []int{start})
}
