// Package lexer implements the stateful, rule-dispatch lexer for the
// scripting language core: it turns source text into an ordered token
// stream (trivia included) while tracking a context-state stack that
// distinguishes operators, comments, interpolated strings, and
// statement-body boundaries.
//
// Preservation law: concatenating every emitted token's Value reproduces
// the input exactly. No input is ever rejected — characters the lexer
// cannot classify become `unsupported` tokens.
package lexer

import (
	"unicode/utf8"

	"github.com/rootscript/core/pkg/token"
)

// Lexer scans source text into a token stream, one rule step at a time.
type Lexer struct {
	input        string
	position     int // byte offset of ch
	readPosition int
	line         int
	column       int
	ch           rune

	states *stateStack
	tokens []token.Token

	// afterChainDot tracks ".name" position: identifiers right after a
	// bare '.' are never keyword-specialized (member-access names).
	afterChainDot bool

	// sawNewlineInStatement / pendingStatementTerminator implement the
	// "block-as-statement-terminator" rule: a `{` opened after a newline
	// while in a `statement` context becomes a statementBody, and its
	// matching `}` synthesizes a generated `;` unless followed by
	// `else`/`where`.
	sawNewlineInStatement     bool
	pendingStatementTerminator bool

	rules []rule
}

type rule struct {
	name string
	// try reports the byte length of a match starting at the lexer's
	// current position, or 0 if the rule does not apply here.
	try func(l *Lexer) int
	// run performs the rule's action for a match of the given length.
	// It returns true if the next rule should see the *same* position
	// (the "defer" action from spec §4.1). None of the rules buildRules
	// installs returns true; the delimiter after a statement body's closing
	// brace is synthesized on a later step by its own rule, driven by
	// pendingStatementTerminator.
	run func(l *Lexer, length int) (deferNext bool)
}

// New creates a Lexer over source. It strips a leading UTF-8 BOM, exactly
// as the teacher's lexer does for file input.
func New(source string) *Lexer {
	if len(source) >= 3 && source[0] == 0xEF && source[1] == 0xBB && source[2] == 0xBF {
		source = source[3:]
	}
	l := &Lexer{
		input:  source,
		line:   1,
		column: 0,
		states: newStateStack(),
	}
	l.rules = l.buildRules()
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		return
	}
	r, size := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += size
	if r == '\t' {
		l.column += 4
	} else {
		l.column++
	}
}

func (l *Lexer) peekAt(offset int) rune {
	pos := l.position
	for i := 0; i < offset; i++ {
		if pos >= len(l.input) {
			return 0
		}
		_, size := utf8.DecodeRuneInString(l.input[pos:])
		pos += size
	}
	if pos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[pos:])
	return r
}

func (l *Lexer) eof() bool { return l.position >= len(l.input) }

func (l *Lexer) currentLoc() token.Position {
	return token.Position{Line: l.line, Column: l.column}
}

// advanceBytes consumes n bytes from the current position, updating
// line/column bookkeeping (a newline resets column to 0 and bumps line).
func (l *Lexer) advanceBytes(n int) string {
	start := l.position
	for i := 0; i < n && !l.eof(); {
		consumed := len(string(l.ch))
		if l.ch == '\n' {
			l.line++
			l.column = 0
			l.readChar()
			i += consumed
			continue
		}
		l.readChar()
		i += consumed
	}
	end := l.position
	if end > len(l.input) {
		end = len(l.input)
	}
	return l.input[start:end]
}

func (l *Lexer) emit(typ token.Type, value string, pos int, loc token.Position, trivia, nonmergeable, generated bool) {
	l.tokens = append(l.tokens, token.Token{
		Position: pos, Location: loc, Type: typ, Value: value,
		Trivia: trivia, Nonmergeable: nonmergeable, Generated: generated,
	})
}

// Lex runs the rule-dispatch loop to completion and returns every emitted
// token (trivia included).
func (l *Lexer) Lex() []token.Token {
	for !l.eof() || l.pendingStatementTerminator {
		l.step()
	}
	return l.tokens
}

// Filtered returns Lex()'s output with trivia tokens removed, the stream
// the parser actually consumes (spec §3: "trivia ... filtered before
// parsing").
func Filtered(tokens []token.Token) []token.Token {
	out := make([]token.Token, 0, len(tokens))
	for _, t := range tokens {
		if !t.Trivia {
			out = append(out, t)
		}
	}
	return out
}

// step tries each rule in priority order and invokes the first match.
// A "defer" result lets the very next rule in priority order see the same
// cursor position instead of restarting the scan — multi-rule composition
// at one location.
func (l *Lexer) step() {
	i := 0
	for i < len(l.rules) {
		r := l.rules[i]
		length := r.try(l)
		if length == 0 {
			i++
			continue
		}
		if l.rules[i].run(l, length) {
			i++
			continue
		}
		return
	}
}
