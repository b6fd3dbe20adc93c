package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/rootscript/core/pkg/token"
)

// virtualMatch is a zero-width "match" used by rules that fire on lexer
// state rather than on consuming new source bytes (the statement-body
// terminator synthesis). step() treats any non-zero try() result as a
// match; virtualMatch never reaches advanceBytes.
const virtualMatch = -1

// statementKeywords introduce a lexer-level `statement` context: the
// next `{` seen after one of these, with an intervening newline,
// becomes a `statementBody` rather than a plain brace block.
var statementKeywords = map[string]bool{
	"if": true, "while": true, "for": true, "try": true,
	"catch": true, "finally": true, "function": true,
}

func (l *Lexer) buildRules() []rule {
	return []rule{
		{"shebang", l.tryShebang, l.runShebang},
		{"blockComment", l.tryBlockComment, l.runBlockComment},
		{"lineComment", l.tryLineComment, l.runLineComment},
		{"newline", l.tryNewline, l.runNewline},
		{"whitespace", l.tryWhitespace, l.runWhitespace},
		{"stringSegment", l.tryStringSegment, l.runStringSegment},
		{"stringInterpOpen", l.tryInterpOpen, l.runInterpOpen},
		{"stringInterpClose", l.tryInterpClose, l.runInterpClose},
		{"stringClose", l.tryStringClose, l.runStringClose},
		{"stringOpen", l.tryStringOpen, l.runStringOpen},
		{"statementBodyTerminator", l.tryStatementTerminator, l.runStatementTerminator},
		{"braceClose", l.tryBraceClose, l.runBraceClose},
		{"braceOpen", l.tryBraceOpen, l.runBraceOpen},
		{"parenOpen", l.tryParenOpen, l.runParenOpen},
		{"parenClose", l.tryParenClose, l.runParenClose},
		{"bracketOpen", l.tryBracketOpen, l.runBracketOpen},
		{"bracketClose", l.tryBracketClose, l.runBracketClose},
		{"float", l.tryFloat, l.runNumber},
		{"integer", l.tryInteger, l.runNumber},
		{"identifier", l.tryIdentifier, l.runIdentifier},
		{"operator", l.tryOperator, l.runOperator},
		{"catchAll", l.tryCatchAll, l.runCatchAll},
	}
}

// ---- shebang --------------------------------------------------------

func (l *Lexer) tryShebang() int {
	if l.position != 0 || l.ch != '#' || l.peekAt(1) != '!' {
		return 0
	}
	pos := l.position
	for pos < len(l.input) && l.input[pos] != '\n' {
		pos++
	}
	return pos - l.position
}

func (l *Lexer) runShebang(length int) bool {
	loc := l.currentLoc()
	pos := l.position
	text := l.advanceBytes(length)
	l.emit(token.Shebang, text, pos, loc, true, false, false)
	return false
}

// ---- comments ---------------------------------------------------------

func (l *Lexer) tryBlockComment() int {
	if l.ch != '/' || l.peekAt(1) != '*' {
		return 0
	}
	depth := 0
	pos := l.position
	for pos < len(l.input) {
		if strings.HasPrefix(l.input[pos:], "/*") {
			depth++
			pos += 2
			continue
		}
		if strings.HasPrefix(l.input[pos:], "*/") {
			depth--
			pos += 2
			if depth == 0 {
				break
			}
			continue
		}
		_, size := utf8.DecodeRuneInString(l.input[pos:])
		pos += size
	}
	return pos - l.position
}

func (l *Lexer) runBlockComment(length int) bool {
	loc := l.currentLoc()
	pos := l.position
	text := l.advanceBytes(length)
	l.emit(token.CommentBlock, text, pos, loc, true, false, false)
	return false
}

func (l *Lexer) tryLineComment() int {
	if l.ch != '/' || l.peekAt(1) != '/' {
		return 0
	}
	pos := l.position
	for pos < len(l.input) && l.input[pos] != '\n' {
		pos++
	}
	return pos - l.position
}

func (l *Lexer) runLineComment(length int) bool {
	loc := l.currentLoc()
	pos := l.position
	text := l.advanceBytes(length)
	l.emit(token.CommentLine, text, pos, loc, true, false, false)
	return false
}

// ---- whitespace / newline ---------------------------------------------

func (l *Lexer) tryNewline() int {
	if l.ch != '\n' {
		return 0
	}
	return 1
}

func (l *Lexer) runNewline(length int) bool {
	loc := l.currentLoc()
	pos := l.position
	text := l.advanceBytes(length)
	l.emit(token.Newline, text, pos, loc, true, false, false)
	if l.states.is(StateStatement) {
		l.sawNewlineInStatement = true
	}
	return false
}

func (l *Lexer) tryWhitespace() int {
	if l.ch != ' ' && l.ch != '\t' && l.ch != '\r' {
		return 0
	}
	pos := l.position
	for pos < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[pos:])
		if r != ' ' && r != '\t' && r != '\r' {
			break
		}
		pos += size
	}
	return pos - l.position
}

func (l *Lexer) runWhitespace(length int) bool {
	loc := l.currentLoc()
	pos := l.position
	text := l.advanceBytes(length)
	l.emit(token.Whitespace, text, pos, loc, true, false, false)
	return false
}

// ---- strings ------------------------------------------------------------

func (l *Lexer) tryStringSegment() int {
	if !l.states.is(StateString) {
		return 0
	}
	pos := l.position
	for pos < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[pos:])
		if r == '\\' {
			if pos+size < len(l.input) {
				nr, _ := utf8.DecodeRuneInString(l.input[pos+size:])
				if nr == '(' {
					break // interpolation open; stop segment here
				}
			}
			pos += size
			if pos < len(l.input) {
				_, nsize := utf8.DecodeRuneInString(l.input[pos:])
				pos += nsize
			}
			continue
		}
		if r == '\'' {
			break
		}
		pos += size
	}
	return pos - l.position
}

func (l *Lexer) runStringSegment(length int) bool {
	loc := l.currentLoc()
	pos := l.position
	text := l.advanceBytes(length)
	l.emit(token.StringSegment, text, pos, loc, false, false, false)
	return false
}

func (l *Lexer) tryInterpOpen() int {
	if !l.states.is(StateString) || l.ch != '\\' || l.peekAt(1) != '(' {
		return 0
	}
	return 2
}

func (l *Lexer) runInterpOpen(length int) bool {
	loc := l.currentLoc()
	pos := l.position
	text := l.advanceBytes(length)
	l.states.push(StateStringExpression)
	l.emit(token.StringExpressionOpen, text, pos, loc, false, true, false)
	return false
}

func (l *Lexer) tryInterpClose() int {
	if !l.states.is(StateStringExpression) || l.ch != ')' {
		return 0
	}
	return 1
}

func (l *Lexer) runInterpClose(length int) bool {
	loc := l.currentLoc()
	pos := l.position
	text := l.advanceBytes(length)
	l.states.pop()
	l.emit(token.StringExpressionClosed, text, pos, loc, false, true, false)
	return false
}

func (l *Lexer) tryStringClose() int {
	if !l.states.is(StateString) || l.ch != '\'' {
		return 0
	}
	return 1
}

func (l *Lexer) runStringClose(length int) bool {
	loc := l.currentLoc()
	pos := l.position
	text := l.advanceBytes(length)
	l.states.pop()
	l.emit(token.StringClosed, text, pos, loc, false, true, false)
	return false
}

func (l *Lexer) tryStringOpen() int {
	if l.states.is(StateString) || l.ch != '\'' {
		return 0
	}
	return 1
}

func (l *Lexer) runStringOpen(length int) bool {
	loc := l.currentLoc()
	pos := l.position
	text := l.advanceBytes(length)
	l.states.push(StateString)
	l.emit(token.StringOpen, text, pos, loc, false, true, false)
	return false
}

// DecodeEscapes turns a raw stringSegment token value (as emitted by the
// lexer, escapes un-decoded to preserve the round-trip law) into the
// string value it denotes.
func DecodeEscapes(raw string) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 >= len(raw) {
			sb.WriteByte(raw[i])
			continue
		}
		i++
		switch raw[i] {
		case '\\':
			sb.WriteByte('\\')
		case '\'':
			sb.WriteByte('\'')
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case 'v':
			sb.WriteByte('\v')
		default:
			sb.WriteByte('\\')
			sb.WriteByte(raw[i])
		}
	}
	return sb.String()
}

// ---- statement-body brace handling --------------------------------------

func (l *Lexer) tryBraceOpen() int {
	if l.ch != '{' {
		return 0
	}
	return 1
}

func (l *Lexer) runBraceOpen(length int) bool {
	loc := l.currentLoc()
	pos := l.position
	text := l.advanceBytes(length)
	isBody := false
	if l.states.is(StateStatement) {
		l.states.pop()
		isBody = l.sawNewlineInStatement
	}
	if isBody {
		l.states.push(StateStatementBody)
	} else {
		l.states.push(StateBrace)
	}
	l.sawNewlineInStatement = false
	l.emit(token.BraceOpen, text, pos, loc, false, false, false)
	return false
}

func (l *Lexer) tryBraceClose() int {
	if l.ch != '}' {
		return 0
	}
	return 1
}

func (l *Lexer) runBraceClose(length int) bool {
	loc := l.currentLoc()
	pos := l.position
	text := l.advanceBytes(length)
	top, _ := l.states.pop()
	l.emit(token.BraceClose, text, pos, loc, false, false, false)
	if top == StateStatementBody {
		l.pendingStatementTerminator = true
	}
	return false
}

func (l *Lexer) tryStatementTerminator() int {
	if l.pendingStatementTerminator {
		return virtualMatch
	}
	return 0
}

func (l *Lexer) runStatementTerminator(length int) bool {
	l.pendingStatementTerminator = false
	next := l.peekNextSignificantWord()
	if !strings.EqualFold(next, "else") && !strings.EqualFold(next, "where") {
		loc := l.currentLoc()
		l.emit(token.Separator, "", l.position, loc, false, false, true)
	}
	return false
}

// peekNextSignificantWord scans forward, skipping trivia (whitespace and
// comments) without consuming them, and returns the next identifier-like
// word, or "" if the next significant character isn't identifier-shaped.
func (l *Lexer) peekNextSignificantWord() string {
	pos := l.position
	for pos < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[pos:])
		switch {
		case r == ' ' || r == '\t' || r == '\r' || r == '\n':
			pos += size
		case r == '/' && pos+1 < len(l.input) && l.input[pos+1] == '/':
			for pos < len(l.input) && l.input[pos] != '\n' {
				pos++
			}
		case r == '/' && pos+1 < len(l.input) && l.input[pos+1] == '*':
			end := strings.Index(l.input[pos+2:], "*/")
			if end < 0 {
				return ""
			}
			pos += 2 + end + 2
		default:
			start := pos
			for pos < len(l.input) {
				r2, size2 := utf8.DecodeRuneInString(l.input[pos:])
				if !isIdentRune(r2, pos == start) {
					break
				}
				pos += size2
			}
			return l.input[start:pos]
		}
	}
	return ""
}

// ---- brackets/parens ------------------------------------------------------

func (l *Lexer) tryParenOpen() int {
	if l.ch != '(' {
		return 0
	}
	return 1
}

func (l *Lexer) runParenOpen(length int) bool {
	loc := l.currentLoc()
	pos := l.position
	text := l.advanceBytes(length)
	l.states.push(StateParenthesis)
	l.emit(token.ParenOpen, text, pos, loc, false, false, false)
	return false
}

func (l *Lexer) tryParenClose() int {
	if l.ch != ')' {
		return 0
	}
	return 1
}

func (l *Lexer) runParenClose(length int) bool {
	loc := l.currentLoc()
	pos := l.position
	text := l.advanceBytes(length)
	if l.states.is(StateParenthesis) {
		l.states.pop()
	}
	l.emit(token.ParenClose, text, pos, loc, false, false, false)
	return false
}

func (l *Lexer) tryBracketOpen() int {
	if l.ch != '[' {
		return 0
	}
	return 1
}

func (l *Lexer) runBracketOpen(length int) bool {
	loc := l.currentLoc()
	pos := l.position
	text := l.advanceBytes(length)
	l.emit(token.BracketOpen, text, pos, loc, false, false, false)
	return false
}

func (l *Lexer) tryBracketClose() int {
	if l.ch != ']' {
		return 0
	}
	return 1
}

func (l *Lexer) runBracketClose(length int) bool {
	loc := l.currentLoc()
	pos := l.position
	text := l.advanceBytes(length)
	l.emit(token.BracketClose, text, pos, loc, false, false, false)
	return false
}

// ---- numbers --------------------------------------------------------------

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func (l *Lexer) tryInteger() int {
	if !isDigit(l.ch) {
		return 0
	}
	pos := l.position
	for pos < len(l.input) && isDigit(rune(l.input[pos])) {
		pos++
	}
	// don't claim the digits if a float rule would also match starting here
	if pos < len(l.input) && l.input[pos] == '.' && pos+1 < len(l.input) && isDigit(rune(l.input[pos+1])) {
		return 0
	}
	return pos - l.position
}

func (l *Lexer) tryFloat() int {
	if !isDigit(l.ch) {
		return 0
	}
	pos := l.position
	for pos < len(l.input) && isDigit(rune(l.input[pos])) {
		pos++
	}
	if pos >= len(l.input) || l.input[pos] != '.' || pos+1 >= len(l.input) || !isDigit(rune(l.input[pos+1])) {
		return 0
	}
	pos++ // consume '.'
	for pos < len(l.input) && isDigit(rune(l.input[pos])) {
		pos++
	}
	return pos - l.position
}

func (l *Lexer) runNumber(length int) bool {
	loc := l.currentLoc()
	pos := l.position
	text := l.advanceBytes(length)
	typ := token.NumberInteger
	if strings.Contains(text, ".") {
		typ = token.NumberFloat
	}
	l.emit(typ, text, pos, loc, false, false, false)
	return false
}

// ---- identifiers ------------------------------------------------------------

func isIdentRune(r rune, first bool) bool {
	if r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
		return true
	}
	if !first && r >= '0' && r <= '9' {
		return true
	}
	return false
}

func (l *Lexer) tryIdentifier() int {
	if !isIdentRune(l.ch, true) {
		return 0
	}
	pos := l.position
	first := true
	for pos < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[pos:])
		if !isIdentRune(r, first) {
			break
		}
		pos += size
		first = false
	}
	return pos - l.position
}

func (l *Lexer) runIdentifier(length int) bool {
	loc := l.currentLoc()
	pos := l.position
	text := l.advanceBytes(length)
	typ := token.Identifier
	if isKeyword(text) && !l.afterChainDot && !l.states.is(StateAngle) {
		typ = token.KeywordType(text)
	}
	if statementKeywords[toLowerASCII(text)] {
		l.states.push(StateStatement)
		l.sawNewlineInStatement = false
	}
	l.afterChainDot = false
	l.emit(typ, text, pos, loc, false, false, false)
	return false
}

// ---- operators --------------------------------------------------------------

func (l *Lexer) activeAlphabet() string {
	if l.states.is(StateAngle) {
		return angleAlphabet
	}
	return operatorAlphabet
}

func (l *Lexer) tryOperator() int {
	alphabet := l.activeAlphabet()
	if !isOperatorChar(l.ch, alphabet) {
		return 0
	}
	if isSingleton(l.ch) || isInitializer(l.ch) {
		return utf8.RuneLen(l.ch)
	}
	pos := l.position
	for pos < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[pos:])
		if !isOperatorChar(r, alphabet) || isSingleton(r) || isInitializer(r) {
			break
		}
		pos += size
	}
	return pos - l.position
}

func (l *Lexer) runOperator(length int) bool {
	loc := l.currentLoc()
	pos := l.position
	text := l.advanceBytes(length)

	prev := l.lastSignificantType()
	kind := token.OperatorPrefix
	switch {
	case isOperandEnd(prev) && isSingletonText(text):
		kind = token.OperatorPostfix
	case isOperandEnd(prev):
		kind = token.OperatorInfix
	}

	// '<' opening a generic-argument list: only when immediately after an
	// operand-ending token (identifier, literal, keyword, closing bracket)
	// with no separating trivia (a heuristic — see DESIGN.md).
	if text == "<" && isOperandEnd(prev) && len(l.tokens) > 0 && !l.tokens[len(l.tokens)-1].Trivia {
		l.states.push(StateAngle)
	} else if text == ">" && l.states.is(StateAngle) {
		l.states.pop()
	}

	if text == "." {
		l.afterChainDot = true
	}

	l.emit(kind, text, pos, loc, false, false, false)
	return false
}

func isSingletonText(s string) bool {
	return s == "!" || s == "?"
}

func isOperandEnd(t token.Type) bool {
	switch t {
	case token.Identifier, token.NumberInteger, token.NumberFloat,
		token.StringClosed, token.BraceClose, token.ParenClose,
		token.BracketClose, token.AngleClose:
		return true
	}
	return strings.HasPrefix(string(t), "keyword")
}

func (l *Lexer) lastSignificantType() token.Type {
	for i := len(l.tokens) - 1; i >= 0; i-- {
		if !l.tokens[i].Trivia {
			return l.tokens[i].Type
		}
	}
	return ""
}

// ---- catch-all --------------------------------------------------------------

func (l *Lexer) tryCatchAll() int {
	if l.eof() {
		return 0
	}
	return utf8.RuneLen(l.ch)
}

func (l *Lexer) runCatchAll(length int) bool {
	loc := l.currentLoc()
	pos := l.position
	text := l.advanceBytes(length)
	if n := len(l.tokens); n > 0 {
		last := &l.tokens[n-1]
		if last.Type == token.Unsupported && last.Position+len(last.Value) == pos {
			last.Value += text
			return false
		}
	}
	l.emit(token.Unsupported, text, pos, loc, false, false, false)
	return false
}
