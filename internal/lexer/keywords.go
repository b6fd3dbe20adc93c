package lexer

// keywords is the fixed keyword vocabulary. An identifier matching one of
// these (case-insensitively) becomes a `keyword<Name>` token whose tag
// token.KeywordType builds with the first letter capitalized; the
// token's Value keeps the source's own spelling.
var keywords = map[string]bool{
	"if": true, "else": true, "while": true, "for": true, "in": true,
	"is": true, "as": true, "break": true, "continue": true,
	"fallthrough": true, "return": true, "throw": true, "try": true,
	"catch": true, "finally": true, "where": true,
	"class": true, "enumeration": true, "function": true,
	"namespace": true, "object": true, "protocol": true, "structure": true,
	"import": true, "export": true, "const": true, "var": true,
	"private": true, "protected": true, "public": true, "static": true,
	"final": true, "lazy": true, "virtual": true,
	"prefix": true, "infix": true, "postfix": true,
	"self": true, "super": true, "sub": true, "scope": true,
	"void": true, "nil": true, "true": true, "false": true,
	"new": true,
}

// isKeyword reports whether name (case-insensitive) is a keyword.
func isKeyword(name string) bool {
	return keywords[toLowerASCII(name)]
}

func toLowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// operatorAlphabet is the full set of characters operator tokens are built
// from (spec §4.1).
const operatorAlphabet = "!%&*+,-./:<=>?^|~"

// angleAlphabet is the restricted operator character set allowed while an
// `angle` (generic-type bracket) context is open; anything else forces an
// operator-merge flush.
const angleAlphabet = ",.:<>?|"

// initializerChars start a new operator token rather than merging with a
// preceding pending operator.
const initializerChars = ",.:"

// singletonPostfix operators never chain with another operator character.
const singletonPostfix = "!?"

func isOperatorChar(r rune, alphabet string) bool {
	for _, c := range alphabet {
		if c == r {
			return true
		}
	}
	return false
}

func isInitializer(r rune) bool   { return isOperatorChar(r, initializerChars) }
func isSingleton(r rune) bool     { return isOperatorChar(r, singletonPostfix) }
