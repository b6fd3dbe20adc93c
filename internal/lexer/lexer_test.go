package lexer

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/rootscript/core/pkg/token"
	"github.com/stretchr/testify/require"
)

// TestTokenRoundTrip checks the lexer's preservation law: concatenating
// every emitted token's Value reproduces the input exactly.
func TestTokenRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"1 + 2 * 3",
		"var x = 10\nreturn x",
		"'x=\\(1+2)'",
		"class Foo {\n  function bar() {}\n}",
		"func f(){",
		"// a comment\nvar y = 1",
	}
	for _, in := range inputs {
		toks := New(in).Lex()
		var sb strings.Builder
		for _, tok := range toks {
			sb.WriteString(tok.Value)
		}
		require.Equal(t, in, sb.String(), "round-trip mismatch for %q", in)
	}
}

// TestTriviaFilter checks that Filtered drops exactly the trivia tokens
// and nothing else.
func TestTriviaFilter(t *testing.T) {
	src := "var x = 1 // comment\nreturn x"
	all := New(src).Lex()
	filtered := Filtered(all)

	var triviaCount int
	for _, tok := range all {
		if tok.Trivia {
			triviaCount++
		}
	}
	require.Equal(t, len(all)-triviaCount, len(filtered))
	for _, tok := range filtered {
		require.False(t, tok.Trivia, "trivia token %v reached the filtered stream", tok)
	}
}

// TestStringInterpolationTokens pins the exact token shape for a single
// interpolated segment (scenario: 'x=\(1+2)').
func TestStringInterpolationTokens(t *testing.T) {
	toks := Filtered(New(`'x=\(1+2)'`).Lex())
	want := []token.Type{
		token.StringOpen,
		token.StringSegment,
		token.StringExpressionOpen,
		token.NumberInteger,
		token.OperatorInfix,
		token.NumberInteger,
		token.StringExpressionClosed,
		token.StringClosed,
	}
	require.Len(t, toks, len(want))
	for i, typ := range want {
		require.Equalf(t, typ, toks[i].Type, "token %d", i)
	}
	require.Equal(t, "x=", toks[1].Value)
	require.Equal(t, "1", toks[3].Value)
	require.Equal(t, "+", toks[4].Value)
	require.Equal(t, "2", toks[5].Value)
}

// TestFilteredTokenStreamSnapshot snapshots the filtered token stream for
// a small representative program, catching accidental shape changes to
// the lexer's rule dispatch.
func TestFilteredTokenStreamSnapshot(t *testing.T) {
	src := "class Point {\n  var x = 0\n  function sum(a, b) { return a + b }\n}"
	toks := Filtered(New(src).Lex())
	var sb strings.Builder
	for _, tok := range toks {
		sb.WriteString(string(tok.Type))
		sb.WriteString("(")
		sb.WriteString(tok.Value)
		sb.WriteString(") ")
	}
	snaps.MatchSnapshot(t, sb.String())
}
