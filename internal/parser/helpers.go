package parser

import (
	"github.com/rootscript/core/internal/reportkit"
	"github.com/rootscript/core/pkg/ast"
	"github.com/rootscript/core/pkg/token"
)

// skippableNodes parses inside an opener/closer pair whose opener the
// caller has already consumed. It tracks a scope depth starting at 1,
// incrementing on openerType and decrementing on closerType. On a
// syntactic miss it produces an Unsupported node consuming tokens until
// depth returns to 0 or a separatorType token is seen; at a separator it
// inserts a transient Separator node. Diagnostics are emitted for a
// separator that directly follows another separator and for every
// produced Unsupported node; a leading or trailing separator at the list
// boundaries is not reported. Separators are erased before return (spec
// §4.2 "Skippable-node(s) helper").
func (p *Parser) skippableNodes(parseOne func() ast.Node, openerType, closerType, separatorType token.Type) []ast.Node {
	var raw []ast.Node
	depth := 1
	sawItemSinceSeparator := false

	for !p.atEnd() && depth > 0 {
		if p.is(closerType) {
			depth--
			if depth == 0 {
				p.advance()
				break
			}
			continue
		}
		if p.is(openerType) {
			depth++
		}
		if p.isSep(separatorType) {
			if !sawItemSinceSeparator && len(raw) > 0 {
				p.addReport(reportkit.LevelWarning, "spurious separator")
			}
			raw = append(raw, ast.NewSeparator(ast.Range{Start: p.position, End: p.position}))
			p.advance()
			sawItemSinceSeparator = false
			continue
		}

		before := p.position
		node := parseOne()
		if node == nil || p.position == before {
			start := p.position
			innerDepth := 0
			for !p.atEnd() {
				if p.is(openerType) {
					innerDepth++
				} else if p.is(closerType) {
					if innerDepth == 0 {
						break
					}
					innerDepth--
				} else if p.isSep(separatorType) && innerDepth == 0 {
					break
				}
				p.advance()
			}
			end := p.position - 1
			if end < start {
				end = start
			}
			p.addReportAt(reportkit.LevelWarning, start, p.locAt(start), "unsupported construct")
			raw = append(raw, ast.NewUnsupported(ast.Range{Start: start, End: end}, tokenRange(start, end)))
			sawItemSinceSeparator = true
			continue
		}
		raw = append(raw, node)
		sawItemSinceSeparator = true
	}

	out := make([]ast.Node, 0, len(raw))
	for _, n := range raw {
		if n.Kind() == "separator" {
			continue
		}
		out = append(out, n)
	}
	return out
}

// isSep/matchSep route a separator type through the comma-aware checks
// when typ is token.Comma (see Parser.isComma), and behave like is/match
// otherwise.
func (p *Parser) isSep(typ token.Type) bool {
	if typ == token.Comma {
		return p.isComma()
	}
	return p.is(typ)
}

func (p *Parser) matchSep(typ token.Type) bool {
	if typ == token.Comma {
		return p.matchComma()
	}
	return p.match(typ)
}

func clampIdx(i, n int) int {
	if n == 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func tokenRange(start, end int) []int {
	out := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		out = append(out, i)
	}
	return out
}

// sequentialNodes parses a repeated alternation pattern
// [kinds[0], kinds[1], ..., kinds[n-1], kinds[0], ...] with an optional
// separator type and a subsequential-kind set whose members do not
// advance the rotation index. It stops on the first miss (spec §4.2
// "Sequential-nodes helper").
func (p *Parser) sequentialNodes(parsers map[string]func() ast.Node, order []string, subsequential map[string]bool, separatorType token.Type) []ast.Node {
	var out []ast.Node
	rotation := 0
	for {
		if separatorType != "" && len(out) > 0 {
			if !p.isSep(separatorType) {
				break
			}
		}
		matched := false
		for tries := 0; tries < len(order); tries++ {
			kind := order[rotation%len(order)]
			fn := parsers[kind]
			before := p.position
			node := fn()
			if node != nil {
				if separatorType != "" && len(out) > 0 {
					// the separator token itself was already checked above
				}
				out = append(out, node)
				matched = true
				if !subsequential[kind] {
					rotation++
				}
				break
			}
			p.rewind(before)
		}
		if !matched {
			break
		}
		if separatorType != "" {
			if !p.matchSep(separatorType) {
				break
			}
		}
	}
	return out
}

// parseModifiers accepts a run of modifier keywords, reporting mutual-
// exclusion violations per group as level-1 diagnostics without refusing
// to build the node (spec §4.2 "Modifiers").
func (p *Parser) parseModifiers(groups [][]string, keywords map[string]bool) *ast.Modifiers {
	mods := &ast.Modifiers{}
	seen := map[string]bool{}
	for {
		name, ok := currentKeywordName(p)
		if !ok || !keywords[name] {
			break
		}
		for _, group := range groups {
			count := 0
			inGroup := false
			for _, g := range group {
				if g == name {
					inGroup = true
				}
				if seen[g] {
					count++
				}
			}
			if inGroup && count > 0 {
				p.addReport(reportkit.LevelWarning, "conflicting modifier: "+name)
			}
		}
		seen[name] = true
		applyModifier(mods, name)
		p.advance()
	}
	return mods
}

func applyModifier(mods *ast.Modifiers, name string) {
	switch name {
	case "private":
		mods.Private = true
	case "protected":
		mods.Protected = true
	case "public":
		mods.Public = true
	case "static":
		mods.Static = true
	case "final":
		mods.Final = true
	case "lazy":
		mods.Lazy = true
	case "virtual":
		mods.Virtual = true
	}
}

// currentKeywordName returns the lowercase keyword name of the current
// token if it is a keyword<Name> token, else ("", false).
func currentKeywordName(p *Parser) (string, bool) {
	if p.atEnd() {
		return "", false
	}
	t := string(p.current().Type)
	const prefix = "keyword"
	if len(t) <= len(prefix) || t[:len(prefix)] != prefix {
		return "", false
	}
	name := t[len(prefix):]
	return toLowerASCII(name), true
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
