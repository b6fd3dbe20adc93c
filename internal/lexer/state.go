package lexer

import "github.com/bits-and-blooms/bitset"

// State is one entry of the lexer's context-state stack (spec data model
// §3: "Lexer state stack"). The vocabulary is fixed and small enough that
// each name also doubles as a bit index into the quick-membership set.
type State int

const (
	StateComment State = iota
	StateString
	StateStringExpression
	StateStatement
	StateStatementBody
	StateBrace
	StateParenthesis
	StateAngle

	stateCount
)

func (s State) String() string {
	switch s {
	case StateComment:
		return "comment"
	case StateString:
		return "string"
	case StateStringExpression:
		return "stringExpression"
	case StateStatement:
		return "statement"
	case StateStatementBody:
		return "statementBody"
	case StateBrace:
		return "brace"
	case StateParenthesis:
		return "parenthesis"
	case StateAngle:
		return "angle"
	default:
		return "unknown"
	}
}

// stateStack is the authoritative ordered sequence of open states. A
// bitset of open-counts-per-state rides alongside it so that "are we
// anywhere inside a string context" style predicates don't need to walk
// the whole stack on every rule dispatch.
type stateStack struct {
	stack  []State
	counts [int(stateCount)]int
	open   *bitset.BitSet
}

func newStateStack() *stateStack {
	return &stateStack{open: bitset.New(uint(stateCount))}
}

func (s *stateStack) push(st State) {
	s.stack = append(s.stack, st)
	s.counts[st]++
	s.open.Set(uint(st))
}

// pop removes the top state. It is a no-op (not a panic) on an empty
// stack: unbalanced state at EOF is an acceptable terminal condition
// handled by the parser's autoclose diagnostics, not a lexer error.
func (s *stateStack) pop() (State, bool) {
	if len(s.stack) == 0 {
		return 0, false
	}
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.counts[top]--
	if s.counts[top] == 0 {
		s.open.Clear(uint(top))
	}
	return top, true
}

func (s *stateStack) top() (State, bool) {
	if len(s.stack) == 0 {
		return 0, false
	}
	return s.stack[len(s.stack)-1], true
}

func (s *stateStack) is(st State) bool {
	t, ok := s.top()
	return ok && t == st
}

// anyOpen reports whether st is open anywhere in the stack (not
// necessarily at the top) — the bitset-backed fast path.
func (s *stateStack) anyOpen(st State) bool {
	return s.open.Test(uint(st))
}

func (s *stateStack) depth() int { return len(s.stack) }

func (s *stateStack) snapshot() []State {
	out := make([]State, len(s.stack))
	copy(out, s.stack)
	return out
}
