// Package reportkit provides the diagnostic value types shared by the
// lexer, parser, and interpreter, plus source-context formatting in the
// same style as the teacher's internal/errors package.
package reportkit

import (
	"fmt"
	"strings"

	"github.com/rootscript/core/pkg/token"
)

// Level is a diagnostic's severity: 0 soft, 1 warning, 2 fatal.
type Level int

const (
	LevelSoft Level = iota
	LevelWarning
	LevelFatal
)

func (l Level) String() string {
	switch l {
	case LevelSoft:
		return "soft"
	case LevelWarning:
		return "warning"
	case LevelFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Diagnostic is the single report shape flowing from lexer/parser/
// interpreter to the Observer contract.
type Diagnostic struct {
	Level    Level
	Position int // filtered-token index the diagnostic refers to
	Location token.Position
	Message  string
	Source   string // full source text, for context formatting
}

func New(level Level, position int, loc token.Position, message, source string) Diagnostic {
	return Diagnostic{Level: level, Position: position, Location: loc, Message: message, Source: source}
}

// Error implements the error interface so a Diagnostic can be returned
// from Go functions that need one (e.g. the CLI's fatal throw report).
func (d Diagnostic) Error() string { return d.Format() }

// Format renders the diagnostic with a caret line pointing at its
// location, mirroring CompilerError.Format in the teacher.
func (d Diagnostic) Format() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s at %d:%d\n", d.Level, d.Location.Line, d.Location.Column)

	if line := sourceLine(d.Source, d.Location.Line); line != "" {
		prefix := fmt.Sprintf("%4d | ", d.Location.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
		col := d.Location.Column
		if col < 1 {
			col = 1
		}
		sb.WriteString(strings.Repeat(" ", len(prefix)+col-1))
		sb.WriteString("^\n")
	}

	sb.WriteString(d.Message)
	return sb.String()
}

func sourceLine(source string, line int) string {
	if source == "" || line < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return ""
	}
	return lines[line-1]
}

// List is an ordered diagnostic list with the rollback retraction
// operation the parser's fault-tolerance algorithm needs.
type List struct {
	items []Diagnostic
}

func (l *List) Add(d Diagnostic) { l.items = append(l.items, d) }

func (l *List) Len() int { return len(l.items) }

func (l *List) Items() []Diagnostic { return l.items }

// RetractFrom removes every diagnostic whose Position is >= position,
// implementing the "rollback rolls back emitted diagnostics" rule.
func (l *List) RetractFrom(position int) {
	kept := l.items[:0:0]
	for _, d := range l.items {
		if d.Position < position {
			kept = append(kept, d)
		}
	}
	l.items = kept
}

// FilterMinLevel returns the diagnostics at or above min, implementing
// the consumer-side --reportsLevel filtering policy.
func FilterMinLevel(items []Diagnostic, min Level) []Diagnostic {
	out := make([]Diagnostic, 0, len(items))
	for _, d := range items {
		if d.Level >= min {
			out = append(out, d)
		}
	}
	return out
}
