// Package observer defines the single externally visible contract from
// the core (spec §6): notify(Event). A JSON wire-format codec built on
// gjson/sjson lets collaborators receive and send these events over a
// process boundary (socket relay, dashboard UI) without hand-rolled
// string building.
package observer

import "github.com/rootscript/core/pkg/token"

// Action names the event shapes an Observer can receive.
type Action string

const (
	ActionRemoveAll           Action = "removeAll"
	ActionTokenized           Action = "tokenized"
	ActionParsed              Action = "parsed"
	ActionRemoveAfterPosition Action = "removeAfterPosition"
	ActionAdd                 Action = "add"
	ActionReport              Action = "report"
	ActionPrint               Action = "print"
)

// Source names which phase emitted an event.
type Source string

const (
	SourceLexer       Source = "lexer"
	SourceParser      Source = "parser"
	SourceInterpreter Source = "interpreter"
)

// Event is the single notification shape; fields not relevant to Action
// are left zero.
type Event struct {
	Source   Source
	Action   Action
	ModuleID string

	Tokens []token.Token // tokenized
	Tree   any           // parsed — the *ast.Module, kept untyped to avoid an ast import cycle concern and to match the wire codec's generic payload handling
	Position int         // removeAfterPosition, add, report

	Level    int            // add, report
	Location token.Position // add, report
	String   string         // add, report, print
}

// Observer is the single externally visible contract from the core.
type Observer interface {
	Notify(Event)
}

// Multi fans a single Notify out to every attached Observer, used when
// more than one collaborator (dashboard + relay) is attached at once.
type Multi []Observer

func (m Multi) Notify(e Event) {
	for _, o := range m {
		if o != nil {
			o.Notify(e)
		}
	}
}

// Ordering guarantee (spec §5): callers emitting a removeAll must do so
// before any subsequent tokenized/parsed/report/add in the same phase;
// this package does not enforce that itself — it is a contract on the
// caller (lexer/parser/interpreter), exercised by their own sequencing.
