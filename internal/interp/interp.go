package interp

import (
	"github.com/rootscript/core/internal/composite"
	"github.com/rootscript/core/internal/observer"
	"github.com/rootscript/core/internal/reportkit"
	"github.com/rootscript/core/internal/types"
	"github.com/rootscript/core/pkg/ast"
	"github.com/rootscript/core/pkg/token"
)

// Interpreter holds everything one interpretation needs: the composite
// arena, the scope stack, the control-transfer stack, and the observer
// handle events are fired through (spec §4.3, §9 "one interpreter per
// process").
type Interpreter struct {
	Arena     *composite.Arena
	Scopes    *composite.ScopeStack
	Transfers *TransferStack
	Observer  observer.Observer
	Reports   *reportkit.List
	Source    string
	ModuleID  string

	// Templates maps a declared class/structure/object/protocol/
	// namespace/enumeration name to the arena index of its template
	// composite (self = own); Composites holds the matching type-lattice
	// description so catch-clause filtering can test against
	// user-declared names instead of only predefined ones.
	Templates  map[string]int
	Composites map[string]*types.Composite
}

func New(obs observer.Observer, source, moduleID string) *Interpreter {
	arena := composite.NewArena()
	in := &Interpreter{
		Arena:      arena,
		Scopes:     composite.NewScopeStack(arena),
		Transfers:  &TransferStack{},
		Observer:   obs,
		Reports:    &reportkit.List{},
		Source:     source,
		ModuleID:   moduleID,
		Templates:  make(map[string]int),
		Composites: make(map[string]*types.Composite),
	}
	// destruction protocol step 5: a composite destroyed while something
	// still points at its slot is reported as a level-1 diagnostic (spec's
	// original C++ implementation emits a console warning at the same
	// point; see SPEC_FULL.md SUPPLEMENTED FEATURES item 4).
	composite.OnDestroyWarning = func(index int) {
		in.report(reportkit.LevelWarning, 0, token.Position{}, "destroyed composite still referenced by a dangling retainer")
	}
	return in
}

func (in *Interpreter) notify(e observer.Event) {
	if in.Observer != nil {
		e.ModuleID = in.ModuleID
		in.Observer.Notify(e)
	}
}

func (in *Interpreter) report(level reportkit.Level, pos int, loc token.Position, message string) {
	d := reportkit.New(level, pos, loc, message, in.Source)
	in.Reports.Add(d)
	in.notify(observer.Event{
		Source: observer.SourceInterpreter, Action: observer.ActionReport,
		Position: pos, Level: int(level), Location: loc, String: message,
	})
}

func (in *Interpreter) print(s string) {
	in.notify(observer.Event{Source: observer.SourceInterpreter, Action: observer.ActionPrint, String: s})
}

// Run executes module's top-level statements in the global namespace's
// scope, stopping at the first top-level return or throw, then pops that
// implicit top-level scope without a destroy attempt, so that after
// top-level execution the global namespace and the composites it retains
// remain alive.
func (in *Interpreter) Run(module *ast.Module) Value {
	in.notify(observer.Event{Source: observer.SourceInterpreter, Action: observer.ActionRemoveAll})
	in.Transfers.Push()
	in.Scopes.AddScope(in.Arena.Global().Own)

	var result Value
	for _, stmt := range module.Statements {
		result = in.execStatement(stmt)
		t := in.Transfers.Top()
		if t != nil && t.Kind == TransferThrow {
			in.report(reportkit.LevelFatal, stmt.Span().Start, token.Position{}, "uncaught throw: "+t.Value.String())
			break
		}
		if t != nil && t.Kind == TransferReturn {
			break
		}
	}
	// suppressed: the global namespace is the process-lifetime root, not
	// a composite Significant() can ever judge reachable on its own
	// terms (nothing ever retains index 0 itself) — destroying it here
	// would contradict the doc comment above, under which the global
	// namespace remains alive. Scopes pushed and popped during the statement loop above
	// already ran their own unsuppressed destroy check as they closed.
	in.Scopes.RemoveScope(true)
	in.Transfers.Pop()
	return result
}
