package interp

import "github.com/rootscript/core/internal/composite"

// declare binds name to v in the given scope composite's member table,
// running Automatic ARC bookkeeping so a composite-valued binding is
// retained (spec §4.3 "Automatic ... used whenever a mutation might
// create or sever a link").
func (in *Interpreter) declare(scope int, name string, v Value) {
	c := in.Arena.Get(scope)
	if c == nil {
		return
	}
	c.Members[name] = v
	if v.Composite != noComposite {
		composite.Automatic(in.Arena, scope, v.Composite)
	}
}

// lookup walks the scope chain (current scope, then each Levels.Scope
// ancestor) looking for name.
func (in *Interpreter) lookup(name string) (Value, bool) {
	idx := in.Scopes.Current()
	for idx != composite.Missing {
		c := in.Arena.Get(idx)
		if c == nil {
			return Value{}, false
		}
		if v, ok := c.Members[name]; ok {
			if val, ok := v.(Value); ok {
				return val, true
			}
		}
		idx = c.Levels.Scope
	}
	return Value{}, false
}

// assign writes to the nearest scope in the chain that already binds
// name, falling back to declaring it in the current scope if none does.
func (in *Interpreter) assign(name string, v Value) {
	idx := in.Scopes.Current()
	for idx != composite.Missing {
		c := in.Arena.Get(idx)
		if c == nil {
			break
		}
		if _, ok := c.Members[name]; ok {
			in.declare(idx, name, v)
			return
		}
		idx = c.Levels.Scope
	}
	in.declare(in.Scopes.Current(), name, v)
}

// pushLocalNamespace creates the local-namespace composite a flow
// statement's body executes in, with intentionally missed self/Self/
// super/Super/sub/Sub levels (spec §4.3) so name lookup skips straight to
// the Scope chain.
func (in *Interpreter) pushLocalNamespace() int {
	scope := in.Scopes.Current()
	ns := in.Arena.Create("namespace", "", scope, false)
	in.Scopes.AddScope(ns.Own)
	return ns.Own
}

func (in *Interpreter) popLocalNamespace() {
	in.Scopes.RemoveScope(false)
}
