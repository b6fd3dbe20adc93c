package interp

import (
	"github.com/rootscript/core/internal/composite"
	"github.com/rootscript/core/internal/reportkit"
	"github.com/rootscript/core/internal/types"
	"github.com/rootscript/core/pkg/ast"
	"github.com/rootscript/core/pkg/token"
)

func compositeKindFor(kind string) types.CompositeKind {
	switch kind {
	case "class":
		return types.CompositeClass
	case "structure":
		return types.CompositeStructure
	case "object":
		return types.CompositeObject
	case "protocol":
		return types.CompositeProtocol
	case "namespace":
		return types.CompositeNamespace
	case "enumeration":
		return types.CompositeEnumeration
	default:
		return types.CompositeFunction
	}
}

// declareComposite materializes a class/structure/object/protocol/
// namespace declaration as a template composite with self = own (spec
// §4.3 "Composite creation"), wires its Inherits list into the Super/Sub
// kinship levels, and runs its member declarations into the template's
// own scope so methods and fields become real arena-resident members
// rather than inert AST.
func (in *Interpreter) declareComposite(kind, name string, inherits, members []ast.Node) *composite.Composite {
	enclosing := in.Scopes.Current()
	tmpl := in.Arena.Create(kind, name, enclosing, true)
	in.declare(enclosing, name, ReferenceValue(types.Predefined{Name: "type"}, tmpl.Own))

	desc := &types.Composite{Name: name, Kind: compositeKindFor(kind)}
	for _, inh := range inherits {
		ct, ok := inh.(*ast.CompositeType)
		if !ok {
			continue
		}
		if superIdx, ok := in.Templates[ct.Name]; ok {
			composite.SetLevel(in.Arena, tmpl, "super", superIdx)
			if superTmpl := in.Arena.Get(superIdx); superTmpl != nil {
				composite.SetLevel(in.Arena, superTmpl, "sub", tmpl.Own)
			}
		}
		if superDesc, ok := in.Composites[ct.Name]; ok {
			desc.Inherits = append(desc.Inherits, superDesc)
		}
	}
	in.Templates[name] = tmpl.Own
	in.Composites[name] = desc

	in.Scopes.AddScope(tmpl.Own)
	for _, m := range members {
		in.execStatement(m)
	}
	in.Scopes.RemoveScope(true)

	return tmpl
}

// declareEnumeration materializes an enumeration as a template composite
// whose cases are bound as plain members (raw-valued if given, otherwise
// the zero-based case index — spec §4.5 predefined-type table's
// enumeration entry).
func (in *Interpreter) declareEnumeration(s *ast.EnumerationDeclaration) {
	enclosing := in.Scopes.Current()
	tmpl := in.Arena.Create("enumeration", s.Name, enclosing, true)
	in.declare(enclosing, s.Name, ReferenceValue(types.Predefined{Name: "type"}, tmpl.Own))

	in.Templates[s.Name] = tmpl.Own
	in.Composites[s.Name] = &types.Composite{Name: s.Name, Kind: types.CompositeEnumeration}

	for i, c := range s.Cases {
		v := IntValue(int64(i))
		if c.Value != nil {
			v = in.evalExpression(c.Value)
		}
		tmpl.Members[c.Name] = v
	}
}

// lookupMember finds name on the composite at idx, walking the Super
// chain for inherited members when the composite itself doesn't carry it.
func (in *Interpreter) lookupMember(idx int, name string) (Value, bool) {
	for idx != composite.Missing {
		c := in.Arena.Get(idx)
		if c == nil {
			return Value{}, false
		}
		if m, ok := c.Members[name]; ok {
			if v, ok := m.(Value); ok {
				return v, true
			}
		}
		idx = c.Levels.Super
	}
	return Value{}, false
}

// invoke runs a function composite's declared body. When selfIdx is not
// noComposite, it is bound as "self" in the call's local namespace before
// parameters are declared, giving method bodies a real receiver without
// the function's own lexical scope (its declaring template) having to
// carry one.
func (in *Interpreter) invoke(fnIdx int, selfIdx int, args []Value) Value {
	fn := in.Arena.Get(fnIdx)
	if fn == nil {
		return VoidValue()
	}
	decl, ok := fn.Members["__decl"].(*ast.FunctionDeclaration)
	if !ok {
		return VoidValue()
	}

	in.Transfers.Push()
	scope := in.pushLocalNamespace()
	if selfIdx != noComposite {
		in.declare(scope, "self", ReferenceValue(nil, selfIdx))
	}
	for i, param := range decl.Parameters {
		var v Value
		if i < len(args) {
			v = args[i]
		} else if param.Default != nil {
			v = in.evalExpression(param.Default)
		}
		in.declare(scope, param.Name, v)
	}
	var result Value
	if decl.Body != nil {
		for _, stmt := range decl.Body.Statements {
			result = in.execStatement(stmt)
			if t := in.Transfers.Top(); t != nil && t.Kind != TransferNone {
				if t.Kind == TransferReturn {
					result = t.Value
				}
				break
			}
		}
	}
	in.popLocalNamespace()
	in.Transfers.Pop()
	return result
}

// evalInstantiation creates an instance composite for `new Foo(...)`,
// linking it to its declared template via the Super/Sub kinship levels
// (instance.super = template, template.sub = instance), copying the
// template's declared members as the instance's own, then running the
// "init" method, if any, with self bound to the new instance.
func (in *Interpreter) evalInstantiation(e *ast.InstantiationExpression) Value {
	ct, ok := e.Type.(*ast.CompositeType)
	if !ok {
		return VoidValue()
	}
	templateIdx, ok := in.Templates[ct.Name]
	if !ok {
		in.report(reportkit.LevelWarning, e.Span().Start, token.Position{}, "instantiation of undeclared composite: "+ct.Name)
		return VoidValue()
	}
	template := in.Arena.Get(templateIdx)
	if template == nil {
		return VoidValue()
	}

	inst := in.Arena.Create(template.Kind, template.Name, in.Scopes.Current(), true)
	composite.SetLevel(in.Arena, inst, "super", templateIdx)
	composite.SetLevel(in.Arena, template, "sub", inst.Own)

	for name, m := range template.Members {
		v, ok := m.(Value)
		if !ok {
			continue
		}
		inst.Members[name] = v
		if v.Composite != noComposite {
			composite.Automatic(in.Arena, inst.Own, v.Composite)
		}
	}

	args := make([]Value, 0, len(e.Arguments))
	for _, a := range e.Arguments {
		args = append(args, in.evalExpression(a))
	}
	if init, ok := in.lookupMember(templateIdx, "init"); ok && init.Composite != noComposite {
		in.invoke(init.Composite, inst.Own, args)
	}

	desc := in.Composites[ct.Name]
	var t types.Type
	if desc != nil {
		t = types.Reference{Target: desc}
	}
	return ReferenceValue(t, inst.Own)
}
