package interp

import "github.com/rootscript/core/pkg/ast"

// execStatement evaluates a statement node by its kind, returning the
// value it contributes for the enclosing body's implicit control
// transfer.
func (in *Interpreter) execStatement(n ast.Node) Value {
	if n == nil {
		return VoidValue()
	}
	switch s := n.(type) {
	case *ast.ExpressionStatement:
		v := in.evalExpression(s.Expression)
		in.Transfers.SetImplicit(v)
		return v
	case *ast.VariableDeclaration:
		v := VoidValue()
		if s.Value != nil {
			v = in.evalExpression(s.Value)
		}
		in.declare(in.Scopes.Current(), s.Name, v)
		return VoidValue()
	case *ast.ConstantDeclaration:
		v := VoidValue()
		if s.Value != nil {
			v = in.evalExpression(s.Value)
		}
		in.declare(in.Scopes.Current(), s.Name, v)
		return VoidValue()
	case *ast.AssignmentStatement:
		v := in.evalExpression(s.Value)
		switch target := s.Target.(type) {
		case *ast.Identifier:
			in.assign(target.Name, v)
		case *ast.MemberExpression:
			in.assignMember(target, v)
		case *ast.SubscriptExpression:
			in.assignSubscript(target, v)
		}
		return v
	case *ast.ReturnStatement:
		v := VoidValue()
		if s.Value != nil {
			v = in.evalExpression(s.Value)
		}
		in.Transfers.Set(v, TransferReturn)
		return v
	case *ast.ThrowStatement:
		v := VoidValue()
		if s.Value != nil {
			v = in.evalExpression(s.Value)
		}
		in.Transfers.Set(v, TransferThrow)
		return v
	case *ast.BreakStatement:
		in.Transfers.Set(VoidValue(), TransferBreak)
		return VoidValue()
	case *ast.ContinueStatement:
		in.Transfers.Set(VoidValue(), TransferContinue)
		return VoidValue()
	case *ast.FallthroughStatement:
		in.Transfers.Set(VoidValue(), TransferFallthrough)
		return VoidValue()
	case *ast.IfStatement:
		return in.execIf(s)
	case *ast.WhileStatement:
		return in.execWhile(s)
	case *ast.ForStatement:
		return in.execFor(s)
	case *ast.TryStatement:
		return in.execTry(s)
	case *ast.FunctionDeclaration:
		in.declareFunction(s)
		return VoidValue()
	case *ast.ClassDeclaration:
		in.declareComposite("class", s.Name, s.Inherits, s.Members)
		return VoidValue()
	case *ast.StructureDeclaration:
		in.declareComposite("structure", s.Name, s.Inherits, s.Members)
		return VoidValue()
	case *ast.ObjectDeclaration:
		in.declareComposite("object", s.Name, s.Inherits, s.Members)
		return VoidValue()
	case *ast.ProtocolDeclaration:
		in.declareComposite("protocol", s.Name, s.Inherits, s.Members)
		return VoidValue()
	case *ast.NamespaceDeclaration:
		in.declareComposite("namespace", s.Name, nil, s.Members)
		return VoidValue()
	case *ast.EnumerationDeclaration:
		in.declareEnumeration(s)
		return VoidValue()
	case *ast.Unsupported, *ast.Separator:
		return VoidValue()
	default:
		return VoidValue()
	}
}

func (in *Interpreter) execBody(body *ast.FunctionBody) Value {
	if body == nil {
		return VoidValue()
	}
	in.pushLocalNamespace()
	var result Value
	for _, stmt := range body.Statements {
		result = in.execStatement(stmt)
		if t := in.Transfers.Top(); t != nil && t.Kind != TransferNone {
			break
		}
	}
	in.popLocalNamespace()
	return result
}

func (in *Interpreter) execIf(s *ast.IfStatement) Value {
	cond := in.evalExpression(s.Condition)
	if cond.Truthy() {
		return in.execBody(s.Then)
	}
	switch e := s.Else.(type) {
	case *ast.IfStatement:
		return in.execIf(e)
	case *ast.FunctionBody:
		return in.execBody(e)
	}
	return VoidValue()
}

func (in *Interpreter) execWhile(s *ast.WhileStatement) Value {
	var result Value
	for {
		cond := in.evalExpression(s.Condition)
		if !cond.Truthy() {
			break
		}
		result = in.execBody(s.Body)
		t := in.Transfers.Top()
		if t == nil {
			continue
		}
		switch t.Kind {
		case TransferBreak:
			in.Transfers.Reset()
			return result
		case TransferContinue:
			in.Transfers.Reset()
			continue
		case TransferReturn, TransferThrow:
			return result
		}
	}
	return result
}

func (in *Interpreter) execFor(s *ast.ForStatement) Value {
	iterable := in.evalExpression(s.Iterable)
	items, ok := iterable.Primitive.([]Value)
	if !ok {
		return VoidValue()
	}
	var result Value
	for _, item := range items {
		in.pushLocalNamespace()
		in.declare(in.Scopes.Current(), s.Binding, item)
		for _, stmt := range s.Body.Statements {
			result = in.execStatement(stmt)
			if t := in.Transfers.Top(); t != nil && t.Kind != TransferNone {
				break
			}
		}
		in.popLocalNamespace()

		t := in.Transfers.Top()
		if t == nil {
			continue
		}
		switch t.Kind {
		case TransferBreak:
			in.Transfers.Reset()
			return result
		case TransferContinue:
			in.Transfers.Reset()
			continue
		case TransferReturn, TransferThrow:
			return result
		}
	}
	return result
}

func (in *Interpreter) execTry(s *ast.TryStatement) Value {
	result := in.execBody(s.Body)
	t := in.Transfers.Top()
	if t != nil && t.Kind == TransferThrow {
		for _, c := range s.Catches {
			if !in.valueConformsTo(t.Value, c.Type) {
				continue
			}
			in.Transfers.Reset()
			scope := in.pushLocalNamespace()
			if c.Binding != "" {
				in.declare(scope, c.Binding, t.Value)
			}
			for _, stmt := range c.Body.Statements {
				result = in.execStatement(stmt)
			}
			in.popLocalNamespace()
			break
		}
	}
	if s.Finally != nil {
		in.execBody(s.Finally)
	}
	return result
}

func (in *Interpreter) declareFunction(s *ast.FunctionDeclaration) {
	fn := in.Arena.Create("function", s.Name, in.Scopes.Current(), false)
	fn.Members["__decl"] = s
	in.declare(in.Scopes.Current(), s.Name, ReferenceValue(nil, fn.Own))
}
