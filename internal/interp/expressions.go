package interp

import (
	"strings"

	"github.com/rootscript/core/internal/parser"
	"github.com/rootscript/core/internal/reportkit"
	"github.com/rootscript/core/pkg/ast"
	"github.com/rootscript/core/pkg/token"
)

// evalExpression evaluates an expression node by its kind.
func (in *Interpreter) evalExpression(n ast.Node) Value {
	if n == nil {
		return VoidValue()
	}
	switch e := n.(type) {
	case *ast.Identifier:
		if v, ok := in.lookup(e.Name); ok {
			return v
		}
		in.report(reportkit.LevelWarning, e.Span().Start, token.Position{}, "name lookup miss: "+e.Name)
		return VoidValue()
	case *ast.NumberLiteral:
		if e.IsFloat {
			return FloatValue(e.Float)
		}
		return IntValue(e.Int)
	case *ast.StringLiteral:
		return in.evalStringLiteral(e)
	case *ast.ArrayLiteral:
		items := make([]Value, 0, len(e.Elements))
		for _, el := range e.Elements {
			items = append(items, in.evalExpression(el))
		}
		return Value{Primitive: items, Composite: noComposite}
	case *ast.ExpressionsSequence:
		return in.evalExpressionsSequence(e)
	case *ast.CallExpression:
		return in.evalCall(e)
	case *ast.MemberExpression:
		return in.evalMember(e)
	case *ast.SubscriptExpression:
		return in.evalSubscript(e)
	case *ast.InstantiationExpression:
		return in.evalInstantiation(e)
	default:
		return VoidValue()
	}
}

func (in *Interpreter) evalStringLiteral(s *ast.StringLiteral) Value {
	var sb strings.Builder
	for _, part := range s.Parts {
		if seg, ok := part.(*ast.StringSegment); ok {
			sb.WriteString(parser.DecodeStringValue(seg.Raw))
			continue
		}
		sb.WriteString(in.evalExpression(part).String())
	}
	return StringValue(sb.String())
}

// evalExpressionsSequence evaluates the alternating value/operator list
// strictly left to right (spec §8 scenario 1 pins lhs-first evaluation).
func (in *Interpreter) evalExpressionsSequence(s *ast.ExpressionsSequence) Value {
	if len(s.Values) == 0 {
		return VoidValue()
	}
	result := in.evalExpression(s.Values[0])
	for i, op := range s.Operators {
		rhs := in.evalExpression(s.Values[i+1])
		result = applyInfix(op.Symbol, result, rhs)
	}
	return result
}

// evalCall covers three shapes: operator application (the parser wraps
// prefix/infix/postfix operator use as a CallExpression whose Callee is
// an *ast.OperatorRef), ordinary function calls, and built-in
// desugaring for ++/--.
func (in *Interpreter) evalCall(c *ast.CallExpression) Value {
	if op, ok := c.Callee.(*ast.OperatorRef); ok {
		args := make([]Value, 0, len(c.Arguments))
		for _, a := range c.Arguments {
			args = append(args, in.evalExpression(a))
		}
		switch op.Placement {
		case "prefix":
			if len(args) == 1 {
				return applyPrefix(op.Symbol, args[0])
			}
		case "postfix":
			if len(args) == 1 {
				return applyPostfix(op.Symbol, args[0])
			}
		}
		return VoidValue()
	}

	// A call through a member expression (obj.method(...)) resolves
	// method against the receiver's composite, walking its Super chain,
	// and binds self to the receiver rather than evaluating the member
	// access directly (which would lose the receiver).
	var selfIdx int = noComposite
	var fnIdx int
	if m, ok := c.Callee.(*ast.MemberExpression); ok {
		target := in.evalExpression(m.Target)
		if target.Composite == noComposite {
			return VoidValue()
		}
		method, ok := in.lookupMember(target.Composite, m.Member)
		if !ok || method.Composite == noComposite {
			return VoidValue()
		}
		selfIdx = target.Composite
		fnIdx = method.Composite
	} else {
		callee := in.evalExpression(c.Callee)
		if callee.Composite == noComposite {
			return VoidValue()
		}
		fnIdx = callee.Composite
	}

	args := make([]Value, 0, len(c.Arguments))
	for _, a := range c.Arguments {
		args = append(args, in.evalExpression(a))
	}
	return in.invoke(fnIdx, selfIdx, args)
}

func (in *Interpreter) evalMember(m *ast.MemberExpression) Value {
	target := in.evalExpression(m.Target)
	if target.Composite == noComposite {
		return VoidValue()
	}
	if v, ok := in.lookupMember(target.Composite, m.Member); ok {
		return v
	}
	return VoidValue()
}

// assignMember writes v into the target composite's member table, running
// the same ARC bookkeeping as declare.
func (in *Interpreter) assignMember(m *ast.MemberExpression, v Value) {
	target := in.evalExpression(m.Target)
	if target.Composite == noComposite {
		return
	}
	in.declare(target.Composite, m.Member, v)
}

// assignSubscript writes v into an array element in place: the backing
// slice is shared with whatever Value copies reference the same array, so
// this is visible through every alias of it.
func (in *Interpreter) assignSubscript(s *ast.SubscriptExpression, v Value) {
	target := in.evalExpression(s.Target)
	idx := in.evalExpression(s.Index)
	items, ok := target.Primitive.([]Value)
	if !ok {
		return
	}
	i, ok := idx.Primitive.(int64)
	if !ok || i < 0 || int(i) >= len(items) {
		return
	}
	items[i] = v
}

func (in *Interpreter) evalSubscript(s *ast.SubscriptExpression) Value {
	target := in.evalExpression(s.Target)
	idx := in.evalExpression(s.Index)
	items, ok := target.Primitive.([]Value)
	if !ok {
		return VoidValue()
	}
	i, ok := idx.Primitive.(int64)
	if !ok || i < 0 || int(i) >= len(items) {
		return VoidValue()
	}
	return items[i]
}
