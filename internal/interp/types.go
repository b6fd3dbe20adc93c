package interp

import (
	"github.com/rootscript/core/internal/types"
	"github.com/rootscript/core/pkg/ast"
)

// resolveType turns a parsed type expression into a runtime types.Type,
// used by catch-clause filtering (spec §4.3 "catch (binding is Type)").
// A CompositeType resolves against the interpreter's declared-composite
// registry (populated by declareComposite); a name that was never
// declared still falls back to accept-anything rather than rejecting
// every catch/narrowing check against it.
func (in *Interpreter) resolveType(n ast.Node) types.Type {
	if n == nil {
		return types.Predefined{Name: "_"}
	}
	switch t := n.(type) {
	case *ast.ParenthesizedType:
		return types.Parenthesized{Inner: in.resolveType(t.Inner)}
	case *ast.NillableType:
		return types.Nillable{Inner: in.resolveType(t.Inner)}
	case *ast.DefaultType:
		return types.Default{Inner: in.resolveType(t.Inner)}
	case *ast.UnionType:
		return types.Union{Members: in.resolveTypeList(t.Members)}
	case *ast.IntersectionType:
		return types.Intersection{Members: in.resolveTypeList(t.Members)}
	case *ast.PredefinedType:
		return types.Predefined{Name: t.Name}
	case *ast.PrimitiveType:
		return types.Primitive{Kind: primitiveKindByName(t.Name)}
	case *ast.DictionaryType:
		return types.Dictionary{Key: in.resolveType(t.Key), Value: in.resolveType(t.Value)}
	case *ast.ReferenceType:
		return in.resolveType(t.Inner)
	case *ast.InoutType:
		return types.Inout{Inner: in.resolveType(t.Inner)}
	case *ast.VariadicType:
		return types.Variadic{Inner: in.resolveType(t.Inner)}
	case *ast.FunctionType:
		return types.Function{Parameters: in.resolveTypeList(t.Parameters), ReturnType: in.resolveType(t.ReturnType)}
	case *ast.CompositeType:
		if c, ok := in.Composites[t.Name]; ok {
			return *c
		}
		return types.Predefined{Name: "_"}
	default:
		return types.Predefined{Name: "_"}
	}
}

func (in *Interpreter) resolveTypeList(nodes []ast.Node) []types.Type {
	out := make([]types.Type, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, in.resolveType(n))
	}
	return out
}

func primitiveKindByName(name string) types.PrimitiveKind {
	switch name {
	case "bool", "Bool":
		return types.PrimitiveBool
	case "int", "Integer":
		return types.PrimitiveInteger
	case "float", "Float":
		return types.PrimitiveFloat
	case "string", "String":
		return types.PrimitiveString
	case "type", "Type":
		return types.PrimitiveType
	default:
		return types.PrimitiveVoid
	}
}

// valueConformsTo reports whether v's runtime type conforms to the
// declared type node t (t == nil matches unconditionally, as an untyped
// catch-all clause does).
func (in *Interpreter) valueConformsTo(v Value, t ast.Node) bool {
	if t == nil {
		return true
	}
	declared := in.resolveType(t)
	if v.Type == nil {
		return true
	}
	return types.ConformsTo(v.Type, declared)
}
