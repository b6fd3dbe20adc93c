// Package interp walks the AST one function per node kind (spec §4.3),
// maintaining the scope stack, the control-transfer stack, and driving
// the composite arena's ARC bookkeeping as scopes open and close.
package interp

import (
	"fmt"

	"github.com/rootscript/core/internal/types"
)

// Value is a runtime value: either a primitive (Go-native) payload with
// its lattice Type, or an arena index when the value is a composite
// reference.
type Value struct {
	Type      types.Type
	Primitive any // bool | int64 | float64 | string | []Value (array) | nil
	Composite int // arena index, or composite.Missing when not a reference
}

const noComposite = -1

func VoidValue() Value {
	return Value{Type: types.Predefined{Name: "void"}, Composite: noComposite}
}

func BoolValue(b bool) Value {
	return Value{Type: types.Primitive{Kind: types.PrimitiveBool}, Primitive: b, Composite: noComposite}
}

func IntValue(i int64) Value {
	return Value{Type: types.Primitive{Kind: types.PrimitiveInteger}, Primitive: i, Composite: noComposite}
}

func FloatValue(f float64) Value {
	return Value{Type: types.Primitive{Kind: types.PrimitiveFloat}, Primitive: f, Composite: noComposite}
}

func StringValue(s string) Value {
	return Value{Type: types.Primitive{Kind: types.PrimitiveString}, Primitive: s, Composite: noComposite}
}

func ReferenceValue(t types.Type, idx int) Value {
	return Value{Type: t, Composite: idx}
}

// String renders a value for interpolation/print, matching the
// predefined-type String() conventions.
func (v Value) String() string {
	switch p := v.Primitive.(type) {
	case bool:
		if p {
			return "true"
		}
		return "false"
	case int64:
		return fmt.Sprintf("%d", p)
	case float64:
		return fmt.Sprintf("%g", p)
	case string:
		return p
	default:
		if v.Composite != noComposite {
			return fmt.Sprintf("<composite %d>", v.Composite)
		}
		return "void"
	}
}

func (v Value) Truthy() bool {
	b, ok := v.Primitive.(bool)
	return ok && b
}

// ReferencedComposite implements composite.Referencer so a Value stored
// directly in a composite's Members map participates in ARC scanning
// without the composite package needing to know about interp.Value.
func (v Value) ReferencedComposite() (int, bool) {
	if v.Composite == noComposite {
		return 0, false
	}
	return v.Composite, true
}
