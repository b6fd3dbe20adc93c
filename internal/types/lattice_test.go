package types

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/require"
)

func sampleTypes() []Type {
	str := Predefined{Name: "string"}
	i := Predefined{Name: "int"}
	b := Predefined{Name: "bool"}
	cls := Composite{Name: "Foo", Kind: CompositeClass}
	sub := Composite{Name: "Bar", Kind: CompositeClass, Inherits: []*Composite{&cls}}
	return []Type{
		Predefined{Name: "void"},
		Predefined{Name: "_"},
		str, i, b,
		Primitive{Kind: PrimitiveInteger},
		Primitive{Kind: PrimitiveType, MetaType: i},
		Parenthesized{Inner: str},
		Nillable{Inner: str},
		Nillable{Inner: Nillable{Inner: str}},
		Default{Inner: i, Value: i},
		Inout{Inner: str},
		Variadic{Inner: str},
		Variadic{},
		Dictionary{Key: str, Value: i},
		cls,
		sub,
		Reference{Target: &cls},
		Union{Members: []Type{str, i, str}},
		Intersection{Members: []Type{cls, sub}},
		Function{Parameters: []Type{str, i}, ReturnType: b},
	}
}

// TestNormalizeIdempotent checks normalize(normalize(T)) == normalize(T)
// structurally, for every representative lattice variant.
func TestNormalizeIdempotent(t *testing.T) {
	for _, ty := range sampleTypes() {
		once := ty.Normalize()
		twice := once.Normalize()
		if diff := deep.Equal(once, twice); diff != nil {
			t.Errorf("normalize not idempotent for %s: %v", ty.String(), diff)
		}
		require.Equal(t, once.String(), twice.String())
	}
}

// TestAcceptsAReflexive checks that every concrete sample type accepts
// itself.
func TestAcceptsAReflexive(t *testing.T) {
	for _, ty := range sampleTypes() {
		require.Truef(t, ty.AcceptsA(ty), "%s must accept itself", ty.String())
	}
}

// TestUnionAlgebra checks Union([X]).Normalize() == X.Normalize() and that
// a union of duplicates collapses to the single alternative.
func TestUnionAlgebra(t *testing.T) {
	x := Predefined{Name: "string"}
	got := Union{Members: []Type{x}}.Normalize()
	want := x.Normalize()
	require.Equal(t, want.String(), got.String())
	if diff := deep.Equal(want, got); diff != nil {
		t.Errorf("Union([X]).Normalize() != X.Normalize(): %v", diff)
	}

	dup := Union{Members: []Type{x, x, x}}.Normalize()
	require.Equal(t, want.String(), dup.String())

	nested := Union{Members: []Type{Union{Members: []Type{x, Predefined{Name: "int"}}}}}.Normalize()
	u, ok := nested.(Union)
	require.True(t, ok)
	require.Len(t, u.Members, 2)
}

// TestIntersectionAlgebra checks Intersection([X]).Normalize() == X.Normalize().
func TestIntersectionAlgebra(t *testing.T) {
	x := Composite{Name: "Foo", Kind: CompositeClass}
	got := Intersection{Members: []Type{x}}.Normalize()
	want := x.Normalize()
	if diff := deep.Equal(want, got); diff != nil {
		t.Errorf("Intersection([X]).Normalize() != X.Normalize(): %v", diff)
	}
}

// TestNillableCollapse checks Nillable(Nillable(X)).Normalize() ==
// Nillable(X).Normalize() — nested optionality collapses to one level.
func TestNillableCollapse(t *testing.T) {
	x := Predefined{Name: "string"}
	nested := Nillable{Inner: Nillable{Inner: x}}.Normalize()
	single := Nillable{Inner: x}.Normalize()
	if diff := deep.Equal(single, nested); diff != nil {
		t.Errorf("Nillable(Nillable(X)).Normalize() != Nillable(X).Normalize(): %v", diff)
	}
	require.Equal(t, "string?", nested.String())
}

// TestDefaultNormalizesLikeNillable checks that Default(X) and Nillable(X)
// converge under Normalize, matching Default's doc comment.
func TestDefaultNormalizesLikeNillable(t *testing.T) {
	x := Predefined{Name: "int"}
	d := Default{Inner: x, Value: x}.Normalize()
	n := Nillable{Inner: x}.Normalize()
	require.Equal(t, n.String(), d.String())
}

// TestMatchListVariadic exercises the variadic-aware list matcher used by
// Function.AcceptsA, both the terminal and mid-list variadic shapes,
// matching predefined expected types against primitive provided types.
func TestMatchListVariadic(t *testing.T) {
	str := Predefined{Name: "string"}
	i := Predefined{Name: "int"}
	ps := Primitive{Kind: PrimitiveString}
	pi := Primitive{Kind: PrimitiveInteger}

	require.True(t, MatchList([]Type{str, Variadic{Inner: i}}, []Type{ps, pi, pi, pi}))
	require.True(t, MatchList([]Type{str, Variadic{Inner: i}}, []Type{ps}))
	require.False(t, MatchList([]Type{str, Variadic{Inner: i}}, []Type{ps, ps}))
	require.True(t, MatchList([]Type{Variadic{Inner: i}, str}, []Type{pi, pi, ps}))
}

// TestPredefinedTableCoversAllNames checks that every name in
// PredefinedNames has a registered acceptance predicate.
func TestPredefinedTableCoversAllNames(t *testing.T) {
	for _, name := range PredefinedNames {
		p := Predefined{Name: name}
		require.NotPanics(t, func() { p.AcceptsA(Predefined{Name: "void"}) })
	}
}

func TestCompositeAcceptsAInheritedSubtype(t *testing.T) {
	base := Composite{Name: "Animal", Kind: CompositeClass}
	sub := Composite{Name: "Dog", Kind: CompositeClass, Inherits: []*Composite{&base}}
	require.True(t, base.AcceptsA(sub))
	require.False(t, sub.AcceptsA(base))
}
