package interp

import (
	"testing"

	"github.com/rootscript/core/internal/composite"
	"github.com/rootscript/core/internal/lexer"
	"github.com/rootscript/core/internal/parser"
	"github.com/rootscript/core/internal/reportkit"
	"github.com/rootscript/core/pkg/ast"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string) (*Interpreter, Value) {
	t.Helper()
	toks := lexer.Filtered(lexer.New(src).Lex())
	mod := parser.New(toks, src).Parse()
	in := New(nil, src, "test")
	return in, in.Run(mod)
}

// TestIntegerArithmeticIsLhsFirst pins scenario 1: the expression-sequence
// algorithm evaluates strictly left to right with no precedence, so
// `1 + 2 * 3` computes (1+2)*3, not 1+(2*3).
func TestIntegerArithmeticIsLhsFirst(t *testing.T) {
	_, v := run(t, "return 1 + 2 * 3")
	require.Equal(t, int64(9), v.Primitive)
}

// TestStringInterpolationEvaluatesSegments pins scenario 2: an
// interpolated expression segment is evaluated and stringified in place.
func TestStringInterpolationEvaluatesSegments(t *testing.T) {
	_, v := run(t, `return 'x='+(1+2)`)
	require.Equal(t, "x=3", v.Primitive)

	_, v2 := run(t, "return 'x=\\(1+2)'")
	require.Equal(t, "x=3", v2.Primitive)
}

// TestScopeExitDestroysUnretainedInstance exercises scenario 5's
// invariant directly against the composite-materialization machinery: an
// instance created by evalInstantiation, bound only inside a scope that
// itself has no outside retainer, is destroyed along with that scope when
// it closes, while the declared class template (retained by the global
// namespace) survives.
func TestScopeExitDestroysUnretainedInstance(t *testing.T) {
	in := New(nil, "", "t")
	in.Scopes.AddScope(in.Arena.Global().Own)
	in.declareComposite("class", "Foo", nil, nil)
	fooIdx := in.Templates["Foo"]
	require.NotNil(t, in.Arena.Get(fooIdx))

	ns := in.Arena.Create("namespace", "", composite.Missing, false)
	in.Scopes.AddScope(ns.Own)

	instVal := in.evalInstantiation(ast.NewInstantiationExpression(
		ast.Range{}, ast.NewCompositeType(ast.Range{}, "Foo", nil), nil))
	require.NotEqual(t, noComposite, instVal.Composite)
	in.declare(ns.Own, "a", instVal)
	require.NotNil(t, in.Arena.Get(instVal.Composite), "instance must be live right after construction")

	in.Scopes.RemoveScope(false)

	require.Nil(t, in.Arena.Get(ns.Own), "an ephemeral scope with no outside retainer must be destroyed on exit")
	require.Nil(t, in.Arena.Get(instVal.Composite), "an instance reachable only through its destroyed scope must be destroyed with it")
	require.NotNil(t, in.Arena.Get(fooIdx), "the class template, retained by the global namespace, must survive")
}

// TestClassInstantiationRunsInitAndBindsSelf exercises reviewer-required
// composite materialization end to end: declaring a class with a field
// and an init method, instantiating it with `new`, and observing that the
// init body's `self.field = ...` assignment actually lands on the new
// instance rather than the template.
func TestClassInstantiationRunsInitAndBindsSelf(t *testing.T) {
	src := "class Box { var value = 0\n function init(v) { self.value = v } }\nreturn new Box(42)"
	in, v := run(t, src)

	require.NotEqual(t, noComposite, v.Composite)
	inst := in.Arena.Get(v.Composite)
	require.NotNil(t, inst)

	field, ok := in.lookupMember(v.Composite, "value")
	require.True(t, ok)
	require.Equal(t, int64(42), field.Primitive)

	tmplIdx := in.Templates["Box"]
	require.Equal(t, tmplIdx, inst.Levels.Super, "instance.super must point at its declared template")
	tmpl := in.Arena.Get(tmplIdx)
	require.Equal(t, v.Composite, tmpl.Levels.Sub, "template.sub must point back at the instance")

	tmplField, ok := tmpl.Members["value"].(Value)
	require.True(t, ok)
	require.Equal(t, int64(0), tmplField.Primitive, "writing self.value in init must not mutate the template's own field")
}

// TestInheritedMethodResolvesThroughSuperChain checks that a subclass
// instance can call a method declared only on its superclass, and that
// self still resolves to the subclass instance inside that inherited
// call.
func TestInheritedMethodResolvesThroughSuperChain(t *testing.T) {
	src := `class Animal {
  var sound = 0
  function init(s) { self.sound = s }
  function speak() { return self.sound }
}
class Dog : Animal {}
return new Dog(7).speak()`
	_, v := run(t, src)
	require.Equal(t, int64(7), v.Primitive)
}

// TestCatchClauseMatchesDeclaredComposite checks that a catch clause
// typed against a user-declared class name matches a thrown instance of
// that class through the real Templates/Composites registry populated by
// declareComposite, rather than the predefined-type accept-anything
// fallback.
func TestCatchClauseMatchesDeclaredComposite(t *testing.T) {
	in := New(nil, "", "t")
	in.Scopes.AddScope(in.Arena.Global().Own)
	in.declareComposite("class", "BoomError", nil, nil)
	in.declareComposite("class", "OtherError", nil, nil)

	thrown := in.evalInstantiation(ast.NewInstantiationExpression(
		ast.Range{}, ast.NewCompositeType(ast.Range{}, "BoomError", nil), nil))

	matches := in.valueConformsTo(thrown, ast.NewCompositeType(ast.Range{}, "BoomError", nil))
	require.True(t, matches, "a BoomError instance must conform to its own declared type")

	mismatches := in.valueConformsTo(thrown, ast.NewCompositeType(ast.Range{}, "OtherError", nil))
	require.False(t, mismatches, "a BoomError instance must not conform to an unrelated declared class")
}

// TestTryCatchCatchesOnMatchingType exercises the catch-clause filtering
// end to end through execTry, using a thrown declared-class instance
// against a catch clause typed with that class; the catch body's return
// ends the script before the trailing `return 0`.
func TestTryCatchCatchesOnMatchingType(t *testing.T) {
	src := `class Boom {}
try {
  throw new Boom()
} catch (e: Boom) {
  return 1
}
return 0`
	_, v := run(t, src)
	require.Equal(t, int64(1), v.Primitive)
}

// TestUncaughtThrowReportsFatal checks that a throw with no matching
// catch clause surfaces as a fatal diagnostic (spec §4.3 "uncaught
// throw").
func TestUncaughtThrowReportsFatal(t *testing.T) {
	in, _ := run(t, "throw 1")
	var sawFatal bool
	for _, d := range in.Reports.Items() {
		if d.Level == reportkit.LevelFatal {
			sawFatal = true
		}
	}
	require.True(t, sawFatal, "an uncaught throw must report a fatal diagnostic")
}
