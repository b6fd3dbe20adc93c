package composite

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestARCSoundness checks: after destroy(C), no live composite D has
// C.own in its direct ID set, and the arena slot at C.own is vacant.
func TestARCSoundness(t *testing.T) {
	a := NewArena()
	holder := a.Create("namespace", "holder", a.Global().Own, true)
	held := a.Create("function", "f", Missing, false)
	Retain(a, holder.Own, held.Own)

	Destroy(a, held.Own)

	require.Nil(t, a.Get(held.Own), "destroyed composite's slot must be vacant")
	for _, c := range a.Alive() {
		for _, lvl := range []int{c.Levels.Self, c.Levels.SelfUpper, c.Levels.Super, c.Levels.SuperUpper, c.Levels.Sub, c.Levels.SubUpper, c.Levels.Scope} {
			require.NotEqual(t, held.Own, lvl, "composite %s still points at destroyed slot %d via a level ID", c.Name, held.Own)
		}
		for _, m := range c.Members {
			if idx, ok := referencedIndex(m); ok {
				require.NotEqual(t, held.Own, idx, "composite %s still points at destroyed slot %d via Members", c.Name, held.Own)
			}
		}
	}
}

// TestNoSelfRetention checks that for every alive composite C, C.own is
// never in C's own retainer set.
func TestNoSelfRetention(t *testing.T) {
	a := NewArena()
	c := a.Create("namespace", "n", a.Global().Own, true)
	Retain(a, c.Own, c.Own) // an attempted self-retain must not register

	for _, alive := range a.Alive() {
		require.False(t, alive.Retainers.Test(uint(alive.Own)), "composite %s retains itself", alive.Name)
	}
}

// TestReleaseDestroysWhenInsignificant checks that releasing the only
// retainer of an otherwise-unreachable composite destroys it, while a
// composite still reachable from the global namespace survives.
func TestReleaseDestroysWhenInsignificant(t *testing.T) {
	a := NewArena()
	scope := a.Create("namespace", "scope", a.Global().Own, true)
	orphan := a.Create("function", "orphan", Missing, false)
	Retain(a, scope.Own, orphan.Own)

	Release(a, scope.Own, orphan.Own)
	require.Nil(t, a.Get(orphan.Own), "composite with no significant retainer must be destroyed on release")

	anchored := a.Create("function", "anchored", Missing, false)
	Retain(a, Global0, anchored.Own)
	Release(a, scope.Own, anchored.Own) // scope never actually held it; no-op
	require.NotNil(t, a.Get(anchored.Own), "global-retained composite must survive")
}

const Global0 = 0

// TestCyclicPairIsNotSignificantlyRetained checks that two composites
// retaining each other, with nothing else retaining either, are not
// significantly retained — cyclic graphs must not leak (spec §9 "cyclic
// composite graphs"). The pair is linked through two different level
// names, since a write that closes a cycle along one level name is refused.
func TestCyclicPairIsNotSignificantlyRetained(t *testing.T) {
	a := NewArena()
	x := a.Create("namespace", "x", Missing, true)
	y := a.Create("namespace", "y", Missing, true)
	SetLevel(a, x, "scope", y.Own)
	SetLevel(a, y, "super", x.Own)

	require.True(t, FormalDistant(a, x.Own, y.Own, nil))
	require.True(t, FormalDistant(a, y.Own, x.Own, nil))

	// Neither is significantly retained (not reachable from global, no
	// current scope, no control transfer) so both should be collectible.
	require.False(t, Significant(a, x.Own, Missing, nil))
	require.False(t, Significant(a, y.Own, Missing, nil))
}

// TestOnDestroyWarningHookIsSettable checks that the package-level
// destruction-warning hook can be assigned and is left untouched by a
// clean destroy that leaves no dangling retainers (the common case;
// interp.New assigns this hook once at startup).
func TestOnDestroyWarningHookIsSettable(t *testing.T) {
	old := OnDestroyWarning
	defer func() { OnDestroyWarning = old }()

	var fired []int
	OnDestroyWarning = func(index int) { fired = append(fired, index) }

	a := NewArena()
	c := a.Create("namespace", "clean", Missing, true)
	Destroy(a, c.Own)

	require.Empty(t, fired, "a destroy with no surviving retainer should not warn")
}
