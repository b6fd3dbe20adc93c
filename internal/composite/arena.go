// Package composite implements the runtime composite arena, the kinship
// (level-ID) graph, and automatic reference counting (spec §4.3). A
// composite is any first-class runtime entity with an identity — class,
// structure, object, protocol, namespace, enumeration, or function — kept
// in a dense, index-stable arena rather than behind language-level
// pointers, so cyclic graphs never leak (spec §9 "cyclic composite
// graphs").
package composite

import (
	"github.com/bits-and-blooms/bitset"
)

// Missing is the sentinel value for "intentionally missed" level IDs
// (flow-statement local namespaces skip straight to the Scope chain) and
// for "not yet assigned".
const Missing = -1

// Life tracks a composite's destruction state.
type Life int

const (
	LifeAlive Life = iota
	LifeDestroying
)

// Levels holds the seven named kinship pointers a composite carries
// (spec glossary "Level ID"). Each is an arena index, or Missing.
type Levels struct {
	Self  int
	SelfUpper int // "Self"
	Super int
	SuperUpper int // "Super"
	Sub   int
	SubUpper int // "Sub"
	Scope int
}

func NewLevels() Levels {
	return Levels{Self: Missing, SelfUpper: Missing, Super: Missing, SuperUpper: Missing, Sub: Missing, SubUpper: Missing, Scope: Missing}
}

// Composite is one arena-resident entity.
type Composite struct {
	Own       int // this composite's own arena index
	Kind      string
	Name      string
	Life      Life
	Levels    Levels
	Retainers *bitset.BitSet // set of arena indices retaining this composite
	Members   map[string]any
	Imports   []int // arena indices of imported namespaces/modules
	Observers []int // arena indices of attached observers, if any
}

func newComposite(own int, kind, name string) *Composite {
	return &Composite{
		Own: own, Kind: kind, Name: name, Life: LifeAlive,
		Levels: NewLevels(), Retainers: bitset.New(64), Members: make(map[string]any),
	}
}

// Arena is the dense ordered sequence of composites; index 0 is always
// the global namespace (spec §4.3 "allocates a new arena slot").
type Arena struct {
	slots  []*Composite // nil entries are vacant
	vacant []int
}

// NewArena creates an arena with the global namespace pre-allocated at
// index 0.
func NewArena() *Arena {
	a := &Arena{}
	global := newComposite(0, "namespace", "global")
	global.Levels.Self = 0
	global.Levels.SelfUpper = 0
	a.slots = []*Composite{global}
	return a
}

// Global returns the arena's index-0 global namespace.
func (a *Arena) Global() *Composite { return a.slots[0] }

// Get returns the composite at index, or nil if vacant/out of range.
func (a *Arena) Get(index int) *Composite {
	if index < 0 || index >= len(a.slots) {
		return nil
	}
	return a.slots[index]
}

// Alive lists every occupied arena slot, in index order.
func (a *Arena) Alive() []*Composite {
	out := make([]*Composite, 0, len(a.slots))
	for _, c := range a.slots {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

// Create allocates a new composite of the given kind/name, wiring a
// scope (Missing if none) and self-level per factory rule: self = own for
// classes/enums/structures/protocols; callers for functions and local
// namespaces are expected to inherit the remaining levels from the
// lexical scope afterward via SetLevel (spec §4.3 "Composite creation").
func (a *Arena) Create(kind, name string, scope int, selfIsOwn bool) *Composite {
	idx := a.allocSlot()
	c := newComposite(idx, kind, name)
	a.slots[idx] = c
	c.Levels.Scope = scope
	if selfIsOwn {
		c.Levels.Self = idx
		c.Levels.SelfUpper = idx
	}
	if scope != Missing {
		Retain(a, scope, idx)
	}
	return c
}

func (a *Arena) allocSlot() int {
	if n := len(a.vacant); n > 0 {
		idx := a.vacant[n-1]
		a.vacant = a.vacant[:n-1]
		return idx
	}
	a.slots = append(a.slots, nil)
	return len(a.slots) - 1
}

func (a *Arena) free(index int) {
	a.slots[index] = nil
	a.vacant = append(a.vacant, index)
}
