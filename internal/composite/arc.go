package composite

// Referencer is implemented by any member value that may itself point at
// another composite; the ARC scans Members through this interface rather
// than assuming a concrete representation, so interp's boxed values don't
// need to live in this package.
type Referencer interface {
	ReferencedComposite() (int, bool)
}

func referencedIndex(m any) (int, bool) {
	switch v := m.(type) {
	case int:
		return v, true
	case Referencer:
		return v.ReferencedComposite()
	default:
		return 0, false
	}
}

// Retain adds retainer's index into retainee's Retainers set, idempotent.
func Retain(a *Arena, retainer, retainee int) {
	c := a.Get(retainee)
	if c == nil || retainer == Missing || retainer == retainee {
		return
	}
	c.Retainers.Set(uint(retainer))
}

// Release removes retainer from retainee's Retainers set, idempotent;
// destroys retainee if it is no longer significantly retained.
func Release(a *Arena, retainer, retainee int) {
	c := a.Get(retainee)
	if c == nil || retainer == Missing {
		return
	}
	c.Retainers.Clear(uint(retainer))
	if !Significant(a, retainee, Missing, nil) {
		Destroy(a, retainee)
	}
}

// releaseEverythingHeldBy makes retainer release every composite it
// directly references (its level IDs, members, imports, observers) — the
// "C releases everything it holds" step of destruction.
func releaseEverythingHeldBy(a *Arena, retainer int) {
	c := a.Get(retainer)
	if c == nil {
		return
	}
	for _, lvl := range []int{c.Levels.Self, c.Levels.SelfUpper, c.Levels.Super, c.Levels.SuperUpper, c.Levels.Sub, c.Levels.SubUpper, c.Levels.Scope} {
		if lvl != Missing {
			Release(a, retainer, lvl)
		}
	}
	for _, m := range c.Members {
		if idx, ok := referencedIndex(m); ok {
			Release(a, retainer, idx)
		}
	}
	for _, imp := range c.Imports {
		Release(a, retainer, imp)
	}
	for _, obs := range c.Observers {
		Release(a, retainer, obs)
	}
}

// Automatic inspects the real retainment state between retainer and
// retainee right now and chooses retain or release accordingly — used
// whenever a mutation might create or sever a link.
func Automatic(a *Arena, retainer, retainee int) {
	if RealDirect(a, retainer, retainee) {
		Retain(a, retainer, retainee)
	} else {
		Release(a, retainer, retainee)
	}
}

// RealDirect: retainer is alive and its IDs/type/imports/members/
// observers reference retainee directly.
func RealDirect(a *Arena, retainer, retainee int) bool {
	c := a.Get(retainer)
	if c == nil || c.Life == LifeDestroying {
		return false
	}
	for _, lvl := range []int{c.Levels.Self, c.Levels.SelfUpper, c.Levels.Super, c.Levels.SuperUpper, c.Levels.Sub, c.Levels.SubUpper, c.Levels.Scope} {
		if lvl == retainee {
			return true
		}
	}
	for _, m := range c.Members {
		if idx, ok := referencedIndex(m); ok && idx == retainee {
			return true
		}
	}
	for _, imp := range c.Imports {
		if imp == retainee {
			return true
		}
	}
	for _, obs := range c.Observers {
		if obs == retainee {
			return true
		}
	}
	return false
}

// FormalDistant reports whether retainer is reachable by recursively
// walking retainee's Retainers set; visited guards against cycles.
func FormalDistant(a *Arena, retainee, retainer int, visited map[int]bool) bool {
	c := a.Get(retainee)
	if c == nil {
		return false
	}
	if visited == nil {
		visited = make(map[int]bool)
	}
	if visited[retainee] {
		return false
	}
	visited[retainee] = true

	if c.Retainers.Test(uint(retainer)) {
		return true
	}
	for i, e := c.Retainers.NextSet(0); e; i, e = c.Retainers.NextSet(i + 1) {
		idx := int(i)
		if idx == retainer {
			continue
		}
		if visited[idx] {
			continue
		}
		if FormalDistant(a, idx, retainer, visited) {
			return true
		}
	}
	return false
}

// Significant reports whether retainee is formally-distant-retained by
// any of: composite 0 (global), currentScope, or currentControlTransfer.
func Significant(a *Arena, retainee, currentScope int, currentControlTransfer *int) bool {
	if FormalDistant(a, retainee, 0, nil) {
		return true
	}
	if currentScope != Missing && FormalDistant(a, retainee, currentScope, nil) {
		return true
	}
	if currentControlTransfer != nil && FormalDistant(a, retainee, *currentControlTransfer, nil) {
		return true
	}
	return false
}

// Destroy implements the five-step destruction protocol (spec §4.3).
// OnDestroyWarning, if set, is called after a composite is destroyed with
// retainers still pointing at its (now vacant) slot — step 5 of the
// destruction protocol. It is a package-level hook rather than a
// composite.Destroy return value plumbed through every caller, since the
// diagnostic sink (internal/interp's Reports/Observer) lives in a package
// that already imports this one; the reverse import would cycle. interp
// assigns it once at startup.
var OnDestroyWarning func(index int)

func Destroy(a *Arena, index int) {
	c := a.Get(index)
	if c == nil || c.Life == LifeDestroying {
		return
	}
	c.Life = LifeDestroying

	for _, other := range a.Alive() {
		if other.Own == index {
			continue
		}
		releaseEverythingHeldByTo(a, other.Own, index)
	}
	releaseEverythingHeldBy(a, index)

	a.free(index)

	remaining := false
	for i, e := c.Retainers.NextSet(0); e; i, e = c.Retainers.NextSet(i + 1) {
		if a.Get(int(i)) != nil {
			remaining = true
			break
		}
	}
	if remaining && OnDestroyWarning != nil {
		OnDestroyWarning(index)
	}
}

// releaseEverythingHeldByTo releases only the link from holder to target,
// used during destruction's arena-wide sweep so unrelated references on
// holder are left untouched.
func releaseEverythingHeldByTo(a *Arena, holder, target int) {
	Release(a, holder, target)
}

// SetLevel writes a level ID through the composite interface, performing
// retain/release bookkeeping and refusing a write that would close a
// cycle along the same level name (except "self", which is exempt).
func SetLevel(a *Arena, c *Composite, level string, newTarget int) bool {
	old := getLevel(c, level)
	if level != "self" && wouldCycle(a, c.Own, level, newTarget) {
		return false
	}
	setLevel(c, level, newTarget)
	if old != Missing {
		Release(a, c.Own, old)
	}
	if newTarget != Missing {
		Retain(a, c.Own, newTarget)
	}
	return true
}

func wouldCycle(a *Arena, start int, level string, target int) bool {
	cur := target
	for cur != Missing {
		if cur == start {
			return true
		}
		next := a.Get(cur)
		if next == nil {
			return false
		}
		cur = getLevel(next, level)
	}
	return false
}

func getLevel(c *Composite, level string) int {
	switch level {
	case "self":
		return c.Levels.Self
	case "Self":
		return c.Levels.SelfUpper
	case "super":
		return c.Levels.Super
	case "Super":
		return c.Levels.SuperUpper
	case "sub":
		return c.Levels.Sub
	case "Sub":
		return c.Levels.SubUpper
	case "scope":
		return c.Levels.Scope
	default:
		return Missing
	}
}

func setLevel(c *Composite, level string, target int) {
	switch level {
	case "self":
		c.Levels.Self = target
	case "Self":
		c.Levels.SelfUpper = target
	case "super":
		c.Levels.Super = target
	case "Super":
		c.Levels.SuperUpper = target
	case "sub":
		c.Levels.Sub = target
	case "Sub":
		c.Levels.SubUpper = target
	case "scope":
		c.Levels.Scope = target
	}
}
