package types

// Inout(X) wraps a by-reference parameter type.
type Inout struct {
	Inner Type
}

func (i Inout) AcceptsA(other Type) bool {
	oi, ok := other.(Inout)
	if !ok {
		return false
	}
	return i.Inner.AcceptsA(oi.Inner)
}

func (i Inout) Normalize() Type { return Inout{Inner: i.Inner.Normalize()} }
func (i Inout) String() string  { return "inout " + i.Inner.String() }

// Variadic(X) accepts zero or more trailing arguments of type X; if X is
// nil, it accepts anything.
type Variadic struct {
	Inner Type // nil means "anything"
}

func (v Variadic) AcceptsA(other Type) bool {
	if v.Inner == nil {
		return true
	}
	if ov, ok := other.(Variadic); ok {
		if ov.Inner == nil {
			return false
		}
		return v.Inner.AcceptsA(ov.Inner)
	}
	return v.Inner.AcceptsA(other)
}

func (v Variadic) Normalize() Type {
	if v.Inner == nil {
		return v
	}
	return Variadic{Inner: v.Inner.Normalize()}
}

func (v Variadic) String() string {
	if v.Inner == nil {
		return "..."
	}
	return v.Inner.String() + "..."
}

// Function is a callable's signature: parameter list, a set of modifier
// constraints (e.g. placement for operator overloads), and a return type.
type Function struct {
	Parameters []Type
	Modifiers  map[string]bool
	ReturnType Type
}

// AcceptsA: parameter lists match via MatchList, all present modifier
// constraints equal those of T, and this return type accepts T's return
// type (spec §4.4).
func (f Function) AcceptsA(other Type) bool {
	of, ok := other.(Function)
	if !ok {
		return false
	}
	if !modifiersEqual(f.Modifiers, of.Modifiers) {
		return false
	}
	if !MatchList(f.Parameters, of.Parameters) {
		return false
	}
	if f.ReturnType == nil || of.ReturnType == nil {
		return f.ReturnType == of.ReturnType
	}
	return f.ReturnType.AcceptsA(of.ReturnType)
}

func modifiersEqual(a, b map[string]bool) bool {
	for k, v := range a {
		if v && !b[k] {
			return false
		}
	}
	for k, v := range b {
		if v && !a[k] {
			return false
		}
	}
	return true
}

func (f Function) Normalize() Type {
	params := make([]Type, len(f.Parameters))
	for i, p := range f.Parameters {
		params[i] = p.Normalize()
	}
	var ret Type
	if f.ReturnType != nil {
		ret = f.ReturnType.Normalize()
	}
	return Function{Parameters: params, Modifiers: f.Modifiers, ReturnType: ret}
}

func (f Function) String() string {
	s := "(" + joinTypes(f.Parameters, ", ") + ")"
	if f.ReturnType != nil {
		s += " -> " + f.ReturnType.String()
	}
	return s
}

// MatchList implements the variadic-aware list matcher (spec §4.4): a
// nondeterministic left-to-right match with backtracking used both for
// function parameter acceptance and generic parameter lists. expected is
// the declared/expected type list (possibly containing Variadic members);
// provided is the concrete list being matched against it.
func MatchList(expected []Type, provided []Type) bool {
	return matchFrom(expected, provided, 0, 0)
}

func matchFrom(expected, provided []Type, i, j int) bool {
	if i == len(expected) {
		return j == len(provided)
	}
	e := expected[i]
	if v, ok := e.(Variadic); ok {
		// Terminal variadic: accept iff all remaining provided items match.
		if i == len(expected)-1 {
			for _, p := range provided[j:] {
				if v.Inner != nil && !v.Inner.AcceptsA(p) {
					return false
				}
			}
			return true
		}
		for k := j; k <= len(provided); k++ {
			ok := true
			for _, p := range provided[j:k] {
				if v.Inner != nil && !v.Inner.AcceptsA(p) {
					ok = false
					break
				}
			}
			if ok && matchFrom(expected, provided, i+1, k) {
				return true
			}
		}
		return false
	}
	if j >= len(provided) {
		return false
	}
	if !e.AcceptsA(provided[j]) {
		return false
	}
	return matchFrom(expected, provided, i+1, j+1)
}
