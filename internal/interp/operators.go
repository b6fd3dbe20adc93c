package interp

// applyInfix desugars an infix operator on two primitive values to
// arithmetic/comparison on their underlying representation (spec §4.3
// "Operators on primitives desugar to arithmetic on the underlying
// representation").
func applyInfix(op string, lhs, rhs Value) Value {
	if lf, rf, ok := asFloats(lhs, rhs); ok {
		switch op {
		case "+":
			return FloatValue(lf + rf)
		case "-":
			return FloatValue(lf - rf)
		case "*":
			return FloatValue(lf * rf)
		case "/":
			if rf == 0 {
				return VoidValue()
			}
			return FloatValue(lf / rf)
		case "<":
			return BoolValue(lf < rf)
		case ">":
			return BoolValue(lf > rf)
		case "<=":
			return BoolValue(lf <= rf)
		case ">=":
			return BoolValue(lf >= rf)
		case "==":
			return BoolValue(lf == rf)
		case "!=":
			return BoolValue(lf != rf)
		}
	}
	if li, ri, ok := asInts(lhs, rhs); ok {
		switch op {
		case "+":
			return IntValue(li + ri)
		case "-":
			return IntValue(li - ri)
		case "*":
			return IntValue(li * ri)
		case "/":
			if ri == 0 {
				return VoidValue()
			}
			return IntValue(li / ri)
		case "%":
			if ri == 0 {
				return VoidValue()
			}
			return IntValue(li % ri)
		case "<":
			return BoolValue(li < ri)
		case ">":
			return BoolValue(li > ri)
		case "<=":
			return BoolValue(li <= ri)
		case ">=":
			return BoolValue(li >= ri)
		case "==":
			return BoolValue(li == ri)
		case "!=":
			return BoolValue(li != ri)
		}
	}
	ls, lok := lhs.Primitive.(string)
	rs, rok := rhs.Primitive.(string)
	if lok && rok {
		switch op {
		case "+":
			return StringValue(ls + rs)
		case "==":
			return BoolValue(ls == rs)
		case "!=":
			return BoolValue(ls != rs)
		}
	}
	if op == "+" && (lok || rok) {
		return StringValue(lhs.String() + rhs.String())
	}
	if op == "&&" {
		return BoolValue(lhs.Truthy() && rhs.Truthy())
	}
	if op == "||" {
		return BoolValue(lhs.Truthy() || rhs.Truthy())
	}
	return VoidValue()
}

func applyPrefix(op string, v Value) Value {
	switch op {
	case "-":
		if i, ok := v.Primitive.(int64); ok {
			return IntValue(-i)
		}
		if f, ok := v.Primitive.(float64); ok {
			return FloatValue(-f)
		}
	case "!":
		return BoolValue(!v.Truthy())
	case "++":
		if i, ok := v.Primitive.(int64); ok {
			return IntValue(i + 1)
		}
	case "--":
		if i, ok := v.Primitive.(int64); ok {
			return IntValue(i - 1)
		}
	}
	return v
}

func applyPostfix(op string, v Value) Value {
	switch op {
	case "!":
		// non-nil assertion: the value as given, composites stay as-is.
		return v
	case "?":
		return v
	case "++":
		if i, ok := v.Primitive.(int64); ok {
			return IntValue(i)
		}
	}
	return v
}

func asFloats(lhs, rhs Value) (float64, float64, bool) {
	lf, lok := toFloat(lhs)
	rf, rok := toFloat(rhs)
	if !lok || !rok {
		return 0, 0, false
	}
	_, lIsFloat := lhs.Primitive.(float64)
	_, rIsFloat := rhs.Primitive.(float64)
	if !lIsFloat && !rIsFloat {
		return 0, 0, false
	}
	return lf, rf, true
}

func toFloat(v Value) (float64, bool) {
	switch p := v.Primitive.(type) {
	case float64:
		return p, true
	case int64:
		return float64(p), true
	default:
		return 0, false
	}
}

func asInts(lhs, rhs Value) (int64, int64, bool) {
	li, lok := lhs.Primitive.(int64)
	ri, rok := rhs.Primitive.(int64)
	return li, ri, lok && rok
}
