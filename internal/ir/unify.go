// SPDX-License-Identifier: Apache-2.0
package ir

import "fmt"

// matchTypes brings two operands to a single common Type via lane broadcast
// and numeric promotion (spec §4.1). It returns the operands rebound to that
// type alongside the type itself; callers must use the returned operands,
// not their originals, since the source's "mutate in place" unifier becomes
// a rebind-on-return here (spec §9, "Operand mutation").
func matchTypes(a, b Expr) (Expr, Expr, Type, error) {
	ta, tb := a.ExprType(), b.ExprType()

	// Step 1: fast exit.
	if ta.Equal(tb) {
		return a, b, ta, nil
	}

	// Step 2: lane broadcast.
	switch {
	case ta.Lanes == 1 && tb.Lanes > 1:
		a = &Broadcast{Value: a, Lanes: tb.Lanes}
		ta.Lanes = tb.Lanes
	case tb.Lanes == 1 && ta.Lanes > 1:
		b = &Broadcast{Value: b, Lanes: ta.Lanes}
		tb.Lanes = ta.Lanes
	case ta.Lanes != tb.Lanes:
		return nil, nil, Type{}, fmt.Errorf("tensorir: cannot unify lane counts %d and %d", ta.Lanes, tb.Lanes)
	}

	if ta.Equal(tb) {
		return a, b, ta, nil
	}

	// Step 3: element-type promotion, now that lane counts agree.
	lanes := ta.Lanes

	switch {
	case ta.IsFloat() && !tb.IsFloat():
		b = mustCast(ta, b)
		return a, b, ta, nil
	case tb.IsFloat() && !ta.IsFloat():
		a = mustCast(tb, a)
		return a, b, tb, nil

	case ta.IsInt() && tb.IsInt():
		wide := wider(ta, tb, lanes)
		return mustCast(wide, a), mustCast(wide, b), wide, nil
	case ta.IsUInt() && tb.IsUInt():
		wide := wider(ta, tb, lanes)
		return mustCast(wide, a), mustCast(wide, b), wide, nil

	case ta.IsInt() && tb.IsUInt(), ta.IsUInt() && tb.IsInt():
		// Promote both into a signed container wide enough for either
		// operand. This is a deliberate, narrow rule (spec §4.1): it is
		// not full C-style usual-arithmetic-conversion, only enough to
		// keep shape arithmetic working.
		bits := ta.Bits
		if tb.Bits > bits {
			bits = tb.Bits
		}
		wide := IntType(bits, lanes)
		return mustCast(wide, a), mustCast(wide, b), wide, nil

	default:
		return nil, nil, Type{}, fmt.Errorf("tensorir: cannot unify types %s and %s", ta, tb)
	}
}

func wider(ta, tb Type, lanes int) Type {
	bits := ta.Bits
	if tb.Bits > bits {
		bits = tb.Bits
	}
	t := ta
	t.Bits = bits
	t.Lanes = lanes
	return t
}

// mustCast casts e to t, panicking only if Cast itself reports a programming
// error (lane mismatch after unification has already equalized lanes, which
// cannot happen on this path).
func mustCast(t Type, e Expr) Expr {
	c, err := Cast(t, e)
	if err != nil {
		panic(fmt.Sprintf("tensorir: internal invariant violated casting to %s: %v", t, err))
	}
	return c
}
