// SPDX-License-Identifier: Apache-2.0
package ir

// imm is the extracted immediate view of an operand, used by every builder's
// fold preamble in place of the source's textual macros (spec §9: "Macro-
// driven rule sharing").
type imm struct {
	isInt   bool
	i       int64
	isUInt  bool
	u       uint64
	isFloat bool
	f       float64
}

func extractImm(e Expr) imm {
	switch n := e.(type) {
	case *IntImm:
		return imm{isInt: true, i: n.Value}
	case *UIntImm:
		return imm{isUInt: true, u: n.Value}
	case *FloatImm:
		return imm{isFloat: true, f: n.Value}
	default:
		return imm{}
	}
}

func (v imm) isConst() bool { return v.isInt || v.isUInt || v.isFloat }

// asFloat64 returns v's value as a float64, valid only when isConst is true.
func (v imm) asFloat64() float64 {
	switch {
	case v.isInt:
		return float64(v.i)
	case v.isUInt:
		return float64(v.u)
	default:
		return v.f
	}
}

// makeConst builds a typed immediate of value val (sign-aware for int/uint).
func makeConst(t Type, val int64) Expr {
	switch t.Code {
	case Int:
		return &IntImm{Type_: t, Value: val}
	case UInt:
		return &UIntImm{Type_: t, Value: uint64(val)}
	case Float:
		return &FloatImm{Type_: t, Value: float64(val)}
	default:
		return &IntImm{Type_: t, Value: val}
	}
}

func makeFloatConst(t Type, val float64) Expr {
	return &FloatImm{Type_: t, Value: val}
}

// makeZero returns the zero immediate of t.
func makeZero(t Type) Expr {
	switch t.Code {
	case Float:
		return &FloatImm{Type_: t, Value: 0}
	case UInt:
		return &UIntImm{Type_: t, Value: 0}
	default:
		return &IntImm{Type_: t, Value: 0}
	}
}

// makeOne returns the multiplicative-identity immediate of t.
func makeOne(t Type) Expr {
	switch t.Code {
	case Float:
		return &FloatImm{Type_: t, Value: 1}
	case UInt:
		return &UIntImm{Type_: t, Value: 1}
	default:
		return &IntImm{Type_: t, Value: 1}
	}
}

// isZero reports whether e is a literal zero IntImm/UIntImm/FloatImm.
func isZero(e Expr) bool {
	switch n := e.(type) {
	case *IntImm:
		return n.Value == 0
	case *UIntImm:
		return n.Value == 0
	case *FloatImm:
		return n.Value == 0
	default:
		return false
	}
}

// isOne reports whether e is a literal one IntImm/UIntImm/FloatImm.
func isOne(e Expr) bool {
	switch n := e.(type) {
	case *IntImm:
		return n.Value == 1
	case *UIntImm:
		return n.Value == 1
	case *FloatImm:
		return n.Value == 1
	default:
		return false
	}
}

// simpleCast emits a Cast only if e's type differs from t, per the "simple
// cast" rule applied to every identity-rule result in spec §4.3.
func simpleCast(t Type, e Expr) Expr {
	if e.ExprType().Equal(t) {
		return e
	}
	c, err := Cast(t, e)
	if err != nil {
		// Cast of an already-unified operand type cannot fail: it is
		// either a fold of an immediate or a same-lane Cast node.
		return &CastExpr{Type_: t, Value: e}
	}
	return c
}
