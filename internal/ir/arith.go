// SPDX-License-Identifier: Apache-2.0
package ir

import "fmt"

// Add builds a+b: unify, fold integer/float constants, drop the additive
// identity, otherwise build an Add node.
func Add(a, b Expr) (Expr, error) {
	a, b, rtype, err := matchTypes(a, b)
	if err != nil {
		return nil, err
	}
	ai, bi := extractImm(a), extractImm(b)

	switch {
	case ai.isInt && bi.isInt:
		return simpleCast(rtype, makeConst(rtype, ai.i+bi.i)), nil
	case ai.isUInt && bi.isUInt:
		return simpleCast(rtype, &UIntImm{Type_: rtype, Value: ai.u + bi.u}), nil
	case ai.isFloat && bi.isFloat:
		return simpleCast(rtype, makeFloatConst(rtype, ai.f+bi.f)), nil
	}

	if isZero(a) {
		return simpleCast(rtype, b), nil
	}
	if isZero(b) {
		return simpleCast(rtype, a), nil
	}

	return &AddExpr{binOp{Type_: rtype, A: a, B: b}}, nil
}

// Sub builds a-b. Only a-0 -> a is dropped: 0-b is deliberately NOT rewritten
// to -b here (spec §9 Open Questions) so that Neg's own fallback (0 - a)
// cannot loop back through this rule.
func Sub(a, b Expr) (Expr, error) {
	a, b, rtype, err := matchTypes(a, b)
	if err != nil {
		return nil, err
	}
	ai, bi := extractImm(a), extractImm(b)

	switch {
	case ai.isInt && bi.isInt:
		return simpleCast(rtype, makeConst(rtype, ai.i-bi.i)), nil
	case ai.isUInt && bi.isUInt:
		return simpleCast(rtype, &UIntImm{Type_: rtype, Value: ai.u - bi.u}), nil
	case ai.isFloat && bi.isFloat:
		return simpleCast(rtype, makeFloatConst(rtype, ai.f-bi.f)), nil
	}

	if isZero(b) {
		return simpleCast(rtype, a), nil
	}

	return &SubExpr{binOp{Type_: rtype, A: a, B: b}}, nil
}

// Neg builds -a, folding Int/FloatImm directly and otherwise falling back to
// make_zero(a.type()) - a.
func Neg(a Expr) (Expr, error) {
	switch n := a.(type) {
	case *IntImm:
		return &IntImm{Type_: n.Type_, Value: -n.Value}, nil
	case *FloatImm:
		return &FloatImm{Type_: n.Type_, Value: -n.Value}, nil
	default:
		return Sub(makeZero(a.ExprType()), a)
	}
}

// Mul builds a*b: fold constants, drop the multiplicative identity and the
// annihilating-zero identity on either side.
func Mul(a, b Expr) (Expr, error) {
	a, b, rtype, err := matchTypes(a, b)
	if err != nil {
		return nil, err
	}
	ai, bi := extractImm(a), extractImm(b)

	switch {
	case ai.isInt && bi.isInt:
		return simpleCast(rtype, makeConst(rtype, ai.i*bi.i)), nil
	case ai.isUInt && bi.isUInt:
		return simpleCast(rtype, &UIntImm{Type_: rtype, Value: ai.u * bi.u}), nil
	case ai.isFloat && bi.isFloat:
		return simpleCast(rtype, makeFloatConst(rtype, ai.f*bi.f)), nil
	}

	if isOne(a) {
		return simpleCast(rtype, b), nil
	}
	if isOne(b) {
		return simpleCast(rtype, a), nil
	}
	if isZero(a) || isZero(b) {
		return simpleCast(rtype, makeZero(rtype)), nil
	}

	return &MulExpr{binOp{Type_: rtype, A: a, B: b}}, nil
}

// Div builds a/b. Integer folding only covers the non-negative quadrant
// (numerator >= 0, denominator > 0): signed corner cases are deliberately
// deferred to runtime lowering (spec §4.3, "Integer division/modulo sign
// policy"). A literal-zero divisor is always fatal regardless of sign.
func Div(a, b Expr) (Expr, error) {
	a, b, rtype, err := matchTypes(a, b)
	if err != nil {
		return nil, err
	}
	ai, bi := extractImm(a), extractImm(b)

	if (bi.isInt && bi.i == 0) || (bi.isUInt && bi.u == 0) || (bi.isFloat && bi.f == 0) {
		return nil, fmt.Errorf("tensorir: division by literal zero")
	}

	switch {
	case ai.isInt && bi.isInt && ai.i >= 0 && bi.i > 0:
		return simpleCast(rtype, makeConst(rtype, ai.i/bi.i)), nil
	case ai.isUInt && bi.isUInt:
		return simpleCast(rtype, &UIntImm{Type_: rtype, Value: ai.u / bi.u}), nil
	case ai.isFloat && bi.isFloat:
		return simpleCast(rtype, makeFloatConst(rtype, ai.f/bi.f)), nil
	}

	if isZero(a) {
		return simpleCast(rtype, makeZero(rtype)), nil
	}
	if isOne(b) {
		return simpleCast(rtype, a), nil
	}

	return &DivExpr{binOp{Type_: rtype, A: a, B: b}}, nil
}

// Mod builds a%b. Unlike Div, the fast-folding path applies only to
// index-typed scalar integers (spec §4.3: "this asymmetry with / is
// deliberate"); non-index integer operands still unify but fall straight
// through to a Mod node without attempting to fold.
func Mod(a, b Expr) (Expr, error) {
	ta, tb := a.ExprType(), b.ExprType()

	if ta.IsIndex() && tb.IsIndex() && ta.Equal(tb) {
		ai, bi := extractImm(a), extractImm(b)
		if bi.isInt && bi.i == 0 {
			return nil, fmt.Errorf("tensorir: modulo by literal zero")
		}
		if ai.isInt && bi.isInt && ai.i >= 0 && bi.i > 0 {
			return &IntImm{Type_: ta, Value: ai.i % bi.i}, nil
		}
		if isOne(b) {
			return makeZero(ta), nil
		}
		return &ModExpr{binOp{Type_: ta, A: a, B: b}}, nil
	}

	a, b, rtype, err := matchTypes(a, b)
	if err != nil {
		return nil, err
	}
	if isZero(b) {
		return nil, fmt.Errorf("tensorir: modulo by literal zero")
	}
	return &ModExpr{binOp{Type_: rtype, A: a, B: b}}, nil
}

// Min builds the elementwise minimum of a and b, folding when both operands
// are same-kind constants.
func Min(a, b Expr) (Expr, error) {
	a, b, rtype, err := matchTypes(a, b)
	if err != nil {
		return nil, err
	}
	ai, bi := extractImm(a), extractImm(b)

	switch {
	case ai.isInt && bi.isInt:
		return simpleCast(rtype, makeConst(rtype, minI64(ai.i, bi.i))), nil
	case ai.isUInt && bi.isUInt:
		v := ai.u
		if bi.u < v {
			v = bi.u
		}
		return simpleCast(rtype, &UIntImm{Type_: rtype, Value: v}), nil
	case ai.isFloat && bi.isFloat:
		v := ai.f
		if bi.f < v {
			v = bi.f
		}
		return simpleCast(rtype, makeFloatConst(rtype, v)), nil
	}

	return &MinExpr{binOp{Type_: rtype, A: a, B: b}}, nil
}

// Max builds the elementwise maximum of a and b, folding when both operands
// are same-kind constants.
func Max(a, b Expr) (Expr, error) {
	a, b, rtype, err := matchTypes(a, b)
	if err != nil {
		return nil, err
	}
	ai, bi := extractImm(a), extractImm(b)

	switch {
	case ai.isInt && bi.isInt:
		return simpleCast(rtype, makeConst(rtype, maxI64(ai.i, bi.i))), nil
	case ai.isUInt && bi.isUInt:
		v := ai.u
		if bi.u > v {
			v = bi.u
		}
		return simpleCast(rtype, &UIntImm{Type_: rtype, Value: v}), nil
	case ai.isFloat && bi.isFloat:
		v := ai.f
		if bi.f > v {
			v = bi.f
		}
		return simpleCast(rtype, makeFloatConst(rtype, v)), nil
	}

	return &MaxExpr{binOp{Type_: rtype, A: a, B: b}}, nil
}

func minI64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func maxI64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
