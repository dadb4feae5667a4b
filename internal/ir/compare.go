// SPDX-License-Identifier: Apache-2.0
package ir

// boolImm builds a UIntImm of type Bool(lanes) carrying 0 or 1.
func boolImm(lanes int, v bool) Expr {
	u := uint64(0)
	if v {
		u = 1
	}
	return &UIntImm{Type_: BoolType(lanes), Value: u}
}

func compareFold(a, b Expr, cmp func(x, y float64) bool) (Expr, bool) {
	ai, bi := extractImm(a), extractImm(b)
	switch {
	case ai.isInt && bi.isInt:
		return boolImm(a.ExprType().Lanes, cmp(float64(ai.i), float64(bi.i))), true
	case ai.isUInt && bi.isUInt:
		return boolImm(a.ExprType().Lanes, cmp(float64(ai.u), float64(bi.u))), true
	case ai.isFloat && bi.isFloat:
		return boolImm(a.ExprType().Lanes, cmp(ai.f, bi.f)), true
	default:
		return nil, false
	}
}

// GT builds a>b: unify, fold to Bool(1) when both operands are same-kind
// constants, otherwise build a GT node.
func GT(a, b Expr) (Expr, error) {
	a, b, _, err := matchTypes(a, b)
	if err != nil {
		return nil, err
	}
	if v, ok := compareFold(a, b, func(x, y float64) bool { return x > y }); ok {
		return v, nil
	}
	return &GTExpr{cmpOp{Lanes: a.ExprType().Lanes, A: a, B: b}}, nil
}

func GE(a, b Expr) (Expr, error) {
	a, b, _, err := matchTypes(a, b)
	if err != nil {
		return nil, err
	}
	if v, ok := compareFold(a, b, func(x, y float64) bool { return x >= y }); ok {
		return v, nil
	}
	return &GEExpr{cmpOp{Lanes: a.ExprType().Lanes, A: a, B: b}}, nil
}

func LT(a, b Expr) (Expr, error) {
	a, b, _, err := matchTypes(a, b)
	if err != nil {
		return nil, err
	}
	if v, ok := compareFold(a, b, func(x, y float64) bool { return x < y }); ok {
		return v, nil
	}
	return &LTExpr{cmpOp{Lanes: a.ExprType().Lanes, A: a, B: b}}, nil
}

func LE(a, b Expr) (Expr, error) {
	a, b, _, err := matchTypes(a, b)
	if err != nil {
		return nil, err
	}
	if v, ok := compareFold(a, b, func(x, y float64) bool { return x <= y }); ok {
		return v, nil
	}
	return &LEExpr{cmpOp{Lanes: a.ExprType().Lanes, A: a, B: b}}, nil
}

func EQ(a, b Expr) (Expr, error) {
	a, b, _, err := matchTypes(a, b)
	if err != nil {
		return nil, err
	}
	if v, ok := compareFold(a, b, func(x, y float64) bool { return x == y }); ok {
		return v, nil
	}
	return &EQExpr{cmpOp{Lanes: a.ExprType().Lanes, A: a, B: b}}, nil
}

func NE(a, b Expr) (Expr, error) {
	a, b, _, err := matchTypes(a, b)
	if err != nil {
		return nil, err
	}
	if v, ok := compareFold(a, b, func(x, y float64) bool { return x != y }); ok {
		return v, nil
	}
	return &NEExpr{cmpOp{Lanes: a.ExprType().Lanes, A: a, B: b}}, nil
}
