// SPDX-License-Identifier: Apache-2.0
package ir

import "fmt"

// boolConst reports whether e is a Bool(1) constant and, if so, its value.
func boolConst(e Expr) (bool, bool) {
	u, ok := e.(*UIntImm)
	if !ok || !u.Type_.IsBool() {
		return false, false
	}
	return u.Value != 0, true
}

func requireBool(e Expr) error {
	if !e.ExprType().IsBool() {
		return fmt.Errorf("tensorir: operand of type %s is not boolean", e.ExprType())
	}
	return nil
}

// And builds a&&b with short-circuit constant folding (spec §4.5):
// true && b -> b, false && b -> false, a && true -> a, a && false -> false.
func And(a, b Expr) (Expr, error) {
	if err := requireBool(a); err != nil {
		return nil, err
	}
	if err := requireBool(b); err != nil {
		return nil, err
	}

	if v, ok := boolConst(a); ok {
		if v {
			return b, nil
		}
		return boolImm(b.ExprType().Lanes, false), nil
	}
	if v, ok := boolConst(b); ok {
		if v {
			return a, nil
		}
		return boolImm(a.ExprType().Lanes, false), nil
	}

	return &AndExpr{Lanes: a.ExprType().Lanes, A: a, B: b}, nil
}

// Or builds a||b with the dual short-circuit rules of And.
func Or(a, b Expr) (Expr, error) {
	if err := requireBool(a); err != nil {
		return nil, err
	}
	if err := requireBool(b); err != nil {
		return nil, err
	}

	if v, ok := boolConst(a); ok {
		if v {
			return boolImm(a.ExprType().Lanes, true), nil
		}
		return b, nil
	}
	if v, ok := boolConst(b); ok {
		if v {
			return boolImm(b.ExprType().Lanes, true), nil
		}
		return a, nil
	}

	return &OrExpr{Lanes: a.ExprType().Lanes, A: a, B: b}, nil
}

// Not builds !a, folding a boolean constant directly.
func Not(a Expr) (Expr, error) {
	if err := requireBool(a); err != nil {
		return nil, err
	}
	if v, ok := boolConst(a); ok {
		return boolImm(a.ExprType().Lanes, !v), nil
	}
	return &NotExpr{Lanes: a.ExprType().Lanes, A: a}, nil
}
