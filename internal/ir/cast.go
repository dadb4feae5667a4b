// SPDX-License-Identifier: Apache-2.0
package ir

import "fmt"

// Cast converts value to type t, folding immediates where the input is a
// constant (spec §4.2). Scalar targets fold directly; vector targets with a
// scalar input cast the element type first, then broadcast.
func Cast(t Type, value Expr) (Expr, error) {
	vt := value.ExprType()
	if vt.Equal(t) {
		return value, nil
	}

	if t.Lanes == 1 {
		return castScalar(t, value)
	}

	if vt.Lanes == 1 {
		elem, err := castScalar(t.ElementOf(), value)
		if err != nil {
			return nil, err
		}
		return &Broadcast{Value: elem, Lanes: t.Lanes}, nil
	}

	if vt.Lanes != t.Lanes {
		return nil, fmt.Errorf("tensorir: cannot cast %d-lane value to %d-lane type %s", vt.Lanes, t.Lanes, t)
	}
	return &CastExpr{Type_: t, Value: value}, nil
}

// castScalar folds IntImm/UIntImm/FloatImm into a new immediate of type t,
// or else builds a Cast node.
func castScalar(t Type, value Expr) (Expr, error) {
	switch n := value.(type) {
	case *IntImm:
		return foldImmCast(t, float64(n.Value)), nil
	case *UIntImm:
		return foldImmCast(t, float64(n.Value)), nil
	case *FloatImm:
		return foldImmCast(t, n.Value), nil
	default:
		return &CastExpr{Type_: t, Value: value}, nil
	}
}

func foldImmCast(t Type, v float64) Expr {
	switch t.Code {
	case Int:
		return &IntImm{Type_: t, Value: int64(v)}
	case UInt:
		return &UIntImm{Type_: t, Value: uint64(v)}
	case Float:
		return &FloatImm{Type_: t, Value: v}
	case Bool:
		u := uint64(0)
		if v != 0 {
			u = 1
		}
		return &UIntImm{Type_: t, Value: u}
	default:
		return &CastExpr{Type_: t, Value: makeFloatConst(t, v)}
	}
}

// Reinterpret reinterprets value's bit representation as type t. It never
// folds: the bit pattern of an immediate is not reconstructed here, only
// preserved through a pure intrinsic call (spec §4.2).
func Reinterpret(t Type, value Expr) (Expr, error) {
	if value.ExprType().Equal(t) {
		return value, nil
	}
	return &CallExpr{Type_: t, Name: "reinterpret", Args: []Expr{value}, Kind: CallPureIntrinsic}, nil
}
