// SPDX-License-Identifier: Apache-2.0
package ir

import (
	"fmt"
	"math"
)

func pureCall(t Type, name string, args ...Expr) Expr {
	return &CallExpr{Type_: t, Name: name, Args: args, Kind: CallPureIntrinsic}
}

// Pow builds pow(x, y). Operands must be float; the result is always a pure
// intrinsic call — this layer does not attempt to fold exponentiation at
// build time.
func Pow(x, y Expr) (Expr, error) {
	x, y, rtype, err := matchTypes(x, y)
	if err != nil {
		return nil, err
	}
	if !rtype.IsFloat() {
		return nil, fmt.Errorf("tensorir: pow requires float operands, got %s", rtype)
	}
	return pureCall(rtype, "pow", x, y), nil
}

// Fmod builds fmod(x, y), with the same float-only requirement as Pow.
func Fmod(x, y Expr) (Expr, error) {
	x, y, rtype, err := matchTypes(x, y)
	if err != nil {
		return nil, err
	}
	if !rtype.IsFloat() {
		return nil, fmt.Errorf("tensorir: fmod requires float operands, got %s", rtype)
	}
	return pureCall(rtype, "fmod", x, y), nil
}

// Floor folds a FloatImm, else emits a pure intrinsic call.
func Floor(x Expr) (Expr, error) { return foldUnaryFloat(x, "floor", math.Floor) }

// Ceil folds a FloatImm, else emits a pure intrinsic call.
func Ceil(x Expr) (Expr, error) { return foldUnaryFloat(x, "ceil", math.Ceil) }

// Round folds a FloatImm using round-half-to-even (banker's rounding), else
// emits a pure intrinsic call.
func Round(x Expr) (Expr, error) { return foldUnaryFloat(x, "round", math.RoundToEven) }

// Trunc folds a FloatImm — ceil for negatives, floor for non-negatives,
// equivalently truncation toward zero — else emits a pure intrinsic call.
func Trunc(x Expr) (Expr, error) { return foldUnaryFloat(x, "trunc", math.Trunc) }

func foldUnaryFloat(x Expr, name string, fn func(float64) float64) (Expr, error) {
	t := x.ExprType()
	if !t.IsFloat() {
		return nil, fmt.Errorf("tensorir: %s requires a float operand, got %s", name, t)
	}
	if n, ok := x.(*FloatImm); ok {
		return &FloatImm{Type_: n.Type_, Value: fn(n.Value)}, nil
	}
	return pureCall(t, name, x), nil
}

// Abs builds abs(x): folds on an IntImm/FloatImm, is the identity on uint,
// and otherwise builds a Select (int) or a "fabs" call (float).
func Abs(x Expr) (Expr, error) {
	t := x.ExprType()
	switch {
	case t.IsInt():
		if n, ok := x.(*IntImm); ok {
			v := n.Value
			if v < 0 {
				v = -v
			}
			return &IntImm{Type_: n.Type_, Value: v}, nil
		}
		neg, err := Neg(x)
		if err != nil {
			return nil, err
		}
		zero := makeZero(t)
		cond, err := GE(x, zero)
		if err != nil {
			return nil, err
		}
		return &SelectExpr{Cond: cond, T: x, F: neg}, nil
	case t.IsFloat():
		if n, ok := x.(*FloatImm); ok {
			return &FloatImm{Type_: n.Type_, Value: math.Abs(n.Value)}, nil
		}
		return pureCall(t, "fabs", x), nil
	case t.IsUInt():
		return x, nil
	default:
		return nil, fmt.Errorf("tensorir: abs is not defined for type %s", t)
	}
}

// IfThenElse builds a conditional select. cond must be exactly Bool(1); t and
// f are unified. A constant cond folds directly to the selected branch.
func IfThenElse(cond, t, f Expr) (Expr, error) {
	ct := cond.ExprType()
	if !ct.IsBool() || ct.Lanes != 1 {
		return nil, fmt.Errorf("tensorir: if_then_else condition must be Bool(1), got %s", ct)
	}

	t, f, rtype, err := matchTypes(t, f)
	if err != nil {
		return nil, err
	}

	if v, ok := boolConst(cond); ok {
		if v {
			return t, nil
		}
		return f, nil
	}

	return pureCall(rtype, "tvm_if_then_else", cond, t, f), nil
}

// Likely builds likely(cond): a constant cond passes through unchanged,
// otherwise a pure intrinsic call marks it as a scheduling hint.
func Likely(cond Expr) (Expr, error) {
	if extractImm(cond).isConst() {
		return cond, nil
	}
	return pureCall(cond.ExprType(), "likely", cond), nil
}
