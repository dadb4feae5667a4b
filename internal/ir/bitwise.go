// SPDX-License-Identifier: Apache-2.0
package ir

import "fmt"

// indexBitwise implements the shared shape of §4.6: folding and the
// wider-bits rtype rule apply only when both operands are 32/64-bit signed
// scalar integers (index types). Otherwise the result type is simply a's
// original type and no unification is attempted.
func indexBitwise(name string, a, b Expr) (Expr, error) {
	ta, tb := a.ExprType(), b.ExprType()

	if !ta.IsIndex() || !tb.IsIndex() {
		return &CallExpr{Type_: ta, Name: name, Args: []Expr{a, b}, Kind: CallPureIntrinsic}, nil
	}

	rtype := wider(ta, tb, 1)
	a = mustCast(rtype, a)
	b = mustCast(rtype, b)

	ai, bi := extractImm(a), extractImm(b)
	if ai.isInt && bi.isInt {
		var v int64
		switch name {
		case "shift_left":
			v = ai.i << uint(bi.i)
		case "shift_right":
			v = ai.i >> uint(bi.i)
		case "bitwise_and":
			v = ai.i & bi.i
		case "bitwise_or":
			v = ai.i | bi.i
		case "bitwise_xor":
			v = ai.i ^ bi.i
		}
		return &IntImm{Type_: rtype, Value: v}, nil
	}

	return &CallExpr{Type_: rtype, Name: name, Args: []Expr{a, b}, Kind: CallPureIntrinsic}, nil
}

// BitAnd builds a&b as a pure intrinsic call, folding only on the index-type
// fast path.
func BitAnd(a, b Expr) (Expr, error) { return indexBitwise("bitwise_and", a, b) }

// BitOr builds a|b.
func BitOr(a, b Expr) (Expr, error) { return indexBitwise("bitwise_or", a, b) }

// BitXor builds a^b.
func BitXor(a, b Expr) (Expr, error) { return indexBitwise("bitwise_xor", a, b) }

// BitNot builds ~a. a must be int or uint (fatal otherwise).
func BitNot(a Expr) (Expr, error) {
	t := a.ExprType()
	if !t.IsInt() && !t.IsUInt() {
		return nil, fmt.Errorf("tensorir: bitwise not requires an int or uint operand, got %s", t)
	}
	if t.IsIndex() {
		if n, ok := a.(*IntImm); ok {
			return &IntImm{Type_: t, Value: ^n.Value}, nil
		}
	}
	return &CallExpr{Type_: t, Name: "bitwise_not", Args: []Expr{a}, Kind: CallPureIntrinsic}, nil
}

// Shl builds a<<b. A literal-zero shift amount simplifies to the shifted
// operand, within the same index-type fast path as the other bitwise ops.
func Shl(a, b Expr) (Expr, error) {
	if a.ExprType().IsIndex() && b.ExprType().IsIndex() && isZero(b) {
		return a, nil
	}
	return indexBitwise("shift_left", a, b)
}

// Shr builds a>>b, with the same literal-zero simplification as Shl.
func Shr(a, b Expr) (Expr, error) {
	if a.ExprType().IsIndex() && b.ExprType().IsIndex() && isZero(b) {
		return a, nil
	}
	return indexBitwise("shift_right", a, b)
}
