// SPDX-License-Identifier: Apache-2.0
package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenario 1: add(IntImm(Int32,2), IntImm(Int32,3)) -> IntImm(Int32,5).
func TestAddConstantFold(t *testing.T) {
	a := &IntImm{Type_: IntType(32, 1), Value: 2}
	b := &IntImm{Type_: IntType(32, 1), Value: 3}

	result, err := Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, &IntImm{Type_: IntType(32, 1), Value: 5}, result)
}

func TestAddIdentity(t *testing.T) {
	x := &Var{Name: "x", Type_: IntType(32, 1)}
	zero := &IntImm{Type_: IntType(32, 1), Value: 0}

	r1, err := Add(x, zero)
	require.NoError(t, err)
	assert.Same(t, x, r1)

	r2, err := Add(zero, x)
	require.NoError(t, err)
	assert.Same(t, x, r2)
}

// Scenario 2: mul(IntImm(Int32,0), x_f32). Per match_binary_types (spec
// §4.1), an int operand promotes to float when paired with a float one, so
// construction succeeds rather than failing; the zero-int constant casts to
// 0.0f32 and the annihilating-zero identity still fires.
func TestMulZeroPromotesAcrossKinds(t *testing.T) {
	zero := &IntImm{Type_: IntType(32, 1), Value: 0}
	xf32 := &Var{Name: "x", Type_: FloatType(32, 1)}

	result, err := Mul(zero, xf32)
	require.NoError(t, err)
	fi, ok := result.(*FloatImm)
	require.True(t, ok)
	assert.Equal(t, FloatType(32, 1), fi.Type_)
	assert.Equal(t, 0.0, fi.Value)
}

// Scenario 2, second arrangement: both operands Int32 -> IntImm(Int32, 0).
func TestMulZeroSameKind(t *testing.T) {
	zero := &IntImm{Type_: IntType(32, 1), Value: 0}
	x := &Var{Name: "x", Type_: IntType(32, 1)}

	result, err := Mul(zero, x)
	require.NoError(t, err)
	assert.Equal(t, &IntImm{Type_: IntType(32, 1), Value: 0}, result)
}

func TestMulIdentity(t *testing.T) {
	x := &Var{Name: "x", Type_: IntType(32, 1)}
	one := &IntImm{Type_: IntType(32, 1), Value: 1}

	r, err := Mul(x, one)
	require.NoError(t, err)
	assert.Same(t, x, r)
}

// Scenario 3: div(IntImm(Int32,7), IntImm(Int32,2)) -> IntImm(Int32,3).
func TestDivPositiveFold(t *testing.T) {
	a := &IntImm{Type_: IntType(32, 1), Value: 7}
	b := &IntImm{Type_: IntType(32, 1), Value: 2}

	result, err := Div(a, b)
	require.NoError(t, err)
	assert.Equal(t, &IntImm{Type_: IntType(32, 1), Value: 3}, result)
}

// Scenario 4: div(IntImm(Int32,-7), IntImm(Int32,2)) -> a Div node, not
// folded, since the negative quadrant is outside the fold guard.
func TestDivNegativeDoesNotFold(t *testing.T) {
	a := &IntImm{Type_: IntType(32, 1), Value: -7}
	b := &IntImm{Type_: IntType(32, 1), Value: 2}

	result, err := Div(a, b)
	require.NoError(t, err)
	_, ok := result.(*DivExpr)
	assert.True(t, ok)
}

func TestDivByLiteralZeroIsFatal(t *testing.T) {
	a := &IntImm{Type_: IntType(32, 1), Value: 10}
	zero := &IntImm{Type_: IntType(32, 1), Value: 0}

	_, err := Div(a, zero)
	assert.Error(t, err)
}

func TestDivIdentity(t *testing.T) {
	x := &Var{Name: "x", Type_: IntType(32, 1)}
	one := &IntImm{Type_: IntType(32, 1), Value: 1}

	r, err := Div(x, one)
	require.NoError(t, err)
	assert.Same(t, x, r)
}

// Scenario 5: mod(IntImm(Int32,10), IntImm(Int32,0)) -> fatal.
func TestModByLiteralZeroIsFatal(t *testing.T) {
	a := &IntImm{Type_: IntType(32, 1), Value: 10}
	zero := &IntImm{Type_: IntType(32, 1), Value: 0}

	_, err := Mod(a, zero)
	assert.Error(t, err)
}

func TestModIndexFold(t *testing.T) {
	a := &IntImm{Type_: IntType(32, 1), Value: 10}
	b := &IntImm{Type_: IntType(32, 1), Value: 3}

	result, err := Mod(a, b)
	require.NoError(t, err)
	assert.Equal(t, &IntImm{Type_: IntType(32, 1), Value: 1}, result)
}

// Non-index integer operands unify but never fold, unlike Div.
func TestModNonIndexDoesNotFold(t *testing.T) {
	a := &IntImm{Type_: IntType(8, 1), Value: 10}
	b := &IntImm{Type_: IntType(8, 1), Value: 3}

	result, err := Mod(a, b)
	require.NoError(t, err)
	_, ok := result.(*ModExpr)
	assert.True(t, ok)
}

func TestSubIdentity(t *testing.T) {
	x := &Var{Name: "x", Type_: IntType(32, 1)}
	zero := &IntImm{Type_: IntType(32, 1), Value: 0}

	r, err := Sub(x, zero)
	require.NoError(t, err)
	assert.Same(t, x, r)
}

// Sub deliberately does not rewrite 0-b to -b (spec §9 Open Questions).
func TestSubZeroMinusBDoesNotFold(t *testing.T) {
	zero := &IntImm{Type_: IntType(32, 1), Value: 0}
	x := &Var{Name: "x", Type_: IntType(32, 1)}

	result, err := Sub(zero, x)
	require.NoError(t, err)
	sub, ok := result.(*SubExpr)
	require.True(t, ok)
	assert.Same(t, x, sub.B)
}

func TestNegFoldsImmediates(t *testing.T) {
	i := &IntImm{Type_: IntType(32, 1), Value: 5}
	result, err := Neg(i)
	require.NoError(t, err)
	assert.Equal(t, &IntImm{Type_: IntType(32, 1), Value: -5}, result)

	f := &FloatImm{Type_: FloatType(32, 1), Value: 2.5}
	fresult, err := Neg(f)
	require.NoError(t, err)
	assert.Equal(t, &FloatImm{Type_: FloatType(32, 1), Value: -2.5}, fresult)
}

func TestNegFallsBackToSub(t *testing.T) {
	x := &Var{Name: "x", Type_: IntType(32, 1)}
	result, err := Neg(x)
	require.NoError(t, err)
	sub, ok := result.(*SubExpr)
	require.True(t, ok)
	assert.Same(t, x, sub.B)
}

func TestMinMaxFold(t *testing.T) {
	a := &IntImm{Type_: IntType(32, 1), Value: 3}
	b := &IntImm{Type_: IntType(32, 1), Value: 7}

	min, err := Min(a, b)
	require.NoError(t, err)
	assert.Equal(t, &IntImm{Type_: IntType(32, 1), Value: 3}, min)

	max, err := Max(a, b)
	require.NoError(t, err)
	assert.Equal(t, &IntImm{Type_: IntType(32, 1), Value: 7}, max)
}

func TestTypeMismatchFailsConstruction(t *testing.T) {
	handle := &Var{Name: "h", Type_: HandleType()}
	b := &Var{Name: "b", Type_: BoolType(1)}

	_, err := Add(handle, b)
	assert.Error(t, err)
}

func TestBroadcastLifting(t *testing.T) {
	s := &IntImm{Type_: IntType(32, 1), Value: 3}
	v := &Var{Name: "v", Type_: IntType(32, 4)}

	result, err := Add(s, v)
	require.NoError(t, err)
	add, ok := result.(*AddExpr)
	require.True(t, ok)
	assert.Equal(t, 4, add.ExprType().Lanes)

	bc, ok := add.A.(*Broadcast)
	require.True(t, ok)
	assert.Equal(t, 4, bc.Lanes)
}
