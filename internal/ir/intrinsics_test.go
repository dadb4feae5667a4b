// SPDX-License-Identifier: Apache-2.0
package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPowBuildsCallOverFloatOperands(t *testing.T) {
	x := &Var{Name: "x", Type_: FloatType(32, 1)}
	y := &FloatImm{Type_: FloatType(32, 1), Value: 2.0}

	r, err := Pow(x, y)
	require.NoError(t, err)
	call, ok := r.(*CallExpr)
	require.True(t, ok)
	assert.Equal(t, "pow", call.Name)
	assert.Equal(t, CallPureIntrinsic, call.Kind)
}

func TestPowRejectsIntegerOperands(t *testing.T) {
	x := &Var{Name: "x", Type_: IntType(32, 1)}
	y := &IntImm{Type_: IntType(32, 1), Value: 2}
	_, err := Pow(x, y)
	assert.Error(t, err)
}

func TestFmodBuildsCall(t *testing.T) {
	x := &Var{Name: "x", Type_: FloatType(64, 1)}
	y := &Var{Name: "y", Type_: FloatType(64, 1)}

	r, err := Fmod(x, y)
	require.NoError(t, err)
	call, ok := r.(*CallExpr)
	require.True(t, ok)
	assert.Equal(t, "fmod", call.Name)
}

func TestFloorCeilRoundTruncFoldImmediates(t *testing.T) {
	x := &FloatImm{Type_: FloatType(32, 1), Value: 2.5}

	f, err := Floor(x)
	require.NoError(t, err)
	assert.Equal(t, 2.0, f.(*FloatImm).Value)

	c, err := Ceil(x)
	require.NoError(t, err)
	assert.Equal(t, 3.0, c.(*FloatImm).Value)

	r, err := Round(x)
	require.NoError(t, err)
	assert.Equal(t, 2.0, r.(*FloatImm).Value)

	tr, err := Trunc(&FloatImm{Type_: FloatType(32, 1), Value: -2.7})
	require.NoError(t, err)
	assert.Equal(t, -2.0, tr.(*FloatImm).Value)
}

func TestFloorRejectsNonFloatOperand(t *testing.T) {
	x := &Var{Name: "x", Type_: IntType(32, 1)}
	_, err := Floor(x)
	assert.Error(t, err)
}

func TestFloorBuildsCallOverVariable(t *testing.T) {
	x := &Var{Name: "x", Type_: FloatType(32, 1)}
	r, err := Floor(x)
	require.NoError(t, err)
	call, ok := r.(*CallExpr)
	require.True(t, ok)
	assert.Equal(t, "floor", call.Name)
}

func TestAbsFoldsIntImmediate(t *testing.T) {
	i := &IntImm{Type_: IntType(32, 1), Value: -5}
	r, err := Abs(i)
	require.NoError(t, err)
	assert.Equal(t, &IntImm{Type_: IntType(32, 1), Value: 5}, r)
}

func TestAbsFoldsFloatImmediate(t *testing.T) {
	f := &FloatImm{Type_: FloatType(32, 1), Value: -2.5}
	r, err := Abs(f)
	require.NoError(t, err)
	assert.Equal(t, &FloatImm{Type_: FloatType(32, 1), Value: 2.5}, r)
}

func TestAbsIsIdentityOnUnsigned(t *testing.T) {
	u := &Var{Name: "u", Type_: UIntType(32, 1)}
	r, err := Abs(u)
	require.NoError(t, err)
	assert.Same(t, u, r)
}

func TestAbsBuildsSelectForIntVariable(t *testing.T) {
	x := &Var{Name: "x", Type_: IntType(32, 1)}
	r, err := Abs(x)
	require.NoError(t, err)
	sel, ok := r.(*SelectExpr)
	require.True(t, ok)
	assert.Same(t, x, sel.T)
}

func TestIfThenElseFoldsConstantCondition(t *testing.T) {
	x := &Var{Name: "x", Type_: IntType(32, 1)}
	y := &Var{Name: "y", Type_: IntType(32, 1)}

	r, err := IfThenElse(trueImm(), x, y)
	require.NoError(t, err)
	assert.Same(t, x, r)

	r, err = IfThenElse(falseImm(), x, y)
	require.NoError(t, err)
	assert.Same(t, y, r)
}

func TestIfThenElseBuildsCallForVariableCondition(t *testing.T) {
	cond := &Var{Name: "c", Type_: BoolType(1)}
	x := &Var{Name: "x", Type_: IntType(32, 1)}
	y := &Var{Name: "y", Type_: IntType(32, 1)}

	r, err := IfThenElse(cond, x, y)
	require.NoError(t, err)
	call, ok := r.(*CallExpr)
	require.True(t, ok)
	assert.Equal(t, "tvm_if_then_else", call.Name)
}

func TestIfThenElseRejectsNonScalarBoolCondition(t *testing.T) {
	cond := &Var{Name: "c", Type_: BoolType(4)}
	x := &Var{Name: "x", Type_: IntType(32, 4)}
	y := &Var{Name: "y", Type_: IntType(32, 4)}

	_, err := IfThenElse(cond, x, y)
	assert.Error(t, err)
}

func TestLikelyPassesThroughConstant(t *testing.T) {
	r, err := Likely(trueImm())
	require.NoError(t, err)
	assert.Equal(t, trueImm(), r)
}

func TestLikelyBuildsCallForVariable(t *testing.T) {
	cond := &Var{Name: "c", Type_: BoolType(1)}
	r, err := Likely(cond)
	require.NoError(t, err)
	call, ok := r.(*CallExpr)
	require.True(t, ok)
	assert.Equal(t, "likely", call.Name)
}
