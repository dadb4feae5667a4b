// SPDX-License-Identifier: Apache-2.0
package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitwiseIndexFold(t *testing.T) {
	a := &IntImm{Type_: IntType(32, 1), Value: 6}
	b := &IntImm{Type_: IntType(32, 1), Value: 3}

	and, err := BitAnd(a, b)
	require.NoError(t, err)
	assert.Equal(t, &IntImm{Type_: IntType(32, 1), Value: 2}, and)

	or, err := BitOr(a, b)
	require.NoError(t, err)
	assert.Equal(t, &IntImm{Type_: IntType(32, 1), Value: 7}, or)

	xor, err := BitXor(a, b)
	require.NoError(t, err)
	assert.Equal(t, &IntImm{Type_: IntType(32, 1), Value: 5}, xor)
}

func TestBitwiseNonIndexBuildsCall(t *testing.T) {
	a := &Var{Name: "a", Type_: FloatType(32, 1)}
	b := &Var{Name: "b", Type_: FloatType(32, 1)}

	r, err := BitAnd(a, b)
	require.NoError(t, err)
	call, ok := r.(*CallExpr)
	require.True(t, ok)
	assert.Equal(t, "bitwise_and", call.Name)
}

func TestBitNotFoldsIndexImmediate(t *testing.T) {
	a := &IntImm{Type_: IntType(32, 1), Value: 0}
	r, err := BitNot(a)
	require.NoError(t, err)
	assert.Equal(t, &IntImm{Type_: IntType(32, 1), Value: -1}, r)
}

func TestBitNotRejectsNonIntegerOperand(t *testing.T) {
	f := &Var{Name: "f", Type_: FloatType(32, 1)}
	_, err := BitNot(f)
	assert.Error(t, err)
}

// Scenario 6: shl(x_int32, IntImm(Int32,0)) -> x unchanged.
func TestShlZeroShiftIsIdentity(t *testing.T) {
	x := &Var{Name: "x", Type_: IntType(32, 1)}
	zero := &IntImm{Type_: IntType(32, 1), Value: 0}

	r, err := Shl(x, zero)
	require.NoError(t, err)
	assert.Same(t, x, r)
}

func TestShrZeroShiftIsIdentity(t *testing.T) {
	x := &Var{Name: "x", Type_: IntType(32, 1)}
	zero := &IntImm{Type_: IntType(32, 1), Value: 0}

	r, err := Shr(x, zero)
	require.NoError(t, err)
	assert.Same(t, x, r)
}

func TestShlFoldsIndexImmediates(t *testing.T) {
	a := &IntImm{Type_: IntType(32, 1), Value: 1}
	b := &IntImm{Type_: IntType(32, 1), Value: 3}

	r, err := Shl(a, b)
	require.NoError(t, err)
	assert.Equal(t, &IntImm{Type_: IntType(32, 1), Value: 8}, r)
}
