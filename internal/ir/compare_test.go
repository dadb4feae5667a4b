// SPDX-License-Identifier: Apache-2.0
package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Invariant 6: gt(p, q) returns UIntImm(Bool(1), p > q ? 1 : 0) for
// same-kind constants.
func TestComparisonFolding(t *testing.T) {
	p := &IntImm{Type_: IntType(32, 1), Value: 5}
	q := &IntImm{Type_: IntType(32, 1), Value: 3}

	result, err := GT(p, q)
	require.NoError(t, err)
	assert.Equal(t, &UIntImm{Type_: BoolType(1), Value: 1}, result)

	result, err = LT(p, q)
	require.NoError(t, err)
	assert.Equal(t, &UIntImm{Type_: BoolType(1), Value: 0}, result)
}

func TestComparisonUnfoldedBuildsNode(t *testing.T) {
	x := &Var{Name: "x", Type_: IntType(32, 1)}
	y := &Var{Name: "y", Type_: IntType(32, 1)}

	r, err := GE(x, y)
	require.NoError(t, err)
	ge, ok := r.(*GEExpr)
	require.True(t, ok)
	assert.Equal(t, BoolType(1), ge.ExprType())
}

func TestEQNEFold(t *testing.T) {
	a := &FloatImm{Type_: FloatType(32, 1), Value: 1.5}
	b := &FloatImm{Type_: FloatType(32, 1), Value: 1.5}

	eq, err := EQ(a, b)
	require.NoError(t, err)
	assert.Equal(t, &UIntImm{Type_: BoolType(1), Value: 1}, eq)

	ne, err := NE(a, b)
	require.NoError(t, err)
	assert.Equal(t, &UIntImm{Type_: BoolType(1), Value: 0}, ne)
}

func TestComparisonResultLanesMatchOperands(t *testing.T) {
	a := &Var{Name: "a", Type_: IntType(32, 4)}
	b := &Var{Name: "b", Type_: IntType(32, 4)}

	r, err := LE(a, b)
	require.NoError(t, err)
	assert.Equal(t, BoolType(4), r.ExprType())
}
