// SPDX-License-Identifier: Apache-2.0
package ir

import (
	"fmt"
	"math"
)

// Code is the scalar kind of a Type: what family of values it describes,
// independent of width or lane count.
type Code int

const (
	Int Code = iota
	UInt
	Float
	Bool
	Handle
)

func (c Code) String() string {
	switch c {
	case Int:
		return "int"
	case UInt:
		return "uint"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case Handle:
		return "handle"
	default:
		return "unknown"
	}
}

// Type is the result type of every expression: a closed attribute triple,
// not a node hierarchy, so it is a value struct rather than an interface.
type Type struct {
	Code  Code
	Bits  int
	Lanes int
}

func IntType(bits, lanes int) Type   { return Type{Code: Int, Bits: bits, Lanes: lanes} }
func UIntType(bits, lanes int) Type  { return Type{Code: UInt, Bits: bits, Lanes: lanes} }
func FloatType(bits, lanes int) Type { return Type{Code: Float, Bits: bits, Lanes: lanes} }
func BoolType(lanes int) Type        { return Type{Code: Bool, Bits: 1, Lanes: lanes} }
func HandleType() Type               { return Type{Code: Handle, Bits: 64, Lanes: 1} }

func (t Type) IsInt() bool    { return t.Code == Int }
func (t Type) IsUInt() bool   { return t.Code == UInt }
func (t Type) IsFloat() bool  { return t.Code == Float }
func (t Type) IsBool() bool   { return t.Code == Bool }
func (t Type) IsHandle() bool { return t.Code == Handle }

// IsIndex reports whether t is the canonical type for shape and loop-bound
// arithmetic: a scalar 32- or 64-bit signed integer.
func (t Type) IsIndex() bool {
	return t.Code == Int && t.Lanes == 1 && (t.Bits == 32 || t.Bits == 64)
}

// ElementOf strips the lane count, returning the scalar form of t.
func (t Type) ElementOf() Type {
	return Type{Code: t.Code, Bits: t.Bits, Lanes: 1}
}

func (t Type) Equal(o Type) bool {
	return t.Code == o.Code && t.Bits == o.Bits && t.Lanes == o.Lanes
}

func (t Type) String() string {
	var base string
	switch t.Code {
	case Int:
		base = fmt.Sprintf("i%d", t.Bits)
	case UInt:
		base = fmt.Sprintf("u%d", t.Bits)
	case Float:
		base = fmt.Sprintf("f%d", t.Bits)
	case Bool:
		base = "bool"
	case Handle:
		base = "handle"
	default:
		base = "?"
	}
	if t.Lanes > 1 {
		return fmt.Sprintf("%sx%d", base, t.Lanes)
	}
	return base
}

// Min returns the typed extremal-minimum immediate for t.
func (t Type) Min() (Expr, error) {
	switch t.Code {
	case Int:
		return &IntImm{Type_: t, Value: minInt(t.Bits)}, nil
	case UInt:
		return &UIntImm{Type_: t, Value: 0}, nil
	case Float:
		return &FloatImm{Type_: t, Value: math.Inf(-1)}, nil
	default:
		return nil, fmt.Errorf("tensorir: Min() undefined for type %s", t)
	}
}

// Max returns the typed extremal-maximum immediate for t.
func (t Type) Max() (Expr, error) {
	switch t.Code {
	case Int:
		return &IntImm{Type_: t, Value: maxInt(t.Bits)}, nil
	case UInt:
		return &UIntImm{Type_: t, Value: maxUint(t.Bits)}, nil
	case Float:
		return &FloatImm{Type_: t, Value: math.Inf(1)}, nil
	default:
		return nil, fmt.Errorf("tensorir: Max() undefined for type %s", t)
	}
}

func minInt(bits int) int64 {
	if bits >= 64 {
		return -1 << 63
	}
	return -1 << (bits - 1)
}

func maxInt(bits int) int64 {
	if bits >= 64 {
		return 1<<63 - 1
	}
	return 1<<(bits-1) - 1
}

func maxUint(bits int) uint64 {
	if bits >= 64 {
		return ^uint64(0)
	}
	return 1<<uint(bits) - 1
}
