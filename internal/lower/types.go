// SPDX-License-Identifier: Apache-2.0
package lower

import (
	"fmt"
	"regexp"
	"strconv"

	"tensorir/internal/ir"
)

var typeNamePattern = regexp.MustCompile(`^(i|u|f)(\d+)(?:x(\d+))?$`)

// ParseType parses a source type name such as "i32", "u8", "f32x4", "bool",
// "boolx4", or "handle" into an ir.Type.
func ParseType(name string) (ir.Type, error) {
	switch name {
	case "bool":
		return ir.BoolType(1), nil
	case "handle":
		return ir.HandleType(), nil
	}

	if m := typeNamePattern.FindStringSubmatch(name); m != nil {
		bits, err := strconv.Atoi(m[2])
		if err != nil {
			return ir.Type{}, fmt.Errorf("tensorir: invalid type %q", name)
		}
		lanes := 1
		if m[3] != "" {
			lanes, err = strconv.Atoi(m[3])
			if err != nil {
				return ir.Type{}, fmt.Errorf("tensorir: invalid type %q", name)
			}
		}
		switch m[1] {
		case "i":
			return ir.IntType(bits, lanes), nil
		case "u":
			return ir.UIntType(bits, lanes), nil
		case "f":
			return ir.FloatType(bits, lanes), nil
		}
	}

	const boolxPrefix = "boolx"
	if len(name) > len(boolxPrefix) && name[:len(boolxPrefix)] == boolxPrefix {
		lanes, err := strconv.Atoi(name[len(boolxPrefix):])
		if err == nil {
			return ir.BoolType(lanes), nil
		}
	}

	return ir.Type{}, fmt.Errorf("tensorir: unknown type %q", name)
}
