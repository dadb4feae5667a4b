// SPDX-License-Identifier: Apache-2.0
package ir

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type foldCase struct {
	Op       string `yaml:"op"`
	A        int64  `yaml:"a"`
	B        int64  `yaml:"b"`
	Expected string `yaml:"expected"`
}

func loadFoldCases(t *testing.T, path string) []foldCase {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var cases []foldCase
	require.NoError(t, yaml.Unmarshal(data, &cases))
	return cases
}

// TestArithFoldTable drives the scalar Int32 arithmetic builders from a YAML
// fixture rather than enumerating cases in Go, the way a larger fold table
// would be maintained as data instead of code.
func TestArithFoldTable(t *testing.T) {
	for _, c := range loadFoldCases(t, "testdata/arith_fold_cases.yaml") {
		c := c
		t.Run(c.Op, func(t *testing.T) {
			a := &IntImm{Type_: IntType(32, 1), Value: c.A}
			b := &IntImm{Type_: IntType(32, 1), Value: c.B}

			var result Expr
			var err error
			switch c.Op {
			case "add":
				result, err = Add(a, b)
			case "sub":
				result, err = Sub(a, b)
			case "mul":
				result, err = Mul(a, b)
			case "min":
				result, err = Min(a, b)
			case "max":
				result, err = Max(a, b)
			case "div":
				result, err = Div(a, b)
			case "mod":
				result, err = Mod(a, b)
			default:
				t.Fatalf("unknown op %q in fixture", c.Op)
			}
			require.NoError(t, err)

			if diff := cmp.Diff(c.Expected, Print(result)); diff != "" {
				t.Errorf("fold mismatch for %s (-want +got):\n%s", c.Op, diff)
			}
		})
	}
}
