// SPDX-License-Identifier: Apache-2.0
package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// TensorIRLexer tokenizes the small typed expression language consumed by
// cmd/tensorir and the repl: variable declarations and one expression per
// statement, e.g. "var x : i32" or "cast<f32>(x) * 2.0".
var TensorIRLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Comment", `//[^\n]*`, nil},

		// Keywords and identifiers (order matters)
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},

		{"Float", `[0-9]+\.[0-9]+([eE][+-]?[0-9]+)?`, nil},
		{"Int", `0x[0-9a-fA-F]+|[0-9]+`, nil},

		// Multi-character operators before single-character ones.
		{"Operator", `(<<|>>|&&|\|\||==|!=|<=|>=|[-+*/%<>=!&|^~])`, nil},

		{"Punct", `[(),:;]`, nil},

		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
