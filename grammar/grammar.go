// SPDX-License-Identifier: Apache-2.0
package grammar

import "github.com/alecthomas/participle/v2/lexer"

// Program is a sequence of variable declarations and expression statements,
// each optionally terminated by ";". Newlines are whitespace to the lexer, so
// a line that starts with a binary operator (such as "-") continues the
// expression on the line before it.
type Program struct {
	Statements []*Statement `@@*`
}

// Statement is a "var name : type" declaration or a bare expression;
// comments are elided by the lexer and never reach the grammar.
type Statement struct {
	Pos     lexer.Position
	VarDecl *VarDecl `  @@`
	Expr    *Expr    `| @@ [ ";" ]`
}

// VarDecl declares a typed variable available to later statements.
type VarDecl struct {
	Pos  lexer.Position
	Name string `"var" @Ident ":"`
	Type string `@Ident [ ";" ]`
}

// Expr is left-associative binary operator application over UnaryExprs,
// kept as a flat operator list in the grammar: precedence and
// associativity are resolved once, during lowering, the same way the
// teacher's BinaryExpr/Ops pattern defers restructuring out of the parser.
type Expr struct {
	Unary *UnaryExpr `@@`
	Ops   []*BinOp   `{ @@ }`
}

// BinOp is one "operator right-operand" pair following the left operand of
// an Expr.
type BinOp struct {
	Operator string     `@("||" | "&&" | "==" | "!=" | "<=" | ">=" | "<" | ">" | "+" | "-" | "*" | "/" | "%" | "&" | "|" | "^" | "<<" | ">>")`
	Right    *UnaryExpr `@@`
}

// UnaryExpr is an optional prefix operator applied to a Primary.
type UnaryExpr struct {
	Operator *string  `[ @("-" | "!" | "~") ]`
	Value    *Primary `@@`
}

// Primary is a cast, a call, a literal, a variable reference, or a
// parenthesized sub-expression.
type Primary struct {
	Pos   lexer.Position
	Cast  *CastExpr `  @@`
	Call  *CallExpr `| @@`
	Float *float64  `| @Float`
	Int   *string   `| @Int`
	Ident *string   `| @Ident`
	Paren *Expr     `| "(" @@ ")"`
}

// CastExpr is "cast<type>(expr)" or "reinterpret<type>(expr)"; this is the
// grammar-level node, distinct from ir.CastExpr, which internal/lower
// constructs from it.
type CastExpr struct {
	Pos  lexer.Position
	Kind string `@("cast" | "reinterpret") "<"`
	Type string `@Ident ">" "("`
	Arg  *Expr  `@@ ")"`
}

// CallExpr is "name(arg, arg, ...)", covering the pure intrinsics (pow,
// fmod, floor, ceil, round, trunc, abs, likely, select) by name; this is
// the grammar-level node, distinct from ir.CallExpr.
type CallExpr struct {
	Pos  lexer.Position
	Name string  `@Ident "("`
	Args []*Expr `[ @@ { "," @@ } ] ")"`
}
