// SPDX-License-Identifier: Apache-2.0

// Package lower walks a parsed grammar.Program into internal/ir
// expressions, binding "var" declarations to ir.Var leaves in a per-session
// environment and calling the internal/ir smart constructors for every
// expression statement — mirroring the teacher's Builder.Build/
// buildExpression AST-to-IR walk, narrowed to this domain's grammar (no
// control flow, no storage, no SSA).
package lower

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"tensorir/grammar"
	"tensorir/internal/errors"
	"tensorir/internal/ir"
)

// Builder accumulates a variable environment across the statements of one
// Program and lowers its expression statements to ir.Expr values.
type Builder struct {
	env map[string]*ir.Var
}

// NewBuilder returns a Builder with an empty environment.
func NewBuilder() *Builder {
	return &Builder{env: make(map[string]*ir.Var)}
}

// Lower walks program's statements in order, declaring variables into the
// Builder's environment and lowering every expression statement to an
// ir.Expr. It returns one ir.Expr per expression statement (skipping
// declarations) and the full set of errors encountered; a failing
// statement does not stop the walk, so later, independent statements are
// still lowered and reported.
func (b *Builder) Lower(program *grammar.Program) ([]ir.Expr, []error) {
	var exprs []ir.Expr
	var errs []error

	for _, stmt := range program.Statements {
		switch {
		case stmt.VarDecl != nil:
			if err := b.declare(stmt.VarDecl); err != nil {
				errs = append(errs, err)
			}
		case stmt.Expr != nil:
			e, err := b.buildExpr(stmt.Expr)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			exprs = append(exprs, e)
		}
	}
	return exprs, errs
}

func (b *Builder) declare(decl *grammar.VarDecl) error {
	pos := toPosition(decl.Pos)
	if _, exists := b.env[decl.Name]; exists {
		return errors.DuplicateDeclaration(decl.Name, pos)
	}
	t, err := ParseType(decl.Type)
	if err != nil {
		return errors.UnknownType(decl.Type, pos, errors.FindSimilarNames(decl.Type, knownTypeNames))
	}
	b.env[decl.Name] = &ir.Var{Name: decl.Name, Type_: t}
	return nil
}

// knownTypeNames seeds "did you mean" suggestions for an unrecognized type
// name; the xN lane forms are covered by ParseType's pattern match, not
// enumerated here.
var knownTypeNames = []string{
	"i8", "i16", "i32", "i64",
	"u8", "u16", "u32", "u64",
	"f32", "f64", "bool", "handle",
}

// knownIntrinsicNames seeds "did you mean" suggestions for an unrecognized
// call name.
var knownIntrinsicNames = []string{
	"pow", "fmod", "floor", "ceil", "round", "trunc", "abs", "likely", "select",
}

func toPosition(p lexer.Position) errors.Position {
	return errors.Position{Filename: p.Filename, Line: p.Line, Column: p.Column}
}

// precedence assigns each binary operator its binding strength; operators
// of equal precedence associate left to right.
var precedence = map[string]int{
	"||": 1,
	"&&": 2,
	"==": 3, "!=": 3,
	"<": 4, "<=": 4, ">": 4, ">=": 4,
	"|":  5,
	"^":  6,
	"&":  7,
	"<<": 8, ">>": 8,
	"+": 9, "-": 9,
	"*": 10, "/": 10, "%": 10,
}

// buildExpr lowers a flat grammar.Expr (one left operand plus a trailing
// list of operator/right-operand pairs) into a single ir.Expr, resolving
// precedence via the classic precedence-climbing algorithm: the grammar
// itself stays a flat list, exactly like the teacher's BinaryExpr, and
// restructuring happens only here.
func (b *Builder) buildExpr(e *grammar.Expr) (ir.Expr, error) {
	lhs, err := b.buildUnary(e.Unary)
	if err != nil {
		return nil, err
	}
	if len(e.Ops) == 0 {
		return lhs, nil
	}

	terms := make([]ir.Expr, len(e.Ops)+1)
	ops := make([]string, len(e.Ops))
	terms[0] = lhs
	for i, op := range e.Ops {
		rhs, err := b.buildUnary(op.Right)
		if err != nil {
			return nil, err
		}
		terms[i+1] = rhs
		ops[i] = op.Operator
	}

	pos := 0
	return climb(terms, ops, &pos, terms[0], 0)
}

// climb is the classic precedence-climbing parse loop, adapted to run over
// the already-lowered terms/ops slices rather than a token stream: *pos
// indexes the next unconsumed operator in ops, and terms[*pos+1] is always
// its right operand.
func climb(terms []ir.Expr, ops []string, pos *int, lhs ir.Expr, minPrec int) (ir.Expr, error) {
	for *pos < len(ops) && precedence[ops[*pos]] >= minPrec {
		op := ops[*pos]
		opPrec := precedence[op]
		rhs := terms[*pos+1]
		*pos++

		for *pos < len(ops) && precedence[ops[*pos]] > opPrec {
			var err error
			rhs, err = climb(terms, ops, pos, rhs, precedence[ops[*pos]])
			if err != nil {
				return nil, err
			}
		}

		var err error
		lhs, err = applyOp(op, lhs, rhs)
		if err != nil {
			return nil, err
		}
	}
	return lhs, nil
}

func applyOp(op string, a, b ir.Expr) (ir.Expr, error) {
	switch op {
	case "+":
		return ir.Add(a, b)
	case "-":
		return ir.Sub(a, b)
	case "*":
		return ir.Mul(a, b)
	case "/":
		return ir.Div(a, b)
	case "%":
		return ir.Mod(a, b)
	case ">":
		return ir.GT(a, b)
	case ">=":
		return ir.GE(a, b)
	case "<":
		return ir.LT(a, b)
	case "<=":
		return ir.LE(a, b)
	case "==":
		return ir.EQ(a, b)
	case "!=":
		return ir.NE(a, b)
	case "&&":
		return ir.And(a, b)
	case "||":
		return ir.Or(a, b)
	case "&":
		return ir.BitAnd(a, b)
	case "|":
		return ir.BitOr(a, b)
	case "^":
		return ir.BitXor(a, b)
	case "<<":
		return ir.Shl(a, b)
	case ">>":
		return ir.Shr(a, b)
	default:
		return nil, fmt.Errorf("tensorir: unknown operator %q", op)
	}
}

func (b *Builder) buildUnary(u *grammar.UnaryExpr) (ir.Expr, error) {
	value, err := b.buildPrimary(u.Value)
	if err != nil {
		return nil, err
	}
	if u.Operator == nil {
		return value, nil
	}
	switch *u.Operator {
	case "-":
		return ir.Neg(value)
	case "!":
		return ir.Not(value)
	case "~":
		return ir.BitNot(value)
	default:
		return nil, fmt.Errorf("tensorir: unknown unary operator %q", *u.Operator)
	}
}

func (b *Builder) buildPrimary(p *grammar.Primary) (ir.Expr, error) {
	switch {
	case p.Cast != nil:
		return b.buildCast(p.Cast)
	case p.Call != nil:
		return b.buildCall(p.Call)
	case p.Float != nil:
		return &ir.FloatImm{Type_: ir.FloatType(32, 1), Value: *p.Float}, nil
	case p.Int != nil:
		return b.buildIntLiteral(*p.Int)
	case p.Ident != nil:
		v, ok := b.env[*p.Ident]
		if !ok {
			return nil, errors.UndefinedVariable(*p.Ident, toPosition(p.Pos), errors.FindSimilarNames(*p.Ident, b.declaredNames()))
		}
		return v, nil
	case p.Paren != nil:
		return b.buildExpr(p.Paren)
	default:
		return nil, fmt.Errorf("tensorir: empty expression primary")
	}
}

func (b *Builder) buildIntLiteral(text string) (ir.Expr, error) {
	base := 10
	if strings.HasPrefix(text, "0x") {
		base = 16
		text = text[2:]
	}
	v, err := strconv.ParseInt(text, base, 64)
	if err != nil {
		return nil, fmt.Errorf("tensorir: invalid integer literal %q: %w", text, err)
	}
	return &ir.IntImm{Type_: ir.IntType(32, 1), Value: v}, nil
}

func (b *Builder) buildCast(c *grammar.CastExpr) (ir.Expr, error) {
	t, err := ParseType(c.Type)
	if err != nil {
		return nil, err
	}
	arg, err := b.buildExpr(c.Arg)
	if err != nil {
		return nil, err
	}
	if c.Kind == "reinterpret" {
		return ir.Reinterpret(t, arg)
	}
	return ir.Cast(t, arg)
}

func (b *Builder) buildCall(c *grammar.CallExpr) (ir.Expr, error) {
	args := make([]ir.Expr, len(c.Args))
	for i, a := range c.Args {
		arg, err := b.buildExpr(a)
		if err != nil {
			return nil, err
		}
		args[i] = arg
	}

	arity := func(n int) error {
		if len(args) != n {
			return errors.ArgumentCount(c.Name, n, len(args), toPosition(c.Pos))
		}
		return nil
	}

	switch c.Name {
	case "pow":
		if err := arity(2); err != nil {
			return nil, err
		}
		return ir.Pow(args[0], args[1])
	case "fmod":
		if err := arity(2); err != nil {
			return nil, err
		}
		return ir.Fmod(args[0], args[1])
	case "floor":
		if err := arity(1); err != nil {
			return nil, err
		}
		return ir.Floor(args[0])
	case "ceil":
		if err := arity(1); err != nil {
			return nil, err
		}
		return ir.Ceil(args[0])
	case "round":
		if err := arity(1); err != nil {
			return nil, err
		}
		return ir.Round(args[0])
	case "trunc":
		if err := arity(1); err != nil {
			return nil, err
		}
		return ir.Trunc(args[0])
	case "abs":
		if err := arity(1); err != nil {
			return nil, err
		}
		return ir.Abs(args[0])
	case "likely":
		if err := arity(1); err != nil {
			return nil, err
		}
		return ir.Likely(args[0])
	case "select":
		if err := arity(3); err != nil {
			return nil, err
		}
		return ir.IfThenElse(args[0], args[1], args[2])
	default:
		return nil, errors.UnknownIntrinsic(c.Name, toPosition(c.Pos), errors.FindSimilarNames(c.Name, knownIntrinsicNames))
	}
}

// declaredNames returns the variable names currently bound in the
// environment, for "did you mean" suggestions on an undefined reference.
func (b *Builder) declaredNames() []string {
	names := make([]string, 0, len(b.env))
	for name := range b.env {
		names = append(names, name)
	}
	return names
}
