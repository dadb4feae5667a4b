// SPDX-License-Identifier: Apache-2.0
package errors

import "fmt"

// ConstructionErrorBuilder provides a fluent interface for building the
// three fatal failure kinds of §7: type mismatch, invalid operand kind, and
// division/modulo by a literal zero, plus the lowering/parse errors that
// wrap the grammar and internal/lower front end around internal/ir.
type ConstructionErrorBuilder struct {
	err CompilerError
}

// NewConstructionError starts a builder for a fatal diagnostic at code with
// message, anchored at pos.
func NewConstructionError(code, message string, pos Position) *ConstructionErrorBuilder {
	return &ConstructionErrorBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

func (b *ConstructionErrorBuilder) WithLength(length int) *ConstructionErrorBuilder {
	b.err.Length = length
	return b
}

func (b *ConstructionErrorBuilder) WithNote(note string) *ConstructionErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

func (b *ConstructionErrorBuilder) WithHelp(help string) *ConstructionErrorBuilder {
	b.err.HelpText = help
	return b
}

func (b *ConstructionErrorBuilder) WithSuggestion(message string) *ConstructionErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

func (b *ConstructionErrorBuilder) Build() CompilerError {
	return b.err
}

// TypeMismatch builds an IR001 diagnostic for operand types that
// unification could not reconcile.
func TypeMismatch(leftType, rightType string, pos Position) CompilerError {
	return NewConstructionError(ErrorTypeMismatch,
		fmt.Sprintf("cannot unify operand types %s and %s", leftType, rightType), pos).
		WithNote("lane counts must match or one side must be scalar").
		WithNote("element types must both be numeric, with at most one side floating point").
		WithHelp("insert an explicit cast on one operand").
		Build()
}

// InvalidOperand builds an IR002 diagnostic for an operand whose kind the
// requested operation does not accept (non-bool into a logical builder,
// non-float into pow/fmod, non-int/uint into bitwise not, and so on).
func InvalidOperand(operation, gotType, wantKind string, pos Position) CompilerError {
	return NewConstructionError(ErrorInvalidOperand,
		fmt.Sprintf("%s requires a %s operand, got %s", operation, wantKind, gotType), pos).
		WithHelp(fmt.Sprintf("convert the operand to %s before calling %s", wantKind, operation)).
		Build()
}

// DivModByZero builds an IR003 diagnostic for a literal-zero divisor.
func DivModByZero(operation string, pos Position) CompilerError {
	return NewConstructionError(ErrorDivModByZero,
		fmt.Sprintf("%s by literal zero", operation), pos).
		WithNote("non-literal zero divisors are not detected at construction time").
		Build()
}

// ReducerArity builds an IR004 diagnostic for a malformed CommReducer.
func ReducerArity(reducerName string, pos Position) CompilerError {
	return NewConstructionError(ErrorReducerArity,
		fmt.Sprintf("%s reducer identity/result arity mismatch", reducerName), pos).
		Build()
}

// UndefinedVariable builds an IR101 diagnostic for a reference to an
// undeclared variable during lowering, with similarly named declarations as
// suggestions.
func UndefinedVariable(name string, pos Position, similarNames []string) CompilerError {
	builder := NewConstructionError(ErrorUndefinedVariable,
		fmt.Sprintf("undefined variable '%s'", name), pos).WithLength(len(name))

	if len(similarNames) > 0 {
		builder = builder.WithSuggestion(suggestSimilar(similarNames))
	} else {
		builder = builder.WithSuggestion("declare it first with 'var " + name + " : <type>'")
	}
	return builder.Build()
}

// DuplicateDeclaration builds an IR102 diagnostic for a variable declared
// more than once in the same program.
func DuplicateDeclaration(name string, pos Position) CompilerError {
	return NewConstructionError(ErrorDuplicateDeclaration,
		fmt.Sprintf("duplicate declaration of variable '%s'", name), pos).
		WithSuggestion(fmt.Sprintf("rename one of the declarations of '%s'", name)).
		Build()
}

// UnknownIntrinsic builds an IR103 diagnostic for a call naming no known
// intrinsic or reducer.
func UnknownIntrinsic(name string, pos Position, similarNames []string) CompilerError {
	builder := NewConstructionError(ErrorUnknownIntrinsic,
		fmt.Sprintf("unknown intrinsic or reducer '%s'", name), pos).WithLength(len(name))

	if len(similarNames) > 0 {
		builder = builder.WithSuggestion(suggestSimilar(similarNames))
	}
	return builder.Build()
}

// ArgumentCount builds an IR104 diagnostic for a call with the wrong number
// of arguments.
func ArgumentCount(name string, expected, actual int, pos Position) CompilerError {
	return NewConstructionError(ErrorArgumentCount,
		fmt.Sprintf("'%s' expects %d argument(s), got %d", name, expected, actual), pos).
		Build()
}

// UnknownType builds an IR201 diagnostic for a type name in source text that
// names no known type.
func UnknownType(name string, pos Position, similarNames []string) CompilerError {
	builder := NewConstructionError(ErrorUnknownType,
		fmt.Sprintf("unknown type '%s'", name), pos).WithLength(len(name)).
		WithHelp("known types are i8/i16/i32/i64, u8/u16/u32/u64, f32/f64, bool, and their xN lane forms")

	if len(similarNames) > 0 {
		builder = builder.WithSuggestion(suggestSimilar(similarNames))
	}
	return builder.Build()
}

func suggestSimilar(names []string) string {
	if len(names) == 1 {
		return fmt.Sprintf("did you mean '%s'?", names[0])
	}
	msg := "did you mean one of: "
	for i, n := range names {
		if i > 0 {
			msg += ", "
		}
		msg += "'" + n + "'"
	}
	return msg + "?"
}

// FindSimilarNames returns the subset of candidates within Levenshtein
// distance 2 of target, for "did you mean" suggestions; single-character
// candidates are never returned.
func FindSimilarNames(target string, candidates []string) []string {
	var similar []string
	for _, c := range candidates {
		if levenshteinDistance(target, c) <= 2 && len(c) > 1 {
			similar = append(similar, c)
		}
	}
	return similar
}

func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
	}
	for i := 0; i <= len(a); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			matrix[i][j] = min3(
				matrix[i-1][j]+1,
				matrix[i][j-1]+1,
				matrix[i-1][j-1]+cost,
			)
		}
	}
	return matrix[len(a)][len(b)]
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
