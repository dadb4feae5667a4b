// SPDX-License-Identifier: Apache-2.0
package ir

// reducer assembles a CommReducer from two fresh bound variables of type t
// and a binary combining function, per spec §4.8.
func reducer(t Type, combine func(x, y Expr) (Expr, error), identity Expr) (*CommReducer, error) {
	x := &Var{Name: "reduce_lhs", Type_: t}
	y := &Var{Name: "reduce_rhs", Type_: t}
	result, err := combine(x, y)
	if err != nil {
		return nil, err
	}
	return &CommReducer{
		Lhs:      []*Var{x},
		Rhs:      []*Var{y},
		Result:   []Expr{result},
		Identity: []Expr{identity},
	}, nil
}

func reduceOver(src Expr, domain []IterVar, combine func(x, y Expr) (Expr, error), identity Expr) (Expr, error) {
	comb, err := reducer(src.ExprType(), combine, identity)
	if err != nil {
		return nil, err
	}
	if len(domain) == 0 {
		return identity, nil
	}
	return &ReduceExpr{
		Combiner:  comb,
		Source:    []Expr{src},
		Domain:    domain,
		Predicate: boolImm(1, true),
		Axis:      0,
	}, nil
}

// ReduceSum builds a commutative-sum reduction of src over domain, with
// identity zero(T).
func ReduceSum(src Expr, domain []IterVar) (Expr, error) {
	return reduceOver(src, domain, Add, makeZero(src.ExprType()))
}

// ReduceProd builds a commutative-product reduction, with identity one(T).
func ReduceProd(src Expr, domain []IterVar) (Expr, error) {
	return reduceOver(src, domain, Mul, makeOne(src.ExprType()))
}

// ReduceMin builds a commutative-minimum reduction, with identity T.Max()
// (the largest value of T, so the first real element always wins the fold).
func ReduceMin(src Expr, domain []IterVar) (Expr, error) {
	id, err := src.ExprType().Max()
	if err != nil {
		return nil, err
	}
	return reduceOver(src, domain, Min, id)
}

// ReduceMax builds a commutative-maximum reduction, with identity T.Min().
func ReduceMax(src Expr, domain []IterVar) (Expr, error) {
	id, err := src.ExprType().Min()
	if err != nil {
		return nil, err
	}
	return reduceOver(src, domain, Max, id)
}
