package eval

import (
	"math"

	"github.com/dimlang/dim/internal/ast"
	"github.com/dimlang/dim/internal/dimension"
	"github.com/dimlang/dim/internal/lexer"
	"github.com/dimlang/dim/internal/normalize"
)

// Eval walks expr and produces its runtime value, consulting r for every
// unit/constant lookup and constant definition.
func Eval(expr ast.Expr, r Resolver) (Value, error) {
	switch n := expr.(type) {
	case *ast.Number:
		return Number{Value: n.Value}, nil

	case *ast.Grouping:
		return Eval(n.Child, r)

	case *ast.Unary:
		return evalUnary(n, r)

	case *ast.Binary:
		return evalBinary(n, r)

	case *ast.UnitApplied:
		return evalUnitApplied(n, r)

	case *ast.Display:
		return evalDisplay(n, r)

	case *ast.Assignment:
		return evalAssignment(n, r)

	default:
		return nil, invalidOperand("unknown expression node")
	}
}

// evalUnitExpr evaluates a unit sub-expression (UnitTerm or CompoundUnit)
// to a Quantity whose Value is the multiplicative canonical factor of
// that unit expression — never affine-aware, since affine conversion
// only makes sense for a bare exponent-1 UnitTerm evaluated directly
// under a number (handled separately in evalUnitApplied).
func evalUnitExpr(u ast.UnitExpr, r Resolver) (Quantity, error) {
	switch n := u.(type) {
	case *ast.UnitTerm:
		base, ok := r.Resolve(n.Name)
		if !ok {
			return Quantity{}, undefinedVariable(n.Name)
		}
		powered := base.Pow(n.Exp)
		return Quantity{
			Value: ipow(base.ToCanonicalFactor(), n.Exp),
			Dim:   powered.Dim,
			Unit:  n.String(),
		}, nil

	case *ast.CompoundUnit:
		left, err := evalUnitExpr(n.Left, r)
		if err != nil {
			return Quantity{}, err
		}
		right, err := evalUnitExpr(n.Right, r)
		if err != nil {
			return Quantity{}, err
		}
		switch n.Op {
		case lexer.Star:
			return Quantity{
				Value: left.Value * right.Value,
				Dim:   dimension.Add(left.Dim, right.Dim),
				Unit:  n.String(),
			}, nil
		case lexer.Slash:
			if right.Value == 0 {
				return Quantity{}, divisionByZero()
			}
			return Quantity{
				Value: left.Value / right.Value,
				Dim:   dimension.Sub(left.Dim, right.Dim),
				Unit:  n.String(),
			}, nil
		default:
			return Quantity{}, unsupportedOperator(n.Op)
		}

	default:
		return Quantity{}, invalidOperand("unknown unit expression node")
	}
}

// ipow raises factor to an integer exponent.
func ipow(factor float64, exp int) float64 {
	neg := exp < 0
	if neg {
		exp = -exp
	}
	result := 1.0
	for i := 0; i < exp; i++ {
		result *= factor
	}
	if neg {
		return 1 / result
	}
	return result
}

func evalUnitApplied(n *ast.UnitApplied, r Resolver) (Value, error) {
	val, err := Eval(n.Value, r)
	if err != nil {
		return nil, err
	}
	num, ok := val.(Number)
	if !ok {
		return nil, invalidOperand("unit expression requires a numeric operand")
	}

	// Bare exponent-1 UnitTerm: affine-aware conversion, so "10 C" becomes
	// 283.15 K rather than using the purely multiplicative factor.
	if term, ok := n.Unit.(*ast.UnitTerm); ok && term.Exp == 1 {
		base, ok := r.Resolve(term.Name)
		if !ok {
			return nil, undefinedVariable(term.Name)
		}
		canonical := base.ToCanonical(num.Value)
		return Quantity{
			Value: canonical,
			Dim:   base.Dim,
			Unit:  normalize.Normalize(base.Dim, r.DisplayRegistry(), n.Unit.String()),
		}, nil
	}

	uq, err := evalUnitExpr(n.Unit, r)
	if err != nil {
		return nil, err
	}
	return Quantity{
		Value: num.Value * uq.Value,
		Dim:   uq.Dim,
		Unit:  normalize.Normalize(uq.Dim, r.DisplayRegistry(), n.Unit.String()),
	}, nil
}

func evalUnary(n *ast.Unary, r Resolver) (Value, error) {
	child, err := Eval(n.Child, r)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case lexer.Minus:
		switch v := child.(type) {
		case Number:
			return Number{Value: -v.Value}, nil
		case Quantity:
			v.Value = -v.Value
			return v, nil
		default:
			return nil, invalidOperand("unary '-' requires a number or quantity")
		}
	case lexer.Bang:
		return Boolean{Value: !truthy(child)}, nil
	default:
		return nil, unsupportedOperator(n.Op)
	}
}

func evalBinary(n *ast.Binary, r Resolver) (Value, error) {
	switch n.Op {
	case lexer.Plus, lexer.Minus:
		return evalAddSub(n, r)
	case lexer.Star, lexer.Slash:
		return evalMulDiv(n, r)
	case lexer.Caret:
		return evalPow(n, r)
	case lexer.Greater, lexer.GreaterEqual, lexer.Less, lexer.LessEqual:
		return evalOrder(n, r)
	case lexer.Equal, lexer.EqualEqual:
		return evalEquality(n, r, true)
	case lexer.BangEqual:
		return evalEquality(n, r, false)
	default:
		return nil, unsupportedOperator(n.Op)
	}
}

func evalAddSub(n *ast.Binary, r Resolver) (Value, error) {
	left, err := Eval(n.Left, r)
	if err != nil {
		return nil, err
	}
	right, err := Eval(n.Right, r)
	if err != nil {
		return nil, err
	}

	sign := 1.0
	if n.Op == lexer.Minus {
		sign = -1.0
	}

	switch l := left.(type) {
	case Number:
		rn, ok := right.(Number)
		if !ok {
			return nil, invalidOperands("both operands of '+'/'-' must be numbers when the left is a number")
		}
		return Number{Value: l.Value + sign*rn.Value}, nil
	case Quantity:
		rq, ok := right.(Quantity)
		if !ok {
			return nil, invalidOperands("both operands of '+'/'-' must be quantities when the left is a quantity")
		}
		if !l.Dim.Eql(rq.Dim) {
			return nil, invalidOperands("mismatched dimensions")
		}
		return Quantity{
			Value: l.Value + sign*rq.Value,
			Dim:   l.Dim,
			Unit:  l.Unit, // preserves the left operand's display unit
			Mode:  l.Mode,
		}, nil
	default:
		return nil, invalidOperand("'+'/'-' require numbers or quantities")
	}
}

func evalMulDiv(n *ast.Binary, r Resolver) (Value, error) {
	left, err := Eval(n.Left, r)
	if err != nil {
		return nil, err
	}
	right, err := Eval(n.Right, r)
	if err != nil {
		return nil, err
	}

	lNum, lIsNum := left.(Number)
	rNum, rIsNum := right.(Number)
	lQty, lIsQty := left.(Quantity)
	rQty, rIsQty := right.(Quantity)

	if lIsNum && rIsNum {
		if n.Op == lexer.Slash && rNum.Value == 0 {
			return nil, divisionByZero()
		}
		if n.Op == lexer.Star {
			return Number{Value: lNum.Value * rNum.Value}, nil
		}
		return Number{Value: lNum.Value / rNum.Value}, nil
	}

	// Scalar * quantity or quantity / scalar: preserve the quantity's
	// display unit.
	if lIsQty && rIsNum {
		if n.Op == lexer.Slash && rNum.Value == 0 {
			return nil, divisionByZero()
		}
		factor := rNum.Value
		if n.Op == lexer.Slash {
			factor = 1 / rNum.Value
		}
		lQty.Value *= factor
		return lQty, nil
	}
	if lIsNum && rIsQty && n.Op == lexer.Star {
		rQty.Value *= lNum.Value
		return rQty, nil
	}

	if lIsQty && rIsQty {
		if n.Op == lexer.Slash && rQty.Value == 0 {
			return nil, divisionByZero()
		}
		var dim dimension.Dimension
		var value float64
		if n.Op == lexer.Star {
			dim = dimension.Add(lQty.Dim, rQty.Dim)
			value = lQty.Value * rQty.Value
		} else {
			dim = dimension.Sub(lQty.Dim, rQty.Dim)
			value = lQty.Value / rQty.Value
		}
		return Quantity{
			Value: value,
			Dim:   dim,
			Unit:  normalize.Normalize(dim, r.DisplayRegistry(), compoundFallback(lQty.Unit, rQty.Unit, n.Op)),
		}, nil
	}

	return nil, invalidOperands("'*'/'/ ' require numbers and/or quantities")
}

func compoundFallback(left, right string, op lexer.Kind) string {
	if op == lexer.Star {
		return left + "*" + right
	}
	return left + "/" + right
}

func evalPow(n *ast.Binary, r Resolver) (Value, error) {
	left, err := Eval(n.Left, r)
	if err != nil {
		return nil, err
	}
	right, err := Eval(n.Right, r)
	if err != nil {
		return nil, err
	}
	exp, ok := right.(Number)
	if !ok {
		return nil, invalidOperand("'^' requires a numeric exponent")
	}

	switch base := left.(type) {
	case Number:
		return Number{Value: math.Pow(base.Value, exp.Value)}, nil
	case Quantity:
		rounded := math.Round(exp.Value)
		if math.Abs(exp.Value-rounded) < 1e-9 {
			dim := dimension.Pow(base.Dim, int(rounded))
			value := math.Pow(base.Value, exp.Value)
			return Quantity{
				Value: value,
				Dim:   dim,
				Unit:  normalize.Normalize(dim, r.DisplayRegistry(), base.Unit+"^"+exp.String()),
			}, nil
		}
		dim, err := dimension.PowFloat(base.Dim, exp.Value)
		if err != nil {
			return nil, err
		}
		value := math.Pow(base.Value, exp.Value)
		return Quantity{
			Value: value,
			Dim:   dim,
			Unit:  normalize.Normalize(dim, r.DisplayRegistry(), base.Unit+"^"+exp.String()),
		}, nil
	default:
		return nil, invalidOperand("'^' requires a number or quantity base")
	}
}

func evalOrder(n *ast.Binary, r Resolver) (Value, error) {
	left, err := Eval(n.Left, r)
	if err != nil {
		return nil, err
	}
	right, err := Eval(n.Right, r)
	if err != nil {
		return nil, err
	}

	var l, rv float64
	switch a := left.(type) {
	case Number:
		b, ok := right.(Number)
		if !ok {
			return nil, invalidOperands("comparison operands must both be numbers or both be quantities")
		}
		l, rv = a.Value, b.Value
	case Quantity:
		b, ok := right.(Quantity)
		if !ok {
			return nil, invalidOperands("comparison operands must both be numbers or both be quantities")
		}
		if !a.Dim.Eql(b.Dim) {
			return nil, invalidOperands("mismatched dimensions")
		}
		l, rv = a.Value, b.Value
	default:
		return nil, invalidOperand("comparison requires numbers or quantities")
	}

	switch n.Op {
	case lexer.Greater:
		return Boolean{Value: l > rv}, nil
	case lexer.GreaterEqual:
		return Boolean{Value: l >= rv}, nil
	case lexer.Less:
		return Boolean{Value: l < rv}, nil
	case lexer.LessEqual:
		return Boolean{Value: l <= rv}, nil
	default:
		return nil, unsupportedOperator(n.Op)
	}
}

// evalEquality implements "=="/"=" (wantEqual true) and "!=" (false),
// per-variant per spec.md §4.7: nil-nil, number-number (IEEE), boolean-
// boolean, quantity-quantity (identical dim AND identical canonical
// value).
func evalEquality(n *ast.Binary, r Resolver, wantEqual bool) (Value, error) {
	left, err := Eval(n.Left, r)
	if err != nil {
		return nil, err
	}
	right, err := Eval(n.Right, r)
	if err != nil {
		return nil, err
	}

	var eq bool
	switch a := left.(type) {
	case Nil:
		_, ok := right.(Nil)
		eq = ok
	case Number:
		b, ok := right.(Number)
		eq = ok && a.Value == b.Value
	case Boolean:
		b, ok := right.(Boolean)
		eq = ok && a.Value == b.Value
	case Quantity:
		b, ok := right.(Quantity)
		eq = ok && a.Dim.Eql(b.Dim) && a.Value == b.Value
	default:
		eq = false
	}

	if !wantEqual {
		eq = !eq
	}
	return Boolean{Value: eq}, nil
}

func evalDisplay(n *ast.Display, r Resolver) (Value, error) {
	childVal, err := Eval(n.Child, r)
	if err != nil {
		return nil, err
	}
	q, ok := childVal.(Quantity)
	if !ok {
		return nil, invalidOperand("'as' requires a quantity operand")
	}

	mode := "none"
	if n.HasMode {
		switch n.Mode {
		case "auto", "scientific", "engineering", "none":
			mode = n.Mode
		default:
			mode = "none"
		}
	}

	if term, ok := n.Unit.(*ast.UnitTerm); ok && term.Exp == 1 {
		target, ok := r.Resolve(term.Name)
		if !ok {
			return nil, undefinedVariable(term.Name)
		}
		if !target.Dim.Eql(q.Dim) {
			return nil, invalidOperands("mismatched dimensions in 'as' clause")
		}
		return Quantity{
			Value:   target.FromCanonical(q.Value),
			Dim:     q.Dim,
			Unit:    term.Name,
			Mode:    mode,
			IsDelta: q.IsDelta,
		}, nil
	}

	target, err := evalUnitExpr(n.Unit, r)
	if err != nil {
		return nil, err
	}
	if !target.Dim.Eql(q.Dim) {
		return nil, invalidOperands("mismatched dimensions in 'as' clause")
	}
	if target.Value == 0 {
		return nil, divisionByZero()
	}
	return Quantity{
		Value:   q.Value / target.Value,
		Dim:     q.Dim,
		Unit:    n.Unit.String(),
		Mode:    mode,
		IsDelta: q.IsDelta,
	}, nil
}

func evalAssignment(n *ast.Assignment, r Resolver) (Value, error) {
	val, err := Eval(n.Child, r)
	if err != nil {
		return nil, err
	}
	q, ok := val.(Quantity)
	if !ok {
		return nil, invalidOperand("assignment requires a quantity right-hand side")
	}
	r.Define(n.Name, q.Dim, q.Value)
	return q, nil
}
