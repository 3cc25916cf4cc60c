// Package ast defines the tagged expression tree the parser builds and the
// evaluator walks. It is a closed set of node types — there is no
// late-bound extensibility, so a discriminated union (one interface, one
// struct per variant) is all the evaluator's pattern match needs.
package ast

import (
	"fmt"

	"github.com/dimlang/dim/internal/lexer"
)

// Expr is any node that can be evaluated to a value.
type Expr interface {
	fmt.Stringer
	exprNode()
}

// UnitExpr is any node within a unit expression (the sub-grammar parsed
// after "as" or after a bare number, e.g. "kg/d").
type UnitExpr interface {
	fmt.Stringer
	unitExprNode()
}

// Number is a numeric literal.
type Number struct{ Value float64 }

func (*Number) exprNode()        {}
func (n *Number) String() string { return fmt.Sprintf("%g", n.Value) }

// Grouping is a parenthesized sub-expression.
type Grouping struct{ Child Expr }

func (*Grouping) exprNode()        {}
func (n *Grouping) String() string { return "(" + n.Child.String() + ")" }

// Unary is a prefix operator: "-" (negate) or "!" (logical not).
type Unary struct {
	Op    lexer.Kind
	Child Expr
}

func (*Unary) exprNode() {}
func (n *Unary) String() string {
	sym := "-"
	if n.Op == lexer.Bang {
		sym = "!"
	}
	return sym + n.Child.String()
}

// Binary is an infix operator: arithmetic, comparison, or equality.
type Binary struct {
	Op    lexer.Kind
	Left  Expr
	Right Expr
}

func (*Binary) exprNode() {}
func (n *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", n.Left, n.Op, n.Right)
}

// UnitApplied is a number immediately followed by a unit expression, e.g.
// "10 C" or "5 m/s".
type UnitApplied struct {
	Value Expr
	Unit  UnitExpr
}

func (*UnitApplied) exprNode()        {}
func (n *UnitApplied) String() string { return n.Value.String() + " " + n.Unit.String() }

// Display is the "as" clause: "expr as unitExpr [: mode]".
type Display struct {
	Child   Expr
	Unit    UnitExpr
	Mode    string
	HasMode bool
}

func (*Display) exprNode() {}
func (n *Display) String() string {
	if n.HasMode {
		return fmt.Sprintf("%s as %s : %s", n.Child, n.Unit, n.Mode)
	}
	return fmt.Sprintf("%s as %s", n.Child, n.Unit)
}

// Assignment binds a constant: "name = ( expr )".
type Assignment struct {
	Name  string
	Child Expr
}

func (*Assignment) exprNode()        {}
func (n *Assignment) String() string { return fmt.Sprintf("%s = (%s)", n.Name, n.Child) }

// UnitTerm is a single unit identifier with an optional integer exponent,
// e.g. "m" or "s^-2".
type UnitTerm struct {
	Name string
	Exp  int
}

func (*UnitTerm) unitExprNode() {}
func (n *UnitTerm) String() string {
	if n.Exp == 1 {
		return n.Name
	}
	return fmt.Sprintf("%s^%d", n.Name, n.Exp)
}

// CompoundUnit is a product or quotient of two unit expressions, e.g.
// "kg/d" or "N*m".
type CompoundUnit struct {
	Op    lexer.Kind // lexer.Star or lexer.Slash
	Left  UnitExpr
	Right UnitExpr
}

func (*CompoundUnit) unitExprNode() {}
func (n *CompoundUnit) String() string {
	op := "*"
	if n.Op == lexer.Slash {
		op = "/"
	}
	return fmt.Sprintf("%s%s%s", n.Left, op, n.Right)
}
