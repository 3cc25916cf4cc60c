package eval

import (
	"errors"
	"fmt"

	"github.com/dimlang/dim/internal/dimension"
)

// Sentinel error kinds, per spec.md §7. Runtime errors returned by Eval
// wrap one of these with errors.Is-compatible %w so callers can branch on
// kind without string matching.
var (
	ErrUndefinedVariable  = errors.New("undefined variable")
	ErrInvalidOperand     = errors.New("invalid operand")
	ErrInvalidOperands    = errors.New("invalid operands")
	ErrDivisionByZero     = errors.New("division by zero")
	ErrUnsupportedOperator = errors.New("unsupported operator")
)

// ErrNonIntegerDim re-exports dimension.ErrNonIntegerDim so callers in
// this package never need to import internal/dimension just to compare
// errors.
var ErrNonIntegerDim = dimension.ErrNonIntegerDim

func undefinedVariable(name string) error {
	return fmt.Errorf("%w: %s", ErrUndefinedVariable, name)
}

func invalidOperand(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidOperand, msg)
}

func invalidOperands(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidOperands, msg)
}

func divisionByZero() error {
	return fmt.Errorf("%w", ErrDivisionByZero)
}

func unsupportedOperator(op fmt.Stringer) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedOperator, op)
}
