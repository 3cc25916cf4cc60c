// Package unit models a named conversion to canonical (SI) form: a
// dimension, a multiplicative scale, an additive offset for affine scales
// (Celsius, Fahrenheit), and a display symbol.
package unit

import (
	"fmt"

	"github.com/dimlang/dim/internal/dimension"
)

// Unit is a named conversion to canonical form. The conversion contract is
//
//	canonical = (v + Offset) * Scale
//	v         = canonical/Scale - Offset
//
// For Offset != 0 the unit is affine (e.g. Celsius, Fahrenheit) and is only
// meaningful at exponent 1; at any other exponent the offset is ignored and
// the unit behaves purely multiplicatively.
type Unit struct {
	Dim    dimension.Dimension
	Scale  float64
	Offset float64
	Symbol string
}

// New builds a purely multiplicative unit (Offset 0).
func New(symbol string, dim dimension.Dimension, scale float64) Unit {
	return Unit{Dim: dim, Scale: scale, Symbol: symbol}
}

// NewAffine builds a unit with a non-zero additive offset, meaningful only
// at exponent 1 (see IsAffine).
func NewAffine(symbol string, dim dimension.Dimension, scale, offset float64) Unit {
	return Unit{Dim: dim, Scale: scale, Offset: offset, Symbol: symbol}
}

// IsAffine reports whether the unit carries a non-zero offset.
func (u Unit) IsAffine() bool {
	return u.Offset != 0
}

// ToCanonical converts a value expressed in u to its canonical (SI)
// magnitude, honoring the affine offset.
func (u Unit) ToCanonical(v float64) float64 {
	return (v + u.Offset) * u.Scale
}

// FromCanonical converts a canonical (SI) magnitude back into u's scale,
// honoring the affine offset.
func (u Unit) FromCanonical(c float64) float64 {
	return c/u.Scale - u.Offset
}

// ToCanonicalFactor returns the purely multiplicative canonical factor for
// this unit, ignoring any affine offset. This is the correct conversion to
// use whenever the unit does not stand alone at exponent 1 — inside a
// compound unit expression, or raised to any power other than 1.
func (u Unit) ToCanonicalFactor() float64 {
	return u.Scale
}

// WithPrefix returns a synthetic unit scaled by a prefix factor. The base
// unit's offset is preserved (affine semantics are resolved by the caller
// based on context, per the affine-only-at-exponent-1 rule); the symbol
// reports the caller-supplied combined name.
func (u Unit) WithPrefix(symbol string, factor float64) Unit {
	return Unit{
		Dim:    u.Dim,
		Scale:  u.Scale * factor,
		Offset: u.Offset,
		Symbol: symbol,
	}
}

// Pow raises a unit to an integer power. Per the affine-only-at-exponent-1
// rule, any offset is dropped unless exp == 1.
func (u Unit) Pow(exp int) Unit {
	r := Unit{
		Dim:    dimension.Pow(u.Dim, exp),
		Scale:  ipow(u.Scale, exp),
		Symbol: fmt.Sprintf("%s^%d", u.Symbol, exp),
	}
	if exp == 1 {
		r.Offset = u.Offset
		r.Symbol = u.Symbol
	}
	return r
}

func ipow(base float64, exp int) float64 {
	neg := exp < 0
	if neg {
		exp = -exp
	}
	result := 1.0
	for i := 0; i < exp; i++ {
		result *= base
	}
	if neg {
		return 1 / result
	}
	return result
}

// Mul multiplies two units multiplicatively (affine offsets are always
// dropped in a compound unit, per the affine-only-at-exponent-1 rule).
func (u Unit) Mul(v Unit) Unit {
	return Unit{
		Dim:    dimension.Add(u.Dim, v.Dim),
		Scale:  u.Scale * v.Scale,
		Symbol: u.Symbol + "*" + v.Symbol,
	}
}

// Div divides two units multiplicatively.
func (u Unit) Div(v Unit) Unit {
	return Unit{
		Dim:    dimension.Sub(u.Dim, v.Dim),
		Scale:  u.Scale / v.Scale,
		Symbol: u.Symbol + "/" + v.Symbol,
	}
}
