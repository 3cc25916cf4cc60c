// Package normalize turns a Dimension into a short, human-readable unit
// symbol, consulting a single registry's units, aliases, and basis
// vectors. It replaces the ad hoc per-unit special casing gurre/si's
// formatter carried (hardcoded horsepower/thermal branches) with one
// general reduction algorithm, per spec.md §4.9.
package normalize

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dimlang/dim/internal/dimension"
	"github.com/dimlang/dim/internal/registry"
)

// priority breaks ties among equally-reducing derived units, in the
// order spec.md §4.9 lists.
var priority = []string{"N", "J", "W", "Pa", "m/s²", "m/s", "m²", "m³"}

// defaultBasis is used when the registry carries no scale-1,
// single-axis unit for some axis.
var defaultBasis = [...]string{"m", "kg", "s", "A", "K", "mol", "cd"}

// Normalize reduces d to a symbol using r. fallback is returned verbatim
// when d is the dimensionless identity.
func Normalize(d dimension.Dimension, r *registry.Registry, fallback string) string {
	if d.IsZero() {
		return fallback
	}

	if sym, ok := aliasFor(d, r); ok {
		return sym
	}

	if sym, ok := exactScaleOneUnit(d, r); ok {
		return sym
	}
	sameDimFallback, haveSameDimFallback := anySameDimensionUnit(d, r)

	remaining := d
	var chosen string
	if sym, reduced, ok := bestDerivedReduction(d, r); ok {
		chosen = sym
		remaining = reduced
	}

	composed := composeFromBasis(remaining, r)
	if chosen == "" && composed == "" {
		if haveSameDimFallback {
			return sameDimFallback
		}
		return fallback
	}
	if chosen == "" {
		return composed
	}
	if composed == "" {
		return chosen
	}
	return chosen + "*" + composed
}

func aliasFor(d dimension.Dimension, r *registry.Registry) (string, bool) {
	aliases := r.Aliases()
	keys := make([]string, 0, len(aliases))
	for alias := range aliases {
		keys = append(keys, alias)
	}
	sort.Strings(keys)

	for _, alias := range keys {
		canonical := aliases[alias]
		u, ok := r.Units()[canonical]
		if ok && u.Dim.Eql(d) {
			return alias, true
		}
	}
	return "", false
}

func exactScaleOneUnit(d dimension.Dimension, r *registry.Registry) (string, bool) {
	symbols := sortedUnitSymbols(r)
	for _, sym := range symbols {
		u := r.Units()[sym]
		if u.Scale == 1.0 && u.Dim.Eql(d) {
			return sym, true
		}
	}
	return "", false
}

func anySameDimensionUnit(d dimension.Dimension, r *registry.Registry) (string, bool) {
	symbols := sortedUnitSymbols(r)
	for _, sym := range symbols {
		u := r.Units()[sym]
		if u.Dim.Eql(d) {
			return sym, true
		}
	}
	return "", false
}

// bestDerivedReduction picks the scale-1 unit spanning two or more axes
// whose subtraction from d reduces complexity the most, per spec.md §4.9
// step 3. Single-axis units (base units, and inverses such as Hz = s^-1)
// are left to composeFromBasis, so a velocity reads "m/s", not "Hz*m".
func bestDerivedReduction(d dimension.Dimension, r *registry.Registry) (symbol string, remaining dimension.Dimension, ok bool) {
	symbols := sortedUnitSymbols(r)
	baseComplexity := dimension.Complexity(d)

	bestReduction := 0
	bestSymbol := ""
	bestRemaining := d
	bestPriority := len(priority)

	for _, sym := range symbols {
		u := r.Units()[sym]
		if u.Scale != 1.0 || isSingleAxis(u.Dim) {
			continue
		}
		reduced := dimension.Sub(d, u.Dim)
		reduction := baseComplexity - dimension.Complexity(reduced)
		if reduction <= 0 {
			continue
		}

		p := priorityRank(sym)
		switch {
		case reduction > bestReduction:
			bestReduction, bestSymbol, bestRemaining, bestPriority = reduction, sym, reduced, p
		case reduction == bestReduction && p < bestPriority:
			bestSymbol, bestRemaining, bestPriority = sym, reduced, p
		case reduction == bestReduction && p == bestPriority && sym < bestSymbol:
			bestSymbol, bestRemaining = sym, reduced
		}
	}

	if bestSymbol == "" {
		return "", d, false
	}
	return bestSymbol, bestRemaining, true
}

func priorityRank(symbol string) int {
	for i, p := range priority {
		if p == symbol {
			return i
		}
	}
	return len(priority)
}

// isBasisDimension reports whether d has exactly one nonzero axis at
// exponent exactly 1 — the shape of a base unit (m, kg, s, ...).
func isBasisDimension(d dimension.Dimension) bool {
	nonzero := 0
	for _, exp := range d {
		if exp != 0 {
			nonzero++
			if exp != 1 {
				return false
			}
		}
	}
	return nonzero == 1
}

// isSingleAxis reports whether d has exactly one nonzero axis, at any
// exponent.
func isSingleAxis(d dimension.Dimension) bool {
	nonzero := 0
	for _, exp := range d {
		if exp != 0 {
			nonzero++
		}
	}
	return nonzero == 1
}

// basisSymbols discovers per-axis basis symbols from r (scale-1,
// single-axis units), falling back to the SI defaults for any axis the
// registry doesn't carry one for.
func basisSymbols(r *registry.Registry) []string {
	out := make([]string, len(defaultBasis))
	copy(out, defaultBasis[:])

	symbols := sortedUnitSymbols(r)
	for _, sym := range symbols {
		u := r.Units()[sym]
		if u.Scale != 1.0 || !isBasisDimension(u.Dim) {
			continue
		}
		for axis, exp := range u.Dim {
			if exp == 1 {
				out[axis] = sym
			}
		}
	}
	return out
}

func composeFromBasis(d dimension.Dimension, r *registry.Registry) string {
	if d.IsZero() {
		return ""
	}
	basis := basisSymbols(r)

	var numer, denom []string
	for axis, exp := range d {
		switch {
		case exp > 0:
			numer = append(numer, exponentTerm(basis[axis], exp))
		case exp < 0:
			denom = append(denom, exponentTerm(basis[axis], -exp))
		}
	}

	var b strings.Builder
	if len(numer) > 0 {
		b.WriteString(strings.Join(numer, "*"))
	} else if len(denom) > 0 {
		b.WriteString("1")
	}
	if len(denom) > 0 {
		b.WriteString("/")
		b.WriteString(strings.Join(denom, "*"))
	}
	return b.String()
}

func exponentTerm(symbol string, exp int) string {
	if exp == 1 {
		return symbol
	}
	return fmt.Sprintf("%s^%d", symbol, exp)
}

func sortedUnitSymbols(r *registry.Registry) []string {
	units := r.Units()
	symbols := make([]string, 0, len(units))
	for sym := range units {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)
	return symbols
}
