// Package format renders a quantity's canonical value and display unit
// into output text, per spec.md §4.10. It generalizes gurre/si's
// formatter_prefix.go computePrefix idiom — fixed magnitude brackets
// (1e9, 1e6, 1e3, 1, 1e-3, ...) each with a prefix symbol — into a
// registry-driven search so any catalogue's prefix set can drive "auto"
// scaling, not just a hardcoded SI table.
package format

import (
	"fmt"
	"math"
	"sort"

	"github.com/dimlang/dim/internal/registry"
)

// Mode selects how a quantity's magnitude is rendered.
type Mode string

const (
	None        Mode = "none"
	Auto        Mode = "auto"
	Scientific  Mode = "scientific"
	Engineering Mode = "engineering"
)

// ParseMode maps a user-typed mode identifier to a Mode, defaulting
// unknown strings to None per spec.md §4.6 ("unknown strings map to
// none").
func ParseMode(s string) Mode {
	switch Mode(s) {
	case Auto, Scientific, Engineering, None:
		return Mode(s)
	default:
		return None
	}
}

// Format renders value (in unitSymbol's terms) under mode, prefixing a
// "Δ" when isDelta is set. r supplies the prefix table "auto" mode
// searches for the best SI-style scale; it may be nil, in which case
// "auto" behaves like "none" with 3-decimal fixed precision.
func Format(value float64, unitSymbol string, mode Mode, isDelta bool, r *registry.Registry) string {
	delta := ""
	if isDelta {
		delta = "Δ"
	}

	switch mode {
	case Scientific:
		return fmt.Sprintf("%s%s %s", delta, scientific(value, 3), unitSymbol)
	case Engineering:
		return fmt.Sprintf("%s%s %s", delta, engineering(value, 3), unitSymbol)
	case Auto:
		prefix, factor := bestPrefix(value, r)
		return fmt.Sprintf("%s%.3f %s%s", delta, value/factor, prefix, unitSymbol)
	default:
		return fmt.Sprintf("%s%g %s", delta, value, unitSymbol)
	}
}

// scientific renders value as "m.mmmeN" with the given mantissa
// precision.
func scientific(value float64, precision int) string {
	if value == 0 {
		return fmt.Sprintf("%.*fe0", precision, 0.0)
	}
	exp := int(math.Floor(math.Log10(math.Abs(value))))
	mantissa := value / math.Pow(10, float64(exp))
	// Rounding can carry the mantissa to 10.000; renormalize.
	scale := math.Pow(10, float64(precision))
	mantissa = math.Round(mantissa*scale) / scale
	if math.Abs(mantissa) >= 10 {
		mantissa /= 10
		exp++
	}
	return fmt.Sprintf("%.*fe%d", precision, mantissa, exp)
}

// engineering renders value as "m.mmmeN" where N is a multiple of 3.
func engineering(value float64, precision int) string {
	if value == 0 {
		return fmt.Sprintf("%.*fe0", precision, 0.0)
	}
	exp := int(math.Floor(math.Log10(math.Abs(value))))
	eng := exp - (((exp % 3) + 3) % 3)
	mantissa := value / math.Pow(10, float64(eng))
	if math.Abs(mantissa) >= 1000 {
		mantissa /= 1000
		eng += 3
	}
	return fmt.Sprintf("%.*fe%d", precision, mantissa, eng)
}

type prefixCandidate struct {
	symbol string
	factor float64
}

// bestPrefix finds the decimal (power-of-ten) prefix in r that scales
// abs(value) into [1, 1000), preferring the unscaled unit (factor 1)
// when it already fits. Binary prefixes (Ki, Mi, ...) are excluded —
// "auto" is specified as an SI-prefix search, not a binary one.
func bestPrefix(value float64, r *registry.Registry) (string, float64) {
	av := math.Abs(value)
	candidates := []prefixCandidate{{"", 1}}
	if r != nil {
		for sym, p := range r.Prefixes() {
			if isDecimalPowerOfTen(p.Factor) {
				candidates = append(candidates, prefixCandidate{sym, p.Factor})
			}
		}
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].factor > candidates[j].factor })

	if av == 0 {
		return "", 1
	}
	if av >= 1 && av < 1000 {
		return "", 1
	}
	for _, c := range candidates {
		scaled := av / c.factor
		if scaled >= 1 && scaled < 1000 {
			return c.symbol, c.factor
		}
	}
	// Nothing brought it into [1, 1000); fall back to unscaled.
	return "", 1
}

func isDecimalPowerOfTen(factor float64) bool {
	if factor <= 0 {
		return false
	}
	e := math.Log10(factor)
	return math.Abs(e-math.Round(e)) < 1e-9
}
