// Package catalog populates the built-in registries — SI, Imperial, CGS,
// and Industrial — consulted by the driver in the fixed order spec.md §4.3
// requires.
package catalog

import (
	"math"

	"github.com/dimlang/dim/internal/dimension"
	"github.com/dimlang/dim/internal/registry"
	"github.com/dimlang/dim/internal/unit"
)

// celsiusOffset is the additive offset (in kelvin) that makes
// (v + offset) * 1 a canonical kelvin value for a Celsius input.
const celsiusOffset = 273.15

// fahrenheitOffset and fahrenheitScale jointly convert a Fahrenheit value
// into kelvin via canonical = (v + offset) * scale.
const (
	fahrenheitScale  = 5.0 / 9.0
	fahrenheitOffset = 459.67
)

// SI builds the registry of SI base units, common SI-derived units,
// decimal and binary prefixes, and aliases (e.g. "Newton" -> "N").
func SI() *registry.Registry {
	r := registry.New("SI")

	meter := unit.New("m", dimension.Basis(dimension.Length), 1)
	kilogram := unit.New("kg", dimension.Basis(dimension.Mass), 1)
	second := unit.New("s", dimension.Basis(dimension.Time), 1)
	ampere := unit.New("A", dimension.Basis(dimension.Current), 1)
	kelvin := unit.New("K", dimension.Basis(dimension.Temperature), 1)
	mole := unit.New("mol", dimension.Basis(dimension.Amount), 1)
	candela := unit.New("cd", dimension.Basis(dimension.Luminosity), 1)

	for _, u := range []unit.Unit{meter, kilogram, second, ampere, kelvin, mole, candela} {
		r.AddUnit(u)
	}

	// gram is the registered base for mass prefixing (kg already carries a
	// kilo prefix baked into its symbol per SI convention).
	gram := unit.New("g", dimension.Basis(dimension.Mass), 0.001)
	r.AddUnit(gram)

	newton := unit.New("N", kilogram.Mul(meter).Div(second.Pow(2)).Dim, 1)
	joule := unit.New("J", newton.Mul(meter).Dim, 1)
	watt := unit.New("W", joule.Div(second).Dim, 1)
	pascal := unit.New("Pa", newton.Div(meter.Pow(2)).Dim, 1)
	hertz := unit.New("Hz", second.Pow(-1).Dim, 1)
	// Coulomb has no short symbol registered here: "C" is reserved for
	// Celsius in this registry (spec.md scenario 2, "100 C as F"), so the
	// charge unit is only reachable through its full name.
	coulomb := unit.New("Coulomb", ampere.Mul(second).Dim, 1)
	volt := unit.New("V", watt.Div(ampere).Dim, 1)
	// Farad has no short symbol registered here either: "F" is reserved for
	// Fahrenheit, so capacitance is only reachable through its full name.
	farad := unit.New("Farad", coulomb.Div(volt).Dim, 1)
	ohm := unit.New("Ohm", volt.Div(ampere).Dim, 1)
	weber := unit.New("Wb", volt.Mul(second).Dim, 1)
	tesla := unit.New("T", weber.Div(meter.Pow(2)).Dim, 1)
	henry := unit.New("H", weber.Div(ampere).Dim, 1)
	siemens := unit.New("S", ampere.Div(volt).Dim, 1)

	for _, u := range []unit.Unit{newton, joule, watt, pascal, hertz, coulomb, volt, farad, ohm, weber, tesla, henry, siemens} {
		r.AddUnit(u)
	}

	r.AddAlias("Newton", "N")
	r.AddAlias("Joule", "J")
	r.AddAlias("Watt", "W")
	r.AddAlias("Pascal", "Pa")
	r.AddAlias("Hertz", "Hz")
	r.AddAlias("Volt", "V")
	r.AddAlias("Weber", "Wb")
	r.AddAlias("Tesla", "T")
	r.AddAlias("Henry", "H")
	r.AddAlias("Siemens", "S")
	r.AddAlias("Ω", "Ohm")

	// Celsius is only affine-meaningful at exponent 1 (unit.Pow drops the
	// offset otherwise). Fahrenheit lives in the Imperial registry.
	r.AddUnit(unit.NewAffine("C", dimension.Basis(dimension.Temperature), 1, celsiusOffset))
	r.AddAlias("degC", "C")

	// Non-coherent but universally used time units.
	r.AddUnit(unit.New("min", dimension.Basis(dimension.Time), 60))
	r.AddUnit(unit.New("h", dimension.Basis(dimension.Time), 3600))
	r.AddUnit(unit.New("d", dimension.Basis(dimension.Time), 86400))
	r.AddUnit(unit.New("yr", dimension.Basis(dimension.Time), 365.25*86400))

	// Radian and steradian are dimensionless in SI but kept as symbolic
	// aliases of "1" so expressions can use them without a registry miss.
	r.AddUnit(unit.New("rad", dimension.Zero, 1))
	r.AddUnit(unit.New("sr", dimension.Zero, 1))

	// Information units: bytes and bits, with both decimal and binary
	// prefixes, carried over from gurre/si's B/iB handling.
	r.AddUnit(unit.New("B", dimension.Zero, 1))
	r.AddUnit(unit.New("bit", dimension.Zero, 1.0/8))

	registerSIPrefixes(r)
	registerBinaryPrefixes(r)

	return r
}

func registerSIPrefixes(r *registry.Registry) {
	prefixes := map[string]float64{
		"Y": 1e24, "Z": 1e21, "E": 1e18, "P": 1e15,
		"T": 1e12, "G": 1e9, "M": 1e6, "k": 1e3,
		"h": 1e2, "da": 1e1,
		"d": 1e-1, "c": 1e-2, "m": 1e-3,
		"u": 1e-6, "µ": 1e-6, "μ": 1e-6,
		"n": 1e-9, "p": 1e-12, "f": 1e-15,
		"a": 1e-18, "z": 1e-21, "y": 1e-24,
	}
	for sym, factor := range prefixes {
		r.AddPrefix(sym, factor)
	}
}

func registerBinaryPrefixes(r *registry.Registry) {
	prefixes := map[string]float64{
		"Ki": math.Pow(2, 10), "Mi": math.Pow(2, 20), "Gi": math.Pow(2, 30),
		"Ti": math.Pow(2, 40), "Pi": math.Pow(2, 50), "Ei": math.Pow(2, 60),
	}
	for sym, factor := range prefixes {
		r.AddPrefix(sym, factor)
	}
}
