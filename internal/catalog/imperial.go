package catalog

import (
	"github.com/dimlang/dim/internal/dimension"
	"github.com/dimlang/dim/internal/registry"
	"github.com/dimlang/dim/internal/unit"
)

// Imperial builds the registry of US customary / imperial units: length,
// mass, volume, and the Fahrenheit-adjacent units a calculator's users
// reach for alongside SI.
func Imperial() *registry.Registry {
	r := registry.New("Imperial")

	inch := unit.New("in", dimension.Basis(dimension.Length), 0.0254)
	foot := unit.New("ft", dimension.Basis(dimension.Length), 0.3048)
	yard := unit.New("yd", dimension.Basis(dimension.Length), 0.9144)
	mile := unit.New("mi", dimension.Basis(dimension.Length), 1609.344)

	pound := unit.New("lb", dimension.Basis(dimension.Mass), 0.45359237)
	ounce := unit.New("oz", dimension.Basis(dimension.Mass), 0.028349523125)
	stone := unit.New("st", dimension.Basis(dimension.Mass), 6.35029318)

	gallon := unit.New("gal", dimension.Pow(dimension.Basis(dimension.Length), 3), 0.00454609)
	quart := unit.New("qt", dimension.Pow(dimension.Basis(dimension.Length), 3), 0.00454609/4)
	pint := unit.New("pt", dimension.Pow(dimension.Basis(dimension.Length), 3), 0.00454609/8)
	flOz := unit.New("floz", dimension.Pow(dimension.Basis(dimension.Length), 3), 0.0000284130625)

	for _, u := range []unit.Unit{inch, foot, yard, mile, pound, ounce, stone, gallon, quart, pint, flOz} {
		r.AddUnit(u)
	}

	// Fahrenheit is only affine-meaningful at exponent 1.
	r.AddUnit(unit.NewAffine("F", dimension.Basis(dimension.Temperature), fahrenheitScale, fahrenheitOffset))
	r.AddAlias("degF", "F")

	r.AddAlias("inch", "in")
	r.AddAlias("inches", "in")
	r.AddAlias("foot", "ft")
	r.AddAlias("feet", "ft")
	r.AddAlias("yard", "yd")
	r.AddAlias("mile", "mi")
	r.AddAlias("miles", "mi")
	r.AddAlias("pound", "lb")
	r.AddAlias("pounds", "lb")
	r.AddAlias("ounce", "oz")
	r.AddAlias("stone", "st")
	r.AddAlias("gallon", "gal")
	r.AddAlias("quart", "qt")
	r.AddAlias("pint", "pt")

	return r
}
