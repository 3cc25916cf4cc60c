package catalog

import (
	"github.com/dimlang/dim/internal/dimension"
	"github.com/dimlang/dim/internal/registry"
	"github.com/dimlang/dim/internal/unit"
)

// CGS builds the registry of centimeter-gram-second units used in older
// physics and chemistry literature.
func CGS() *registry.Registry {
	r := registry.New("CGS")

	cm := unit.New("cm", dimension.Basis(dimension.Length), 0.01)
	gram := unit.New("g", dimension.Basis(dimension.Mass), 0.001)
	second := unit.New("s", dimension.Basis(dimension.Time), 1)

	erg := unit.New("erg", dimension.New(2, 1, -2, 0, 0, 0, 0), 1e-7)
	dyne := unit.New("dyn", dimension.New(1, 1, -2, 0, 0, 0, 0), 1e-5)
	gauss := unit.New("G", dimension.New(0, 1, -2, -1, 0, 0, 0), 1e-4)
	poise := unit.New("P", dimension.New(-1, 1, -1, 0, 0, 0, 0), 0.1)
	gal := unit.New("Gal", dimension.New(1, 0, -2, 0, 0, 0, 0), 0.01)

	for _, u := range []unit.Unit{cm, gram, second, erg, dyne, gauss, poise, gal} {
		r.AddUnit(u)
	}

	r.AddAlias("dyne", "dyn")
	r.AddAlias("gauss", "G")
	r.AddAlias("poise", "P")

	return r
}
