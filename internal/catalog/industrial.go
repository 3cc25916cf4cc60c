package catalog

import (
	"github.com/dimlang/dim/internal/dimension"
	"github.com/dimlang/dim/internal/registry"
	"github.com/dimlang/dim/internal/unit"
)

// Industrial builds the registry of pressure, power, and energy units
// common in engineering contexts: bar, psi, horsepower, BTU, therm. These
// were ad hoc special cases in the teacher (gurre/si's Unit.String had an
// inline "For horsepower - specific case" branch); SPEC_FULL.md promotes
// them to first-class registry units so the normalizer can find them like
// any other derived unit.
func Industrial() *registry.Registry {
	r := registry.New("Industrial")

	pressureDim := dimension.New(-1, 1, -2, 0, 0, 0, 0)
	powerDim := dimension.New(2, 1, -3, 0, 0, 0, 0)
	energyDim := dimension.New(2, 1, -2, 0, 0, 0, 0)

	bar := unit.New("bar", pressureDim, 1e5)
	psi := unit.New("psi", pressureDim, 6894.757293168)
	atm := unit.New("atm", pressureDim, 101325)

	hp := unit.New("hp", powerDim, 745.6998715822702)

	btu := unit.New("BTU", energyDim, 1055.05585262)
	therm := unit.New("therm", energyDim, 1.05505585262e8)
	kwh := unit.New("kWh", energyDim, 3.6e6)
	cal := unit.New("cal", energyDim, 4.184)

	for _, u := range []unit.Unit{bar, psi, atm, hp, btu, therm, kwh, cal} {
		r.AddUnit(u)
	}

	r.AddAlias("horsepower", "hp")
	r.AddAlias("calorie", "cal")
	r.AddAlias("therms", "therm")

	return r
}
