package eval

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimlang/dim/internal/catalog"
	"github.com/dimlang/dim/internal/constants"
	"github.com/dimlang/dim/internal/dimension"
	"github.com/dimlang/dim/internal/parser"
	"github.com/dimlang/dim/internal/registry"
	"github.com/dimlang/dim/internal/unit"
)

// fakeResolver wires every built-in registry plus a constants table
// together for testing, standing in for the engine driver's full
// cross-registry resolution (constants -> SI -> Imperial -> CGS ->
// Industrial, per spec.md §4.3's fixed order).
type fakeResolver struct {
	registries []*registry.Registry
	si         *registry.Registry
	constants  *constants.Table
}

func newFakeResolver() *fakeResolver {
	si := catalog.SI()
	return &fakeResolver{
		registries: []*registry.Registry{si, catalog.Imperial(), catalog.CGS(), catalog.Industrial()},
		si:         si,
		constants:  constants.New(),
	}
}

func (f *fakeResolver) ResolveExact(sym string) (unit.Unit, bool) {
	if u, ok := f.constants.Get(sym); ok {
		return u, true
	}
	for _, r := range f.registries {
		if u, ok := r.FindExact(sym); ok {
			return u, true
		}
	}
	return unit.Unit{}, false
}

func (f *fakeResolver) Resolve(sym string) (unit.Unit, bool) {
	if u, ok := f.ResolveExact(sym); ok {
		return u, true
	}
	for _, r := range f.registries {
		if u, ok := r.Find(sym); ok {
			return u, true
		}
	}
	return unit.Unit{}, false
}

func (f *fakeResolver) Define(name string, dim dimension.Dimension, canonicalValue float64) {
	f.constants.Define(name, unit.Unit{Dim: dim, Scale: canonicalValue})
}

func (f *fakeResolver) DisplayRegistry() *registry.Registry { return f.si }

func evalSrc(t *testing.T, r Resolver, src string) Value {
	t.Helper()
	expr, err := parser.Parse(src)
	require.NoError(t, err)
	val, err := Eval(expr, r)
	require.NoError(t, err)
	return val
}

func TestAddSameDimension(t *testing.T) {
	r := newFakeResolver()
	v := evalSrc(t, r, "2 m + 3 m")
	q, ok := v.(Quantity)
	require.True(t, ok)
	assert.InDelta(t, 5.0, q.Value, 1e-9)
}

func TestCelsiusToFahrenheit(t *testing.T) {
	r := newFakeResolver()
	v := evalSrc(t, r, "100 C as F")
	q, ok := v.(Quantity)
	require.True(t, ok)
	assert.InDelta(t, 212.0, q.Value, 1e-9)
}

func TestBarToPascalScientificMode(t *testing.T) {
	r := newFakeResolver()
	v := evalSrc(t, r, "1 bar as Pa : scientific")
	q, ok := v.(Quantity)
	require.True(t, ok)
	assert.InDelta(t, 1e5, q.Value, 1e-6)
	assert.Equal(t, "scientific", q.Mode)
}

func TestConstantDefinitionThenConversion(t *testing.T) {
	r := newFakeResolver()
	exprs, err := parser.ParseProgram("d = (24 h)")
	require.NoError(t, err)
	_, err = Eval(exprs[0], r)
	require.NoError(t, err)

	v := evalSrc(t, r, "1000000 s as d")
	q, ok := v.(Quantity)
	require.True(t, ok)
	assert.InDelta(t, 11.574, q.Value, 1e-3)
}

func TestFractionalPowerReducesDimension(t *testing.T) {
	r := newFakeResolver()
	v := evalSrc(t, r, "(16 m^2)^0.5")
	q, ok := v.(Quantity)
	require.True(t, ok)
	assert.InDelta(t, 4.0, q.Value, 1e-9)
	assert.True(t, q.Dim.Eql(dimension.Basis(dimension.Length)))
}

func TestFractionalPowerWithNonIntegerDimensionFails(t *testing.T) {
	r := newFakeResolver()
	expr, err := parser.Parse("(2 m)^0.5")
	require.NoError(t, err)
	_, err = Eval(expr, r)
	require.ErrorIs(t, err, ErrNonIntegerDim)
}

func TestQuantityMultiplicationProducesCompoundDimension(t *testing.T) {
	r := newFakeResolver()
	v := evalSrc(t, r, "2 m * 3 m")
	q, ok := v.(Quantity)
	require.True(t, ok)
	assert.InDelta(t, 6.0, q.Value, 1e-9)
	assert.True(t, q.Dim.Eql(dimension.Pow(dimension.Basis(dimension.Length), 2)))
}

func TestQuantityDivisionProducesVelocity(t *testing.T) {
	r := newFakeResolver()
	v := evalSrc(t, r, "5 m / 2 s")
	q, ok := v.(Quantity)
	require.True(t, ok)
	assert.InDelta(t, 2.5, q.Value, 1e-9)
	expectedDim := dimension.Sub(dimension.Basis(dimension.Length), dimension.Basis(dimension.Time))
	assert.True(t, q.Dim.Eql(expectedDim))
}

func TestMismatchedDimensionAdditionFails(t *testing.T) {
	r := newFakeResolver()
	expr, err := parser.Parse("2 m + 3 s")
	require.NoError(t, err)
	_, err = Eval(expr, r)
	require.ErrorIs(t, err, ErrInvalidOperands)
}

func TestDivisionByZeroNumeric(t *testing.T) {
	r := newFakeResolver()
	expr, err := parser.Parse("1 / 0")
	require.NoError(t, err)
	_, err = Eval(expr, r)
	require.ErrorIs(t, err, ErrDivisionByZero)
}

func TestUndefinedUnitFails(t *testing.T) {
	r := newFakeResolver()
	expr, err := parser.Parse("1 zorp")
	require.NoError(t, err)
	_, err = Eval(expr, r)
	require.ErrorIs(t, err, ErrUndefinedVariable)
}

func TestEqualityOnQuantitiesComparesCanonicalValue(t *testing.T) {
	r := newFakeResolver()
	expr, err := parser.Parse("1 m == 100 cm")
	require.NoError(t, err)
	v, err := Eval(expr, r)
	require.NoError(t, err)
	b, ok := v.(Boolean)
	require.True(t, ok)
	assert.True(t, b.Value)
}

func TestUnaryNegationOnQuantity(t *testing.T) {
	r := newFakeResolver()
	v := evalSrc(t, r, "-5 m/s")
	q, ok := v.(Quantity)
	require.True(t, ok)
	assert.InDelta(t, -5.0, q.Value, 1e-9)
}

func TestTruthySanityForNumber(t *testing.T) {
	assert.True(t, truthy(Number{Value: 1}))
	assert.False(t, truthy(Number{Value: 0}))
	assert.False(t, truthy(Nil{}))
}

func TestPowerIntegerExponentOnQuantity(t *testing.T) {
	r := newFakeResolver()
	v := evalSrc(t, r, "(2 m) ^ 3")
	q, ok := v.(Quantity)
	require.True(t, ok)
	assert.InDelta(t, math.Pow(2, 3), q.Value, 1e-9)
	assert.True(t, q.Dim.Eql(dimension.Pow(dimension.Basis(dimension.Length), 3)))
}
