package registry

import (
	"testing"

	"github.com/dimlang/dim/internal/dimension"
	"github.com/dimlang/dim/internal/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindExactDoesNotExpandPrefixes(t *testing.T) {
	r := New("test")
	r.AddUnit(unit.New("m", dimension.Basis(dimension.Length), 1))
	r.AddPrefix("k", 1000)

	_, ok := r.FindExact("km")
	assert.False(t, ok, "FindExact must not apply prefix expansion")

	u, ok := r.Find("km")
	require.True(t, ok)
	assert.Equal(t, 1000.0, u.Scale)
	assert.Equal(t, "km", u.Symbol)
}

func TestFindExactResolvesAlias(t *testing.T) {
	r := New("test")
	r.AddUnit(unit.New("N", dimension.New(1, 1, -2, 0, 0, 0, 0), 1))
	r.AddAlias("Newton", "N")

	u, ok := r.FindExact("Newton")
	require.True(t, ok)
	assert.Equal(t, "Newton", u.Symbol)
	assert.Equal(t, 1.0, u.Scale)
}

func TestPrefixExpansionScale(t *testing.T) {
	r := New("test")
	base := unit.New("i", dimension.Basis(dimension.Length), 0.0254)
	r.AddUnit(base)
	r.AddPrefix("m", 0.001)

	u, ok := r.Find("mi")
	require.True(t, ok)
	assert.InDelta(t, base.Scale*0.001, u.Scale, 1e-15)
}

func TestFindMissingSymbol(t *testing.T) {
	r := New("test")
	_, ok := r.Find("bogus")
	assert.False(t, ok)
}
