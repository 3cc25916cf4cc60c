package unit

import (
	"math"
	"testing"

	"github.com/dimlang/dim/internal/dimension"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCelsiusRoundTrip(t *testing.T) {
	celsius := NewAffine("C", dimension.Basis(dimension.Temperature), 1, 273.15)
	for _, v := range []float64{-40, 0, 21.5, 100, 1000} {
		canonical := celsius.ToCanonical(v)
		got := celsius.FromCanonical(canonical)
		require.InDelta(t, v, got, 1e-9)
	}
}

func TestFahrenheitToKelvin(t *testing.T) {
	// 459.67 is the offset that maps Fahrenheit into Kelvin once scaled by
	// 5/9: (212 + 459.67) * 5/9 = 373.15.
	f := NewAffine("F", dimension.Basis(dimension.Temperature), 5.0/9.0, 459.67)
	got := f.ToCanonical(212)
	assert.InDelta(t, 373.15, got, 1e-9)
}

func TestPowDropsAffineOffsetExceptAtOne(t *testing.T) {
	c := NewAffine("C", dimension.Basis(dimension.Temperature), 1, 273.15)
	one := c.Pow(1)
	assert.Equal(t, c.Offset, one.Offset)

	two := c.Pow(2)
	assert.Zero(t, two.Offset)
}

func TestMulDiv(t *testing.T) {
	meter := New("m", dimension.Basis(dimension.Length), 1)
	second := New("s", dimension.Basis(dimension.Time), 1)
	speed := meter.Div(second)
	assert.Equal(t, dimension.Sub(dimension.Basis(dimension.Length), dimension.Basis(dimension.Time)), speed.Dim)
	assert.Equal(t, "m/s", speed.Symbol)

	area := meter.Mul(meter)
	assert.Equal(t, dimension.Pow(dimension.Basis(dimension.Length), 2), area.Dim)
}

func TestWithPrefix(t *testing.T) {
	meter := New("m", dimension.Basis(dimension.Length), 1)
	km := meter.WithPrefix("km", 1000)
	assert.Equal(t, 1000.0, km.Scale)
	assert.InDelta(t, 5000.0, km.ToCanonicalFactor()*5, 1e-9)
	assert.True(t, math.Abs(km.Offset) < 1e-12)
}
