package constants

import (
	"testing"

	"github.com/dimlang/dim/internal/dimension"
	"github.com/dimlang/dim/internal/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefineAndGet(t *testing.T) {
	tbl := New()
	q := unit.New("K", dimension.Basis(dimension.Temperature), 295.37)
	tbl.Define("roomTemp", q)

	got, ok := tbl.Get("roomTemp")
	require.True(t, ok)
	assert.Equal(t, 295.37, got.Scale)
	assert.Equal(t, "roomTemp", got.Symbol)
}

func TestRedefinePreservesOrder(t *testing.T) {
	tbl := New()
	tbl.Define("a", unit.New("x", dimension.Zero, 1))
	tbl.Define("b", unit.New("x", dimension.Zero, 2))
	tbl.Define("a", unit.New("x", dimension.Zero, 99))

	names := []string{}
	for _, e := range tbl.List() {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"a", "b"}, names)

	got, _ := tbl.Get("a")
	assert.Equal(t, 99.0, got.Scale)
}

func TestClearAndClearAll(t *testing.T) {
	tbl := New()
	tbl.Define("a", unit.New("x", dimension.Zero, 1))
	tbl.Define("b", unit.New("x", dimension.Zero, 2))

	assert.True(t, tbl.Clear("a"))
	assert.False(t, tbl.Clear("missing"))

	_, ok := tbl.Get("a")
	assert.False(t, ok)
	assert.Len(t, tbl.List(), 1)

	tbl.ClearAll()
	assert.Empty(t, tbl.List())
}
