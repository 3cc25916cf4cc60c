package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimlang/dim/internal/eval"
)

func TestEvalSimpleArithmetic(t *testing.T) {
	d := New()
	out, err := d.Eval("2 m + 3 m")
	require.NoError(t, err)
	assert.Equal(t, "5 m", out)
}

func TestEvalCelsiusToFahrenheit(t *testing.T) {
	d := New()
	out, err := d.Eval("100 C as F")
	require.NoError(t, err)
	assert.Equal(t, "212 F", out)
}

func TestEvalBarToPascalScientific(t *testing.T) {
	d := New()
	out, err := d.Eval("1 bar as Pa : scientific")
	require.NoError(t, err)
	assert.Equal(t, "1.000e5 Pa", out)
}

func TestEvalAssignmentThenConversion(t *testing.T) {
	d := New()
	_, err := d.Eval("d = (24 h)")
	require.NoError(t, err)
	out, err := d.Eval("1000000 s as d")
	require.NoError(t, err)
	assert.Contains(t, out, "11.574074074074074")
}

func TestDefineExprRewritesToAssignment(t *testing.T) {
	d := New()
	err := d.DefineExpr("workday", "8 h")
	require.NoError(t, err)

	u, ok := d.constants.Get("workday")
	require.True(t, ok)
	assert.InDelta(t, 8*3600, u.Scale, 1e-9)
}

func TestUndefinedVariableWrapsRuntimeError(t *testing.T) {
	d := New()
	_, err := d.Eval("1 zorp")
	require.Error(t, err)
	assert.ErrorIs(t, err, eval.ErrUndefinedVariable)
}

func TestParseErrorIsWrapped(t *testing.T) {
	d := New()
	_, err := d.Eval("2 +")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParse))
}

func TestListShowClearCommands(t *testing.T) {
	d := New()
	_, err := d.Eval("d = (24 h)")
	require.NoError(t, err)

	listed := d.List()
	require.Len(t, listed, 1)
	assert.Contains(t, listed[0], "d:")

	out, err := d.Eval("show d")
	require.NoError(t, err)
	assert.Contains(t, out, "d:")

	out, err = d.Eval("list")
	require.NoError(t, err)
	assert.Contains(t, out, "d:")

	out, err = d.Eval("clear d")
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Empty(t, d.List())
}

func TestClearAllCommand(t *testing.T) {
	d := New()
	_, err := d.Eval("a = (1 m)")
	require.NoError(t, err)
	_, err = d.Eval("b = (2 m)")
	require.NoError(t, err)
	require.Len(t, d.List(), 2)

	out, err := d.Eval("clear all")
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Empty(t, d.List())
}

func TestShowUndefinedNameErrors(t *testing.T) {
	d := New()
	_, err := d.Eval("show nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, eval.ErrUndefinedVariable)
}

func TestEmptyInputIsNoop(t *testing.T) {
	d := New()
	out, err := d.Eval("   ")
	require.NoError(t, err)
	assert.Equal(t, "", out)
}
