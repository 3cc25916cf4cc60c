// Package engine binds every lower layer into the driver spec.md §4.11
// describes: eval(src), define(name, src), clear(name), clear_all(), plus
// the standalone list/show/clear commands spec.md §6 lists. It owns the
// one piece of shared state the system has — the constants table — and
// the fixed registry consultation order (constants -> SI -> Imperial ->
// CGS -> Industrial -> user extras) spec.md §4.3/§5 specifies.
package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dimlang/dim/internal/catalog"
	"github.com/dimlang/dim/internal/constants"
	"github.com/dimlang/dim/internal/dimension"
	"github.com/dimlang/dim/internal/eval"
	"github.com/dimlang/dim/internal/format"
	"github.com/dimlang/dim/internal/lexer"
	"github.com/dimlang/dim/internal/normalize"
	"github.com/dimlang/dim/internal/parser"
	"github.com/dimlang/dim/internal/registry"
	"github.com/dimlang/dim/internal/unit"
)

// Engine-level sentinel errors. Eval errors from internal/eval already
// carry their own sentinels (eval.ErrUndefinedVariable, ...); ErrLex and
// ErrParse add the two failure modes that only exist above the evaluator:
// a malformed token stream and a malformed grammar. ErrOutOfMemory
// completes the list of error kinds; no path in this package returns it.
var (
	ErrLex         = errors.New("lex error")
	ErrParse       = errors.New("parse error")
	ErrOutOfMemory = errors.New("out of memory")
)

// Driver is one evaluation session: registries, a constants table, and a
// logger for diagnostics. The zero value is not usable; construct with
// New.
type Driver struct {
	registries []*registry.Registry
	si         *registry.Registry
	extras     *registry.Registry
	constants  *constants.Table
	log        *slog.Logger
}

// New builds a Driver with the standard SI/Imperial/CGS/Industrial
// catalogue and an empty constants table and extras registry.
func New() *Driver {
	si := catalog.SI()
	extras := registry.New("extras")
	return &Driver{
		registries: []*registry.Registry{si, catalog.Imperial(), catalog.CGS(), catalog.Industrial(), extras},
		si:         si,
		extras:     extras,
		constants:  constants.New(),
		log:        slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}
}

// SetLogger overrides the diagnostic logger (default: text handler on
// stderr), letting cmd/dim or tests redirect it.
func (d *Driver) SetLogger(l *slog.Logger) { d.log = l }

// --- eval.Resolver implementation ---

// ResolveExact implements eval.Resolver.
func (d *Driver) ResolveExact(sym string) (unit.Unit, bool) {
	if u, ok := d.constants.Get(sym); ok {
		return u, true
	}
	for _, r := range d.registries {
		if u, ok := r.FindExact(sym); ok {
			return u, true
		}
	}
	return unit.Unit{}, false
}

// Resolve implements eval.Resolver.
func (d *Driver) Resolve(sym string) (unit.Unit, bool) {
	if u, ok := d.ResolveExact(sym); ok {
		return u, true
	}
	for _, r := range d.registries {
		if u, ok := r.Find(sym); ok {
			return u, true
		}
	}
	return unit.Unit{}, false
}

// Define implements eval.Resolver.
func (d *Driver) Define(name string, dim dimension.Dimension, canonicalValue float64) {
	d.constants.Define(name, unit.Unit{Dim: dim, Scale: canonicalValue})
	d.log.Debug("defined constant", "name", name, "value", canonicalValue)
}

// DisplayRegistry implements eval.Resolver.
func (d *Driver) DisplayRegistry() *registry.Registry { return d.si }

// --- public driver API, per spec.md §4.11 ---

// Eval parses and evaluates src, which may hold a standalone command
// (list/show/clear/clear all) or one or more top-level expressions. It
// returns the formatted result of the last expression, or of the command.
func (d *Driver) Eval(src string) (string, error) {
	trimmed := strings.TrimSpace(src)
	if trimmed == "" {
		return "", nil
	}

	if out, handled, err := d.tryCommand(trimmed); handled {
		return out, err
	}

	if _, lexErr := lexer.New(src).Tokenize(); lexErr != nil {
		return "", fmt.Errorf("%w: %s", ErrLex, lexErr)
	}

	exprs, err := parser.ParseProgram(src)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrParse, err)
	}

	var last eval.Value
	for _, e := range exprs {
		v, err := eval.Eval(e, d)
		if err != nil {
			d.log.Error("evaluation failed", "error", err)
			return "", fmt.Errorf("Runtime error: %w", err)
		}
		last = v
	}
	return d.render(last), nil
}

// DefineExpr evaluates exprSrc as if written "name = ( exprSrc )" and
// binds the result under name, per spec.md §4.11's internal rewrite rule.
// It is distinct from the Define method that satisfies eval.Resolver,
// which binds an already-evaluated dimension/value pair.
func (d *Driver) DefineExpr(name, exprSrc string) error {
	rewritten := fmt.Sprintf("%s = (%s)", name, exprSrc)
	_, err := d.Eval(rewritten)
	return err
}

// Clear removes a single named constant. Always returns nil — an absent
// name is not an error, per spec.md §6.
func (d *Driver) Clear(name string) error {
	d.constants.Clear(name)
	return nil
}

// ClearAll empties the constants table.
func (d *Driver) ClearAll() {
	d.constants.ClearAll()
}

// List returns every constant's listing line, in insertion order, per
// spec.md §6's "list" command format.
func (d *Driver) List() []string {
	entries := d.constants.List()
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, d.listingLine(e.Name, e.Unit))
	}
	return lines
}

func (d *Driver) listingLine(name string, u unit.Unit) string {
	sym := normalize.Normalize(u.Dim, d.si, name)
	return fmt.Sprintf("%s: dim %s, 1 %s = %g %s", name, u.Dim.String(), name, u.Scale, sym)
}

func (d *Driver) render(v eval.Value) string {
	switch val := v.(type) {
	case eval.Quantity:
		mode := format.ParseMode(val.Mode)
		return format.Format(val.Value, val.Unit, mode, val.IsDelta, d.si)
	case eval.Number:
		return fmt.Sprintf("%g", val.Value)
	case eval.Boolean:
		return fmt.Sprintf("%t", val.Value)
	case eval.Nil:
		return "nil"
	default:
		return ""
	}
}

// tryCommand recognizes the standalone "list"/"show NAME"/"clear NAME"/
// "clear all" forms at the token level, per spec.md §6. handled is false
// for anything else, in which case the caller should fall through to
// expression parsing.
func (d *Driver) tryCommand(src string) (out string, handled bool, err error) {
	toks, lexErr := lexer.New(src).Tokenize()
	if lexErr != nil || len(toks) == 0 {
		return "", false, nil
	}

	switch toks[0].Kind {
	case lexer.List:
		if len(toks) != 1 && toks[1].Kind != lexer.EOF {
			return "", false, nil
		}
		return strings.Join(d.List(), "\n"), true, nil

	case lexer.Show:
		if len(toks) < 2 || toks[1].Kind != lexer.Identifier {
			return "", false, nil
		}
		name := toks[1].Lexeme
		u, ok := d.constants.Get(name)
		if !ok {
			return "", true, fmt.Errorf("Runtime error: %w: %s", eval.ErrUndefinedVariable, name)
		}
		return d.listingLine(name, u), true, nil

	case lexer.Clear:
		if len(toks) < 2 {
			return "", false, nil
		}
		if toks[1].Kind == lexer.All {
			d.ClearAll()
			return "ok", true, nil
		}
		if toks[1].Kind == lexer.Identifier {
			_ = d.Clear(toks[1].Lexeme)
			return "ok", true, nil
		}
		return "", false, nil

	default:
		return "", false, nil
	}
}
