// Package registry bundles units, aliases, and prefixes into a lookup
// table with the exact > alias > prefix+base resolution order spec.md §4.3
// requires, isolated per registry so prefix expansion never crosses
// registry boundaries.
package registry

import (
	"fmt"
	"sort"

	"github.com/dimlang/dim/internal/unit"
)

// Prefix is a (symbol, factor) pair, e.g. ("k", 1000) for kilo.
type Prefix struct {
	Symbol string
	Factor float64
}

// Registry is a bundle of (units, aliases, prefixes) with two lookup
// methods: FindExact (units + aliases, no prefix expansion) and Find
// (exact -> alias -> prefix+base, in that order).
type Registry struct {
	Name     string
	units    map[string]unit.Unit
	aliases  map[string]string // alias symbol -> canonical unit symbol
	prefixes map[string]Prefix
	order    []string // sorted prefix symbols, longest first
}

// New creates an empty, named registry.
func New(name string) *Registry {
	return &Registry{
		Name:     name,
		units:    make(map[string]unit.Unit),
		aliases:  make(map[string]string),
		prefixes: make(map[string]Prefix),
	}
}

// AddUnit registers a unit under its own symbol.
func (r *Registry) AddUnit(u unit.Unit) {
	r.units[u.Symbol] = u
}

// AddAlias binds a secondary name to an existing unit's symbol.
func (r *Registry) AddAlias(alias, canonical string) {
	r.aliases[alias] = canonical
}

// AddPrefix registers a prefix available within this registry only.
func (r *Registry) AddPrefix(symbol string, factor float64) {
	r.prefixes[symbol] = Prefix{Symbol: symbol, Factor: factor}
	r.order = nil // invalidate cached ordering
}

func (r *Registry) sortedPrefixes() []string {
	if r.order != nil {
		return r.order
	}
	keys := make([]string, 0, len(r.prefixes))
	for k := range r.prefixes {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return len(keys[i]) > len(keys[j]) })
	r.order = keys
	return r.order
}

// FindExact resolves sym against units and aliases only — no prefix
// expansion.
func (r *Registry) FindExact(sym string) (unit.Unit, bool) {
	if u, ok := r.units[sym]; ok {
		return u, true
	}
	if canonical, ok := r.aliases[sym]; ok {
		if u, ok := r.units[canonical]; ok {
			return unit.Unit{Dim: u.Dim, Scale: u.Scale, Offset: u.Offset, Symbol: sym}, true
		}
	}
	return unit.Unit{}, false
}

// Find resolves sym using exact match, then alias, then prefix+base
// expansion, in that order. A prefix match yields a synthetic unit whose
// scale is base.Scale*prefix.Factor, keeps base.Offset, and reports sym as
// its symbol.
func (r *Registry) Find(sym string) (unit.Unit, bool) {
	if u, ok := r.FindExact(sym); ok {
		return u, true
	}

	for _, p := range r.sortedPrefixes() {
		if p == "" || len(sym) <= len(p) {
			continue
		}
		if sym[:len(p)] != p {
			continue
		}
		base := sym[len(p):]
		if u, ok := r.FindExact(base); ok {
			factor := r.prefixes[p].Factor
			scaled := u.WithPrefix(sym, factor)
			return scaled, true
		}
	}
	return unit.Unit{}, false
}

// Units returns every registered unit symbol, for the normalizer's
// derived-unit search.
func (r *Registry) Units() map[string]unit.Unit {
	return r.units
}

// Aliases returns the alias table, for the normalizer's alias-first rule.
func (r *Registry) Aliases() map[string]string {
	return r.aliases
}

// Prefixes returns the registered prefix table.
func (r *Registry) Prefixes() map[string]Prefix {
	return r.prefixes
}

// String implements fmt.Stringer for debugging.
func (r *Registry) String() string {
	return fmt.Sprintf("Registry(%s, %d units, %d aliases, %d prefixes)",
		r.Name, len(r.units), len(r.aliases), len(r.prefixes))
}
