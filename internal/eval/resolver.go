package eval

import (
	"github.com/dimlang/dim/internal/dimension"
	"github.com/dimlang/dim/internal/registry"
	"github.com/dimlang/dim/internal/unit"
)

// Resolver is the evaluator's window onto the driver's cross-registry
// lookup and session constants, per spec.md §4.3's fixed consultation
// order (constants → SI → Imperial → CGS → Industrial → user extras).
// The evaluator never walks registries itself — it asks a Resolver.
type Resolver interface {
	// ResolveExact looks up sym without prefix expansion, across every
	// consulted registry in order. Used when a name must be an existing
	// unit or alias verbatim (the normalizer's own lookups go straight to
	// a registry.Registry, not through this interface).
	ResolveExact(sym string) (unit.Unit, bool)

	// Resolve looks up sym, falling back to prefix expansion within each
	// registry when no exact match exists anywhere.
	Resolve(sym string) (unit.Unit, bool)

	// Define inserts or replaces a constant built from an evaluated
	// quantity, per spec.md §4.4.
	Define(name string, dim dimension.Dimension, canonicalValue float64)

	// DisplayRegistry returns the registry the normalizer should consult
	// when building a display symbol for an arithmetic result (SI, by
	// convention — see spec.md §4.9).
	DisplayRegistry() *registry.Registry
}
