// Package cabi mirrors the shape of the C/WASM ABI spec.md §6 and §14
// describe (dim_eval/dim_define/dim_clear/dim_clear_all/dim_alloc/
// dim_free). Real cgo and WASM pointer/arena marshaling is out of scope
// (spec.md §1 names it an external collaborator); this package gives
// every entry point a pure-Go signature — strings and byte slices in,
// plain Go values out — so a thin cgo or syscall/js layer can be
// wrapped around it without touching evaluation logic.
package cabi

import (
	"fmt"
	"os"
	"sync"

	"github.com/dimlang/dim/internal/engine"
)

// Status mirrors the i32 result code every ABI entry point returns: 0 on
// success, non-zero otherwise. The C/WASM layer only needs the zero/
// non-zero distinction spec.md §7 describes ("the library ABI collapses
// all failure kinds into a non-zero return code"); this keeps a few
// named values around for callers that want more than that.
type Status int32

const (
	StatusOK    Status = 0
	StatusError Status = 1
)

// Instance is one engine exposed through the ABI shape. The process-wide
// default instance backs the package-level Dim* functions; callers that
// need isolation construct their own with NewInstance, per spec.md §14's
// re-architecture note.
type Instance struct {
	mu     sync.Mutex
	driver *engine.Driver
}

// NewInstance builds an isolated ABI instance with its own engine.
func NewInstance() *Instance {
	return &Instance{driver: engine.New()}
}

// Eval mirrors dim_eval: evaluate src and return its rendered result.
// Diagnostic detail is carried in err rather than written to stderr
// directly — the process-level default instance's package functions are
// the layer that writes to stderr, matching "diagnostic detail is
// written to the process's stderr when available."
func (i *Instance) Eval(src string) (out string, status Status, err error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	out, err = i.driver.Eval(src)
	if err != nil {
		return "", StatusError, err
	}
	return out, StatusOK, nil
}

// Define mirrors dim_define: bind name to the evaluated result of expr.
// A failure leaves the constants table unchanged, per spec.md §7.
func (i *Instance) Define(name, expr string) (Status, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if err := i.driver.DefineExpr(name, expr); err != nil {
		return StatusError, err
	}
	return StatusOK, nil
}

// Clear mirrors dim_clear: remove a single named constant.
func (i *Instance) Clear(name string) Status {
	i.mu.Lock()
	defer i.mu.Unlock()

	_ = i.driver.Clear(name)
	return StatusOK
}

// ClearAll mirrors dim_clear_all: empty the constants table.
func (i *Instance) ClearAll() Status {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.driver.ClearAll()
	return StatusOK
}

// Alloc mirrors dim_alloc: hand the caller a fresh buffer it owns until
// it passes the buffer back to Free. Go's garbage collector already
// tracks the buffer's lifetime; Free is a no-op retained only to keep
// the Alloc/Free pairing symmetric with the C/WASM ABI callers expect.
func Alloc(n int) []byte {
	return make([]byte, n)
}

// Free mirrors dim_free. See Alloc's comment: nothing to release under
// the Go runtime's GC, so this exists purely for ABI-shape symmetry.
func Free(_ []byte) {}

var (
	defaultOnce sync.Once
	defaultInst *Instance
)

func defaultInstance() *Instance {
	defaultOnce.Do(func() { defaultInst = NewInstance() })
	return defaultInst
}

// DimEval evaluates src against the process-wide default instance.
func DimEval(src string) (out string, status Status) {
	out, status, err := defaultInstance().Eval(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	return out, status
}

// DimDefine binds name to expr's result against the default instance.
func DimDefine(name, expr string) Status {
	status, err := defaultInstance().Define(name, expr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	return status
}

// DimClear removes a constant from the default instance.
func DimClear(name string) Status {
	return defaultInstance().Clear(name)
}

// DimClearAll empties the default instance's constants table.
func DimClearAll() Status {
	return defaultInstance().ClearAll()
}
