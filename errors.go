package orbitalmech

import (
	"fmt"
	"os"

	kitlog "github.com/go-kit/kit/log"
)

var diag kitlog.Logger

func init() {
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	diag = kitlog.With(klog, "lib", "orbitalmech")
}

// SetLogger changes the logger used for diagnostics on domain violations and
// solver non-convergence. The default logs logfmt to stderr.
func SetLogger(l kitlog.Logger) {
	diag = l
}

// DomainError is returned when an argument lies outside a function's valid range.
// The function also returns NaN (or a NaN-filled vector) so that callers checking
// the sentinel instead of the error still fail loudly.
type DomainError struct {
	Func       string
	Param      string
	Value      float64
	ValidRange string
}

func (e DomainError) Error() string {
	return fmt.Sprintf("%s: %s = %g outside valid range %s", e.Func, e.Param, e.Value, e.ValidRange)
}

// NonConvergenceError is returned when a Newton-Raphson solver hits its iteration
// cap. The accompanying value is the best estimate at that point, not garbage:
// callers may use it, but cannot assume full accuracy.
type NonConvergenceError struct {
	Func       string
	Iterations int
	LastDelta  float64
}

func (e NonConvergenceError) Error() string {
	return fmt.Sprintf("%s: no convergence after %d iterations (last step %g)", e.Func, e.Iterations, e.LastDelta)
}

// domainError logs and builds a DomainError in one place.
func domainError(fn, param string, value float64, validRange string) DomainError {
	err := DomainError{Func: fn, Param: param, Value: value, ValidRange: validRange}
	diag.Log("severity", "error", "func", fn, "err", err.Error())
	return err
}
