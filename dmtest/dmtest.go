// Package dmtest provides the approximate-equality and determinism-counter
// test support named in spec.md L7, ported from
// original_source/sixit/dmath/fp_approximate_eq.h's approximate_eq and its
// inexact_eq_counter: for deterministic kinds comparison is always exact
// (==), since bit-identical results are the entire point; for the Host
// kind (the library's only non-deterministic realization) comparison
// degrades to an absolute-then-relative epsilon check and increments a
// package-level counter every time that degraded path is taken, so tests
// can assert on how often exactness was actually required to be relaxed.
package dmtest

import (
	"sync/atomic"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/sixitbb/sixit-dmath/dscalar"
	"github.com/sixitbb/sixit-dmath/mathf"
)

// inexactEqCounter mirrors original_source's inexact_eq_counter_holder,
// simplified from a thread-local counter to a single atomic package
// global: Go test binaries run subtests sequentially or via t.Parallel,
// and an atomic counter observes both without per-goroutine plumbing.
var inexactEqCounter atomic.Int64

// InexactEqCount returns how many ApproxEq calls fell back to the epsilon
// comparison rather than resolving by exact bit comparison.
func InexactEqCount() int64 { return inexactEqCounter.Load() }

// ResetInexactEqCount zeroes the counter, for use between test cases that
// want an isolated count.
func ResetInexactEqCount() { inexactEqCounter.Store(0) }

// ApproxEq reports whether left and right are equal, exactly for any
// deterministic dscalar.Kind and within n*epsilon (absolute, then
// relative) for Host.
func ApproxEq[T dscalar.Kind](left, right T, n int) bool {
	if dscalar.IsDeterministic[T]() {
		return dscalar.Eq(left, right)
	}

	if dscalar.Eq(left, right) {
		return true
	}
	inexactEqCounter.Add(1)

	eps := dscalar.Float32(epsilonFor[T](n))
	diff := dscalar.Float32(mathf.Abs(dscalar.Sub(left, right)))
	if diff <= eps {
		return true
	}
	denom := dscalar.Float32(mathf.Max(mathf.Abs(left), mathf.Abs(right))) + dscalar.Float32(epsilonFor[T](1))
	return diff/denom <= eps
}

func epsilonFor[T dscalar.Kind](n int) T {
	eps := dscalar.Float32(dscalar.FromBits[T](0x34000000)) // 2^-23
	return dscalar.New[T](eps * float32(n))
}

// Diff renders a human-readable difference between two values that failed
// an ApproxEq comparison, using go-cmp so mismatches in larger structs
// built from dscalar values format consistently with the rest of the test
// suite's diagnostics.
func Diff(left, right any) string {
	return cmp.Diff(left, right, cmpopts.EquateApprox(0, 1e-5))
}
