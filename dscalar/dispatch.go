package dscalar

import (
	"os"
	"strconv"
)

// This file mirrors hwy/dispatch.go's env-var escape-hatch pattern
// (NoSimdEnv/HWY_NO_SIMD) to let an embedder force a kind unsupported even
// on a target that could otherwise realize it — useful for testing the
// fallback-selection path deterministically in CI.

var (
	asmFencedSupported = true
	tuIsolatedSupported = true
)

func init() {
	if envDisabled("DMATH_NO_ASM_FENCED") {
		asmFencedSupported = false
	}
	if envDisabled("DMATH_NO_TU_ISOLATED") {
		tuIsolatedSupported = false
	}
	detectAsmFencedSupport()
}

func envDisabled(name string) bool {
	val := os.Getenv(name)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// IsSupported reports whether kind T can be realized on the running
// target. Dependent code is expected to gate on this before selecting a
// kind, per spec.md §4.2's "Selection and capability discovery".
func IsSupported[T Kind]() bool {
	var zero T
	switch any(zero).(type) {
	case Soft, Strict, Host:
		return true
	case AsmFenced:
		return asmFencedSupported
	case TUIsolated:
		return tuIsolatedSupported
	default:
		return false
	}
}

// IsDeterministic reports whether every operation on kind T is a pure
// function of its operands' bit patterns across targets.
func IsDeterministic[T Kind]() bool {
	var zero T
	switch any(zero).(type) {
	case Soft, AsmFenced, TUIsolated, Strict:
		return true
	default:
		return false
	}
}

// IsFixedPoint is always false for dscalar kinds; fixed-point scalars live
// in the fixed package. It exists so FpTraits-style generic code can query
// a uniform capability surface across both families.
func IsFixedPoint[T Kind]() bool { return false }

// IsValidFp is always true: every Kind is a valid binary32-backed scalar.
func IsValidFp[T Kind]() bool { return true }

// Name returns a human-readable identifier for kind T, for logs and the
// dmathctl probe subcommand.
func Name[T Kind]() string {
	var zero T
	switch any(zero).(type) {
	case Soft:
		return "soft"
	case AsmFenced:
		return "asm_fenced"
	case TUIsolated:
		return "tu_isolated"
	case Strict:
		return "strict"
	case Host:
		return "host"
	default:
		return "unknown"
	}
}
