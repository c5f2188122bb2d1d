// Package dscalar provides a family of interchangeable deterministic scalar
// types. Every kind wraps a single float32 payload; the kinds differ only in
// how their arithmetic is realized, not in what it computes. Application
// code picks one kind at the type level and every operation on it goes
// through the generic dispatch functions in this package.
package dscalar

import "math"

// Kind is the constraint shared by every scalar realization. All five kinds
// store their IEEE-754 binary32 payload directly as their underlying
// representation, so a value of any Kind can be reinterpreted as its bits
// with a plain conversion.
type Kind interface {
	~uint32
}

// Soft is the software IEEE-754 emulator (L1a): every arithmetic operation
// is computed in pure integer arithmetic, independent of the host FPU. This
// is the reference kind — every other deterministic kind is expected to
// agree with it bit-for-bit.
type Soft uint32

// AsmFenced realizes each operator as exactly one hardware float instruction
// behind a call boundary that forbids reassociation and fusion (L1b).
type AsmFenced uint32

// TUIsolated realizes each operator in a function that is never inlined, to
// approximate "declared in one translation unit, defined in another, with
// inlining and LTO disabled" (L1c).
type TUIsolated uint32

// Strict is a thin wrapper that trusts the host build to disable
// fast-math/contraction; each operator is a single Go statement, which the
// language already guarantees will not be reassociated or FMA-contracted
// without an explicit math.FMA call (L1d).
type Strict uint32

// Host is the non-deterministic pass-through kind, used only for A/B
// calibration against the deterministic kinds (L1e).
type Host uint32

// New constructs a scalar of kind T from a float32 value.
func New[T Kind](f float32) T {
	return T(math.Float32bits(f))
}

// Float32 returns the IEEE-754 binary32 value a scalar represents.
func Float32[T Kind](x T) float32 {
	return math.Float32frombits(uint32(x))
}

// FromBits constructs a scalar of kind T directly from an IEEE-754 binary32
// bit pattern, bypassing any host rounding. Used by mathf and dconsts to
// assemble scalars from hex-exact bit patterns.
func FromBits[T Kind](bits uint32) T {
	return T(bits)
}

// Bits returns the raw IEEE-754 binary32 bit pattern underlying x.
func Bits[T Kind](x T) uint32 {
	return uint32(x)
}
