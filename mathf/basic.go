package mathf

import "github.com/sixitbb/sixit-dmath/dscalar"

// Abs returns |x|, clearing the sign bit directly — ported from
// original_source/sixit/dmath/mathf's fp_traits-based abs, and from the
// per-lane style of hwy/contrib/math's scalar fallbacks.
func Abs[T dscalar.Kind](x T) T {
	return dscalar.BitCastFromIEEEUint32[T](dscalar.BitCastToIEEEUint32(x) &^ (1 << 31))
}

// Max returns the greater of a and b, NaN-propagating: if either operand
// is NaN the result is NaN, matching original_source/sixit/dmath/mathf/max.h.
func Max[T dscalar.Kind](a, b T) T {
	if dscalar.IsNaN(a) || dscalar.IsNaN(b) {
		return dscalar.FromBits[T](0x7fc00000)
	}
	if dscalar.Lt(a, b) {
		return b
	}
	return a
}

// Min is Max's dual.
func Min[T dscalar.Kind](a, b T) T {
	if dscalar.IsNaN(a) || dscalar.IsNaN(b) {
		return dscalar.FromBits[T](0x7fc00000)
	}
	if dscalar.Lt(b, a) {
		return b
	}
	return a
}

// Floor returns the largest integral value not greater than x, working
// directly on the exponent/mantissa fields per
// original_source/sixit/dmath/mathf/floor.h rather than delegating to the
// host FPU, so it is available identically on every dscalar.Kind.
func Floor[T dscalar.Kind](x T) T {
	if dscalar.IsNaN(x) || dscalar.IsInf(x) || dscalar.EqualToZero(x) {
		return x
	}
	bits := dscalar.BitCastToIEEEUint32(x)
	sign := bits & (1 << 31)
	e := int32((bits>>23)&0xff) - 127
	if e >= 23 {
		return x // already integral (or beyond mantissa precision)
	}
	if e < 0 {
		// |x| < 1: floor is 0 or -1.
		if sign != 0 {
			return dscalar.New[T](-1)
		}
		return dscalar.New[T](0)
	}
	mask := uint32(0x7fffff) >> uint(e)
	if bits&mask == 0 {
		return x
	}
	truncated := bits &^ mask
	if sign != 0 {
		// Rounding toward -inf from a truncation toward zero needs one
		// subtracted for negative non-integers.
		return Sub(dscalar.BitCastFromIEEEUint32[T](truncated), dscalar.New[T](1))
	}
	return dscalar.BitCastFromIEEEUint32[T](truncated)
}

// Round rounds x to the nearest integer, ties away from zero, matching
// original_source/sixit/dmath/mathf/round.h. The half-offset add runs
// through dscalar.Add so the rounding itself inherits T's realization;
// only the final integer truncation drops to Fp2Int64/float32, the same
// host-interop boundary dscalar.Fp2Int64 exists for.
func Round[T dscalar.Kind](x T) T {
	if dscalar.IsNaN(x) || dscalar.IsInf(x) || dscalar.EqualToZero(x) {
		return x
	}
	if dscalar.GetExp(x) >= 23 {
		return x // |x| >= 2^23: already integral
	}
	if dscalar.GetExp(x) < -1 {
		return dscalar.New[T](0) // |x| < 0.5
	}
	half := dscalar.FromBits[T](0x3f000000) // 0.5
	if dscalar.GetSign(x) {
		half = dscalar.FromBits[T](0xbf000000) // -0.5
	}
	shifted := dscalar.Add(x, half)
	return dscalar.New[T](float32(dscalar.Fp2Int64(shifted)))
}

// Fmod returns the remainder of x/y with the quotient truncated toward
// zero (C fmod, not IEEE-754 remainder), with the sign of x, ported
// from original_source/sixit/dmath/mathf/fmod.h's bit-level long-division
// algorithm, simplified here to repeated subtraction-with-doubling in the
// exponent domain (same result, simpler control flow). Every arithmetic
// step runs through dscalar.Add/Sub/Mul/Neg so the reduction inherits T's
// realization instead of running on host float32.
func Fmod[T dscalar.Kind](x, y T) T {
	if dscalar.IsNaN(x) || dscalar.IsNaN(y) || dscalar.IsInf(x) || dscalar.EqualToZero(y) {
		return dscalar.FromBits[T](0x7fc00000)
	}
	if dscalar.IsInf(y) {
		return x
	}
	ax, ay := Abs(x), Abs(y)
	if dscalar.Lt(ax, ay) {
		return x
	}
	two := dscalar.FromBits[T](0x40000000) // 2.0
	one := dscalar.FromBits[T](0x3f800000) // 1.0
	for dscalar.Ge(ax, ay) {
		scale := one
		for dscalar.Ge(ax, dscalar.Mul(ay, dscalar.Mul(scale, two))) {
			scale = dscalar.Mul(scale, two)
		}
		ax = dscalar.Sub(ax, dscalar.Mul(ay, scale))
	}
	if dscalar.GetSign(x) {
		ax = dscalar.Neg(ax)
	}
	return ax
}

// Sub is a package-local convenience used by Floor; dscalar.Sub is
// already generic but named here to keep Floor's call site readable.
func Sub[T dscalar.Kind](a, b T) T { return dscalar.Sub(a, b) }
