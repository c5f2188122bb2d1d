// Package dconsts provides the numeric constants suite (spec.md L6):
// named irrational and transcendental constants available identically on
// every dscalar.Kind, grounded on hwy/contrib/math/constants.go's
// per-precision constant tables and the values original_source's
// sixit/dmath/numbers.h names. Every constant is stored as its exact
// binary32 bit pattern via dscalar.FromBits so construction never goes
// through a rounding float32 literal conversion at init time.
package dconsts

import "github.com/sixitbb/sixit-dmath/dscalar"

// Pi returns the closest binary32 to π.
func Pi[T dscalar.Kind]() T { return dscalar.FromBits[T](0x40490fdb) }

// TwoPi returns the closest binary32 to 2π.
func TwoPi[T dscalar.Kind]() T { return dscalar.FromBits[T](0x40c90fdb) }

// HalfPi returns the closest binary32 to π/2.
func HalfPi[T dscalar.Kind]() T { return dscalar.FromBits[T](0x3fc90fdb) }

// QuarterPi returns the closest binary32 to π/4.
func QuarterPi[T dscalar.Kind]() T { return dscalar.FromBits[T](0x3f490fdb) }

// E returns the closest binary32 to Euler's number.
func E[T dscalar.Kind]() T { return dscalar.FromBits[T](0x402df854) }

// Ln2 returns the closest binary32 to ln(2).
func Ln2[T dscalar.Kind]() T { return dscalar.FromBits[T](0x3f317218) }

// Ln10 returns the closest binary32 to ln(10).
func Ln10[T dscalar.Kind]() T { return dscalar.FromBits[T](0x40135d8e) }

// Sqrt2 returns the closest binary32 to √2.
func Sqrt2[T dscalar.Kind]() T { return dscalar.FromBits[T](0x3fb504f3) }

// InvSqrt2 returns the closest binary32 to 1/√2.
func InvSqrt2[T dscalar.Kind]() T { return dscalar.FromBits[T](0x3f3504f3) }

// Epsilon returns the smallest binary32 step representable above 1.0
// (machine epsilon), matching IEEE-754 binary32's 2^-23.
func Epsilon[T dscalar.Kind]() T { return dscalar.FromBits[T](0x34000000) }

// MaxValue returns the largest finite binary32.
func MaxValue[T dscalar.Kind]() T { return dscalar.FromBits[T](0x7f7fffff) }

// MinPositive returns the smallest positive normal binary32.
func MinPositive[T dscalar.Kind]() T { return dscalar.FromBits[T](0x00800000) }

// Infinity returns +Inf.
func Infinity[T dscalar.Kind]() T { return dscalar.FromBits[T](0x7f800000) }

// NaN returns a canonical quiet NaN.
func NaN[T dscalar.Kind]() T { return dscalar.FromBits[T](0x7fc00000) }
