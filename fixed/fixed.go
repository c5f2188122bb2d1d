// Package fixed implements the fixed-point scalar layer (spec.md L3),
// ported from original_source/sixit/dmath/fixedpoint/fixed_point.h. The
// original is a C++ template parameterized on two compile-time
// bit-width constants (NBITS, NORMALIZED_BITS); Go has no value/const
// generic parameters, so Fp carries them as runtime uint8 fields instead
// (an explicit Open Question resolution — see DESIGN.md) while Data stays
// a single int64 wide enough for every width the spec allows (16..64).
package fixed

import "math"

// DefaultNBits and DefaultNormalizedBits mirror FX_BASE_NBITS /
// FX_BASE_NORMALIZED_BITS from fixed_point.h: the width dmath's own call
// sites default to when no narrower representation is requested.
const (
	DefaultNBits          = 31
	DefaultNormalizedBits = 30
)

// Fp is a signed fixed-point number whose value is Data/2^(NormBits-1).
// NBits is the width Data is declared to fit in; Data is not clamped to
// it: IsValid reports whether it fits, and neither New nor the arithmetic
// below checks it. NBits and NormBits are carried as struct fields rather
// than type parameters; the only width check made at run time is the
// panic in Add, Sub, Div and the comparisons when NormBits differ.
type Fp struct {
	Data     int64
	NBits    uint8
	NormBits uint8
}

// New constructs an Fp at the given widths from a float64 fallback value,
// matching fixed_point(const fallback_type&)'s round-to-nearest
// conversion through the "one" scale factor.
func New(value float64, nbits, normBits uint8) Fp {
	one := float64(int64(1) << (normBits - 1))
	return Fp{Data: int64(math.Round(value * one)), NBits: nbits, NormBits: normBits}
}

// Default constructs an Fp at DefaultNBits/DefaultNormalizedBits.
func Default(value float64) Fp {
	return New(value, DefaultNBits, DefaultNormalizedBits)
}

// ToFloat widens x back to its float64 fallback representation, matching
// fixed_point::to_float / operator fallback_type().
func (x Fp) ToFloat() float64 {
	one := float64(int64(1) << (x.NormBits - 1))
	return float64(x.Data) / one
}

// IsValid reports whether Data fits within NBits of signed magnitude,
// mirroring is_int_data_valid.
func (x Fp) IsValid() bool {
	return bitWidth(absInt64(x.Data)) < int(x.NBits)
}

func absInt64(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}

func bitWidth(v uint64) int {
	n := 0
	for v != 0 {
		n++
		v >>= 1
	}
	return n
}

// Neg returns -x.
func (x Fp) Neg() Fp {
	return Fp{Data: -x.Data, NBits: x.NBits, NormBits: x.NormBits}
}

// outNBitsAdd implements max(NBITS,NBITS_OTHER)+1 from operator+/-.
func outNBitsAdd(a, b uint8) uint8 {
	if a > b {
		return a + 1
	}
	return b + 1
}

// Add returns x+y, promoted to max(x.NBits,y.NBits)+1 bits when that still
// fits in 64, or otherwise computed through float64 and re-quantized at
// Default's widths — the same two-path shape as fixed_point::operator+.
func Add(x, y Fp) Fp {
	mustSameNormBits(x, y)
	outNBits := outNBitsAdd(x.NBits, y.NBits)
	if outNBits <= 64 {
		return Fp{Data: x.Data + y.Data, NBits: outNBits, NormBits: x.NormBits}
	}
	return Default(x.ToFloat() + y.ToFloat())
}

// Sub returns x-y, symmetric to Add.
func Sub(x, y Fp) Fp {
	mustSameNormBits(x, y)
	outNBits := outNBitsAdd(x.NBits, y.NBits)
	if outNBits <= 64 {
		return Fp{Data: x.Data - y.Data, NBits: outNBits, NormBits: x.NormBits}
	}
	return Default(x.ToFloat() - y.ToFloat())
}

// Mul returns x*y, promoted per operator*'s OUT_NBITS = NBITS+NBITS_OTHER-1,
// OUT_NORMALIZED_BITS = NORMBITS+NORMBITS_OTHER-1 rule; once either width
// would exceed 64 bits it is computed through float64 and re-quantized at
// Default's widths.
func Mul(x, y Fp) Fp {
	outNBits := int(x.NBits) + int(y.NBits) - 1
	outNorm := int(x.NormBits) + int(y.NormBits) - 1
	if outNBits <= 64 && outNorm <= 64 {
		return Fp{Data: x.Data * y.Data, NBits: uint8(outNBits), NormBits: uint8(outNorm)}
	}
	return Default(x.ToFloat() * y.ToFloat())
}

// Div returns x/y as a Rational (an exact ratio of the two underlying
// integers), matching operator/'s return of a rational rather than
// another fixed_point.
func Div(x, y Fp) Rational {
	mustSameNormBits(x, y)
	return NewRational(x.Data, y.Data)
}

func mustSameNormBits(x, y Fp) {
	if x.NormBits != y.NormBits {
		panic("fixed: operands must share NormBits")
	}
}

// Less, Greater, LessEqual, GreaterEqual compare the raw Data of two Fp
// values sharing the same NormBits, matching fixed_point's comparison
// operators (valid across any NBITS as long as NORMALIZED_BITS matches).
func Less(x, y Fp) bool         { mustSameNormBits(x, y); return x.Data < y.Data }
func Greater(x, y Fp) bool      { mustSameNormBits(x, y); return x.Data > y.Data }
func LessEqual(x, y Fp) bool    { mustSameNormBits(x, y); return x.Data <= y.Data }
func GreaterEqual(x, y Fp) bool { mustSameNormBits(x, y); return x.Data >= y.Data }
