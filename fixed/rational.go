package fixed

import "math/bits"

// Rational is the exact-ratio result of dividing two Fp values, mirroring
// fixed_point.h's rational class: numerator and denominator as int32,
// canonicalized by right-shifting both down to 31 bits of magnitude when
// constructed from wider (int64) inputs.
type Rational struct {
	Num int32
	Den int32
}

// NewRational canonicalizes a 64-bit numerator/denominator pair into a
// Rational, matching rational(int64_t,int64_t)'s bit_width-based shift.
func NewRational(num, den int64) Rational {
	nWidth := bitWidth64(absI64(num))
	dWidth := bitWidth64(absI64(den))
	width := nWidth
	if dWidth > width {
		width = dWidth
	}
	shift := width - 31
	if shift > 0 {
		scale := int64(1) << uint(shift)
		return Rational{Num: int32(num / scale), Den: int32(den / scale)}
	}
	return Rational{Num: int32(num), Den: int32(den)}
}

func absI64(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}

func bitWidth64(v uint64) int { return bits.Len64(v) }

// MulFp returns x*r as a float64 fallback, matching
// fixed_point::operator*(const rational&).
func (r Rational) MulFp(x Fp) float64 {
	return (x.ToFloat() * float64(r.Num)) / float64(r.Den)
}

// DivFp returns x/r as a float64 fallback, matching
// fixed_point::operator/(const rational&).
func (r Rational) DivFp(x Fp) float64 {
	return (x.ToFloat() * float64(r.Den)) / float64(r.Num)
}

// ToFloat widens r to a float64.
func (r Rational) ToFloat() float64 {
	return float64(r.Num) / float64(r.Den)
}
