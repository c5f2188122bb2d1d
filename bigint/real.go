package bigint

import (
	"math"
	"math/bits"

	"golang.org/x/sync/errgroup"
)

// Real is the normalized 128-bit floating mantissa used by the decimal
// parser's slow path (spec.md L4): value = (Hi:Lo, a 128-bit unsigned
// integer with Hi's top bit set) * 2^Pow. This is the Go-idiomatic
// reshaping of original_source/sixit/dmath/bsd/gdtoaimp.h's ULbits/Long
// mantissa-array convention down to the two-word width this module
// actually needs (single-precision decimal-to-double parsing never
// requires more than 128 mantissa bits of working precision).
type Real struct {
	Hi, Lo uint64
	Pow    int32
}

// NewReal normalizes v*2^0 into a Real with the leading bit at Hi's MSB.
func NewReal(v uint64) Real {
	r := Real{Hi: v, Lo: 0, Pow: 0}
	return r.normalize()
}

func (r Real) normalize() Real {
	if r.Hi == 0 {
		if r.Lo == 0 {
			return r
		}
		r.Hi, r.Lo = r.Lo, 0
		r.Pow -= 64
	}
	shift := bits.LeadingZeros64(r.Hi)
	if shift == 0 {
		return r
	}
	r.Hi = (r.Hi << shift) | (r.Lo >> (64 - shift))
	r.Lo = r.Lo << shift
	r.Pow -= int32(shift)
	return r
}

// Mult multiplies r by the 64-bit factor u scaled by 2^deltaPow,
// renormalizing the 192-bit intermediate product back down to 128 bits of
// significance (the low bits are truncated, not rounded — adequate for the
// pow5 cache's use, which only ever needs the leading bits to select a
// correctly-rounded decimal-to-double result downstream).
func (r Real) Mult(u uint64, deltaPow int32) Real {
	hiHi, hiLo := bits.Mul64(r.Hi, u)
	loHi, _ := bits.Mul64(r.Lo, u)
	sum, carry := bits.Add64(hiLo, loHi, 0)
	topHi := hiHi + carry

	result := Real{Hi: topHi, Lo: sum, Pow: r.Pow + deltaPow + 64}
	return result.normalize()
}

// MultReal multiplies r by another Real, computing the full 256-bit product
// across both Hi:Lo pairs and renormalizing the top 128 bits back down —
// the 128x128 extension of Mult's 128x64 case, needed by the decimal
// parser's slow path to combine a parsed significand with a cached Pow5/
// Pow10 factor (both already Reals, not plain uint64s).
func (r Real) MultReal(other Real) Real {
	hihiHi, hihiLo := bits.Mul64(r.Hi, other.Hi)
	hiloHi, hiloLo := bits.Mul64(r.Hi, other.Lo)
	lohiHi, lohiLo := bits.Mul64(r.Lo, other.Hi)
	loloHi, _ := bits.Mul64(r.Lo, other.Lo)

	// The two cross products and lolo's high word all sit at 2^64; their
	// sum is crossTop:crossHi:crossLo, of which crossLo falls below the
	// kept 128 bits and only contributes its carry.
	crossLo, c := bits.Add64(hiloLo, lohiLo, 0)
	crossHi, crossTop := bits.Add64(hiloHi, lohiHi, c)
	_, c = bits.Add64(crossLo, loloHi, 0)
	crossHi, c = bits.Add64(crossHi, 0, c)
	crossTop += c

	topLo, c := bits.Add64(hihiLo, crossHi, 0)
	topHi := hihiHi + crossTop + c

	result := Real{Hi: topHi, Lo: topLo, Pow: r.Pow + other.Pow + 128}
	return result.normalize()
}

// Float64 rounds r's magnitude to the nearest float64, round-to-nearest-
// even, returning +Inf on overflow past float64's range. r.Pow must
// already be the true binary scale of the value being rounded: any
// construction-chain bias (e.g. two NewReal-seeded chains combined via
// MultReal each contribute an extra 2^64, for a combined 2^128 a caller
// must subtract out first) is the caller's responsibility, not this
// method's. Only magnitudes in float64's normal range (at least 2^-1022)
// are supported; a subnormal-range magnitude panics rather than being
// misrounded. The decimal parser's only caller passes magnitudes >= 1.
func (r Real) Float64() float64 {
	const bias = 1023
	binExp := 127 + r.Pow
	if binExp < -1022 {
		panic("bigint: Real.Float64 of a subnormal-range magnitude is unsupported")
	}

	mant := r.Hi >> 11 // bit 52 is the implicit leading 1; bits 51..0 are explicit
	roundBit := (r.Hi >> 10) & 1
	sticky := r.Hi&0x3ff != 0 || r.Lo != 0

	if roundBit == 1 && (sticky || mant&1 == 1) {
		mant++
		if mant == 1<<53 {
			mant >>= 1
			binExp++
		}
	}
	if binExp > bias {
		return math.Inf(1)
	}

	bitsOut := (uint64(binExp+bias) << 52) | (mant &^ (1 << 52))
	return math.Float64frombits(bitsOut)
}

// pow5Cache holds 5^0 .. 5^(len-1) as normalized Reals, eagerly
// precomputed at package init (SPEC_FULL's chosen resolution of the pow5
// cache Open Question) since decimal parsing is expected to be a hot path
// and every cached entry is plausibly needed at some point.
var pow5Cache []Real

const pow5CacheSize = 64

func init() {
	pow5Cache = make([]Real, pow5CacheSize)
	pow5Cache[0] = NewReal(1)

	var g errgroup.Group
	const chunks = 4
	chunkSize := (pow5CacheSize + chunks - 1) / chunks
	for c := 0; c < chunks; c++ {
		start := c * chunkSize
		end := start + chunkSize
		if end > pow5CacheSize {
			end = pow5CacheSize
		}
		if start >= end {
			continue
		}
		g.Go(func() error {
			// Each chunk recomputes from 5^0 independently so the
			// parallel workers share no mutable state; only the slice
			// writes for this chunk's own index range are touched.
			acc := NewReal(1)
			for i := 1; i < end; i++ {
				acc = acc.Mult(5, 0)
				if i >= start {
					pow5Cache[i] = acc
				}
			}
			return nil
		})
	}
	_ = g.Wait()
}

// Pow5 returns 5^e as a normalized Real. Exponents beyond pow5CacheSize
// are computed on each call from the last cached entry; the cache itself
// is not extended.
func Pow5(e int) Real {
	if e < 0 {
		panic("bigint: Pow5 of negative exponent")
	}
	if e < len(pow5Cache) {
		return pow5Cache[e]
	}
	r := pow5Cache[len(pow5Cache)-1]
	for i := len(pow5Cache); i <= e; i++ {
		r = r.Mult(5, 0)
	}
	return r
}

// Pow10 returns 10^e = 5^e * 2^e as a normalized Real, the scaling factor
// the decimal parser's slow path needs for a power-of-ten exponent.
func Pow10(e int) Real {
	r := Pow5(e)
	r.Pow += int32(e)
	return r
}
