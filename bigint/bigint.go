// Package bigint implements the arbitrary-precision integer and
// normalized-binary-float layer named in spec.md L2, ported from
// original_source/sixit/dmath/bigint/bigint.h: a base-2^64 digit-vector
// Int with schoolbook Add/Mul/Less/Equal, plus the Real type used by the
// decimal parser's slow path (a normalized 128-bit mantissa paired with a
// binary power-of-two exponent).
package bigint

import (
	"math/big"
	"math/bits"

	"github.com/remyoudompheng/bigfft"
)

// bigMulThreshold is the digit count above which Mul routes through
// math/big plus bigfft's FFT-accelerated multiply instead of the
// schoolbook O(n*m) loop below — mirroring how bigfft itself augments
// math/big.Int.Mul for large operands, just applied one level up at this
// package's own digit representation.
const bigMulThreshold = 32

// Int is a non-negative arbitrary-precision integer stored little-endian
// in base 2^64, mirroring bigint.h's std::vector<uint64_t> data with the
// same no-trailing-zero-digit invariant (removeLeadingZeros).
type Int struct {
	digits []uint64 // little-endian; digits[len-1] != 0 unless len==1
}

// NewInt constructs a single-digit Int, matching bigint(const uint64_t&).
func NewInt(v uint64) Int {
	return Int{digits: []uint64{v}}
}

// NewIntFromDigits constructs an Int from little-endian digits, matching
// bigint(const std::vector<uint64_t>) — trailing zero digits are trimmed.
func NewIntFromDigits(digits []uint64) Int {
	cp := append([]uint64(nil), digits...)
	i := Int{digits: cp}
	i.removeLeadingZeros()
	return i
}

func (x *Int) removeLeadingZeros() {
	for len(x.digits) > 1 && x.digits[len(x.digits)-1] == 0 {
		x.digits = x.digits[:len(x.digits)-1]
	}
	if len(x.digits) == 0 {
		x.digits = []uint64{0}
	}
}

// Less reports whether x < other, comparing digit count first and then
// digits from most to least significant, exactly as bigint::operator<.
func (x Int) Less(other Int) bool {
	if len(x.digits) != len(other.digits) {
		return len(x.digits) < len(other.digits)
	}
	for i := len(x.digits) - 1; i >= 0; i-- {
		if x.digits[i] != other.digits[i] {
			return x.digits[i] < other.digits[i]
		}
	}
	return false
}

// Equal reports whether x == other.
func (x Int) Equal(other Int) bool {
	if len(x.digits) != len(other.digits) {
		return false
	}
	for i := range x.digits {
		if x.digits[i] != other.digits[i] {
			return false
		}
	}
	return true
}

// Add returns x+other, a ripple-carry digit-wise addition matching
// bigint::operator+.
func (x Int) Add(other Int) Int {
	n := len(x.digits)
	if len(other.digits) > n {
		n = len(other.digits)
	}
	result := make([]uint64, n+1)

	for i := 0; i < n; i++ {
		var a, b uint64
		if i < len(x.digits) {
			a = x.digits[i]
		}
		if i < len(other.digits) {
			b = other.digits[i]
		}
		sum, carry := bits.Add64(result[i], a, 0)
		sum, carry2 := bits.Add64(sum, b, 0)
		result[i] = sum
		result[i+1] += carry + carry2
	}

	r := Int{digits: result}
	r.removeLeadingZeros()
	return r
}

// Mul returns x*other. Below bigMulThreshold digits it runs the
// schoolbook algorithm from bigint::operator* (umul64x64 plus carry
// propagation, here expressed with math/bits.Mul64/Add64 instead of the
// original's cpual::umul64x64 primitive — the stdlib's intrinsic-backed
// equivalent). At or above the threshold it defers to bigfft via
// math/big for its FFT-accelerated multiply.
func (x Int) Mul(other Int) Int {
	if len(x.digits) >= bigMulThreshold || len(other.digits) >= bigMulThreshold {
		return mulBig(x, other)
	}

	a, b := x.digits, other.digits
	if len(a) > len(b) {
		a, b = b, a
	}
	result := make([]uint64, len(a)+len(b))

	for i, av := range a {
		var carry uint64
		for j, bv := range b {
			hi, lo := bits.Mul64(av, bv)
			sum, c1 := bits.Add64(result[i+j], lo, 0)
			sum, c2 := bits.Add64(sum, carry, 0)
			result[i+j] = sum
			carry = hi + c1 + c2
		}
		k := i + len(b)
		for carry != 0 {
			sum, c := bits.Add64(result[k], carry, 0)
			result[k] = sum
			carry = c
			k++
		}
	}

	r := Int{digits: result}
	r.removeLeadingZeros()
	return r
}

func mulBig(x, other Int) Int {
	bx := x.ToBig()
	by := other.ToBig()
	product := bigfft.Mul(bx, by)
	return fromBigInt(product)
}

// ToBig widens x to a math/big.Int, for callers (the decimal parser's
// slow path) that need to feed a correctly-rounding big.Rat.
func (x Int) ToBig() *big.Int { return toBigInt(x) }

func toBigInt(x Int) *big.Int {
	result := new(big.Int)
	base := new(big.Int).Lsh(big.NewInt(1), 64)
	for i := len(x.digits) - 1; i >= 0; i-- {
		result.Mul(result, base)
		result.Add(result, new(big.Int).SetUint64(x.digits[i]))
	}
	return result
}

func fromBigInt(v *big.Int) Int {
	if v.Sign() == 0 {
		return NewInt(0)
	}
	mask := new(big.Int).SetUint64(^uint64(0))
	var digits []uint64
	tmp := new(big.Int).Set(v)
	for tmp.Sign() != 0 {
		word := new(big.Int).And(tmp, mask)
		digits = append(digits, word.Uint64())
		tmp.Rsh(tmp, 64)
	}
	return NewIntFromDigits(digits)
}

// Digits returns the little-endian base-2^64 digit slice, for callers
// (notably the decimal parser) that need direct access to the magnitude.
func (x Int) Digits() []uint64 { return append([]uint64(nil), x.digits...) }

// BitLen returns the number of bits needed to represent x.
func (x Int) BitLen() int {
	top := len(x.digits) - 1
	return top*64 + bits.Len64(x.digits[top])
}
