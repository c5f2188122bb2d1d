package decimal

import (
	"math"
	"math/big"

	"github.com/samber/lo"

	"github.com/sixitbb/sixit-dmath/bigint"
)

// pow10Table holds 10^0..10^22 as exact float64 values: every one of
// those powers of ten is exactly representable in float64, so multiplying
// or dividing by a table entry (rather than computing pow(10,k) at
// runtime) is itself exact, which is what makes the fast path below
// correctly rounded. 23 entries, matching SPEC_FULL's fast-path contract.
// Built once at package init via lo.Map over lo.Range rather than hand-typed,
// so the one-exponent-per-entry invariant can't drift from the loop bound.
var pow10Table = lo.Map(lo.Range(23), func(k int, _ int) float64 { return math.Pow10(k) })

// maxFastDigits bounds the fast path to values whose integer significand
// still fits exactly in a float64 (2^53 > 10^15), matching SPEC_FULL's
// "≤15 significant digits" fast-path contract.
const maxFastDigits = 15

// ParseToFloat64 converts a decimal literal (an optional sign, digits, an
// optional fractional part, and an optional exponent, or "inf"/"nan") to
// the nearest representable float64.
func ParseToFloat64(s string) (float64, error) {
	d, err := tokenize(s)
	if err != nil {
		return 0, err
	}
	if d.isNaN {
		return math.NaN(), nil
	}
	if d.isInf {
		if d.negative {
			return math.Inf(-1), nil
		}
		return math.Inf(1), nil
	}

	f, err := toFloat64(d)
	if err != nil {
		return 0, err
	}
	if d.negative {
		f = -f
	}
	return f, nil
}

func toFloat64(d decimalNumber) (float64, error) {
	if d.digitValue == 0 {
		return 0, nil
	}

	if d.digitCount <= maxFastDigits && -22 <= d.decExp && d.decExp <= 22 {
		mant := float64(d.digitValue)
		if d.decExp >= 0 {
			return mant * pow10Table[d.decExp], nil
		}
		return mant / pow10Table[-d.decExp], nil
	}

	return slowPath(d)
}

// slowPath handles the cases the fast table can't cover exactly: large
// digit counts or exponents outside [-22,22].
//
// For a non-negative decimal exponent (d.decExp >= 0, magnitude only ever
// grows), it builds r = digitValue * 10^decExp as a bigint.Real — the
// gdtoa-style "BigReal r = y*5^e" bit assembly via bigint.Pow10/
// Real.MultReal spec.md names as the slow path's algorithm — and rounds
// that directly to float64 via Real.Float64, which returns +Inf on
// overflow rather than an out-of-band error (ParseToFloat64 then applies
// the sign).
//
// For a negative decimal exponent (division is required, and the result
// can be subnormal — bigint.Real has no division operation, and
// Real.Float64 does not handle the subnormal range), it falls back to an
// exact bigint.Int numerator/denominator pair handed to math/big.Rat.Float64
// for the final correctly-rounded conversion; reimplementing that last
// rounding step atop raw bigint arithmetic (effectively re-deriving
// Dragon4/Ryu) is out of scope here, and big.Rat's correct-rounding
// contract is a standard-library guarantee, not a third-party choice being
// passed over.
func slowPath(d decimalNumber) (float64, error) {
	if d.decExp >= 0 {
		scaled := bigint.NewReal(d.digitValue).MultReal(bigint.Pow10(d.decExp))
		// NewReal and the Pow5-seeded Pow10 each bake in an independent
		// 2^64 construction bias (see bigint.Real's doc); MultReal
		// combines the two into a 2^128 bias that must come back out
		// before the result can be read as digitValue*10^decExp.
		scaled.Pow -= 128
		return scaled.Float64(), nil
	}

	numerator := bigint.NewInt(d.digitValue).ToBig()
	denominator := tenPow(-d.decExp).ToBig()

	ratio := new(big.Rat).SetFrac(numerator, denominator)
	f, _ := ratio.Float64()
	return f, nil
}

func tenPow(k int) bigint.Int {
	result := bigint.NewInt(1)
	ten := bigint.NewInt(10)
	for i := 0; i < k; i++ {
		result = result.Mul(ten)
	}
	return result
}
