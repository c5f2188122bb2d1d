package mathf

import "github.com/sixitbb/sixit-dmath/dscalar"

// Exp computes e^x via range reduction (x = k*ln2 + r, |r| <= ln2/2)
// followed by a degree-6 Taylor polynomial in r, the same shape as
// original_source/sixit/dmath/mathf/exp.h's fallback path and
// hwy/contrib/math/constants.go's expLn2Hi_f32/expC1_f32.. family. The
// reduction and polynomial evaluation run entirely through
// dscalar.Add/Sub/Mul on T; only the reduction index k is ever widened to
// a plain int32, since it is a loop/exponent count, not a float result.
//
// Special cases:
//   - Exp(NaN) = NaN
//   - Exp(+Inf) = +Inf
//   - Exp(-Inf) = 0
//   - Exp(x) = +Inf for x > expOverflow (overflow)
//   - Exp(x) = 0 for x < expUnderflow (underflow)
func Exp[T dscalar.Kind](x T) T {
	if dscalar.IsNaN(x) {
		return x
	}
	if dscalar.IsInf(x) {
		if !dscalar.GetSign(x) {
			return x
		}
		return dscalar.FromBits[T](0)
	}
	if dscalar.Gt(x, dscalar.New[T](expOverflow)) {
		return dscalar.FromBits[T](0x7f800000)
	}
	if dscalar.Lt(x, dscalar.New[T](expUnderflow)) {
		return dscalar.FromBits[T](0)
	}

	invLn2 := dscalar.New[T](expInvLn2)
	half := dscalar.FromBits[T](0x3f000000) // 0.5
	if dscalar.GetSign(x) {
		half = dscalar.FromBits[T](0xbf000000) // -0.5
	}
	kf := dscalar.Add(dscalar.Mul(x, invLn2), half)
	kInt := int32(dscalar.Fp2Int64(kf))
	k := dscalar.New[T](float32(kInt))

	ln2Hi := dscalar.New[T](expLn2Hi)
	ln2Lo := dscalar.New[T](expLn2Lo)
	r := dscalar.Sub(dscalar.Sub(x, dscalar.Mul(k, ln2Hi)), dscalar.Mul(k, ln2Lo))

	c1 := dscalar.New[T](expC1)
	c2 := dscalar.New[T](expC2)
	c3 := dscalar.New[T](expC3)
	c4 := dscalar.New[T](expC4)
	c5 := dscalar.New[T](expC5)
	c6 := dscalar.New[T](expC6)
	// e^r ~= 1 + r*(c1 + r*(c2 + ... + r*c6)), with ck = 1/k!.
	poly := dscalar.Add(c1, dscalar.Mul(r, dscalar.Add(c1, dscalar.Mul(r, dscalar.Add(c2, dscalar.Mul(r, dscalar.Add(c3,
		dscalar.Mul(r, dscalar.Add(c4, dscalar.Mul(r, dscalar.Add(c5, dscalar.Mul(r, c6))))))))))))
	return dscalar.Mul(poly, pow2[T](kInt))
}

// pow2 returns 2^k for k in roughly [-127,128] by direct exponent-field
// construction, avoiding repeated multiplication.
func pow2[T dscalar.Kind](k int32) T {
	const bias = 127
	biased := k + bias
	if biased <= 0 {
		return dscalar.FromBits[T](0)
	}
	if biased >= 0xff {
		return dscalar.FromBits[T](0x7f800000)
	}
	return dscalar.FromBits[T](uint32(biased) << 23)
}
