package mathf

import "github.com/sixitbb/sixit-dmath/dscalar"

// Log computes ln(x) by splitting x = m * 2^e with m in [sqrt(2)/2,
// sqrt(2)), then evaluating the odd-series-in-f expansion of atanh(f) with
// f=(m-1)/(m+1), matching the fdlibm decomposition used by
// original_source/sixit/dmath/mathf/log.h and hwy/contrib/math/log_base.go's
// fallback contract. The mantissa/exponent split is bit-level (FromBits/
// BitCastToIEEEUint32), but the series evaluation itself runs entirely
// through dscalar.Add/Sub/Mul/Div on T.
//
// Special cases:
//   - Log(x) = NaN for x < 0
//   - Log(0) = -Inf
//   - Log(+Inf) = +Inf
//   - Log(NaN) = NaN
func Log[T dscalar.Kind](x T) T {
	if dscalar.IsNaN(x) {
		return x
	}
	if dscalar.GetSign(x) && !dscalar.EqualToZero(x) {
		return dscalar.FromBits[T](0x7fc00000)
	}
	if dscalar.EqualToZero(x) {
		return dscalar.FromBits[T](0xff800000)
	}
	if dscalar.IsInf(x) {
		return x
	}

	bits := dscalar.BitCastToIEEEUint32(x)
	e := int32((bits>>23)&0xff) - 127
	m := dscalar.FromBits[T]((bits &^ (uint32(0xff) << 23)) | (127 << 23))

	threshold := dscalar.New[T](logSqrt2 * 2)
	half := dscalar.FromBits[T](0x3f000000) // 0.5
	if dscalar.Gt(m, threshold) {
		m = dscalar.Mul(m, half)
		e++
	}

	one := dscalar.FromBits[T](0x3f800000)
	frac := dscalar.Div(dscalar.Sub(m, one), dscalar.Add(m, one))
	frac2 := dscalar.Mul(frac, frac)
	l1 := dscalar.New[T](logL1)
	l2 := dscalar.New[T](logL2)
	l3 := dscalar.New[T](logL3)
	l4 := dscalar.New[T](logL4)
	l5 := dscalar.New[T](logL5)
	series := dscalar.Add(l1, dscalar.Mul(frac2, dscalar.Add(l2, dscalar.Mul(frac2, dscalar.Add(l3,
		dscalar.Mul(frac2, dscalar.Add(l4, dscalar.Mul(frac2, l5))))))))
	two := dscalar.FromBits[T](0x40000000)
	twoFrac := dscalar.Mul(two, frac)
	logM := dscalar.Add(twoFrac, dscalar.Mul(frac, dscalar.Mul(frac2, series)))

	ef := dscalar.New[T](float32(e))
	ln2Hi := dscalar.New[T](log2Ln2Hi)
	ln2Lo := dscalar.New[T](log2Ln2Lo)
	return dscalar.Add(dscalar.Add(dscalar.Mul(ef, ln2Hi), dscalar.Mul(ef, ln2Lo)), logM)
}

// Log10 computes log10(x) = Log(x) * (1/ln 10), ported from
// original_source/sixit/dmath/mathf/log10.h's reduction to Log.
func Log10[T dscalar.Kind](x T) T {
	return dscalar.Mul(Log(x), dscalar.New[T](0.43429448190325176))
}
