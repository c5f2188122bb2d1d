package mathf

import "github.com/sixitbb/sixit-dmath/dscalar"

// sindf and cosdf are the minimax polynomials valid for |x| <= pi/4,
// transcribed directly from original_source/sixit/dmath/mathf/__sindf.h
// and __cosdf.h (fdlibm's single-precision kernels), evaluated entirely
// through dscalar.Add/Mul on T so the polynomial inherits T's realization.
func sindf[T dscalar.Kind](x T) T {
	z := dscalar.Mul(x, x)
	w := dscalar.Mul(z, z)
	s1, s2 := dscalar.New[T](sinS1), dscalar.New[T](sinS2)
	s3, s4 := dscalar.New[T](sinS3), dscalar.New[T](sinS4)
	r := dscalar.Add(s3, dscalar.Mul(z, s4))
	s := dscalar.Mul(z, x)
	return dscalar.Add(
		dscalar.Add(x, dscalar.Mul(s, dscalar.Add(s1, dscalar.Mul(z, s2)))),
		dscalar.Mul(dscalar.Mul(s, w), r),
	)
}

func cosdf[T dscalar.Kind](x T) T {
	z := dscalar.Mul(x, x)
	w := dscalar.Mul(z, z)
	one := dscalar.FromBits[T](0x3f800000)
	c0, c1 := dscalar.New[T](cosC0), dscalar.New[T](cosC1)
	c2, c3 := dscalar.New[T](cosC2), dscalar.New[T](cosC3)
	r := dscalar.Add(c2, dscalar.Mul(z, c3))
	return dscalar.Add(
		dscalar.Add(dscalar.Add(one, dscalar.Mul(z, c0)), dscalar.Mul(w, c1)),
		dscalar.Mul(dscalar.Mul(w, z), r),
	)
}

// reduceQuadrant performs the medium-range argument reduction used by
// original_source/sixit/dmath/mathf/sin.h and cos.h: within 9*pi/4 of the
// origin, x is pulled into [-pi/4, pi/4] by subtracting the nearest
// multiple of pi/2 via dscalar.Sub/Mul on T, and the quadrant index is
// tracked so the caller can pick sindf vs cosdf and the correct sign.
// Beyond that range, the reduction falls back to a float64 remainder (a
// deliberate simplification of __rem_pio2f's multi-word Payne-Hanek
// reduction — see DESIGN.md); that fallback is the one place this
// function leaves T's own arithmetic, since there is no Payne-Hanek
// primitive in dscalar to route it through.
func reduceQuadrant[T dscalar.Kind](x T) (y T, quadrant int) {
	af := Abs(x)
	switch {
	case dscalar.Le(af, dscalar.New[T](pio4Hi)):
		return x, 0
	case dscalar.Le(af, dscalar.New[T](3*pio4Hi)):
		return quadReduce(x, 1)
	case dscalar.Le(af, dscalar.New[T](5*pio4Hi)):
		return quadReduce(x, 2)
	case dscalar.Le(af, dscalar.New[T](7*pio4Hi)):
		return quadReduce(x, 3)
	case dscalar.Le(af, dscalar.New[T](9*pio4Hi)):
		return quadReduce(x, 4)
	default:
		f := dscalar.Float32(x)
		n := float64(f) / float64(pio2Hi)
		k := int64(n + sign64Half(n))
		r := float32(float64(f) - float64(k)*float64(pio2Hi))
		return dscalar.New[T](r), int(k & 3)
	}
}

// quadReduce subtracts k*pi/2, taken with x's sign, from x in two steps
// (pio2Hi, then the pio2Lo correction) and returns the reduced value with
// its quadrant: k for positive x, -k (mod 4) for negative x.
func quadReduce[T dscalar.Kind](x T, k int64) (T, int) {
	hi, lo := dscalar.New[T](pio2Hi), dscalar.New[T](pio2Lo)
	q := int(k)
	if dscalar.GetSign(x) {
		hi, lo = dscalar.Neg(hi), dscalar.Neg(lo)
		q = -q
	}
	kf := dscalar.New[T](float32(k))
	return dscalar.Sub(dscalar.Sub(x, dscalar.Mul(kf, hi)), dscalar.Mul(kf, lo)), q & 3
}

func sign64Half(n float64) float64 {
	if n < 0 {
		return -0.5
	}
	return 0.5
}

// Sin computes sin(x), ported from original_source/sixit/dmath/mathf/sin.h.
//
// Special cases:
//   - Sin(±0) = ±0
//   - Sin(±Inf) = NaN
//   - Sin(NaN) = NaN
func Sin[T dscalar.Kind](x T) T {
	if dscalar.IsNaN(x) || dscalar.IsInf(x) {
		return dscalar.FromBits[T](0x7fc00000)
	}
	y, q := reduceQuadrant(x)
	switch q & 3 {
	case 0:
		return sindf(y)
	case 1:
		return cosdf(y)
	case 2:
		return sindf(dscalar.Neg(y))
	default:
		return dscalar.Neg(cosdf(y))
	}
}

// Cos computes cos(x), ported from original_source/sixit/dmath/mathf/cos's
// sibling reduction in sin.h/__cosdf.h.
//
// Special cases:
//   - Cos(±Inf) = NaN
//   - Cos(NaN) = NaN
func Cos[T dscalar.Kind](x T) T {
	if dscalar.IsNaN(x) || dscalar.IsInf(x) {
		return dscalar.FromBits[T](0x7fc00000)
	}
	y, q := reduceQuadrant(x)
	switch q & 3 {
	case 0:
		return cosdf(y)
	case 1:
		return dscalar.Neg(sindf(y))
	case 2:
		return dscalar.Neg(cosdf(y))
	default:
		return sindf(y)
	}
}

// Tan computes tan(x) = sin(x)/cos(x) via dscalar.Div, ported from the
// __tandf.h kernel's contract but implemented here as the ratio of the
// Sin/Cos above — a documented simplification versus __tandf.h's
// dedicated odd-polynomial kernel (see DESIGN.md).
func Tan[T dscalar.Kind](x T) T {
	if dscalar.IsNaN(x) || dscalar.IsInf(x) {
		return dscalar.FromBits[T](0x7fc00000)
	}
	return dscalar.Div(Sin(x), Cos(x))
}
