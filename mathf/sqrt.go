package mathf

import "github.com/sixitbb/sixit-dmath/dscalar"

// Sqrt computes the square root of x using a bit-hack initial estimate
// (the classic "magic constant" halving of the exponent field) followed by
// four Newton-Raphson refinement steps, the same two-stage shape as
// original_source/sixit/dmath/mathf/sqrt.h's fdlibm-derived routine. The
// initial guess is built directly from x's bits via FromBits/
// BitCastToIEEEUint32; every refinement step runs through T's own
// dscalar.Add/Mul/Div so the iteration inherits whichever kind T realizes,
// instead of dropping to host float32 arithmetic.
//
// Special cases:
//   - Sqrt(NaN) = NaN
//   - Sqrt(x) = NaN for x < 0
//   - Sqrt(+Inf) = +Inf
//   - Sqrt(±0) = ±0
func Sqrt[T dscalar.Kind](x T) T {
	if dscalar.IsNaN(x) {
		return x
	}
	if dscalar.EqualToZero(x) {
		return x
	}
	f := dscalar.Float32(x)
	if f < 0 {
		return dscalar.FromBits[T](0x7fc00000)
	}
	if dscalar.IsInf(x) {
		return x
	}

	bits := dscalar.BitCastToIEEEUint32(x)
	guess := (bits >> 1) + 0x1fbd1df5
	y := dscalar.FromBits[T](guess)
	half := dscalar.FromBits[T](0x3f000000) // 0.5, exact

	for i := 0; i < 4; i++ {
		y = dscalar.Mul(half, dscalar.Add(y, dscalar.Div(x, y)))
	}
	return y
}
