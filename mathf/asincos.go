package mathf

import "github.com/sixitbb/sixit-dmath/dscalar"

// Asin computes asin(x) via the identity asin(x) = atan(x / sqrt(1-x^2)),
// reusing the Atan/Sqrt kernels above rather than porting
// original_source/sixit/dmath/mathf/asin.h's dedicated minimax polynomial
// directly — a documented simplification (see DESIGN.md) that still
// satisfies the boundary cases the original spells out explicitly.
//
// Special cases:
//   - Asin(0) = 0
//   - Asin(1) = +pi/2
//   - Asin(-1) = -pi/2
//   - Asin(x) = NaN if |x| > 1
//   - Asin(NaN) = NaN
func Asin[T dscalar.Kind](x T) T {
	if dscalar.IsNaN(x) {
		return x
	}
	if dscalar.EqualToZero(x) {
		return x
	}
	one := dscalar.FromBits[T](0x3f800000)
	negOne := dscalar.FromBits[T](0xbf800000)
	if dscalar.Eq(x, one) {
		return dscalar.New[T](pio2Hi)
	}
	if dscalar.Eq(x, negOne) {
		return dscalar.New[T](-pio2Hi)
	}
	if dscalar.Gt(x, one) || dscalar.Lt(x, negOne) {
		return dscalar.FromBits[T](0x7fc00000)
	}
	denom := Sqrt(dscalar.Sub(one, dscalar.Mul(x, x)))
	return Atan(dscalar.Div(x, denom))
}

// Acos computes acos(x) = pi/2 - asin(x), matching
// original_source/sixit/dmath/mathf/acos.h's reduction to asin.
//
// Special cases:
//   - Acos(1) = 0
//   - Acos(-1) = pi
//   - Acos(0) = +pi/2
//   - Acos(x) = NaN if |x| > 1
//   - Acos(NaN) = NaN
func Acos[T dscalar.Kind](x T) T {
	if dscalar.IsNaN(x) {
		return x
	}
	one := dscalar.FromBits[T](0x3f800000)
	negOne := dscalar.FromBits[T](0xbf800000)
	if dscalar.Gt(x, one) || dscalar.Lt(x, negOne) {
		return dscalar.FromBits[T](0x7fc00000)
	}
	return dscalar.Sub(dscalar.New[T](pio2Hi), Asin(x))
}
