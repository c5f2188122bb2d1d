package mathf

import "github.com/sixitbb/sixit-dmath/dscalar"

// Atan computes atan(x), transcribed from
// original_source/sixit/dmath/mathf/atan.h (fdlibm's single-precision
// atanf): range-reduces |x| into one of four sub-intervals via the
// half-angle identities, each anchored to a precomputed atanHi/atanLo pair,
// then evaluates a degree-5 minimax polynomial in the reduced argument.
// Both the range reduction and the polynomial evaluation run through
// dscalar.Add/Sub/Mul/Div on T.
//
// Special cases:
//   - Atan(NaN) = NaN
//   - Atan(±Inf) = ±pi/2
//   - Atan(±0) = ±0
func Atan[T dscalar.Kind](x T) T {
	if dscalar.IsNaN(x) {
		return x
	}
	if dscalar.IsInf(x) {
		if !dscalar.GetSign(x) {
			return dscalar.New[T](pio2Hi)
		}
		return dscalar.New[T](-pio2Hi)
	}
	if dscalar.EqualToZero(x) {
		return x
	}

	sign := dscalar.GetSign(x)
	ax := Abs(x)
	one := dscalar.FromBits[T](0x3f800000)
	two := dscalar.FromBits[T](0x40000000)

	var id int
	switch {
	case dscalar.Lt(ax, dscalar.New[T](0.4375)):
		id = -1
	case dscalar.Lt(ax, dscalar.New[T](1.1875)):
		if dscalar.Lt(ax, dscalar.New[T](0.6875)) {
			id = 0
			ax = dscalar.Div(dscalar.Sub(dscalar.Mul(two, ax), one), dscalar.Add(two, ax))
		} else {
			id = 1
			ax = dscalar.Div(dscalar.Sub(ax, one), dscalar.Add(ax, one))
		}
	case dscalar.Lt(ax, dscalar.New[T](2.4375)):
		id = 2
		oneFive := dscalar.New[T](1.5)
		ax = dscalar.Div(dscalar.Sub(ax, oneFive), dscalar.Add(one, dscalar.Mul(oneFive, ax)))
	default:
		id = 3
		ax = dscalar.Div(dscalar.Neg(one), ax)
	}

	z := dscalar.Mul(ax, ax)
	w := dscalar.Mul(z, z)
	t0, t1 := dscalar.New[T](atanT[0]), dscalar.New[T](atanT[1])
	t2, t3 := dscalar.New[T](atanT[2]), dscalar.New[T](atanT[3])
	t4 := dscalar.New[T](atanT[4])
	s1 := dscalar.Mul(z, dscalar.Add(t0, dscalar.Mul(w, dscalar.Add(t2, dscalar.Mul(w, t4)))))
	s2 := dscalar.Mul(w, dscalar.Add(t1, dscalar.Mul(w, t3)))
	p := dscalar.Mul(ax, dscalar.Add(s1, s2))

	var result T
	if id < 0 {
		result = dscalar.Sub(ax, p)
	} else {
		hi := dscalar.New[T](atanHi[id])
		lo := dscalar.New[T](atanLo[id])
		result = dscalar.Sub(hi, dscalar.Sub(dscalar.Sub(p, lo), ax))
	}
	if sign {
		result = dscalar.Neg(result)
	}
	return result
}

// Atan2 computes atan2(y, x), quadrant-correcting Atan(y/x) per
// original_source/sixit/dmath/mathf/atan2.h, entirely through dscalar's
// comparison/arithmetic dispatch rather than host float32 comparisons.
func Atan2[T dscalar.Kind](y, x T) T {
	if dscalar.IsNaN(x) || dscalar.IsNaN(y) {
		return dscalar.FromBits[T](0x7fc00000)
	}
	zero := dscalar.FromBits[T](0)
	switch {
	case dscalar.Gt(x, zero) && !dscalar.IsInf(x):
		if dscalar.EqualToZero(y) {
			return y
		}
		return Atan(dscalar.Div(y, x))
	case dscalar.Lt(x, zero) && !dscalar.IsInf(x):
		r := Atan(dscalar.Div(y, x))
		if !dscalar.GetSign(y) {
			return dscalar.Add(r, dscalar.New[T](piHi))
		}
		return dscalar.Sub(r, dscalar.New[T](piHi))
	case dscalar.EqualToZero(x) && dscalar.EqualToZero(y):
		if !dscalar.GetSign(x) {
			return y
		}
		return dscalar.Neg(y)
	case dscalar.IsInf(x):
		if !dscalar.GetSign(x) {
			if dscalar.IsInf(y) {
				if !dscalar.GetSign(y) {
					return dscalar.New[T](pio4Hi)
				}
				return dscalar.New[T](-pio4Hi)
			}
			return zero
		}
		if dscalar.IsInf(y) {
			if !dscalar.GetSign(y) {
				return dscalar.New[T](3 * pio4Hi)
			}
			return dscalar.New[T](-3 * pio4Hi)
		}
		if !dscalar.GetSign(y) {
			return dscalar.New[T](piHi)
		}
		return dscalar.New[T](-piHi)
	default:
		if !dscalar.GetSign(y) {
			return dscalar.New[T](pio2Hi)
		}
		return dscalar.New[T](-pio2Hi)
	}
}
