package dscalar

import "math"

// Strict (L1d) is ported from
// original_source/sixit/dmath/gamefloat/ieee_float_if_strict_fp.h: a thin
// wrapper that trusts the host build to disable fused-multiply-add
// contraction and associative-math reordering. Go's compiler never performs
// either transformation on a plain binary float expression without an
// explicit math.FMA call, so every sequence point here is already exactly
// what spec.md §4.2.4 asks the host build flags to guarantee — this kind is
// always supported, unconditionally.

func strictAdd(a, b uint32) uint32 {
	x := math.Float32frombits(a)
	y := math.Float32frombits(b)
	return math.Float32bits(x + y)
}

func strictSub(a, b uint32) uint32 {
	x := math.Float32frombits(a)
	y := math.Float32frombits(b)
	return math.Float32bits(x - y)
}

func strictMul(a, b uint32) uint32 {
	x := math.Float32frombits(a)
	y := math.Float32frombits(b)
	return math.Float32bits(x * y)
}

func strictDiv(a, b uint32) uint32 {
	x := math.Float32frombits(a)
	y := math.Float32frombits(b)
	return math.Float32bits(x / y)
}
