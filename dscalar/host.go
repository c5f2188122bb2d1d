package dscalar

import "math"

// Host (L1e) is the non-deterministic identity wrapper, ported from
// original_source/sixit/dmath/gamefloat/float_with_sixit.h. It exists only
// for A/B calibration against the deterministic kinds: its arithmetic is
// whatever the host FPU and compiler produce, with no fencing at all.

func hostAdd(a, b uint32) uint32 {
	return math.Float32bits(math.Float32frombits(a) + math.Float32frombits(b))
}

func hostSub(a, b uint32) uint32 {
	return math.Float32bits(math.Float32frombits(a) - math.Float32frombits(b))
}

func hostMul(a, b uint32) uint32 {
	return math.Float32bits(math.Float32frombits(a) * math.Float32frombits(b))
}

func hostDiv(a, b uint32) uint32 {
	return math.Float32bits(math.Float32frombits(a) / math.Float32frombits(b))
}
