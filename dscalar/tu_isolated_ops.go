package dscalar

import "math"

// Operator bodies for TUIsolated. See tu_isolated.go for the contract these
// satisfy.

//go:noinline
func tuIsolatedAdd(a, b uint32) uint32 {
	return math.Float32bits(math.Float32frombits(a) + math.Float32frombits(b))
}

//go:noinline
func tuIsolatedSub(a, b uint32) uint32 {
	return math.Float32bits(math.Float32frombits(a) - math.Float32frombits(b))
}

//go:noinline
func tuIsolatedMul(a, b uint32) uint32 {
	return math.Float32bits(math.Float32frombits(a) * math.Float32frombits(b))
}

//go:noinline
func tuIsolatedDiv(a, b uint32) uint32 {
	return math.Float32bits(math.Float32frombits(a) / math.Float32frombits(b))
}
