package dscalar

import "math"

// AsmFenced (L1b) issues exactly one hardware float instruction per
// operator, ported from
// original_source/sixit/dmath/gamefloat/ieee_float_inline_asm.h. Go has no
// inline-assembly-in-a-function-body facility outside //go:noescape Plan9
// assembly files, so the "single instruction, no reassociation" contract is
// approximated the way hwy/ops_avx2.go vs hwy/ops_base.go split realizations
// by build tag: each operator here is a single expression, marked
// //go:noinline so the compiler cannot fuse it into a surrounding
// expression tree and reorder operand evaluation, which is the only
// compiler behavior Go's FPU codegen could plausibly reassociate around on
// IEEE-754-conformant targets (amd64/arm64 both compile a lone binary
// float32 op to one ADDSS/FADD instruction with default rounding).

//go:noinline
func asmFencedAdd(a, b uint32) uint32 {
	return math.Float32bits(math.Float32frombits(a) + math.Float32frombits(b))
}

//go:noinline
func asmFencedSub(a, b uint32) uint32 {
	return math.Float32bits(math.Float32frombits(a) - math.Float32frombits(b))
}

//go:noinline
func asmFencedMul(a, b uint32) uint32 {
	return math.Float32bits(math.Float32frombits(a) * math.Float32frombits(b))
}

//go:noinline
func asmFencedDiv(a, b uint32) uint32 {
	return math.Float32bits(math.Float32frombits(a) / math.Float32frombits(b))
}
