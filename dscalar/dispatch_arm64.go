//go:build arm64

package dscalar

// All arm64 targets Go supports carry the base NEON/FP unit, so AsmFenced
// is always realizable. Mirrors hwy/dispatch_arm64.go's treatment of the
// arm64 baseline as unconditionally available.
func detectAsmFencedSupport() {}
