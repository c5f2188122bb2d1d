//go:build !amd64 && !arm64

package dscalar

// On targets this package has not been validated against, AsmFenced's
// single-hardware-instruction contract cannot be asserted, so it reports
// unsupported and callers fall back to Soft or Strict. Mirrors
// hwy/dispatch_other.go's conservative scalar-only fallback.
func detectAsmFencedSupport() {
	asmFencedSupported = false
}
