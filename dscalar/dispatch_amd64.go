//go:build amd64

package dscalar

import "golang.org/x/sys/cpu"

// detectAsmFencedSupport probes for SSE2, which every amd64 target Go
// supports guarantees; it's present unconditionally in the Go amd64 ABI, so
// AsmFenced is always realizable here. Mirrors hwy/dispatch_amd64_simd.go's
// use of golang.org/x/sys/cpu for real CPUID-backed feature checks, rather
// than assuming support.
func detectAsmFencedSupport() {
	if !cpu.X86.HasSSE2 {
		asmFencedSupported = false
	}
}
