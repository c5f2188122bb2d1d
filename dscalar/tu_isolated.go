package dscalar

// TUIsolated (L1c) approximates "declared in one translation unit, defined
// in another, with inlining and LTO disabled"
// (original_source/sixit/dmath/gamefloat/ieee_float_static_lib.h built a
// real static-library boundary around this in the original). Go has no
// per-file compilation unit or LTO switch to split a declaration from its
// definition the way a C++ header/source pair does, so the separation here
// is file-only: this file documents the contract, tu_isolated_ops.go
// carries every operator body, each marked //go:noinline so the compiler
// cannot inline the call across the file boundary. cmd/dmath-noinline-vet
// checks the pragma is present on every one of them, which is the nearest
// Go-native enforcement of "assert no whole-program optimization" from
// spec.md §4.2.3 — see DESIGN.md's Open Questions.
