package dscalar

// This file dispatches the four arithmetic operators across the five Kind
// realizations. The shape follows hwy/ops_base.go's addHelper: a type
// switch on the concrete kind selects the realization-specific
// implementation, then the result is converted back to the generic type
// parameter T. Cmp and the predicates built on it do not dispatch: they
// compare the decoded float32 values for every kind.

// Add returns a+b with IEEE-754 binary32 semantics, computed the way T's
// realization requires.
func Add[T Kind](a, b T) T {
	switch any(a).(type) {
	case Soft:
		return T(softAdd(uint32(a), uint32(b)))
	case AsmFenced:
		return T(asmFencedAdd(uint32(a), uint32(b)))
	case TUIsolated:
		return T(tuIsolatedAdd(uint32(a), uint32(b)))
	case Strict:
		return T(strictAdd(uint32(a), uint32(b)))
	case Host:
		return T(hostAdd(uint32(a), uint32(b)))
	default:
		var zero T
		return zero
	}
}

// Sub returns a-b.
func Sub[T Kind](a, b T) T {
	switch any(a).(type) {
	case Soft:
		return T(softSub(uint32(a), uint32(b)))
	case AsmFenced:
		return T(asmFencedSub(uint32(a), uint32(b)))
	case TUIsolated:
		return T(tuIsolatedSub(uint32(a), uint32(b)))
	case Strict:
		return T(strictSub(uint32(a), uint32(b)))
	case Host:
		return T(hostSub(uint32(a), uint32(b)))
	default:
		var zero T
		return zero
	}
}

// Mul returns a*b.
func Mul[T Kind](a, b T) T {
	switch any(a).(type) {
	case Soft:
		return T(softMul(uint32(a), uint32(b)))
	case AsmFenced:
		return T(asmFencedMul(uint32(a), uint32(b)))
	case TUIsolated:
		return T(tuIsolatedMul(uint32(a), uint32(b)))
	case Strict:
		return T(strictMul(uint32(a), uint32(b)))
	case Host:
		return T(hostMul(uint32(a), uint32(b)))
	default:
		var zero T
		return zero
	}
}

// Div returns a/b. Division by zero yields signed infinity; 0/0 yields NaN,
// per IEEE-754 — dscalar never signals these out-of-band.
func Div[T Kind](a, b T) T {
	switch any(a).(type) {
	case Soft:
		return T(softDiv(uint32(a), uint32(b)))
	case AsmFenced:
		return T(asmFencedDiv(uint32(a), uint32(b)))
	case TUIsolated:
		return T(tuIsolatedDiv(uint32(a), uint32(b)))
	case Strict:
		return T(strictDiv(uint32(a), uint32(b)))
	case Host:
		return T(hostDiv(uint32(a), uint32(b)))
	default:
		var zero T
		return zero
	}
}

// Neg returns -a, the sign bit flipped.
func Neg[T Kind](a T) T {
	return T(uint32(a) ^ 0x8000_0000)
}

// Cmp returns the IEEE-754 ordering of a and b: -1 if a<b, 0 if a==b, 1 if
// a>b, and 2 if the pair is unordered (either operand is NaN).
func Cmp[T Kind](a, b T) int {
	af, bf := Float32(a), Float32(b)
	switch {
	case af != af || bf != bf:
		return 2
	case af < bf:
		return -1
	case af > bf:
		return 1
	default:
		return 0
	}
}

// Eq reports whether a==b under IEEE-754 rules (NaN never equal, ±0 equal).
func Eq[T Kind](a, b T) bool { return Cmp(a, b) == 0 }

// Lt reports a<b.
func Lt[T Kind](a, b T) bool { return Cmp(a, b) == -1 }

// Le reports a<=b.
func Le[T Kind](a, b T) bool { c := Cmp(a, b); return c == -1 || c == 0 }

// Gt reports a>b.
func Gt[T Kind](a, b T) bool { return Cmp(a, b) == 1 }

// Ge reports a>=b.
func Ge[T Kind](a, b T) bool { c := Cmp(a, b); return c == 1 || c == 0 }

// Ne reports a!=b (true for NaN operands, matching IEEE-754).
func Ne[T Kind](a, b T) bool { return !Eq(a, b) }
