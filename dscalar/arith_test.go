package dscalar

import (
	"math"
	"testing"
)

func allKindNames() []string {
	return []string{"soft", "asm_fenced", "tu_isolated", "strict", "host"}
}

func addFor(kind string, a, b float32) float32 {
	switch kind {
	case "soft":
		return Float32(Add(New[Soft](a), New[Soft](b)))
	case "asm_fenced":
		return Float32(Add(New[AsmFenced](a), New[AsmFenced](b)))
	case "tu_isolated":
		return Float32(Add(New[TUIsolated](a), New[TUIsolated](b)))
	case "strict":
		return Float32(Add(New[Strict](a), New[Strict](b)))
	case "host":
		return Float32(Add(New[Host](a), New[Host](b)))
	default:
		panic("unknown kind")
	}
}

func TestAddIdentity(t *testing.T) {
	for _, kind := range allKindNames() {
		t.Run(kind, func(t *testing.T) {
			got := addFor(kind, 3.5, 0)
			if got != 3.5 {
				t.Errorf("%s: 3.5+0 = %v, want 3.5", kind, got)
			}
		})
	}
}

func TestSubSelfIsZero(t *testing.T) {
	for _, kind := range allKindNames() {
		t.Run(kind, func(t *testing.T) {
			var got float32
			switch kind {
			case "soft":
				got = Float32(Sub(New[Soft](1.25), New[Soft](1.25)))
			case "asm_fenced":
				got = Float32(Sub(New[AsmFenced](1.25), New[AsmFenced](1.25)))
			case "tu_isolated":
				got = Float32(Sub(New[TUIsolated](1.25), New[TUIsolated](1.25)))
			case "strict":
				got = Float32(Sub(New[Strict](1.25), New[Strict](1.25)))
			case "host":
				got = Float32(Sub(New[Host](1.25), New[Host](1.25)))
			}
			if got != 0 {
				t.Errorf("%s: 1.25-1.25 = %v, want 0", kind, got)
			}
		})
	}
}

func TestSoftMatchesHostOnBasicArithmetic(t *testing.T) {
	cases := []struct{ a, b float32 }{
		{1, 2}, {0.1, 0.2}, {1e30, 1e-30}, {-3.5, 3.5}, {100, -7},
	}
	for _, c := range cases {
		s := New[Soft](c.a)
		t2 := New[Soft](c.b)
		got := Float32(Add(s, t2))
		want := c.a + c.b
		if got != want {
			t.Errorf("soft add(%v,%v) = %v, want %v", c.a, c.b, got, want)
		}
		got = Float32(Mul(s, t2))
		want = c.a * c.b
		if got != want {
			t.Errorf("soft mul(%v,%v) = %v, want %v", c.a, c.b, got, want)
		}
	}
}

func TestDivisionByZero(t *testing.T) {
	pos := New[Soft](1)
	zero := New[Soft](0)
	got := Float32(Div(pos, zero))
	if !math.IsInf(float64(got), 1) {
		t.Errorf("1/0 = %v, want +Inf", got)
	}
	negZero := New[Soft](float32(math.Copysign(0, -1)))
	got = Float32(Div(pos, negZero))
	if !math.IsInf(float64(got), -1) {
		t.Errorf("1/-0 = %v, want -Inf", got)
	}
	got = Float32(Div(zero, zero))
	if !math.IsNaN(float64(got)) {
		t.Errorf("0/0 = %v, want NaN", got)
	}
}

func TestNegAndCmp(t *testing.T) {
	a := New[Soft](2.0)
	b := Neg(a)
	if Float32(b) != -2.0 {
		t.Errorf("Neg(2.0) = %v, want -2.0", Float32(b))
	}
	if !Lt(b, a) {
		t.Error("-2.0 should be less than 2.0")
	}
	nan := New[Soft](float32(math.NaN()))
	if Eq(nan, nan) {
		t.Error("NaN should not equal itself")
	}
	if Cmp(nan, a) != 2 {
		t.Error("NaN comparisons should be unordered")
	}
}

func TestTraits(t *testing.T) {
	x := New[Soft](float32(math.Copysign(0, -1)))
	if !EqualToZero(x) {
		t.Error("-0.0 should equal zero under EqualToZero")
	}
	if !GetSign(x) {
		t.Error("-0.0 should carry the sign bit")
	}
	inf := New[Soft](float32(math.Inf(1)))
	if !IsInf(inf) || IsFinite(inf) {
		t.Error("+Inf classification wrong")
	}
	nan := New[Soft](float32(math.NaN()))
	if !IsNaN(nan) {
		t.Error("NaN classification wrong")
	}
	n := New[Soft](8.0)
	if GetExp(n) != 3 {
		t.Errorf("GetExp(8.0) = %d, want 3", GetExp(n))
	}
}

func TestIsSupportedAndIsDeterministic(t *testing.T) {
	if !IsSupported[Soft]() || !IsDeterministic[Soft]() {
		t.Error("Soft must always be supported and deterministic")
	}
	if IsDeterministic[Host]() {
		t.Error("Host must never be deterministic")
	}
	if IsFixedPoint[Soft]() {
		t.Error("dscalar kinds are never fixed point")
	}
}

func TestAlias(t *testing.T) {
	alias := Alias[Soft]()
	v := New[Soft](42.5)
	if alias.ValueToAlias(v) != 42.5 {
		t.Error("alias round-trip failed")
	}
	if Float32(alias.AliasToValue(42.5)) != 42.5 {
		t.Error("alias construction failed")
	}
}
