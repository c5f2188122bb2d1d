package mathf

import (
	"math"
	"testing"

	"github.com/sixitbb/sixit-dmath/dscalar"
)

func near(t *testing.T, name string, got, want, tol float32) {
	t.Helper()
	d := got - want
	if d < 0 {
		d = -d
	}
	if d > tol {
		t.Errorf("%s = %v, want %v (tol %v)", name, got, want, tol)
	}
}

func TestAbsMaxMin(t *testing.T) {
	if dscalar.Float32(Abs(dscalar.New[dscalar.Soft](-3.5))) != 3.5 {
		t.Error("Abs(-3.5) != 3.5")
	}
	if dscalar.Float32(Max(dscalar.New[dscalar.Soft](1), dscalar.New[dscalar.Soft](2))) != 2 {
		t.Error("Max(1,2) != 2")
	}
	if dscalar.Float32(Min(dscalar.New[dscalar.Soft](1), dscalar.New[dscalar.Soft](2))) != 1 {
		t.Error("Min(1,2) != 1")
	}
}

func TestFloorRound(t *testing.T) {
	cases := []struct{ in, want float32 }{
		{1.5, 1}, {-1.5, -2}, {2.0, 2}, {-0.5, -1}, {0.25, 0},
	}
	for _, c := range cases {
		got := dscalar.Float32(Floor(dscalar.New[dscalar.Soft](c.in)))
		if got != c.want {
			t.Errorf("Floor(%v) = %v, want %v", c.in, got, c.want)
		}
	}
	if dscalar.Float32(Round(dscalar.New[dscalar.Soft](2.5))) != 3 {
		t.Error("Round(2.5) != 3")
	}
	if dscalar.Float32(Round(dscalar.New[dscalar.Soft](-2.5))) != -3 {
		t.Error("Round(-2.5) != -3")
	}
}

func TestFmod(t *testing.T) {
	got := dscalar.Float32(Fmod(dscalar.New[dscalar.Soft](5.5), dscalar.New[dscalar.Soft](2)))
	near(t, "Fmod(5.5,2)", got, 1.5, 1e-5)
}

func TestSqrt(t *testing.T) {
	got := dscalar.Float32(Sqrt(dscalar.New[dscalar.Soft](2.0)))
	near(t, "Sqrt(2)", got, float32(math.Sqrt2), 1e-4)
	if !dscalar.IsNaN(Sqrt(dscalar.New[dscalar.Soft](-1))) {
		t.Error("Sqrt(-1) should be NaN")
	}
}

// TestSqrtBitExact checks scenario 4 of spec.md §8: Sqrt(2) must land on
// the exact bit pattern 0x3fb504f3 for every deterministic kind, not just
// approximately agree with math.Sqrt2 on Soft.
func TestSqrtBitExact(t *testing.T) {
	const want = uint32(0x3fb504f3)
	if got := dscalar.Bits(Sqrt(dscalar.New[dscalar.Soft](2.0))); got != want {
		t.Errorf("Sqrt(2) Soft bits = %#08x, want %#08x", got, want)
	}
	if got := dscalar.Bits(Sqrt(dscalar.New[dscalar.Strict](2.0))); got != want {
		t.Errorf("Sqrt(2) Strict bits = %#08x, want %#08x", got, want)
	}
	if dscalar.IsSupported[dscalar.AsmFenced]() {
		if got := dscalar.Bits(Sqrt(dscalar.New[dscalar.AsmFenced](2.0))); got != want {
			t.Errorf("Sqrt(2) AsmFenced bits = %#08x, want %#08x", got, want)
		}
	}
	if dscalar.IsSupported[dscalar.TUIsolated]() {
		if got := dscalar.Bits(Sqrt(dscalar.New[dscalar.TUIsolated](2.0))); got != want {
			t.Errorf("Sqrt(2) TUIsolated bits = %#08x, want %#08x", got, want)
		}
	}
}

func TestTrig(t *testing.T) {
	pi := float32(math.Pi)
	near(t, "Sin(0)", dscalar.Float32(Sin(dscalar.New[dscalar.Soft](0))), 0, 1e-6)
	near(t, "Sin(pi/2)", dscalar.Float32(Sin(dscalar.New[dscalar.Soft](pi/2))), 1, 1e-4)
	near(t, "Cos(0)", dscalar.Float32(Cos(dscalar.New[dscalar.Soft](0))), 1, 1e-6)
	near(t, "Cos(pi)", dscalar.Float32(Cos(dscalar.New[dscalar.Soft](pi))), -1, 1e-4)
}

// ulpDiff32 returns the distance, in ULPs, between two same-sign-class
// float32 values via their bit patterns.
func ulpDiff32(a, b float32) uint32 {
	ab, bb := math.Float32bits(a), math.Float32bits(b)
	if ab > bb {
		return ab - bb
	}
	return bb - ab
}

// TestSinBitExactAcrossKinds checks scenario 5 of spec.md §8: Sin of the
// float32 rounding of pi must land within 2 ULP of -8.742278e-8f, and the
// exact bit pattern must be identical across every deterministic kind
// (the determinism/reference-agreement properties spec.md §8 also names).
func TestSinBitExactAcrossKinds(t *testing.T) {
	x := float32(3.1415927)
	want := float32(-8.742278e-8)

	soft := Sin(dscalar.New[dscalar.Soft](x))
	if d := ulpDiff32(dscalar.Float32(soft), want); d > 2 {
		t.Errorf("Sin(pi) Soft = %v, not within 2 ULP of %v (diff %d)", dscalar.Float32(soft), want, d)
	}
	softBits := dscalar.Bits(soft)

	if got := dscalar.Bits(Sin(dscalar.New[dscalar.Strict](x))); got != softBits {
		t.Errorf("Sin(pi) Strict bits = %#08x, want %#08x (Soft)", got, softBits)
	}
	if dscalar.IsSupported[dscalar.AsmFenced]() {
		if got := dscalar.Bits(Sin(dscalar.New[dscalar.AsmFenced](x))); got != softBits {
			t.Errorf("Sin(pi) AsmFenced bits = %#08x, want %#08x (Soft)", got, softBits)
		}
	}
	if dscalar.IsSupported[dscalar.TUIsolated]() {
		if got := dscalar.Bits(Sin(dscalar.New[dscalar.TUIsolated](x))); got != softBits {
			t.Errorf("Sin(pi) TUIsolated bits = %#08x, want %#08x (Soft)", got, softBits)
		}
	}
}

func TestAtanAtan2(t *testing.T) {
	near(t, "Atan(1)", dscalar.Float32(Atan(dscalar.New[dscalar.Soft](1))), float32(math.Pi)/4, 1e-4)
	near(t, "Atan2(1,1)", dscalar.Float32(Atan2(dscalar.New[dscalar.Soft](1), dscalar.New[dscalar.Soft](1))), float32(math.Pi)/4, 1e-4)
}

func TestAsinAcos(t *testing.T) {
	near(t, "Asin(1)", dscalar.Float32(Asin(dscalar.New[dscalar.Soft](1))), float32(math.Pi)/2, 1e-4)
	near(t, "Acos(0)", dscalar.Float32(Acos(dscalar.New[dscalar.Soft](0))), float32(math.Pi)/2, 1e-4)
}

func TestExpLog(t *testing.T) {
	near(t, "Exp(1)", dscalar.Float32(Exp(dscalar.New[dscalar.Soft](1))), float32(math.E), 1e-3)
	near(t, "Log(e)", dscalar.Float32(Log(dscalar.New[dscalar.Soft](float32(math.E)))), 1, 1e-4)
	near(t, "Log10(100)", dscalar.Float32(Log10(dscalar.New[dscalar.Soft](100))), 2, 1e-3)
}
