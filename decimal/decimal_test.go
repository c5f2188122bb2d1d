package decimal

import (
	"math"
	"strconv"
	"testing"
)

func TestParseBasic(t *testing.T) {
	cases := []string{"0", "1", "-1", "3.14159", "-3.14159", "1e10", "1.5e-10", "123456789.987654321"}
	for _, c := range cases {
		got, err := ParseToFloat64(c)
		if err != nil {
			t.Fatalf("ParseToFloat64(%q) error: %v", c, err)
		}
		want, err := strconv.ParseFloat(c, 64)
		if err != nil {
			t.Fatalf("strconv.ParseFloat(%q) error: %v", c, err)
		}
		if got != want {
			t.Errorf("ParseToFloat64(%q) = %v, want %v", c, got, want)
		}
	}
}

func TestParseMaxFloat64Literal(t *testing.T) {
	got, err := ParseToFloat64("1.7976931348623157e+308")
	if err != nil {
		t.Fatal(err)
	}
	if got != math.MaxFloat64 {
		t.Errorf("got %v, want MaxFloat64", got)
	}
}

func TestParseInfAndNaN(t *testing.T) {
	got, err := ParseToFloat64("inf")
	if err != nil || !math.IsInf(got, 1) {
		t.Errorf("ParseToFloat64(inf) = %v, %v", got, err)
	}
	got, err = ParseToFloat64("-inf")
	if err != nil || !math.IsInf(got, -1) {
		t.Errorf("ParseToFloat64(-inf) = %v, %v", got, err)
	}
	got, err = ParseToFloat64("nan")
	if err != nil || !math.IsNaN(got) {
		t.Errorf("ParseToFloat64(nan) = %v, %v", got, err)
	}
}

func TestParseZero(t *testing.T) {
	got, err := ParseToFloat64("0.0")
	if err != nil || got != 0 {
		t.Errorf("ParseToFloat64(0.0) = %v, %v", got, err)
	}
}

func TestParseMalformed(t *testing.T) {
	cases := []string{"", "abc", "1.2.3", "1e"}
	for _, c := range cases {
		if _, err := ParseToFloat64(c); err == nil {
			t.Errorf("ParseToFloat64(%q) should have failed", c)
		}
	}
}

// TestParseBitExactScenarios checks scenarios 1-3 of spec.md §8: each of
// these literals must round-trip to an exact float64 bit pattern, not
// just an approximately-right value.
func TestParseBitExactScenarios(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want uint64
	}{
		{"largest finite", "1.7976931348623157e+308", 0x7fefffffffffffff},
		{"smallest subnormal", "5e-324", 0x0000000000000001},
		{"negative zero", "-0.0", 0x8000000000000000},
	}
	for _, c := range cases {
		got, err := ParseToFloat64(c.in)
		if err != nil {
			t.Fatalf("%s: ParseToFloat64(%q) error: %v", c.name, c.in, err)
		}
		if bits := math.Float64bits(got); bits != c.want {
			t.Errorf("%s: ParseToFloat64(%q) bits = %#016x, want %#016x", c.name, c.in, bits, c.want)
		}
	}
}

func TestParseLongMantissaSlowPath(t *testing.T) {
	s := "1.23456789012345678901234567890123e50"
	got, err := ParseToFloat64(s)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := strconv.ParseFloat(s, 64)
	if got != want {
		t.Errorf("slow path: got %v, want %v", got, want)
	}
}
