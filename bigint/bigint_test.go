package bigint

import "testing"

func TestAddBasic(t *testing.T) {
	a := NewInt(1<<63 | 5)
	b := NewInt(1<<63 | 7)
	got := a.Add(b)
	want := NewIntFromDigits([]uint64{12, 1})
	if !got.Equal(want) {
		t.Errorf("Add overflow-carry mismatch: got %v, want %v", got.Digits(), want.Digits())
	}
}

func TestMulSchoolbook(t *testing.T) {
	a := NewInt(1_000_000_007)
	b := NewInt(1_000_000_009)
	got := a.Mul(b)
	// 1000000007 * 1000000009 = 1000000016000000063
	want := NewInt(1000000016000000063)
	if !got.Equal(want) {
		t.Errorf("Mul = %v, want %v", got.Digits(), want.Digits())
	}
}

func TestLessAndEqual(t *testing.T) {
	a := NewInt(5)
	b := NewInt(10)
	if !a.Less(b) {
		t.Error("5 should be less than 10")
	}
	if b.Less(a) {
		t.Error("10 should not be less than 5")
	}
	if !a.Equal(NewInt(5)) {
		t.Error("5 should equal 5")
	}
}

func TestMulBigPath(t *testing.T) {
	digits := make([]uint64, bigMulThreshold+1)
	digits[0] = 1
	digits[len(digits)-1] = 1
	a := NewIntFromDigits(digits)
	b := NewInt(2)
	got := a.Mul(b)
	if got.digits[0] != 2 {
		t.Errorf("low digit = %d, want 2", got.digits[0])
	}
}

func TestPow5AndPow10(t *testing.T) {
	p := Pow5(3) // 125
	if p.Hi>>63 != 1 {
		t.Error("Pow5 result should be normalized with MSB set")
	}
	// 125 = 0x7D, normalized to top bit: 0x7D << 57
	want := NewReal(125)
	if p != want {
		t.Errorf("Pow5(3) = %+v, want %+v", p, want)
	}

	ten := Pow10(1)
	wantTen := NewReal(10)
	if ten != wantTen {
		t.Errorf("Pow10(1) = %+v, want %+v", ten, wantTen)
	}
}
