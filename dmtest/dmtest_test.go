package dmtest

import (
	"testing"

	"github.com/sixitbb/sixit-dmath/dscalar"
)

func TestApproxEqDeterministicIsExact(t *testing.T) {
	a := dscalar.New[dscalar.Soft](1.0)
	b := dscalar.New[dscalar.Soft](1.0 + 1e-6)
	if ApproxEq(a, b, 1) {
		t.Error("deterministic kinds must compare exactly, not approximately")
	}
}

func TestApproxEqHostDegrades(t *testing.T) {
	ResetInexactEqCount()
	a := dscalar.New[dscalar.Host](1.0)
	b := dscalar.New[dscalar.Host](float32(1.0 + 1e-7))
	if !ApproxEq(a, b, 4) {
		t.Error("Host values within epsilon should approximately match")
	}
	if InexactEqCount() != 1 {
		t.Errorf("InexactEqCount() = %d, want 1", InexactEqCount())
	}
}
