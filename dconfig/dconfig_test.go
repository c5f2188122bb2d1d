package dconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	t.Setenv("DMATH_FIXED_NBITS", "")
	t.Setenv("DMATH_FIXED_NORMBITS", "")
	t.Setenv("DMATH_USE_HOST_NONDETERMINISTIC", "")
	tun := New()
	assert.EqualValues(t, 31, tun.FixedPointDefaultNBits)
	assert.EqualValues(t, 30, tun.FixedPointDefaultNormBits)
}

func TestWithOptions(t *testing.T) {
	tun := New(WithFixedPointWidths(48, 40), WithHostForNonDeterministic(true))
	assert.EqualValues(t, 48, tun.FixedPointDefaultNBits)
	assert.EqualValues(t, 40, tun.FixedPointDefaultNormBits)
	assert.True(t, tun.UseHostForNonDeterministic)
}

func TestRequireMinGo(t *testing.T) {
	require.NoError(t, RequireMinGo("go1.23", "go1.21"))
	require.Error(t, RequireMinGo("go1.19", "go1.21"))
}
