// Package dconfig provides the library's tunable-defaults surface: a
// Tunables struct holding default fixed-point widths and a Host-kind
// flag. No other package of this module reads it: fixed.Default uses its
// own DefaultNBits/DefaultNormalizedBits constants, and mathf evaluates
// its own polynomials for every kind, Host included, whatever
// UseHostForNonDeterministic is set to. Seeded from the environment the way
// hwy/dispatch.go's NoSimdEnv/EnableF16Env/MaxLanes env-var knobs are,
// generalized from SIMD-width toggles to dmath's own concerns.
package dconfig

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/mod/semver"
)

// Tunables holds the library's environment-seeded defaults.
type Tunables struct {
	FixedPointDefaultNBits     uint8
	FixedPointDefaultNormBits  uint8
	UseHostForNonDeterministic bool
}

// Option configures a Tunables via the functional-options pattern.
type Option func(*Tunables)

// WithFixedPointWidths overrides the default fixed-point bit widths.
func WithFixedPointWidths(nbits, normBits uint8) Option {
	return func(t *Tunables) {
		t.FixedPointDefaultNBits = nbits
		t.FixedPointDefaultNormBits = normBits
	}
}

// WithHostForNonDeterministic sets Tunables.UseHostForNonDeterministic.
// No package of this module reads the field, so it does not change which
// code path any arithmetic or mathf function takes.
func WithHostForNonDeterministic(enabled bool) Option {
	return func(t *Tunables) { t.UseHostForNonDeterministic = enabled }
}

// New builds a Tunables, seeding from the DMATH_* environment variables
// and then applying opts on top.
func New(opts ...Option) Tunables {
	t := Tunables{
		FixedPointDefaultNBits:    31,
		FixedPointDefaultNormBits: 30,
	}
	if v := os.Getenv("DMATH_FIXED_NBITS"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 8); err == nil {
			t.FixedPointDefaultNBits = uint8(n)
		}
	}
	if v := os.Getenv("DMATH_FIXED_NORMBITS"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 8); err == nil {
			t.FixedPointDefaultNormBits = uint8(n)
		}
	}
	if v := os.Getenv("DMATH_USE_HOST_NONDETERMINISTIC"); v != "" {
		t.UseHostForNonDeterministic = v == "1" || v == "true"
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// RequireMinGo returns an error unless goVersion is at least minVersion.
// Both are runtime.Version-style "goX.Y" strings passed in by the caller
// (so this package stays free of a runtime import it doesn't otherwise
// need); no environment variable is read. The comparison uses
// golang.org/x/mod/semver.
func RequireMinGo(goVersion, minVersion string) error {
	v1 := "v" + semverSuffix(goVersion)
	v2 := "v" + semverSuffix(minVersion)
	if !semver.IsValid(v1) || !semver.IsValid(v2) {
		return fmt.Errorf("dconfig: invalid go version string %q or %q", goVersion, minVersion)
	}
	if semver.Compare(v1, v2) < 0 {
		return fmt.Errorf("dconfig: go %s required, have %s", minVersion, goVersion)
	}
	return nil
}

func semverSuffix(v string) string {
	if len(v) > 2 && v[:2] == "go" {
		return v[2:]
	}
	return v
}
