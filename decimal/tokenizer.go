// Package decimal implements the decimal-to-double parser layer (spec.md
// L4), ported from original_source/sixit/dmath/strtod/parse_json_double.h's
// _parse_ddata_old state machine and bsd/gdtoaimp.h's big-number slow path:
// a tokenizer over the whole input string collects up to 19 significant decimal digits plus a
// decimal exponent, and ParseToFloat64 converts that decimalNumber to the
// nearest float64 via a fast path for small, exact cases and a
// bigint-backed slow path otherwise.
package decimal

import (
	"fmt"
	"strings"
)

// decimalNumber is the tokenizer's output: a sign, up to 19 significant
// decimal digits packed into a uint64 (digitValue, digitCount of them),
// and the decimal exponent such that the represented value is
// ±digitValue * 10^decExp. Mirrors DoubleData from parse_json_double.h,
// with decimal_fraction_y/decimal_exp renamed to their Go meaning.
type decimalNumber struct {
	negative   bool
	digitValue uint64
	digitCount int
	decExp     int
	isInf      bool
	isNaN      bool
}

// maxSigDigits mirrors _parse_ddata_old's dig_count budget of 19: beyond
// that many significant digits, additional digits are dropped (digitValue
// then holds at least 10^18, so they can only change the result when it
// lies within about one part in 10^18 of a rounding boundary).
const maxSigDigits = 19

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// tokenize runs the state machine: optional sign, optional "inf"/"nan"
// literal, integer digits, optional fractional digits, optional exponent.
func tokenize(s string) (decimalNumber, error) {
	var d decimalNumber
	i := 0
	n := len(s)
	if i < n && (s[i] == '+' || s[i] == '-') {
		d.negative = s[i] == '-'
		i++
	}

	if i < n {
		switch {
		case strings.HasPrefix(strings.ToLower(s[i:]), "inf"):
			d.isInf = true
			return d, nil
		case strings.HasPrefix(strings.ToLower(s[i:]), "nan"):
			d.isNaN = true
			return d, nil
		}
	}

	start := i
	for i < n && s[i] == '0' {
		i++
	}
	sawDigit := i > start

	digCount := maxSigDigits
	pointSeen := false
	fracDigitsAfterPoint := 0
	zerosAfterPoint := 0

	for i < n && digCount > 0 && isDigit(s[i]) {
		digCount--
		d.digitValue = d.digitValue*10 + uint64(s[i]-'0')
		sawDigit = true
		i++
	}
	// Integer digits beyond the 19-digit budget are not kept in digitValue,
	// but each one still multiplies the value by ten.
	intDigitsDropped := 0
	for i < n && isDigit(s[i]) {
		intDigitsDropped++
		i++
	}

	if i < n && s[i] == '.' {
		pointSeen = true
		i++
		if d.digitValue == 0 {
			for i < n && s[i] == '0' {
				i++
				zerosAfterPoint++
			}
		}
		for i < n && digCount > 0 && isDigit(s[i]) {
			digCount--
			d.digitValue = d.digitValue*10 + uint64(s[i]-'0')
			fracDigitsAfterPoint++
			sawDigit = true
			i++
		}
	}
	// Any further fractional digits beyond the 19-digit budget are consumed
	// but dropped, matching _parse_ddata_old's trailing while loop.
	for i < n && isDigit(s[i]) {
		i++
	}

	if !sawDigit {
		return d, fmt.Errorf("decimal: %q has no digits", s)
	}

	d.digitCount = maxSigDigits - digCount
	d.decExp = intDigitsDropped
	if pointSeen {
		d.decExp -= fracDigitsAfterPoint + zerosAfterPoint
	}

	if i < n && (s[i] == 'e' || s[i] == 'E') {
		i++
		expNeg := false
		if i < n && (s[i] == '+' || s[i] == '-') {
			expNeg = s[i] == '-'
			i++
		}
		if i >= n || !isDigit(s[i]) {
			return d, fmt.Errorf("decimal: %q has malformed exponent", s)
		}
		exp := 0
		for i < n && isDigit(s[i]) {
			exp = exp*10 + int(s[i]-'0')
			i++
		}
		if expNeg {
			exp = -exp
		}
		d.decExp += exp
	}

	if i != n {
		return d, fmt.Errorf("decimal: %q has trailing garbage", s)
	}
	return d, nil
}
