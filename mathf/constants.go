package mathf

// Polynomial and range-reduction constants, ported from
// original_source/sixit/dmath/mathf/__sindf.h, __cosdf.h, atan.h, exp.h,
// log.h (fdlibm/musl single-precision minimax coefficients) and
// hwy/contrib/math/constants.go's float32 table. Kept as untyped float32
// literals rather than hex bit patterns: Go has no hex-float literal for
// float32 source constants the way C's 0x1.23p-4 does, so the decimal
// forms below are transcribed directly from the commented-out hi-precision
// values in those headers.

const (
	piHi     float32 = 3.1415927410e+00
	pio2Hi   float32 = 1.5707963705e+00
	pio2Lo   float32 = -4.3711388287e-08
	pio4Hi   float32 = 7.8539818525e-01
	twoOverPi float32 = 6.3661977237e-01
)

// __sindf / __cosdf minimax coefficients (|x| <= pi/4).
const (
	sinS1 float32 = -1.6666667163e-01
	sinS2 float32 = 8.3333337680e-03
	sinS3 float32 = -1.9841270114e-04
	sinS4 float32 = 2.7557314297e-06

	cosC0 float32 = -4.9999999206e-01
	cosC1 float32 = 4.1666645557e-02
	cosC2 float32 = -1.3887310680e-03
	cosC3 float32 = 2.4433825724e-05
)

// s1pio2..s4pio2: multiples of pi/2 from the medium-range sin/cos
// reduction of musl sinf.c/cosf.c, matching original_source/sin.h's
// __sin_data table. reduceQuadrant in trig.go does not use them; it
// multiplies pio2Hi and pio2Lo by k itself.
const (
	s1pio2 float32 = 1.0 * pio2Hi
	s2pio2 float32 = 2.0 * pio2Hi
	s3pio2 float32 = 3.0 * pio2Hi
	s4pio2 float32 = 4.0 * pio2Hi
)

// atanf coefficients (original_source/sixit/dmath/mathf/atan.h).
var (
	atanHi = [4]float32{4.6364760399e-01, 7.8539812565e-01, 9.8279368877e-01, 1.5707962513e+00}
	atanLo = [4]float32{5.0121582440e-09, 3.7748947079e-08, 3.4473217170e-08, 7.5497894159e-08}
	atanT  = [5]float32{3.3333328366e-01, -1.9999158382e-01, 1.4253635705e-01, -1.0648017377e-01, 6.1687607318e-02}
)

// expf coefficients (hwy/contrib/math/constants.go's expLn2Hi_f32 family),
// a classic range-reduction-plus-Taylor-polynomial in the style of
// original_source/sixit/dmath/mathf/exp.h's fallback.
const (
	expLn2Hi  float32 = 0.693359375
	expLn2Lo  float32 = -2.12194440e-4
	expInvLn2 float32 = 1.44269504088896341

	expOverflow  float32 = 88.72283905206835
	expUnderflow float32 = -87.33654475055310

	expC1 float32 = 1.0
	expC2 float32 = 0.5
	expC3 float32 = 0.16666666666666666
	expC4 float32 = 0.041666666666666664
	expC5 float32 = 0.008333333333333333
	expC6 float32 = 0.001388888888888889
)

// logf coefficients, same family as hwy/contrib/math's log constants: a
// range reduction to m in [sqrt(2)/2, sqrt(2)) followed by an atanh-series
// polynomial in f=(m-1)/(m+1).
const (
	logSqrt2    float32 = 0.70710678118654752440
	log2Ln2Hi   float32 = 0.693359375
	log2Ln2Lo   float32 = -2.12194440e-4
	logL1       float32 = 0.66666666666666666667
	logL2       float32 = 0.40000000000000002
	logL3       float32 = 0.28571428571428570
	logL4       float32 = 0.22222222222222221
	logL5       float32 = 0.18181818181818182
	log10Of2    float32 = 0.30102999566398120
	logInv10of2 float32 = 0.301029995663981195
)
