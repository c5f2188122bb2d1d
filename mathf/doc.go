// Package mathf implements the elementary-function suite (spec.md L5):
// Abs, Floor, Round, Fmod, Max, Sqrt, Sin, Cos, Tan, Asin, Acos, Atan,
// Atan2, Exp, Log, Log10, each generic over any dscalar.Kind. Every
// function uses the same argument-reduction-plus-polynomial technique as
// original_source/sixit/dmath/mathf (itself derived from fdlibm/musl's
// single-precision routines) and hwy/contrib/math's scalar fallbacks,
// reads and builds bit patterns through dscalar's trait functions, and
// performs its arithmetic through dscalar.Add/Sub/Mul/Div on T, so the
// result inherits T's realization. The exceptions are the large-argument
// branch of the trig reduction, which computes a float64 remainder, and
// Round's final truncation through dscalar.Fp2Int64.
package mathf
