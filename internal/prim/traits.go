package prim

import "fmt"

// Trait queries over the floating-point encodings. Each one is defined only
// for the nine floating-point types and panics on anything else: a caller
// reaching these with a non-float type has already violated an internal
// contract, and a wrong numeric constant here would silently corrupt every
// computation lowered through the backend. For the same reason every switch
// enumerates its cases explicitly instead of falling back to a generic
// formula; a newly added encoding must be entered into each table on
// purpose.

func notFloat(fn string, t Type) string {
	return fmt.Sprintf("prim: %s: not a floating-point type %v", fn, t)
}

// SignificandWidth returns the number of significand bits, counting the
// implicit leading digit of normalized values.
func SignificandWidth(t Type) int {
	switch t {
	case F16:
		return 11
	case F32:
		return 24
	case F64:
		return 53
	case BF16:
		return 8
	case F8E5M2, F8E5M2FNUZ:
		return 3
	case F8E4M3FN, F8E4M3B11FNUZ, F8E4M3FNUZ:
		return 4
	default:
		panic(notFloat("SignificandWidth", t))
	}
}

// ExponentWidth returns the number of bits in the biased exponent field.
// An encoding splits its storage into one sign bit, the trailing
// significand field (significand width less the implicit leading digit)
// and the exponent, so the exponent width is whatever remains.
func ExponentWidth(t Type) int {
	trailingSignificand := SignificandWidth(t) - 1
	const signBits = 1
	return t.BitWidth() - trailingSignificand - signBits
}

// UnderflowExponent returns one above the minimum exponent of a normalized
// value, in the convention where the significand lies in [1, 2). Exponents
// below it require a denormalized representation.
func UnderflowExponent(t Type) int {
	switch t {
	case F16:
		return -13
	case F32:
		return -125
	case F64:
		return -1021
	case BF16:
		return -125
	case F8E5M2:
		return -13
	case F8E4M3FN:
		return -5
	case F8E4M3B11FNUZ:
		return -9
	case F8E5M2FNUZ:
		return -14
	case F8E4M3FNUZ:
		return -6
	default:
		panic(notFloat("UnderflowExponent", t))
	}
}

// OverflowExponent returns one above the maximum exponent of a finite
// value; at this exponent the encoding overflows to infinity or to an
// unrepresentable magnitude.
func OverflowExponent(t Type) int {
	switch t {
	case F16:
		return 16
	case F32:
		return 128
	case F64:
		return 1024
	case BF16:
		return 128
	case F8E5M2:
		return 16
	case F8E4M3FN:
		return 9
	case F8E4M3B11FNUZ:
		return 5
	case F8E5M2FNUZ:
		return 16
	case F8E4M3FNUZ:
		return 8
	default:
		panic(notFloat("OverflowExponent", t))
	}
}

// ExponentBias returns the constant added to a true exponent to obtain its
// stored non-negative form. The FNUZ 8-bit encodings deviate from the
// balanced-bias convention to stretch their dynamic range; their biases are
// fixed by the format definitions and must stay hardcoded literals.
func ExponentBias(t Type) int {
	switch t {
	case F16, F32, F64, BF16, F8E5M2, F8E4M3FN:
		return 1<<(ExponentWidth(t)-1) - 1
	case F8E4M3B11FNUZ:
		return 11
	case F8E4M3FNUZ:
		return 8
	case F8E5M2FNUZ:
		return 16
	default:
		panic(notFloat("ExponentBias", t))
	}
}

// HasInfinity reports whether the encoding reserves bit patterns for signed
// infinity. Unlike the other trait queries it is total: non-float types
// simply have no infinity. Among the 8-bit encodings only F8E5M2 keeps the
// infinity patterns; the FN and FNUZ variants spend them on extra finite
// range.
func HasInfinity(t Type) bool {
	switch t {
	case F16, F32, F64, BF16, F8E5M2:
		return true
	default:
		return false
	}
}
