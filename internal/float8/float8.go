// Package float8 decodes the 8-bit floating-point encodings used by the
// prism backend. The encodings share a sign/exponent/mantissa split but
// disagree on how the all-ones exponent and the negative-zero pattern are
// spent, so decoding dispatches on the type's special-value convention
// while all width and bias facts come from the prim trait tables.
package float8

import (
	"fmt"
	"math"

	"fortio.org/safecast"

	"prism/internal/prim"
)

// Is8Bit reports whether t is one of the 8-bit floating-point encodings.
func Is8Bit(t prim.Type) bool {
	return t.IsFloatingPoint() && t.BitWidth() == 8
}

// layout returns the mantissa field width, exponent field width and bias
// of an 8-bit encoding.
func layout(t prim.Type) (mbits, ebits uint8, bias int) {
	if !Is8Bit(t) {
		panic(fmt.Sprintf("float8: not an 8-bit float type %v", t))
	}
	m, err := safecast.Conv[uint8](prim.SignificandWidth(t) - 1)
	if err != nil {
		panic(fmt.Errorf("float8: mantissa width overflow: %w", err))
	}
	e, err := safecast.Conv[uint8](prim.ExponentWidth(t))
	if err != nil {
		panic(fmt.Errorf("float8: exponent width overflow: %w", err))
	}
	return m, e, prim.ExponentBias(t)
}

// Decode expands one stored byte of encoding t to float32. Every bit
// pattern decodes to something: a finite value, a signed zero or infinity,
// or NaN, depending on the encoding's convention. It panics when t is not
// an 8-bit float type.
func Decode(t prim.Type, b uint8) float32 {
	mbits, ebits, bias := layout(t)
	neg := b>>7 == 1
	expField := (b >> mbits) & (1<<ebits - 1)
	mant := b & (1<<mbits - 1)

	switch t {
	case prim.F8E5M2:
		// IEEE convention: all-ones exponent is infinity or NaN.
		if expField == 1<<ebits-1 {
			if mant != 0 {
				return float32(math.NaN())
			}
			if neg {
				return float32(math.Inf(-1))
			}
			return float32(math.Inf(1))
		}
	case prim.F8E4M3FN:
		// Finite + NaN: only the all-ones pattern in both fields is NaN,
		// the rest of the top exponent is ordinary finite range.
		if expField == 1<<ebits-1 && mant == 1<<mbits-1 {
			return float32(math.NaN())
		}
	case prim.F8E4M3B11FNUZ, prim.F8E5M2FNUZ, prim.F8E4M3FNUZ:
		// FNUZ: the negative-zero pattern is the sole NaN; there is no
		// infinity and no negative zero.
		if b == 0x80 {
			return float32(math.NaN())
		}
	}

	var v float64
	if expField == 0 {
		// Subnormal: no implicit leading bit, fixed minimum exponent.
		v = math.Ldexp(float64(mant), 1-bias-int(mbits))
	} else {
		v = math.Ldexp(float64(1<<mbits|mant), int(expField)-bias-int(mbits))
	}
	if neg {
		v = -v
	}
	return float32(v)
}

// maxFiniteBits holds the bit pattern of the largest finite value per
// encoding. IEEE-style encodings stop one step short of the infinity
// pattern; FN sacrifices only its NaN pattern; FNUZ uses the full range.
var maxFiniteBits = map[prim.Type]uint8{
	prim.F8E5M2:        0x7b,
	prim.F8E4M3FN:      0x7e,
	prim.F8E4M3B11FNUZ: 0x7f,
	prim.F8E5M2FNUZ:    0x7f,
	prim.F8E4M3FNUZ:    0x7f,
}

// MaxFinite returns the largest finite value representable in encoding t.
// It panics when t is not an 8-bit float type.
func MaxFinite(t prim.Type) float32 {
	bits, ok := maxFiniteBits[t]
	if !ok {
		panic(fmt.Sprintf("float8: not an 8-bit float type %v", t))
	}
	return Decode(t, bits)
}

// MinPositiveNormal returns the smallest positive normalized value of
// encoding t. It panics when t is not an 8-bit float type.
func MinPositiveNormal(t prim.Type) float32 {
	mbits, _, _ := layout(t)
	return Decode(t, 1<<mbits)
}
