package prim

import "fmt"

// Type identifies a primitive element type in prism's type system.
//
// Ordinal values are wire-stable: export payloads store them directly, so
// new types must be appended to the end of the set, never inserted or
// reordered. The apparent oddities in the ordering (BF16 after the complex
// types, the 4-bit integers near the end) are the cost of that stability.
type Type uint8

const (
	// Invalid is the zero value and marks the absence of a type.
	Invalid Type = iota

	// Pred is a two-state boolean predicate.
	Pred

	// Signed fixed-width integers.
	S8
	S16
	S32
	S64

	// Unsigned fixed-width integers.
	U8
	U16
	U32
	U64

	// IEEE-754 binary floating point.
	F16
	F32
	F64

	// Tuple is a heterogeneous aggregate, not an array element type.
	Tuple

	// Opaque is a backend-defined placeholder with no element semantics.
	Opaque

	// C64 packs two F32 components (real, imaginary).
	C64

	// BF16 is the brain-float truncation of F32: 8 exponent bits, 7
	// stored mantissa bits.
	BF16

	// Token threads side effects through a computation graph.
	Token

	// C128 packs two F64 components.
	C128

	// 8-bit floating point, named by exponent/mantissa split. FN means the
	// encoding is finite + NaN (no infinity); FNUZ additionally folds the
	// negative-zero pattern into NaN. B11 marks a non-standard bias of 11.
	F8E5M2
	F8E4M3FN
	S4
	U4
	F8E4M3B11FNUZ
	F8E5M2FNUZ
	F8E4M3FNUZ
)

// NumTypes is the number of ordinal slots in the closed type set,
// including the Invalid sentinel.
const NumTypes = int(F8E4M3FNUZ) + 1

// String returns the declared display name of the type.
func (t Type) String() string {
	switch t {
	case Invalid:
		return "PRIMITIVE_TYPE_INVALID"
	case Pred:
		return "PRED"
	case S4:
		return "S4"
	case S8:
		return "S8"
	case S16:
		return "S16"
	case S32:
		return "S32"
	case S64:
		return "S64"
	case U4:
		return "U4"
	case U8:
		return "U8"
	case U16:
		return "U16"
	case U32:
		return "U32"
	case U64:
		return "U64"
	case F16:
		return "F16"
	case F32:
		return "F32"
	case F64:
		return "F64"
	case BF16:
		return "BF16"
	case C64:
		return "C64"
	case C128:
		return "C128"
	case F8E5M2:
		return "F8E5M2"
	case F8E4M3FN:
		return "F8E4M3FN"
	case F8E4M3B11FNUZ:
		return "F8E4M3B11FNUZ"
	case F8E5M2FNUZ:
		return "F8E5M2FNUZ"
	case F8E4M3FNUZ:
		return "F8E4M3FNUZ"
	case Tuple:
		return "TUPLE"
	case Opaque:
		return "OPAQUE_TYPE"
	case Token:
		return "TOKEN"
	default:
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}

// IsValid reports whether t names an actual type. The Invalid sentinel and
// ordinals beyond the closed set are not valid.
func (t Type) IsValid() bool {
	return t != Invalid && int(t) < NumTypes
}

// IsFloatingPoint reports whether t is one of the nine real floating-point
// encodings. Complex types are not floating point in this sense.
func (t Type) IsFloatingPoint() bool {
	switch t {
	case F16, F32, F64, BF16, F8E5M2, F8E4M3FN, F8E4M3B11FNUZ, F8E5M2FNUZ, F8E4M3FNUZ:
		return true
	default:
		return false
	}
}

// IsSignedIntegral reports whether t is a signed integer type.
func (t Type) IsSignedIntegral() bool {
	switch t {
	case S4, S8, S16, S32, S64:
		return true
	default:
		return false
	}
}

// IsUnsignedIntegral reports whether t is an unsigned integer type.
func (t Type) IsUnsignedIntegral() bool {
	switch t {
	case U4, U8, U16, U32, U64:
		return true
	default:
		return false
	}
}

// IsIntegral reports whether t is an integer type of either signedness.
func (t Type) IsIntegral() bool {
	return t.IsSignedIntegral() || t.IsUnsignedIntegral()
}

// IsComplex reports whether t is a complex type.
func (t Type) IsComplex() bool {
	return t == C64 || t == C128
}

// IsArray reports whether values of t can be array elements. Tuple, Opaque
// and Token are shape-level constructs, not element types.
func (t Type) IsArray() bool {
	return t.IsValid() && t != Tuple && t != Opaque && t != Token
}

// BitWidth returns the storage width of t in bits. It panics on Tuple,
// Opaque, Token and Invalid, which have no fixed storage width.
func (t Type) BitWidth() int {
	switch t {
	case Pred:
		return 1
	case S4, U4:
		return 4
	case S8, U8, F8E5M2, F8E4M3FN, F8E4M3B11FNUZ, F8E5M2FNUZ, F8E4M3FNUZ:
		return 8
	case S16, U16, F16, BF16:
		return 16
	case S32, U32, F32:
		return 32
	case S64, U64, F64, C64:
		return 64
	case C128:
		return 128
	default:
		panic(fmt.Sprintf("prim: no bit width for type %v", t))
	}
}

// ByteWidth returns the storage width of t in whole bytes, rounding
// sub-byte types up. Same preconditions as BitWidth.
func (t Type) ByteWidth() int {
	return (t.BitWidth() + 7) / 8
}

// ComplexComponentType returns the element type of one component of a
// complex type. It panics when t is not complex.
func (t Type) ComplexComponentType() Type {
	switch t {
	case C64:
		return F32
	case C128:
		return F64
	default:
		panic(fmt.Sprintf("prim: not a complex type %v", t))
	}
}

// ComplexType returns the complex type whose components have type t. It
// panics when t is neither F32 nor F64.
func (t Type) ComplexType() Type {
	switch t {
	case F32:
		return C64
	case F64:
		return C128
	default:
		panic(fmt.Sprintf("prim: no complex counterpart for type %v", t))
	}
}

// SignedIntegralTypeForBitWidth returns the signed integer type of the
// given storage width, or Invalid when no such type exists.
func SignedIntegralTypeForBitWidth(bits int) Type {
	switch bits {
	case 4:
		return S4
	case 8:
		return S8
	case 16:
		return S16
	case 32:
		return S32
	case 64:
		return S64
	default:
		return Invalid
	}
}

// UnsignedIntegralTypeForBitWidth returns the unsigned integer type of the
// given storage width, or Invalid when no such type exists.
func UnsignedIntegralTypeForBitWidth(bits int) Type {
	switch bits {
	case 4:
		return U4
	case 8:
		return U8
	case 16:
		return U16
	case 32:
		return U32
	case 64:
		return U64
	default:
		return Invalid
	}
}
