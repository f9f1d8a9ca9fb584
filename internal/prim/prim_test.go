package prim

import "testing"

func TestBitWidths(t *testing.T) {
	cases := []struct {
		typ  Type
		bits int
	}{
		{Pred, 1},
		{S4, 4}, {U4, 4},
		{S8, 8}, {U8, 8},
		{F8E5M2, 8}, {F8E4M3FN, 8}, {F8E4M3B11FNUZ, 8}, {F8E5M2FNUZ, 8}, {F8E4M3FNUZ, 8},
		{S16, 16}, {U16, 16}, {F16, 16}, {BF16, 16},
		{S32, 32}, {U32, 32}, {F32, 32},
		{S64, 64}, {U64, 64}, {F64, 64}, {C64, 64},
		{C128, 128},
	}
	for _, tc := range cases {
		if got := tc.typ.BitWidth(); got != tc.bits {
			t.Fatalf("BitWidth(%v) = %d, want %d", tc.typ, got, tc.bits)
		}
		wantBytes := (tc.bits + 7) / 8
		if got := tc.typ.ByteWidth(); got != wantBytes {
			t.Fatalf("ByteWidth(%v) = %d, want %d", tc.typ, got, wantBytes)
		}
	}
}

func TestBitWidthPanicsOnNonArrayTypes(t *testing.T) {
	for _, typ := range []Type{Invalid, Tuple, Opaque, Token} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("BitWidth(%v) did not panic", typ)
				}
			}()
			typ.BitWidth()
		}()
	}
}

func TestPredicatesPartitionTheTypeSet(t *testing.T) {
	for i := 0; i < NumTypes; i++ {
		typ := Type(i)
		classes := 0
		for _, in := range []bool{
			typ.IsFloatingPoint(),
			typ.IsIntegral(),
			typ.IsComplex(),
			typ == Pred,
			typ == Tuple || typ == Opaque || typ == Token,
			typ == Invalid,
		} {
			if in {
				classes++
			}
		}
		if classes != 1 {
			t.Fatalf("%v belongs to %d classes, want exactly 1", typ, classes)
		}
		if typ.IsIntegral() != (typ.IsSignedIntegral() || typ.IsUnsignedIntegral()) {
			t.Fatalf("IsIntegral(%v) disagrees with signedness predicates", typ)
		}
		wantArray := typ.IsValid() && typ != Tuple && typ != Opaque && typ != Token
		if got := typ.IsArray(); got != wantArray {
			t.Fatalf("IsArray(%v) = %v, want %v", typ, got, wantArray)
		}
	}
}

func TestIntegralTypeForBitWidth(t *testing.T) {
	for _, bits := range []int{4, 8, 16, 32, 64} {
		s := SignedIntegralTypeForBitWidth(bits)
		u := UnsignedIntegralTypeForBitWidth(bits)
		if !s.IsSignedIntegral() || s.BitWidth() != bits {
			t.Fatalf("SignedIntegralTypeForBitWidth(%d) = %v", bits, s)
		}
		if !u.IsUnsignedIntegral() || u.BitWidth() != bits {
			t.Fatalf("UnsignedIntegralTypeForBitWidth(%d) = %v", bits, u)
		}
	}
	for _, bits := range []int{0, 1, 2, 7, 128} {
		if got := SignedIntegralTypeForBitWidth(bits); got != Invalid {
			t.Fatalf("SignedIntegralTypeForBitWidth(%d) = %v, want Invalid", bits, got)
		}
		if got := UnsignedIntegralTypeForBitWidth(bits); got != Invalid {
			t.Fatalf("UnsignedIntegralTypeForBitWidth(%d) = %v, want Invalid", bits, got)
		}
	}
}

func TestComplexComponentMapping(t *testing.T) {
	if got := C64.ComplexComponentType(); got != F32 {
		t.Fatalf("ComplexComponentType(C64) = %v, want F32", got)
	}
	if got := C128.ComplexComponentType(); got != F64 {
		t.Fatalf("ComplexComponentType(C128) = %v, want F64", got)
	}
	if got := F32.ComplexType(); got != C64 {
		t.Fatalf("ComplexType(F32) = %v, want C64", got)
	}
	if got := F64.ComplexType(); got != C128 {
		t.Fatalf("ComplexType(F64) = %v, want C128", got)
	}
	for _, tc := range []struct {
		name string
		fn   func()
	}{
		{"ComplexComponentType(F32)", func() { F32.ComplexComponentType() }},
		{"ComplexType(F16)", func() { F16.ComplexType() }},
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("%s did not panic", tc.name)
				}
			}()
			tc.fn()
		}()
	}
}

func TestStringNamesAreUnique(t *testing.T) {
	seen := make(map[string]Type, NumTypes)
	for i := 0; i < NumTypes; i++ {
		typ := Type(i)
		name := typ.String()
		if prev, dup := seen[name]; dup {
			t.Fatalf("types %v and %v share display name %q", prev, typ, name)
		}
		seen[name] = typ
	}
	if got := Type(200).String(); got != "Type(200)" {
		t.Fatalf("String on unknown ordinal = %q", got)
	}
}
