package prim

import (
	"strings"
	"testing"
)

var floatTypes = []Type{F16, F32, F64, BF16, F8E5M2, F8E4M3FN, F8E4M3B11FNUZ, F8E5M2FNUZ, F8E4M3FNUZ}

func TestTraitTables(t *testing.T) {
	cases := []struct {
		typ       Type
		sig       int
		exp       int
		underflow int
		overflow  int
		bias      int
		inf       bool
	}{
		{F16, 11, 5, -13, 16, 15, true},
		{F32, 24, 8, -125, 128, 127, true},
		{F64, 53, 11, -1021, 1024, 1023, true},
		{BF16, 8, 8, -125, 128, 127, true},
		{F8E5M2, 3, 5, -13, 16, 15, true},
		{F8E4M3FN, 4, 4, -5, 9, 7, false},
		{F8E4M3B11FNUZ, 4, 4, -9, 5, 11, false},
		{F8E5M2FNUZ, 3, 5, -14, 16, 16, false},
		{F8E4M3FNUZ, 4, 4, -6, 8, 8, false},
	}
	for _, tc := range cases {
		if got := SignificandWidth(tc.typ); got != tc.sig {
			t.Fatalf("SignificandWidth(%v) = %d, want %d", tc.typ, got, tc.sig)
		}
		if got := ExponentWidth(tc.typ); got != tc.exp {
			t.Fatalf("ExponentWidth(%v) = %d, want %d", tc.typ, got, tc.exp)
		}
		if got := UnderflowExponent(tc.typ); got != tc.underflow {
			t.Fatalf("UnderflowExponent(%v) = %d, want %d", tc.typ, got, tc.underflow)
		}
		if got := OverflowExponent(tc.typ); got != tc.overflow {
			t.Fatalf("OverflowExponent(%v) = %d, want %d", tc.typ, got, tc.overflow)
		}
		if got := ExponentBias(tc.typ); got != tc.bias {
			t.Fatalf("ExponentBias(%v) = %d, want %d", tc.typ, got, tc.bias)
		}
		if got := HasInfinity(tc.typ); got != tc.inf {
			t.Fatalf("HasInfinity(%v) = %v, want %v", tc.typ, got, tc.inf)
		}
	}
}

func TestBitPartitionIsExact(t *testing.T) {
	for _, typ := range floatTypes {
		sign := 1
		trailing := SignificandWidth(typ) - 1
		if got := ExponentWidth(typ) + trailing + sign; got != typ.BitWidth() {
			t.Fatalf("%v: exponent+significand+sign = %d, want bit width %d", typ, got, typ.BitWidth())
		}
	}
}

func TestBalancedBiasFormula(t *testing.T) {
	// The FNUZ encodings deliberately break this formula; everything else
	// must satisfy it.
	balanced := []Type{F16, F32, F64, BF16, F8E5M2, F8E4M3FN}
	for _, typ := range balanced {
		want := 1<<(ExponentWidth(typ)-1) - 1
		if got := ExponentBias(typ); got != want {
			t.Fatalf("ExponentBias(%v) = %d, want balanced bias %d", typ, got, want)
		}
	}
}

func TestHasInfinityIsTotal(t *testing.T) {
	withInf := map[Type]bool{F16: true, F32: true, F64: true, BF16: true, F8E5M2: true}
	for i := 0; i < NumTypes; i++ {
		typ := Type(i)
		if got := HasInfinity(typ); got != withInf[typ] {
			t.Fatalf("HasInfinity(%v) = %v, want %v", typ, got, withInf[typ])
		}
	}
}

func TestTraitQueriesPanicOnNonFloat(t *testing.T) {
	queries := map[string]func(Type) int{
		"SignificandWidth":  SignificandWidth,
		"ExponentWidth":     ExponentWidth,
		"UnderflowExponent": UnderflowExponent,
		"OverflowExponent":  OverflowExponent,
		"ExponentBias":      ExponentBias,
	}
	for name, fn := range queries {
		for _, typ := range []Type{S32, Pred, C64, Tuple, Invalid} {
			func() {
				defer func() {
					r := recover()
					if r == nil {
						t.Fatalf("%s(%v) did not panic", name, typ)
					}
					msg, ok := r.(string)
					if !ok || !strings.Contains(msg, typ.String()) {
						t.Fatalf("%s(%v) panic %v does not name the type", name, typ, r)
					}
				}()
				fn(typ)
			}()
		}
	}
}
