package prim

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrInvalidTypeName is returned by StringToPrimitiveType when the input
// does not name any primitive type.
var ErrInvalidTypeName = errors.New("invalid element type string")

// The name tables are built once, on first use, and live for the rest of
// the process. Both directions are derived from the same forward pass so
// they cannot drift apart.
var (
	namesOnce      sync.Once
	lowercaseNames [NumTypes]string
	nameToType     map[string]Type
)

// Opaque canonically maps to the string "opaque"; the longer display name
// OPAQUE_TYPE exists only to dodge a historical identifier clash and never
// appears in serialized form.
func initNames() {
	for i := 0; i < NumTypes; i++ {
		t := Type(i)
		switch {
		case t == Opaque:
			lowercaseNames[i] = "opaque"
		case t.IsValid():
			lowercaseNames[i] = strings.ToLower(t.String())
		}
	}

	nameToType = make(map[string]Type, NumTypes)
	for i := 0; i < NumTypes; i++ {
		if t := Type(i); t.IsValid() {
			nameToType[lowercaseNames[i]] = t
		}
	}
	// Lenient-input alias, added after the forward pass so it can never
	// shadow a canonical name.
	nameToType["opaque"] = Opaque
}

// LowercaseName returns the canonical lowercase name of t. Ordinals beyond
// the closed set panic; the in-range Invalid sentinel yields "" rather than
// an error, and callers depend on that asymmetry.
func LowercaseName(t Type) string {
	namesOnce.Do(initNames)
	if int(t) >= NumTypes {
		panic(fmt.Sprintf("prim: type ordinal %d out of range", uint8(t)))
	}
	return lowercaseNames[t]
}

// StringToPrimitiveType resolves a canonical lowercase name (or the
// "opaque" alias) to its type. Matching is exact and case-sensitive;
// callers wanting lenient parsing lowercase the input themselves. Unknown
// names return an error wrapping ErrInvalidTypeName that echoes the input.
func StringToPrimitiveType(name string) (Type, error) {
	namesOnce.Do(initNames)
	t, ok := nameToType[name]
	if !ok {
		return Invalid, fmt.Errorf("%w: %q", ErrInvalidTypeName, name)
	}
	return t, nil
}

// IsPrimitiveTypeName reports whether StringToPrimitiveType would accept
// name.
func IsPrimitiveTypeName(name string) bool {
	namesOnce.Do(initNames)
	_, ok := nameToType[name]
	return ok
}
