// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floatbits

import "fmt"

// Kind is the class of an encoded value.
type Kind int

const (
	kindUnknown Kind = iota
	// KindZero is a zero exponent with a zero fraction.
	KindZero
	// KindSubnormal is a zero exponent with a non-zero fraction.
	KindSubnormal
	// KindNormal is an exponent that is neither all zeros nor all ones.
	KindNormal
	// KindInfinity is an all-ones exponent with a zero fraction.
	KindInfinity
	// KindNaN is an all-ones exponent with a non-zero fraction.
	KindNaN
)

var kindNames = [...]string{
	KindZero:      "zero",
	KindSubnormal: "subnormal",
	KindNormal:    "normal",
	KindInfinity:  "infinity",
	KindNaN:       "nan",
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if k > kindUnknown && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if k <= kindUnknown || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("unknown kind %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(data []byte) error {
	for i, name := range kindNames {
		if name != "" && name == string(data) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown kind %q", string(data))
}
