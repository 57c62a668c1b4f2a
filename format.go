// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floatbits

import (
	"fmt"
	"strings"
)

const (
	// MaxExponentBits is the widest supported exponent field.
	MaxExponentBits = 30
	// MaxPrecision is the largest supported precision, implicit bit included.
	MaxPrecision = 4096
	// MaxBias is the largest supported absolute value of the exponent bias.
	MaxBias = 1 << MaxExponentBits

	signBits = 1
)

// Format describes a binary floating-point layout: one sign bit, K exponent bits
// and P-1 fraction bits. P counts the implicit leading bit of the significand.
type Format struct {
	Name string
	K    int
	P    int
	Bias int
}

var (
	// Float16 is IEEE-754 half precision.
	Float16 = Format{Name: "Float16", K: 5, P: 11, Bias: 15}
	// BFloat16 is the brain floating-point format.
	BFloat16 = Format{Name: "BFloat16", K: 8, P: 8, Bias: 127}
	// Float32 is IEEE-754 single precision.
	Float32 = Format{Name: "Float32", K: 8, P: 24, Bias: 127}
	// Float64 is IEEE-754 double precision.
	Float64 = Format{Name: "Float64", K: 11, P: 53, Bias: 1023}
	// Float128 is IEEE-754 quadruple precision.
	Float128 = Format{Name: "Float128", K: 15, P: 113, Bias: 16383}
	// Float256 is IEEE-754 octuple precision.
	Float256 = Format{Name: "Float256", K: 19, P: 237, Bias: 262143}

	presets = [...]Format{Float16, BFloat16, Float32, Float64, Float128, Float256}
)

// NewFormat returns a validated format.
func NewFormat(name string, k, p, bias int) (Format, error) {
	f := Format{Name: name, K: k, P: p, Bias: bias}
	if err := f.Validate(); err != nil {
		return Format{}, err
	}
	return f, nil
}

// DefaultBias returns 2^(k-1)-1, the bias IEEE-754 uses for a k-bit exponent.
func DefaultBias(k int) int {
	return 1<<(k-1) - 1
}

// Formats returns all predefined formats, from the narrowest to the widest.
func Formats() []Format {
	result := make([]Format, len(presets))
	copy(result, presets[:])
	return result
}

// LookupFormat finds a predefined format by its case-insensitive name.
func LookupFormat(name string) (Format, bool) {
	for _, f := range presets {
		if strings.EqualFold(f.Name, name) {
			return f, true
		}
	}
	return Format{}, false
}

// Validate checks that the exponent width, precision, and bias are in the supported range.
func (f Format) Validate() error {
	if f.K < 1 || f.K > MaxExponentBits {
		return newFormatError(fmt.Sprintf("exponent width %d out of range [1, %d]", f.K, MaxExponentBits), 0)
	}
	if f.P < 2 || f.P > MaxPrecision {
		return newFormatError(fmt.Sprintf("precision %d out of range [2, %d]", f.P, MaxPrecision), 0)
	}
	if f.Bias < -MaxBias || f.Bias > MaxBias {
		return newFormatError(fmt.Sprintf("bias %d out of range [%d, %d]", f.Bias, -MaxBias, MaxBias), 0)
	}
	return nil
}

// Width returns the total number of bits in an encoded value.
func (f Format) Width() int {
	return signBits + f.K + f.FractionBits()
}

// FractionBits returns the width of the fraction field.
func (f Format) FractionBits() int {
	return f.P - 1
}

// String returns the format's name, or its parameters if the name is empty.
func (f Format) String() string {
	if f.Name != "" {
		return f.Name
	}
	return fmt.Sprintf("(k=%d, p=%d, bias=%d)", f.K, f.P, f.Bias)
}
