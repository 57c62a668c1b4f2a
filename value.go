// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package floatbits decodes binary floating-point values given as strings of bits.
// A value consists of a sign bit, K exponent bits, and P-1 fraction bits:
//   S EEEEEEEE FFFFFFFFFFFFFFFFFFFFFFF
//   0 10001001 00110100100111010011101   (1234.4567 as Float32)
//
// Any (K, P, bias) layout is supported, see Format and the predefined formats.
// Values are immutable and can be shared between goroutines.
package floatbits

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/avdva/floatbits/internal/bitutil"
)

// Value is a decoded bit string.
// The zero Value has no format and no kind, use Decode or Parse.
// Float64 and Summary panic with *InternalError for it.
type Value struct {
	f        Format
	sign     uint8
	exponent []uint8
	fraction []uint8
}

// Decode splits bits into sign, exponent, and fraction fields of the format f.
// bits must consist of exactly f.Width() '0' and '1' symbols.
func Decode(f Format, bits string) (Value, error) {
	if err := f.Validate(); err != nil {
		return Value{}, err
	}
	fields, err := Partition(bits, signBits, f.K, f.FractionBits())
	if err != nil {
		return Value{}, err
	}
	return Value{
		f:        f,
		sign:     fields[0][0],
		exponent: fields[1],
		fraction: fields[2],
	}, nil
}

// Parse is like Decode, but it also accepts spaces and underscores between the bits,
// like "0 01111111 000_0000_0000_0000_0000_0000".
func Parse(f Format, s string) (Value, error) {
	cleaned, positions := cleanBits(s)
	v, err := Decode(f, cleaned)
	if err != nil {
		var fe *FormatError
		if errors.As(err, &fe) && fe.Pos > 0 {
			fe.Pos = positions[fe.Pos-1] + 1
		}
		return Value{}, fmt.Errorf("parsing failed: %w", err)
	}
	return v, nil
}

// MustParse is like Parse, but panics on error.
func MustParse(f Format, s string) Value {
	v, err := Parse(f, s)
	if err != nil {
		panic(err)
	}
	return v
}

// Format returns the format v was decoded with.
func (v Value) Format() Format {
	return v.f
}

// SignBit returns the raw sign bit.
func (v Value) SignBit() uint8 {
	return v.sign
}

// ExponentBits returns a copy of the exponent field, most significant bit first.
func (v Value) ExponentBits() []uint8 {
	return append([]uint8(nil), v.exponent...)
}

// FractionBits returns a copy of the fraction field, most significant bit first.
func (v Value) FractionBits() []uint8 {
	return append([]uint8(nil), v.fraction...)
}

// Kind classifies v. The zero Value has an unknown kind.
func (v Value) Kind() Kind {
	if len(v.exponent) == 0 {
		return kindUnknown
	}
	if bitutil.AllSet(v.exponent) {
		if bitutil.AnySet(v.fraction) {
			return KindNaN
		}
		return KindInfinity
	}
	if !bitutil.AnySet(v.exponent) {
		if bitutil.AnySet(v.fraction) {
			return KindSubnormal
		}
		return KindZero
	}
	return KindNormal
}

// IsZero returns true for both +0 and -0.
func (v Value) IsZero() bool { return v.Kind() == KindZero }

// IsSubnormal returns true for denormalized values.
func (v Value) IsSubnormal() bool { return v.Kind() == KindSubnormal }

// IsNormal returns true for normalized values.
func (v Value) IsNormal() bool { return v.Kind() == KindNormal }

// IsInf returns true for both infinities.
func (v Value) IsInf() bool { return v.Kind() == KindInfinity }

// IsNaN returns true if v is not-a-number.
func (v Value) IsNaN() bool { return v.Kind() == KindNaN }

// Sign returns 1 if the sign bit is 0, and -1 otherwise.
func (v Value) Sign() int {
	if v.sign != 0 {
		return -1
	}
	return 1
}

// Exponent returns the stored exponent field as an unsigned number, without the bias applied.
func (v Value) Exponent() int {
	return int(bitutil.Uint(v.exponent))
}

// UnbiasedExponent returns the power of two the significand is scaled by.
// It is Exponent()-Bias for normal values, 1-Bias for subnormals, and 0 for other kinds.
func (v Value) UnbiasedExponent() int {
	switch v.Kind() {
	case KindNormal:
		return v.Exponent() - v.f.Bias
	case KindSubnormal:
		return 1 - v.f.Bias
	default:
		return 0
	}
}

// Fraction returns the fraction field as a number in [0, 1).
// Fractions longer than 53 bits are rounded.
func (v Value) Fraction() float64 {
	return bitutil.Fraction(v.fraction)
}

// Significand returns the fraction with the implicit leading bit:
// fraction for subnormals, and 1+fraction for normal values.
// The second result is false for zeros, infinities, and NaNs.
func (v Value) Significand() (float64, bool) {
	switch v.Kind() {
	case KindSubnormal:
		return v.Fraction(), true
	case KindNormal:
		return 1 + v.Fraction(), true
	default:
		return 0, false
	}
}

// Float64 returns the value v represents.
// Zeros and infinities keep their sign, a NaN is always returned as math.NaN().
// Values outside of the float64 range become infinities or zeros.
func (v Value) Float64() float64 {
	sign := float64(v.Sign())
	switch kind := v.Kind(); kind {
	case KindZero:
		return math.Copysign(0, sign)
	case KindInfinity:
		return math.Inf(v.Sign())
	case KindNaN:
		return math.NaN()
	case KindSubnormal:
		return sign * math.Ldexp(v.Fraction(), -(v.f.Bias - 1))
	case KindNormal:
		return sign * math.Ldexp(1+v.Fraction(), v.Exponent()-v.f.Bias)
	default:
		panic(&InternalError{Kind: kind})
	}
}

// Decimal returns the exact value of v for any format width.
// The second result is false for infinities, NaNs, and values whose scale
// does not fit the decimal exponent. Both zeros are returned as 0.
func (v Value) Decimal() (decimal.Decimal, bool) {
	var m *big.Int
	switch v.Kind() {
	case KindZero:
		return decimal.Zero, true
	case KindSubnormal:
		m = bitutil.BigUint(v.fraction)
	case KindNormal:
		m = bitutil.BigUint(v.fraction)
		m.SetBit(m, len(v.fraction), 1)
	default:
		return decimal.Zero, false
	}
	if v.sign != 0 {
		m.Neg(m)
	}
	return bitutil.ScaledDecimal(m, v.UnbiasedExponent()-len(v.fraction))
}

// StrBits returns the bits grouped as sign_exponent_fraction.
func (v Value) StrBits() string {
	return v.FormatBits(Separator)
}

// FormatBits returns the sign, exponent, and fraction bits joined with sep.
func (v Value) FormatBits(sep string) string {
	var b strings.Builder
	b.Grow(v.f.Width() + 2*len(sep))
	b.WriteByte('0' + v.sign)
	b.WriteString(sep)
	joinBits(&b, v.exponent)
	b.WriteString(sep)
	joinBits(&b, v.fraction)
	return b.String()
}

// String returns the shortest decimal representation of Float64().
func (v Value) String() string {
	return strconv.FormatFloat(v.Float64(), 'g', -1, 64)
}

// GoString returns a multi-line debug representation:
//   {value: 1,
//    kind: normal, k: 8, p: 24, bias: 127,
//    bits: 0_01111111_00000000000000000000000,
//    sign: 1, exponent: 127, fraction: 0,
//    significand: 1}
func (v Value) GoString() string {
	significand := "n/a"
	if s, ok := v.Significand(); ok {
		significand = strconv.FormatFloat(s, 'g', -1, 64)
	}
	return fmt.Sprintf("{value: %s,\n kind: %s, k: %d, p: %d, bias: %d,\n bits: %s,\n sign: %d, exponent: %d, fraction: %v,\n significand: %s}",
		v, v.Kind(), v.f.K, v.f.P, v.f.Bias, v.StrBits(), v.Sign(), v.Exponent(), v.Fraction(), significand)
}

// MarshalJSON marshals the summary of v.
func (v Value) MarshalJSON() ([]byte, error) {
	return v.Summary().MarshalJSON()
}
