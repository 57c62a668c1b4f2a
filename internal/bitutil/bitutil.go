// Package bitutil holds helpers over slices of binary digits,
// where every element is either 0 or 1 and the most significant bit comes first.
package bitutil

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// MaxScale bounds the power of two ScaledDecimal accepts.
// 2^-MaxScale has about 366000 significant decimal digits.
const MaxScale = 1 << 19

var (
	five = big.NewInt(5)
)

// AllSet returns true if every bit is 1. It is true for an empty slice.
func AllSet(bits []uint8) bool {
	for _, b := range bits {
		if b == 0 {
			return false
		}
	}
	return true
}

// AnySet returns true if at least one bit is 1.
func AnySet(bits []uint8) bool {
	for _, b := range bits {
		if b != 0 {
			return true
		}
	}
	return false
}

// Uint returns the big-endian value of bits.
// Only the lowest 64 bits are kept for longer slices.
func Uint(bits []uint8) uint64 {
	var result uint64
	for _, b := range bits {
		result = result<<1 | uint64(b&1)
	}
	return result
}

// BigUint returns the big-endian value of bits of any length.
func BigUint(bits []uint8) *big.Int {
	result := new(big.Int)
	for _, b := range bits {
		result.Lsh(result, 1)
		if b != 0 {
			result.SetBit(result, 0, 1)
		}
	}
	return result
}

// Fraction returns the sum of 2^-j for every set bit j, where j starts at 1.
// The result is exact for up to 53 bits, longer fractions are rounded.
func Fraction(bits []uint8) float64 {
	var result float64
	for i, b := range bits {
		if b != 0 {
			result += math.Ldexp(1, -(i + 1))
		}
	}
	return result
}

// ScaledDecimal returns m * 2^e as an exact decimal.
// 2^-n is represented as 5^n * 10^-n, so no digits are lost.
// The second result is false, if |e| is greater than MaxScale.
func ScaledDecimal(m *big.Int, e int) (decimal.Decimal, bool) {
	if m.Sign() == 0 {
		return decimal.Zero, true
	}
	if e < -MaxScale || e > MaxScale {
		return decimal.Zero, false
	}
	if e >= 0 {
		return decimal.NewFromBigInt(new(big.Int).Lsh(m, uint(e)), 0), true
	}
	p := new(big.Int).Exp(five, big.NewInt(int64(-e)), nil)
	return decimal.NewFromBigInt(p.Mul(p, m), int32(e)), true
}
