package bitutil

import (
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func bitsOf(s string) []uint8 {
	result := make([]uint8, len(s))
	for i := range s {
		result[i] = s[i] - '0'
	}
	return result
}

func TestAllAnySet(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		bits     string
		all, any bool
	}{
		{"", true, false},
		{"0", false, false},
		{"1", true, true},
		{"0000", false, false},
		{"1111", true, true},
		{"0100", false, true},
		{"1110", false, true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			bits := bitsOf(test.bits)
			a.Equal(test.all, AllSet(bits), test.bits)
			a.Equal(test.any, AnySet(bits), test.bits)
		})
	}
}

func TestUint(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		bits string
		res  uint64
	}{
		{"", 0},
		{"0", 0},
		{"1", 1},
		{"10", 2},
		{"01111111", 127},
		{"10001001", 137},
		{"11111111", 255},
		{"1111111111111111111", 1<<19 - 1},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			bits := bitsOf(test.bits)
			a.Equal(test.res, Uint(bits))
			a.Equal(0, new(big.Int).SetUint64(test.res).Cmp(BigUint(bits)))
		})
	}
}

func TestBigUint(t *testing.T) {
	a := assert.New(t)
	bits := make([]uint8, 100)
	bits[0] = 1
	bits[99] = 1
	expected := new(big.Int).Lsh(big.NewInt(1), 99)
	expected.SetBit(expected, 0, 1)
	a.Equal(0, expected.Cmp(BigUint(bits)))
}

func TestFraction(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		bits string
		res  float64
	}{
		{"", 0},
		{"0000", 0},
		{"1", 0.5},
		{"01", 0.25},
		{"11", 0.75},
		{"00110100100111010011101", 0.20552408695220947},
		{"00000000000000000000001", math.Ldexp(1, -23)},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, Fraction(bitsOf(test.bits)))
		})
	}
}

func TestScaledDecimal(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		m   int64
		e   int64
		res string
		ok  bool
	}{
		{0, 10, "0", true},
		{0, -10, "0", true},
		{1, 0, "1", true},
		{3, 4, "48", true},
		{1, -1, "0.5", true},
		{3, -2, "0.75", true},
		{1, -10, "0.0009765625", true},
		{-5, -1, "-2.5", true},
		{0, math.MinInt32 - 1, "0", true},
		{1, MaxScale + 1, "0", false},
		{1, -MaxScale - 1, "0", false},
		{1, math.MinInt32 - 1, "0", false},
		{1, math.MaxInt32 + 1, "0", false},
		{-1, -(1 << 40), "0", false},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			d, ok := ScaledDecimal(big.NewInt(test.m), int(test.e))
			a.Equal(test.ok, ok)
			a.Equal(test.res, d.String())
		})
	}
	d, ok := ScaledDecimal(big.NewInt(1), -MaxScale)
	if a.True(ok) {
		a.Equal(int32(-MaxScale), d.Exponent())
	}
	d, ok = ScaledDecimal(big.NewInt(1), MaxScale)
	if a.True(ok) {
		a.Equal(MaxScale+1, d.Coefficient().BitLen())
	}
}
