// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floatbits

import (
	"fmt"
	"strings"
)

const (
	// Separator joins the sign, exponent and fraction groups in StrBits.
	Separator = "_"
)

// Partition splits a string of binary digits into consecutive fields of given lengths.
// The string must contain only '0' and '1' and be exactly as long as all the fields together.
func Partition(bits string, lengths ...int) ([][]uint8, error) {
	for i, r := range bits {
		if r != '0' && r != '1' {
			return nil, newFormatError(fmt.Sprintf("unexpected symbol %q", r), i+1)
		}
	}
	total := 0
	for _, l := range lengths {
		if l < 0 {
			return nil, newFormatError(fmt.Sprintf("negative field length %d", l), 0)
		}
		total += l
	}
	if len(bits) != total {
		return nil, newFormatError(fmt.Sprintf("expected %d bits, got %d", total, len(bits)), 0)
	}
	fields := make([][]uint8, len(lengths))
	start := 0
	for i, l := range lengths {
		field := make([]uint8, l)
		for j := range field {
			field[j] = bits[start+j] - '0'
		}
		fields[i] = field
		start += l
	}
	return fields, nil
}

// cleanBits removes spaces and underscores.
// It also returns the original position for every kept byte.
func cleanBits(s string) (cleaned string, positions []int) {
	var b strings.Builder
	b.Grow(len(s))
	positions = make([]int, 0, len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c != ' ' && c != '_' {
			b.WriteByte(c)
			positions = append(positions, i)
		}
	}
	return b.String(), positions
}

func joinBits(b *strings.Builder, bits []uint8) {
	for _, bit := range bits {
		b.WriteByte('0' + bit)
	}
}
