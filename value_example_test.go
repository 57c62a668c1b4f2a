// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floatbits

import (
	"encoding/json"
	"fmt"
)

func ExampleParse() {
	v, err := Parse(Float32, "0 10001001 00110100100111010011101")
	if err != nil {
		panic(err)
	}
	fmt.Printf("%s = %v, kind = %s\n", v.StrBits(), v, v.Kind())

	significand, _ := v.Significand()
	fmt.Printf("sign = %d, exponent = %d (2^%d), significand = %v\n", v.Sign(), v.Exponent(), v.UnbiasedExponent(), significand)

	exact, _ := v.Decimal()
	fmt.Printf("exact value = %s\n", exact)

	nan := MustParse(Float32, "1 11111111 10000000000000000000000")
	fmt.Printf("%s = %v, kind = %s, sign = %d\n", nan.StrBits(), nan, nan.Kind(), nan.Sign())

	data, err := json.Marshal(MustParse(Float16, "1_00000_0000000000"))
	if err != nil {
		panic(err)
	}
	fmt.Printf("json: %s\n", data)

	_, err = Parse(Float16, "0 01111 00000000")
	fmt.Println(err)

	// Output:
	// 0_10001001_00110100100111010011101 = 1234.4566650390625, kind = normal
	// sign = 1, exponent = 137 (2^10), significand = 1.2055240869522095
	// exact value = 1234.4566650390625
	// 1_11111111_10000000000000000000000 = NaN, kind = nan, sign = -1
	// json: {"value":-0,"kind":"zero","k":5,"p":11,"bias":15,"str_bits":"1_00000_0000000000","sign":-1,"exponent":0,"fraction":0,"significand":null}
	// parsing failed: expected 16 bits, got 14
}

func ExampleFormats() {
	for _, f := range Formats() {
		fmt.Printf("%-8s k=%-2d p=%-3d bias=%-6d width=%d\n", f, f.K, f.P, f.Bias, f.Width())
	}

	// Output:
	// Float16  k=5  p=11  bias=15     width=16
	// BFloat16 k=8  p=8   bias=127    width=16
	// Float32  k=8  p=24  bias=127    width=32
	// Float64  k=11 p=53  bias=1023   width=64
	// Float128 k=15 p=113 bias=16383  width=128
	// Float256 k=19 p=237 bias=262143 width=256
}
