// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floatbits

import (
	"encoding/json"
	"math"
	"strconv"
)

// Summary holds all the derived properties of a Value.
// Significand is nil, if it is not applicable to the kind.
type Summary struct {
	Value       float64
	Kind        Kind
	K           int
	P           int
	Bias        int
	StrBits     string
	Sign        int
	Exponent    int
	Fraction    float64
	Significand *float64
}

// Summary returns v's properties.
func (v Value) Summary() Summary {
	s := Summary{
		Value:    v.Float64(),
		Kind:     v.Kind(),
		K:        v.f.K,
		P:        v.f.P,
		Bias:     v.f.Bias,
		StrBits:  v.StrBits(),
		Sign:     v.Sign(),
		Exponent: v.Exponent(),
		Fraction: v.Fraction(),
	}
	if significand, ok := v.Significand(); ok {
		s.Significand = &significand
	}
	return s
}

// jsonFloat marshals NaN and infinities as strings, since json has no numbers for them.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Inf"`), nil
	}
	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

// MarshalJSON marshals the summary as an object with the keys
// value, kind, k, p, bias, str_bits, sign, exponent, fraction, and significand.
func (s Summary) MarshalJSON() ([]byte, error) {
	d := struct {
		Value       jsonFloat  `json:"value"`
		Kind        Kind       `json:"kind"`
		K           int        `json:"k"`
		P           int        `json:"p"`
		Bias        int        `json:"bias"`
		StrBits     string     `json:"str_bits"`
		Sign        int        `json:"sign"`
		Exponent    int        `json:"exponent"`
		Fraction    jsonFloat  `json:"fraction"`
		Significand *jsonFloat `json:"significand"`
	}{
		Value:    jsonFloat(s.Value),
		Kind:     s.Kind,
		K:        s.K,
		P:        s.P,
		Bias:     s.Bias,
		StrBits:  s.StrBits,
		Sign:     s.Sign,
		Exponent: s.Exponent,
		Fraction: jsonFloat(s.Fraction),
	}
	if s.Significand != nil {
		significand := jsonFloat(*s.Significand)
		d.Significand = &significand
	}
	return json.Marshal(d)
}
