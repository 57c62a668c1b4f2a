// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floatbits

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindText(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		k    Kind
		name string
	}{
		{KindZero, "zero"},
		{KindSubnormal, "subnormal"},
		{KindNormal, "normal"},
		{KindInfinity, "infinity"},
		{KindNaN, "nan"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.name, test.k.String())
			data, err := json.Marshal(test.k)
			if a.NoError(err) {
				a.Equal(`"`+test.name+`"`, string(data))
			}
			var k Kind
			if a.NoError(json.Unmarshal(data, &k)) {
				a.Equal(test.k, k)
			}
		})
	}
}

func TestKindUnknown(t *testing.T) {
	a := assert.New(t)
	a.Equal("Kind(0)", kindUnknown.String())
	a.Equal("Kind(42)", Kind(42).String())
	_, err := Kind(42).MarshalText()
	a.EqualError(err, "unknown kind 42")
	var k Kind
	a.EqualError(k.UnmarshalText([]byte("denormal")), `unknown kind "denormal"`)
	a.EqualError(k.UnmarshalText(nil), `unknown kind ""`)
}
