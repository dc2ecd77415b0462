package helpers_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrWebMD/hamurai-name-server/internal/helpers"
)

func TestClampInt(t *testing.T) {
	tests := []struct {
		name       string
		v          int
		lowerLimit int
		upperLimit int
		want       int
	}{
		{name: "below", v: 0, lowerLimit: 1, upperLimit: 64, want: 1},
		{name: "inside", v: 8, lowerLimit: 1, upperLimit: 64, want: 8},
		{name: "above", v: 1000, lowerLimit: 1, upperLimit: 64, want: 64},
		{name: "at-lower", v: 1, lowerLimit: 1, upperLimit: 64, want: 1},
		{name: "at-upper", v: 64, lowerLimit: 1, upperLimit: 64, want: 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, helpers.ClampInt(tt.v, tt.lowerLimit, tt.upperLimit))
		})
	}
}

func TestClampIntToUint16(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want uint16
	}{
		{name: "negative", in: -1, want: 0},
		{name: "zero", in: 0, want: 0},
		{name: "dns port", in: 53, want: 53},
		{name: "max", in: math.MaxUint16, want: math.MaxUint16},
		{name: "above-max", in: math.MaxUint16 + 1, want: math.MaxUint16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, helpers.ClampIntToUint16(tt.in))
		})
	}
}

func TestClampIntToUint32(t *testing.T) {
	assert.Equal(t, uint32(0), helpers.ClampIntToUint32(-10))
	assert.Equal(t, uint32(10), helpers.ClampIntToUint32(10))
	assert.Equal(t, uint32(math.MaxUint32), helpers.ClampIntToUint32(math.MaxUint32))
	assert.Equal(t, uint32(math.MaxUint32), helpers.ClampIntToUint32(math.MaxUint32+1))
}
