package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    uint32
		wantErr bool
	}{
		{"#ff8000", 0xff8000, false},
		{"0x00ff00", 0x00ff00, false},
		{"0X0000FF", 0x0000ff, false},
		{" 123456 ", 0x123456, false},
		{"#fff", 0, true},
		{"zzzzzz", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := parseHex(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestFormatHex(t *testing.T) {
	assert.Equal(t, "#00ff00", formatHex(0x00ff00))
	assert.Equal(t, "#123456", formatHex(0xff123456))
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, 0, floorDiv(0, 100))
	assert.Equal(t, 0, floorDiv(99, 100))
	assert.Equal(t, 1, floorDiv(100, 100))
	assert.Equal(t, -1, floorDiv(-1, 100))
	assert.Equal(t, -1, floorDiv(-100, 100))
	assert.Equal(t, -2, floorDiv(-101, 100))
}

func TestClampInt(t *testing.T) {
	assert.Equal(t, 1, clampInt(-3, 1, 64))
	assert.Equal(t, 64, clampInt(65, 1, 64))
	assert.Equal(t, 7, clampInt(7, 1, 64))
}

func TestColorRoundTrip(t *testing.T) {
	assert.Equal(t, uint32(0xa1b2c3), fromColor(toRGBA(0xa1b2c3)))
	r, g, b := unpackRGB(0xa1b2c3)
	assert.Equal(t, uint32(0xa1b2c3), packRGB(r, g, b))
}
