package bridge

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kyleking/cutecosmic/internal/theme"
)

func TestQuantize(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want uint8
	}{
		{"zero", 0, 0},
		{"smallest step", 1.0 / 256, 1},
		{"just under a step", 0.99 / 256, 0},
		{"half", 0.5, 128},
		{"truncates not rounds", 0.4999, 127},
		{"last step", 255.0 / 256, 255},
		{"just under one", 0.999, 255},
		// trunc(1.0 * 256) = 256 wraps to 0. Pinned: native callers rely on it.
		{"one wraps", 1.0, 0},
		{"nan", float32(math.NaN()), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Quantize(tt.in))
		})
	}
}

func TestQuantize_FloorAcrossRange(t *testing.T) {
	for i := 0; i < 256*4; i++ {
		v := float32(i) / (256 * 4)
		want := uint8(math.Floor(float64(v) * 256))
		if got := Quantize(v); got != want {
			t.Fatalf("Quantize(%v): got %d, want %d", v, got, want)
		}
	}
}

func TestNewColor(t *testing.T) {
	c := NewColor(theme.RGBA(0.5, 0.25, 0, 255.0/256))
	assert.Equal(t, Color{Red: 128, Green: 64, Blue: 0, Alpha: 255}, c)

	opaqueWhite := NewColor(theme.RGBA(1, 1, 1, 1))
	assert.Equal(t, Color{}, opaqueWhite, "1.0 channels wrap to 0")
}

func TestColorHex(t *testing.T) {
	c := Color{Red: 0x1b, Green: 0x2c, Blue: 0xff, Alpha: 0x80}
	assert.Equal(t, "#1b2cff80", c.Hex())
	assert.Equal(t, "#1b2cff", c.RGBHex())
}
