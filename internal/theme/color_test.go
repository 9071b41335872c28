package theme

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestFromHex(t *testing.T) {
	c, err := FromHex("#ff8000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Red != 1 || c.Blue != 0 || c.Alpha != 1 {
		t.Errorf("unexpected color: %+v", c)
	}

	if c.Hex() != "#ff8000" {
		t.Errorf("Hex: got %q", c.Hex())
	}

	if _, err := FromHex("orange"); err == nil {
		t.Error("expected error for invalid hex")
	}
}

func TestColorMix(t *testing.T) {
	got := black.Mix(white, 0)
	if got != black {
		t.Errorf("Mix(0): got %+v", got)
	}

	got = black.Mix(white, 1)
	if got != white {
		t.Errorf("Mix(1): got %+v", got)
	}

	half := black.WithAlpha(0.25).Mix(white, 0.5)
	if half.Alpha != 0.25 {
		t.Errorf("Mix should keep receiver alpha, got %v", half.Alpha)
	}
	if half.Red <= 0 || half.Red >= 1 {
		t.Errorf("Mix(0.5) red out of range: %v", half.Red)
	}
}

func TestColorLightness(t *testing.T) {
	if black.Lightness() > 0.01 {
		t.Errorf("black lightness: got %v", black.Lightness())
	}

	if l := white.Lightness(); l < 0.99 {
		t.Errorf("white lightness: got %v", l)
	}
}

func TestColorUnmarshalYAML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Color
	}{
		{"rgb mapping", "{red: 1.0, green: 0.5, blue: 0.0}", RGBA(1, 0.5, 0, 1)},
		{"rgba mapping", "{red: 0, green: 0, blue: 0, alpha: 0.25}", RGBA(0, 0, 0, 0.25)},
		{"hex", `"#ffffff"`, white},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Color
			if err := yaml.Unmarshal([]byte(tt.in), &c); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if c != tt.want {
				t.Errorf("got %+v, want %+v", c, tt.want)
			}
		})
	}
}

func TestColorUnmarshalYAML_Invalid(t *testing.T) {
	var c Color
	if err := yaml.Unmarshal([]byte(`"not a color"`), &c); err == nil {
		t.Error("expected error for invalid color string")
	}
}
