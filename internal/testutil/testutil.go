// Package testutil provides fixtures and fakes shared by package tests.
package testutil

import (
	"testing"

	"github.com/kyleking/cutecosmic/internal/theme"
)

// AssertColorNear fails when a and b differ by more than 1/512 per channel.
func AssertColorNear(t *testing.T, name string, got, want theme.Color) {
	t.Helper()

	const eps = 1.0 / 512

	diff := func(a, b float32) float32 {
		if a > b {
			return a - b
		}
		return b - a
	}

	if diff(got.Red, want.Red) > eps || diff(got.Green, want.Green) > eps ||
		diff(got.Blue, want.Blue) > eps || diff(got.Alpha, want.Alpha) > eps {
		t.Errorf("%s: got %+v, want %+v", name, got, want)
	}
}
