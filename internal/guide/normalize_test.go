package guide_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/neexbeast/tourguide/internal/guide"
)

func TestNormalizeDestination(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", guide.UnknownDestination},
		{"whitespace", "   ", guide.UnknownDestination},
		{"tabs and newlines", "\t\n ", guide.UnknownDestination},
		{"lowercase", "paris", "Paris"},
		{"trimmed", "  tokyo  ", "Tokyo"},
		{"rest unchanged", "nEW yORK", "NEW yORK"},
		{"already capitalized", "Rome", "Rome"},
		{"accented first letter", "équateur", "Équateur"},
		{"single letter", "x", "X"},
		{"digit first", "7 îles", "7 îles"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := guide.NormalizeDestination(tt.in)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, got)
		})
	}
}

func TestClampCount(t *testing.T) {
	assert.Equal(t, 0, guide.ClampCount(-5))
	assert.Equal(t, 0, guide.ClampCount(0))
	assert.Equal(t, 7, guide.ClampCount(7))
}
