package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Apple", "apple"},
		{"Passion Fruit Variety 25", "passion-fruit-variety-25"},
		{"Custard Apple", "custard-apple"},
		{"  Lemon -- Candy!  ", "lemon-candy"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GenerateSlug(tt.input), "input %q", tt.input)
	}
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 42, ParseInt("42", 0))
	assert.Equal(t, 7, ParseInt("", 7))
	assert.Equal(t, 7, ParseInt("not-a-number", 7))
	assert.Equal(t, -3, ParseInt("-3", 0))
}
