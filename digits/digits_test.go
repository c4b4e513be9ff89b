package digits

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"১২৩", "123"},
		{"123", "123"},
		{"১২.৫", "12.5"},
		{"০", "0"},
		{"১২a৩", "12a3"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Normalize(c.in), "Normalize(%q)", c.in)
	}
}

func TestIsDigit(t *testing.T) {
	assert.True(t, IsDigit('৫'))
	assert.True(t, IsDigit('5'))
	assert.False(t, IsDigit('a'))
	assert.False(t, IsDigit('ক'))
}

func TestToBengali(t *testing.T) {
	assert.Equal(t, "১২৩", ToBengali("123"))
	assert.Equal(t, "১২.৫", ToBengali("12.5"))
}
