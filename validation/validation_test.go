package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidString(t *testing.T) {
	assert.True(t, IsValidString("hello"))
	assert.False(t, IsValidString(""))
}

func TestParseNumber(t *testing.T) {
	n, ok := ParseNumber("42")
	require.True(t, ok)
	assert.Equal(t, int64(42), n)

	n, ok = ParseNumber("-3")
	require.True(t, ok)
	assert.Equal(t, int64(-3), n)

	for _, v := range []string{"", "self", "4.2", "1e3", "12abc"} {
		_, ok := ParseNumber(v)
		assert.False(t, ok, v)
	}
}
