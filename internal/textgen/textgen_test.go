package textgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomSizeAndCharset(t *testing.T) {
	data, err := Random(4096, "ABC")
	require.NoError(t, err)
	require.Len(t, data, 4096)
	for i, c := range data {
		if !strings.ContainsRune("ABC", rune(c)) {
			t.Fatalf("byte %d = %q not drawn from charset", i, c)
		}
	}
}

func TestRandomRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		charset string
	}{
		{"zero size", 0, DefaultCharset},
		{"negative size", -1, DefaultCharset},
		{"empty charset", 128, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Random(tt.size, tt.charset)
			assert.Error(t, err)
			assert.Nil(t, data)
		})
	}
}

func TestRepeat(t *testing.T) {
	data, err := Repeat(1000, DefaultFill)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("A", 1000), string(data))
}

func TestRepeatRejectsZeroSize(t *testing.T) {
	data, err := Repeat(0, DefaultFill)
	assert.Error(t, err)
	assert.Nil(t, data)
}
