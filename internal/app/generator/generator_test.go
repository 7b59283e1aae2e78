package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLength(t *testing.T) {
	tests := []struct {
		name   string
		length int
	}{
		{"Default length", CodeLength},
		{"Single character", 1},
		{"Longer code", 32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := Generate(tt.length)
			require.NoError(t, err)
			assert.Len(t, code, tt.length)
		})
	}
}

func TestGenerateAlphabet(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := Generate(CodeLength)
		require.NoError(t, err)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(Alphabet, r), "unexpected character %q in code %q", r, code)
		}
	}
}

func TestGenerateUniqueness(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		code, err := Generate(CodeLength)
		require.NoError(t, err)
		_, dup := seen[code]
		assert.False(t, dup, "duplicate code %q after %d draws", code, i)
		seen[code] = struct{}{}
	}
}
