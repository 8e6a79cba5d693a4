package indexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeWord(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"fox", "fox", true},
		{"Brown", "brown", true},
		{"THE", "the", true},
		{"bb", "", false},
		{"", "", false},
		{"abc123", "", false},
		{"don't", "", false},
		{"héllo", "", false},
		{"Abcdefghij", "abcdefghij", true},
	}
	for _, tt := range tests {
		got, ok := NormalizeWord(tt.in)
		assert.Equal(t, tt.ok, ok, "token %q", tt.in)
		assert.Equal(t, tt.want, got, "token %q", tt.in)
	}
}
