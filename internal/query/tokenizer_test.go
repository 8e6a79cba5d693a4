package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeImplicitAnd(t *testing.T) {
	tokens, ok := Tokenize("hello   world")
	require.True(t, ok)
	assert.Equal(t, []string{"hello", "and", "world"}, tokens)
}

func TestTokenizeKeepsExplicitOperators(t *testing.T) {
	tokens, ok := Tokenize("dog and cat or fish")
	require.True(t, ok)
	assert.Equal(t, []string{"dog", "and", "cat", "or", "fish"}, tokens)
}

func TestTokenizeLowercases(t *testing.T) {
	tokens, ok := Tokenize("Dog AND Cat")
	require.True(t, ok)
	assert.Equal(t, []string{"dog", "and", "cat"}, tokens)
}

func TestTokenizeDropsShortTokens(t *testing.T) {
	// short tokens are dropped before implicit-and insertion, so "a and
	// dog" degrades to a leading operator and later fails validation
	tokens, ok := Tokenize("a and dog")
	require.True(t, ok)
	assert.Equal(t, []string{"and", "dog"}, tokens)
	assert.False(t, Validate(tokens))
}

func TestTokenizeKeepsOr(t *testing.T) {
	tokens, ok := Tokenize("cat or dog")
	require.True(t, ok)
	assert.Equal(t, []string{"cat", "or", "dog"}, tokens)
}

func TestTokenizeSplitsOnTabs(t *testing.T) {
	tokens, ok := Tokenize("cat\t \tdog")
	require.True(t, ok)
	assert.Equal(t, []string{"cat", "and", "dog"}, tokens)
}

func TestTokenizeRejectsNonAlphabetic(t *testing.T) {
	for _, line := range []string{"dog3", "dog cat5", "don't", "naïve"} {
		_, ok := Tokenize(line)
		assert.False(t, ok, "line %q", line)
	}
}

func TestTokenizeEmpty(t *testing.T) {
	tokens, ok := Tokenize("   ")
	require.True(t, ok)
	assert.Empty(t, tokens)
	assert.False(t, Validate(tokens))
}

func TestValidate(t *testing.T) {
	valid := [][]string{
		{"dog"},
		{"dog", "and", "cat"},
		{"dog", "or", "cat", "and", "fish"},
	}
	for _, tokens := range valid {
		assert.True(t, Validate(tokens), "%v", tokens)
	}

	invalid := [][]string{
		{},
		{"and"},
		{"and", "dog"},
		{"dog", "or"},
		{"the", "and", "and", "dog"},
		{"dog", "and", "or", "cat"},
	}
	for _, tokens := range invalid {
		assert.False(t, Validate(tokens), "%v", tokens)
	}
}
