package tagger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagReturnsOneTagPerWord(t *testing.T) {
	words := []string{"teh", "runing", "helo"}

	tagged, err := New().Tag(words)
	require.NoError(t, err)

	require.Len(t, tagged, len(words))
	for i, tw := range tagged {
		assert.Equal(t, words[i], tw.Word)
		assert.NotEmpty(t, tw.Tag)
	}
}

func TestTagEmpty(t *testing.T) {
	tagged, err := New().Tag(nil)
	require.NoError(t, err)
	assert.Empty(t, tagged)
}

func TestTagDeterministic(t *testing.T) {
	words := []string{"quick", "runing", "fox"}

	first, err := New().Tag(words)
	require.NoError(t, err)
	second, err := New().Tag(words)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
