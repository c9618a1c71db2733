package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitDL(t *testing.T) {
	testCases := []struct {
		a, b     string
		expected int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"teh", "the", 1},
		{"abc", "acb", 1},
		{"kitten", "sitting", 3},
		{"speling", "spelling", 1},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, unitDL(tc.a, tc.b), "unitDL(%q, %q)", tc.a, tc.b)
		assert.Equal(t, tc.expected, unitDL(tc.b, tc.a), "unitDL(%q, %q)", tc.b, tc.a)
	}
}

func TestIsOneAdjacentSwap(t *testing.T) {
	testCases := []struct {
		a, b     string
		expected bool
	}{
		{"teh", "the", true},
		{"abcd", "abdc", true},
		{"abcd", "badc", false},
		{"ab", "ab", false},
		{"abc", "abcd", false},
		{"a", "a", false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, isOneAdjacentSwap(tc.a, tc.b), "swap(%q, %q)", tc.a, tc.b)
	}
}

func TestWeightedDLTransposeFastPath(t *testing.T) {
	d := New()
	assert.Equal(t, d.opts.TransposeCost, d.weightedDL("teh", "the"))
}

// The cache key separator cannot occur inside a word, so distinct pairs never
// share a cache slot.
func TestWeightedDLCacheKeysDistinct(t *testing.T) {
	cached := New()
	first := cached.weightedDL("ab c", "d")
	second := cached.weightedDL("ab", "c d")

	fresh := New()
	assert.NotEqual(t, first, second)
	assert.Equal(t, fresh.weightedDL("ab c", "d"), first)
	assert.Equal(t, fresh.weightedDL("ab", "c d"), second)
}

func TestKeyDistance(t *testing.T) {
	assert.Equal(t, 0.0, keyDistance('q', 'q'))
	assert.Equal(t, 1.0, keyDistance('q', 'w'))
	assert.Equal(t, 2.5, keyDistance('q', 'ü'), "unknown keys get a flat distance")
}

// A near-key substitution must cost less than a far one, so keyboard slips
// outrank random replacements.
func TestSubstitutionCostOrdering(t *testing.T) {
	d := New()
	assert.Less(t, d.substitutionCost('a', 's'), d.substitutionCost('a', 'p'))
	assert.Less(t, d.substitutionCost('i', 'y'), d.substitutionCost('i', 'q'), "phonetic pair")
}
