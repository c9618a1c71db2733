package checker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassOf(t *testing.T) {
	testCases := []struct {
		token    string
		expected CaseClass
	}{
		{"Teh", CaseTitle},
		{"TEH", CaseUpper},
		{"teh", CaseOther},
		{"tEh", CaseOther},
		{"T", CaseTitle},
		{"", CaseOther},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, ClassOf(tc.token), "token %q", tc.token)
	}
}

// isUpper needs at least one cased rune, so the empty string and uncased
// tokens never classify as upper.
func TestIsUpperRequiresCasedRune(t *testing.T) {
	assert.False(t, isUpper(""))
	assert.False(t, isUpper("123"))
	assert.True(t, isUpper("TEH"))
	assert.False(t, isUpper("tEh"))
}

// The casing law: the suggestion is rewritten in the class of the surface
// form it replaces.
func TestApplyCasingLaw(t *testing.T) {
	testCases := []struct {
		surface    string
		suggestion string
		expected   string
	}{
		{"Teh", "the", "The"},
		{"TEH", "the", "THE"},
		{"teh", "the", "the"},
		{"tEh", "the", "the"},
	}

	for _, tc := range testCases {
		got := ClassOf(tc.surface).Apply(tc.suggestion)
		assert.Equal(t, tc.expected, got, "surface %q", tc.surface)
	}
}

func TestApplyEmptySuggestion(t *testing.T) {
	assert.Equal(t, "", CaseTitle.Apply(""))
	assert.Equal(t, "", CaseUpper.Apply(""))
	assert.Equal(t, "", CaseOther.Apply(""))
}
