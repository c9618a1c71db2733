package dictionary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDict(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dict.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeDict(t, "the 22038615\nQuick 87809\nfox 5162\n\nmalformed-line\nword notanumber\nfloaty 12.0\n")

	d, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4, d.Len())
	assert.True(t, d.Known("the"))
	assert.True(t, d.Known("quick"), "entries are lowercased")
	assert.True(t, d.Known("FOX"), "lookups are case-insensitive")
	assert.True(t, d.Known("floaty"), "float counts are accepted")
	assert.False(t, d.Known("malformed-line"))
	assert.False(t, d.Known("word"), "unparseable counts are skipped")
}

func TestLoadEmptyFile(t *testing.T) {
	d, err := Load(writeDict(t, ""))
	require.NoError(t, err)
	assert.Zero(t, d.Len())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}

func TestUnknown(t *testing.T) {
	d := New()
	d.AddEntry("the", 100)
	d.AddEntry("quick", 50)

	unknown := d.Unknown([]string{"The", "teh", "quick", "brwn"})
	assert.Equal(t, map[string]bool{"teh": true, "brwn": true}, unknown)
}

func TestCorrectionTransposition(t *testing.T) {
	d := New()
	d.AddEntry("the", 22038615)
	d.AddEntry("quick", 87809)
	d.AddEntry("fox", 5162)

	got, ok := d.Correction("teh")
	require.True(t, ok)
	assert.Equal(t, "the", got)
}

func TestCorrectionKnownWordIsItself(t *testing.T) {
	d := New()
	d.AddEntry("quick", 87809)

	got, ok := d.Correction("Quick")
	require.True(t, ok)
	assert.Equal(t, "quick", got)
}

func TestCorrectionNoCandidate(t *testing.T) {
	d := New()
	d.AddEntry("the", 100)

	_, ok := d.Correction("zzzzzzzz")
	assert.False(t, ok)
}

func TestCorrectionEmptyDictionary(t *testing.T) {
	d := New()

	_, ok := d.Correction("teh")
	assert.False(t, ok)
}

// Frequency breaks near-ties between candidates at the same distance.
func TestCorrectionPrefersFrequentCandidate(t *testing.T) {
	d := New()
	d.AddEntry("car", 100000)
	d.AddEntry("cat", 100)

	got, ok := d.Correction("caf")
	require.True(t, ok)
	assert.Equal(t, "car", got)
}

func TestCorrectionDistanceTwo(t *testing.T) {
	d := New()
	d.AddEntry("spelling", 10000)

	got, ok := d.Correction("speling")
	require.True(t, ok)
	assert.Equal(t, "spelling", got, "one deletion away")

	got, ok = d.Correction("spellng")
	require.True(t, ok)
	assert.Equal(t, "spelling", got)

	got, ok = d.Correction("sppelingg")
	assert.False(t, ok, "three edits away: %q", got)
}

func TestCustomWords(t *testing.T) {
	d := New()
	d.AddEntry("the", 100)
	d.AddCustomWords([]string{"Golang"})

	assert.True(t, d.Known("golang"))
	assert.Empty(t, d.Unknown([]string{"golang"}))

	got, ok := d.Correction("golan")
	require.True(t, ok)
	assert.Equal(t, "golang", got)
}

// A single-edit candidate beats a multi-edit winner at close scores; only a
// large frequency lead lets the multi-edit candidate through.
func TestCorrectionPrefersSingleEdit(t *testing.T) {
	d := New()
	d.AddEntry("help", 100)
	d.AddEntry("happy", 600)

	got, ok := d.Correction("halp")
	require.True(t, ok)
	assert.Equal(t, "help", got)

	d = New()
	d.AddEntry("help", 100)
	d.AddEntry("happy", 1000000000)

	got, ok = d.Correction("halp")
	require.True(t, ok)
	assert.Equal(t, "happy", got)
}

func TestCorrectionDeterministic(t *testing.T) {
	d := New()
	d.AddEntry("bat", 500)
	d.AddEntry("bad", 500)

	first, ok := d.Correction("baz")
	require.True(t, ok)
	for i := 0; i < 10; i++ {
		got, ok := d.Correction("baz")
		require.True(t, ok)
		assert.Equal(t, first, got)
	}
}
