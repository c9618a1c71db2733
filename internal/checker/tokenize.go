package checker

import (
	"fmt"
	"strings"
	"unicode"

	prose "github.com/jdkato/prose/v2"
)

// Tokenize splits text into word and punctuation tokens. Punctuation is
// split off as its own tokens; Detokenize reverses the spacing decisions.
func Tokenize(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
		prose.WithSegmentation(false),
	)
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}
	toks := doc.Tokens()
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Text
	}
	return out, nil
}

// IsCandidate reports whether tok is eligible for spell checking: letters
// only, more than two runes, and not entirely uppercase. Acronyms and short
// function words stay untouched.
func IsCandidate(tok string) bool {
	r := []rune(tok)
	if len(r) <= 2 {
		return false
	}
	hasLower, hasUpper := false, false
	for _, c := range r {
		if !unicode.IsLetter(c) {
			return false
		}
		if unicode.IsLower(c) {
			hasLower = true
		}
		if unicode.IsUpper(c) {
			hasUpper = true
		}
	}
	return !(hasUpper && !hasLower)
}

// CountRealWords is the error-rate denominator: the number of candidate
// tokens in text.
func CountRealWords(text string) (int, error) {
	tokens, err := Tokenize(text)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, t := range tokens {
		if IsCandidate(t) {
			n++
		}
	}
	return n, nil
}
