// Package tagger assigns Penn Treebank part-of-speech tags using the prose
// NLP library.
package tagger

import (
	"fmt"
	"strings"

	prose "github.com/jdkato/prose/v2"

	"spellprof/internal/checker"
)

// Tagger implements checker.Tagger on top of prose's averaged perceptron
// model. Safe for sequential reuse across documents.
type Tagger struct{}

var _ checker.Tagger = (*Tagger)(nil)

// New returns a ready Tagger. Model data is embedded in the prose package,
// so construction never touches the network or filesystem.
func New() *Tagger { return &Tagger{} }

// Tag tags words as a single sequence. Inputs are expected to be individual
// alphabetic tokens, so joining them with spaces round-trips through prose's
// tokenizer unchanged.
func (t *Tagger) Tag(words []string) ([]checker.TaggedWord, error) {
	if len(words) == 0 {
		return nil, nil
	}
	doc, err := prose.NewDocument(strings.Join(words, " "),
		prose.WithExtraction(false),
		prose.WithSegmentation(false),
	)
	if err != nil {
		return nil, fmt.Errorf("pos tagging: %w", err)
	}
	toks := doc.Tokens()
	out := make([]checker.TaggedWord, 0, len(toks))
	for _, tok := range toks {
		out = append(out, checker.TaggedWord{Word: tok.Text, Tag: tok.Tag})
	}
	return out, nil
}
