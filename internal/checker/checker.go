// Package checker implements the core of the spelling tool: token
// classification, dictionary-driven correction with casing restoration, and
// part-of-speech profiling of the misspelled words.
package checker

import "strings"

// Dictionary is the spelling collaborator. Lookups are case-insensitive;
// Correction reports ok == false when it has no suggestion, never an empty
// string standing in for "none".
type Dictionary interface {
	Unknown(words []string) map[string]bool
	Correction(word string) (string, bool)
}

// TaggedWord pairs a word with its part-of-speech tag.
type TaggedWord struct {
	Word string
	Tag  string
}

// Tagger assigns part-of-speech tags to a sequence of words.
type Tagger interface {
	Tag(words []string) ([]TaggedWord, error)
}

// Analysis is the outcome of one document pass.
type Analysis struct {
	CorrectedText string
	// Corrections maps each misspelled surface form to its raw suggestion.
	// First occurrence wins; repeats never overwrite.
	Corrections map[string]string
	// ErrorCount counts every misspelled occurrence, not unique words.
	ErrorCount int
	// Misspelled lists the surface forms in token order, one per occurrence.
	Misspelled []string
	// TotalWords is the number of candidate tokens in the document.
	TotalWords int
}

// Checker corrects documents against a dictionary.
type Checker struct {
	dict Dictionary
}

// New returns a Checker using dict. The dictionary handle is expected to be
// fully initialized by the caller; the Checker performs no lazy setup.
func New(dict Dictionary) *Checker {
	return &Checker{dict: dict}
}

// Analyze tokenizes text, corrects every candidate token the dictionary does
// not recognize, and reassembles the corrected text. A word without a
// suggestion keeps its surface form but still counts as an error.
func (c *Checker) Analyze(text string) (*Analysis, error) {
	tokens, err := Tokenize(text)
	if err != nil {
		return nil, err
	}

	var candidateIdx []int
	var candidateWords []string
	for i, t := range tokens {
		if IsCandidate(t) {
			candidateIdx = append(candidateIdx, i)
			candidateWords = append(candidateWords, strings.ToLower(t))
		}
	}
	unknown := c.dict.Unknown(candidateWords)

	out := make([]string, len(tokens))
	copy(out, tokens)

	res := &Analysis{
		Corrections: make(map[string]string),
		TotalWords:  len(candidateIdx),
	}
	for k, idx := range candidateIdx {
		lw := candidateWords[k]
		if !unknown[lw] {
			continue
		}
		surface := tokens[idx]
		suggestion, ok := c.dict.Correction(lw)
		if !ok {
			suggestion = surface
		}
		if _, seen := res.Corrections[surface]; !seen {
			res.Corrections[surface] = suggestion
		}
		res.ErrorCount++
		res.Misspelled = append(res.Misspelled, surface)
		out[idx] = ClassOf(surface).Apply(suggestion)
	}

	res.CorrectedText = Detokenize(out)
	return res, nil
}
