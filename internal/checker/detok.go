package checker

import "strings"

// closers attach to the preceding token.
var noSpaceBefore = map[string]bool{
	",": true, ".": true, "!": true, "?": true, ";": true, ":": true,
	")": true, "]": true, "}": true, "%": true, "...": true,
	"''": true, "'": true, "”": true, "’": true,
	"n't": true,
}

// openers attach to the following token.
var noSpaceAfter = map[string]bool{
	"(": true, "[": true, "{": true, "$": true,
	"``": true, "“": true, "‘": true,
}

// Detokenize reassembles tokens into text, reversing the tokenizer's
// boundary decisions: no space before closing punctuation and contraction
// suffixes, none after opening brackets and quotes. Straight double quotes
// carry no direction, so they alternate between opening and closing. Empty
// placeholder tokens contribute nothing.
func Detokenize(tokens []string) string {
	var b strings.Builder
	prev := ""
	openQuote := false
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		if prev != "" && spaceBetween(prev, tok, openQuote) {
			b.WriteByte(' ')
		}
		b.WriteString(tok)
		if tok == `"` {
			openQuote = !openQuote
		}
		prev = tok
	}
	return b.String()
}

// openQuote reports whether an unclosed straight double quote precedes curr.
func spaceBetween(prev, curr string, openQuote bool) bool {
	if curr == `"` {
		// a closing quote attaches to the preceding token
		if openQuote {
			return false
		}
	} else if noSpaceBefore[curr] {
		return false
	}
	if prev == `"` && openQuote {
		return false
	}
	if noSpaceAfter[prev] {
		return false
	}
	// contraction tails like 's, 'll, 've stay glued to their word
	if strings.HasPrefix(curr, "'") && len(curr) <= 3 {
		return false
	}
	return true
}
