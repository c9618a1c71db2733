package dictionary

import (
	"sort"
	"strings"
)

// Correction returns the best single correction for word, or ok == false when
// no vocabulary word lies within the configured edit distance. A word that is
// already in the vocabulary is its own correction.
func (d *Dict) Correction(word string) (string, bool) {
	lw := strings.ToLower(word)
	if d.vocabSet[lw] {
		return lw, true
	}

	cands := d.knownEdits(edits1(lw, d.opts.Alphabet))
	if d.opts.MaxEditDistance >= 2 {
		seen := make(map[string]bool, len(cands))
		for _, y := range cands {
			seen[y] = true
		}
		for _, y := range d.knownEdits2(lw) {
			if !seen[y] {
				cands = append(cands, y)
			}
		}
	}
	if len(cands) == 0 {
		return "", false
	}

	type scored struct {
		term  string
		score float64
		edits int
	}
	ranked := make([]scored, 0, len(cands))
	for _, y := range cands {
		s := d.opts.BetaWeight*d.logPrior(y) - d.opts.LambdaPenalty*d.weightedDL(lw, y)
		ranked = append(ranked, scored{term: y, score: s, edits: unitDL(lw, y)})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score == ranked[j].score {
			if ranked[i].edits == ranked[j].edits {
				return ranked[i].term < ranked[j].term
			}
			return ranked[i].edits < ranked[j].edits
		}
		return ranked[i].score > ranked[j].score
	})

	// Prefer a single-edit candidate over a multi-edit winner unless the
	// winner leads by more than singleEditMargin.
	best := ranked[0]
	if best.edits > 1 {
		for k := 1; k < len(ranked) && k < 3; k++ {
			if ranked[k].edits == 1 && best.score-ranked[k].score <= singleEditMargin {
				best = ranked[k]
				break
			}
		}
	}
	return best.term, true
}

// singleEditMargin is the score lead a multi-edit candidate must have over a
// single-edit one to win the ranking.
const singleEditMargin = 1.0

// edits1 generates every string one edit away from word: deletions,
// adjacent transpositions, replacements and insertions over alphabet.
func edits1(word, alphabet string) map[string]bool {
	out := make(map[string]bool)
	r := []rune(word)
	for i := 0; i <= len(r); i++ {
		left, right := r[:i], r[i:]
		if len(right) > 0 {
			out[string(left)+string(right[1:])] = true // delete
		}
		if len(right) > 1 {
			sw := make([]rune, 0, len(r))
			sw = append(sw, left...)
			sw = append(sw, right[1], right[0])
			sw = append(sw, right[2:]...)
			out[string(sw)] = true // transpose
		}
		for _, c := range alphabet {
			if len(right) > 0 {
				out[string(left)+string(c)+string(right[1:])] = true // replace
			}
			out[string(left)+string(c)+string(right)] = true // insert
		}
	}
	delete(out, word)
	return out
}

func (d *Dict) knownEdits(edits map[string]bool) []string {
	var known []string
	for e := range edits {
		if d.vocabSet[e] {
			known = append(known, e)
		}
	}
	return known
}

// knownEdits2 expands each distance-1 edit by one more edit and keeps the
// vocabulary hits. Quadratic in word length, which is fine for the short
// words a spell pass deals in; a delete-only index would be the next step if
// dictionaries grow.
func (d *Dict) knownEdits2(word string) []string {
	seen := make(map[string]bool)
	var known []string
	for e1 := range edits1(word, d.opts.Alphabet) {
		for e2 := range edits1(e1, d.opts.Alphabet) {
			if seen[e2] || !d.vocabSet[e2] {
				continue
			}
			seen[e2] = true
			known = append(known, e2)
		}
	}
	return known
}
