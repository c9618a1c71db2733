package checker

import (
	"fmt"
	"sort"
)

// POSProfile is a frequency distribution of part-of-speech tags.
type POSProfile map[string]int

// Add increments the count for tag.
func (p POSProfile) Add(tag string) { p[tag]++ }

// Merge folds other into p, tag by tag. Merging is commutative, so
// cross-document accumulation is order-independent.
func (p POSProfile) Merge(other POSProfile) {
	for tag, count := range other {
		p[tag] += count
	}
}

// Total is the sum of all tag counts.
func (p POSProfile) Total() int {
	n := 0
	for _, c := range p {
		n += c
	}
	return n
}

// TagCount is one row of a sorted profile.
type TagCount struct {
	Tag   string
	Count int
}

// Sorted returns the profile by descending count, ties broken by tag.
func (p POSProfile) Sorted() []TagCount {
	out := make([]TagCount, 0, len(p))
	for tag, count := range p {
		out = append(out, TagCount{Tag: tag, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Tag < out[j].Tag
		}
		return out[i].Count > out[j].Count
	})
	return out
}

// ProfileOf tags each misspelled surface form and tallies tag frequency.
func ProfileOf(tagger Tagger, misspelled []string) (POSProfile, error) {
	profile := make(POSProfile)
	if len(misspelled) == 0 {
		return profile, nil
	}
	tagged, err := tagger.Tag(misspelled)
	if err != nil {
		return nil, fmt.Errorf("tag misspelled words: %w", err)
	}
	for _, tw := range tagged {
		profile.Add(tw.Tag)
	}
	return profile, nil
}
