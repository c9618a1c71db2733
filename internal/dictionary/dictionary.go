package dictionary

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/edsrzf/mmap-go"

	"spellprof/pkg/options"
)

// Custom words outrank everything in the corpus so they always survive
// candidate ranking.
const customWordFreq = 1_000_000_000

// Dict is a frequency dictionary: it answers which words are recognized and
// proposes the best single correction for a word it does not recognize.
// Lookups are case-insensitive; all stored words are lowercase.
type Dict struct {
	opts        options.DictOptions
	frequencies map[string]float64
	vocabSet    map[string]bool
	customWords map[string]bool
	logpCache   sync.Map // map[string]float64
	distCache   sync.Map // map[string]float64, key: a+"\u0000"+b
}

// New returns an empty dictionary. Entries are fed via AddEntry or
// AddCustomWords.
func New(opts ...options.Options) *Dict {
	o := options.DefaultOptions
	for _, opt := range opts {
		opt.Apply(&o)
	}
	return &Dict{
		opts:        o,
		frequencies: make(map[string]float64),
		vocabSet:    make(map[string]bool),
		customWords: make(map[string]bool),
	}
}

// Load reads a frequency dictionary from path. Each line is "word count";
// malformed lines are skipped. The file is memory-mapped for the duration of
// the scan.
func Load(path string, opts ...options.Options) (*Dict, error) {
	d := New(opts...)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat dictionary: %w", err)
	}
	if info.Size() == 0 {
		return d, nil
	}

	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("map dictionary: %w", err)
	}
	defer mm.Unmap()

	s := bufio.NewScanner(bytes.NewReader(mm))
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}
		count, err := strconv.Atoi(parts[1])
		if err != nil {
			if fv, err2 := strconv.ParseFloat(parts[1], 64); err2 == nil {
				count = int(fv)
			} else {
				continue
			}
		}
		d.AddEntry(parts[0], count)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan dictionary: %w", err)
	}
	return d, nil
}

// AddEntry inserts a word with its corpus frequency.
func (d *Dict) AddEntry(word string, count int) {
	lw := strings.ToLower(word)
	d.frequencies[lw] = float64(count)
	d.vocabSet[lw] = true
}

// AddCustomWords merges user-supplied words into the vocabulary at a
// frequency that dominates corpus words.
func (d *Dict) AddCustomWords(words []string) {
	for _, w := range words {
		lw := strings.ToLower(w)
		d.customWords[lw] = true
		d.vocabSet[lw] = true
		d.frequencies[lw] = customWordFreq
	}
}

// Len reports the vocabulary size.
func (d *Dict) Len() int { return len(d.vocabSet) }

// Known reports whether word is in the vocabulary. Case-insensitive.
func (d *Dict) Known(word string) bool {
	return d.vocabSet[strings.ToLower(word)]
}

// Unknown returns the subset of words that are not recognized, as a set.
func (d *Dict) Unknown(words []string) map[string]bool {
	unknown := make(map[string]bool)
	for _, w := range words {
		lw := strings.ToLower(w)
		if !d.vocabSet[lw] {
			unknown[lw] = true
		}
	}
	return unknown
}
