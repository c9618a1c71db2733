// Package batch owns the orchestration loop: directory ingestion, the
// sequential per-document pass, and the cross-document accumulators.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"spellprof/internal/checker"
)

// Document is one input file: its base name and decoded text.
type Document struct {
	Name string
	Text string
}

// LoadDir collects the .txt files under dir, sorted by name so a run is
// deterministic. Bytes that are not valid UTF-8 are replaced with U+FFFD;
// a broken file never aborts ingestion.
func LoadDir(dir string) ([]Document, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("input folder: %w", err)
	}
	var docs []Document
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || strings.ToLower(filepath.Ext(path)) != ".txt" {
			return nil
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		docs = append(docs, Document{Name: info.Name(), Text: decode(b)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan input folder: %w", err)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })
	return docs, nil
}

func decode(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	return strings.ToValidUTF8(string(b), string(utf8.RuneError))
}

// FileResult is the per-document summary record.
type FileResult struct {
	Name          string
	CorrectedText string
	TotalWords    int
	ErrorCount    int
}

// ErrorRate is the percentage of candidate words that were misspelled,
// defined as 0 for a document with no candidate words.
func (r FileResult) ErrorRate() float64 {
	if r.TotalWords == 0 {
		return 0
	}
	return float64(r.ErrorCount) / float64(r.TotalWords) * 100
}

// ErrorRatePercent renders the rate like "12.50%".
func (r FileResult) ErrorRatePercent() string {
	return fmt.Sprintf("%.2f%%", r.ErrorRate())
}

// Result is a completed batch: per-document records in input order and the
// corpus-wide profile of misspelled words.
type Result struct {
	Documents []FileResult
	Profile   checker.POSProfile
}

// Processor runs documents through the checker and tagger one at a time.
type Processor struct {
	checker *checker.Checker
	tagger  checker.Tagger
	log     zerolog.Logger
}

// NewProcessor wires the collaborators. Both handles must already be
// initialized; the processor never performs setup of its own.
func NewProcessor(c *checker.Checker, t checker.Tagger, log zerolog.Logger) *Processor {
	return &Processor{checker: c, tagger: t, log: log}
}

// Run processes docs in order. The cross-document profile and summary list
// are updated only after a document's analysis completes, and any failure
// aborts the whole batch without partial results.
func (p *Processor) Run(docs []Document) (*Result, error) {
	res := &Result{Profile: make(checker.POSProfile)}
	for i, doc := range docs {
		analysis, err := p.checker.Analyze(doc.Text)
		if err != nil {
			return nil, fmt.Errorf("analyze %s: %w", doc.Name, err)
		}
		profile, err := checker.ProfileOf(p.tagger, analysis.Misspelled)
		if err != nil {
			return nil, fmt.Errorf("profile %s: %w", doc.Name, err)
		}

		res.Profile.Merge(profile)
		res.Documents = append(res.Documents, FileResult{
			Name:          doc.Name,
			CorrectedText: analysis.CorrectedText,
			TotalWords:    analysis.TotalWords,
			ErrorCount:    analysis.ErrorCount,
		})

		p.log.Info().
			Str("file", doc.Name).
			Int("words", analysis.TotalWords).
			Int("errors", analysis.ErrorCount).
			Msgf("processed %d/%d", i+1, len(docs))
	}
	return res, nil
}
