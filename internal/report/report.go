// Package report renders the result bundle: corrected documents, the summary
// CSV and the POS error profile, packaged as a single ZIP.
package report

import (
	"archive/zip"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"spellprof/internal/batch"
	"spellprof/internal/checker"
)

const (
	correctedPrefix = "corrected_"
	summaryName     = "summary_report.csv"
	posReportName   = "pos_analysis_report.txt"
	profileHeader   = "Total POS Error Profile:"
)

var summaryColumns = []string{"Filename", "Total Words", "Error Count", "Error Rate"}

// SummaryCSV writes the per-document summary table, rows in input order.
func SummaryCSV(w io.Writer, results []batch.FileResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(summaryColumns); err != nil {
		return fmt.Errorf("write summary header: %w", err)
	}
	for _, r := range results {
		row := []string{r.Name, strconv.Itoa(r.TotalWords), strconv.Itoa(r.ErrorCount), r.ErrorRatePercent()}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write summary row %s: %w", r.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// POSReport renders the corpus-wide profile, one "TAG: count" line per tag in
// descending frequency order.
func POSReport(profile checker.POSProfile) string {
	var b strings.Builder
	b.WriteString(profileHeader + "\n")
	for _, tc := range profile.Sorted() {
		fmt.Fprintf(&b, "%s: %d\n", tc.Tag, tc.Count)
	}
	return b.String()
}

// WriteBundle writes the ZIP bundle: one corrected_<name> entry per input
// document, the summary CSV and the POS report.
func WriteBundle(w io.Writer, results []batch.FileResult, profile checker.POSProfile) error {
	zw := zip.NewWriter(w)
	for _, r := range results {
		f, err := zw.Create(correctedPrefix + r.Name)
		if err != nil {
			return fmt.Errorf("bundle entry %s: %w", r.Name, err)
		}
		if _, err := io.WriteString(f, r.CorrectedText); err != nil {
			return fmt.Errorf("bundle entry %s: %w", r.Name, err)
		}
	}

	f, err := zw.Create(summaryName)
	if err != nil {
		return fmt.Errorf("bundle entry %s: %w", summaryName, err)
	}
	if err := SummaryCSV(f, results); err != nil {
		return err
	}

	f, err = zw.Create(posReportName)
	if err != nil {
		return fmt.Errorf("bundle entry %s: %w", posReportName, err)
	}
	if _, err := io.WriteString(f, POSReport(profile)); err != nil {
		return fmt.Errorf("bundle entry %s: %w", posReportName, err)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalize bundle: %w", err)
	}
	return nil
}
