// Package output writes summary reports to disk.
package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"textdigest/internal/domain"
)

const (
	jsonSuffix = "_summary.json"
	csvSuffix  = "_insights.csv"

	insightColumn = "insight"
)

// Paths lists the files written for one report.
type Paths struct {
	JSON string
	CSV  string
}

// PathsFor returns where the report for the input named stem goes inside dir.
func PathsFor(dir string, stem string) Paths {
	return Paths{
		JSON: filepath.Join(dir, stem+jsonSuffix),
		CSV:  filepath.Join(dir, stem+csvSuffix),
	}
}

// Write stores report as JSON and its insights as a one-column CSV.
// The directory is created when missing.
func Write(dir string, stem string, report domain.Report) (Paths, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Paths{}, fmt.Errorf("create output dir: %w", err)
	}

	paths := PathsFor(dir, stem)

	if err := writeJSON(paths.JSON, report); err != nil {
		return Paths{}, fmt.Errorf("write JSON: %w", err)
	}

	if err := writeCSV(paths.CSV, report.KeyInsights); err != nil {
		return Paths{}, fmt.Errorf("write CSV: %w", err)
	}

	return paths, nil
}

func writeJSON(path string, report domain.Report) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(normalize(report)); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func writeCSV(path string, insights []string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{insightColumn}); err != nil {
		return err
	}
	for _, insight := range insights {
		if err := w.Write([]string{insight}); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// normalize keeps empty lists as [] in the JSON document.
func normalize(report domain.Report) domain.Report {
	if report.KeyInsights == nil {
		report.KeyInsights = []string{}
	}
	if report.TopKeywords == nil {
		report.TopKeywords = []string{}
	}
	if report.Links == nil {
		report.Links = []string{}
	}

	return report
}
