// Package reportio serializes validation reports to JSON files. The
// core never writes files itself; this package is the one output
// collaborator.
package reportio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	pv "github.com/careproc/validator"
)

// Default file names written by WriteAll.
const (
	ReportFile    = "validation-report.json"
	SuccessesFile = "validation-successes.json"
	OthersFile    = "validation-issues.json"
	DocumentsDir  = "documents"
)

// Summary is the serialized form of one validation run.
type Summary struct {
	RunID       string         `json:"runId"`
	GeneratedAt time.Time      `json:"generatedAt"`
	Generation  pv.Generation  `json:"generation"`
	Counts      map[string]int `json:"counts"`
	Findings    []pv.Finding   `json:"findings"`
}

// NewSummary builds the serialized form of a report. Findings carry the
// report's sorted order; counts are keyed by severity name.
func NewSummary(report *pv.Report, generation pv.Generation) *Summary {
	counts := make(map[string]int)
	for sev, n := range report.Counts() {
		counts[sev.String()] = n
	}
	return &Summary{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Generation:  generation,
		Counts:      counts,
		Findings:    report.Findings(),
	}
}

// Writer writes report files into a directory.
type Writer struct {
	// Dir is the output directory; it is created on demand.
	Dir string
}

// NewWriter creates a writer targeting dir.
func NewWriter(dir string) *Writer {
	return &Writer{Dir: dir}
}

// WriteAll writes the grand-total report, the success and issue
// partitions, and one combined file per source document. All files of
// one call share a run id.
func (w *Writer) WriteAll(report *pv.Report, generation pv.Generation) error {
	summary := NewSummary(report, generation)
	if err := w.writeJSON(ReportFile, summary); err != nil {
		return err
	}

	successes := *summary
	successes.Findings = report.Successes()
	if err := w.writeJSON(SuccessesFile, &successes); err != nil {
		return err
	}

	others := *summary
	others.Findings = report.Others()
	if err := w.writeJSON(OthersFile, &others); err != nil {
		return err
	}

	for file, findings := range report.ByFile() {
		doc := *summary
		doc.Findings = findings
		doc.Counts = countBySeverity(findings)
		name := filepath.Join(DocumentsDir, documentFileName(file))
		if err := w.writeJSON(name, &doc); err != nil {
			return err
		}
	}
	return nil
}

// Write writes only the grand-total report file.
func (w *Writer) Write(report *pv.Report, generation pv.Generation) error {
	return w.writeJSON(ReportFile, NewSummary(report, generation))
}

func (w *Writer) writeJSON(name string, v any) error {
	path := filepath.Join(w.Dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize %s: %w", name, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func countBySeverity(findings []pv.Finding) map[string]int {
	counts := make(map[string]int)
	for _, f := range findings {
		counts[f.Severity.String()]++
	}
	return counts
}

// documentFileName derives a flat file name from a source path.
func documentFileName(file string) string {
	slug := strings.NewReplacer("/", "_", "\\", "_", ":", "_").Replace(file)
	return slug + ".report.json"
}
