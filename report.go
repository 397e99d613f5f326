package procvalidator

import (
	"sort"
	"sync"
)

// Report collects findings from all validated documents of a run.
// Adds are thread-safe; findings are append-only and never deduplicated.
type Report struct {
	mu       sync.Mutex
	findings []Finding
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{
		findings: make([]Finding, 0, 64),
	}
}

// Add appends a finding to the report.
func (r *Report) Add(f Finding) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.findings = append(r.findings, f)
}

// AddAll appends multiple findings to the report.
func (r *Report) AddAll(fs []Finding) {
	if len(fs) == 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.findings = append(r.findings, fs...)
}

// Findings returns all findings sorted by severity rank, then message.
// The sort is stable so equal findings keep their insertion order; this
// is the only ordering contract of a run.
func (r *Report) Findings() []Finding {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Finding, len(r.findings))
	copy(out, r.findings)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Severity != out[j].Severity {
			return out[i].Severity < out[j].Severity
		}
		return out[i].Message < out[j].Message
	})
	return out
}

// Len returns the total number of findings.
func (r *Report) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.findings)
}

// Count returns the number of findings with the given severity.
func (r *Report) Count(s Severity) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, f := range r.findings {
		if f.Severity == s {
			n++
		}
	}
	return n
}

// Counts returns the per-severity summary.
func (r *Report) Counts() map[Severity]int {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := make(map[Severity]int, 4)
	for _, f := range r.findings {
		counts[f.Severity]++
	}
	return counts
}

// HasErrors returns true if any finding has error severity. The exit
// status of a run derives from this alone.
func (r *Report) HasErrors() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, f := range r.findings {
		if f.IsError() {
			return true
		}
	}
	return false
}

// Successes returns the sorted subset of success findings.
func (r *Report) Successes() []Finding {
	return r.filter(func(f Finding) bool { return f.IsSuccess() })
}

// Others returns the sorted subset of non-success findings.
func (r *Report) Others() []Finding {
	return r.filter(func(f Finding) bool { return !f.IsSuccess() })
}

// ByFile groups the sorted findings by source file name. Findings
// without a file are grouped under the empty key.
func (r *Report) ByFile() map[string][]Finding {
	grouped := make(map[string][]Finding)
	for _, f := range r.Findings() {
		grouped[f.Location.File] = append(grouped[f.Location.File], f)
	}
	return grouped
}

// ProcessID returns the first non-empty process identifier recorded in
// any finding location, or "" if none was recorded.
func (r *Report) ProcessID() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, f := range r.findings {
		if f.Location.ID != "" {
			return f.Location.ID
		}
	}
	return ""
}

// Merge appends all findings of another report into this one.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}

	other.mu.Lock()
	fs := make([]Finding, len(other.findings))
	copy(fs, other.findings)
	other.mu.Unlock()

	r.AddAll(fs)
}

func (r *Report) filter(keep func(Finding) bool) []Finding {
	var out []Finding
	for _, f := range r.Findings() {
		if keep(f) {
			out = append(out, f)
		}
	}
	return out
}
