package types

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// -----------------------------------------------------------------------------
// Diagnostics
// -----------------------------------------------------------------------------
//
// A 9-patch image can carry several optional chunks. A bad one is skipped and
// decoding continues, so callers need a record of everything that was skipped
// and why. Diagnostics are collected instead of returned as the first error.

// Severity classifies how serious a diagnostic issue is.
type Severity int

const (
	SevInfo    Severity = iota // unusual but valid
	SevWarning                 // chunk skipped, image still usable
	SevError                   // primary 9-patch data unusable
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "info"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// MarshalJSON encodes the severity by name.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Diagnostic describes one issue found while reading chunks.
type Diagnostic struct {
	Severity Severity `json:"severity"`
	Tag      string   `json:"tag"`
	Offset   int      `json:"offset"` // payload offset in the container, -1 if unknown
	Message  string   `json:"message"`
	Expected int      `json:"expected,omitempty"`
	Actual   int      `json:"actual,omitempty"`
}

func (d Diagnostic) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s] %s", d.Severity, d.Tag)
	if d.Offset >= 0 {
		fmt.Fprintf(&sb, " @0x%x", d.Offset)
	}
	sb.WriteString(": ")
	sb.WriteString(d.Message)
	if d.Expected != 0 || d.Actual != 0 {
		fmt.Fprintf(&sb, " (expected %d, got %d)", d.Expected, d.Actual)
	}
	return sb.String()
}

// DiagnosticReport collects diagnostics in the order they were found.
type DiagnosticReport struct {
	Diagnostics []Diagnostic `json:"diagnostics"`
	Summary     DiagSummary  `json:"summary"`
}

// DiagSummary provides quick statistics.
type DiagSummary struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Info     int `json:"info"`
}

// Add records d and updates the summary.
func (r *DiagnosticReport) Add(d Diagnostic) {
	r.Diagnostics = append(r.Diagnostics, d)
	switch d.Severity {
	case SevError:
		r.Summary.Errors++
	case SevWarning:
		r.Summary.Warnings++
	default:
		r.Summary.Info++
	}
}

// HasErrors reports whether any SevError diagnostic was recorded.
func (r *DiagnosticReport) HasErrors() bool {
	return r != nil && r.Summary.Errors > 0
}

// ByTag returns the diagnostics grouped by chunk tag, tags sorted.
func (r *DiagnosticReport) ByTag() ([]string, map[string][]Diagnostic) {
	groups := make(map[string][]Diagnostic)
	for _, d := range r.Diagnostics {
		groups[d.Tag] = append(groups[d.Tag], d)
	}
	tags := make([]string, 0, len(groups))
	for tag := range groups {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags, groups
}

// FormatText renders the report one diagnostic per line, followed by a
// summary line.
func (r *DiagnosticReport) FormatText() string {
	var sb strings.Builder
	for _, d := range r.Diagnostics {
		sb.WriteString(d.String())
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "%d error(s), %d warning(s), %d info\n",
		r.Summary.Errors, r.Summary.Warnings, r.Summary.Info)
	return sb.String()
}
