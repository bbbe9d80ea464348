package validation

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"
)

// ReportFormat selects a Reporter output format.
type ReportFormat int

const (
	FormatJSON ReportFormat = iota
	FormatText
	FormatMarkdown
)

// Reporter formats a ValidationReport for human or machine consumption.
type Reporter struct {
	config ReporterConfig
}

// ReporterConfig controls report formatting.
type ReporterConfig struct {
	GroupBySeverity   bool
	MaxIssuesPerGroup int
}

// NewReporter creates a reporter with the package defaults.
func NewReporter() *Reporter {
	return &Reporter{config: ReporterConfig{GroupBySeverity: true, MaxIssuesPerGroup: 50}}
}

// SetConfig replaces the reporter's configuration.
func (r *Reporter) SetConfig(config ReporterConfig) {
	r.config = config
}

// GenerateReport writes report to w in the given format.
func (r *Reporter) GenerateReport(report ValidationReport, format ReportFormat, w io.Writer) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case FormatText:
		return r.generateTextReport(report, w)
	case FormatMarkdown:
		return r.generateMarkdownReport(report, w)
	default:
		return fmt.Errorf("unsupported report format: %d", format)
	}
}

func (r *Reporter) generateTextReport(report ValidationReport, w io.Writer) error {
	fmt.Fprintf(w, "=== GTFS validation report ===\n")
	fmt.Fprintf(w, "Generated: %s\n\n", report.Timestamp.Format(time.RFC3339))
	fmt.Fprintf(w, "Total issues: %d (%s)\n\n", report.Summary.TotalIssues, r.statusText(report.Summary))

	severities := []ValidationSeverity{SeverityCritical, SeverityError, SeverityWarning, SeverityInfo}
	for _, sev := range severities {
		if count := report.Summary.BySeverity[sev]; count > 0 {
			fmt.Fprintf(w, "  %s: %d\n", sev.String(), count)
		}
	}
	fmt.Fprintln(w)

	if len(report.Issues) == 0 {
		return nil
	}
	if r.config.GroupBySeverity {
		r.writeGrouped(w, report.Issues, func(i ValidationIssue) string { return i.Severity.String() })
	} else {
		r.writeList(w, report.Issues, "All issues")
	}
	return nil
}

func (r *Reporter) writeGrouped(w io.Writer, issues []ValidationIssue, keyFunc func(ValidationIssue) string) {
	groups := make(map[string][]ValidationIssue)
	for _, issue := range issues {
		key := keyFunc(issue)
		groups[key] = append(groups[key], issue)
	}
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		r.writeList(w, groups[k], k)
	}
}

func (r *Reporter) writeList(w io.Writer, issues []ValidationIssue, heading string) {
	fmt.Fprintf(w, "--- %s (%d) ---\n", heading, len(issues))
	display := issues
	if r.config.MaxIssuesPerGroup > 0 && len(issues) > r.config.MaxIssuesPerGroup {
		display = issues[:r.config.MaxIssuesPerGroup]
		fmt.Fprintf(w, "(showing first %d of %d)\n", r.config.MaxIssuesPerGroup, len(issues))
	}
	for i, issue := range display {
		fmt.Fprintf(w, "%d. [%s] %s", i+1, issue.Code, issue.Message)
		if issue.EntityID != "" {
			fmt.Fprintf(w, " (%s %s)", issue.EntityType, issue.EntityID)
		}
		fmt.Fprintln(w)
		if issue.Field != "" {
			fmt.Fprintf(w, "   field: %s", issue.Field)
			if issue.Value != "" {
				fmt.Fprintf(w, " = %q", issue.Value)
			}
			fmt.Fprintln(w)
		}
	}
	fmt.Fprintln(w)
}

func (r *Reporter) generateMarkdownReport(report ValidationReport, w io.Writer) error {
	fmt.Fprintf(w, "# GTFS validation report\n\n")
	fmt.Fprintf(w, "**Generated:** %s\n\n", report.Timestamp.Format(time.RFC3339))
	fmt.Fprintf(w, "- **Total issues:** %d\n", report.Summary.TotalIssues)
	fmt.Fprintf(w, "- **Status:** %s\n\n", r.statusText(report.Summary))

	fmt.Fprintf(w, "| Severity | Count |\n|---|---|\n")
	severities := []ValidationSeverity{SeverityCritical, SeverityError, SeverityWarning, SeverityInfo}
	for _, sev := range severities {
		fmt.Fprintf(w, "| %s | %d |\n", sev.String(), report.Summary.BySeverity[sev])
	}
	fmt.Fprintln(w)

	for i, issue := range report.Issues {
		if r.config.MaxIssuesPerGroup > 0 && i >= r.config.MaxIssuesPerGroup {
			fmt.Fprintf(w, "*...and %d more*\n", len(report.Issues)-i)
			break
		}
		fmt.Fprintf(w, "- **%s** (%s): %s", issue.Code, issue.Severity.String(), issue.Message)
		if issue.EntityID != "" {
			fmt.Fprintf(w, " — %s `%s`", issue.EntityType, issue.EntityID)
		}
		fmt.Fprintln(w)
	}
	return nil
}

func (r *Reporter) statusText(summary ValidationSummary) string {
	switch {
	case summary.HasCritical:
		return "CRITICAL ERRORS FOUND"
	case summary.HasErrors:
		return "ERRORS FOUND"
	case summary.TotalIssues > 0:
		return "WARNINGS FOUND"
	default:
		return "VALID"
	}
}
