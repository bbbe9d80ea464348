package validation

import (
	txcerrors "github.com/transitkit/txc-gtfs/errors"
	"github.com/transitkit/txc-gtfs/gtfsfeed"
)

// CheckFeed runs every structural and reference-integrity check against
// feed. It returns a *txcerrors.GtfsValidationError when any SeverityError
// or SeverityCritical issue was found; otherwise it returns nil and the
// caller can still inspect report.Issues for warnings.
func CheckFeed(feed gtfsfeed.Feed) (report ValidationReport, err error) {
	v := NewValidator()
	report = v.ValidateFeed(feed)
	if !report.Summary.HasErrors && !report.Summary.HasCritical {
		return report, nil
	}

	var errs, warnings []string
	for _, issue := range report.Issues {
		line := issue.Code + ": " + issue.Message
		if issue.EntityID != "" {
			line += " (" + issue.EntityType + " " + issue.EntityID + ")"
		}
		if issue.Severity >= SeverityError {
			errs = append(errs, line)
		} else {
			warnings = append(warnings, line)
		}
	}
	return report, &txcerrors.GtfsValidationError{Errors: errs, Warnings: warnings}
}
