// Package validation runs post-conversion structural and reference-integrity
// checks over a converted GTFS feed: unique ids, resolvable foreign keys,
// strictly increasing stop_sequence, sane calendar windows, and in-range
// enum values. It never mutates the feed; it only reports what it finds.
package validation

import (
	"fmt"
	"regexp"
	"time"

	"github.com/transitkit/txc-gtfs/gtfsfeed"
	"github.com/transitkit/txc-gtfs/model"
)

// ValidationSeverity represents the severity level of a validation issue.
type ValidationSeverity int

const (
	SeverityInfo ValidationSeverity = iota
	SeverityWarning
	SeverityError
	SeverityCritical
)

func (s ValidationSeverity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	case SeverityCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// ValidationIssue represents a single validation finding.
type ValidationIssue struct {
	Severity   ValidationSeverity `json:"severity"`
	Code       string             `json:"code"`
	Message    string             `json:"message"`
	EntityType string             `json:"entity_type"`
	EntityID   string             `json:"entity_id,omitempty"`
	Field      string             `json:"field,omitempty"`
	Value      string             `json:"value,omitempty"`
	Suggestion string             `json:"suggestion,omitempty"`
}

// ValidationReport contains all validation issues plus a summary.
type ValidationReport struct {
	Issues    []ValidationIssue `json:"issues"`
	Summary   ValidationSummary `json:"summary"`
	Timestamp time.Time         `json:"timestamp"`
}

// ValidationSummary summarizes a ValidationReport.
type ValidationSummary struct {
	TotalIssues  int                        `json:"total_issues"`
	BySeverity   map[ValidationSeverity]int `json:"by_severity"`
	ByEntityType map[string]int             `json:"by_entity_type"`
	IsValid      bool                       `json:"is_valid"`
	HasCritical  bool                       `json:"has_critical"`
	HasErrors    bool                       `json:"has_errors"`
}

// Validator accumulates validation issues found while walking a feed.
type Validator struct {
	issues   []ValidationIssue
	config   ValidationConfig
	patterns *validationPatterns
}

// ValidationConfig controls validation behavior.
type ValidationConfig struct {
	MaxIssuesPerCode int
	SeverityFloor    ValidationSeverity
}

type validationPatterns struct {
	gtfsTime  *regexp.Regexp
	gtfsColor *regexp.Regexp
}

// NewValidator creates a validator with the package defaults: up to 100
// issues recorded per code, everything at SeverityInfo and above kept.
func NewValidator() *Validator {
	return &Validator{
		config: ValidationConfig{MaxIssuesPerCode: 100, SeverityFloor: SeverityInfo},
		patterns: &validationPatterns{
			gtfsTime:  regexp.MustCompile(`^([0-9]{1,3}):([0-5][0-9]):([0-5][0-9])$`),
			gtfsColor: regexp.MustCompile(`^[0-9A-Fa-f]{6}$`),
		},
	}
}

// SetConfig replaces the validator's configuration.
func (v *Validator) SetConfig(config ValidationConfig) {
	v.config = config
}

// AddIssue records an issue, subject to the per-code cap and severity floor.
func (v *Validator) AddIssue(issue ValidationIssue) {
	if issue.Severity < v.config.SeverityFloor {
		return
	}
	count := 0
	for _, existing := range v.issues {
		if existing.Code == issue.Code {
			count++
		}
	}
	if v.config.MaxIssuesPerCode > 0 && count >= v.config.MaxIssuesPerCode {
		return
	}
	v.issues = append(v.issues, issue)
}

// ValidateFeed runs every structural and reference check against feed and
// returns the accumulated report. It never stops early: one bad entity
// does not prevent the rest of the feed from being checked.
func (v *Validator) ValidateFeed(feed gtfsfeed.Feed) ValidationReport {
	v.validateAgencies(feed.Agencies())
	v.validateStops(feed.Stops())
	v.validateRoutes(feed.Routes())
	v.validateCalendars(feed.Calendars())
	v.validateCalendarDates(feed.CalendarDates())
	v.validateTrips(feed)
	v.validateStopTimes(feed)
	return v.GetReport()
}

func (v *Validator) validateAgencies(agencies []*model.Agency) {
	seen := make(map[string]bool, len(agencies))
	for _, a := range agencies {
		if a.AgencyID == "" {
			v.AddIssue(ValidationIssue{Severity: SeverityError, Code: "AGENCY_MISSING_ID",
				Message: "agency_id is required", EntityType: "Agency"})
			continue
		}
		if seen[a.AgencyID] {
			v.AddIssue(ValidationIssue{Severity: SeverityError, Code: "AGENCY_DUPLICATE_ID",
				Message: "duplicate agency_id", EntityType: "Agency", EntityID: a.AgencyID})
		}
		seen[a.AgencyID] = true
		if a.AgencyName == "" {
			v.AddIssue(ValidationIssue{Severity: SeverityError, Code: "AGENCY_MISSING_NAME",
				Message: "agency_name is required", EntityType: "Agency", EntityID: a.AgencyID})
		}
		if a.AgencyTimezone == "" {
			v.AddIssue(ValidationIssue{Severity: SeverityError, Code: "AGENCY_MISSING_TIMEZONE",
				Message: "agency_timezone is required", EntityType: "Agency", EntityID: a.AgencyID})
		} else if _, err := time.LoadLocation(a.AgencyTimezone); err != nil {
			v.AddIssue(ValidationIssue{Severity: SeverityError, Code: "AGENCY_INVALID_TIMEZONE",
				Message: fmt.Sprintf("not an IANA timezone: %s", a.AgencyTimezone),
				EntityType: "Agency", EntityID: a.AgencyID, Field: "agency_timezone", Value: a.AgencyTimezone})
		}
	}
}

func (v *Validator) validateStops(stops []*model.Stop) {
	seen := make(map[string]bool, len(stops))
	for _, s := range stops {
		if s.StopID == "" {
			v.AddIssue(ValidationIssue{Severity: SeverityError, Code: "STOP_MISSING_ID",
				Message: "stop_id is required", EntityType: "Stop"})
			continue
		}
		if seen[s.StopID] {
			v.AddIssue(ValidationIssue{Severity: SeverityError, Code: "STOP_DUPLICATE_ID",
				Message: "duplicate stop_id", EntityType: "Stop", EntityID: s.StopID})
		}
		seen[s.StopID] = true
		if s.StopName == "" {
			v.AddIssue(ValidationIssue{Severity: SeverityWarning, Code: "STOP_MISSING_NAME",
				Message: "stop_name is empty", EntityType: "Stop", EntityID: s.StopID})
		}
		if s.StopLat < -90 || s.StopLat > 90 {
			v.AddIssue(ValidationIssue{Severity: SeverityError, Code: "STOP_INVALID_LATITUDE",
				Message: "stop_lat out of range", EntityType: "Stop", EntityID: s.StopID,
				Field: "stop_lat", Value: fmt.Sprintf("%.6f", s.StopLat)})
		}
		if s.StopLon < -180 || s.StopLon > 180 {
			v.AddIssue(ValidationIssue{Severity: SeverityError, Code: "STOP_INVALID_LONGITUDE",
				Message: "stop_lon out of range", EntityType: "Stop", EntityID: s.StopID,
				Field: "stop_lon", Value: fmt.Sprintf("%.6f", s.StopLon)})
		}
		if s.StopLat == 0 && s.StopLon == 0 {
			v.AddIssue(ValidationIssue{Severity: SeverityWarning, Code: "STOP_SUSPICIOUS_COORDINATES",
				Message: "stop sits at 0,0; coordinates are probably missing",
				EntityType: "Stop", EntityID: s.StopID})
		}
	}
}

var validRouteTypes = map[int]bool{
	0: true, 1: true, 2: true, 3: true, 4: true, 5: true, 6: true, 7: true, 11: true, 12: true,
}

func (v *Validator) validateRoutes(routes []*model.GtfsRoute) {
	seen := make(map[string]bool, len(routes))
	for _, r := range routes {
		if r.RouteID == "" {
			v.AddIssue(ValidationIssue{Severity: SeverityError, Code: "ROUTE_MISSING_ID",
				Message: "route_id is required", EntityType: "Route"})
			continue
		}
		if seen[r.RouteID] {
			v.AddIssue(ValidationIssue{Severity: SeverityError, Code: "ROUTE_DUPLICATE_ID",
				Message: "duplicate route_id", EntityType: "Route", EntityID: r.RouteID})
		}
		seen[r.RouteID] = true
		if !validRouteTypes[r.RouteType] {
			v.AddIssue(ValidationIssue{Severity: SeverityError, Code: "ROUTE_INVALID_TYPE",
				Message: fmt.Sprintf("invalid route_type: %d", r.RouteType),
				EntityType: "Route", EntityID: r.RouteID, Field: "route_type",
				Value: fmt.Sprintf("%d", r.RouteType)})
		}
		if r.RouteShortName == "" && r.RouteLongName == "" {
			v.AddIssue(ValidationIssue{Severity: SeverityError, Code: "ROUTE_MISSING_NAME",
				Message: "either route_short_name or route_long_name must be set",
				EntityType: "Route", EntityID: r.RouteID})
		}
		if r.RouteColor != "" && !v.patterns.gtfsColor.MatchString(r.RouteColor) {
			v.AddIssue(ValidationIssue{Severity: SeverityWarning, Code: "ROUTE_INVALID_COLOR",
				Message: "route_color should be a 6-digit hex value",
				EntityType: "Route", EntityID: r.RouteID, Field: "route_color", Value: r.RouteColor})
		}
	}
}

func (v *Validator) validateCalendars(calendars []*model.Calendar) {
	seen := make(map[string]bool, len(calendars))
	for _, c := range calendars {
		if c.ServiceID == "" {
			v.AddIssue(ValidationIssue{Severity: SeverityError, Code: "CALENDAR_MISSING_SERVICE_ID",
				Message: "service_id is required", EntityType: "Calendar"})
			continue
		}
		if seen[c.ServiceID] {
			v.AddIssue(ValidationIssue{Severity: SeverityError, Code: "CALENDAR_DUPLICATE_SERVICE_ID",
				Message: "duplicate service_id", EntityType: "Calendar", EntityID: c.ServiceID})
		}
		seen[c.ServiceID] = true
		if c.StartDate > c.EndDate {
			v.AddIssue(ValidationIssue{Severity: SeverityError, Code: "CALENDAR_INVERTED_WINDOW",
				Message: "start_date is after end_date", EntityType: "Calendar", EntityID: c.ServiceID,
				Value: fmt.Sprintf("%s..%s", c.StartDate, c.EndDate)})
		}
	}
}

func (v *Validator) validateCalendarDates(dates []*model.CalendarDate) {
	for _, d := range dates {
		if d.ExceptionType != 1 && d.ExceptionType != 2 {
			v.AddIssue(ValidationIssue{Severity: SeverityError, Code: "CALENDAR_DATE_INVALID_EXCEPTION_TYPE",
				Message: fmt.Sprintf("exception_type must be 1 or 2, got %d", d.ExceptionType),
				EntityType: "CalendarDate", EntityID: d.ServiceID, Field: "exception_type"})
		}
	}
}

// validateTrips checks trip-level required fields and that every trip's
// route_id and service_id resolve to an entity present in the feed.
func (v *Validator) validateTrips(feed gtfsfeed.Feed) {
	routeIDs := idSet(feed.Routes(), func(r *model.GtfsRoute) string { return r.RouteID })
	serviceIDs := idSet(feed.Calendars(), func(c *model.Calendar) string { return c.ServiceID })
	for _, d := range feed.CalendarDates() {
		serviceIDs[d.ServiceID] = true
	}

	seen := make(map[string]bool, feed.TripCount())
	for _, t := range feed.Trips() {
		if t.TripID == "" {
			v.AddIssue(ValidationIssue{Severity: SeverityError, Code: "TRIP_MISSING_ID",
				Message: "trip_id is required", EntityType: "Trip"})
			continue
		}
		if seen[t.TripID] {
			v.AddIssue(ValidationIssue{Severity: SeverityError, Code: "TRIP_DUPLICATE_ID",
				Message: "duplicate trip_id", EntityType: "Trip", EntityID: t.TripID})
		}
		seen[t.TripID] = true
		if !routeIDs[t.RouteID] {
			v.AddIssue(ValidationIssue{Severity: SeverityError, Code: "TRIP_UNRESOLVED_ROUTE",
				Message: "route_id does not match any route", EntityType: "Trip", EntityID: t.TripID,
				Field: "route_id", Value: t.RouteID})
		}
		if !serviceIDs[t.ServiceID] {
			v.AddIssue(ValidationIssue{Severity: SeverityError, Code: "TRIP_UNRESOLVED_SERVICE",
				Message: "service_id does not match any calendar or calendar_dates row",
				EntityType: "Trip", EntityID: t.TripID, Field: "service_id", Value: t.ServiceID})
		}
	}
}

// validateStopTimes checks stop_time-level foreign keys and that
// stop_sequence strictly increases within each trip.
func (v *Validator) validateStopTimes(feed gtfsfeed.Feed) {
	stopIDs := idSet(feed.Stops(), func(s *model.Stop) string { return s.StopID })
	tripIDs := idSet(feed.Trips(), func(t *model.Trip) string { return t.TripID })

	lastSeqByTrip := make(map[string]int)
	for _, st := range feed.StopTimes() {
		if st.TripID == "" || !tripIDs[st.TripID] {
			v.AddIssue(ValidationIssue{Severity: SeverityError, Code: "STOPTIME_UNRESOLVED_TRIP",
				Message: "trip_id does not match any trip", EntityType: "StopTime",
				EntityID: fmt.Sprintf("%s:%d", st.TripID, st.StopSequence), Field: "trip_id", Value: st.TripID})
		}
		if !stopIDs[st.StopID] {
			v.AddIssue(ValidationIssue{Severity: SeverityError, Code: "STOPTIME_UNRESOLVED_STOP",
				Message: "stop_id does not match any stop", EntityType: "StopTime",
				EntityID: fmt.Sprintf("%s:%d", st.TripID, st.StopSequence), Field: "stop_id", Value: st.StopID})
		}
		if last, ok := lastSeqByTrip[st.TripID]; ok && st.StopSequence <= last {
			v.AddIssue(ValidationIssue{Severity: SeverityError, Code: "STOPTIME_SEQUENCE_NOT_INCREASING",
				Message: "stop_sequence must strictly increase within a trip",
				EntityType: "StopTime", EntityID: fmt.Sprintf("%s:%d", st.TripID, st.StopSequence)})
		}
		lastSeqByTrip[st.TripID] = st.StopSequence
		if st.PickupType < 0 || st.PickupType > 3 {
			v.AddIssue(ValidationIssue{Severity: SeverityWarning, Code: "STOPTIME_INVALID_PICKUP_TYPE",
				Message: "pickup_type must be 0-3", EntityType: "StopTime",
				EntityID: fmt.Sprintf("%s:%d", st.TripID, st.StopSequence), Value: fmt.Sprintf("%d", st.PickupType)})
		}
		if st.DropOffType < 0 || st.DropOffType > 3 {
			v.AddIssue(ValidationIssue{Severity: SeverityWarning, Code: "STOPTIME_INVALID_DROPOFF_TYPE",
				Message: "drop_off_type must be 0-3", EntityType: "StopTime",
				EntityID: fmt.Sprintf("%s:%d", st.TripID, st.StopSequence), Value: fmt.Sprintf("%d", st.DropOffType)})
		}
	}
}

func idSet[T any](items []T, key func(T) string) map[string]bool {
	out := make(map[string]bool, len(items))
	for _, item := range items {
		out[key(item)] = true
	}
	return out
}

// GetReport builds the current ValidationReport from accumulated issues.
func (v *Validator) GetReport() ValidationReport {
	return ValidationReport{
		Issues:    v.issues,
		Summary:   v.summarize(),
		Timestamp: time.Now(),
	}
}

func (v *Validator) summarize() ValidationSummary {
	summary := ValidationSummary{
		BySeverity:   make(map[ValidationSeverity]int),
		ByEntityType: make(map[string]int),
		IsValid:      true,
	}
	for _, issue := range v.issues {
		summary.TotalIssues++
		summary.BySeverity[issue.Severity]++
		summary.ByEntityType[issue.EntityType]++
		if issue.Severity == SeverityCritical {
			summary.HasCritical = true
			summary.IsValid = false
		}
		if issue.Severity == SeverityError {
			summary.HasErrors = true
			summary.IsValid = false
		}
	}
	return summary
}

// Reset clears accumulated issues so the validator can be reused.
func (v *Validator) Reset() {
	v.issues = nil
}
