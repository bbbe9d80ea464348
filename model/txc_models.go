package model

import "time"

// TXC data models — a strongly-typed subset of the TransXChange domain
// populated by the txcparser package. Fields are pointers/zero-values when
// the source element was absent; the parser never guesses a value for an
// unset optional field.

// Operator is a TXC Operator (bus company).
type Operator struct {
	ID            string
	Code          string
	ShortName     string
	TradingName   string
	LicenseNumber string
}

// DisplayName returns the operator's preferred display name: ShortName,
// falling back to TradingName, then Code.
func (o *Operator) DisplayName() string {
	if o.ShortName != "" {
		return o.ShortName
	}
	if o.TradingName != "" {
		return o.TradingName
	}
	return o.Code
}

// StopPoint is a TXC AnnotatedStopPointRef / StopPoint, keyed by ATCO code.
type StopPoint struct {
	AtcoCode   string
	CommonName string
	Locality   string
	// LocalityName is the human-readable locality display name, distinct
	// from the Locality code; carried for completeness, not required by
	// any GTFS column.
	LocalityName string
	Lon          *float64
	Lat          *float64
	StopType     string
}

// HasCoordinates reports whether both Lon and Lat were present in the source.
func (s *StopPoint) HasCoordinates() bool {
	return s.Lon != nil && s.Lat != nil
}

// Line is a named line owned by a Service.
type Line struct {
	ID   string
	Name string
}

// Service is a TXC Service: one or more Lines operated under one
// OperatingProfile during a validity window.
type Service struct {
	ServiceCode      string
	Lines            []*Line
	OperatorRef      string
	StartDate        time.Time
	EndDate          *time.Time
	Mode             string
	Description      string
	OperatingProfile *OperatingProfile
}

// LineByID returns the Line with the given id, or nil.
func (s *Service) LineByID(id string) *Line {
	for _, l := range s.Lines {
		if l.ID == id {
			return l
		}
	}
	return nil
}

// TimingLink is one edge of a JourneyPatternSection: a timed hop between two
// stops.
type TimingLink struct {
	ID               string
	FromStop         string
	ToStop           string
	RunTime          time.Duration
	FromTimingStatus string
	ToTimingStatus   string
	// FromWaitTime/ToWaitTime are dwell durations attached to the stop at
	// each end of the link, when present in the source (<From><WaitTime/>
	// or <To><WaitTime/>).
	FromWaitTime time.Duration
	ToWaitTime   time.Duration
	// Distance is an optional RouteLink-derived segment length in meters;
	// when present it is preferred over haversine for shape_dist_traveled.
	Distance *float64
}

// JourneyPatternSection is an ordered sequence of TimingLinks, referenced by
// id from one or more JourneyPatterns.
type JourneyPatternSection struct {
	ID    string
	Links []*TimingLink
}

// JourneyPattern is an ordered composition of JourneyPatternSections,
// describing one route variant's stop sequence and timings.
type JourneyPattern struct {
	ID                 string
	SectionRefs        []string
	Direction          string
	RouteRef           string
	DestinationDisplay string

	// resolved is populated by the reference-linking pass; nil until then.
	resolved []*JourneyPatternSection
}

// SetResolvedSections stores the resolved section pointers (called by the
// parser's linking pass).
func (jp *JourneyPattern) SetResolvedSections(sections []*JourneyPatternSection) {
	jp.resolved = sections
}

// ExpandStops concatenates the resolved sections' timing links into the
// full ordered stop list: [links[0].From, links[0].To, links[1].To, ...].
// Returns nil if the pattern's sections have not been resolved.
func (jp *JourneyPattern) ExpandStops() []string {
	if jp.resolved == nil {
		return nil
	}
	var stops []string
	for i, section := range jp.resolved {
		for j, link := range section.Links {
			if i == 0 && j == 0 {
				stops = append(stops, link.FromStop)
			}
			stops = append(stops, link.ToStop)
		}
	}
	return stops
}

// ExpandLinks returns the full ordered list of timing links across all
// resolved sections, in traversal order.
func (jp *JourneyPattern) ExpandLinks() []*TimingLink {
	if jp.resolved == nil {
		return nil
	}
	var links []*TimingLink
	for _, section := range jp.resolved {
		links = append(links, section.Links...)
	}
	return links
}

// DayOfWeek is a closed set of weekdays used by OperatingProfile day sets.
type DayOfWeek int

const (
	Monday DayOfWeek = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// RegularDayType is the closed sum type for OperatingProfile.RegularDayType.
// Unknown input values map to Other with the raw text preserved.
type RegularDayType struct {
	Kind RegularDayTypeKind
	// Days holds the explicit day set when Kind == DayTypeSpecificDays.
	Days []DayOfWeek
	// Raw holds the original element text when Kind == DayTypeOther.
	Raw string
}

type RegularDayTypeKind int

const (
	DayTypeMondayToFriday RegularDayTypeKind = iota
	DayTypeMondayToSaturday
	DayTypeWeekend
	DayTypeSpecificDays
	DayTypeAny
	DayTypeHolidaysOnly
	DayTypeOther
)

// OperatingProfile describes which calendar dates a VehicleJourney or
// Service operates on.
type OperatingProfile struct {
	RegularDayType          RegularDayType
	BankHolidayOperation    *BankHolidayOperation
	SpecialDaysOperation    *SpecialDaysOperation
	ServicingOrganisations  []string
}

// BankHolidayOperation lists bank holidays on which service is added or
// removed.
type BankHolidayOperation struct {
	DaysOfOperation []string // holiday names, e.g. "ChristmasDay"
	DaysOfNonOperation []string
}

// SpecialDaysOperation lists explicit calendar dates added or removed.
type SpecialDaysOperation struct {
	DaysOfOperation    []SpecialDayRange
	DaysOfNonOperation []SpecialDayRange
}

// SpecialDayRange is an inclusive [Start,End] date range.
type SpecialDayRange struct {
	Start time.Time
	End   time.Time
}

// VehicleJourney is one scheduled operation of a JourneyPattern.
type VehicleJourney struct {
	Code               string
	DepartureTime      time.Duration // seconds-from-midnight, as a duration
	JourneyPatternRef  string
	ServiceRef         string
	LineRef            string
	OperatorRef        string
	OperatingProfile   *OperatingProfile
	DeadRun            string // "", "inboundDeadRun", "outboundDeadRun"

	// resolved is populated by the linking pass.
	resolvedPattern *JourneyPattern
	resolvedService *Service
}

// SetResolved stores the resolved pattern/service pointers.
func (vj *VehicleJourney) SetResolved(pattern *JourneyPattern, service *Service) {
	vj.resolvedPattern = pattern
	vj.resolvedService = service
}

func (vj *VehicleJourney) ResolvedPattern() *JourneyPattern { return vj.resolvedPattern }
func (vj *VehicleJourney) ResolvedService() *Service        { return vj.resolvedService }

// EffectiveOperatingProfile returns the vehicle journey's own operating
// profile if set, else its service's.
func (vj *VehicleJourney) EffectiveOperatingProfile() *OperatingProfile {
	if vj.OperatingProfile != nil {
		return vj.OperatingProfile
	}
	if vj.resolvedService != nil {
		return vj.resolvedService.OperatingProfile
	}
	return nil
}

// TxcDocument is the fully-parsed top-level TXC document.
type TxcDocument struct {
	SchemaVersion           string
	Operators               []*Operator
	Services                []*Service
	StopPoints               []*StopPoint
	VehicleJourneys          []*VehicleJourney
	JourneyPatternSections   []*JourneyPatternSection
	JourneyPatterns          []*JourneyPattern

	// RawExtensions is a forward-compatibility field keyed by element local
	// name. The parser initializes it to an empty map and does not fill it:
	// elements the domain model does not cover (TXC 2.5 fields) are ignored.
	RawExtensions map[string][]byte
}

// OperatorCount, ServiceCount, etc. are the counts exposed by §4.2's public
// contract.
func (d *TxcDocument) OperatorCount() int              { return len(d.Operators) }
func (d *TxcDocument) ServiceCount() int                { return len(d.Services) }
func (d *TxcDocument) StopPointCount() int              { return len(d.StopPoints) }
func (d *TxcDocument) VehicleJourneyCount() int         { return len(d.VehicleJourneys) }
func (d *TxcDocument) JourneyPatternSectionCount() int  { return len(d.JourneyPatternSections) }

// StopCodes returns every referenced ATCO code, insertion order.
func (d *TxcDocument) StopCodes() []string {
	codes := make([]string, 0, len(d.StopPoints))
	for _, sp := range d.StopPoints {
		codes = append(codes, sp.AtcoCode)
	}
	return codes
}

// OperatorNames returns each operator's display name, insertion order.
func (d *TxcDocument) OperatorNames() []string {
	names := make([]string, 0, len(d.Operators))
	for _, op := range d.Operators {
		names = append(names, op.DisplayName())
	}
	return names
}

// ServiceCodes returns every service_code, insertion order.
func (d *TxcDocument) ServiceCodes() []string {
	codes := make([]string, 0, len(d.Services))
	for _, svc := range d.Services {
		codes = append(codes, svc.ServiceCode)
	}
	return codes
}

// OperatorByID, ServiceByCode, StopPointByATCO, JourneyPatternByID,
// JourneyPatternSectionByID are O(n) reference lookups over the parsed
// slices; documents are small enough (tens of thousands of elements) that
// building a persistent index is not worth the complexity the teacher
// reserves for the GTFS feed side, where row counts are orders of magnitude
// larger.
func (d *TxcDocument) OperatorByID(id string) *Operator {
	for _, o := range d.Operators {
		if o.ID == id {
			return o
		}
	}
	return nil
}

func (d *TxcDocument) ServiceByCode(code string) *Service {
	for _, s := range d.Services {
		if s.ServiceCode == code {
			return s
		}
	}
	return nil
}

func (d *TxcDocument) StopPointByATCO(code string) *StopPoint {
	for _, sp := range d.StopPoints {
		if sp.AtcoCode == code {
			return sp
		}
	}
	return nil
}

func (d *TxcDocument) JourneyPatternByID(id string) *JourneyPattern {
	for _, jp := range d.JourneyPatterns {
		if jp.ID == id {
			return jp
		}
	}
	return nil
}

func (d *TxcDocument) JourneyPatternSectionByID(id string) *JourneyPatternSection {
	for _, jps := range d.JourneyPatternSections {
		if jps.ID == id {
			return jps
		}
	}
	return nil
}
