// Package txcparser drives the xmlreader pull parser and populates a
// model.TxcDocument. Parsing is tolerant: missing optional elements leave
// fields unset, and present-but-malformed elements are skipped with a
// warning rather than aborting the parse.
package txcparser

import (
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/transitkit/txc-gtfs/model"
	"github.com/transitkit/txc-gtfs/xmlreader"
)

var errMissingEndpoint = errors.New("timing link missing From/To StopPointRef")

// Parser parses TransXChange documents into a model.TxcDocument.
type Parser struct {
	logger *slog.Logger
}

// New returns a Parser. A nil logger falls back to slog.Default().
func New(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{logger: logger}
}

// Parse reads and parses a TransXChange document from r. An empty or
// syntactically unrecognizable input yields an empty document and no error,
// per the defined behavior for empty/unrecognizable TXC input; only a
// genuine XML syntax error (detected by the xmlreader) is surfaced.
func (p *Parser) Parse(r io.Reader) (*model.TxcDocument, []model.Warning, error) {
	start := time.Now()
	reader := xmlreader.New(r)
	defer reader.Close()
	root, err := buildDOM(reader)
	if err != nil {
		p.logger.Warn("txc parse failed", "error", err)
		return nil, nil, err
	}

	doc := &model.TxcDocument{RawExtensions: map[string][]byte{}}
	if root == nil {
		p.logger.Info("txc parse: empty document")
		return doc, nil, nil
	}

	doc.SchemaVersion = root.attr("SchemaVersion")

	var warnings []model.Warning
	warn := func(kind, entityType, entityID, reason string) {
		warnings = append(warnings, model.Warning{Kind: kind, EntityType: entityType, EntityID: entityID, Reason: reason})
	}

	doc.Operators = parseOperators(root, warn)
	doc.StopPoints = parseStopPoints(root, warn)
	doc.JourneyPatternSections = parseJourneyPatternSections(root, warn)
	doc.Services, doc.JourneyPatterns = parseServices(root, warn)
	doc.VehicleJourneys = parseVehicleJourneys(root, warn)

	linkReferences(doc, warn)

	p.logger.Info("txc parse complete",
		"operators", len(doc.Operators),
		"services", len(doc.Services),
		"stop_points", len(doc.StopPoints),
		"vehicle_journeys", len(doc.VehicleJourneys),
		"journey_pattern_sections", len(doc.JourneyPatternSections),
		"warnings", len(warnings),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	for _, w := range warnings {
		p.logger.Warn("txc parse warning", "kind", w.Kind, "entity_type", w.EntityType, "entity_id", w.EntityID, "reason", w.Reason)
	}

	return doc, warnings, nil
}

type warnFunc func(kind, entityType, entityID, reason string)

func parseOperators(root *node, warn warnFunc) []*model.Operator {
	container := root.child("Operators")
	if container == nil {
		return nil
	}
	var out []*model.Operator
	for _, n := range container.children {
		if n.name != "Operator" && n.name != "LicensedOperator" {
			continue
		}
		id := n.attr("id")
		op := &model.Operator{
			ID:            id,
			Code:          n.childText("OperatorCode"),
			ShortName:     n.childText("OperatorShortName"),
			TradingName:   n.childText("TradingName"),
			LicenseNumber: licenseNumber(n),
		}
		if id == "" {
			warn("malformed_element", "Operator", n.childText("OperatorCode"), "missing id attribute")
			continue
		}
		out = append(out, op)
	}
	return out
}

func licenseNumber(n *node) string {
	if lic := n.child("Licence"); lic != nil {
		return lic.childText("LicenceNumber")
	}
	return ""
}

func parseStopPoints(root *node, warn warnFunc) []*model.StopPoint {
	container := root.child("StopPoints")
	if container == nil {
		return nil
	}
	var out []*model.StopPoint
	for _, n := range container.children {
		var atco string
		var common, locality, localityName, stopType string
		var lon, lat *float64

		switch n.name {
		case "AnnotatedStopPointRef":
			atco = n.childText("StopPointRef")
			common = n.childText("CommonName")
			locality = n.childText("LocalityQualifier")
			localityName = n.childText("LocalityName")
		case "StopPoint":
			atco = n.childText("AtcoCode")
			common = n.childText("CommonName")
			if descr := n.child("Descriptor"); descr != nil {
				if common == "" {
					common = descr.childText("CommonName")
				}
			}
			if place := n.child("Place"); place != nil {
				if loc := place.child("NptgLocalityRef"); loc != nil {
					locality = loc.text
				}
				if ltr := place.child("Location"); ltr != nil {
					lon, lat = parseLocation(ltr)
				}
			}
			stopType = n.childText("StopClassification")
		default:
			continue
		}

		if atco == "" {
			warn("malformed_element", "StopPoint", common, "missing ATCO code")
			continue
		}
		out = append(out, &model.StopPoint{
			AtcoCode:     atco,
			CommonName:   common,
			Locality:     locality,
			LocalityName: localityName,
			Lon:          lon,
			Lat:          lat,
			StopType:     stopType,
		})
	}
	return out
}

func parseLocation(loc *node) (*float64, *float64) {
	var lon, lat *float64
	if t := loc.childText("Longitude"); t != "" {
		if v, err := parseFloat(t); err == nil {
			lon = &v
		}
	}
	if t := loc.childText("Latitude"); t != "" {
		if v, err := parseFloat(t); err == nil {
			lat = &v
		}
	}
	return lon, lat
}

func parseJourneyPatternSections(root *node, warn warnFunc) []*model.JourneyPatternSection {
	container := root.child("JourneyPatternSections")
	if container == nil {
		return nil
	}
	var out []*model.JourneyPatternSection
	for _, n := range container.allChildren("JourneyPatternSection") {
		id := n.attr("id")
		if id == "" {
			warn("malformed_element", "JourneyPatternSection", "", "missing id attribute")
			continue
		}
		section := &model.JourneyPatternSection{ID: id}
		for _, ln := range n.allChildren("JourneyPatternTimingLink") {
			link, err := parseTimingLink(ln)
			if err != nil {
				warn("malformed_element", "JourneyPatternTimingLink", ln.attr("id"), err.Error())
				continue
			}
			section.Links = append(section.Links, link)
		}
		out = append(out, section)
	}
	return out
}

func parseTimingLink(n *node) (*model.TimingLink, error) {
	from := n.child("From")
	to := n.child("To")
	if from == nil || to == nil {
		return nil, errMissingEndpoint
	}
	runTimeText := n.childText("RunTime")
	var runTime time.Duration
	if runTimeText != "" {
		rt, err := parseISODuration(runTimeText)
		if err != nil {
			return nil, err
		}
		runTime = rt
	}
	link := &model.TimingLink{
		ID:               n.attr("id"),
		FromStop:         from.childText("StopPointRef"),
		ToStop:           to.childText("StopPointRef"),
		RunTime:          runTime,
		FromTimingStatus: from.childText("TimingStatus"),
		ToTimingStatus:   to.childText("TimingStatus"),
	}
	if wt := from.childText("WaitTime"); wt != "" {
		if d, err := parseISODuration(wt); err == nil {
			link.FromWaitTime = d
		}
	}
	if wt := to.childText("WaitTime"); wt != "" {
		if d, err := parseISODuration(wt); err == nil {
			link.ToWaitTime = d
		}
	}
	if link.FromStop == "" || link.ToStop == "" {
		return nil, errMissingEndpoint
	}
	return link, nil
}

func parseServices(root *node, warn warnFunc) ([]*model.Service, []*model.JourneyPattern) {
	container := root.child("Services")
	if container == nil {
		return nil, nil
	}
	var services []*model.Service
	var patterns []*model.JourneyPattern
	for _, n := range container.allChildren("Service") {
		code := n.childText("ServiceCode")
		if code == "" {
			warn("malformed_element", "Service", "", "missing ServiceCode")
			continue
		}

		svc := &model.Service{
			ServiceCode: code,
			OperatorRef: n.childText("RegisteredOperatorRef"),
			Mode:        modeOrDefault(n.childText("Mode")),
			Description: n.childText("Description"),
		}

		if op := n.child("OperatingPeriod"); op != nil {
			if sd := op.childText("StartDate"); sd != "" {
				if t, err := parseCivilDate(sd); err == nil {
					svc.StartDate = t
				} else {
					warn("malformed_element", "Service", code, "unparseable StartDate: "+err.Error())
				}
			}
			if ed := op.childText("EndDate"); ed != "" {
				if t, err := parseCivilDate(ed); err == nil {
					svc.EndDate = &t
				}
			}
		}

		if lines := n.child("Lines"); lines != nil {
			for _, ln := range lines.allChildren("Line") {
				svc.Lines = append(svc.Lines, &model.Line{
					ID:   ln.attr("id"),
					Name: ln.childText("LineName"),
				})
			}
		}

		if op := n.child("OperatingProfile"); op != nil {
			svc.OperatingProfile = parseOperatingProfile(op, warn, "Service", code)
		}

		if std := n.child("StandardService"); std != nil {
			for _, jp := range std.allChildren("JourneyPattern") {
				pattern := &model.JourneyPattern{
					ID:                 jp.attr("id"),
					Direction:          jp.childText("Direction"),
					RouteRef:           jp.childText("RouteRef"),
					DestinationDisplay: jp.childText("DestinationDisplay"),
				}
				for _, ref := range jp.allChildren("JourneyPatternSectionRefs") {
					pattern.SectionRefs = append(pattern.SectionRefs, ref.text)
				}
				patterns = append(patterns, pattern)
			}
		}

		services = append(services, svc)
	}
	return services, patterns
}

func modeOrDefault(mode string) string {
	if mode == "" {
		return "bus"
	}
	return mode
}

// deadRunMarker reports a VehicleJourney's non-revenue running, from the
// presence of a <StartDeadRun> (positioning run before the first proper
// stop) or <EndDeadRun> (positioning run after the last) element.
func deadRunMarker(n *node) string {
	switch {
	case n.child("StartDeadRun") != nil:
		return "inboundDeadRun"
	case n.child("EndDeadRun") != nil:
		return "outboundDeadRun"
	default:
		return ""
	}
}

func parseVehicleJourneys(root *node, warn warnFunc) []*model.VehicleJourney {
	container := root.child("VehicleJourneys")
	if container == nil {
		return nil
	}
	var out []*model.VehicleJourney
	for _, n := range container.allChildren("VehicleJourney") {
		code := n.childText("VehicleJourneyCode")
		depText := n.childText("DepartureTime")
		if code == "" || depText == "" {
			warn("malformed_element", "VehicleJourney", code, "missing code or DepartureTime")
			continue
		}
		dep, err := parseTimeOfDay(depText)
		if err != nil {
			warn("malformed_element", "VehicleJourney", code, err.Error())
			continue
		}
		vj := &model.VehicleJourney{
			Code:              code,
			DepartureTime:     dep,
			JourneyPatternRef: n.childText("JourneyPatternRef"),
			ServiceRef:        n.childText("ServiceRef"),
			LineRef:           n.childText("LineRef"),
			OperatorRef:       n.childText("OperatorRef"),
			DeadRun:           deadRunMarker(n),
		}
		if op := n.child("OperatingProfile"); op != nil {
			vj.OperatingProfile = parseOperatingProfile(op, warn, "VehicleJourney", code)
		}
		out = append(out, vj)
	}
	return out
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
