package txcparser

import "github.com/transitkit/txc-gtfs/model"

// linkReferences resolves textual refs (journey_pattern_ref, section_ref,
// service_ref, ...) into pointers. Journey patterns whose section refs
// don't all resolve are left unresolved (no sections are set) and a
// warning is recorded; vehicle journeys referencing an unknown or
// unresolved pattern, or an unknown service, are dropped from the
// document, per spec §3's invariant.
func linkReferences(doc *model.TxcDocument, warn warnFunc) {
	sectionsByID := make(map[string]*model.JourneyPatternSection, len(doc.JourneyPatternSections))
	for _, s := range doc.JourneyPatternSections {
		sectionsByID[s.ID] = s
	}

	for _, jp := range doc.JourneyPatterns {
		sections := make([]*model.JourneyPatternSection, 0, len(jp.SectionRefs))
		ok := true
		for _, ref := range jp.SectionRefs {
			s, found := sectionsByID[ref]
			if !found {
				warn("dangling_reference", "JourneyPattern", jp.ID, "unresolved section_ref "+ref)
				ok = false
				break
			}
			sections = append(sections, s)
		}
		if ok {
			jp.SetResolvedSections(sections)
		}
	}

	patternsByID := make(map[string]*model.JourneyPattern, len(doc.JourneyPatterns))
	for _, jp := range doc.JourneyPatterns {
		patternsByID[jp.ID] = jp
	}
	servicesByCode := make(map[string]*model.Service, len(doc.Services))
	for _, svc := range doc.Services {
		servicesByCode[svc.ServiceCode] = svc
	}

	kept := doc.VehicleJourneys[:0:0]
	for _, vj := range doc.VehicleJourneys {
		pattern, patternOK := patternsByID[vj.JourneyPatternRef]
		service, serviceOK := servicesByCode[vj.ServiceRef]
		if !patternOK {
			warn("dangling_reference", "VehicleJourney", vj.Code, "unresolved journey_pattern_ref "+vj.JourneyPatternRef)
			continue
		}
		if !serviceOK {
			warn("dangling_reference", "VehicleJourney", vj.Code, "unresolved service_ref "+vj.ServiceRef)
			continue
		}
		if pattern.ExpandStops() == nil {
			warn("dangling_reference", "VehicleJourney", vj.Code, "journey pattern has unresolved sections")
			continue
		}
		vj.SetResolved(pattern, service)
		kept = append(kept, vj)
	}
	doc.VehicleJourneys = kept
}
