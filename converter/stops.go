package converter

import (
	"github.com/transitkit/txc-gtfs/model"
)

// produceStops emits one GTFS stop per TXC StopPoint referenced by any
// retained VehicleJourney's expanded journey pattern. Stops without
// coordinates are still emitted, with a warning.
func produceStops(doc *model.TxcDocument, retainedATCOs map[string]bool) ([]*model.Stop, []model.Warning) {
	var warnings []model.Warning
	stops := make([]*model.Stop, 0, len(retainedATCOs))

	for _, sp := range doc.StopPoints {
		if !retainedATCOs[sp.AtcoCode] {
			continue
		}
		name := sp.CommonName
		if name == "" {
			name = sp.AtcoCode
		}
		stop := &model.Stop{StopID: sp.AtcoCode, StopName: name}
		if sp.HasCoordinates() {
			stop.StopLat = *sp.Lat
			stop.StopLon = *sp.Lon
		} else {
			warnings = append(warnings, model.Warning{
				Kind: "missing_coordinates", EntityType: "StopPoint", EntityID: sp.AtcoCode,
				Reason: "stop point has no coordinates; emitted with stop_lat=stop_lon=0",
			})
		}
		stops = append(stops, stop)
	}
	return stops, warnings
}

// retainedStopCodes collects the ATCO codes of every stop reachable from a
// retained VehicleJourney's expanded journey pattern.
func retainedStopCodes(doc *model.TxcDocument) map[string]bool {
	retained := make(map[string]bool)
	for _, vj := range doc.VehicleJourneys {
		pattern := vj.ResolvedPattern()
		if pattern == nil {
			continue
		}
		for _, atco := range pattern.ExpandStops() {
			retained[atco] = true
		}
	}
	return retained
}
