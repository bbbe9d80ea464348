package converter

import (
	"github.com/transitkit/txc-gtfs/geometry"
	"github.com/transitkit/txc-gtfs/model"
)

// produceShapes builds one shape per unique journey pattern reachable from
// a retained VehicleJourney, and returns the shape_id each trip should
// reference via tripShapeKey (trip_id -> pattern_id, from produceTrips).
func produceShapes(doc *model.TxcDocument, tripShapeKey map[string]string) ([]*model.AggregatedShape, map[string]string) {
	shapes := make([]*model.AggregatedShape, 0)
	shapeIDByPattern := make(map[string]string)
	seen := make(map[string]bool)

	patternIDs := make([]string, 0)
	for _, pid := range tripShapeKey {
		if !seen[pid] {
			seen[pid] = true
			patternIDs = append(patternIDs, pid)
		}
	}

	for _, pid := range patternIDs {
		pattern := doc.JourneyPatternByID(pid)
		if pattern == nil {
			continue
		}
		stopIDs := pattern.ExpandStops()
		links := pattern.ExpandLinks()
		stops := make([]geometry.Stop, 0, len(stopIDs))
		for i, atco := range stopIDs {
			sp := doc.StopPointByATCO(atco)
			gs := geometry.Stop{ID: atco}
			if sp != nil && sp.HasCoordinates() {
				gs.HasCoords = true
				gs.Lat, gs.Lon = *sp.Lat, *sp.Lon
			}
			if i > 0 && links[i-1].Distance != nil {
				gs.HasSegmentDistance = true
				gs.SegmentDistanceMeters = *links[i-1].Distance
			}
			stops = append(stops, gs)
		}

		shapeID := geometry.ShapeID(pid)
		shape, ok := geometry.GenerateShape(shapeID, stops)
		if !ok {
			continue
		}
		shapes = append(shapes, shape)
		shapeIDByPattern[pid] = shapeID
	}

	tripShapeID := make(map[string]string, len(tripShapeKey))
	for tripID, pid := range tripShapeKey {
		if shapeID, ok := shapeIDByPattern[pid]; ok {
			tripShapeID[tripID] = shapeID
		}
	}
	return shapes, tripShapeID
}
