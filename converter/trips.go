package converter

import (
	"github.com/transitkit/txc-gtfs/calendar"
	"github.com/transitkit/txc-gtfs/model"
)

// produceTrips builds one GTFS trip per VehicleJourney. Journeys whose
// pattern or service could not be resolved (should already have been
// dropped during TXC reference linking) are skipped defensively and
// counted.
func produceTrips(doc *model.TxcDocument) ([]*model.Trip, map[string]string, int) {
	var trips []*model.Trip
	// tripShapeKey maps trip_id -> journey pattern id, used by the shapes
	// stage to look up which pattern a trip's shape should come from.
	tripShapeKey := make(map[string]string)
	skipped := 0

	for _, vj := range doc.VehicleJourneys {
		pattern := vj.ResolvedPattern()
		svc := vj.ResolvedService()
		if pattern == nil || svc == nil {
			skipped++
			continue
		}

		headsign := pattern.DestinationDisplay
		if headsign == "" {
			headsign = svc.Description
		}

		profile := vj.EffectiveOperatingProfile()
		trips = append(trips, &model.Trip{
			RouteID:      routeID(svc.ServiceCode, vj.LineRef),
			ServiceID:    calendar.ServiceID(profile),
			TripID:       vj.Code,
			TripHeadsign: headsign,
		})
		tripShapeKey[vj.Code] = pattern.ID
	}
	return trips, tripShapeKey, skipped
}
