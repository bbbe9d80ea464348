package converter

import (
	"github.com/transitkit/txc-gtfs/model"
)

// produceStopTimes expands vj's journey pattern into stop_times rows,
// accumulating TimingLink run times from the journey's departure_time.
// Dwell time at an internal stop is the wait time attached to either side
// of that stop (the trailing WaitTime of the incoming link, the leading
// WaitTime of the outgoing one); when both are present and differ, the
// reference behavior is to take the max and record a warning, since TXC
// does not define which one is canonical.
func produceStopTimes(vj *model.VehicleJourney) ([]*model.StopTime, []model.Warning) {
	pattern := vj.ResolvedPattern()
	if pattern == nil {
		return nil, nil
	}
	links := pattern.ExpandLinks()
	stops := pattern.ExpandStops()
	if len(links) == 0 || len(stops) != len(links)+1 {
		return nil, nil
	}

	var warnings []model.Warning
	rows := make([]*model.StopTime, 0, len(stops))

	leadingPickup, trailingDropOff := deadRunEffect(vj.DeadRun)

	cumulative := vj.DepartureTime
	// Dwell before the very first stop is the first link's FromWaitTime.
	firstDwell := links[0].FromWaitTime
	arrival := cumulative
	departure := cumulative + firstDwell

	for i := 0; i <= len(links); i++ {
		seq := i + 1
		pickup, dropOff := 0, 0
		if i == 0 {
			pickup = leadingPickup
		}
		if i == len(links) {
			dropOff = trailingDropOff
		}
		rows = append(rows, &model.StopTime{
			TripID: vj.Code, StopID: stops[i], StopSequence: seq,
			ArrivalTime: int(arrival.Seconds()), DepartureTime: int(departure.Seconds()),
			PickupType: pickup, DropOffType: dropOff,
		})

		if i == len(links) {
			break
		}

		link := links[i]
		arrival = departure + link.RunTime

		dwell := link.ToWaitTime
		if i+1 < len(links) {
			nextLeading := links[i+1].FromWaitTime
			if nextLeading > 0 && dwell > 0 && nextLeading != dwell {
				warnings = append(warnings, model.Warning{
					Kind: "ambiguous_dwell_time", EntityType: "VehicleJourney", EntityID: vj.Code,
					Reason: "conflicting wait times on both sides of a stop; using the larger value",
				})
				if nextLeading > dwell {
					dwell = nextLeading
				}
			} else if dwell == 0 {
				dwell = nextLeading
			}
		}
		departure = arrival + dwell
	}

	return rows, warnings
}

// deadRunEffect maps a VehicleJourney's DeadRun marker to the pickup_type
// of its first stop_time and the drop_off_type of its last: "inboundDeadRun"
// denotes a non-revenue run before the first proper stop (no pickup
// there), "outboundDeadRun" denotes one after the last (no drop-off there).
func deadRunEffect(deadRun string) (leadingPickup, trailingDropOff int) {
	switch deadRun {
	case "inboundDeadRun":
		return 1, 0
	case "outboundDeadRun":
		return 0, 1
	default:
		return 0, 0
	}
}
