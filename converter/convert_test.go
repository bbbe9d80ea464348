package converter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transitkit/txc-gtfs/model"
)

func lat(v float64) *float64 { return &v }
func lon(v float64) *float64 { return &v }

func buildDoc() *model.TxcDocument {
	section := &model.JourneyPatternSection{
		ID: "JPS1",
		Links: []*model.TimingLink{
			{ID: "TL1", FromStop: "S1", ToStop: "S2", RunTime: 5 * time.Minute, ToWaitTime: time.Minute},
			{ID: "TL2", FromStop: "S2", ToStop: "S3", RunTime: 4 * time.Minute},
		},
	}
	pattern := &model.JourneyPattern{
		ID:                 "JP1",
		SectionRefs:        []string{"JPS1"},
		DestinationDisplay: "Town Centre",
	}
	pattern.SetResolvedSections([]*model.JourneyPatternSection{section})

	svc := &model.Service{
		ServiceCode: "SVC1",
		Lines:       []*model.Line{{ID: "L1", Name: "1"}},
		OperatorRef: "OP1",
		StartDate:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Mode:        "bus",
		OperatingProfile: &model.OperatingProfile{
			RegularDayType: model.RegularDayType{Kind: model.DayTypeMondayToFriday},
		},
	}

	vj := &model.VehicleJourney{
		Code:              "VJ1",
		DepartureTime:     8 * time.Hour,
		JourneyPatternRef: "JP1",
		ServiceRef:        "SVC1",
		LineRef:           "L1",
		OperatorRef:       "OP1",
	}
	vj.SetResolved(pattern, svc)

	doc := &model.TxcDocument{
		Operators: []*model.Operator{{ID: "OP1", ShortName: "Sample Buses"}},
		Services:  []*model.Service{svc},
		StopPoints: []*model.StopPoint{
			{AtcoCode: "S1", CommonName: "Stop One", Lat: lat(51.50), Lon: lon(-0.10)},
			{AtcoCode: "S2", CommonName: "Stop Two", Lat: lat(51.51), Lon: lon(-0.11)},
			{AtcoCode: "S3", CommonName: "Stop Three", Lat: lat(51.52), Lon: lon(-0.12)},
		},
		VehicleJourneys:        []*model.VehicleJourney{vj},
		JourneyPatternSections: []*model.JourneyPatternSection{section},
		JourneyPatterns:        []*model.JourneyPattern{pattern},
	}
	return doc
}

func TestConvertProducesExpectedCounts(t *testing.T) {
	doc := buildDoc()
	result, err := Convert(doc, ConversionOptions{}, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.Agencies)
	assert.Equal(t, 3, result.Stats.Stops)
	assert.Equal(t, 1, result.Stats.Routes)
	assert.Equal(t, 1, result.Stats.Trips)
	assert.Equal(t, 3, result.Stats.StopTimes)
	assert.Equal(t, 1, result.Stats.Calendars)
	assert.Equal(t, 0, result.Stats.SkippedJourneys)
	assert.Empty(t, result.Warnings)

	trips := result.Feed.Trips()
	require.Len(t, trips, 1)
	assert.Equal(t, "SVC1:L1", trips[0].RouteID)
	assert.Equal(t, "VJ1", trips[0].TripID)
	assert.Equal(t, "Town Centre", trips[0].TripHeadsign)
}

func TestConvertWithoutShapesOmitsShapeID(t *testing.T) {
	doc := buildDoc()
	result, err := Convert(doc, ConversionOptions{}, nil)
	require.NoError(t, err)
	require.Len(t, result.Feed.Trips(), 1)
	assert.Empty(t, result.Feed.Trips()[0].ShapeID)
	assert.Empty(t, result.Feed.Shapes())
}

func TestConvertWithShapesAssignsShapeID(t *testing.T) {
	doc := buildDoc()
	result, err := Convert(doc, ConversionOptions{IncludeShapes: true}, nil)
	require.NoError(t, err)
	require.Len(t, result.Feed.Trips(), 1)
	assert.NotEmpty(t, result.Feed.Trips()[0].ShapeID)
	require.Len(t, result.Feed.Shapes(), 1)
}

func TestConvertFailsWithNoViableTrips(t *testing.T) {
	doc := &model.TxcDocument{}
	_, err := Convert(doc, ConversionOptions{}, nil)
	require.Error(t, err)
}

func TestConvertStopTimesReflectRunTimeAndDwell(t *testing.T) {
	doc := buildDoc()
	result, err := Convert(doc, ConversionOptions{}, nil)
	require.NoError(t, err)

	stopTimes := result.Feed.StopTimes()
	require.Len(t, stopTimes, 3)
	assert.Equal(t, 8*3600, stopTimes[0].ArrivalTime)
	assert.Equal(t, 8*3600, stopTimes[0].DepartureTime)
	assert.Equal(t, 8*3600+5*60, stopTimes[1].ArrivalTime)
	assert.Equal(t, 8*3600+5*60+60, stopTimes[1].DepartureTime)
}

func TestConvertSkipsUnresolvedVehicleJourney(t *testing.T) {
	doc := buildDoc()
	unresolved := &model.VehicleJourney{Code: "VJ2", JourneyPatternRef: "missing", ServiceRef: "missing"}
	doc.VehicleJourneys = append(doc.VehicleJourneys, unresolved)

	result, err := Convert(doc, ConversionOptions{}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Stats.SkippedJourneys)
	assert.Equal(t, 1, result.Stats.Trips)
}

func TestConvertInboundDeadRunSuppressesFirstPickup(t *testing.T) {
	doc := buildDoc()
	doc.VehicleJourneys[0].DeadRun = "inboundDeadRun"

	result, err := Convert(doc, ConversionOptions{}, nil)
	require.NoError(t, err)

	stopTimes := result.Feed.StopTimes()
	require.Len(t, stopTimes, 3)
	assert.Equal(t, 1, stopTimes[0].PickupType)
	assert.Equal(t, 0, stopTimes[len(stopTimes)-1].DropOffType)
}

func TestConvertOutboundDeadRunSuppressesLastDropOff(t *testing.T) {
	doc := buildDoc()
	doc.VehicleJourneys[0].DeadRun = "outboundDeadRun"

	result, err := Convert(doc, ConversionOptions{}, nil)
	require.NoError(t, err)

	stopTimes := result.Feed.StopTimes()
	require.Len(t, stopTimes, 3)
	assert.Equal(t, 0, stopTimes[0].PickupType)
	assert.Equal(t, 1, stopTimes[len(stopTimes)-1].DropOffType)
}

func TestConvertDefaultCalendarEndDateIsDeterministic(t *testing.T) {
	doc := buildDoc()
	result, err := Convert(doc, ConversionOptions{}, nil)
	require.NoError(t, err)
	require.Len(t, result.Feed.Calendars(), 1)
	assert.Equal(t, "20260101", result.Feed.Calendars()[0].StartDate)
	assert.Equal(t, "20270101", result.Feed.Calendars()[0].EndDate)
}

func TestConvertAppliesCalendarWindowClamp(t *testing.T) {
	doc := buildDoc()
	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
	result, err := Convert(doc, ConversionOptions{CalendarStart: &start, CalendarEnd: &end}, nil)
	require.NoError(t, err)
	require.Len(t, result.Feed.Calendars(), 1)
	assert.Equal(t, "20260201", result.Feed.Calendars()[0].StartDate)
	assert.Equal(t, "20260228", result.Feed.Calendars()[0].EndDate)
}
