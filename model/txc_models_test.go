package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperatorDisplayName(t *testing.T) {
	cases := []struct {
		name string
		op   Operator
		want string
	}{
		{"prefers ShortName", Operator{ShortName: "Acme", TradingName: "Acme Trading", Code: "ACM"}, "Acme"},
		{"falls back to TradingName", Operator{TradingName: "Acme Trading", Code: "ACM"}, "Acme Trading"},
		{"falls back to Code", Operator{Code: "ACM"}, "ACM"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.op.DisplayName())
		})
	}
}

func TestStopPointHasCoordinates(t *testing.T) {
	lat, lon := 51.5, -0.1
	assert.True(t, (&StopPoint{Lat: &lat, Lon: &lon}).HasCoordinates())
	assert.False(t, (&StopPoint{Lat: &lat}).HasCoordinates())
	assert.False(t, (&StopPoint{}).HasCoordinates())
}

func TestJourneyPatternExpandStopsUnresolved(t *testing.T) {
	jp := &JourneyPattern{ID: "JP1", SectionRefs: []string{"S1"}}
	assert.Nil(t, jp.ExpandStops())
	assert.Nil(t, jp.ExpandLinks())
}

func TestJourneyPatternExpandStopsResolved(t *testing.T) {
	s1 := &JourneyPatternSection{ID: "S1", Links: []*TimingLink{
		{FromStop: "A", ToStop: "B"},
		{FromStop: "B", ToStop: "C"},
	}}
	s2 := &JourneyPatternSection{ID: "S2", Links: []*TimingLink{
		{FromStop: "C", ToStop: "D"},
	}}
	jp := &JourneyPattern{ID: "JP1", SectionRefs: []string{"S1", "S2"}}
	jp.SetResolvedSections([]*JourneyPatternSection{s1, s2})

	require.Equal(t, []string{"A", "B", "C", "D"}, jp.ExpandStops())
	require.Len(t, jp.ExpandLinks(), 3)
}

func TestVehicleJourneyEffectiveOperatingProfile(t *testing.T) {
	svcProfile := &OperatingProfile{RegularDayType: RegularDayType{Kind: DayTypeWeekend}}
	svc := &Service{ServiceCode: "SVC1", OperatingProfile: svcProfile}

	vj := &VehicleJourney{Code: "VJ1"}
	vj.SetResolved(&JourneyPattern{ID: "JP1"}, svc)
	assert.Same(t, svcProfile, vj.EffectiveOperatingProfile())

	ownProfile := &OperatingProfile{RegularDayType: RegularDayType{Kind: DayTypeMondayToFriday}}
	vj.OperatingProfile = ownProfile
	assert.Same(t, ownProfile, vj.EffectiveOperatingProfile())
}

func TestVehicleJourneyEffectiveOperatingProfileUnresolved(t *testing.T) {
	vj := &VehicleJourney{Code: "VJ1"}
	assert.Nil(t, vj.EffectiveOperatingProfile())
}

func TestTxcDocumentLookupsAndCounts(t *testing.T) {
	doc := &TxcDocument{
		Operators:              []*Operator{{ID: "OP1", ShortName: "Acme"}},
		Services:               []*Service{{ServiceCode: "SVC1"}},
		StopPoints:             []*StopPoint{{AtcoCode: "490001"}},
		JourneyPatterns:        []*JourneyPattern{{ID: "JP1"}},
		JourneyPatternSections: []*JourneyPatternSection{{ID: "JPS1"}},
	}

	assert.Equal(t, 1, doc.OperatorCount())
	assert.Equal(t, 1, doc.ServiceCount())
	assert.Equal(t, 1, doc.StopPointCount())
	assert.Equal(t, 0, doc.VehicleJourneyCount())
	assert.Equal(t, 1, doc.JourneyPatternSectionCount())

	require.NotNil(t, doc.OperatorByID("OP1"))
	assert.Nil(t, doc.OperatorByID("nope"))
	require.NotNil(t, doc.ServiceByCode("SVC1"))
	require.NotNil(t, doc.StopPointByATCO("490001"))
	require.NotNil(t, doc.JourneyPatternByID("JP1"))
	require.NotNil(t, doc.JourneyPatternSectionByID("JPS1"))

	assert.Equal(t, []string{"490001"}, doc.StopCodes())
	assert.Equal(t, []string{"Acme"}, doc.OperatorNames())
	assert.Equal(t, []string{"SVC1"}, doc.ServiceCodes())
}

func TestServiceLineByID(t *testing.T) {
	l1 := &Line{ID: "L1", Name: "1"}
	svc := &Service{Lines: []*Line{l1, {ID: "L2", Name: "2"}}}
	assert.Same(t, l1, svc.LineByID("L1"))
	assert.Nil(t, svc.LineByID("L3"))
}
