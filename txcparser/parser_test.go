package txcparser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTXC = `<?xml version="1.0"?>
<TransXChange SchemaVersion="2.4">
  <Operators>
    <Operator id="OP1">
      <OperatorCode>ACME</OperatorCode>
      <OperatorShortName>Acme Buses</OperatorShortName>
    </Operator>
  </Operators>
  <StopPoints>
    <StopPoint>
      <AtcoCode>490000001</AtcoCode>
      <CommonName>High Street</CommonName>
      <Place><Location><Longitude>-0.1</Longitude><Latitude>51.5</Latitude></Location></Place>
    </StopPoint>
    <StopPoint>
      <AtcoCode>490000002</AtcoCode>
      <CommonName>Town Hall</CommonName>
      <Place><Location><Longitude>-0.11</Longitude><Latitude>51.51</Latitude></Location></Place>
    </StopPoint>
  </StopPoints>
  <JourneyPatternSections>
    <JourneyPatternSection id="JPS1">
      <JourneyPatternTimingLink id="JPTL1">
        <From><StopPointRef>490000001</StopPointRef></From>
        <To><StopPointRef>490000002</StopPointRef></To>
        <RunTime>PT5M</RunTime>
      </JourneyPatternTimingLink>
    </JourneyPatternSection>
  </JourneyPatternSections>
  <Services>
    <Service>
      <ServiceCode>SVC1</ServiceCode>
      <Lines><Line id="L1"><LineName>1</LineName></Line></Lines>
      <RegisteredOperatorRef>OP1</RegisteredOperatorRef>
      <Mode>bus</Mode>
      <OperatingPeriod><StartDate>2026-01-01</StartDate></OperatingPeriod>
      <OperatingProfile>
        <RegularDayType><DaysOfWeek><MondayToFriday/></DaysOfWeek></RegularDayType>
      </OperatingProfile>
      <StandardService>
        <JourneyPattern id="JP1">
          <DestinationDisplay>Town Hall</DestinationDisplay>
          <JourneyPatternSectionRefs>JPS1</JourneyPatternSectionRefs>
        </JourneyPattern>
      </StandardService>
    </Service>
  </Services>
  <VehicleJourneys>
    <VehicleJourney>
      <VehicleJourneyCode>VJ1</VehicleJourneyCode>
      <ServiceRef>SVC1</ServiceRef>
      <LineRef>L1</LineRef>
      <JourneyPatternRef>JP1</JourneyPatternRef>
      <OperatorRef>OP1</OperatorRef>
      <DepartureTime>08:00:00</DepartureTime>
    </VehicleJourney>
    <VehicleJourney>
      <VehicleJourneyCode>VJ2</VehicleJourneyCode>
      <ServiceRef>SVC1</ServiceRef>
      <LineRef>L1</LineRef>
      <JourneyPatternRef>NOPE</JourneyPatternRef>
      <OperatorRef>OP1</OperatorRef>
      <DepartureTime>09:00:00</DepartureTime>
    </VehicleJourney>
  </VehicleJourneys>
</TransXChange>
`

func TestParseSampleDocument(t *testing.T) {
	doc, warnings, err := New(nil).Parse(strings.NewReader(sampleTXC))
	require.NoError(t, err)

	require.Len(t, doc.Operators, 1)
	assert.Equal(t, "Acme Buses", doc.Operators[0].DisplayName())

	require.Len(t, doc.StopPoints, 2)
	require.Len(t, doc.JourneyPatternSections, 1)
	require.Len(t, doc.Services, 1)
	require.Len(t, doc.JourneyPatterns, 1)

	// VJ2 references a dangling journey pattern and must be dropped, with
	// a warning recorded.
	require.Len(t, doc.VehicleJourneys, 1)
	assert.Equal(t, "VJ1", doc.VehicleJourneys[0].Code)
	require.NotNil(t, doc.VehicleJourneys[0].ResolvedPattern())
	require.NotNil(t, doc.VehicleJourneys[0].ResolvedService())

	foundDangling := false
	for _, w := range warnings {
		if w.Kind == "dangling_reference" && w.EntityID == "VJ2" {
			foundDangling = true
		}
	}
	assert.True(t, foundDangling, "expected a dangling_reference warning for VJ2")
}

func TestParseEmptyInputYieldsEmptyDocument(t *testing.T) {
	doc, warnings, err := New(nil).Parse(strings.NewReader(""))
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, 0, doc.OperatorCount())
	assert.Empty(t, warnings)
}

func TestParseMalformedXMLReturnsError(t *testing.T) {
	_, _, err := New(nil).Parse(strings.NewReader("<TransXChange><Operators>"))
	require.Error(t, err)
}

func TestParseVehicleJourneyDeadRunMarkers(t *testing.T) {
	doc, _, err := New(nil).Parse(strings.NewReader(`<TransXChange SchemaVersion="2.4">
  <StopPoints>
    <StopPoint>
      <AtcoCode>490000001</AtcoCode>
      <CommonName>High Street</CommonName>
      <Place><Location><Longitude>-0.1</Longitude><Latitude>51.5</Latitude></Location></Place>
    </StopPoint>
    <StopPoint>
      <AtcoCode>490000002</AtcoCode>
      <CommonName>Town Hall</CommonName>
      <Place><Location><Longitude>-0.11</Longitude><Latitude>51.51</Latitude></Location></Place>
    </StopPoint>
  </StopPoints>
  <JourneyPatternSections>
    <JourneyPatternSection id="JPS1">
      <JourneyPatternTimingLink id="JPTL1">
        <From><StopPointRef>490000001</StopPointRef></From>
        <To><StopPointRef>490000002</StopPointRef></To>
        <RunTime>PT5M</RunTime>
      </JourneyPatternTimingLink>
    </JourneyPatternSection>
  </JourneyPatternSections>
  <Services>
    <Service>
      <ServiceCode>SVC1</ServiceCode>
      <Lines><Line id="L1"><LineName>1</LineName></Line></Lines>
      <RegisteredOperatorRef>OP1</RegisteredOperatorRef>
      <Mode>bus</Mode>
      <OperatingPeriod><StartDate>2026-01-01</StartDate></OperatingPeriod>
      <OperatingProfile>
        <RegularDayType><DaysOfWeek><MondayToFriday/></DaysOfWeek></RegularDayType>
      </OperatingProfile>
      <StandardService>
        <JourneyPattern id="JP1">
          <DestinationDisplay>Town Hall</DestinationDisplay>
          <JourneyPatternSectionRefs>JPS1</JourneyPatternSectionRefs>
        </JourneyPattern>
      </StandardService>
    </Service>
  </Services>
  <VehicleJourneys>
    <VehicleJourney>
      <VehicleJourneyCode>VJ1</VehicleJourneyCode>
      <ServiceRef>SVC1</ServiceRef>
      <LineRef>L1</LineRef>
      <JourneyPatternRef>JP1</JourneyPatternRef>
      <OperatorRef>OP1</OperatorRef>
      <DepartureTime>08:00:00</DepartureTime>
      <StartDeadRun><ShortWorking/></StartDeadRun>
    </VehicleJourney>
    <VehicleJourney>
      <VehicleJourneyCode>VJ2</VehicleJourneyCode>
      <ServiceRef>SVC1</ServiceRef>
      <LineRef>L1</LineRef>
      <JourneyPatternRef>JP1</JourneyPatternRef>
      <OperatorRef>OP1</OperatorRef>
      <DepartureTime>09:00:00</DepartureTime>
      <EndDeadRun><ShortWorking/></EndDeadRun>
    </VehicleJourney>
    <VehicleJourney>
      <VehicleJourneyCode>VJ3</VehicleJourneyCode>
      <ServiceRef>SVC1</ServiceRef>
      <LineRef>L1</LineRef>
      <JourneyPatternRef>JP1</JourneyPatternRef>
      <OperatorRef>OP1</OperatorRef>
      <DepartureTime>10:00:00</DepartureTime>
    </VehicleJourney>
  </VehicleJourneys>
</TransXChange>`))
	require.NoError(t, err)
	require.Len(t, doc.VehicleJourneys, 3)
	assert.Equal(t, "inboundDeadRun", doc.VehicleJourneys[0].DeadRun)
	assert.Equal(t, "outboundDeadRun", doc.VehicleJourneys[1].DeadRun)
	assert.Equal(t, "", doc.VehicleJourneys[2].DeadRun)
}

func TestParseMissingOperatorIDIsSkippedWithWarning(t *testing.T) {
	doc, warnings, err := New(nil).Parse(strings.NewReader(`<TransXChange>
		<Operators><Operator><OperatorCode>ACME</OperatorCode></Operator></Operators>
	</TransXChange>`))
	require.NoError(t, err)
	assert.Empty(t, doc.Operators)

	found := false
	for _, w := range warnings {
		if w.Kind == "malformed_element" && w.EntityType == "Operator" {
			found = true
		}
	}
	assert.True(t, found)
}
