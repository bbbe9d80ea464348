package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
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
      <Place>
        <Location><Longitude>-0.1</Longitude><Latitude>51.5</Latitude></Location>
      </Place>
    </StopPoint>
    <StopPoint>
      <AtcoCode>490000002</AtcoCode>
      <CommonName>Town Hall</CommonName>
      <Place>
        <Location><Longitude>-0.11</Longitude><Latitude>51.51</Latitude></Location>
      </Place>
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
  </VehicleJourneys>
</TransXChange>
`

func writeSample(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "sample.xml")
	if err := os.WriteFile(path, []byte(sampleTXC), 0o644); err != nil {
		t.Fatalf("writing sample TXC: %v", err)
	}
	return path
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConvertValidateQueryRoundTrip(t *testing.T) {
	dir := t.TempDir()
	txcPath := writeSample(t, dir)
	gtfsDir := filepath.Join(dir, "gtfs")

	out, err := runCmd(t, "convert", txcPath, gtfsDir)
	if err != nil {
		t.Fatalf("convert: %v\noutput:\n%s", err, out)
	}
	if !strings.Contains(out, "trips=1") {
		t.Fatalf("expected stats with trips=1, got:\n%s", out)
	}

	for _, file := range []string{"agency.txt", "stops.txt", "routes.txt", "trips.txt", "stop_times.txt"} {
		if _, err := os.Stat(filepath.Join(gtfsDir, file)); err != nil {
			t.Fatalf("expected %s to be written: %v", file, err)
		}
	}

	out, err = runCmd(t, "validate", gtfsDir)
	if err != nil {
		t.Fatalf("validate: %v\noutput:\n%s", err, out)
	}

	out, err = runCmd(t, "query", gtfsDir, "--route", "SVC1:L1")
	if err != nil {
		t.Fatalf("query --route: %v\noutput:\n%s", err, out)
	}
	if !strings.Contains(out, "VJ1") {
		t.Fatalf("expected query --route output to list trip VJ1, got:\n%s", out)
	}
}

func TestConvertRejectsMissingSource(t *testing.T) {
	dir := t.TempDir()
	_, err := runCmd(t, "convert", filepath.Join(dir, "missing.xml"), filepath.Join(dir, "out"))
	if err == nil {
		t.Fatal("expected an error for a missing TXC source file")
	}
}

func TestQueryRequiresAtLeastOneFilter(t *testing.T) {
	dir := t.TempDir()
	txcPath := writeSample(t, dir)
	gtfsDir := filepath.Join(dir, "gtfs")
	if _, err := runCmd(t, "convert", txcPath, gtfsDir); err != nil {
		t.Fatalf("convert: %v", err)
	}

	_, err := runCmd(t, "query", gtfsDir)
	if err == nil {
		t.Fatal("expected an error when no --route/--trip/--stop/--date is given")
	}
}
