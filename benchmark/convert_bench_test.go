// Package benchmark holds throughput benchmarks over the conversion and
// feed-write paths, driven with a synthetic TXC document of 1000 vehicle
// journeys over 20 stops (20,000 stop_times). These are
// ordinary go test -bench benchmarks, not part of the public API.
package benchmark

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/transitkit/txc-gtfs/converter"
	"github.com/transitkit/txc-gtfs/gtfsfeed"
	"github.com/transitkit/txc-gtfs/model"
)

// syntheticDocument builds a single-operator, single-service TXC document
// with journeyCount vehicle journeys, each calling at stopsPerJourney stops.
func syntheticDocument(journeyCount, stopsPerJourney int) *model.TxcDocument {
	doc := &model.TxcDocument{RawExtensions: map[string][]byte{}}

	doc.Operators = []*model.Operator{{ID: "OP1", ShortName: "Acme Buses"}}

	stops := make([]*model.StopPoint, stopsPerJourney)
	for i := range stops {
		lat, lon := 51.5+float64(i)*0.001, -0.1+float64(i)*0.001
		stops[i] = &model.StopPoint{
			AtcoCode: "stop" + itoa(i), CommonName: "Stop " + itoa(i),
			Lat: &lat, Lon: &lon,
		}
	}
	doc.StopPoints = stops

	links := make([]*model.TimingLink, stopsPerJourney-1)
	for i := range links {
		links[i] = &model.TimingLink{
			ID: "link" + itoa(i), FromStop: stops[i].AtcoCode, ToStop: stops[i+1].AtcoCode,
			RunTime: 90 * time.Second,
		}
	}
	section := &model.JourneyPatternSection{ID: "sec1", Links: links}
	doc.JourneyPatternSections = []*model.JourneyPatternSection{section}

	pattern := &model.JourneyPattern{ID: "pat1", SectionRefs: []string{"sec1"}, DestinationDisplay: "Town Centre"}
	pattern.SetResolvedSections([]*model.JourneyPatternSection{section})
	doc.JourneyPatterns = []*model.JourneyPattern{pattern}

	line := &model.Line{ID: "L1", Name: "1"}
	svc := &model.Service{
		ServiceCode: "SVC1", Lines: []*model.Line{line}, OperatorRef: "OP1",
		StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), Mode: "bus",
		OperatingProfile: &model.OperatingProfile{RegularDayType: model.RegularDayType{Kind: model.DayTypeMondayToFriday}},
	}
	doc.Services = []*model.Service{svc}

	journeys := make([]*model.VehicleJourney, journeyCount)
	for i := range journeys {
		vj := &model.VehicleJourney{
			Code: "VJ" + itoa(i), DepartureTime: time.Duration(8+i%10) * time.Hour,
			JourneyPatternRef: "pat1", ServiceRef: "SVC1", LineRef: "L1", OperatorRef: "OP1",
		}
		vj.SetResolved(pattern, svc)
		journeys[i] = vj
	}
	doc.VehicleJourneys = journeys

	return doc
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}

func BenchmarkConvert_1000Journeys(b *testing.B) {
	doc := syntheticDocument(1000, 20)
	opts := converter.ConversionOptions{Region: "england"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := converter.Convert(doc, opts, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkConvertAndWriteZip_1000Journeys(b *testing.B) {
	doc := syntheticDocument(1000, 20)
	opts := converter.ConversionOptions{Region: "england"}
	dir := b.TempDir()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		result, err := converter.Convert(doc, opts, nil)
		if err != nil {
			b.Fatal(err)
		}
		if err := gtfsfeed.WriteZip(result.Feed, filepath.Join(dir, "feed.zip")); err != nil {
			b.Fatal(err)
		}
	}
}
