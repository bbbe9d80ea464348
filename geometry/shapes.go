// Package geometry synthesizes GTFS shapes from TXC journey pattern stop
// coordinates. Distance between consecutive points is computed via the
// haversine formula (github.com/jftuga/geodist); a TimingLink's own
// RouteLink-derived distance, when present, is preferred for that segment
// over the haversine approximation.
package geometry

import (
	"fmt"

	"github.com/jftuga/geodist"

	"github.com/transitkit/txc-gtfs/model"
)

// Point is a plain geographic coordinate, structurally compatible with
// geodist.Coord for distance calculations.
type Point struct {
	Lat float64
	Lon float64
}

// Stop is the minimal coordinate+distance input GenerateShape needs per
// position in a journey pattern's expanded stop sequence.
type Stop struct {
	ID  string
	Lat float64
	Lon float64
	// HasCoords is false when the source StopPoint had no coordinates;
	// such stops are skipped when building the shape rather than
	// introducing a (0,0) point.
	HasCoords bool
	// SegmentDistanceMeters is the TimingLink-derived distance (if any)
	// from the previous stop to this one; 0 means "use haversine".
	SegmentDistanceMeters float64
	HasSegmentDistance    bool
}

// HaversineKM returns the great-circle distance between two points in
// kilometers, mean Earth radius 6371.0088km.
func HaversineKM(a, b Point) float64 {
	_, km := geodist.HaversineDistance(geodist.Coord{Lat: a.Lat, Lon: a.Lon}, geodist.Coord{Lat: b.Lat, Lon: b.Lon})
	return km
}

// GenerateShape builds an AggregatedShape by walking stops in order,
// accumulating shape_dist_traveled in kilometers. Stops without
// coordinates are skipped; fewer than two coordinate-bearing stops yields
// (nil, false).
func GenerateShape(shapeID string, stops []Stop) (*model.AggregatedShape, bool) {
	var points []model.ShapePoint
	var cumulative float64
	var prev *Point
	seq := 0

	for _, s := range stops {
		if !s.HasCoords {
			continue
		}
		cur := Point{Lat: s.Lat, Lon: s.Lon}
		if prev != nil {
			var segmentKM float64
			if s.HasSegmentDistance {
				segmentKM = s.SegmentDistanceMeters / 1000.0
			} else {
				segmentKM = HaversineKM(*prev, cur)
			}
			cumulative += segmentKM
		}
		seq++
		points = append(points, model.ShapePoint{
			Lat:             cur.Lat,
			Lon:             cur.Lon,
			Sequence:        seq,
			DistTraveled:    cumulative,
			HasDistTraveled: true,
		})
		prev = &cur
	}

	if len(points) < 2 {
		return nil, false
	}
	return &model.AggregatedShape{ShapeID: shapeID, Points: points}, true
}

// Flatten expands an AggregatedShape into shapes.txt rows.
func Flatten(shape *model.AggregatedShape) []*model.Shape {
	rows := make([]*model.Shape, 0, len(shape.Points))
	for _, p := range shape.Points {
		rows = append(rows, &model.Shape{
			ShapeID:           shape.ShapeID,
			ShapePtLat:        p.Lat,
			ShapePtLon:        p.Lon,
			ShapePtSequence:   p.Sequence,
			ShapeDistTraveled: p.DistTraveled,
		})
	}
	return rows
}

// ShapeID mints a deterministic id for a journey pattern's synthesized
// shape: "shape_{journeyPatternID}".
func ShapeID(journeyPatternID string) string {
	return fmt.Sprintf("shape_%s", journeyPatternID)
}
