// Package geo parses free-text polygon coordinate strings and derives the
// towns inside them, used to prefill the towns-in-path field of a warning.
package geo

import (
	"fmt"
	"strconv"
	"strings"
)

// Point is a WGS-84 latitude/longitude coordinate pair.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// ParsePolygon parses a free-text polygon string into an ordered point list.
// Accepted input is "lat,lon" pairs separated by whitespace, newlines, or
// semicolons, e.g. "44.1,-79.5 44.2,-79.3 44.0,-79.2". A polygon needs at
// least three points. This is the one user-facing parse failure in the
// system; everything downstream of it is total.
func ParsePolygon(text string) ([]Point, error) {
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == ';'
	})

	points := make([]Point, 0, len(tokens))
	for _, tok := range tokens {
		parts := strings.Split(tok, ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("parse polygon: %q is not a lat,lon pair", tok)
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("parse polygon: invalid latitude in %q", tok)
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("parse polygon: invalid longitude in %q", tok)
		}
		if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
			return nil, fmt.Errorf("parse polygon: %q is out of range", tok)
		}
		points = append(points, Point{Lat: lat, Lon: lon})
	}

	if len(points) < 3 {
		return nil, fmt.Errorf("parse polygon: need at least 3 points, got %d", len(points))
	}
	return points, nil
}

// contains reports whether a point lies inside the polygon, by ray casting.
// Points exactly on an edge may fall on either side; for town prefill that
// imprecision is acceptable.
func contains(polygon []Point, p Point) bool {
	inside := false
	n := len(polygon)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := polygon[i], polygon[j]
		if (a.Lat > p.Lat) != (b.Lat > p.Lat) {
			crossLon := (b.Lon-a.Lon)*(p.Lat-a.Lat)/(b.Lat-a.Lat) + a.Lon
			if p.Lon < crossLon {
				inside = !inside
			}
		}
	}
	return inside
}

// TownsInPath returns the names of the most populous towns inside the
// polygon, largest first, up to limit. A limit of 0 or less defaults to 5.
func TownsInPath(polygon []Point, limit int) []string {
	if limit <= 0 {
		limit = 5
	}

	matched := make([]Town, 0, limit)
	for _, town := range towns {
		if contains(polygon, Point{Lat: town.Lat, Lon: town.Lon}) {
			matched = append(matched, town)
		}
	}

	// Simple insertion sort by population descending; the match set is tiny.
	for i := 1; i < len(matched); i++ {
		for j := i; j > 0 && matched[j].Population > matched[j-1].Population; j-- {
			matched[j], matched[j-1] = matched[j-1], matched[j]
		}
	}

	if len(matched) > limit {
		matched = matched[:limit]
	}
	names := make([]string, len(matched))
	for i, town := range matched {
		names[i] = town.Name
	}
	return names
}
