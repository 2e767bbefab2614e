package kmlstat

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// EarthRadiusKm is the mean Earth radius used for haversine distances.
const EarthRadiusKm = 6371.0

// ParseCoordinates converts KML coordinate text into coordinate pairs.
//
// Tuples are separated by whitespace and fields within a tuple by commas.
// The first two fields are longitude and latitude; altitude and any further
// fields are ignored. A missing or non-numeric field becomes NaN rather than
// failing the whole parse; a value too large for float64 becomes ±Inf.
func ParseCoordinates(text string) []Coordinate {
	tokens := strings.Fields(text)
	coords := make([]Coordinate, 0, len(tokens))
	for _, tok := range tokens {
		fields := strings.Split(tok, ",")
		coords = append(coords, Coordinate{
			Lon: parseField(fields, 0),
			Lat: parseField(fields, 1),
		})
	}
	return coords
}

func parseField(fields []string, i int) float64 {
	if i >= len(fields) {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(fields[i]), 64)
	if errors.Is(err, strconv.ErrRange) {
		return v
	}
	if err != nil {
		return math.NaN()
	}
	return v
}

// Haversine returns the great-circle distance between a and b in kilometers.
func Haversine(a, b Coordinate) float64 {
	dLat := toRadians(b.Lat - a.Lat)
	dLon := toRadians(b.Lon - a.Lon)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(a.Lat))*math.Cos(toRadians(b.Lat))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusKm * c
}

// PathLength returns the total haversine length of the path in kilometers.
// A path with fewer than two coordinates has zero length.
func PathLength(coords []Coordinate) float64 {
	var total float64
	for i := 1; i < len(coords); i++ {
		total += Haversine(coords[i-1], coords[i])
	}
	return total
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
