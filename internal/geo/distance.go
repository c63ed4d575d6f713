package geo

import (
	"math"
	"strings"
)

// kmPerDegree approximates one degree of latitude near the equator. Longitude
// degrees shrink with latitude, so they are scaled by the cosine of the city
// centre latitude. Valid only for the small regional extent the table covers.
const kmPerDegree = 111.0

var kmPerLonDegree = kmPerDegree * math.Cos(cityCentre.Lat*math.Pi/180)

// Coordinates returns the coordinate for a pincode. Pincodes missing from the
// table but carrying the regional prefix resolve to the city centre; anything
// else is unknown.
func Coordinates(pincode string) (Coordinate, bool) {
	if c, ok := pincodeCoords[pincode]; ok {
		return c, true
	}
	if pincode != "" && strings.HasPrefix(pincode, regionPrefix) {
		return cityCentre, true
	}
	return Coordinate{}, false
}

// DistanceKm returns the approximate planar distance between two pincodes in
// kilometres. If either pincode is unknown the result is +Inf, which sorts
// last and is excluded by any finite radius filter.
func DistanceKm(a, b string) float64 {
	ca, ok := Coordinates(a)
	if !ok {
		return math.Inf(1)
	}
	cb, ok := Coordinates(b)
	if !ok {
		return math.Inf(1)
	}

	latKm := (ca.Lat - cb.Lat) * kmPerDegree
	lonKm := (ca.Lon - cb.Lon) * kmPerLonDegree

	return math.Hypot(latKm, lonKm)
}
