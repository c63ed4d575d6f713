// Package geo resolves free-text location queries to Bengaluru pincodes and
// scores approximate distances between them. The coordinate and alias tables
// are fixed reference data: coarse relative positions are enough for ranking
// jobs and workers, so no geocoding service is involved.
package geo

import "sort"

// Coordinate is a latitude/longitude pair in degrees.
type Coordinate struct {
	Lat float64
	Lon float64
}

// regionPrefix marks pincodes belonging to the Bengaluru region. Unknown
// pincodes with this prefix fall back to the city centre; everything else is
// treated as unreachable.
const regionPrefix = "56"

var cityCentre = Coordinate{Lat: 12.9716, Lon: 77.5946}

var pincodeCoords = map[string]Coordinate{
	"560038": {12.9719, 77.6412}, // Indiranagar
	"560034": {12.9352, 77.6245}, // Koramangala
	"560066": {12.9698, 77.7500}, // Whitefield
	"560102": {12.9121, 77.6446}, // HSR Layout
	"560041": {12.9250, 77.5938}, // Jayanagar
	"560100": {12.8452, 77.6602}, // Electronic City
	"560003": {13.0031, 77.5643}, // Malleswaram
	"560076": {12.9166, 77.6101}, // BTM Layout
	"560001": {12.9716, 77.5946}, // MG Road / Central Bangalore
}

// areaAliases maps lowercased area names to their canonical pincode. Several
// aliases may share one pincode.
var areaAliases = map[string]string{
	"indiranagar":       "560038",
	"koramangala":       "560034",
	"whitefield":        "560066",
	"hsr layout":        "560102",
	"hsr":               "560102",
	"jayanagar":         "560041",
	"electronic city":   "560100",
	"malleswaram":       "560003",
	"btm layout":        "560076",
	"btm":               "560076",
	"mg road":           "560001",
	"central bangalore": "560001",
}

// aliasNames holds the alias keys in a stable order so fuzzy matching is
// deterministic across runs.
var aliasNames = func() []string {
	names := make([]string, 0, len(areaAliases))
	for name := range areaAliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}()

// KnownPincodes returns the pincodes present in the coordinate table, sorted.
func KnownPincodes() []string {
	pins := make([]string, 0, len(pincodeCoords))
	for pin := range pincodeCoords {
		pins = append(pins, pin)
	}
	sort.Strings(pins)
	return pins
}
