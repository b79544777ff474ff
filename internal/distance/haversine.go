// Package distance resolves the travel distance between cities, matching
// the European Commission distance calculator methodology (Haversine over
// capital city coordinates, rounded to the nearest km).
package distance

import "math"

const earthRadiusKm = 6371

// Haversine returns the great-circle distance in km between two
// coordinates, rounded to the nearest kilometre.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return math.Round(earthRadiusKm * c)
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
