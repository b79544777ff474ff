package rates

import "fmt"

// UnknownRateError is returned when a country code is absent from a rate
// table. Distinguishable from a legitimate zero subsidy.
type UnknownRateError struct {
	Table       string
	CountryCode string
}

func (e *UnknownRateError) Error() string {
	return fmt.Sprintf("no %s rate for country code %q", e.Table, e.CountryCode)
}

// NoTravelBandError is returned when a distance falls outside every travel
// band, i.e. below the 10 km floor or negative.
type NoTravelBandError struct {
	DistanceKm float64
}

func (e *NoTravelBandError) Error() string {
	return fmt.Sprintf("no travel band for distance %.0f km", e.DistanceKm)
}
