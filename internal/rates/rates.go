// Package rates holds the Erasmus+ unit-cost tables from the
// 2024-2027 Programme Guide: organisational and individual support
// per participant per day, keyed by host country, plus the travel
// distance bands. The tables are process-wide constants.
package rates

import "strings"

// OrganisationalSupportRates maps ISO 3166-1 alpha-2 host country codes to
// the organisational support rate in EUR per participant per activity day.
var OrganisationalSupportRates = map[string]float64{
	// Group 1
	"DK": 125, "IS": 125, "IE": 125, "LI": 125, "LU": 125, "NO": 125,
	// Group 2
	"SE": 108, "AT": 104, "FI": 104, "UK": 104,
	// Group 3
	"BE": 99, "FR": 99, "DE": 99, "IT": 99, "NL": 99,
	// Group 4
	"ES": 88, "CY": 88, "GR": 88, "MT": 88, "PT": 88,
	// Group 5
	"SI": 76,
	// Group 6
	"EE": 64, "HR": 64, "LV": 64, "LT": 64, "PL": 64, "SK": 64, "CZ": 64, "HU": 64,
	// Group 7
	"BG": 55, "RO": 55,
	// Partner countries
	"TR": 46, "MK": 34, "RS": 34, "BA": 34, "AL": 34, "ME": 34, "XK": 34,
}

// IndividualSupportRates maps host country codes to the individual support
// rate in EUR per participant per day (activity plus travel days).
var IndividualSupportRates = map[string]float64{
	"DK": 83, "IS": 83, "IE": 83, "LI": 83, "LU": 83, "NO": 83,
	"SE": 76, "AT": 76, "FI": 76, "UK": 76,
	"BE": 69, "FR": 69, "DE": 69, "IT": 69, "NL": 69,
	"ES": 61, "CY": 61, "GR": 61, "MT": 61, "PT": 61,
	"SI": 55,
	"EE": 50, "HR": 50, "LV": 50, "LT": 50, "PL": 50, "SK": 50, "CZ": 50, "HU": 50,
	"BG": 46, "RO": 46,
	"TR": 43, "MK": 41, "RS": 41, "BA": 41, "AL": 41, "ME": 41, "XK": 41,
}

// TravelBand is one distance band of the travel support table. Both ends
// are inclusive; MaxKm < 0 means the band is open-ended.
type TravelBand struct {
	MinKm  float64
	MaxKm  float64
	Amount float64
}

// TravelDistanceBands covers [10, inf) in EUR lump sum per participant
// round trip. Distances below 10 km have no band.
var TravelDistanceBands = []TravelBand{
	{MinKm: 10, MaxKm: 99, Amount: 20},
	{MinKm: 100, MaxKm: 499, Amount: 180},
	{MinKm: 500, MaxKm: 1999, Amount: 275},
	{MinKm: 2000, MaxKm: 2999, Amount: 360},
	{MinKm: 3000, MaxKm: 3999, Amount: 530},
	{MinKm: 4000, MaxKm: 7999, Amount: 820},
	{MinKm: 8000, MaxKm: -1, Amount: 1500},
}

// LookupOrganisationalRate returns the organisational support rate for the
// host country. The lookup is case-insensitive. A country missing from the
// table is an error, never a zero rate.
func LookupOrganisationalRate(countryCode string) (float64, error) {
	code := strings.ToUpper(strings.TrimSpace(countryCode))
	rate, ok := OrganisationalSupportRates[code]
	if !ok {
		return 0, &UnknownRateError{Table: "organisational support", CountryCode: code}
	}
	return rate, nil
}

// LookupIndividualRate returns the individual support rate for the host
// country, case-insensitive on the code.
func LookupIndividualRate(countryCode string) (float64, error) {
	code := strings.ToUpper(strings.TrimSpace(countryCode))
	rate, ok := IndividualSupportRates[code]
	if !ok {
		return 0, &UnknownRateError{Table: "individual support", CountryCode: code}
	}
	return rate, nil
}

// LookupTravelBand returns the travel support amount per participant for
// the given one-way distance. Distances below 10 km (and negative
// distances) have no defined band and are rejected.
func LookupTravelBand(distanceKm float64) (float64, error) {
	for _, band := range TravelDistanceBands {
		if distanceKm >= band.MinKm && (band.MaxKm < 0 || distanceKm <= band.MaxKm) {
			return band.Amount, nil
		}
	}
	return 0, &NoTravelBandError{DistanceKm: distanceKm}
}
