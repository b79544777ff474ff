package rates

import (
	"errors"
	"testing"
)

func TestLookupOrganisationalRate(t *testing.T) {
	rate, err := LookupOrganisationalRate("SE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rate != 108 {
		t.Errorf("expected 108 for SE, got %.0f", rate)
	}
}

func TestLookupRateIsCaseInsensitive(t *testing.T) {
	upper, err := LookupIndividualRate("SE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lower, err := LookupIndividualRate("se")
	if err != nil {
		t.Fatalf("unexpected error for lowercase code: %v", err)
	}
	if upper != lower || upper != 76 {
		t.Errorf("expected 76 for both cases, got %.0f and %.0f", upper, lower)
	}
}

func TestLookupRateUnknownCountry(t *testing.T) {
	_, err := LookupOrganisationalRate("ZZ")
	if err == nil {
		t.Fatal("expected error for unknown country")
	}
	var unknown *UnknownRateError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownRateError, got %T", err)
	}
	if unknown.CountryCode != "ZZ" {
		t.Errorf("expected country code ZZ in error, got %q", unknown.CountryCode)
	}
}

func TestRateTablesCoverSameCountries(t *testing.T) {
	for code := range OrganisationalSupportRates {
		if _, ok := IndividualSupportRates[code]; !ok {
			t.Errorf("country %s has organisational rate but no individual rate", code)
		}
	}
	for code := range IndividualSupportRates {
		if _, ok := OrganisationalSupportRates[code]; !ok {
			t.Errorf("country %s has individual rate but no organisational rate", code)
		}
	}
}

func TestLookupTravelBand(t *testing.T) {
	cases := []struct {
		distance float64
		amount   float64
	}{
		{10, 20},
		{99, 20},
		{100, 180},
		{499, 180},
		{500, 275},
		{650, 275},
		{1999, 275},
		{2000, 360},
		{2999, 360},
		{3000, 530},
		{3999, 530},
		{4000, 820},
		{7999, 820},
		{8000, 1500},
		{15000, 1500},
	}
	for _, c := range cases {
		amount, err := LookupTravelBand(c.distance)
		if err != nil {
			t.Errorf("distance %.0f: unexpected error: %v", c.distance, err)
			continue
		}
		if amount != c.amount {
			t.Errorf("distance %.0f: expected %.0f, got %.0f", c.distance, c.amount, amount)
		}
	}
}

func TestLookupTravelBandBelowFloor(t *testing.T) {
	for _, distance := range []float64{0, 5, 9.9, -100} {
		_, err := LookupTravelBand(distance)
		if err == nil {
			t.Errorf("distance %.1f: expected error, got none", distance)
			continue
		}
		var noBand *NoTravelBandError
		if !errors.As(err, &noBand) {
			t.Errorf("distance %.1f: expected NoTravelBandError, got %T", distance, err)
		}
	}
}

func TestTravelBandsAreContiguous(t *testing.T) {
	for i := 1; i < len(TravelDistanceBands); i++ {
		prev, cur := TravelDistanceBands[i-1], TravelDistanceBands[i]
		if prev.MaxKm+1 != cur.MinKm {
			t.Errorf("gap between band ending %.0f and band starting %.0f", prev.MaxKm, cur.MinKm)
		}
	}
	last := TravelDistanceBands[len(TravelDistanceBands)-1]
	if last.MaxKm >= 0 {
		t.Error("last band must be open-ended")
	}
}
