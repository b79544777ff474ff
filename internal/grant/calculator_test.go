package grant

import (
	"errors"
	"testing"

	"github.com/OpenHorizon/pipeline-api/internal/rates"
)

func validInput() CalculationInput {
	return CalculationInput{
		ParticipantCount:                   20,
		ActivityDays:                       7,
		TravelDays:                         2,
		HostCountryCode:                    "SE",
		IncludeGreenTravel:                 false,
		ParticipantsWithFewerOpportunities: 3,
	}
}

// Worked example for a Swedish youth exchange: 20 participants, 7 activity
// days, 2 travel days, 650 km, 3 participants with fewer opportunities.
func TestCalculateSwedenExample(t *testing.T) {
	result, err := Calculate(validInput(), 650)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.OrganisationalSupport != 15120 {
		t.Errorf("organisational support: expected 15120, got %.2f", result.OrganisationalSupport)
	}
	if result.IndividualSupport != 13680 {
		t.Errorf("individual support: expected 13680, got %.2f", result.IndividualSupport)
	}
	if result.Travel != 5500 {
		t.Errorf("travel: expected 5500, got %.2f", result.Travel)
	}
	if result.GreenTravelSupplement != 0 {
		t.Errorf("green travel: expected 0, got %.2f", result.GreenTravelSupplement)
	}
	if result.InclusionSupport != 375 {
		t.Errorf("inclusion support: expected 375, got %.2f", result.InclusionSupport)
	}
	if result.TotalGrant != 34675 {
		t.Errorf("total grant: expected 34675, got %.2f", result.TotalGrant)
	}
}

func TestCalculateTotalIsSumOfComponents(t *testing.T) {
	input := validInput()
	input.IncludeGreenTravel = true
	result, err := Calculate(input, 1200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sum := result.OrganisationalSupport + result.IndividualSupport + result.Travel +
		result.GreenTravelSupplement + result.InclusionSupport
	if result.TotalGrant != sum {
		t.Errorf("total %.2f does not equal component sum %.2f", result.TotalGrant, sum)
	}
	if result.GreenTravelSupplement != 50*20 {
		t.Errorf("green travel: expected 1000, got %.2f", result.GreenTravelSupplement)
	}
}

func TestCalculateBreakdownRecordsRates(t *testing.T) {
	result, err := Calculate(validInput(), 650)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := result.Breakdown
	if b.OrganisationalRate != 108 || b.IndividualRate != 76 {
		t.Errorf("expected rates 108/76, got %.0f/%.0f", b.OrganisationalRate, b.IndividualRate)
	}
	if b.TravelDistance != 650 || b.TravelAmount != 275 {
		t.Errorf("expected distance 650 and band 275, got %.0f and %.0f", b.TravelDistance, b.TravelAmount)
	}
}

func TestCalculateUnknownHostCountry(t *testing.T) {
	input := validInput()
	input.HostCountryCode = "XX"
	_, err := Calculate(input, 650)
	var unknown *rates.UnknownRateError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownRateError, got %v", err)
	}
}

func TestCalculateDistanceBelowFloor(t *testing.T) {
	_, err := Calculate(validInput(), 5)
	var noBand *rates.NoTravelBandError
	if !errors.As(err, &noBand) {
		t.Fatalf("expected NoTravelBandError, got %v", err)
	}
}

func TestCalculateRejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CalculationInput)
	}{
		{"zero participants", func(i *CalculationInput) { i.ParticipantCount = 0 }},
		{"negative participants", func(i *CalculationInput) { i.ParticipantCount = -3 }},
		{"zero activity days", func(i *CalculationInput) { i.ActivityDays = 0 }},
		{"negative travel days", func(i *CalculationInput) { i.TravelDays = -1 }},
		{"negative fewer opportunities", func(i *CalculationInput) { i.ParticipantsWithFewerOpportunities = -1 }},
		{"fewer opportunities above participants", func(i *CalculationInput) { i.ParticipantsWithFewerOpportunities = 21 }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			input := validInput()
			c.mutate(&input)
			_, err := Calculate(input, 650)
			var invalid *InvalidInputError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected InvalidInputError, got %v", err)
			}
		})
	}
}

func TestCalculateZeroTravelDaysAllowed(t *testing.T) {
	input := validInput()
	input.TravelDays = 0
	result, err := Calculate(input, 650)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Individual support covers activity days only when there is no travel.
	if result.IndividualSupport != 76*20*7 {
		t.Errorf("expected %.0f, got %.2f", float64(76*20*7), result.IndividualSupport)
	}
}
