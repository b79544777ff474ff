package grant

import (
	"github.com/OpenHorizon/pipeline-api/internal/rates"
)

// Calculate computes the total grant and its breakdown for the given input
// and an already-resolved travel distance. Pure function of its inputs and
// the static rate tables; no side effects.
func Calculate(input CalculationInput, distanceKm float64) (*CalculationResult, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	orgRate, err := rates.LookupOrganisationalRate(input.HostCountryCode)
	if err != nil {
		return nil, err
	}
	indRate, err := rates.LookupIndividualRate(input.HostCountryCode)
	if err != nil {
		return nil, err
	}
	travelPerParticipant, err := rates.LookupTravelBand(distanceKm)
	if err != nil {
		return nil, err
	}

	participants := float64(input.ParticipantCount)
	totalDays := float64(input.ActivityDays + input.TravelDays)

	organisationalSupport := orgRate * participants * float64(input.ActivityDays)
	individualSupport := indRate * participants * totalDays
	travel := travelPerParticipant * participants

	var greenTravelSupplement float64
	if input.IncludeGreenTravel {
		greenTravelSupplement = GreenTravelSupplementPerParticipant * participants
	}

	inclusionSupport := float64(InclusionSupportPerParticipant * input.ParticipantsWithFewerOpportunities)

	return &CalculationResult{
		OrganisationalSupport: organisationalSupport,
		IndividualSupport:     individualSupport,
		Travel:                travel,
		GreenTravelSupplement: greenTravelSupplement,
		InclusionSupport:      inclusionSupport,
		TotalGrant:            organisationalSupport + individualSupport + travel + greenTravelSupplement + inclusionSupport,
		Breakdown: Breakdown{
			OrganisationalRate: orgRate,
			IndividualRate:     indRate,
			TravelDistance:     distanceKm,
			TravelAmount:       travelPerParticipant,
		},
	}, nil
}

func validate(input CalculationInput) error {
	if input.ParticipantCount <= 0 {
		return &InvalidInputError{Field: "participantCount", Reason: "must be positive"}
	}
	if input.ActivityDays <= 0 {
		return &InvalidInputError{Field: "activityDays", Reason: "must be positive"}
	}
	if input.TravelDays < 0 {
		return &InvalidInputError{Field: "travelDays", Reason: "must not be negative"}
	}
	if input.ParticipantsWithFewerOpportunities < 0 {
		return &InvalidInputError{Field: "participantsWithFewerOpportunities", Reason: "must not be negative"}
	}
	if input.ParticipantsWithFewerOpportunities > input.ParticipantCount {
		return &InvalidInputError{Field: "participantsWithFewerOpportunities", Reason: "exceeds participant count"}
	}
	return nil
}
