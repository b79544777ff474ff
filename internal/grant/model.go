// Package grant computes the Erasmus+ mobility grant for a project:
// organisational and individual support, distance-banded travel support
// and the green travel and inclusion supplements.
package grant

// Flat supplements from the Programme Guide, EUR per participant.
const (
	GreenTravelSupplementPerParticipant = 50
	InclusionSupportPerParticipant      = 125
)

// CalculationInput carries the trip parameters for one grant calculation.
// Origin and destination cities are only used to resolve the travel
// distance; the host country selects the rate tables.
type CalculationInput struct {
	ParticipantCount                   int    `json:"participantCount"`
	ActivityDays                       int    `json:"activityDays"`
	TravelDays                         int    `json:"travelDays"`
	OriginCity                         string `json:"originCity"`
	DestinationCity                    string `json:"destinationCity"`
	HostCountryCode                    string `json:"hostCountryCode"`
	IncludeGreenTravel                 bool   `json:"includeGreenTravel"`
	ParticipantsWithFewerOpportunities int    `json:"participantsWithFewerOpportunities"`
}

// Breakdown records the rates and distance a calculation used, for
// auditability and display.
type Breakdown struct {
	OrganisationalRate float64 `json:"organisationalRate"`
	IndividualRate     float64 `json:"individualRate"`
	TravelDistance     float64 `json:"travelDistance"`
	TravelAmount       float64 `json:"travelAmount"`
}

// CalculationResult is the itemized grant. TotalGrant is always the exact
// sum of the five components; nothing is rounded before display.
type CalculationResult struct {
	OrganisationalSupport float64   `json:"organisationalSupport"`
	IndividualSupport     float64   `json:"individualSupport"`
	Travel                float64   `json:"travel"`
	GreenTravelSupplement float64   `json:"greenTravelSupplement"`
	InclusionSupport      float64   `json:"inclusionSupport"`
	TotalGrant            float64   `json:"totalGrant"`
	Breakdown             Breakdown `json:"breakdown"`
}
