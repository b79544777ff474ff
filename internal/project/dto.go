package project

// CreateProjectDTO is the POST /projects payload. Dates come in as
// RFC 3339 date strings.
type CreateProjectDTO struct {
	Name             string  `json:"name"`
	Type             string  `json:"type"`
	Description      string  `json:"description"`
	StartDate        string  `json:"startDate"`
	EndDate          string  `json:"endDate"`
	BudgetTotal      float64 `json:"budgetTotal"`
	ParticipantCount int     `json:"participantCount"`
	ActivityDays     int     `json:"activityDays"`
	TravelDays       int     `json:"travelDays"`
	Location         string  `json:"location"`
	OriginCity       string  `json:"originCity"`
	HostCountry      string  `json:"hostCountry"`
}

// UpdateProjectDTO carries partial updates; nil fields are left alone.
type UpdateProjectDTO struct {
	Name             *string  `json:"name"`
	Status           *string  `json:"status"`
	Description      *string  `json:"description"`
	StartDate        *string  `json:"startDate"`
	EndDate          *string  `json:"endDate"`
	BudgetTotal      *float64 `json:"budgetTotal"`
	ParticipantCount *int     `json:"participantCount"`
	ActivityDays     *int     `json:"activityDays"`
	TravelDays       *int     `json:"travelDays"`
	Location         *string  `json:"location"`
	OriginCity       *string  `json:"originCity"`
	HostCountry      *string  `json:"hostCountry"`

	ErasmusGrantActual *float64 `json:"erasmusGrantActual"`
	EstimatedCosts     *float64 `json:"estimatedCosts"`
}
