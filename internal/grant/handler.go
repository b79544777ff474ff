package grant

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/OpenHorizon/pipeline-api/internal/auth"
	"github.com/OpenHorizon/pipeline-api/internal/distance"
	"github.com/OpenHorizon/pipeline-api/internal/project"
	"github.com/OpenHorizon/pipeline-api/internal/rates"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB       *gorm.DB
	Resolver *distance.Resolver
	Projects project.Repository
}

func NewHandler(db *gorm.DB, resolver *distance.Resolver) *Handler {
	return &Handler{
		DB:       db,
		Resolver: resolver,
		Projects: project.NewRepository(),
	}
}

// Calculate runs one grant calculation without touching any project.
// POST /calculator/grant
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var input CalculationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	result, err := h.calculate(input)
	if err != nil {
		writeCalcError(w, err)
		return
	}
	json.NewEncoder(w).Encode(result)
}

// CalculateForProject runs a calculation seeded from a project's own trip
// parameters and stores the total on the project.
// POST /projects/{id}/grant
func (h *Handler) CalculateForProject(w http.ResponseWriter, r *http.Request) {
	tenantID := auth.TenantID(r.Context())
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	p, err := h.Projects.FindByID(h.DB, tenantID, uint(id))
	if err != nil {
		http.Error(w, "Project not found", http.StatusNotFound)
		return
	}

	// The request body may override any trip parameter; fields left at
	// their zero value fall back to the project's own.
	var input CalculationInput
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&input)
	}
	if input.ParticipantCount == 0 {
		input.ParticipantCount = p.ParticipantCount
	}
	if input.ActivityDays == 0 {
		input.ActivityDays = p.ActivityDays
	}
	if input.TravelDays == 0 {
		input.TravelDays = p.TravelDays
	}
	if input.OriginCity == "" {
		input.OriginCity = p.OriginCity
	}
	if input.DestinationCity == "" {
		input.DestinationCity = p.Location
	}
	if input.HostCountryCode == "" {
		input.HostCountryCode = p.HostCountry
	}

	result, err := h.calculate(input)
	if err != nil {
		writeCalcError(w, err)
		return
	}

	if err := h.Projects.SetCalculatedGrant(h.DB, tenantID, p.ID, result.TotalGrant); err != nil {
		http.Error(w, "Failed to save calculated grant", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(result)
}

func (h *Handler) calculate(input CalculationInput) (*CalculationResult, error) {
	km, err := h.Resolver.CityDistance(input.OriginCity, input.DestinationCity)
	if err != nil {
		return nil, err
	}
	return Calculate(input, km)
}

// writeCalcError maps calculation failures onto status codes: malformed
// input is 400, a trip the funding rules cannot price is 422.
func writeCalcError(w http.ResponseWriter, err error) {
	var invalidInput *InvalidInputError
	var unknownCity *distance.UnknownCityError
	var unknownRate *rates.UnknownRateError
	var noBand *rates.NoTravelBandError

	switch {
	case errors.As(err, &invalidInput), errors.As(err, &unknownCity):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &unknownRate), errors.As(err, &noBand):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, "Grant calculation failed", http.StatusInternalServerError)
	}
}
