package project

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/OpenHorizon/pipeline-api/internal/auth"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func validType(t string) bool {
	switch t {
	case TypeStudentExchange, TypeTraining, TypeConference, TypeCustom:
		return true
	}
	return false
}

func validStatus(s string) bool {
	switch s {
	case StatusPlanning, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// POST /projects
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateProjectDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if dto.Name == "" || !validType(dto.Type) {
		http.Error(w, "Name and a valid type are required", http.StatusBadRequest)
		return
	}
	if dto.ParticipantCount <= 0 {
		http.Error(w, "Participant count must be positive", http.StatusBadRequest)
		return
	}
	start, err := parseDate(dto.StartDate)
	if err != nil {
		http.Error(w, "Invalid start date", http.StatusBadRequest)
		return
	}
	end, err := parseDate(dto.EndDate)
	if err != nil {
		http.Error(w, "Invalid end date", http.StatusBadRequest)
		return
	}

	p := PipelineProject{
		TenantID:         auth.TenantID(r.Context()),
		CreatedByUserID:  auth.UserID(r.Context()),
		Reference:        uuid.NewString(),
		Name:             dto.Name,
		Type:             dto.Type,
		Status:           StatusPlanning,
		Description:      dto.Description,
		StartDate:        start,
		EndDate:          end,
		BudgetTotal:      dto.BudgetTotal,
		ParticipantCount: dto.ParticipantCount,
		ActivityDays:     dto.ActivityDays,
		TravelDays:       dto.TravelDays,
		Location:         dto.Location,
		OriginCity:       dto.OriginCity,
		HostCountry:      dto.HostCountry,
	}
	if err := h.Repository.Create(h.DB, &p); err != nil {
		http.Error(w, "Failed to create project", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(p)
}

// GET /projects
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListByTenant(h.DB, auth.TenantID(r.Context()))
	if err != nil {
		http.Error(w, "Failed to list projects", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(list)
}

// GET /projects/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	p, err := h.Repository.FindByID(h.DB, auth.TenantID(r.Context()), uint(id))
	if err != nil {
		http.Error(w, "Project not found", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(p)
}

// PUT /projects/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	p, err := h.Repository.FindByID(h.DB, auth.TenantID(r.Context()), uint(id))
	if err != nil {
		http.Error(w, "Project not found", http.StatusNotFound)
		return
	}

	var dto UpdateProjectDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if dto.Name != nil {
		p.Name = *dto.Name
	}
	if dto.Status != nil {
		if !validStatus(*dto.Status) {
			http.Error(w, "Unknown status", http.StatusBadRequest)
			return
		}
		p.Status = *dto.Status
	}
	if dto.Description != nil {
		p.Description = *dto.Description
	}
	if dto.StartDate != nil {
		start, err := parseDate(*dto.StartDate)
		if err != nil {
			http.Error(w, "Invalid start date", http.StatusBadRequest)
			return
		}
		p.StartDate = start
	}
	if dto.EndDate != nil {
		end, err := parseDate(*dto.EndDate)
		if err != nil {
			http.Error(w, "Invalid end date", http.StatusBadRequest)
			return
		}
		p.EndDate = end
	}
	if dto.BudgetTotal != nil {
		p.BudgetTotal = *dto.BudgetTotal
	}
	if dto.ParticipantCount != nil {
		if *dto.ParticipantCount <= 0 {
			http.Error(w, "Participant count must be positive", http.StatusBadRequest)
			return
		}
		p.ParticipantCount = *dto.ParticipantCount
	}
	if dto.ActivityDays != nil {
		p.ActivityDays = *dto.ActivityDays
	}
	if dto.TravelDays != nil {
		p.TravelDays = *dto.TravelDays
	}
	if dto.Location != nil {
		p.Location = *dto.Location
	}
	if dto.OriginCity != nil {
		p.OriginCity = *dto.OriginCity
	}
	if dto.HostCountry != nil {
		p.HostCountry = *dto.HostCountry
	}
	if dto.ErasmusGrantActual != nil {
		p.ErasmusGrantActual = dto.ErasmusGrantActual
	}
	if dto.EstimatedCosts != nil {
		p.EstimatedCosts = dto.EstimatedCosts
	}

	if err := h.Repository.Update(h.DB, p); err != nil {
		http.Error(w, "Failed to update project", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(p)
}

// DELETE /projects/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Repository.Delete(h.DB, auth.TenantID(r.Context()), uint(id)); err != nil {
		http.Error(w, "Failed to delete project", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
