package budget

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/OpenHorizon/pipeline-api/internal/auth"
	"github.com/OpenHorizon/pipeline-api/internal/phase"
	"github.com/OpenHorizon/pipeline-api/internal/project"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository *Repository
	Projects   project.Repository
	PhaseRepo  *phase.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(db),
		Projects:   project.NewRepository(),
		PhaseRepo:  phase.NewRepository(db),
	}
}

// GET /projects/{id}/budget
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	projectID, _ := strconv.Atoi(mux.Vars(r)["id"])
	tenantID := auth.TenantID(r.Context())

	p, err := h.Projects.FindByID(h.DB, tenantID, uint(projectID))
	if err != nil {
		http.Error(w, "Project not found", http.StatusNotFound)
		return
	}
	phases, err := h.PhaseRepo.ListByProject(tenantID, p.ID)
	if err != nil {
		http.Error(w, "Failed to load phases", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(BuildSummary(p, phases))
}

type createAlertDTO struct {
	Threshold       float64  `json:"threshold"`
	EmailRecipients []string `json:"emailRecipients"`
	Enabled         *bool    `json:"enabled"`
}

// POST /projects/{id}/alerts
func (h *Handler) CreateAlert(w http.ResponseWriter, r *http.Request) {
	projectID, _ := strconv.Atoi(mux.Vars(r)["id"])
	tenantID := auth.TenantID(r.Context())

	if _, err := h.Projects.FindByID(h.DB, tenantID, uint(projectID)); err != nil {
		http.Error(w, "Project not found", http.StatusNotFound)
		return
	}

	var dto createAlertDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if dto.Threshold <= 0 || dto.Threshold > 200 {
		http.Error(w, "Threshold must be between 0 and 200", http.StatusBadRequest)
		return
	}
	if len(dto.EmailRecipients) == 0 {
		http.Error(w, "At least one recipient is required", http.StatusBadRequest)
		return
	}

	enabled := true
	if dto.Enabled != nil {
		enabled = *dto.Enabled
	}

	a := Alert{
		TenantID:        tenantID,
		ProjectID:       uint(projectID),
		Threshold:       dto.Threshold,
		EmailRecipients: strings.Join(dto.EmailRecipients, ","),
		Enabled:         enabled,
	}
	if err := h.Repository.Create(&a); err != nil {
		http.Error(w, "Failed to create alert", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(a)
}

// GET /projects/{id}/alerts
func (h *Handler) ListAlerts(w http.ResponseWriter, r *http.Request) {
	projectID, _ := strconv.Atoi(mux.Vars(r)["id"])
	list, err := h.Repository.ListByProject(auth.TenantID(r.Context()), uint(projectID))
	if err != nil {
		http.Error(w, "Failed to list alerts", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(list)
}

type updateAlertDTO struct {
	Threshold       *float64 `json:"threshold"`
	EmailRecipients []string `json:"emailRecipients"`
	Enabled         *bool    `json:"enabled"`
}

// PUT /alerts/{id}
func (h *Handler) UpdateAlert(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	a, err := h.Repository.FindByID(auth.TenantID(r.Context()), uint(id))
	if err != nil {
		http.Error(w, "Alert not found", http.StatusNotFound)
		return
	}

	var dto updateAlertDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if dto.Threshold != nil {
		if *dto.Threshold <= 0 || *dto.Threshold > 200 {
			http.Error(w, "Threshold must be between 0 and 200", http.StatusBadRequest)
			return
		}
		a.Threshold = *dto.Threshold
	}
	if dto.EmailRecipients != nil {
		a.EmailRecipients = strings.Join(dto.EmailRecipients, ",")
	}
	if dto.Enabled != nil {
		a.Enabled = *dto.Enabled
	}

	if err := h.Repository.Update(a); err != nil {
		http.Error(w, "Failed to update alert", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(a)
}

// DELETE /alerts/{id}
func (h *Handler) DeleteAlert(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Repository.Delete(auth.TenantID(r.Context()), uint(id)); err != nil {
		http.Error(w, "Failed to delete alert", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
