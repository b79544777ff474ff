package expense

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/OpenHorizon/pipeline-api/internal/auth"
	"github.com/OpenHorizon/pipeline-api/internal/budget"
	"github.com/OpenHorizon/pipeline-api/internal/notification"
	"github.com/OpenHorizon/pipeline-api/internal/phase"
	"github.com/OpenHorizon/pipeline-api/internal/project"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository *Repository
	PhaseRepo  *phase.Repository
	Projects   project.Repository
	Alerts     AlertStore
	Mailer     Notifier
}

func NewHandler(db *gorm.DB, mailer *notification.Mailer) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(db),
		PhaseRepo:  phase.NewRepository(db),
		Projects:   project.NewRepository(),
		Alerts:     budget.NewRepository(db),
		Mailer:     mailer,
	}
}

type createExpenseDTO struct {
	PhaseID     uint    `json:"phaseId"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	ReceiptURL  string  `json:"receiptUrl"`
}

// POST /expenses
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	tenantID := auth.TenantID(r.Context())

	var dto createExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if dto.Amount <= 0 {
		http.Error(w, "Amount must be positive", http.StatusBadRequest)
		return
	}
	if !ValidCategory(dto.Category) {
		http.Error(w, "Unknown category", http.StatusBadRequest)
		return
	}
	if len(dto.Description) < 3 {
		http.Error(w, "Description is required", http.StatusBadRequest)
		return
	}
	date, err := time.Parse("2006-01-02", dto.Date)
	if err != nil {
		http.Error(w, "Invalid date", http.StatusBadRequest)
		return
	}

	ph, err := h.PhaseRepo.FindByID(tenantID, dto.PhaseID)
	if err != nil {
		http.Error(w, "Phase not found", http.StatusNotFound)
		return
	}

	currency := dto.Currency
	if currency == "" {
		currency = "EUR"
	}

	e := Expense{
		TenantID:    tenantID,
		ProjectID:   ph.ProjectID,
		PhaseID:     ph.ID,
		Amount:      dto.Amount,
		Currency:    currency,
		Category:    dto.Category,
		Description: dto.Description,
		Date:        date,
		ReceiptURL:  dto.ReceiptURL,
	}
	if err := h.Repository.Create(&e); err != nil {
		http.Error(w, "Failed to save expense", http.StatusInternalServerError)
		return
	}

	if err := h.PhaseRepo.IncrementSpent(ph.ID, e.Amount); err != nil {
		http.Error(w, "Failed to update phase budget", http.StatusInternalServerError)
		return
	}
	if err := h.Projects.IncrementSpent(h.DB, ph.ProjectID, e.Amount); err != nil {
		http.Error(w, "Failed to update project budget", http.StatusInternalServerError)
		return
	}

	// Re-read the project for the fresh spent total, then evaluate alerts.
	p, err := h.Projects.FindByID(h.DB, tenantID, ph.ProjectID)
	if err == nil {
		checkBudgetAlerts(h.Alerts, h.Mailer, p, time.Now())
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(e)
}

// GET /expenses?projectId=&phaseId=&category=&from=&to=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var filter ListFilter
	q := r.URL.Query()
	if v, err := strconv.Atoi(q.Get("projectId")); err == nil {
		filter.ProjectID = uint(v)
	}
	if v, err := strconv.Atoi(q.Get("phaseId")); err == nil {
		filter.PhaseID = uint(v)
	}
	filter.Category = q.Get("category")
	if t, err := time.Parse("2006-01-02", q.Get("from")); err == nil {
		filter.From = &t
	}
	if t, err := time.Parse("2006-01-02", q.Get("to")); err == nil {
		filter.To = &t
	}

	list, err := h.Repository.List(auth.TenantID(r.Context()), filter)
	if err != nil {
		http.Error(w, "Failed to list expenses", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(list)
}

// GET /expenses/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	e, err := h.Repository.FindByID(auth.TenantID(r.Context()), uint(id))
	if err != nil {
		http.Error(w, "Expense not found", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(e)
}

type updateExpenseDTO struct {
	Amount      *float64 `json:"amount"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	Date        *string  `json:"date"`
	ReceiptURL  *string  `json:"receiptUrl"`
}

// PUT /expenses/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	tenantID := auth.TenantID(r.Context())

	e, err := h.Repository.FindByID(tenantID, uint(id))
	if err != nil {
		http.Error(w, "Expense not found", http.StatusNotFound)
		return
	}

	var dto updateExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	// Adjust the running totals when the amount changes.
	if dto.Amount != nil && *dto.Amount != e.Amount {
		if *dto.Amount <= 0 {
			http.Error(w, "Amount must be positive", http.StatusBadRequest)
			return
		}
		delta := *dto.Amount - e.Amount
		if err := h.PhaseRepo.IncrementSpent(e.PhaseID, delta); err != nil {
			http.Error(w, "Failed to update phase budget", http.StatusInternalServerError)
			return
		}
		if err := h.Projects.IncrementSpent(h.DB, e.ProjectID, delta); err != nil {
			http.Error(w, "Failed to update project budget", http.StatusInternalServerError)
			return
		}
		e.Amount = *dto.Amount
	}
	if dto.Category != nil {
		if !ValidCategory(*dto.Category) {
			http.Error(w, "Unknown category", http.StatusBadRequest)
			return
		}
		e.Category = *dto.Category
	}
	if dto.Description != nil {
		e.Description = *dto.Description
	}
	if dto.Date != nil {
		date, err := time.Parse("2006-01-02", *dto.Date)
		if err != nil {
			http.Error(w, "Invalid date", http.StatusBadRequest)
			return
		}
		e.Date = date
	}
	if dto.ReceiptURL != nil {
		e.ReceiptURL = *dto.ReceiptURL
	}

	if err := h.Repository.Update(e); err != nil {
		http.Error(w, "Failed to update expense", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(e)
}

// DELETE /expenses/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	tenantID := auth.TenantID(r.Context())

	e, err := h.Repository.FindByID(tenantID, uint(id))
	if err != nil {
		http.Error(w, "Expense not found", http.StatusNotFound)
		return
	}

	if err := h.Repository.Delete(tenantID, e.ID); err != nil {
		http.Error(w, "Failed to delete expense", http.StatusInternalServerError)
		return
	}
	if err := h.PhaseRepo.IncrementSpent(e.PhaseID, -e.Amount); err != nil {
		http.Error(w, "Failed to update phase budget", http.StatusInternalServerError)
		return
	}
	if err := h.Projects.IncrementSpent(h.DB, e.ProjectID, -e.Amount); err != nil {
		http.Error(w, "Failed to update project budget", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
