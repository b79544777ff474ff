package quote

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/OpenHorizon/pipeline-api/internal/auth"
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

// POST /phases/{id}/quotes
func (h *Handler) CreateForPhase(w http.ResponseWriter, r *http.Request) {
	phaseID, _ := strconv.Atoi(mux.Vars(r)["id"])
	var q Quote
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if q.Amount <= 0 {
		http.Error(w, "Amount must be positive", http.StatusBadRequest)
		return
	}
	q.PhaseID = uint(phaseID)
	q.TenantID = auth.TenantID(r.Context())
	if q.Status == "" {
		q.Status = StatusPending
	}
	if err := h.Repository.Create(h.DB, &q); err != nil {
		http.Error(w, "Failed to save quote", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(q)
}

// GET /phases/{id}/quotes
func (h *Handler) ListByPhase(w http.ResponseWriter, r *http.Request) {
	phaseID, _ := strconv.Atoi(mux.Vars(r)["id"])
	list, err := h.Repository.ListByPhase(h.DB, auth.TenantID(r.Context()), uint(phaseID))
	if err != nil {
		http.Error(w, "Failed to list quotes", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(list)
}

// GET /vendors/{id}/quotes
func (h *Handler) ListByVendor(w http.ResponseWriter, r *http.Request) {
	vendorID, _ := strconv.Atoi(mux.Vars(r)["id"])
	list, err := h.Repository.ListByVendor(h.DB, auth.TenantID(r.Context()), uint(vendorID))
	if err != nil {
		http.Error(w, "Failed to list quotes", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(list)
}

type statusRequest struct {
	Status string `json:"status"`
}

// PUT /quotes/{id}/status
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	switch req.Status {
	case StatusPending, StatusReceived, StatusAccepted, StatusRejected:
	default:
		http.Error(w, "Unknown status", http.StatusBadRequest)
		return
	}

	q, err := h.Repository.FindByID(h.DB, auth.TenantID(r.Context()), uint(id))
	if err != nil {
		http.Error(w, "Quote not found", http.StatusNotFound)
		return
	}

	q.Status = req.Status
	if req.Status == StatusReceived && q.ReceivedAt == nil {
		now := time.Now()
		q.ReceivedAt = &now
	}
	if err := h.Repository.Update(h.DB, q); err != nil {
		http.Error(w, "Failed to update quote", http.StatusInternalServerError)
		return
	}

	// Accepting one offer closes the others on the phase.
	if req.Status == StatusAccepted {
		if err := h.Repository.RejectSiblings(h.DB, q.PhaseID, q.ID); err != nil {
			http.Error(w, "Failed to reject sibling quotes", http.StatusInternalServerError)
			return
		}
	}
	json.NewEncoder(w).Encode(q)
}

// DELETE /quotes/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Repository.Delete(h.DB, auth.TenantID(r.Context()), uint(id)); err != nil {
		http.Error(w, "Failed to delete quote", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
