package communication

import (
	"encoding/json"
	"net/http"
	"strconv"

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

// POST /communications
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var c Communication
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if c.Body == "" {
		http.Error(w, "Body is required", http.StatusBadRequest)
		return
	}
	if c.PhaseID == nil && c.VendorID == nil {
		http.Error(w, "A phase or vendor is required", http.StatusBadRequest)
		return
	}
	if c.Direction == "" {
		c.Direction = DirectionOutbound
	}
	c.TenantID = auth.TenantID(r.Context())
	c.AuthorID = auth.UserID(r.Context())
	if err := h.Repository.Create(h.DB, &c); err != nil {
		http.Error(w, "Failed to save communication", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// GET /phases/{id}/communications
func (h *Handler) ListByPhase(w http.ResponseWriter, r *http.Request) {
	phaseID, _ := strconv.Atoi(mux.Vars(r)["id"])
	list, err := h.Repository.ListByPhase(h.DB, auth.TenantID(r.Context()), uint(phaseID))
	if err != nil {
		http.Error(w, "Failed to list communications", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(list)
}

// GET /vendors/{id}/communications
func (h *Handler) ListByVendor(w http.ResponseWriter, r *http.Request) {
	vendorID, _ := strconv.Atoi(mux.Vars(r)["id"])
	list, err := h.Repository.ListByVendor(h.DB, auth.TenantID(r.Context()), uint(vendorID))
	if err != nil {
		http.Error(w, "Failed to list communications", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(list)
}

// DELETE /communications/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Repository.Delete(h.DB, auth.TenantID(r.Context()), uint(id)); err != nil {
		http.Error(w, "Failed to delete communication", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
