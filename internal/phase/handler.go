package phase

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
	Repository *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository(db)}
}

// POST /projects/{id}/phases
func (h *Handler) CreateForProject(w http.ResponseWriter, r *http.Request) {
	projectID, _ := strconv.Atoi(mux.Vars(r)["id"])
	var p Phase
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if p.Name == "" || p.Type == "" {
		http.Error(w, "Name and type are required", http.StatusBadRequest)
		return
	}
	if p.BudgetAllocated < 0 {
		http.Error(w, "Allocated budget must not be negative", http.StatusBadRequest)
		return
	}
	p.ProjectID = uint(projectID)
	p.TenantID = auth.TenantID(r.Context())
	if err := h.Repository.Create(&p); err != nil {
		http.Error(w, "Failed to create phase", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(p)
}

// GET /projects/{id}/phases
func (h *Handler) ListByProject(w http.ResponseWriter, r *http.Request) {
	projectID, _ := strconv.Atoi(mux.Vars(r)["id"])
	list, err := h.Repository.ListByProject(auth.TenantID(r.Context()), uint(projectID))
	if err != nil {
		http.Error(w, "Failed to list phases", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(list)
}

// GET /phases/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	p, err := h.Repository.FindByID(auth.TenantID(r.Context()), uint(id))
	if err != nil {
		http.Error(w, "Phase not found", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(p)
}

// PUT /phases/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	existing, err := h.Repository.FindByID(auth.TenantID(r.Context()), uint(id))
	if err != nil {
		http.Error(w, "Phase not found", http.StatusNotFound)
		return
	}
	var p Phase
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	p.ID = existing.ID
	p.TenantID = existing.TenantID
	p.ProjectID = existing.ProjectID
	p.BudgetSpent = existing.BudgetSpent // adjusted only through expenses
	if err := h.Repository.Update(&p); err != nil {
		http.Error(w, "Failed to update phase", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(p)
}

// DELETE /phases/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Repository.Delete(auth.TenantID(r.Context()), uint(id)); err != nil {
		http.Error(w, "Failed to delete phase", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
