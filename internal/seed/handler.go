package seed

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/OpenHorizon/pipeline-api/internal/auth"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	Repository *Repository
	AI         *AIService
}

func NewHandler(db *gorm.DB, ai *AIService) *Handler {
	return &Handler{Repository: NewRepository(db), AI: ai}
}

// POST /seeds/brainstorm — generate an idea and persist it.
func (h *Handler) Brainstorm(w http.ResponseWriter, r *http.Request) {
	var req BrainstormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	idea, err := h.AI.Brainstorm(req)
	if err != nil {
		http.Error(w, "Brainstorming failed", http.StatusBadGateway)
		return
	}

	s := Seed{
		TenantID:           auth.TenantID(r.Context()),
		CreatedByUserID:    auth.UserID(r.Context()),
		Title:              idea.Title,
		Summary:            idea.Summary,
		TargetGroup:        idea.TargetGroup,
		Activities:         idea.Activities,
		ApprovalLikelihood: idea.ApprovalLikelihood,
	}
	if err := h.Repository.Create(&s); err != nil {
		http.Error(w, "Failed to save seed", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(s)
}

// GET /seeds
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListByTenant(auth.TenantID(r.Context()))
	if err != nil {
		http.Error(w, "Failed to list seeds", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(list)
}

// GET /seeds/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	s, err := h.Repository.FindByID(auth.TenantID(r.Context()), uint(id))
	if err != nil {
		http.Error(w, "Seed not found", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(s)
}

// DELETE /seeds/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Repository.Delete(auth.TenantID(r.Context()), uint(id)); err != nil {
		http.Error(w, "Failed to delete seed", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
