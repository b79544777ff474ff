package export

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/OpenHorizon/pipeline-api/internal/auth"
	"github.com/OpenHorizon/pipeline-api/internal/expense"
	"github.com/OpenHorizon/pipeline-api/internal/phase"
	"github.com/OpenHorizon/pipeline-api/internal/project"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB        *gorm.DB
	Projects  project.Repository
	PhaseRepo *phase.Repository
	Expenses  *expense.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:        db,
		Projects:  project.NewRepository(),
		PhaseRepo: phase.NewRepository(db),
		Expenses:  expense.NewRepository(db),
	}
}

// ExportProject streams the project report workbook.
// GET /projects/{id}/export
func (h *Handler) ExportProject(w http.ResponseWriter, r *http.Request) {
	tenantID := auth.TenantID(r.Context())
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	p, err := h.Projects.FindByID(h.DB, tenantID, uint(id))
	if err != nil {
		http.Error(w, "Project not found", http.StatusNotFound)
		return
	}
	phases, err := h.PhaseRepo.ListByProject(tenantID, p.ID)
	if err != nil {
		http.Error(w, "Failed to load phases", http.StatusInternalServerError)
		return
	}
	expenses, err := h.Expenses.List(tenantID, expense.ListFilter{ProjectID: p.ID})
	if err != nil {
		http.Error(w, "Failed to load expenses", http.StatusInternalServerError)
		return
	}

	f, err := BuildWorkbook(p, phases, expenses)
	if err != nil {
		http.Error(w, "Failed to build report", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=project-%s.xlsx", p.Reference))
	if err := f.Write(w); err != nil {
		log.Printf("failed to stream project export %d: %v", p.ID, err)
	}
}
