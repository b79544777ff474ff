package profit

import (
	"encoding/json"
	"net/http"

	"github.com/OpenHorizon/pipeline-api/internal/auth"
	"github.com/OpenHorizon/pipeline-api/internal/expense"
	"github.com/OpenHorizon/pipeline-api/internal/project"
	"gorm.io/gorm"
)

type Handler struct {
	DB       *gorm.DB
	Projects project.Repository
	Expenses *expense.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:       db,
		Projects: project.NewRepository(),
		Expenses: expense.NewRepository(db),
	}
}

type dashboardResponse struct {
	Summary  ProfitSummary `json:"summary"`
	Projects []ProfitData  `json:"projects"`
}

// Dashboard serves the profit table for every non-cancelled project.
// GET /dashboard/profit?sort=profit&order=desc
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	tenantID := auth.TenantID(r.Context())

	projects, err := h.Projects.ListActiveByTenant(h.DB, tenantID)
	if err != nil {
		http.Error(w, "Failed to load projects", http.StatusInternalServerError)
		return
	}

	costs, err := h.Expenses.SumByProject(tenantID)
	if err != nil {
		http.Error(w, "Failed to load expenses", http.StatusInternalServerError)
		return
	}

	items := make([]ProfitData, 0, len(projects))
	for _, p := range projects {
		grant := p.ErasmusGrantCalculated
		if p.ErasmusGrantActual != nil {
			grant = p.ErasmusGrantActual
		}
		items = append(items, Derive(p.ID, p.Name, p.ParticipantCount, grant, costs[p.ID]))
	}

	q := r.URL.Query()
	if field := q.Get("sort"); field != "" {
		Sort(items, field, q.Get("order") == "desc")
	}

	json.NewEncoder(w).Encode(dashboardResponse{
		Summary:  Summarize(items),
		Projects: items,
	})
}
