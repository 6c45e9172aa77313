package show_upcoming

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VacationService/internal/api/handlers"
)

type Handler struct {
	service VacationService
	logger  Logger
}

func NewHandler(service VacationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/teams/{teamId}/vacations/upcoming
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	teamID := mux.Vars(r)["teamId"]

	result, err := h.service.ShowAllUpcoming(r.Context(), teamID)
	if err != nil {
		h.logger.Error("GET /vacations/upcoming - Failed to fetch vacations: team_id=%s, error=%v", teamID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /vacations/upcoming - Fetched %d vacations: team_id=%s",
		len(result.Vacations), teamID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
