package show_vacations

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VacationService/internal/api/handlers"
)

const msgMissingPathParams = "не указаны userId или teamId"

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

// Handle GET /api/v1/teams/{teamId}/users/{userId}/vacations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	teamID := vars["teamId"]
	userID := vars["userId"]

	if teamID == "" || userID == "" {
		h.logger.Warn("GET /vacations - Missing path params: team_id=%q, user_id=%q", teamID, userID)
		handlers.RespondBadRequest(w, msgMissingPathParams)
		return
	}

	result, err := h.service.ShowVacationsForUser(r.Context(), userID, teamID)
	if err != nil {
		h.logger.Error("GET /vacations - Failed to fetch vacations: user_id=%s, team_id=%s, error=%v",
			userID, teamID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /vacations - Fetched %d vacations: user_id=%s, team_id=%s",
		len(result.Vacations), userID, teamID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
