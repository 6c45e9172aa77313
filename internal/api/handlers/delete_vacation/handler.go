package delete_vacation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VacationService/internal/api/handlers"
	"github.com/m04kA/SMC-VacationService/internal/service/vacations"
)

const (
	msgInvalidVacationID = "некорректный идентификатор отпуска"
	msgVacationNotFound  = "отпуск не найден"
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

// Handle DELETE /api/v1/teams/{teamId}/users/{userId}/vacations/{vacationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	teamID := vars["teamId"]
	userID := vars["userId"]

	vacationID, err := strconv.ParseInt(vars["vacationId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /vacations - Invalid vacation id %q: %v", vars["vacationId"], err)
		handlers.RespondBadRequest(w, msgInvalidVacationID)
		return
	}

	result, err := h.service.DeleteVacation(r.Context(), vacationID, userID, teamID)
	if err != nil {
		switch {
		case errors.Is(err, vacations.ErrVacationNotFound):
			h.logger.Warn("DELETE /vacations - Vacation not found: vacation_id=%d", vacationID)
			handlers.RespondNotFound(w, msgVacationNotFound)

		default:
			h.logger.Error("DELETE /vacations - Failed to delete vacation: vacation_id=%d, error=%v",
				vacationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /vacations - Vacation deleted: vacation_id=%d, user_id=%s, team_id=%s",
		vacationID, userID, teamID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
