package add_vacation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VacationService/internal/api/handlers"
	"github.com/m04kA/SMC-VacationService/internal/service/vacations"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "не заполнены обязательные поля запроса"
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

// Handle POST /api/v1/vacations
// Отклонение валидацией периода не является ошибкой HTTP: код причины
// возвращается в теле ответа со статусом 200
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AddVacationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /vacations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /vacations - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.AddVacation(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, vacations.ErrInvalidInput):
			h.logger.Warn("POST /vacations - Invalid input: user_id=%s, team_id=%s: %v", req.UserID, req.TeamID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /vacations - Failed to add vacation: user_id=%s, team_id=%s, error=%v",
				req.UserID, req.TeamID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /vacations - Completed with code=%s: user_id=%s, team_id=%s",
		result.Code, req.UserID, req.TeamID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
