package show_active

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VacationService/internal/api/handlers"
	"github.com/m04kA/SMC-VacationService/internal/domain"
)

const msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"

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

// Handle GET /api/v1/teams/{teamId}/vacations/active?date=YYYY-MM-DD
// Без параметра date используется текущий день
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	teamID := mux.Vars(r)["teamId"]

	date := domain.ToDate(time.Now())
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /vacations/active - Invalid date %q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = parsed
	}

	result, err := h.service.ShowActiveOn(r.Context(), teamID, date)
	if err != nil {
		h.logger.Error("GET /vacations/active - Failed to fetch vacations: team_id=%s, error=%v", teamID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /vacations/active - Fetched %d vacations: team_id=%s, date=%s",
		len(result.Vacations), teamID, date.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusOK, result)
}
