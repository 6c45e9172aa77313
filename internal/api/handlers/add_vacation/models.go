package add_vacation

import (
	"time"

	"github.com/m04kA/SMC-VacationService/internal/domain"
	"github.com/m04kA/SMC-VacationService/internal/service/vacations/models"
)

// AddVacationRequest HTTP request model
type AddVacationRequest struct {
	UserID              string   `json:"userId"`
	TeamID              string   `json:"teamId"`
	DateFrom            string   `json:"dateFrom"` // "2018-06-16"
	DateTo              string   `json:"dateTo"`   // "2018-06-18"
	SubstitutionUserIDs []string `json:"substitutionUserIds,omitempty"`
}

// AddVacationResponse HTTP response model
type AddVacationResponse struct {
	Code string `json:"code"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса (с парсингом дат)
func (r *AddVacationRequest) ToServiceRequest() (*models.AddVacationRequest, error) {
	dateFrom, err := time.Parse(domain.DateFormat, r.DateFrom)
	if err != nil {
		return nil, err
	}

	dateTo, err := time.Parse(domain.DateFormat, r.DateTo)
	if err != nil {
		return nil, err
	}

	return &models.AddVacationRequest{
		UserID:              r.UserID,
		TeamID:              r.TeamID,
		DateFrom:            dateFrom,
		DateTo:              dateTo,
		SubstitutionUserIDs: r.SubstitutionUserIDs,
	}, nil
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.AddVacationResponse) *AddVacationResponse {
	return &AddVacationResponse{
		Code: string(resp.Code),
	}
}
