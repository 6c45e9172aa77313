package delete_vacation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VacationService/internal/service/vacations"
	"github.com/m04kA/SMC-VacationService/internal/service/vacations/models"
)

type deleteCall struct {
	vacationID int64
	userID     string
	teamID     string
}

type fakeService struct {
	lastCall *deleteCall
	resp     *models.VacationListResponse
	err      error
}

func (s *fakeService) DeleteVacation(_ context.Context, vacationID int64, userID, teamID string) (*models.VacationListResponse, error) {
	s.lastCall = &deleteCall{vacationID: vacationID, userID: userID, teamID: teamID}
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, service *fakeService, vacationID string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(service, noopLogger{})

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/teams/{teamId}/users/{userId}/vacations/{vacationId}", handler.Handle).
		Methods(http.MethodDelete)

	url := fmt.Sprintf("/api/v1/teams/T1/users/U1/vacations/%s", vacationID)
	req := httptest.NewRequest(http.MethodDelete, url, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestHandle_Success(t *testing.T) {
	service := &fakeService{resp: &models.VacationListResponse{
		Vacations: []models.VacationView{
			{ID: 2, Text: "2018-06-20 - 2018-06-25 "},
		},
	}}

	rec := doRequest(t, service, "1")

	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, service.lastCall)
	assert.Equal(t, int64(1), service.lastCall.vacationID)
	assert.Equal(t, "U1", service.lastCall.userID)
	assert.Equal(t, "T1", service.lastCall.teamID)

	var resp models.VacationListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Vacations, 1)
	assert.Equal(t, "2018-06-20 - 2018-06-25 ", resp.Vacations[0].Text)
}

func TestHandle_InvalidVacationID(t *testing.T) {
	service := &fakeService{}

	rec := doRequest(t, service, "abc")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, service.lastCall)
}

func TestHandle_NotFound(t *testing.T) {
	service := &fakeService{err: vacations.ErrVacationNotFound}

	rec := doRequest(t, service, "42")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	service := &fakeService{err: errors.New("connection refused")}

	rec := doRequest(t, service, "1")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
