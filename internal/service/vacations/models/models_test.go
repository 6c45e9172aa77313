package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VacationService/internal/domain"
)

func date(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(domain.DateFormat, value)
	require.NoError(t, err)
	return parsed
}

func TestFormatSubstitutions(t *testing.T) {
	tests := []struct {
		name    string
		userIDs []string
		want    string
	}{
		{name: "two users", userIDs: []string{"U2", "U3"}, want: "<U2>, <U3>"},
		{name: "single user", userIDs: []string{"U2"}, want: "<U2>"},
		{name: "blanks filtered", userIDs: []string{"U2", "", "  ", "U3"}, want: "<U2>, <U3>"},
		{name: "empty list", userIDs: []string{}, want: ""},
		{name: "nil list", userIDs: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSubstitutions(tt.userIDs))
		})
	}
}

func TestUserListResponse(t *testing.T) {
	vacations := []*domain.VacationInfo{
		{
			ID:       2,
			UserID:   "U1",
			DateFrom: date(t, "2018-07-01"),
			DateTo:   date(t, "2018-07-05"),
		},
		{
			ID:                  1,
			UserID:              "U1",
			DateFrom:            date(t, "2018-06-16"),
			DateTo:              date(t, "2018-06-18"),
			SubstitutionUserIDs: []string{"U2", "U3"},
		},
	}

	resp := UserListResponse(vacations)

	require.Len(t, resp.Vacations, 2)
	assert.Equal(t, int64(1), resp.Vacations[0].ID)
	assert.Equal(t, "2018-06-16 - 2018-06-18 <U2>, <U3>", resp.Vacations[0].Text)
	assert.Equal(t, int64(2), resp.Vacations[1].ID)
	assert.Equal(t, "2018-07-01 - 2018-07-05 ", resp.Vacations[1].Text)
}

func TestTeamListResponse(t *testing.T) {
	vacations := []*domain.VacationInfo{
		{
			ID:       1,
			UserID:   "U1",
			DateFrom: date(t, "2018-06-16"),
			DateTo:   date(t, "2018-06-18"),
		},
	}

	resp := TeamListResponse(vacations)

	require.Len(t, resp.Vacations, 1)
	assert.Equal(t, "<user:U1> 2018-06-16 - 2018-06-18 ", resp.Vacations[0].Text)
}

func TestVacationListResponse_RenderLines(t *testing.T) {
	resp := &VacationListResponse{Vacations: []VacationView{
		{ID: 1, Text: "<user:U1> 2018-06-16 - 2018-06-18 "},
		{ID: 2, Text: "<user:U2> 2018-07-01 - 2018-07-05 "},
	}}

	assert.Equal(t, "<user:U1> 2018-06-16 - 2018-06-18 \n<user:U2> 2018-07-01 - 2018-07-05 ", resp.RenderLines())

	empty := &VacationListResponse{Vacations: []VacationView{}}
	assert.Equal(t, "", empty.RenderLines())
}

func TestSortedByDateFrom(t *testing.T) {
	vacations := []*domain.VacationInfo{
		{ID: 3, DateFrom: date(t, "2018-07-01")},
		{ID: 2, DateFrom: date(t, "2018-06-16")},
		{ID: 1, DateFrom: date(t, "2018-06-16")},
	}

	sorted := SortedByDateFrom(vacations)

	require.Len(t, sorted, 3)
	// Равные даты упорядочиваются по идентификатору
	assert.Equal(t, int64(1), sorted[0].ID)
	assert.Equal(t, int64(2), sorted[1].ID)
	assert.Equal(t, int64(3), sorted[2].ID)

	// Исходный слайс не модифицируется
	assert.Equal(t, int64(3), vacations[0].ID)
}
