package models

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/m04kA/SMC-VacationService/internal/domain"
)

// Request модели

// AddVacationRequest запрос на добавление отпуска
type AddVacationRequest struct {
	UserID              string
	TeamID              string
	DateFrom            time.Time
	DateTo              time.Time
	SubstitutionUserIDs []string
}

// Response модели

// AddVacationResponse результат добавления отпуска
// Code содержит символьный код результата, включая коды отклонения валидацией
type AddVacationResponse struct {
	Code domain.ReasonCode `json:"code"`
}

// VacationView строка представления отпуска для вывода в чат
type VacationView struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

// VacationListResponse список строк представления
type VacationListResponse struct {
	Vacations []VacationView `json:"vacations"`
}

// Методы конвертации

// UserListResponse строит представление списка для владельца записей:
// без префикса пользователя, отсортировано по дате начала
func UserListResponse(vacations []*domain.VacationInfo) *VacationListResponse {
	sorted := SortedByDateFrom(vacations)

	resp := &VacationListResponse{Vacations: make([]VacationView, 0, len(sorted))}
	for _, v := range sorted {
		resp.Vacations = append(resp.Vacations, VacationView{
			ID: v.ID,
			Text: fmt.Sprintf("%s - %s %s",
				v.DateFrom.Format(domain.DateFormat),
				v.DateTo.Format(domain.DateFormat),
				FormatSubstitutions(v.SubstitutionUserIDs)),
		})
	}
	return resp
}

// TeamListResponse строит представление списка для командного канала:
// каждая строка начинается с упоминания пользователя
func TeamListResponse(vacations []*domain.VacationInfo) *VacationListResponse {
	sorted := SortedByDateFrom(vacations)

	resp := &VacationListResponse{Vacations: make([]VacationView, 0, len(sorted))}
	for _, v := range sorted {
		resp.Vacations = append(resp.Vacations, VacationView{
			ID: v.ID,
			Text: fmt.Sprintf("<user:%s> %s - %s %s",
				v.UserID,
				v.DateFrom.Format(domain.DateFormat),
				v.DateTo.Format(domain.DateFormat),
				FormatSubstitutions(v.SubstitutionUserIDs)),
		})
	}
	return resp
}

// RenderLines склеивает строки представления в один текст сообщения
func (r *VacationListResponse) RenderLines() string {
	lines := make([]string, 0, len(r.Vacations))
	for _, v := range r.Vacations {
		lines = append(lines, v.Text)
	}
	return strings.Join(lines, "\n")
}

// FormatSubstitutions строит список упоминаний замещающих пользователей
// Пустые идентификаторы отфильтровываются; пустой список даёт пустую строку
func FormatSubstitutions(userIDs []string) string {
	mentions := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		if strings.TrimSpace(id) == "" {
			continue
		}
		mentions = append(mentions, fmt.Sprintf("<%s>", id))
	}
	return strings.Join(mentions, ", ")
}

// SortedByDateFrom возвращает копию списка, отсортированную по дате начала
// При равных датах порядок определяется идентификатором - повторные чтения
// дают идентичный результат
func SortedByDateFrom(vacations []*domain.VacationInfo) []*domain.VacationInfo {
	sorted := make([]*domain.VacationInfo, len(vacations))
	copy(sorted, vacations)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].DateFrom.Equal(sorted[j].DateFrom) {
			return sorted[i].ID < sorted[j].ID
		}
		return sorted[i].DateFrom.Before(sorted[j].DateFrom)
	})

	return sorted
}
