package domain

import "time"

// ReportFilters delimita a janela de um relatório (datas inclusivas)
type ReportFilters struct {
	StartDate   *time.Time  `json:"start_date"`
	EndDate     *time.Time  `json:"end_date"`
	Granularity Granularity `json:"granularity"`
}

// DayCount conta os dias de calendário cobertos pela janela, inclusivo nas
// duas pontas. Janela inválida conta 0.
func (f *ReportFilters) DayCount() int {
	if f == nil || f.StartDate == nil || f.EndDate == nil || f.StartDate.After(*f.EndDate) {
		return 0
	}

	start := time.Date(f.StartDate.Year(), f.StartDate.Month(), f.StartDate.Day(), 0, 0, 0, 0, f.StartDate.Location())
	end := time.Date(f.EndDate.Year(), f.EndDate.Month(), f.EndDate.Day(), 0, 0, 0, 0, f.EndDate.Location())

	return int(end.Sub(start).Hours()/24) + 1
}

// SingleDay indica uma janela de exatamente um dia de calendário
func (f *ReportFilters) SingleDay() bool {
	return f.DayCount() == 1
}
