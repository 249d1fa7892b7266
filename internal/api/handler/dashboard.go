package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/devclub/sales-dashboard-api/internal/domain"
	"github.com/devclub/sales-dashboard-api/internal/usecases/reporting"
	"github.com/devclub/sales-dashboard-api/pkg/apiErrors"
	"github.com/devclub/sales-dashboard-api/pkg/log"
	"github.com/devclub/sales-dashboard-api/pkg/utils"
)

// parseWindow extrai uma janela de datas obrigatória da query string,
// usando os nomes de parâmetro informados.
func parseWindow(r *http.Request, startParam, endParam string) (*domain.ReportFilters, error) {
	startRaw := r.URL.Query().Get(startParam)
	endRaw := r.URL.Query().Get(endParam)

	if startRaw == "" || endRaw == "" {
		return nil, errors.Errorf("parâmetros %s e %s são obrigatórios", startParam, endParam)
	}

	startDate, err := utils.ParseDate(startRaw)
	if err != nil {
		return nil, errors.Wrapf(err, "parâmetro %s inválido", startParam)
	}

	endDate, err := utils.ParseDate(endRaw)
	if err != nil {
		return nil, errors.Wrapf(err, "parâmetro %s inválido", endParam)
	}

	if startDate.After(*endDate) {
		return nil, errors.Errorf("%s não pode ser posterior a %s", startParam, endParam)
	}

	return &domain.ReportFilters{StartDate: startDate, EndDate: endDate}, nil
}

func parseGranularity(raw string) (domain.Granularity, error) {
	switch domain.Granularity(raw) {
	case "":
		return domain.GranularityDay, nil
	case domain.GranularityHourOfDay, domain.GranularityDay, domain.GranularityMonth:
		return domain.Granularity(raw), nil
	default:
		return "", errors.Errorf("granularidade inválida: %s", raw)
	}
}

// writeReportingError mapeia os erros do motor para as respostas da API:
// ciclo substituído vira 409, validação vira 400, o resto vira 500.
func writeReportingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, reporting.ErrRequestSuperseded):
		apiErrors.WriteError(w, apiErrors.ErrRequestSuperseded, "Requisição substituída por outra mais recente", nil)
	case reporting.IsValidationError(err):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar o relatório", nil)
	}
}

func GetSalesDashboard(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseWindow(r, "start_date", "end_date")
		if err != nil {
			logger.WithError(err).Warn("dashboard: invalid window parameters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		granularity, err := parseGranularity(r.URL.Query().Get("granularity"))
		if err != nil {
			logger.WithError(err).Warn("dashboard: invalid granularity parameter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}
		filters.Granularity = granularity

		logger.WithFields(log.Fields{
			"start_date":  filters.StartDate.Format(time.DateOnly),
			"end_date":    filters.EndDate.Format(time.DateOnly),
			"granularity": string(filters.Granularity),
		}).Info("dashboard: building sales report")

		result, err := service.GetSalesDashboard(r.Context(), filters)
		if err != nil {
			logger.WithError(err).Error("dashboard: failed to build sales report")
			writeReportingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("dashboard: failed to encode response")
		}
	})
}
