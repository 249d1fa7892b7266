package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/devclub/sales-dashboard-api/internal/usecases/reporting"
	"github.com/devclub/sales-dashboard-api/pkg/apiErrors"
	"github.com/devclub/sales-dashboard-api/pkg/log"
	"github.com/devclub/sales-dashboard-api/pkg/utils"
)

// GetWeeklyROI calcula o retorno da semana de vendas iniciada em week_start.
// Qualquer data dentro da semana serve: o serviço normaliza para a segunda-feira.
func GetWeeklyROI(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		weekStartRaw := r.URL.Query().Get("week_start")
		if weekStartRaw == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "parâmetro week_start é obrigatório", nil)
			return
		}

		weekStart, err := utils.ParseDate(weekStartRaw)
		if err != nil {
			logger.WithFields(log.Fields{
				"week_start": weekStartRaw,
				"error":      err.Error(),
			}).Warn("roi: invalid week_start parameter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "parâmetro week_start inválido", nil)
			return
		}

		logger.WithField("week_start", weekStart.Format(time.DateOnly)).Info("roi: building weekly ROI report")

		result, err := service.GetWeeklyROI(r.Context(), *weekStart)
		if err != nil {
			logger.WithError(err).Error("roi: failed to build weekly ROI report")
			writeReportingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("roi: failed to encode response")
		}
	})
}
