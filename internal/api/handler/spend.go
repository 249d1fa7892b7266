package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/devclub/sales-dashboard-api/internal/usecases/reporting"
	"github.com/devclub/sales-dashboard-api/pkg/apiErrors"
	"github.com/devclub/sales-dashboard-api/pkg/log"
)

const (
	defaultSpendLookbackDays = 7
	maxSpendLookbackDays     = 90
)

// GetAdSpend lista o investimento por conta de anúncio dos últimos
// lookback_days dias, sem cruzar com receita.
func GetAdSpend(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		lookbackDays := defaultSpendLookbackDays
		if raw := r.URL.Query().Get("lookback_days"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 || parsed > maxSpendLookbackDays {
				logger.WithField("lookback_days", raw).Warn("spend: invalid lookback_days parameter")
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "parâmetro lookback_days inválido", nil)
				return
			}
			lookbackDays = parsed
		}

		logger.WithField("lookback_days", lookbackDays).Info("spend: building ad spend report")

		result, err := service.GetAdSpend(r.Context(), lookbackDays)
		if err != nil {
			logger.WithError(err).Error("spend: failed to build ad spend report")
			writeReportingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("spend: failed to encode response")
		}
	})
}
