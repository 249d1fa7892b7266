package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/devclub/sales-dashboard-api/internal/usecases/reporting"
	"github.com/devclub/sales-dashboard-api/pkg/apiErrors"
	"github.com/devclub/sales-dashboard-api/pkg/log"
)

// GetComparative compara duas janelas de vendas. As janelas chegam na query
// string como first_start/first_end e second_start/second_end e precisam
// cobrir o mesmo número de dias, exceto no modo dia-contra-dia.
func GetComparative(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		first, err := parseWindow(r, "first_start", "first_end")
		if err != nil {
			logger.WithError(err).Warn("comparative: invalid first window")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		second, err := parseWindow(r, "second_start", "second_end")
		if err != nil {
			logger.WithError(err).Warn("comparative: invalid second window")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"first_start":  first.StartDate.Format(time.DateOnly),
			"first_end":    first.EndDate.Format(time.DateOnly),
			"second_start": second.StartDate.Format(time.DateOnly),
			"second_end":   second.EndDate.Format(time.DateOnly),
		}).Info("comparative: building comparison report")

		result, err := service.GetComparative(r.Context(), first, second)
		if err != nil {
			logger.WithError(err).Error("comparative: failed to build comparison report")
			writeReportingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("comparative: failed to encode response")
		}
	})
}
