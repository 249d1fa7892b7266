package meta

import (
	"context"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	metadomain "github.com/devclub/sales-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/devclub/sales-dashboard-api/infrastructure/integrator/meta/metaclient"
	"github.com/devclub/sales-dashboard-api/internal/config"
	"github.com/devclub/sales-dashboard-api/pkg/utils"
)

// MetaIntegrator expõe o relatório de investimento em anúncios usado na
// atribuição de ROI.
type MetaIntegrator interface {
	GetSpendReport(ctx context.Context, startDate, endDate time.Time) (*metadomain.SpendReport, error)
	GetSpendReportByLookback(ctx context.Context, lookbackDays int) (*metadomain.SpendReport, error)
}

type MetaService struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) MetaIntegrator {
	return &MetaService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *MetaService) GetSpendReport(ctx context.Context, startDate, endDate time.Time) (*metadomain.SpendReport, error) {
	insights, err := s.Client.GetAdAccountsSpend(ctx, startDate, endDate)
	if err != nil {
		logrus.WithError(err).Error("spend: failed to get ad accounts spend from API")
		return nil, err
	}

	return FactorySpendReport(insights), nil
}

func (s *MetaService) GetSpendReportByLookback(ctx context.Context, lookbackDays int) (*metadomain.SpendReport, error) {
	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -lookbackDays)

	return s.GetSpendReport(ctx, startDate, endDate)
}

// FactorySpendReport converte as linhas cruas da Graph API (valores em
// string) no relatório agregado. Linhas sem spend contam como conta sem
// investimento no período.
func FactorySpendReport(insights []metadomain.AdAccountSpendInsight) *metadomain.SpendReport {
	report := &metadomain.SpendReport{
		TotalAccounts:     len(insights),
		AccountsWithSpend: make([]metadomain.AccountSpend, 0, len(insights)),
	}

	for _, insight := range insights {
		if insight.Spend == "" {
			continue
		}

		spend, err := strconv.ParseFloat(insight.Spend, 64)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_name": insight.AccountName,
				"spend_value":  insight.Spend,
				"error":        err.Error(),
			}).Warn("spend: error converting spend to float")
			continue
		}

		if spend == 0 {
			continue
		}

		report.TotalSpend += spend
		report.AccountsWithSpend = append(report.AccountsWithSpend, metadomain.AccountSpend{
			AccountName:  insight.AccountName,
			BusinessName: insight.BusinessName,
			Spend:        spend,
			Currency:     insight.Currency,
		})
	}

	report.TotalSpend = utils.RoundWithTwoDecimalPlace(report.TotalSpend)

	return report
}
