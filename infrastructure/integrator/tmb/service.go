package tmb

import (
	"context"
	"time"

	tmbdomain "github.com/devclub/sales-dashboard-api/infrastructure/integrator/tmb/domain"
	"github.com/devclub/sales-dashboard-api/infrastructure/integrator/tmb/tmbclient"
	"github.com/devclub/sales-dashboard-api/internal/config"
	"github.com/devclub/sales-dashboard-api/internal/domain"
)

// TMBIntegrator expõe a planilha de boletos e o resumo de parcelados.
type TMBIntegrator interface {
	GetBoletoSales(ctx context.Context, filters *domain.ReportFilters) ([]tmbdomain.BoletoSale, error)
	GetInstallmentReport(ctx context.Context, filters *domain.ReportFilters) (*tmbdomain.InstallmentReport, error)
}

type TMBService struct {
	cfg    *config.Config
	Client tmbclient.Client
}

func New(cfg *config.Config, client tmbclient.Client) TMBIntegrator {
	return &TMBService{
		cfg:    cfg,
		Client: client,
	}
}

// consultationParams escolhe o modo de consulta mais específico que a janela
// permite: dia único quando início e fim coincidem, período caso contrário.
func consultationParams(filters *domain.ReportFilters) tmbclient.ConsultationParams {
	start := filters.StartDate.Format(time.DateOnly)
	end := filters.EndDate.Format(time.DateOnly)

	if start == end {
		return tmbclient.ConsultationParams{Date: start}
	}

	return tmbclient.ConsultationParams{StartDate: start, EndDate: end}
}

func (s *TMBService) GetBoletoSales(ctx context.Context, filters *domain.ReportFilters) ([]tmbdomain.BoletoSale, error) {
	return s.Client.GetBoletoSales(ctx, consultationParams(filters))
}

func (s *TMBService) GetInstallmentReport(ctx context.Context, filters *domain.ReportFilters) (*tmbdomain.InstallmentReport, error) {
	return s.Client.GetInstallmentReport(ctx, consultationParams(filters))
}
