package hotmart

import (
	"context"
	"time"

	hotmartdomain "github.com/devclub/sales-dashboard-api/infrastructure/integrator/hotmart/domain"
	"github.com/devclub/sales-dashboard-api/infrastructure/integrator/hotmart/hotmartclient"
	"github.com/devclub/sales-dashboard-api/internal/config"
	"github.com/devclub/sales-dashboard-api/internal/domain"
)

// HotmartIntegrator expõe as consultas de cartão e reembolso usadas pelo
// painel. É a fronteira do núcleo com o provedor: daqui para dentro só
// circulam registros tipados.
type HotmartIntegrator interface {
	GetTransactions(ctx context.Context, filters *domain.ReportFilters) ([]hotmartdomain.Transaction, error)
	GetRefunds(ctx context.Context, filters *domain.ReportFilters) ([]hotmartdomain.Refund, error)
}

type HotmartService struct {
	cfg    *config.Config
	Client hotmartclient.Client
}

func New(cfg *config.Config, client hotmartclient.Client) HotmartIntegrator {
	return &HotmartService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *HotmartService) GetTransactions(ctx context.Context, filters *domain.ReportFilters) ([]hotmartdomain.Transaction, error) {
	params := hotmartclient.SalesConsultationParams{
		StartDate: filters.StartDate.Format(time.DateOnly),
		EndDate:   filters.EndDate.Format(time.DateOnly),
	}

	resp, err := s.Client.GetSales(ctx, params)
	if err != nil {
		return nil, err
	}

	return resp.Items, nil
}

func (s *HotmartService) GetRefunds(ctx context.Context, filters *domain.ReportFilters) ([]hotmartdomain.Refund, error) {
	params := hotmartclient.SalesConsultationParams{
		StartDate: filters.StartDate.Format(time.DateOnly),
		EndDate:   filters.EndDate.Format(time.DateOnly),
	}

	resp, err := s.Client.GetRefunds(ctx, params)
	if err != nil {
		return nil, err
	}

	return resp.Items, nil
}
