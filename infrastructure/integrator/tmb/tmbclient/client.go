package tmbclient

import (
	"context"
	"net/http"
	"time"

	tmbdomain "github.com/devclub/sales-dashboard-api/infrastructure/integrator/tmb/domain"
	"github.com/devclub/sales-dashboard-api/internal/config"
)

type Client interface {
	GetBoletoSales(ctx context.Context, params ConsultationParams) ([]tmbdomain.BoletoSale, error)
	GetInstallmentReport(ctx context.Context, params ConsultationParams) (*tmbdomain.InstallmentReport, error)
}

type TMBClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &TMBClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
