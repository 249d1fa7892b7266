package hotmartclient

import (
	"context"
	"net/http"
	"time"

	hotmartdomain "github.com/devclub/sales-dashboard-api/infrastructure/integrator/hotmart/domain"
	"github.com/devclub/sales-dashboard-api/internal/config"
)

type Client interface {
	GetSales(ctx context.Context, params SalesConsultationParams) (hotmartdomain.SalesResponse, error)
	GetRefunds(ctx context.Context, params SalesConsultationParams) (hotmartdomain.RefundsResponse, error)
}

type HotmartClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &HotmartClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
