package metaclient

import (
	"context"
	"net/http"
	"time"

	metadomain "github.com/devclub/sales-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/devclub/sales-dashboard-api/internal/config"
)

type Client interface {
	GetAdAccountsSpend(ctx context.Context, startDate, endDate time.Time) ([]metadomain.AdAccountSpendInsight, error)
}

type MetaClient struct {
	httpClient *http.Client
	Cfg        *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		Cfg: cfg,
	}
}
