package reporting

import (
	"context"
	"time"

	metadomain "github.com/devclub/sales-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/devclub/sales-dashboard-api/internal/domain"
)

// Reporter é a fachada do motor de reconciliação consumida pelos handlers
// do painel e pelo agendador de aquecimento.
type Reporter interface {
	GetSalesDashboard(ctx context.Context, filters *domain.ReportFilters) (*domain.DashboardResult, error)
	GetComparative(ctx context.Context, first, second *domain.ReportFilters) (*domain.ComparativeResult, error)
	GetWeeklyROI(ctx context.Context, weekStart time.Time) (*domain.ROIResult, error)
	GetAdSpend(ctx context.Context, lookbackDays int) (*metadomain.SpendReport, error)
	WarmupCurrentDay(ctx context.Context) error
}
