package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	hotmartdomain "github.com/devclub/sales-dashboard-api/infrastructure/integrator/hotmart/domain"
	hotmartmocks "github.com/devclub/sales-dashboard-api/infrastructure/integrator/hotmart/mocks"
	metadomain "github.com/devclub/sales-dashboard-api/infrastructure/integrator/meta/domain"
	metamocks "github.com/devclub/sales-dashboard-api/infrastructure/integrator/meta/mocks"
	tmbdomain "github.com/devclub/sales-dashboard-api/infrastructure/integrator/tmb/domain"
	tmbmocks "github.com/devclub/sales-dashboard-api/infrastructure/integrator/tmb/mocks"
	"github.com/devclub/sales-dashboard-api/internal/config"
	"github.com/devclub/sales-dashboard-api/internal/domain"
)

type serviceMocks struct {
	hotmart *hotmartmocks.MockHotmartIntegrator
	tmb     *tmbmocks.MockTMBIntegrator
	meta    *metamocks.MockMetaIntegrator
}

func newTestService(t *testing.T) (*Service, *serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mocks := &serviceMocks{
		hotmart: hotmartmocks.NewMockHotmartIntegrator(ctrl),
		tmb:     tmbmocks.NewMockTMBIntegrator(ctrl),
		meta:    metamocks.NewMockMetaIntegrator(ctrl),
	}

	cfg := &config.Config{
		Dashboard: config.Dashboard{
			Timezone:                 "America/Sao_Paulo",
			IAAccountMarker:          "IA CLUB",
			ProgrammingAccountMarker: "DEVCLUB",
		},
	}

	service := NewService(cfg, mocks.hotmart, mocks.tmb, mocks.meta, NewBoletoCache(time.Hour, nil))

	return service, mocks
}

func singleDayFilters(day string) *domain.ReportFilters {
	date, _ := time.Parse(time.DateOnly, day)
	return &domain.ReportFilters{StartDate: &date, EndDate: &date}
}

// 2024-06-10 12:00 em São Paulo
const noonJune10 = int64(1718031600)

func TestGetSalesDashboard(t *testing.T) {
	service, mocks := newTestService(t)
	filters := singleDayFilters("2024-06-10")

	mocks.hotmart.EXPECT().GetTransactions(gomock.Any(), filters).Return([]hotmartdomain.Transaction{
		{TransactionID: "HP001", OrderDate: noonJune10, NetAmount: floatPtr(200), ProductName: "DevClub Full Stack"},
	}, nil)
	mocks.hotmart.EXPECT().GetRefunds(gomock.Any(), filters).Return([]hotmartdomain.Refund{
		{RefundID: "HP900", RefundDate: noonJune10, NetAmount: floatPtr(80), ProductName: "DevClub Full Stack"},
	}, nil)
	mocks.tmb.EXPECT().GetBoletoSales(gomock.Any(), filters).Return([]tmbdomain.BoletoSale{
		{ID: "boleto-1", Timestamp: noonJune10 * 1000, Value: floatPtr(50), Product: "IA Club"},
	}, nil)
	mocks.tmb.EXPECT().GetInstallmentReport(gomock.Any(), filters).Return(&tmbdomain.InstallmentReport{
		TotalNet: 30, Count: 1,
	}, nil)

	result, err := service.GetSalesDashboard(context.Background(), filters)

	require.NoError(t, err)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, domain.GranularityDay, result.Filters.Granularity)

	require.Len(t, result.Buckets, 1)
	bucket := result.Buckets[0]
	assert.Equal(t, "2024-06-10", bucket.Key)
	assert.Equal(t, 2, bucket.Quantity)
	assert.Equal(t, 250.0, bucket.TotalValue)
	assert.Equal(t, 1, bucket.RefundQuantity)
	assert.Equal(t, 80.0, bucket.RefundValue)

	assert.Equal(t, 50.0, result.CategoryTotals[domain.CategoryIA].TotalValue)
	assert.Equal(t, 200.0, result.CategoryTotals[domain.CategoryProgramming].TotalValue)

	require.NotNil(t, result.InstallmentSummary)
	assert.Equal(t, 30.0, result.InstallmentSummary.TotalNet)

	require.Len(t, result.Products, 2)
	assert.Equal(t, "DevClub Full Stack", result.Products[0].ProductName)
}

func TestGetSalesDashboard_FonteDegradadaViraAviso(t *testing.T) {
	service, mocks := newTestService(t)
	filters := singleDayFilters("2024-06-10")

	mocks.hotmart.EXPECT().GetTransactions(gomock.Any(), filters).Return([]hotmartdomain.Transaction{
		{TransactionID: "HP001", OrderDate: noonJune10, NetAmount: floatPtr(200), ProductName: "DevClub Full Stack"},
	}, nil)
	mocks.hotmart.EXPECT().GetRefunds(gomock.Any(), filters).Return(nil, nil)
	mocks.tmb.EXPECT().GetBoletoSales(gomock.Any(), filters).Return(nil, errors.New("planilha indisponível"))
	mocks.tmb.EXPECT().GetInstallmentReport(gomock.Any(), filters).Return(nil, nil)

	result, err := service.GetSalesDashboard(context.Background(), filters)

	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, domain.SourceBoleto, result.Warnings[0].Source)
	assert.Contains(t, result.Warnings[0].Message, "planilha indisponível")

	// As demais fontes seguem presentes no resultado parcial
	require.Len(t, result.Buckets, 1)
	assert.Equal(t, 200.0, result.Buckets[0].TotalValue)
	assert.Nil(t, result.InstallmentSummary)
}

func TestGetSalesDashboard_CicloCanceladoESubstituido(t *testing.T) {
	service, mocks := newTestService(t)
	filters := singleDayFilters("2024-06-10")

	mocks.hotmart.EXPECT().GetTransactions(gomock.Any(), filters).Return(nil, context.Canceled)
	mocks.hotmart.EXPECT().GetRefunds(gomock.Any(), filters).Return(nil, nil)
	mocks.tmb.EXPECT().GetBoletoSales(gomock.Any(), filters).Return(nil, nil)
	mocks.tmb.EXPECT().GetInstallmentReport(gomock.Any(), filters).Return(nil, nil)

	result, err := service.GetSalesDashboard(context.Background(), filters)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrRequestSuperseded)
}

func TestGetSalesDashboard_NovaRequisicaoCancelaAAnterior(t *testing.T) {
	service, mocks := newTestService(t)
	filters := singleDayFilters("2024-06-10")

	released := make(chan struct{})
	firstStarted := make(chan struct{})

	// A primeira requisição fica presa na fonte de cartão até a segunda
	// chegar; o cancelamento do ciclo deve então liberá-la como superada.
	mocks.hotmart.EXPECT().GetTransactions(gomock.Any(), filters).DoAndReturn(
		func(ctx context.Context, _ *domain.ReportFilters) ([]hotmartdomain.Transaction, error) {
			close(firstStarted)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-released:
				return nil, errors.New("a primeira requisição deveria ter sido cancelada")
			}
		})
	mocks.hotmart.EXPECT().GetRefunds(gomock.Any(), filters).Return(nil, nil)
	mocks.tmb.EXPECT().GetBoletoSales(gomock.Any(), filters).Return(nil, nil)
	mocks.tmb.EXPECT().GetInstallmentReport(gomock.Any(), filters).Return(nil, nil)

	// Segunda requisição, disparada depois que a primeira travou
	mocks.hotmart.EXPECT().GetTransactions(gomock.Any(), filters).Return(nil, nil)
	mocks.hotmart.EXPECT().GetRefunds(gomock.Any(), filters).Return(nil, nil)
	mocks.tmb.EXPECT().GetInstallmentReport(gomock.Any(), filters).Return(nil, nil)

	firstDone := make(chan error, 1)
	go func() {
		_, err := service.GetSalesDashboard(context.Background(), filters)
		firstDone <- err
	}()

	<-firstStarted

	second, err := service.GetSalesDashboard(context.Background(), filters)
	require.NoError(t, err)
	require.NotNil(t, second)
	close(released)

	assert.ErrorIs(t, <-firstDone, ErrRequestSuperseded)
}

func TestGetSalesDashboard_CacheDeBoletosEvitaSegundaConsulta(t *testing.T) {
	service, mocks := newTestService(t)
	filters := singleDayFilters("2024-06-10")

	mocks.hotmart.EXPECT().GetTransactions(gomock.Any(), filters).Return(nil, nil).Times(2)
	mocks.hotmart.EXPECT().GetRefunds(gomock.Any(), filters).Return(nil, nil).Times(2)
	mocks.tmb.EXPECT().GetInstallmentReport(gomock.Any(), filters).Return(nil, nil).Times(2)

	// A planilha só é consultada uma vez; a segunda chamada sai do cache
	mocks.tmb.EXPECT().GetBoletoSales(gomock.Any(), filters).Return([]tmbdomain.BoletoSale{
		{ID: "boleto-1", Timestamp: noonJune10 * 1000, Value: floatPtr(50), Product: "IA Club"},
	}, nil).Times(1)

	first, err := service.GetSalesDashboard(context.Background(), filters)
	require.NoError(t, err)

	second, err := service.GetSalesDashboard(context.Background(), filters)
	require.NoError(t, err)

	assert.Equal(t, first.Buckets[0].BoletoValue, second.Buckets[0].BoletoValue)
	assert.Equal(t, 50.0, second.Buckets[0].BoletoValue)
}

func TestGetComparative_JanelasIncomparaveisNaoDisparamBusca(t *testing.T) {
	service, _ := newTestService(t)

	first := &domain.ReportFilters{}
	second := &domain.ReportFilters{}
	firstStart, _ := time.Parse(time.DateOnly, "2024-06-01")
	firstEnd, _ := time.Parse(time.DateOnly, "2024-06-07")
	secondStart, _ := time.Parse(time.DateOnly, "2024-05-01")
	secondEnd, _ := time.Parse(time.DateOnly, "2024-05-10")
	first.StartDate, first.EndDate = &firstStart, &firstEnd
	second.StartDate, second.EndDate = &secondStart, &secondEnd

	result, err := service.GetComparative(context.Background(), first, second)

	assert.Nil(t, result)
	assert.True(t, IsValidationError(err))
}

func TestGetComparative(t *testing.T) {
	service, mocks := newTestService(t)

	first := singleDayFilters("2024-06-10")
	second := singleDayFilters("2024-06-03")

	mocks.hotmart.EXPECT().GetTransactions(gomock.Any(), first).Return([]hotmartdomain.Transaction{
		{TransactionID: "HP001", OrderDate: noonJune10, NetAmount: floatPtr(300), ProductName: "DevClub Full Stack"},
	}, nil)
	mocks.hotmart.EXPECT().GetTransactions(gomock.Any(), second).Return([]hotmartdomain.Transaction{
		{TransactionID: "HP002", OrderDate: noonJune10 - 7*24*3600, NetAmount: floatPtr(200), ProductName: "DevClub Full Stack"},
	}, nil)
	mocks.hotmart.EXPECT().GetRefunds(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	mocks.tmb.EXPECT().GetBoletoSales(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	mocks.tmb.EXPECT().GetInstallmentReport(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)

	result, err := service.GetComparative(context.Background(), first, second)

	require.NoError(t, err)
	assert.Equal(t, 300.0, result.TotalValue.First)
	assert.Equal(t, 200.0, result.TotalValue.Second)
	assert.InDelta(t, 50.0, result.TotalValue.Percent, 0.0001)
	assert.Nil(t, result.Days)
	assert.Empty(t, result.Warnings)
}

func TestGetWeeklyROI(t *testing.T) {
	service, mocks := newTestService(t)

	mocks.hotmart.EXPECT().GetTransactions(gomock.Any(), gomock.Any()).Return([]hotmartdomain.Transaction{
		{TransactionID: "HP001", OrderDate: noonJune10, NetAmount: floatPtr(3000), ProductName: "IA Club"},
	}, nil)
	mocks.hotmart.EXPECT().GetRefunds(gomock.Any(), gomock.Any()).Return(nil, nil)
	mocks.tmb.EXPECT().GetBoletoSales(gomock.Any(), gomock.Any()).Return(nil, nil)
	mocks.tmb.EXPECT().GetInstallmentReport(gomock.Any(), gomock.Any()).Return(nil, nil)

	mocks.meta.EXPECT().GetSpendReport(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, startDate, endDate time.Time) (*metadomain.SpendReport, error) {
			assert.Equal(t, "2024-05-28", startDate.Format(time.DateOnly))
			assert.Equal(t, "2024-06-03", endDate.Format(time.DateOnly))
			return &metadomain.SpendReport{
				TotalSpend: 1500,
				AccountsWithSpend: []metadomain.AccountSpend{
					{AccountName: "IA Club - Performance", Spend: 1000},
					{AccountName: "Conta Institucional", Spend: 500},
				},
			}, nil
		})

	// Quarta-feira normaliza para a segunda 2024-06-10
	weekStart := time.Date(2024, time.June, 12, 15, 0, 0, 0, time.UTC)

	result, err := service.GetWeeklyROI(context.Background(), weekStart)

	require.NoError(t, err)
	assert.Equal(t, "2024-06-10", result.SalesWindow.StartDate.Format(time.DateOnly))
	assert.Equal(t, "2024-06-16", result.SalesWindow.EndDate.Format(time.DateOnly))
	assert.Equal(t, 1500.0, result.TotalSpend)

	ia := result.Categories[domain.CategoryIA]
	assert.Equal(t, 3000.0, ia.Revenue)
	assert.Equal(t, 1000.0, ia.Cost)
	assert.InDelta(t, 3.0, ia.ROI, 0.0001)

	assert.Empty(t, result.Warnings)
}

func TestGetWeeklyROI_InvestimentoIndisponivel(t *testing.T) {
	service, mocks := newTestService(t)

	mocks.hotmart.EXPECT().GetTransactions(gomock.Any(), gomock.Any()).Return([]hotmartdomain.Transaction{
		{TransactionID: "HP001", OrderDate: noonJune10, NetAmount: floatPtr(3000), ProductName: "IA Club"},
	}, nil)
	mocks.hotmart.EXPECT().GetRefunds(gomock.Any(), gomock.Any()).Return(nil, nil)
	mocks.tmb.EXPECT().GetBoletoSales(gomock.Any(), gomock.Any()).Return(nil, nil)
	mocks.tmb.EXPECT().GetInstallmentReport(gomock.Any(), gomock.Any()).Return(nil, nil)
	mocks.meta.EXPECT().GetSpendReport(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("token expirado"))

	weekStart := time.Date(2024, time.June, 12, 15, 0, 0, 0, time.UTC)

	result, err := service.GetWeeklyROI(context.Background(), weekStart)

	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, domain.SourceAdSpend, result.Warnings[0].Source)

	// Receita preservada, custos zerados
	assert.Equal(t, 0.0, result.TotalSpend)
	assert.Equal(t, 3000.0, result.Categories[domain.CategoryIA].Revenue)
	assert.Equal(t, 0.0, result.Categories[domain.CategoryIA].ROI)
}

func TestGetComparative_AvisosDasDuasJanelasSaoAgregados(t *testing.T) {
	service, mocks := newTestService(t)

	first := singleDayFilters("2024-06-10")
	second := singleDayFilters("2024-06-03")

	mocks.hotmart.EXPECT().GetTransactions(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	mocks.hotmart.EXPECT().GetRefunds(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	mocks.tmb.EXPECT().GetInstallmentReport(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)

	mocks.tmb.EXPECT().GetBoletoSales(gomock.Any(), first).Return(nil, errors.New("planilha indisponível"))
	mocks.tmb.EXPECT().GetBoletoSales(gomock.Any(), second).Return(nil, nil)

	result, err := service.GetComparative(context.Background(), first, second)

	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, domain.SourceBoleto, result.Warnings[0].Source)
	assert.Contains(t, result.Warnings[0].Message, "planilha indisponível")
}

func TestGetAdSpend(t *testing.T) {
	service, mocks := newTestService(t)

	mocks.meta.EXPECT().GetSpendReportByLookback(gomock.Any(), 7).Return(&metadomain.SpendReport{
		TotalSpend:    900,
		TotalAccounts: 2,
	}, nil)

	result, err := service.GetAdSpend(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, 900.0, result.TotalSpend)
	assert.Equal(t, 2, result.TotalAccounts)
}

func TestWarmupCurrentDay(t *testing.T) {
	service, mocks := newTestService(t)

	service.now = func() time.Time {
		return time.Date(2024, time.June, 10, 15, 0, 0, 0, time.UTC)
	}

	mocks.tmb.EXPECT().GetBoletoSales(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, filters *domain.ReportFilters) ([]tmbdomain.BoletoSale, error) {
			assert.Equal(t, "2024-06-10", filters.StartDate.Format(time.DateOnly))
			assert.Equal(t, filters.StartDate, filters.EndDate)
			return []tmbdomain.BoletoSale{{ID: "boleto-1"}}, nil
		}).Times(1)

	require.NoError(t, service.WarmupCurrentDay(context.Background()))

	// O pré-carregamento deixa a consulta do dia no cache
	cached, ok := service.boletoCache.Get("2024-06-10|2024-06-10")
	require.True(t, ok)
	assert.Equal(t, "boleto-1", cached[0].ID)
}

func TestWarmupCurrentDay_PropagaFalhaDaPlanilha(t *testing.T) {
	service, mocks := newTestService(t)

	mocks.tmb.EXPECT().GetBoletoSales(gomock.Any(), gomock.Any()).Return(nil, errors.New("planilha indisponível"))

	err := service.WarmupCurrentDay(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "planilha indisponível")
}
