package reporting

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/devclub/sales-dashboard-api/infrastructure/integrator/hotmart"
	hotmartdomain "github.com/devclub/sales-dashboard-api/infrastructure/integrator/hotmart/domain"
	"github.com/devclub/sales-dashboard-api/infrastructure/integrator/meta"
	metadomain "github.com/devclub/sales-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/devclub/sales-dashboard-api/infrastructure/integrator/tmb"
	tmbdomain "github.com/devclub/sales-dashboard-api/infrastructure/integrator/tmb/domain"
	"github.com/devclub/sales-dashboard-api/internal/config"
	"github.com/devclub/sales-dashboard-api/internal/domain"
)

// OutcomeKind classifica o desfecho da chamada a uma fonte dentro de um
// ciclo de busca. Cancelamento e falha têm tratamentos diferentes: falha
// degrada a fonte, cancelamento descarta o ciclo inteiro.
type OutcomeKind int

const (
	OutcomeOK OutcomeKind = iota
	OutcomeCancelled
	OutcomeFailed
)

type fetchOutcome struct {
	source domain.SourceKind
	kind   OutcomeKind
	err    error
}

func outcomeOf(source domain.SourceKind, err error) fetchOutcome {
	switch {
	case err == nil:
		return fetchOutcome{source: source, kind: OutcomeOK}
	case errors.Is(err, context.Canceled):
		return fetchOutcome{source: source, kind: OutcomeCancelled, err: err}
	default:
		return fetchOutcome{source: source, kind: OutcomeFailed, err: err}
	}
}

// windowFetch carrega o material bruto de uma janela antes da normalização.
// Cada fonte escreve apenas no próprio campo durante o fan-out.
type windowFetch struct {
	transactions []hotmartdomain.Transaction
	refunds      []hotmartdomain.Refund
	boletos      []tmbdomain.BoletoSale
	installment  *tmbdomain.InstallmentReport
}

type Service struct {
	cfg         *config.Config
	hotmart     hotmart.HotmartIntegrator
	tmb         tmb.TMBIntegrator
	meta        meta.MetaIntegrator
	boletoCache *BoletoCache
	location    *time.Location
	now         func() time.Time

	mu            sync.Mutex
	cancelCurrent context.CancelFunc
}

func NewService(
	cfg *config.Config,
	hotmartIntegrator hotmart.HotmartIntegrator,
	tmbIntegrator tmb.TMBIntegrator,
	metaIntegrator meta.MetaIntegrator,
	boletoCache *BoletoCache,
) *Service {
	location, err := time.LoadLocation(cfg.Dashboard.Timezone)
	if err != nil {
		logrus.WithError(err).WithField("timezone", cfg.Dashboard.Timezone).
			Warn("reporting: invalid timezone, falling back to UTC")
		location = time.UTC
	}

	return &Service{
		cfg:         cfg,
		hotmart:     hotmartIntegrator,
		tmb:         tmbIntegrator,
		meta:        metaIntegrator,
		boletoCache: boletoCache,
		location:    location,
		now:         time.Now,
	}
}

// beginCycle cancela o ciclo em andamento, se houver, e registra o novo
// como corrente. A requisição mais recente sempre vence.
func (s *Service) beginCycle(ctx context.Context) (context.Context, context.CancelFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancelCurrent != nil {
		s.cancelCurrent()
	}

	cycleCtx, cancel := context.WithCancel(ctx)
	s.cancelCurrent = cancel

	return cycleCtx, cancel
}

func boletoCacheKey(filters *domain.ReportFilters) string {
	return fmt.Sprintf("%s|%s", filters.StartDate.Format(time.DateOnly), filters.EndDate.Format(time.DateOnly))
}

// fetchBoletos consulta o cache antes de ir à planilha; a janela inteira é
// a chave, então janelas distintas nunca se contaminam.
func (s *Service) fetchBoletos(ctx context.Context, filters *domain.ReportFilters) ([]tmbdomain.BoletoSale, error) {
	key := boletoCacheKey(filters)
	if cached, ok := s.boletoCache.Get(key); ok {
		return cached, nil
	}

	sales, err := s.tmb.GetBoletoSales(ctx, filters)
	if err != nil {
		return nil, err
	}

	s.boletoCache.Put(key, sales)

	return sales, nil
}

// fetchWindow dispara as quatro fontes de venda em paralelo e espera todas
// terminarem. Fonte que falha vira contribuição vazia mais um aviso; fonte
// cancelada encerra o ciclo com ErrRequestSuperseded sem materializar nada.
func (s *Service) fetchWindow(ctx context.Context, filters *domain.ReportFilters) (*windowFetch, []domain.SourceWarning, error) {
	fetch := &windowFetch{}
	outcomes := make([]fetchOutcome, 4)

	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		transactions, err := s.hotmart.GetTransactions(ctx, filters)
		fetch.transactions = transactions
		outcomes[0] = outcomeOf(domain.SourceCard, err)
	}()

	go func() {
		defer wg.Done()
		refunds, err := s.hotmart.GetRefunds(ctx, filters)
		fetch.refunds = refunds
		outcomes[1] = outcomeOf(domain.SourceRefund, err)
	}()

	go func() {
		defer wg.Done()
		boletos, err := s.fetchBoletos(ctx, filters)
		fetch.boletos = boletos
		outcomes[2] = outcomeOf(domain.SourceBoleto, err)
	}()

	go func() {
		defer wg.Done()
		installment, err := s.tmb.GetInstallmentReport(ctx, filters)
		fetch.installment = installment
		outcomes[3] = outcomeOf(domain.SourceInstallmentBoleto, err)
	}()

	wg.Wait()

	warnings := make([]domain.SourceWarning, 0)
	for _, outcome := range outcomes {
		switch outcome.kind {
		case OutcomeOK:
			continue
		case OutcomeCancelled:
			return nil, nil, ErrRequestSuperseded
		case OutcomeFailed:
			logrus.WithError(outcome.err).WithField("source", outcome.source).
				Warn("reporting: source degraded, continuing with partial data")
			warnings = append(warnings, domain.SourceWarning{
				Source:  outcome.source,
				Message: outcome.err.Error(),
			})
		}
	}

	return fetch, warnings, nil
}

// normalizeWindow achata o material bruto das fontes no razão único de
// eventos tipados sobre o qual todo o motor opera.
func normalizeWindow(fetch *windowFetch) []*domain.SaleEvent {
	events := make([]*domain.SaleEvent, 0, len(fetch.transactions)+len(fetch.refunds)+len(fetch.boletos))

	for _, tx := range fetch.transactions {
		events = append(events, NormalizeCardTransaction(tx))
	}
	for _, refund := range fetch.refunds {
		events = append(events, NormalizeRefund(refund))
	}
	for _, boleto := range fetch.boletos {
		events = append(events, NormalizeBoletoSale(boleto))
	}

	return events
}

func installmentSummary(report *tmbdomain.InstallmentReport) *domain.InstallmentSummary {
	if report == nil {
		return nil
	}

	return &domain.InstallmentSummary{
		TotalGross:         report.TotalGross,
		TotalNet:           report.TotalNet,
		TotalFees:          report.TotalFees,
		Count:              report.Count,
		TotalPurchaseValue: report.TotalPurchaseValue,
	}
}

func applyFilterDefaults(filters *domain.ReportFilters) {
	if filters.Granularity == "" {
		filters.Granularity = domain.GranularityDay
	}
}

func (s *Service) GetSalesDashboard(ctx context.Context, filters *domain.ReportFilters) (*domain.DashboardResult, error) {
	applyFilterDefaults(filters)

	cycleCtx, cancel := s.beginCycle(ctx)
	defer cancel()

	fetch, warnings, err := s.fetchWindow(cycleCtx, filters)
	if err != nil {
		return nil, err
	}

	events := normalizeWindow(fetch)

	bucketer := NewBucketer(filters.Granularity, *filters.StartDate, *filters.EndDate, s.location)
	aggregation := Aggregate(events, bucketer)

	return &domain.DashboardResult{
		Filters:            filters,
		Buckets:            aggregation.Buckets,
		CategoryTotals:     aggregation.CategoryTotals,
		Products:           SummarizeProducts(events),
		Offers:             SummarizeOffers(events),
		InstallmentSummary: installmentSummary(fetch.installment),
		Warnings:           warnings,
	}, nil
}

// aggregateWindow deriva de um mesmo conjunto de eventos as três visões
// que o motor comparativo consome: série diária, perfil intradiário e
// rollup por produto.
func (s *Service) aggregateWindow(filters *domain.ReportFilters, events []*domain.SaleEvent) *WindowAggregation {
	dayBucketer := NewBucketer(domain.GranularityDay, *filters.StartDate, *filters.EndDate, s.location)
	hourBucketer := NewBucketer(domain.GranularityHourOfDay, *filters.StartDate, *filters.EndDate, s.location)

	return &WindowAggregation{
		Filters:     filters,
		DayBuckets:  Aggregate(events, dayBucketer).Buckets,
		HourBuckets: Aggregate(events, hourBucketer).Buckets,
		Products:    SummarizeProducts(events),
	}
}

func (s *Service) GetComparative(ctx context.Context, first, second *domain.ReportFilters) (*domain.ComparativeResult, error) {
	if err := ValidateComparablePeriods(first, second); err != nil {
		return nil, err
	}

	applyFilterDefaults(first)
	applyFilterDefaults(second)

	cycleCtx, cancel := s.beginCycle(ctx)
	defer cancel()

	var (
		wg             sync.WaitGroup
		firstFetch     *windowFetch
		secondFetch    *windowFetch
		firstWarnings  []domain.SourceWarning
		secondWarnings []domain.SourceWarning
		firstErr       error
		secondErr      error
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		firstFetch, firstWarnings, firstErr = s.fetchWindow(cycleCtx, first)
	}()

	go func() {
		defer wg.Done()
		secondFetch, secondWarnings, secondErr = s.fetchWindow(cycleCtx, second)
	}()

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if secondErr != nil {
		return nil, secondErr
	}

	firstWindow := s.aggregateWindow(first, normalizeWindow(firstFetch))
	secondWindow := s.aggregateWindow(second, normalizeWindow(secondFetch))

	result := Compare(firstWindow, secondWindow)
	result.Warnings = append(firstWarnings, secondWarnings...)

	return result, nil
}

func (s *Service) GetWeeklyROI(ctx context.Context, weekStart time.Time) (*domain.ROIResult, error) {
	weekStart = MondayOfWeek(weekStart.In(s.location))
	weekEnd := weekStart.AddDate(0, 0, 6)

	salesWindow := &domain.ReportFilters{
		StartDate:   &weekStart,
		EndDate:     &weekEnd,
		Granularity: domain.GranularityDay,
	}
	trafficWindow := TrafficWindowForWeek(weekStart)

	cycleCtx, cancel := s.beginCycle(ctx)
	defer cancel()

	var (
		wg            sync.WaitGroup
		fetch         *windowFetch
		salesWarnings []domain.SourceWarning
		salesErr      error
		spend         *metadomain.SpendReport
		spendOutcome  fetchOutcome
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		fetch, salesWarnings, salesErr = s.fetchWindow(cycleCtx, salesWindow)
	}()

	go func() {
		defer wg.Done()
		report, err := s.meta.GetSpendReport(cycleCtx, trafficWindow.Start, trafficWindow.End)
		spend = report
		spendOutcome = outcomeOf(domain.SourceAdSpend, err)
	}()

	wg.Wait()

	if salesErr != nil {
		return nil, salesErr
	}

	warnings := salesWarnings
	switch spendOutcome.kind {
	case OutcomeOK:
	case OutcomeCancelled:
		return nil, ErrRequestSuperseded
	case OutcomeFailed:
		logrus.WithError(spendOutcome.err).Warn("reporting: ad spend source degraded, ROI costs incomplete")
		warnings = append(warnings, domain.SourceWarning{
			Source:  domain.SourceAdSpend,
			Message: spendOutcome.err.Error(),
		})
		spend = nil
	}

	events := normalizeWindow(fetch)
	bucketer := NewBucketer(domain.GranularityDay, weekStart, weekEnd, s.location)
	aggregation := Aggregate(events, bucketer)

	result := CalculateROI(aggregation.CategoryTotals, spend, CategoryMarkers{
		IA:          s.cfg.Dashboard.IAAccountMarker,
		Programming: s.cfg.Dashboard.ProgrammingAccountMarker,
	})
	result.SalesWindow = salesWindow
	result.TrafficWindow = trafficWindow
	result.Warnings = warnings

	return result, nil
}

// GetAdSpend devolve o relatório de investimento dos últimos N dias, sem
// cruzar com receita; usado na tela de inspeção de contas de anúncio.
func (s *Service) GetAdSpend(ctx context.Context, lookbackDays int) (*metadomain.SpendReport, error) {
	return s.meta.GetSpendReportByLookback(ctx, lookbackDays)
}

// WarmupCurrentDay pré-carrega o cache de boletos do dia corrente; usado
// pelo agendador para tirar a planilha do caminho da primeira requisição.
func (s *Service) WarmupCurrentDay(ctx context.Context) error {
	today := s.now().In(s.location)
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, s.location)

	filters := &domain.ReportFilters{StartDate: &day, EndDate: &day}

	if _, err := s.fetchBoletos(ctx, filters); err != nil {
		return errors.Wrap(err, "warmup boleto cache")
	}

	return nil
}
