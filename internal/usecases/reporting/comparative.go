package reporting

import (
	"sort"
	"strconv"

	"github.com/devclub/sales-dashboard-api/internal/domain"
)

// WindowAggregation reúne tudo que o motor comparativo precisa de uma
// janela: a agregação diária, o perfil intradiário e o rollup por produto,
// todos derivados do mesmo conjunto de eventos.
type WindowAggregation struct {
	Filters     *domain.ReportFilters
	DayBuckets  []*domain.AggregateBucket
	HourBuckets []*domain.AggregateBucket
	Products    []*domain.ProductSummary
}

// ValidateComparablePeriods rejeita comparações entre janelas de
// comprimentos diferentes quando o modo é período-contra-período.
// Pares de dia único dispensam a checagem.
func ValidateComparablePeriods(first, second *domain.ReportFilters) error {
	if first.SingleDay() && second.SingleDay() {
		return nil
	}

	firstDays := first.DayCount()
	secondDays := second.DayCount()

	if firstDays != secondDays {
		return NewPeriodMismatchError(firstDays, secondDays)
	}

	return nil
}

type bucketTotals struct {
	quantity       int
	value          float64
	cardQuantity   int
	cardValue      float64
	boletoQuantity int
	boletoValue    float64
	refundQuantity int
	refundValue    float64
}

func sumBuckets(buckets []*domain.AggregateBucket) bucketTotals {
	var totals bucketTotals
	for _, bucket := range buckets {
		totals.quantity += bucket.Quantity
		totals.value += bucket.TotalValue
		totals.cardQuantity += bucket.CardQuantity
		totals.cardValue += bucket.CardValue
		totals.boletoQuantity += bucket.BoletoQuantity
		totals.boletoValue += bucket.BoletoValue
		totals.refundQuantity += bucket.RefundQuantity
		totals.refundValue += bucket.RefundValue
	}
	return totals
}

// Compare produz os deltas absolutos/percentuais entre duas janelas de
// mesmo comprimento, as séries pareadas por hora e por dia ordinal e a
// comparação por produto. A validação de comprimento é responsabilidade do
// chamador (ValidateComparablePeriods).
func Compare(first, second *WindowAggregation) *domain.ComparativeResult {
	firstTotals := sumBuckets(first.DayBuckets)
	secondTotals := sumBuckets(second.DayBuckets)

	result := &domain.ComparativeResult{
		FirstFilters:  first.Filters,
		SecondFilters: second.Filters,

		TotalSales:   domain.NewMetricDiff(float64(firstTotals.quantity), float64(secondTotals.quantity)),
		TotalValue:   domain.NewMetricDiff(firstTotals.value, secondTotals.value),
		CardSales:    domain.NewMetricDiff(float64(firstTotals.cardQuantity), float64(secondTotals.cardQuantity)),
		CardValue:    domain.NewMetricDiff(firstTotals.cardValue, secondTotals.cardValue),
		BoletoSales:  domain.NewMetricDiff(float64(firstTotals.boletoQuantity), float64(secondTotals.boletoQuantity)),
		BoletoValue:  domain.NewMetricDiff(firstTotals.boletoValue, secondTotals.boletoValue),
		RefundCount:  domain.NewMetricDiff(float64(firstTotals.refundQuantity), float64(secondTotals.refundQuantity)),
		RefundAmount: domain.NewMetricDiff(firstTotals.refundValue, secondTotals.refundValue),

		Hours:    compareHours(first.HourBuckets, second.HourBuckets),
		Products: compareProducts(first.Products, second.Products),
	}

	// Série por dia ordinal apenas no modo período-contra-período
	if !(first.Filters.SingleDay() && second.Filters.SingleDay()) {
		result.Days = compareDays(first.DayBuckets, second.DayBuckets)
	}

	return result
}

// compareHours pareia as 24 horas do dia das duas janelas, com os recortes
// por método usados nos gráficos intradiários.
func compareHours(first, second []*domain.AggregateBucket) []*domain.HourComparisonEntry {
	firstByKey := make(map[string]*domain.AggregateBucket, len(first))
	for _, bucket := range first {
		firstByKey[bucket.Key] = bucket
	}
	secondByKey := make(map[string]*domain.AggregateBucket, len(second))
	for _, bucket := range second {
		secondByKey[bucket.Key] = bucket
	}

	entries := make([]*domain.HourComparisonEntry, 0, 24)
	for hour := 0; hour < 24; hour++ {
		entry := &domain.HourComparisonEntry{Hour: hour}
		key := strconv.Itoa(hour)

		if bucket, ok := firstByKey[key]; ok {
			entry.FirstQuantity = bucket.CardQuantity + bucket.BoletoQuantity
			entry.FirstValue = bucket.CardValue + bucket.BoletoValue
			entry.FirstCardQuantity = bucket.CardQuantity
			entry.FirstCardValue = bucket.CardValue
			entry.FirstBoletoQuantity = bucket.BoletoQuantity
			entry.FirstBoletoValue = bucket.BoletoValue
		}

		if bucket, ok := secondByKey[key]; ok {
			entry.SecondQuantity = bucket.CardQuantity + bucket.BoletoQuantity
			entry.SecondValue = bucket.CardValue + bucket.BoletoValue
			entry.SecondCardQuantity = bucket.CardQuantity
			entry.SecondCardValue = bucket.CardValue
			entry.SecondBoletoQuantity = bucket.BoletoQuantity
			entry.SecondBoletoValue = bucket.BoletoValue
		}

		entries = append(entries, entry)
	}

	return entries
}

// compareDays pareia o N-ésimo dia de cada janela pela posição ordinal,
// não pela data de calendário, para que períodos desalinhados no calendário
// permaneçam comparáveis.
func compareDays(first, second []*domain.AggregateBucket) []*domain.DayComparisonEntry {
	length := len(first)
	if len(second) > length {
		length = len(second)
	}

	entries := make([]*domain.DayComparisonEntry, 0, length)
	for i := 0; i < length; i++ {
		entry := &domain.DayComparisonEntry{Ordinal: i + 1}

		if i < len(first) {
			entry.FirstKey = first[i].Key
			entry.FirstQuantity = first[i].Quantity
			entry.FirstValue = first[i].TotalValue
		}

		if i < len(second) {
			entry.SecondKey = second[i].Key
			entry.SecondQuantity = second[i].Quantity
			entry.SecondValue = second[i].TotalValue
		}

		entries = append(entries, entry)
	}

	return entries
}

// compareProducts compara a união dos produtos das duas janelas; produto
// ausente em uma janela contribui zero daquele lado. Ordenado pelo valor da
// primeira janela, decrescente.
func compareProducts(first, second []*domain.ProductSummary) []*domain.ProductComparisonEntry {
	entries := make(map[string]*domain.ProductComparisonEntry)

	for _, product := range first {
		entries[product.ProductName] = &domain.ProductComparisonEntry{
			ProductName:   product.ProductName,
			FirstQuantity: product.Quantity,
			FirstValue:    product.TotalValue,
		}
	}

	for _, product := range second {
		entry, ok := entries[product.ProductName]
		if !ok {
			entry = &domain.ProductComparisonEntry{ProductName: product.ProductName}
			entries[product.ProductName] = entry
		}
		entry.SecondQuantity = product.Quantity
		entry.SecondValue = product.TotalValue
	}

	comparison := make([]*domain.ProductComparisonEntry, 0, len(entries))
	for _, entry := range entries {
		entry.ValueDiff = domain.NewMetricDiff(entry.FirstValue, entry.SecondValue)
		comparison = append(comparison, entry)
	}

	sort.Slice(comparison, func(i, j int) bool {
		return comparison[i].FirstValue > comparison[j].FirstValue
	})

	return comparison
}
