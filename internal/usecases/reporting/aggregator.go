package reporting

import (
	"github.com/devclub/sales-dashboard-api/internal/domain"
)

// AggregationResult é a saída congelada de uma passada de agregação
type AggregationResult struct {
	Buckets        []*domain.AggregateBucket
	CategoryTotals map[domain.Category]*domain.CategoryTotals
}

func newCategoryTotals(category domain.Category) *domain.CategoryTotals {
	return &domain.CategoryTotals{
		Category: category,
		Sales:    make([]*domain.SaleEvent, 0),
	}
}

// Aggregate faz uma única passada sobre os eventos, localizando o balde por
// chave pré-computada (O(1)) e o total da categoria, e incrementando os
// acumuladores conforme método de pagamento, flag comercial e reembolso.
//
// Eventos cuja chave cai fora dos baldes pré-populados são descartados em
// silêncio (guarda de existência antes de qualquer mutação). Reembolsos
// incrementam os acumuladores de reembolso no balde do próprio reembolso:
// não há vinculação venda-reembolso neste sistema, simplificação explícita
// herdada da origem.
//
// A função monta estruturas novas a cada chamada e é re-executável com a
// mesma entrada.
func Aggregate(events []*domain.SaleEvent, bucketer *Bucketer) *AggregationResult {
	buckets := bucketer.Buckets()

	byKey := make(map[string]*domain.AggregateBucket, len(buckets))
	for _, bucket := range buckets {
		byKey[bucket.Key] = bucket
	}

	totals := map[domain.Category]*domain.CategoryTotals{
		domain.CategoryIA:          newCategoryTotals(domain.CategoryIA),
		domain.CategoryProgramming: newCategoryTotals(domain.CategoryProgramming),
	}

	for _, event := range events {
		bucket, ok := byKey[bucketer.KeyFor(event.Timestamp)]
		if !ok {
			continue
		}

		categoryTotal := totals[event.Category]

		if event.IsRefund {
			bucket.RefundValue += event.NetAmount
			bucket.RefundQuantity++
			categoryTotal.RefundValue += event.NetAmount
			categoryTotal.RefundQuantity++
			categoryTotal.Sales = append(categoryTotal.Sales, event)
			continue
		}

		bucket.TotalValue += event.NetAmount
		bucket.Quantity++
		bucket.AffiliateValue += event.AffiliateValue

		categoryTotal.TotalValue += event.NetAmount
		categoryTotal.Quantity++
		categoryTotal.AffiliateValue += event.AffiliateValue
		categoryTotal.Sales = append(categoryTotal.Sales, event)

		switch event.PaymentMethod {
		case domain.PaymentMethodCard:
			bucket.CardValue += event.NetAmount
			bucket.CardQuantity++
			categoryTotal.CardValue += event.NetAmount
			categoryTotal.CardQuantity++
		case domain.PaymentMethodBoleto, domain.PaymentMethodInstallmentBoleto:
			// Boleto parcelado entra no recorte de boleto do painel
			bucket.BoletoValue += event.NetAmount
			bucket.BoletoQuantity++
			categoryTotal.BoletoValue += event.NetAmount
			categoryTotal.BoletoQuantity++
		}

		if event.IsCommercial {
			bucket.CommercialValue += event.NetAmount
			bucket.CommercialQuantity++
			categoryTotal.CommercialValue += event.NetAmount
			categoryTotal.CommercialQuantity++
		}
	}

	return &AggregationResult{
		Buckets:        buckets,
		CategoryTotals: totals,
	}
}
