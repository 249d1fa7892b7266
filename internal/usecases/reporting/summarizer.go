package reporting

import (
	"regexp"
	"sort"
	"strings"

	"github.com/devclub/sales-dashboard-api/internal/domain"
)

// UnidentifiedOffer é a chave sentinela usada quando nenhum atributo de
// rastreio identifica a oferta de uma venda de cartão.
const UnidentifiedOffer = "Oferta não identificada"

const boletoOfferPrefix = "TMB - "

var parenthesizedSuffix = regexp.MustCompile(`\(([^)]+)\)\s*$`)

// offerKeyForCardSale resolve o identificador de oferta de uma venda de
// cartão pela cadeia de fallback canônica: nome da oferta, utm_campaign,
// utm_content, código da oferta, código da oferta no pedido. Os painéis do
// sistema de origem divergiam na ordem dos dois primeiros elos; esta ordem
// é a do painel principal e vale para todas as telas.
func offerKeyForCardSale(event *domain.SaleEvent) string {
	for _, candidate := range []string{
		event.OfferName,
		event.UTMCampaign,
		event.UTMContent,
		event.OfferCode,
		event.OrderOfferCode,
	} {
		if candidate != "" {
			return candidate
		}
	}

	return UnidentifiedOffer
}

// offerKeyForBoletoSale sintetiza a oferta a partir do nome do produto:
// sufixo " - X" vira "TMB - X", sufixo "(X)" vira "TMB - X", caso contrário
// o nome inteiro entra após o prefixo.
func offerKeyForBoletoSale(productName string) string {
	if idx := strings.LastIndex(productName, " - "); idx >= 0 {
		return boletoOfferPrefix + productName[idx+len(" - "):]
	}

	if match := parenthesizedSuffix.FindStringSubmatch(productName); match != nil {
		return boletoOfferPrefix + match[1]
	}

	return boletoOfferPrefix + productName
}

func offerKeyFor(event *domain.SaleEvent) string {
	switch event.Source {
	case domain.SourceBoleto, domain.SourceInstallmentBoleto:
		return offerKeyForBoletoSale(event.ProductName)
	default:
		return offerKeyForCardSale(event)
	}
}

func applyMethodSplit(quantity *int, value *float64, event *domain.SaleEvent) {
	*quantity++
	*value += event.NetAmount
}

// SummarizeProducts produz o rollup por produto (chave = nome exato, sem
// normalização adicional). Reembolsos ficam de fora: o rollup é de vendas.
func SummarizeProducts(events []*domain.SaleEvent) []*domain.ProductSummary {
	byName := make(map[string]*domain.ProductSummary)

	for _, event := range events {
		if event.IsRefund {
			continue
		}

		summary, ok := byName[event.ProductName]
		if !ok {
			summary = &domain.ProductSummary{ProductName: event.ProductName}
			byName[event.ProductName] = summary
		}

		summary.Quantity++
		summary.TotalValue += event.NetAmount

		switch event.PaymentMethod {
		case domain.PaymentMethodCard:
			applyMethodSplit(&summary.CardQuantity, &summary.CardValue, event)
		case domain.PaymentMethodBoleto, domain.PaymentMethodInstallmentBoleto:
			applyMethodSplit(&summary.BoletoQuantity, &summary.BoletoValue, event)
		}

		if event.IsCommercial {
			summary.CommercialQuantity++
			summary.CommercialValue += event.NetAmount
		}
	}

	summaries := make([]*domain.ProductSummary, 0, len(byName))
	for _, summary := range byName {
		summaries = append(summaries, summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].TotalValue > summaries[j].TotalValue
	})

	return summaries
}

// SummarizeOffers produz o rollup por oferta, com a contribuição de cada
// produto aninhada por nome.
func SummarizeOffers(events []*domain.SaleEvent) []*domain.OfferSummary {
	byKey := make(map[string]*domain.OfferSummary)

	for _, event := range events {
		if event.IsRefund {
			continue
		}

		key := offerKeyFor(event)

		summary, ok := byKey[key]
		if !ok {
			summary = &domain.OfferSummary{
				OfferKey: key,
				Products: make(map[string]*domain.OfferContribution),
			}
			byKey[key] = summary
		}

		summary.Quantity++
		summary.TotalValue += event.NetAmount

		switch event.PaymentMethod {
		case domain.PaymentMethodCard:
			applyMethodSplit(&summary.CardQuantity, &summary.CardValue, event)
		case domain.PaymentMethodBoleto, domain.PaymentMethodInstallmentBoleto:
			applyMethodSplit(&summary.BoletoQuantity, &summary.BoletoValue, event)
		}

		if event.IsCommercial {
			summary.CommercialQuantity++
			summary.CommercialValue += event.NetAmount
		}

		contribution, ok := summary.Products[event.ProductName]
		if !ok {
			contribution = &domain.OfferContribution{}
			summary.Products[event.ProductName] = contribution
		}
		contribution.Quantity++
		contribution.Value += event.NetAmount
	}

	summaries := make([]*domain.OfferSummary, 0, len(byKey))
	for _, summary := range byKey {
		summaries = append(summaries, summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].TotalValue > summaries[j].TotalValue
	})

	return summaries
}
