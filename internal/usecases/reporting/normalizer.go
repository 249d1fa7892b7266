package reporting

import (
	"strconv"

	hotmartdomain "github.com/devclub/sales-dashboard-api/infrastructure/integrator/hotmart/domain"
	tmbdomain "github.com/devclub/sales-dashboard-api/infrastructure/integrator/tmb/domain"
	"github.com/devclub/sales-dashboard-api/internal/domain"
)

// msEpochThreshold separa segundos de milissegundos por magnitude: qualquer
// valor acima disso é implausível como segundos (cairia séculos no futuro) e
// só pode ser milissegundos. Necessário porque alguns chamadores repassam
// timestamps de boleto já convertidos para segundos.
const msEpochThreshold = int64(1_000_000_000_000)

// normalizeMillisTimestamp converte um timestamp de fonte que trabalha em
// milissegundos para epoch segundos, tolerando valores já convertidos.
func normalizeMillisTimestamp(raw int64) int64 {
	if raw > msEpochThreshold {
		return raw / 1000
	}
	return raw
}

// floatOrZero normaliza campos numéricos ausentes para 0, nunca para erro
func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// NormalizeCardTransaction converte uma transação de cartão em SaleEvent.
// O provedor de cartão já trabalha em epoch segundos.
func NormalizeCardTransaction(tx hotmartdomain.Transaction) *domain.SaleEvent {
	return &domain.SaleEvent{
		ID:             tx.TransactionID,
		Timestamp:      tx.OrderDate,
		ProductName:    tx.ProductName,
		Category:       Classify(tx.ProductName),
		PaymentMethod:  domain.PaymentMethodCard,
		NetAmount:      floatOrZero(tx.NetAmount),
		AffiliateValue: floatOrZero(tx.AffiliateNetValue),
		IsCommercial:   tx.Tracking.Source == hotmartdomain.CommercialTrackingSource,
		IsRefund:       false,
		Source:         domain.SourceCard,
		OfferName:      tx.OfferName,
		UTMCampaign:    tx.Tracking.UTMCampaign,
		UTMContent:     tx.Tracking.UTMContent,
		OfferCode:      tx.Tracking.OfferCode,
		OrderOfferCode: tx.OrderOfferCode,
	}
}

// NormalizeRefund converte um reembolso em SaleEvent. NetAmount passa a
// representar o valor reembolsado; o agregador só o usa em contexto de
// subtração (acumuladores de reembolso).
func NormalizeRefund(refund hotmartdomain.Refund) *domain.SaleEvent {
	return &domain.SaleEvent{
		ID:            refund.RefundID,
		Timestamp:     refund.RefundDate,
		ProductName:   refund.ProductName,
		Category:      Classify(refund.ProductName),
		PaymentMethod: domain.PaymentMethodCard,
		NetAmount:     floatOrZero(refund.NetAmount),
		IsRefund:      true,
		Source:        domain.SourceRefund,
	}
}

// NormalizeBoletoSale converte uma linha da planilha de boletos em
// SaleEvent. A fonte trabalha em milissegundos; a heurística de magnitude
// cobre chamadores que repassam valores já convertidos.
func NormalizeBoletoSale(sale tmbdomain.BoletoSale) *domain.SaleEvent {
	method := domain.PaymentMethodBoleto
	source := domain.SourceBoleto
	if sale.Installment {
		method = domain.PaymentMethodInstallmentBoleto
		source = domain.SourceInstallmentBoleto
	}

	id := sale.ID
	if id == "" {
		// A planilha nem sempre traz identificador; deriva um estável do
		// próprio timestamp para manter a unicidade dentro da fonte.
		id = "boleto-" + strconv.FormatInt(sale.Timestamp, 10)
	}

	return &domain.SaleEvent{
		ID:            id,
		Timestamp:     normalizeMillisTimestamp(sale.Timestamp),
		ProductName:   sale.Product,
		Category:      Classify(sale.Product),
		PaymentMethod: method,
		NetAmount:     floatOrZero(sale.Value),
		IsRefund:      false,
		Source:        source,
	}
}
