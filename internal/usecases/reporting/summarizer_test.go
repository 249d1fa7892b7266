package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devclub/sales-dashboard-api/internal/domain"
)

func TestOfferKeyForCardSale(t *testing.T) {
	tests := []struct {
		name     string
		event    *domain.SaleEvent
		expected string
	}{
		{
			name:     "Nome da oferta tem prioridade máxima",
			event:    &domain.SaleEvent{OfferName: "Oferta A", UTMCampaign: "camp", OfferCode: "X1"},
			expected: "Oferta A",
		},
		{
			name:     "Sem nome cai em utm_campaign",
			event:    &domain.SaleEvent{UTMCampaign: "camp-julho", UTMContent: "conteudo"},
			expected: "camp-julho",
		},
		{
			name:     "Sem campanha cai em utm_content",
			event:    &domain.SaleEvent{UTMContent: "conteudo-x"},
			expected: "conteudo-x",
		},
		{
			name:     "Sem utm cai no código da oferta",
			event:    &domain.SaleEvent{OfferCode: "OF99"},
			expected: "OF99",
		},
		{
			name:     "Último elo é o código da oferta do pedido",
			event:    &domain.SaleEvent{OrderOfferCode: "PED01"},
			expected: "PED01",
		},
		{
			name:     "Nenhum atributo rende a sentinela",
			event:    &domain.SaleEvent{},
			expected: UnidentifiedOffer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, offerKeyForCardSale(tt.event))
		})
	}
}

func TestOfferKeyForBoletoSale(t *testing.T) {
	tests := []struct {
		name     string
		product  string
		expected string
	}{
		{
			name:     "Sufixo com hífen vira oferta TMB",
			product:  "DevClub - Turma 12",
			expected: "TMB - Turma 12",
		},
		{
			name:     "Sufixo entre parênteses vira oferta TMB",
			product:  "DevClub Full Stack (Black Friday)",
			expected: "TMB - Black Friday",
		},
		{
			name:     "Último hífen vence quando há vários",
			product:  "Combo - DevClub - Turma 15",
			expected: "TMB - Turma 15",
		},
		{
			name:     "Sem sufixo usa o nome inteiro",
			product:  "IA Club",
			expected: "TMB - IA Club",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, offerKeyForBoletoSale(tt.product))
		})
	}
}

func TestSummarizeProducts(t *testing.T) {
	events := []*domain.SaleEvent{
		{ProductName: "DevClub Full Stack", PaymentMethod: domain.PaymentMethodCard, NetAmount: 200},
		{ProductName: "DevClub Full Stack", PaymentMethod: domain.PaymentMethodBoleto, NetAmount: 50, Source: domain.SourceBoleto},
		{ProductName: "IA Club", PaymentMethod: domain.PaymentMethodCard, NetAmount: 100, IsCommercial: true},
		{ProductName: "DevClub Full Stack", PaymentMethod: domain.PaymentMethodCard, NetAmount: 80, IsRefund: true},
	}

	summaries := SummarizeProducts(events)

	require.Len(t, summaries, 2)

	// Ordenado por valor total decrescente
	assert.Equal(t, "DevClub Full Stack", summaries[0].ProductName)
	assert.Equal(t, 250.0, summaries[0].TotalValue)
	assert.Equal(t, 2, summaries[0].Quantity)
	assert.Equal(t, 200.0, summaries[0].CardValue)
	assert.Equal(t, 50.0, summaries[0].BoletoValue)

	assert.Equal(t, "IA Club", summaries[1].ProductName)
	assert.Equal(t, 100.0, summaries[1].TotalValue)
	assert.Equal(t, 1, summaries[1].CommercialQuantity)
	assert.Equal(t, 100.0, summaries[1].CommercialValue)
}

func TestSummarizeOffers(t *testing.T) {
	events := []*domain.SaleEvent{
		{ProductName: "DevClub Full Stack", OfferName: "Oferta Julho", PaymentMethod: domain.PaymentMethodCard, NetAmount: 200},
		{ProductName: "DevClub Vitalício", OfferName: "Oferta Julho", PaymentMethod: domain.PaymentMethodCard, NetAmount: 150},
		{ProductName: "DevClub - Turma 12", PaymentMethod: domain.PaymentMethodBoleto, NetAmount: 50, Source: domain.SourceBoleto},
		{ProductName: "IA Club", PaymentMethod: domain.PaymentMethodCard, NetAmount: 10},
	}

	summaries := SummarizeOffers(events)

	require.Len(t, summaries, 3)

	julho := summaries[0]
	assert.Equal(t, "Oferta Julho", julho.OfferKey)
	assert.Equal(t, 350.0, julho.TotalValue)
	assert.Equal(t, 2, julho.Quantity)
	require.Len(t, julho.Products, 2)
	assert.Equal(t, 200.0, julho.Products["DevClub Full Stack"].Value)
	assert.Equal(t, 150.0, julho.Products["DevClub Vitalício"].Value)

	boleto := summaries[1]
	assert.Equal(t, "TMB - Turma 12", boleto.OfferKey)
	assert.Equal(t, 50.0, boleto.BoletoValue)

	unidentified := summaries[2]
	assert.Equal(t, UnidentifiedOffer, unidentified.OfferKey)
	assert.Equal(t, 10.0, unidentified.TotalValue)
}

func TestSummarize_ReembolsosFicamDeFora(t *testing.T) {
	events := []*domain.SaleEvent{
		{ProductName: "DevClub Full Stack", OfferName: "Oferta Julho", PaymentMethod: domain.PaymentMethodCard, NetAmount: 100, IsRefund: true},
	}

	assert.Empty(t, SummarizeProducts(events))
	assert.Empty(t, SummarizeOffers(events))
}
