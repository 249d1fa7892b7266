package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	hotmartdomain "github.com/devclub/sales-dashboard-api/infrastructure/integrator/hotmart/domain"
	tmbdomain "github.com/devclub/sales-dashboard-api/infrastructure/integrator/tmb/domain"
	"github.com/devclub/sales-dashboard-api/internal/domain"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestNormalizeMillisTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		raw      int64
		expected int64
	}{
		{
			name:     "Milissegundos são convertidos para segundos",
			raw:      1718000000000,
			expected: 1718000000,
		},
		{
			name:     "Segundos passam intactos",
			raw:      1718000000,
			expected: 1718000000,
		},
		{
			name:     "Valor no limiar permanece como segundos",
			raw:      1_000_000_000_000,
			expected: 1_000_000_000_000,
		},
		{
			name:     "Zero passa intacto",
			raw:      0,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeMillisTimestamp(tt.raw))
		})
	}
}

func TestNormalizeCardTransaction(t *testing.T) {
	tx := hotmartdomain.Transaction{
		TransactionID:     "HP123",
		OrderDate:         1718000000,
		NetAmount:         floatPtr(150.50),
		AffiliateNetValue: floatPtr(15.05),
		ProductName:       "DevClub Full Stack",
		OfferName:         "Oferta Julho",
		Tracking: hotmartdomain.Tracking{
			Source:      hotmartdomain.CommercialTrackingSource,
			UTMCampaign: "campanha-julho",
		},
	}

	event := NormalizeCardTransaction(tx)

	assert.Equal(t, "HP123", event.ID)
	assert.Equal(t, int64(1718000000), event.Timestamp)
	assert.Equal(t, domain.CategoryProgramming, event.Category)
	assert.Equal(t, domain.PaymentMethodCard, event.PaymentMethod)
	assert.Equal(t, 150.50, event.NetAmount)
	assert.Equal(t, 15.05, event.AffiliateValue)
	assert.True(t, event.IsCommercial)
	assert.False(t, event.IsRefund)
	assert.Equal(t, domain.SourceCard, event.Source)
	assert.Equal(t, "Oferta Julho", event.OfferName)
	assert.Equal(t, "campanha-julho", event.UTMCampaign)
}

func TestNormalizeCardTransaction_CamposAusentes(t *testing.T) {
	tx := hotmartdomain.Transaction{
		TransactionID: "HP124",
		OrderDate:     1718000100,
		ProductName:   "Formação Gestor de IA",
	}

	event := NormalizeCardTransaction(tx)

	// Valores ausentes viram zero, nunca erro
	assert.Equal(t, 0.0, event.NetAmount)
	assert.Equal(t, 0.0, event.AffiliateValue)
	assert.False(t, event.IsCommercial)
	assert.Equal(t, domain.CategoryIA, event.Category)
}

func TestNormalizeRefund(t *testing.T) {
	refund := hotmartdomain.Refund{
		RefundID:    "RF001",
		RefundDate:  1718000200,
		NetAmount:   floatPtr(99.90),
		ProductName: "DevClub Full Stack",
	}

	event := NormalizeRefund(refund)

	assert.Equal(t, "RF001", event.ID)
	assert.True(t, event.IsRefund)
	assert.Equal(t, 99.90, event.NetAmount)
	assert.Equal(t, domain.SourceRefund, event.Source)
	assert.Equal(t, domain.CategoryProgramming, event.Category)
}

func TestNormalizeBoletoSale(t *testing.T) {
	t.Run("Boleto comum com timestamp em milissegundos", func(t *testing.T) {
		sale := tmbdomain.BoletoSale{
			ID:        "B001",
			Timestamp: 1718000000000,
			Value:     floatPtr(50.0),
			Product:   "DevClub Full Stack",
		}

		event := NormalizeBoletoSale(sale)

		assert.Equal(t, "B001", event.ID)
		assert.Equal(t, int64(1718000000), event.Timestamp)
		assert.Equal(t, domain.PaymentMethodBoleto, event.PaymentMethod)
		assert.Equal(t, domain.SourceBoleto, event.Source)
	})

	t.Run("Boleto parcelado recebe método e fonte próprios", func(t *testing.T) {
		sale := tmbdomain.BoletoSale{
			ID:          "B002",
			Timestamp:   1718000000000,
			Value:       floatPtr(120.0),
			Product:     "IA Club",
			Installment: true,
		}

		event := NormalizeBoletoSale(sale)

		assert.Equal(t, domain.PaymentMethodInstallmentBoleto, event.PaymentMethod)
		assert.Equal(t, domain.SourceInstallmentBoleto, event.Source)
		assert.Equal(t, domain.CategoryIA, event.Category)
	})

	t.Run("Linha sem ID deriva identificador do timestamp", func(t *testing.T) {
		sale := tmbdomain.BoletoSale{
			Timestamp: 1718000000000,
			Value:     floatPtr(80.0),
			Product:   "DevClub Full Stack",
		}

		event := NormalizeBoletoSale(sale)

		assert.Equal(t, "boleto-1718000000000", event.ID)
	})

	t.Run("Timestamp já em segundos passa intacto", func(t *testing.T) {
		sale := tmbdomain.BoletoSale{
			ID:        "B003",
			Timestamp: 1718000000,
			Value:     floatPtr(80.0),
			Product:   "DevClub Full Stack",
		}

		event := NormalizeBoletoSale(sale)

		assert.Equal(t, int64(1718000000), event.Timestamp)
	})
}
