package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	metadomain "github.com/devclub/sales-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/devclub/sales-dashboard-api/internal/domain"
)

func TestMondayOfWeek(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Quarta-feira volta para a segunda", input: "2024-06-12", expected: "2024-06-10"},
		{name: "Segunda-feira permanece", input: "2024-06-10", expected: "2024-06-10"},
		{name: "Domingo volta seis dias", input: "2024-06-16", expected: "2024-06-10"},
		{name: "Virada de mês", input: "2024-06-01", expected: "2024-05-27"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, err := time.Parse(time.DateOnly, tt.input)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, MondayOfWeek(input).Format(time.DateOnly))
		})
	}
}

func TestMondayOfWeek_ZeraHorario(t *testing.T) {
	loc := saoPaulo(t)
	input := time.Date(2024, time.June, 12, 17, 45, 12, 0, loc)

	monday := MondayOfWeek(input)

	assert.Equal(t, time.Date(2024, time.June, 10, 0, 0, 0, 0, loc), monday)
}

func TestTrafficWindowForWeek(t *testing.T) {
	// Segunda 2024-06-10: duas semanas antes cai em 2024-05-27 (segunda),
	// a primeira terça em diante é 2024-05-28, e o fim é a segunda anterior.
	weekStart, err := time.Parse(time.DateOnly, "2024-06-10")
	require.NoError(t, err)

	window := TrafficWindowForWeek(weekStart)

	assert.Equal(t, "2024-05-28", window.Start.Format(time.DateOnly))
	assert.Equal(t, time.Tuesday, window.Start.Weekday())
	assert.Equal(t, "2024-06-03", window.End.Format(time.DateOnly))
}

func TestCalculateROI(t *testing.T) {
	markers := CategoryMarkers{IA: "IA CLUB", Programming: "DEVCLUB"}

	totals := map[domain.Category]*domain.CategoryTotals{
		domain.CategoryIA: {
			Category:    domain.CategoryIA,
			TotalValue:  3000,
			CardValue:   2500,
			BoletoValue: 500,
		},
		domain.CategoryProgramming: {
			Category:    domain.CategoryProgramming,
			TotalValue:  8000,
			CardValue:   6000,
			BoletoValue: 2000,
		},
	}

	spend := &metadomain.SpendReport{
		TotalSpend: 2200,
		AccountsWithSpend: []metadomain.AccountSpend{
			{AccountName: "ia club - principal", Spend: 1000},
			{AccountName: "DevClub Performance", Spend: 1000},
			{AccountName: "Conta Institucional", Spend: 200},
		},
	}

	result := CalculateROI(totals, spend, markers)

	assert.Equal(t, 2200.0, result.TotalSpend)

	ia := result.Categories[domain.CategoryIA]
	assert.Equal(t, 3000.0, ia.Revenue)
	assert.Equal(t, 1000.0, ia.Cost)
	assert.InDelta(t, 3.0, ia.ROI, 0.0001)

	programming := result.Categories[domain.CategoryProgramming]
	assert.Equal(t, 8000.0, programming.Revenue)
	assert.Equal(t, 1000.0, programming.Cost)
	assert.InDelta(t, 8.0, programming.ROI, 0.0001)

	// A conta sem marcador só aparece no investimento total
	assert.Equal(t, 8500.0, result.Card.Revenue)
	assert.Equal(t, 2200.0, result.Card.Cost)
	assert.InDelta(t, 8500.0/2200.0, result.Card.ROI, 0.0001)

	assert.Equal(t, 2500.0, result.Boleto.Revenue)
	assert.Equal(t, 2200.0, result.Boleto.Cost)
}

func TestCalculateROI_CustoZeroRendeROIZero(t *testing.T) {
	totals := map[domain.Category]*domain.CategoryTotals{
		domain.CategoryIA: {Category: domain.CategoryIA, TotalValue: 1000},
	}

	result := CalculateROI(totals, nil, CategoryMarkers{IA: "IA CLUB", Programming: "DEVCLUB"})

	assert.Equal(t, 0.0, result.TotalSpend)
	assert.Equal(t, 1000.0, result.Categories[domain.CategoryIA].Revenue)
	assert.Equal(t, 0.0, result.Categories[domain.CategoryIA].ROI)
	assert.Equal(t, 0.0, result.Card.ROI)
}

func TestNewROISlice(t *testing.T) {
	slice := domain.NewROISlice(2000, 1000)
	assert.InDelta(t, 2.0, slice.ROI, 0.0001)

	zero := domain.NewROISlice(1000, 0)
	assert.Equal(t, 0.0, zero.ROI)
}
