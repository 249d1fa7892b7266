package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devclub/sales-dashboard-api/internal/domain"
)

func windowFilters(start, end string) *domain.ReportFilters {
	startDate, _ := time.Parse(time.DateOnly, start)
	endDate, _ := time.Parse(time.DateOnly, end)

	return &domain.ReportFilters{StartDate: &startDate, EndDate: &endDate}
}

func TestValidateComparablePeriods(t *testing.T) {
	tests := []struct {
		name        string
		first       *domain.ReportFilters
		second      *domain.ReportFilters
		expectError bool
	}{
		{
			name:   "Janelas de mesmo comprimento passam",
			first:  windowFilters("2024-06-01", "2024-06-07"),
			second: windowFilters("2024-05-01", "2024-05-07"),
		},
		{
			name:        "Comprimentos diferentes são rejeitados",
			first:       windowFilters("2024-06-01", "2024-06-07"),
			second:      windowFilters("2024-05-01", "2024-05-10"),
			expectError: true,
		},
		{
			name:   "Par de dias únicos dispensa a checagem",
			first:  windowFilters("2024-06-10", "2024-06-10"),
			second: windowFilters("2024-06-03", "2024-06-03"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateComparablePeriods(tt.first, tt.second)
			if tt.expectError {
				require.Error(t, err)
				assert.True(t, IsValidationError(err))

				var mismatch *PeriodMismatchError
				require.ErrorAs(t, err, &mismatch)
				assert.Equal(t, 7, mismatch.FirstDays)
				assert.Equal(t, 10, mismatch.SecondDays)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPercentDiff(t *testing.T) {
	tests := []struct {
		name     string
		a        float64
		b        float64
		expected float64
	}{
		{name: "Crescimento", a: 2000, b: 1000, expected: 100},
		{name: "Queda", a: 500, b: 1000, expected: -50},
		{name: "Base zero com valor", a: 300, b: 0, expected: 100},
		{name: "Ambos zero", a: 0, b: 0, expected: 0},
		{name: "Base negativa usa valor absoluto", a: 50, b: -100, expected: 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, domain.PercentDiff(tt.a, tt.b), 0.0001)
		})
	}
}

func TestCompare(t *testing.T) {
	first := &WindowAggregation{
		Filters: windowFilters("2024-06-01", "2024-06-02"),
		DayBuckets: []*domain.AggregateBucket{
			{Key: "2024-06-01", Quantity: 2, TotalValue: 300, CardQuantity: 2, CardValue: 300},
			{Key: "2024-06-02", Quantity: 1, TotalValue: 100, BoletoQuantity: 1, BoletoValue: 100, RefundQuantity: 1, RefundValue: 40},
		},
		HourBuckets: []*domain.AggregateBucket{
			{Key: "9", CardQuantity: 2, CardValue: 300, BoletoQuantity: 1, BoletoValue: 100},
		},
		Products: []*domain.ProductSummary{
			{ProductName: "DevClub Full Stack", Quantity: 2, TotalValue: 300},
			{ProductName: "IA Club", Quantity: 1, TotalValue: 100},
		},
	}
	second := &WindowAggregation{
		Filters: windowFilters("2024-05-01", "2024-05-02"),
		DayBuckets: []*domain.AggregateBucket{
			{Key: "2024-05-01", Quantity: 1, TotalValue: 200, CardQuantity: 1, CardValue: 200},
			{Key: "2024-05-02"},
		},
		HourBuckets: []*domain.AggregateBucket{
			{Key: "14", CardQuantity: 1, CardValue: 200},
		},
		Products: []*domain.ProductSummary{
			{ProductName: "DevClub Full Stack", Quantity: 1, TotalValue: 200},
		},
	}

	result := Compare(first, second)

	assert.Equal(t, 3.0, result.TotalSales.First)
	assert.Equal(t, 1.0, result.TotalSales.Second)
	assert.Equal(t, 2.0, result.TotalSales.Absolute)
	assert.InDelta(t, 200.0, result.TotalSales.Percent, 0.0001)

	assert.Equal(t, 400.0, result.TotalValue.First)
	assert.InDelta(t, 100.0, result.TotalValue.Percent, 0.0001)

	assert.Equal(t, 1.0, result.BoletoSales.First)
	assert.Equal(t, 0.0, result.BoletoSales.Second)
	assert.Equal(t, 40.0, result.RefundAmount.First)

	t.Run("Série horária pareia as 24 horas", func(t *testing.T) {
		require.Len(t, result.Hours, 24)

		nine := result.Hours[9]
		assert.Equal(t, 3, nine.FirstQuantity)
		assert.Equal(t, 400.0, nine.FirstValue)
		assert.Equal(t, 0, nine.SecondQuantity)

		fourteen := result.Hours[14]
		assert.Equal(t, 0, fourteen.FirstQuantity)
		assert.Equal(t, 1, fourteen.SecondQuantity)
		assert.Equal(t, 200.0, fourteen.SecondValue)
	})

	t.Run("Série diária pareia pela posição ordinal", func(t *testing.T) {
		require.Len(t, result.Days, 2)

		assert.Equal(t, 1, result.Days[0].Ordinal)
		assert.Equal(t, "2024-06-01", result.Days[0].FirstKey)
		assert.Equal(t, "2024-05-01", result.Days[0].SecondKey)
		assert.Equal(t, 300.0, result.Days[0].FirstValue)
		assert.Equal(t, 200.0, result.Days[0].SecondValue)

		assert.Equal(t, 2, result.Days[1].Ordinal)
		assert.Equal(t, 0.0, result.Days[1].SecondValue)
	})

	t.Run("Produtos comparam a união das janelas", func(t *testing.T) {
		require.Len(t, result.Products, 2)

		assert.Equal(t, "DevClub Full Stack", result.Products[0].ProductName)
		assert.Equal(t, 300.0, result.Products[0].FirstValue)
		assert.Equal(t, 200.0, result.Products[0].SecondValue)
		assert.InDelta(t, 50.0, result.Products[0].ValueDiff.Percent, 0.0001)

		assert.Equal(t, "IA Club", result.Products[1].ProductName)
		assert.Equal(t, 0, result.Products[1].SecondQuantity)
		assert.Equal(t, 0.0, result.Products[1].SecondValue)
	})
}

func TestCompare_DiaUnicoNaoProduzSerieDiaria(t *testing.T) {
	first := &WindowAggregation{Filters: windowFilters("2024-06-10", "2024-06-10")}
	second := &WindowAggregation{Filters: windowFilters("2024-06-03", "2024-06-03")}

	result := Compare(first, second)

	assert.Nil(t, result.Days)
	assert.Len(t, result.Hours, 24)
}
