package reporting

import (
	"strings"
	"time"

	metadomain "github.com/devclub/sales-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/devclub/sales-dashboard-api/internal/domain"
)

// TrafficWindowForWeek deriva a janela de atribuição de investimento a
// partir da segunda-feira da semana de vendas: a terça até a segunda
// seguinte, duas semanas de calendário antes. O deslocamento modela o
// intervalo típico entre o anúncio e a matrícula resultante:
//
//	twoWeeksAgo  = weekStart - 14d
//	trafficStart = primeira terça em ou após twoWeeksAgo
//	trafficEnd   = weekStart - 7d
func TrafficWindowForWeek(weekStart time.Time) domain.TrafficWindow {
	twoWeeksAgo := weekStart.AddDate(0, 0, -14)

	trafficStart := twoWeeksAgo
	for trafficStart.Weekday() != time.Tuesday {
		trafficStart = trafficStart.AddDate(0, 0, 1)
	}

	trafficEnd := weekStart.AddDate(0, 0, -7)

	return domain.TrafficWindow{Start: trafficStart, End: trafficEnd}
}

// MondayOfWeek normaliza uma data qualquer para a segunda-feira da sua
// semana ISO (segunda a domingo).
func MondayOfWeek(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	for t.Weekday() != time.Monday {
		t = t.AddDate(0, 0, -1)
	}
	return t
}

// CategoryMarkers são os marcadores de nome de conta usados na atribuição
// de custo por categoria (casamento por substring, sem distinção de caixa).
type CategoryMarkers struct {
	IA          string
	Programming string
}

// CalculateROI junta a receita por categoria com o investimento atribuído.
// Contas que não casam com nenhum marcador não contribuem para o custo de
// categoria alguma, mas permanecem no total investido. Divisão por zero
// nunca ocorre: custo zero rende multiplicador zero.
func CalculateROI(
	totals map[domain.Category]*domain.CategoryTotals,
	spend *metadomain.SpendReport,
	markers CategoryMarkers,
) *domain.ROIResult {
	var iaCost, programmingCost, totalSpend float64

	if spend != nil {
		totalSpend = spend.TotalSpend

		iaMarker := strings.ToUpper(markers.IA)
		programmingMarker := strings.ToUpper(markers.Programming)

		for _, account := range spend.AccountsWithSpend {
			name := strings.ToUpper(account.AccountName)
			switch {
			case iaMarker != "" && strings.Contains(name, iaMarker):
				iaCost += account.Spend
			case programmingMarker != "" && strings.Contains(name, programmingMarker):
				programmingCost += account.Spend
			}
		}
	}

	var iaRevenue, programmingRevenue, cardRevenue, boletoRevenue float64
	if totals != nil {
		if ia := totals[domain.CategoryIA]; ia != nil {
			iaRevenue = ia.TotalValue
			cardRevenue += ia.CardValue
			boletoRevenue += ia.BoletoValue
		}
		if programming := totals[domain.CategoryProgramming]; programming != nil {
			programmingRevenue = programming.TotalValue
			cardRevenue += programming.CardValue
			boletoRevenue += programming.BoletoValue
		}
	}

	return &domain.ROIResult{
		TotalSpend: totalSpend,
		Categories: map[domain.Category]domain.ROISlice{
			domain.CategoryIA:          domain.NewROISlice(iaRevenue, iaCost),
			domain.CategoryProgramming: domain.NewROISlice(programmingRevenue, programmingCost),
		},
		// Recortes por método usam o investimento total como custo: o
		// provedor de anúncios não separa campanhas por meio de pagamento.
		Card:   domain.NewROISlice(cardRevenue, totalSpend),
		Boleto: domain.NewROISlice(boletoRevenue, totalSpend),
	}
}
