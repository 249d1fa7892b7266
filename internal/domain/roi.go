package domain

import "time"

// TrafficWindow é a janela de atribuição de investimento em tráfego derivada
// da semana de vendas selecionada (ver roi.go no pacote reporting).
type TrafficWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ROISlice é o multiplicador de retorno de um recorte (categoria ou método
// de pagamento). ROI é 0 quando o custo é 0, nunca um erro.
type ROISlice struct {
	Revenue float64 `json:"revenue"`
	Cost    float64 `json:"cost"`
	ROI     float64 `json:"roi"`
}

// NewROISlice calcula o multiplicador protegendo a divisão por zero
func NewROISlice(revenue, cost float64) ROISlice {
	roi := 0.0
	if cost != 0 {
		roi = revenue / cost
	}
	return ROISlice{Revenue: revenue, Cost: cost, ROI: roi}
}

// ROIResult junta a receita por categoria com o investimento atribuído.
// Contas de anúncio que não casam com nenhum marcador de categoria ficam de
// fora dos custos por categoria mas seguem somadas em TotalSpend.
type ROIResult struct {
	SalesWindow   *ReportFilters        `json:"sales_window"`
	TrafficWindow TrafficWindow         `json:"traffic_window"`
	TotalSpend    float64               `json:"total_spend"`
	Categories    map[Category]ROISlice `json:"categories"`
	Card          ROISlice              `json:"card"`
	Boleto        ROISlice              `json:"boleto"`
	Warnings      []SourceWarning       `json:"warnings,omitempty"`
}
