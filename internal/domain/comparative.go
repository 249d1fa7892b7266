package domain

import "math"

// MetricDiff é a variação de uma métrica entre as duas janelas comparadas
type MetricDiff struct {
	First    float64 `json:"first"`
	Second   float64 `json:"second"`
	Absolute float64 `json:"absolute"`
	Percent  float64 `json:"percent"`
}

// PercentDiff calcula a variação percentual de a em relação a b.
// Total por definição: base zero rende 0 quando ambos são zero e 100 quando
// só a base é zero; nunca divide por zero.
func PercentDiff(a, b float64) float64 {
	if b == 0 {
		if a == 0 {
			return 0
		}
		return 100
	}
	return ((a - b) / math.Abs(b)) * 100
}

// NewMetricDiff monta o par absoluto/percentual de uma métrica
func NewMetricDiff(first, second float64) MetricDiff {
	return MetricDiff{
		First:    first,
		Second:   second,
		Absolute: first - second,
		Percent:  PercentDiff(first, second),
	}
}

// HourComparisonEntry pareia a mesma hora do dia (0-23) nas duas janelas,
// com os recortes por método de pagamento usados nos gráficos intradiários.
type HourComparisonEntry struct {
	Hour           int     `json:"hour"`
	FirstQuantity  int     `json:"first_quantity"`
	FirstValue     float64 `json:"first_value"`
	SecondQuantity int     `json:"second_quantity"`
	SecondValue    float64 `json:"second_value"`

	FirstCardQuantity    int     `json:"first_card_quantity"`
	FirstCardValue       float64 `json:"first_card_value"`
	FirstBoletoQuantity  int     `json:"first_boleto_quantity"`
	FirstBoletoValue     float64 `json:"first_boleto_value"`
	SecondCardQuantity   int     `json:"second_card_quantity"`
	SecondCardValue      float64 `json:"second_card_value"`
	SecondBoletoQuantity int     `json:"second_boleto_quantity"`
	SecondBoletoValue    float64 `json:"second_boleto_value"`
}

// DayComparisonEntry pareia o N-ésimo dia de cada janela pela posição
// ordinal, não pela data de calendário: "dia 1" da janela A contra "dia 1"
// da janela B, para que períodos desalinhados no calendário continuem
// comparáveis.
type DayComparisonEntry struct {
	Ordinal        int     `json:"ordinal"`
	FirstKey       string  `json:"first_key"`
	SecondKey      string  `json:"second_key"`
	FirstQuantity  int     `json:"first_quantity"`
	FirstValue     float64 `json:"first_value"`
	SecondQuantity int     `json:"second_quantity"`
	SecondValue    float64 `json:"second_value"`
}

// ProductComparisonEntry compara um produto presente em pelo menos uma das
// janelas; ausência em uma janela contribui zero naquele lado.
type ProductComparisonEntry struct {
	ProductName    string     `json:"product_name"`
	FirstQuantity  int        `json:"first_quantity"`
	FirstValue     float64    `json:"first_value"`
	SecondQuantity int        `json:"second_quantity"`
	SecondValue    float64    `json:"second_value"`
	ValueDiff      MetricDiff `json:"value_diff"`
}

// ComparativeResult compara duas janelas de mesmo comprimento ("first" é a
// janela mais recente na convenção do painel).
type ComparativeResult struct {
	FirstFilters  *ReportFilters `json:"first_filters"`
	SecondFilters *ReportFilters `json:"second_filters"`

	TotalSales   MetricDiff `json:"total_sales"`
	TotalValue   MetricDiff `json:"total_value"`
	CardSales    MetricDiff `json:"card_sales"`
	CardValue    MetricDiff `json:"card_value"`
	BoletoSales  MetricDiff `json:"boleto_sales"`
	BoletoValue  MetricDiff `json:"boleto_value"`
	RefundCount  MetricDiff `json:"refund_count"`
	RefundAmount MetricDiff `json:"refund_amount"`

	Hours    []*HourComparisonEntry    `json:"hours"`
	Days     []*DayComparisonEntry     `json:"days,omitempty"`
	Products []*ProductComparisonEntry `json:"products"`

	Warnings []SourceWarning `json:"warnings,omitempty"`
}
