package domain

// Granularity define o tamanho do balde de tempo usado na agregação
type Granularity string

const (
	GranularityHourOfDay Granularity = "HOUR_OF_DAY"
	GranularityDay       Granularity = "DAY"
	GranularityMonth     Granularity = "MONTH"
)

// AggregateBucket acumula os totais de um balde de tempo. Todos os campos
// começam em zero e só crescem: reembolsos incrementam RefundValue e
// RefundQuantity no balde do próprio reembolso, sem decrementar TotalValue.
// Receita reembolsada permanece em TotalValue e também aparece em RefundValue;
// comportamento herdado do sistema de origem, pendente de confirmação do
// product owner antes de qualquer mudança.
type AggregateBucket struct {
	Key                string  `json:"key"` // hora "0".."23", data "2006-01-02" ou mês "2006-01"
	TotalValue         float64 `json:"total_value"`
	Quantity           int     `json:"quantity"`
	AffiliateValue     float64 `json:"affiliate_value"`
	RefundValue        float64 `json:"refund_value"`
	RefundQuantity     int     `json:"refund_quantity"`
	CommercialValue    float64 `json:"commercial_value"`
	CommercialQuantity int     `json:"commercial_quantity"`
	CardValue          float64 `json:"card_value"`
	CardQuantity       int     `json:"card_quantity"`
	BoletoValue        float64 `json:"boleto_value"`
	BoletoQuantity     int     `json:"boleto_quantity"`
}

// CategoryTotals tem a mesma forma de acumulador do AggregateBucket, mas
// abrange a categoria inteira no período, mais o razão das vendas individuais
// para visões de detalhe por venda.
type CategoryTotals struct {
	Category           Category     `json:"category"`
	TotalValue         float64      `json:"total_value"`
	Quantity           int          `json:"quantity"`
	AffiliateValue     float64      `json:"affiliate_value"`
	RefundValue        float64      `json:"refund_value"`
	RefundQuantity     int          `json:"refund_quantity"`
	CommercialValue    float64      `json:"commercial_value"`
	CommercialQuantity int          `json:"commercial_quantity"`
	CardValue          float64      `json:"card_value"`
	CardQuantity       int          `json:"card_quantity"`
	BoletoValue        float64      `json:"boleto_value"`
	BoletoQuantity     int          `json:"boleto_quantity"`
	Sales              []*SaleEvent `json:"sales"`
}

// InstallmentSummary é o agregado repassado pelo provedor de boleto parcelado;
// não existe razão por evento para esta fonte.
type InstallmentSummary struct {
	TotalGross         float64 `json:"total_gross"`
	TotalNet           float64 `json:"total_net"`
	TotalFees          float64 `json:"total_fees"`
	Count              int     `json:"count"`
	TotalPurchaseValue float64 `json:"total_purchase_value"`
}

// SourceWarning sinaliza uma fonte degradada dentro de um ciclo de busca.
// A contribuição da fonte vira um conjunto vazio e o painel segue parcial.
type SourceWarning struct {
	Source  SourceKind `json:"source"`
	Message string     `json:"message"`
}

// DashboardResult é a árvore completa construída por um ciclo de busca.
// Cada ciclo monta a sua do zero; nada é compartilhado entre requisições
// concorrentes, o que torna seguro descartar ciclos substituídos.
type DashboardResult struct {
	Filters            *ReportFilters               `json:"filters"`
	Buckets            []*AggregateBucket           `json:"buckets"`
	CategoryTotals     map[Category]*CategoryTotals `json:"category_totals"`
	Products           []*ProductSummary            `json:"products"`
	Offers             []*OfferSummary              `json:"offers"`
	InstallmentSummary *InstallmentSummary          `json:"installment_summary,omitempty"`
	Warnings           []SourceWarning              `json:"warnings,omitempty"`
}
