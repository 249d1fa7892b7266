package domain

// SourceKind identifica a origem de um registro bruto de venda
type SourceKind string

const (
	SourceCard              SourceKind = "card"
	SourceRefund            SourceKind = "refund"
	SourceBoleto            SourceKind = "boleto"
	SourceInstallmentBoleto SourceKind = "installment_boleto"
	SourceAdSpend           SourceKind = "ad_spend"
)

// Category é o agrupamento de produto derivado do nome (nunca vem do provedor)
type Category string

const (
	CategoryIA          Category = "ia"
	CategoryProgramming Category = "programacao"
)

type PaymentMethod string

const (
	PaymentMethodCard              PaymentMethod = "CARD"
	PaymentMethodBoleto            PaymentMethod = "BOLETO"
	PaymentMethodInstallmentBoleto PaymentMethod = "INSTALLMENT_BOLETO"
)

// SaleEvent é a unidade normalizada de receita. Todos os provedores são
// convertidos para esta forma antes de qualquer agregação.
//
// NetAmount é sempre >= 0; para reembolsos o campo representa o valor líquido
// reembolsado e só entra nos acumuladores de reembolso, nunca no mesmo
// somatório das vendas.
type SaleEvent struct {
	ID             string        `json:"id"`
	Timestamp      int64         `json:"timestamp"` // epoch em segundos, já normalizado
	ProductName    string        `json:"product_name"`
	Category       Category      `json:"category"`
	PaymentMethod  PaymentMethod `json:"payment_method"`
	NetAmount      float64       `json:"net_amount"`
	AffiliateValue float64       `json:"affiliate_value"`
	IsCommercial   bool          `json:"is_commercial"`
	IsRefund       bool          `json:"is_refund"`
	Source         SourceKind    `json:"source"`

	// Atributos de rastreio usados na derivação da chave de oferta
	// (apenas eventos originados de cartão os carregam)
	OfferName      string `json:"offer_name,omitempty"`
	UTMCampaign    string `json:"utm_campaign,omitempty"`
	UTMContent     string `json:"utm_content,omitempty"`
	OfferCode      string `json:"offer_code,omitempty"`
	OrderOfferCode string `json:"order_offer_code,omitempty"`
}
