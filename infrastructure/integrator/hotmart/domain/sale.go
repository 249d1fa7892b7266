package domain

// TrackingSource é o valor do atributo de rastreio que marca uma venda do
// time comercial; ausência do atributo significa venda orgânica.
const CommercialTrackingSource = "comercial"

// Tracking carrega os atributos de rastreio anexados à transação pelo
// checkout. Todos os campos são opcionais no provedor.
type Tracking struct {
	Source      string `json:"source"`
	UTMCampaign string `json:"utm_campaign"`
	UTMContent  string `json:"utm_content"`
	OfferCode   string `json:"offer_code"`
}

// Transaction é uma venda de cartão como devolvida pelo provedor.
// OrderDate chega em epoch segundos.
type Transaction struct {
	TransactionID     string   `json:"transaction"`
	OrderDate         int64    `json:"order_date"`
	NetAmount         *float64 `json:"net_amount"`
	AffiliateNetValue *float64 `json:"affiliate_net_value"`
	ProductName       string   `json:"product_name"`
	OfferName         string   `json:"offer_name"`
	OrderOfferCode    string   `json:"order_offer_code"`
	Tracking          Tracking `json:"tracking"`
}

// Refund é um reembolso; segue as mesmas convenções de valor líquido e
// timestamp (epoch segundos) das transações.
type Refund struct {
	RefundID    string   `json:"refund"`
	RefundDate  int64    `json:"refund_date"`
	NetAmount   *float64 `json:"net_amount"`
	ProductName string   `json:"product_name"`
}

// ProviderTotals são os agregados calculados pelo próprio provedor,
// repassados junto com o razão de transações.
type ProviderTotals struct {
	TotalValue float64 `json:"total_value"`
	Count      int     `json:"count"`
}

// SalesResponse é o envelope da consulta de vendas por período
type SalesResponse struct {
	Items  []Transaction  `json:"items"`
	Totals ProviderTotals `json:"totals"`
}

// RefundsResponse é o envelope da consulta de reembolsos por período
type RefundsResponse struct {
	Items []Refund `json:"items"`
}
