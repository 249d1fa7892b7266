package domain

// ProductSummary é o rollup por produto (chave = nome exato do produto,
// sem normalização além da que o provedor já aplica).
type ProductSummary struct {
	ProductName        string  `json:"product_name"`
	Quantity           int     `json:"quantity"`
	TotalValue         float64 `json:"total_value"`
	CardQuantity       int     `json:"card_quantity"`
	CardValue          float64 `json:"card_value"`
	BoletoQuantity     int     `json:"boleto_quantity"`
	BoletoValue        float64 `json:"boleto_value"`
	CommercialQuantity int     `json:"commercial_quantity"`
	CommercialValue    float64 `json:"commercial_value"`
}

// OfferContribution é a participação de um produto dentro de uma oferta
type OfferContribution struct {
	Quantity int     `json:"quantity"`
	Value    float64 `json:"value"`
}

// OfferSummary é o rollup por oferta. A chave é derivada por cadeias de
// fallback específicas de cada provedor (ver summarizer).
type OfferSummary struct {
	OfferKey           string                        `json:"offer_key"`
	Quantity           int                           `json:"quantity"`
	TotalValue         float64                       `json:"total_value"`
	CardQuantity       int                           `json:"card_quantity"`
	CardValue          float64                       `json:"card_value"`
	BoletoQuantity     int                           `json:"boleto_quantity"`
	BoletoValue        float64                       `json:"boleto_value"`
	CommercialQuantity int                           `json:"commercial_quantity"`
	CommercialValue    float64                       `json:"commercial_value"`
	Products           map[string]*OfferContribution `json:"products"`
}
