package domain

// BoletoSale é uma linha da planilha de boletos do provedor.
// Timestamp chega em epoch milissegundos (diferente do provedor de cartão).
type BoletoSale struct {
	ID          string   `json:"id"`
	Timestamp   int64    `json:"timestamp"`
	Value       *float64 `json:"value"`
	Product     string   `json:"product"`
	Installment bool     `json:"installment"`
	Status      string   `json:"status"`
	Channel     string   `json:"channel"`
}

// InstallmentReport é o agregado do provedor de boleto parcelado; esta fonte
// não devolve razão por evento.
type InstallmentReport struct {
	TotalGross         float64 `json:"total_gross"`
	TotalNet           float64 `json:"total_net"`
	TotalFees          float64 `json:"total_fees"`
	Count              int     `json:"count"`
	TotalPurchaseValue float64 `json:"total_purchase_value"`
}
