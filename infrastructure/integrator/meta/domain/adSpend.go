package domain

// AdAccountSpendInsight é a linha crua devolvida pela Graph API; valores
// numéricos chegam como string e são convertidos na borda do integrador.
type AdAccountSpendInsight struct {
	AccountID    string `json:"account_id"`
	AccountName  string `json:"account_name"`
	BusinessName string `json:"business_name"`
	Spend        string `json:"spend"`
	Currency     string `json:"currency"`
}

// AccountSpend é a linha já convertida, pronta para atribuição por categoria
type AccountSpend struct {
	AccountName  string  `json:"account_name"`
	BusinessName string  `json:"business_name"`
	Spend        float64 `json:"spend"`
	Currency     string  `json:"currency"`
}

// SpendReport agrega o investimento de todas as contas de anúncio no período
type SpendReport struct {
	TotalSpend        float64        `json:"total_spend"`
	TotalAccounts     int            `json:"total_accounts"`
	AccountsWithSpend []AccountSpend `json:"accounts_with_spend"`
}
