package domain

// Account é uma conta do Google Ads listada a partir da conta gerente
type Account struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Labels       []string `json:"labels"`
	CurrencyCode *string  `json:"currency_code"`
	// CanManageClients marca contas gerentes (MCC), que nunca são baixadas
	CanManageClients bool `json:"can_manage_clients"`
}

// Currency retorna o código da moeda ou vazio quando a API não informou
func (a *Account) Currency() string {
	if a == nil || a.CurrencyCode == nil {
		return ""
	}
	return *a.CurrencyCode
}
