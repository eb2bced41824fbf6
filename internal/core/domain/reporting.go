package domain

// TrialBalanceRow represents a single row in a trial balance report
type TrialBalanceRow struct {
	Account     AccountCode `json:"account"`
	AccountName string      `json:"accountName"`
	AccountType AccountType `json:"accountType"`
	Debit       int64       `json:"debit"`
	Credit      int64       `json:"credit"`
	Balance     int64       `json:"balance"`
}

// AccountAmount represents an account with its net amount for financial reports
type AccountAmount struct {
	Account   AccountCode `json:"account"`
	Name      string      `json:"name"`
	NetAmount int64       `json:"netAmount"`
}

// PAndLReport represents a profit and loss report
type PAndLReport struct {
	Revenue   []AccountAmount `json:"revenue"`
	Expenses  []AccountAmount `json:"expenses"`
	NetProfit int64           `json:"netProfit"`
}

// BalanceSheetReport represents a balance sheet report
type BalanceSheetReport struct {
	Assets           []AccountAmount `json:"assets"`
	Liabilities      []AccountAmount `json:"liabilities"`
	Equity           []AccountAmount `json:"equity"`
	TotalAssets      int64           `json:"totalAssets"`
	TotalLiabilities int64           `json:"totalLiabilities"`
	TotalEquity      int64           `json:"totalEquity"`
}
