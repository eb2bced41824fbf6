package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// AccountCode identifies an account in the chart of accounts.
type AccountCode string

const (
	AccountCash             AccountCode = "Cash"
	AccountBank             AccountCode = "Bank"
	AccountPOS              AccountCode = "POS"
	AccountReceivable       AccountCode = "AccountsReceivable"
	AccountInventory        AccountCode = "Inventory"
	AccountPayable          AccountCode = "AccountsPayable"
	AccountRetainedEarnings AccountCode = "RetainedEarnings"
	AccountSales            AccountCode = "Sales"
	AccountExpenses         AccountCode = "Expenses"
)

// Account is one registered entry of the chart of accounts.
type Account struct {
	Code        AccountCode `json:"code"`
	Name        string      `json:"name"`
	AccountType AccountType `json:"accountType"`
}

// chartOfAccounts is the closed set of accounts the ledger accepts. Order is
// the presentation order used by reports and period closes.
var chartOfAccounts = []Account{
	{Code: AccountCash, Name: "Cash", AccountType: Asset},
	{Code: AccountBank, Name: "Bank", AccountType: Asset},
	{Code: AccountPOS, Name: "POS Terminal", AccountType: Asset},
	{Code: AccountReceivable, Name: "Accounts Receivable", AccountType: Asset},
	{Code: AccountInventory, Name: "Inventory", AccountType: Asset},
	{Code: AccountPayable, Name: "Accounts Payable", AccountType: Liability},
	{Code: AccountRetainedEarnings, Name: "Retained Earnings", AccountType: Equity},
	{Code: AccountSales, Name: "Sales", AccountType: Income},
	{Code: AccountExpenses, Name: "Expenses", AccountType: Expense},
}

var chartIndex = func() map[AccountCode]Account {
	idx := make(map[AccountCode]Account, len(chartOfAccounts))
	for _, a := range chartOfAccounts {
		idx[a.Code] = a
	}
	return idx
}()

// LookupAccount returns the registered account for code.
func LookupAccount(code AccountCode) (Account, bool) {
	a, ok := chartIndex[code]
	return a, ok
}

// ChartOfAccounts returns a copy of the registered accounts in presentation order.
func ChartOfAccounts() []Account {
	out := make([]Account, len(chartOfAccounts))
	copy(out, chartOfAccounts)
	return out
}
