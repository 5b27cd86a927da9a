package domain

import "github.com/shopspring/decimal"

// Event payloads form a tagged union keyed by EventType: the raw eventData on
// an AccountingEvent decodes into exactly one of the structs below. Account
// code fields are optional; lines without one fall through the default
// account resolver.

// ExpenseApprovedPayload accrues an approved expense in one company.
type ExpenseApprovedPayload struct {
	CompanyID          string          `json:"companyID"`
	Amount             decimal.Decimal `json:"amount"`
	ExpenseAccountCode string          `json:"expenseAccountCode,omitempty"`
	PayableAccountCode string          `json:"payableAccountCode,omitempty"`
	Memo               string          `json:"memo,omitempty"`
}

// ExpensePaidPayload settles a previously accrued expense from a bank account.
type ExpensePaidPayload struct {
	CompanyID          string          `json:"companyID"`
	Amount             decimal.Decimal `json:"amount"`
	PayableAccountCode string          `json:"payableAccountCode,omitempty"`
	BankAccountCode    string          `json:"bankAccountCode,omitempty"`
	Memo               string          `json:"memo,omitempty"`
}

// ReceiptReceivedPayload records money received into a company bank account.
type ReceiptReceivedPayload struct {
	CompanyID          string          `json:"companyID"`
	Amount             decimal.Decimal `json:"amount"`
	BankAccountCode    string          `json:"bankAccountCode,omitempty"`
	RevenueAccountCode string          `json:"revenueAccountCode,omitempty"`
	Memo               string          `json:"memo,omitempty"`
}

// ManagementFeePayload recognises a management fee between a manager company
// and a managed client company. One event posts to both sets of books.
type ManagementFeePayload struct {
	ManagerCompanyID      string          `json:"managerCompanyID"`
	ClientCompanyID       string          `json:"clientCompanyID"`
	Amount                decimal.Decimal `json:"amount"`
	FeeRevenueAccountCode string          `json:"feeRevenueAccountCode,omitempty"`
	FeeExpenseAccountCode string          `json:"feeExpenseAccountCode,omitempty"`
	ReceivableAccountCode string          `json:"receivableAccountCode,omitempty"`
	PayableAccountCode    string          `json:"payableAccountCode,omitempty"`
	Memo                  string          `json:"memo,omitempty"`
}

// IntercompanySettlementPayload clears an intercompany balance: the payer
// wires cash against its payable, the payee receives cash against its
// receivable. Both postings must land together or not at all.
type IntercompanySettlementPayload struct {
	PayerCompanyID        string          `json:"payerCompanyID"`
	PayeeCompanyID        string          `json:"payeeCompanyID"`
	Amount                decimal.Decimal `json:"amount"`
	PayerBankAccountCode  string          `json:"payerBankAccountCode,omitempty"`
	PayeeBankAccountCode  string          `json:"payeeBankAccountCode,omitempty"`
	PayableAccountCode    string          `json:"payableAccountCode,omitempty"`
	ReceivableAccountCode string          `json:"receivableAccountCode,omitempty"`
	Memo                  string          `json:"memo,omitempty"`
}

// PartnerAllocation is one partner's share within a profit allocation.
type PartnerAllocation struct {
	PartnerName        string          `json:"partnerName"`
	CapitalAccountCode string          `json:"capitalAccountCode,omitempty"`
	Amount             decimal.Decimal `json:"amount"`
}

// PartnerProfitAllocationPayload moves profit from retained earnings into
// partner capital accounts.
type PartnerProfitAllocationPayload struct {
	CompanyID         string              `json:"companyID"`
	ProfitAccountCode string              `json:"profitAccountCode,omitempty"`
	Allocations       []PartnerAllocation `json:"allocations"`
	Memo              string              `json:"memo,omitempty"`
}

// PartnerPaymentPayload records a cash distribution to a partner.
type PartnerPaymentPayload struct {
	CompanyID          string          `json:"companyID"`
	PartnerName        string          `json:"partnerName"`
	Amount             decimal.Decimal `json:"amount"`
	CapitalAccountCode string          `json:"capitalAccountCode,omitempty"`
	BankAccountCode    string          `json:"bankAccountCode,omitempty"`
	Memo               string          `json:"memo,omitempty"`
}

// OpeningBalanceLine is one explicit line of an opening balance load.
type OpeningBalanceLine struct {
	AccountCode string          `json:"accountCode"`
	EntryType   EntryType       `json:"entryType"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

// OpeningBalancePayload seeds a company's books with explicit, already
// balanced lines. The only payload that states every line verbatim.
type OpeningBalancePayload struct {
	CompanyID string               `json:"companyID"`
	Lines     []OpeningBalanceLine `json:"lines"`
	Memo      string               `json:"memo,omitempty"`
}

// ProjectServiceCompletedPayload recognises revenue for a completed project
// service ahead of invoicing.
type ProjectServiceCompletedPayload struct {
	CompanyID           string          `json:"companyID"`
	ProjectRef          string          `json:"projectRef,omitempty"`
	Amount              decimal.Decimal `json:"amount"`
	UnbilledAccountCode string          `json:"unbilledAccountCode,omitempty"`
	RevenueAccountCode  string          `json:"revenueAccountCode,omitempty"`
	Memo                string          `json:"memo,omitempty"`
}

// CapexIncurredPayload capitalises an incurred capital expenditure.
type CapexIncurredPayload struct {
	CompanyID          string          `json:"companyID"`
	Amount             decimal.Decimal `json:"amount"`
	AssetAccountCode   string          `json:"assetAccountCode,omitempty"`
	PayableAccountCode string          `json:"payableAccountCode,omitempty"`
	Memo               string          `json:"memo,omitempty"`
}
