package events

import (
	"github.com/SscSPs/ledger_engine_app/internal/core/domain"
)

// expenseApprovedHandler accrues an approved expense: debit the expense
// account, credit the accrued payable. Account codes left empty by the
// source document fall through the default account resolver.
type expenseApprovedHandler struct{}

// NewExpenseApprovedHandler creates the EXPENSE_APPROVED strategy.
func NewExpenseApprovedHandler() Handler {
	return &expenseApprovedHandler{}
}

var _ Handler = (*expenseApprovedHandler)(nil)

func (h *expenseApprovedHandler) EventType() domain.EventType {
	return domain.ExpenseApproved
}

func (h *expenseApprovedHandler) Validate(event domain.AccountingEvent) error {
	var p domain.ExpenseApprovedPayload
	if err := decodePayload(event, &p); err != nil {
		return err
	}
	if err := requireCompany(p.CompanyID, "companyID"); err != nil {
		return err
	}
	return requirePositiveAmount(p.Amount, "amount")
}

func (h *expenseApprovedHandler) GenerateJournals(event domain.AccountingEvent) ([]domain.JournalSpec, error) {
	var p domain.ExpenseApprovedPayload
	if err := decodePayload(event, &p); err != nil {
		return nil, err
	}

	description := p.Memo
	if description == "" {
		description = "Expense approved"
	}

	return []domain.JournalSpec{
		{
			CompanyID:   p.CompanyID,
			EntryDate:   event.EventDate,
			Description: description,
			Lines: []domain.JournalLineSpec{
				{AccountCode: p.ExpenseAccountCode, EntryType: domain.Debit, Amount: p.Amount, Description: description},
				{AccountCode: p.PayableAccountCode, EntryType: domain.Credit, Amount: p.Amount, Description: "Accrued expense payable"},
			},
		},
	}, nil
}

// expensePaidHandler settles an accrued expense: debit the payable, credit
// the bank account the payment left from.
type expensePaidHandler struct{}

// NewExpensePaidHandler creates the EXPENSE_PAID strategy.
func NewExpensePaidHandler() Handler {
	return &expensePaidHandler{}
}

var _ Handler = (*expensePaidHandler)(nil)

func (h *expensePaidHandler) EventType() domain.EventType {
	return domain.ExpensePaid
}

func (h *expensePaidHandler) Validate(event domain.AccountingEvent) error {
	var p domain.ExpensePaidPayload
	if err := decodePayload(event, &p); err != nil {
		return err
	}
	if err := requireCompany(p.CompanyID, "companyID"); err != nil {
		return err
	}
	return requirePositiveAmount(p.Amount, "amount")
}

func (h *expensePaidHandler) GenerateJournals(event domain.AccountingEvent) ([]domain.JournalSpec, error) {
	var p domain.ExpensePaidPayload
	if err := decodePayload(event, &p); err != nil {
		return nil, err
	}

	description := p.Memo
	if description == "" {
		description = "Expense paid"
	}

	return []domain.JournalSpec{
		{
			CompanyID:   p.CompanyID,
			EntryDate:   event.EventDate,
			Description: description,
			Lines: []domain.JournalLineSpec{
				{AccountCode: p.PayableAccountCode, EntryType: domain.Debit, Amount: p.Amount, Description: "Settle expense payable"},
				{AccountCode: p.BankAccountCode, EntryType: domain.Credit, Amount: p.Amount, Description: description},
			},
		},
	}, nil
}
