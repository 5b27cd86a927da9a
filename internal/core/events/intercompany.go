package events

import (
	"fmt"

	"github.com/SscSPs/ledger_engine_app/internal/apperrors"
	"github.com/SscSPs/ledger_engine_app/internal/core/domain"
)

// managementFeeHandler recognises a management fee in both parties' books:
// the manager books a receivable against fee revenue, the client books fee
// expense against a payable. Both specs come from one event and must land
// atomically.
type managementFeeHandler struct{}

// NewManagementFeeHandler creates the MANAGEMENT_FEE_RECOGNIZED strategy.
func NewManagementFeeHandler() Handler {
	return &managementFeeHandler{}
}

var _ Handler = (*managementFeeHandler)(nil)

func (h *managementFeeHandler) EventType() domain.EventType {
	return domain.ManagementFeeRecognized
}

func (h *managementFeeHandler) Validate(event domain.AccountingEvent) error {
	var p domain.ManagementFeePayload
	if err := decodePayload(event, &p); err != nil {
		return err
	}
	if err := requireCompany(p.ManagerCompanyID, "managerCompanyID"); err != nil {
		return err
	}
	if err := requireCompany(p.ClientCompanyID, "clientCompanyID"); err != nil {
		return err
	}
	if p.ManagerCompanyID == p.ClientCompanyID {
		return fmt.Errorf("%w: manager and client company must differ", apperrors.ErrValidation)
	}
	return requirePositiveAmount(p.Amount, "amount")
}

func (h *managementFeeHandler) GenerateJournals(event domain.AccountingEvent) ([]domain.JournalSpec, error) {
	var p domain.ManagementFeePayload
	if err := decodePayload(event, &p); err != nil {
		return nil, err
	}

	description := p.Memo
	if description == "" {
		description = fmt.Sprintf("Management fee for %s", p.ClientCompanyID)
	}

	return []domain.JournalSpec{
		{
			CompanyID:   p.ManagerCompanyID,
			EntryDate:   event.EventDate,
			Description: description,
			Lines: []domain.JournalLineSpec{
				{AccountCode: p.ReceivableAccountCode, EntryType: domain.Debit, Amount: p.Amount, Description: "Intercompany fee receivable"},
				{AccountCode: p.FeeRevenueAccountCode, EntryType: domain.Credit, Amount: p.Amount, Description: "Management fee revenue"},
			},
		},
		{
			CompanyID:   p.ClientCompanyID,
			EntryDate:   event.EventDate,
			Description: description,
			Lines: []domain.JournalLineSpec{
				{AccountCode: p.FeeExpenseAccountCode, EntryType: domain.Debit, Amount: p.Amount, Description: "Management fee expense"},
				{AccountCode: p.PayableAccountCode, EntryType: domain.Credit, Amount: p.Amount, Description: "Intercompany fee payable"},
			},
		},
	}, nil
}

// intercompanySettlementHandler clears an intercompany balance with cash:
// the payer debits its payable and credits its bank, the payee debits its
// bank and credits its receivable.
type intercompanySettlementHandler struct{}

// NewIntercompanySettlementHandler creates the INTERCOMPANY_SETTLEMENT strategy.
func NewIntercompanySettlementHandler() Handler {
	return &intercompanySettlementHandler{}
}

var _ Handler = (*intercompanySettlementHandler)(nil)

func (h *intercompanySettlementHandler) EventType() domain.EventType {
	return domain.IntercompanySettlement
}

func (h *intercompanySettlementHandler) Validate(event domain.AccountingEvent) error {
	var p domain.IntercompanySettlementPayload
	if err := decodePayload(event, &p); err != nil {
		return err
	}
	if err := requireCompany(p.PayerCompanyID, "payerCompanyID"); err != nil {
		return err
	}
	if err := requireCompany(p.PayeeCompanyID, "payeeCompanyID"); err != nil {
		return err
	}
	if p.PayerCompanyID == p.PayeeCompanyID {
		return fmt.Errorf("%w: payer and payee company must differ", apperrors.ErrValidation)
	}
	return requirePositiveAmount(p.Amount, "amount")
}

func (h *intercompanySettlementHandler) GenerateJournals(event domain.AccountingEvent) ([]domain.JournalSpec, error) {
	var p domain.IntercompanySettlementPayload
	if err := decodePayload(event, &p); err != nil {
		return nil, err
	}

	description := p.Memo
	if description == "" {
		description = fmt.Sprintf("Intercompany settlement %s -> %s", p.PayerCompanyID, p.PayeeCompanyID)
	}

	return []domain.JournalSpec{
		{
			CompanyID:   p.PayerCompanyID,
			EntryDate:   event.EventDate,
			Description: description,
			Lines: []domain.JournalLineSpec{
				{AccountCode: p.PayableAccountCode, EntryType: domain.Debit, Amount: p.Amount, Description: "Clear intercompany payable"},
				{AccountCode: p.PayerBankAccountCode, EntryType: domain.Credit, Amount: p.Amount, Description: description},
			},
		},
		{
			CompanyID:   p.PayeeCompanyID,
			EntryDate:   event.EventDate,
			Description: description,
			Lines: []domain.JournalLineSpec{
				{AccountCode: p.PayeeBankAccountCode, EntryType: domain.Debit, Amount: p.Amount, Description: description},
				{AccountCode: p.ReceivableAccountCode, EntryType: domain.Credit, Amount: p.Amount, Description: "Clear intercompany receivable"},
			},
		},
	}, nil
}
