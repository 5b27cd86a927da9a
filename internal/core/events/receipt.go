package events

import (
	"github.com/SscSPs/ledger_engine_app/internal/core/domain"
)

// receiptReceivedHandler records money received: debit the bank account,
// credit revenue.
type receiptReceivedHandler struct{}

// NewReceiptReceivedHandler creates the RECEIPT_RECEIVED strategy.
func NewReceiptReceivedHandler() Handler {
	return &receiptReceivedHandler{}
}

var _ Handler = (*receiptReceivedHandler)(nil)

func (h *receiptReceivedHandler) EventType() domain.EventType {
	return domain.ReceiptReceived
}

func (h *receiptReceivedHandler) Validate(event domain.AccountingEvent) error {
	var p domain.ReceiptReceivedPayload
	if err := decodePayload(event, &p); err != nil {
		return err
	}
	if err := requireCompany(p.CompanyID, "companyID"); err != nil {
		return err
	}
	return requirePositiveAmount(p.Amount, "amount")
}

func (h *receiptReceivedHandler) GenerateJournals(event domain.AccountingEvent) ([]domain.JournalSpec, error) {
	var p domain.ReceiptReceivedPayload
	if err := decodePayload(event, &p); err != nil {
		return nil, err
	}

	description := p.Memo
	if description == "" {
		description = "Receipt received"
	}

	return []domain.JournalSpec{
		{
			CompanyID:   p.CompanyID,
			EntryDate:   event.EventDate,
			Description: description,
			Lines: []domain.JournalLineSpec{
				{AccountCode: p.BankAccountCode, EntryType: domain.Debit, Amount: p.Amount, Description: description},
				{AccountCode: p.RevenueAccountCode, EntryType: domain.Credit, Amount: p.Amount, Description: description},
			},
		},
	}, nil
}
