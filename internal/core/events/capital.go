package events

import (
	"fmt"

	"github.com/SscSPs/ledger_engine_app/internal/apperrors"
	"github.com/SscSPs/ledger_engine_app/internal/core/domain"
)

// openingBalanceHandler seeds a company's books from explicit lines provided
// in the payload. It is the only handler whose payload states every line
// verbatim, so account codes are mandatory here and the lines must already
// balance; the balance validator still runs afterwards as the final gate.
type openingBalanceHandler struct{}

// NewOpeningBalanceHandler creates the OPENING_BALANCE strategy.
func NewOpeningBalanceHandler() Handler {
	return &openingBalanceHandler{}
}

var _ Handler = (*openingBalanceHandler)(nil)

func (h *openingBalanceHandler) EventType() domain.EventType {
	return domain.OpeningBalance
}

func (h *openingBalanceHandler) Validate(event domain.AccountingEvent) error {
	var p domain.OpeningBalancePayload
	if err := decodePayload(event, &p); err != nil {
		return err
	}
	if err := requireCompany(p.CompanyID, "companyID"); err != nil {
		return err
	}
	if len(p.Lines) < 2 {
		return fmt.Errorf("%w: opening balance requires at least two lines", apperrors.ErrValidation)
	}
	for i, line := range p.Lines {
		if line.AccountCode == "" {
			return fmt.Errorf("%w: line %d is missing accountCode", apperrors.ErrValidation, i)
		}
		if line.EntryType != domain.Debit && line.EntryType != domain.Credit {
			return fmt.Errorf("%w: line %d has invalid entryType %q", apperrors.ErrValidation, i, line.EntryType)
		}
		if err := requirePositiveAmount(line.Amount, fmt.Sprintf("line %d amount", i)); err != nil {
			return err
		}
	}
	return nil
}

func (h *openingBalanceHandler) GenerateJournals(event domain.AccountingEvent) ([]domain.JournalSpec, error) {
	var p domain.OpeningBalancePayload
	if err := decodePayload(event, &p); err != nil {
		return nil, err
	}

	description := p.Memo
	if description == "" {
		description = "Opening balance"
	}

	lines := make([]domain.JournalLineSpec, len(p.Lines))
	for i, line := range p.Lines {
		lineDescription := line.Description
		if lineDescription == "" {
			lineDescription = description
		}
		lines[i] = domain.JournalLineSpec{
			AccountCode: line.AccountCode,
			EntryType:   line.EntryType,
			Amount:      line.Amount,
			Description: lineDescription,
		}
	}

	return []domain.JournalSpec{
		{
			CompanyID:   p.CompanyID,
			EntryDate:   event.EventDate,
			Description: description,
			Lines:       lines,
		},
	}, nil
}

// capexIncurredHandler capitalises a capital expenditure: debit the fixed
// asset account, credit the payable.
type capexIncurredHandler struct{}

// NewCapexIncurredHandler creates the CAPEX_INCURRED strategy.
func NewCapexIncurredHandler() Handler {
	return &capexIncurredHandler{}
}

var _ Handler = (*capexIncurredHandler)(nil)

func (h *capexIncurredHandler) EventType() domain.EventType {
	return domain.CapexIncurred
}

func (h *capexIncurredHandler) Validate(event domain.AccountingEvent) error {
	var p domain.CapexIncurredPayload
	if err := decodePayload(event, &p); err != nil {
		return err
	}
	if err := requireCompany(p.CompanyID, "companyID"); err != nil {
		return err
	}
	return requirePositiveAmount(p.Amount, "amount")
}

func (h *capexIncurredHandler) GenerateJournals(event domain.AccountingEvent) ([]domain.JournalSpec, error) {
	var p domain.CapexIncurredPayload
	if err := decodePayload(event, &p); err != nil {
		return nil, err
	}

	description := p.Memo
	if description == "" {
		description = "Capital expenditure incurred"
	}

	return []domain.JournalSpec{
		{
			CompanyID:   p.CompanyID,
			EntryDate:   event.EventDate,
			Description: description,
			Lines: []domain.JournalLineSpec{
				{AccountCode: p.AssetAccountCode, EntryType: domain.Debit, Amount: p.Amount, Description: description},
				{AccountCode: p.PayableAccountCode, EntryType: domain.Credit, Amount: p.Amount, Description: "Capex payable"},
			},
		},
	}, nil
}
