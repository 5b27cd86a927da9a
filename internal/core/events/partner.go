package events

import (
	"fmt"

	"github.com/SscSPs/ledger_engine_app/internal/apperrors"
	"github.com/SscSPs/ledger_engine_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// partnerProfitAllocationHandler moves profit out of retained earnings into
// each partner's capital account: one debit for the total, one credit per
// allocation.
type partnerProfitAllocationHandler struct{}

// NewPartnerProfitAllocationHandler creates the PARTNER_PROFIT_ALLOCATION strategy.
func NewPartnerProfitAllocationHandler() Handler {
	return &partnerProfitAllocationHandler{}
}

var _ Handler = (*partnerProfitAllocationHandler)(nil)

func (h *partnerProfitAllocationHandler) EventType() domain.EventType {
	return domain.PartnerProfitAllocation
}

func (h *partnerProfitAllocationHandler) Validate(event domain.AccountingEvent) error {
	var p domain.PartnerProfitAllocationPayload
	if err := decodePayload(event, &p); err != nil {
		return err
	}
	if err := requireCompany(p.CompanyID, "companyID"); err != nil {
		return err
	}
	if len(p.Allocations) == 0 {
		return fmt.Errorf("%w: at least one allocation is required", apperrors.ErrValidation)
	}
	for i, alloc := range p.Allocations {
		if alloc.PartnerName == "" {
			return fmt.Errorf("%w: allocation %d is missing partnerName", apperrors.ErrValidation, i)
		}
		if err := requirePositiveAmount(alloc.Amount, fmt.Sprintf("allocation %d amount", i)); err != nil {
			return err
		}
	}
	return nil
}

func (h *partnerProfitAllocationHandler) GenerateJournals(event domain.AccountingEvent) ([]domain.JournalSpec, error) {
	var p domain.PartnerProfitAllocationPayload
	if err := decodePayload(event, &p); err != nil {
		return nil, err
	}

	description := p.Memo
	if description == "" {
		description = "Partner profit allocation"
	}

	total := decimal.Zero
	lines := make([]domain.JournalLineSpec, 0, len(p.Allocations)+1)
	for _, alloc := range p.Allocations {
		total = total.Add(alloc.Amount)
		lines = append(lines, domain.JournalLineSpec{
			AccountCode: alloc.CapitalAccountCode,
			EntryType:   domain.Credit,
			Amount:      alloc.Amount,
			Description: fmt.Sprintf("Profit share: %s", alloc.PartnerName),
		})
	}

	// Debit line first so the entry reads debit-then-credits
	lines = append([]domain.JournalLineSpec{{
		AccountCode: p.ProfitAccountCode,
		EntryType:   domain.Debit,
		Amount:      total,
		Description: description,
	}}, lines...)

	return []domain.JournalSpec{
		{
			CompanyID:   p.CompanyID,
			EntryDate:   event.EventDate,
			Description: description,
			Lines:       lines,
		},
	}, nil
}

// partnerPaymentHandler records a cash distribution to a partner: debit the
// partner's capital account, credit the bank.
type partnerPaymentHandler struct{}

// NewPartnerPaymentHandler creates the PARTNER_PAYMENT strategy.
func NewPartnerPaymentHandler() Handler {
	return &partnerPaymentHandler{}
}

var _ Handler = (*partnerPaymentHandler)(nil)

func (h *partnerPaymentHandler) EventType() domain.EventType {
	return domain.PartnerPayment
}

func (h *partnerPaymentHandler) Validate(event domain.AccountingEvent) error {
	var p domain.PartnerPaymentPayload
	if err := decodePayload(event, &p); err != nil {
		return err
	}
	if err := requireCompany(p.CompanyID, "companyID"); err != nil {
		return err
	}
	if p.PartnerName == "" {
		return fmt.Errorf("%w: partnerName is required", apperrors.ErrValidation)
	}
	return requirePositiveAmount(p.Amount, "amount")
}

func (h *partnerPaymentHandler) GenerateJournals(event domain.AccountingEvent) ([]domain.JournalSpec, error) {
	var p domain.PartnerPaymentPayload
	if err := decodePayload(event, &p); err != nil {
		return nil, err
	}

	description := p.Memo
	if description == "" {
		description = fmt.Sprintf("Partner payment: %s", p.PartnerName)
	}

	return []domain.JournalSpec{
		{
			CompanyID:   p.CompanyID,
			EntryDate:   event.EventDate,
			Description: description,
			Lines: []domain.JournalLineSpec{
				{AccountCode: p.CapitalAccountCode, EntryType: domain.Debit, Amount: p.Amount, Description: description},
				{AccountCode: p.BankAccountCode, EntryType: domain.Credit, Amount: p.Amount, Description: description},
			},
		},
	}, nil
}
