package events

import (
	"fmt"

	"github.com/SscSPs/ledger_engine_app/internal/core/domain"
)

// projectServiceCompletedHandler recognises revenue for a completed project
// service ahead of invoicing: debit unbilled receivables, credit service
// revenue.
type projectServiceCompletedHandler struct{}

// NewProjectServiceCompletedHandler creates the PROJECT_SERVICE_COMPLETED strategy.
func NewProjectServiceCompletedHandler() Handler {
	return &projectServiceCompletedHandler{}
}

var _ Handler = (*projectServiceCompletedHandler)(nil)

func (h *projectServiceCompletedHandler) EventType() domain.EventType {
	return domain.ProjectServiceCompleted
}

func (h *projectServiceCompletedHandler) Validate(event domain.AccountingEvent) error {
	var p domain.ProjectServiceCompletedPayload
	if err := decodePayload(event, &p); err != nil {
		return err
	}
	if err := requireCompany(p.CompanyID, "companyID"); err != nil {
		return err
	}
	return requirePositiveAmount(p.Amount, "amount")
}

func (h *projectServiceCompletedHandler) GenerateJournals(event domain.AccountingEvent) ([]domain.JournalSpec, error) {
	var p domain.ProjectServiceCompletedPayload
	if err := decodePayload(event, &p); err != nil {
		return nil, err
	}

	description := p.Memo
	if description == "" {
		if p.ProjectRef != "" {
			description = fmt.Sprintf("Service completed: %s", p.ProjectRef)
		} else {
			description = "Project service completed"
		}
	}

	return []domain.JournalSpec{
		{
			CompanyID:   p.CompanyID,
			EntryDate:   event.EventDate,
			Description: description,
			Lines: []domain.JournalLineSpec{
				{AccountCode: p.UnbilledAccountCode, EntryType: domain.Debit, Amount: p.Amount, Description: "Unbilled receivable"},
				{AccountCode: p.RevenueAccountCode, EntryType: domain.Credit, Amount: p.Amount, Description: "Service revenue"},
			},
		},
	}, nil
}
