package dto

import (
	"time"

	"github.com/SscSPs/ledger_engine_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalLineResponse is the API representation of one journal line.
type JournalLineResponse struct {
	LineID      string          `json:"lineID"`
	LineNo      int             `json:"lineNo"`
	AccountCode string          `json:"accountCode"`
	EntryType   string          `json:"entryType"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

// JournalEntryResponse is the API representation of a persisted journal entry.
type JournalEntryResponse struct {
	JournalEntryID     string                `json:"journalEntryID"`
	ReferenceNumber    string                `json:"referenceNumber"`
	CompanyID          string                `json:"companyID"`
	EntryDate          time.Time             `json:"entryDate"`
	Description        string                `json:"description,omitempty"`
	Status             string                `json:"status"`
	TotalDebit         decimal.Decimal       `json:"totalDebit"`
	TotalCredit        decimal.Decimal       `json:"totalCredit"`
	SourceDocumentType string                `json:"sourceDocumentType,omitempty"`
	SourceDocumentID   string                `json:"sourceDocumentID,omitempty"`
	IsAutoGenerated    bool                  `json:"isAutoGenerated"`
	Lines              []JournalLineResponse `json:"lines"`
}

// ToJournalEntryResponse maps a domain journal entry to its API representation.
func ToJournalEntryResponse(j domain.JournalEntry) JournalEntryResponse {
	lines := make([]JournalLineResponse, len(j.Lines))
	for i, l := range j.Lines {
		lines[i] = JournalLineResponse{
			LineID:      l.LineID,
			LineNo:      l.LineNo,
			AccountCode: l.AccountCode,
			EntryType:   string(l.EntryType),
			Amount:      l.Amount,
			Description: l.Description,
		}
	}
	return JournalEntryResponse{
		JournalEntryID:     j.JournalEntryID,
		ReferenceNumber:    j.ReferenceNumber,
		CompanyID:          j.CompanyID,
		EntryDate:          j.EntryDate,
		Description:        j.Description,
		Status:             string(j.Status),
		TotalDebit:         j.TotalDebit,
		TotalCredit:        j.TotalCredit,
		SourceDocumentType: j.SourceDocumentType,
		SourceDocumentID:   j.SourceDocumentID,
		IsAutoGenerated:    j.IsAutoGenerated,
		Lines:              lines,
	}
}

// EventJournalsResponse lists the journal entry IDs created by one event.
type EventJournalsResponse struct {
	EventID         string   `json:"eventID"`
	JournalEntryIDs []string `json:"journalEntryIDs"`
}
