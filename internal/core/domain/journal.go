package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType indicates whether a journal line is a Debit or a Credit.
type EntryType string

const (
	Debit  EntryType = "DEBIT"
	Credit EntryType = "CREDIT"
)

// JournalEntryStatus is the posting state of a journal entry.
type JournalEntryStatus string

const (
	Draft  JournalEntryStatus = "DRAFT"
	Posted JournalEntryStatus = "POSTED"
	// Reversal/void flows live in a separate subsystem; entries here are
	// immutable once posted.
)

// JournalEntry is a balanced set of debit/credit lines posted to one
// company's ledger. Created exclusively by the atomic journal writer.
type JournalEntry struct {
	JournalEntryID     string             `json:"journalEntryID"`
	ReferenceNumber    string             `json:"referenceNumber"` // Unique, monotonic per company
	CompanyID          string             `json:"companyID"`
	EntryDate          time.Time          `json:"entryDate"`
	Description        string             `json:"description"`
	Status             JournalEntryStatus `json:"status"`
	TotalDebit         decimal.Decimal    `json:"totalDebit"`
	TotalCredit        decimal.Decimal    `json:"totalCredit"`
	SourceDocumentType string             `json:"sourceDocumentType"`
	SourceDocumentID   string             `json:"sourceDocumentID"`
	IsAutoGenerated    bool               `json:"isAutoGenerated"`
	Lines              []JournalLine      `json:"lines"`
	AuditFields
}

// JournalLine is a single debit or credit within a JournalEntry.
type JournalLine struct {
	LineID         string          `json:"lineID"`
	JournalEntryID string          `json:"journalEntryID"`
	LineNo         int             `json:"lineNo"` // Preserves the handler's line ordering
	AccountCode    string          `json:"accountCode"`
	EntryType      EntryType       `json:"entryType"`
	Amount         decimal.Decimal `json:"amount"` // Positive value
	Description    string          `json:"description"`
	AuditFields
}
