package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntryStatus indicates the posting state of a journal entry row.
type JournalEntryStatus string

const (
	Draft  JournalEntryStatus = "DRAFT"
	Posted JournalEntryStatus = "POSTED"
)

// JournalEntry is the persistence model for one company-scoped, balanced
// journal entry.
type JournalEntry struct {
	JournalEntryID     string             `db:"journal_entry_id"`
	ReferenceNumber    string             `db:"reference_number"`
	CompanyID          string             `db:"company_id"`
	EntryDate          time.Time          `db:"entry_date"`
	Description        string             `db:"description"`
	Status             JournalEntryStatus `db:"status"`
	TotalDebit         decimal.Decimal    `db:"total_debit"`
	TotalCredit        decimal.Decimal    `db:"total_credit"`
	SourceDocumentType string             `db:"source_document_type"`
	SourceDocumentID   string             `db:"source_document_id"`
	IsAutoGenerated    bool               `db:"is_auto_generated"`
	AuditFields
}

// EventJournalEntry links a persisted journal entry back to the accounting
// event that generated it. Written in the same transaction as the entry.
type EventJournalEntry struct {
	EventID        string    `db:"event_id"`
	JournalEntryID string    `db:"journal_entry_id"`
	CreatedAt      time.Time `db:"created_at"`
}
