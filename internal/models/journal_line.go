package models

import "github.com/shopspring/decimal"

// EntryType indicates whether a journal line is a Debit or a Credit.
type EntryType string

const (
	Debit  EntryType = "DEBIT"
	Credit EntryType = "CREDIT"
)

// JournalLine is the persistence model for a single line item within a
// journal entry, affecting one account.
type JournalLine struct {
	LineID         string          `db:"line_id"`
	JournalEntryID string          `db:"journal_entry_id"`
	LineNo         int             `db:"line_no"`
	AccountCode    string          `db:"account_code"`
	EntryType      EntryType       `db:"entry_type"`
	Amount         decimal.Decimal `db:"amount"` // Positive value
	Description    string          `db:"description"`
	AuditFields
}
