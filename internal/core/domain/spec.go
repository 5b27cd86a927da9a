package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalLineSpec is one debit or credit produced by an event handler before
// account resolution. AccountCode may be empty until the default account
// resolver fills it.
type JournalLineSpec struct {
	AccountCode string          `json:"accountCode"`
	EntryType   EntryType       `json:"entryType"`
	Amount      decimal.Decimal `json:"amount"` // Non-negative
	Description string          `json:"description"`
}

// JournalSpec is a handler's request for one journal entry in one company's
// books. A single event can yield specs for several companies; the atomic
// writer persists them all or none.
type JournalSpec struct {
	CompanyID   string            `json:"companyID"`
	EntryDate   time.Time         `json:"entryDate"`
	Description string            `json:"description"`
	Lines       []JournalLineSpec `json:"lines"`
}
