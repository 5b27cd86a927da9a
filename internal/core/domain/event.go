package domain

import (
	"encoding/json"
	"time"
)

// EventType identifies the business occurrence an accounting event records.
// The set is closed: the handler registry maps every value to exactly one
// journal-generation strategy.
type EventType string

const (
	ExpenseApproved         EventType = "EXPENSE_APPROVED"
	ExpensePaid             EventType = "EXPENSE_PAID"
	ReceiptReceived         EventType = "RECEIPT_RECEIVED"
	ManagementFeeRecognized EventType = "MANAGEMENT_FEE_RECOGNIZED"
	IntercompanySettlement  EventType = "INTERCOMPANY_SETTLEMENT"
	PartnerProfitAllocation EventType = "PARTNER_PROFIT_ALLOCATION"
	PartnerPayment          EventType = "PARTNER_PAYMENT"
	OpeningBalance          EventType = "OPENING_BALANCE"
	ProjectServiceCompleted EventType = "PROJECT_SERVICE_COMPLETED"
	CapexIncurred           EventType = "CAPEX_INCURRED"
)

// KnownEventTypes lists every member of the closed event-type enumeration.
var KnownEventTypes = []EventType{
	ExpenseApproved,
	ExpensePaid,
	ReceiptReceived,
	ManagementFeeRecognized,
	IntercompanySettlement,
	PartnerProfitAllocation,
	PartnerPayment,
	OpeningBalance,
	ProjectServiceCompleted,
	CapexIncurred,
}

// IsValidEventType reports whether t is a member of the closed enumeration.
func IsValidEventType(t EventType) bool {
	for _, known := range KnownEventTypes {
		if t == known {
			return true
		}
	}
	return false
}

// EventStatus is the lifecycle state of an accounting event.
type EventStatus string

const (
	EventPending EventStatus = "PENDING"
	// EventProcessing is a transient state claimed by the processor so two
	// concurrent callers racing on the same event cannot both post journals.
	EventProcessing EventStatus = "PROCESSING"
	EventProcessed  EventStatus = "PROCESSED"
	EventFailed     EventStatus = "FAILED"
	EventCancelled  EventStatus = "CANCELLED"
)

// AccountingEvent is an immutable record of a business occurrence that may
// cause ledger postings. It is created PENDING by an external caller, mutated
// only by the event processor, and never deleted.
type AccountingEvent struct {
	EventID            string          `json:"eventID"`
	EventType          EventType       `json:"eventType"`
	EventDate          time.Time       `json:"eventDate"`
	Status             EventStatus     `json:"status"`
	AffectedCompanies  []string        `json:"affectedCompanies"`
	EventData          json.RawMessage `json:"eventData"` // Opaque typed payload, decoded by the handler
	SourceDocumentType string          `json:"sourceDocumentType"`
	SourceDocumentID   string          `json:"sourceDocumentID"`
	RetryCount         int             `json:"retryCount"`
	ErrorMessage       string          `json:"errorMessage"`
	ProcessedAt        *time.Time      `json:"processedAt"`
	AuditFields
}
