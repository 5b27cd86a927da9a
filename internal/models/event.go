package models

import "time"

// EventStatus is the lifecycle state column of an accounting event row.
type EventStatus string

const (
	EventPending    EventStatus = "PENDING"
	EventProcessing EventStatus = "PROCESSING"
	EventProcessed  EventStatus = "PROCESSED"
	EventFailed     EventStatus = "FAILED"
	EventCancelled  EventStatus = "CANCELLED"
)

// AccountingEvent is the persistence model for an accounting event.
// affected_companies maps to a text[] column, event_data to jsonb.
type AccountingEvent struct {
	EventID            string      `db:"event_id"`
	EventType          string      `db:"event_type"`
	EventDate          time.Time   `db:"event_date"`
	Status             EventStatus `db:"status"`
	AffectedCompanies  []string    `db:"affected_companies"`
	EventData          []byte      `db:"event_data"`
	SourceDocumentType string      `db:"source_document_type"`
	SourceDocumentID   string      `db:"source_document_id"`
	RetryCount         int         `db:"retry_count"`
	ErrorMessage       string      `db:"error_message"`
	ProcessedAt        *time.Time  `db:"processed_at"`
	AuditFields
}
