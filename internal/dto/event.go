package dto

import (
	"encoding/json"
	"time"

	"github.com/SscSPs/ledger_engine_app/internal/core/domain"
)

// CreateEventRequest is the body for creating (and immediately processing) an
// accounting event. EventData is the opaque per-type payload; its shape is
// validated by the registered handler, not here.
type CreateEventRequest struct {
	EventType          domain.EventType `json:"eventType" binding:"required,eventtype"`
	EventDate          time.Time        `json:"eventDate" binding:"required"`
	AffectedCompanies  []string         `json:"affectedCompanies" binding:"required,min=1,dive,required"`
	EventData          json.RawMessage  `json:"eventData" binding:"required"`
	SourceDocumentType string           `json:"sourceDocumentType,omitempty"`
	SourceDocumentID   string           `json:"sourceDocumentID,omitempty"`
}

// ProcessEventResult is the structured outcome of processing one event.
// Every processor path returns one of these; no raw error crosses the
// boundary.
type ProcessEventResult struct {
	Success          bool     `json:"success"`
	EventID          string   `json:"eventID"`
	JournalEntryIDs  []string `json:"journalEntryIDs"`
	SkippedCompanies []string `json:"skippedCompanies,omitempty"`
	Error            string   `json:"error,omitempty"`
}

// CreateEventResult is the outcome of createAndProcessEvent.
type CreateEventResult struct {
	Success         bool     `json:"success"`
	EventID         string   `json:"eventID"`
	JournalEntryIDs []string `json:"journalEntryIDs"`
	Error           string   `json:"error,omitempty"`
}

// EventResponse is the API representation of an accounting event.
type EventResponse struct {
	EventID            string           `json:"eventID"`
	EventType          domain.EventType `json:"eventType"`
	EventDate          time.Time        `json:"eventDate"`
	Status             string           `json:"status"`
	AffectedCompanies  []string         `json:"affectedCompanies"`
	EventData          json.RawMessage  `json:"eventData"`
	SourceDocumentType string           `json:"sourceDocumentType,omitempty"`
	SourceDocumentID   string           `json:"sourceDocumentID,omitempty"`
	RetryCount         int              `json:"retryCount"`
	ErrorMessage       string           `json:"errorMessage,omitempty"`
	ProcessedAt        *time.Time       `json:"processedAt,omitempty"`
	CreatedBy          string           `json:"createdBy"`
	CreatedAt          time.Time        `json:"createdAt"`
}

// ToEventResponse maps a domain event to its API representation.
func ToEventResponse(e domain.AccountingEvent) EventResponse {
	return EventResponse{
		EventID:            e.EventID,
		EventType:          e.EventType,
		EventDate:          e.EventDate,
		Status:             string(e.Status),
		AffectedCompanies:  e.AffectedCompanies,
		EventData:          e.EventData,
		SourceDocumentType: e.SourceDocumentType,
		SourceDocumentID:   e.SourceDocumentID,
		RetryCount:         e.RetryCount,
		ErrorMessage:       e.ErrorMessage,
		ProcessedAt:        e.ProcessedAt,
		CreatedBy:          e.CreatedBy,
		CreatedAt:          e.CreatedAt,
	}
}

// ListEventsParams are the query parameters for listing events by status.
type ListEventsParams struct {
	Status    string  `form:"status" binding:"required"`
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListEventsResponse is a page of events plus the token for the next page.
type ListEventsResponse struct {
	Events    []EventResponse `json:"events"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// DuplicateCheckParams are the query parameters for the duplicate-event check.
type DuplicateCheckParams struct {
	EventType          domain.EventType `form:"eventType" binding:"required,eventtype"`
	SourceDocumentType string           `form:"sourceDocumentType" binding:"required"`
	SourceDocumentID   string           `form:"sourceDocumentID" binding:"required"`
}

// DuplicateCheckResponse reports whether a non-cancelled event already exists
// for a source document tuple.
type DuplicateCheckResponse struct {
	Duplicate bool `json:"duplicate"`
}
