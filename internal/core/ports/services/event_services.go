package services

import (
	"context"

	"github.com/SscSPs/ledger_engine_app/internal/core/domain"
	"github.com/SscSPs/ledger_engine_app/internal/dto"
)

// EventProcessorSvc runs one event through the full processing pipeline.
type EventProcessorSvc interface {
	// ProcessEvent loads the event, dispatches to its handler, resolves
	// default accounts, gates and validates every resulting spec, and writes
	// all surviving journals atomically. It always returns a structured
	// result; the event is never left in an intermediate status.
	ProcessEvent(ctx context.Context, eventID string) dto.ProcessEventResult
}

// EventReaderSvc defines read operations for events.
type EventReaderSvc interface {
	// GetEvent retrieves an event by ID.
	GetEvent(ctx context.Context, eventID string) (*domain.AccountingEvent, error)

	// GetEventJournalEntryIDs returns the IDs of journal entries created by
	// an event, for audit/UI consumers.
	GetEventJournalEntryIDs(ctx context.Context, eventID string) ([]string, error)

	// CheckDuplicateEvent reports whether a non-cancelled event already
	// exists for the same (eventType, sourceDocumentType, sourceDocumentID)
	// tuple. Callers must check this before creating a new event for the
	// same business action.
	CheckDuplicateEvent(ctx context.Context, eventType domain.EventType, sourceDocType, sourceDocID string) (bool, error)

	// ListEvents retrieves a paginated list of events by status.
	ListEvents(ctx context.Context, params dto.ListEventsParams) (*dto.ListEventsResponse, error)
}

// EventLifecycleSvc defines the event lifecycle operations.
type EventLifecycleSvc interface {
	// CreateAndProcessEvent inserts a pending event and immediately
	// processes it. This is the recommended external entry point. It does
	// not itself deduplicate; see EventReaderSvc.CheckDuplicateEvent.
	CreateAndProcessEvent(ctx context.Context, req dto.CreateEventRequest, createdBy string) dto.CreateEventResult

	// RetryEvent resets a failed event to pending, clears its error message
	// and reprocesses it.
	RetryEvent(ctx context.Context, eventID string) dto.ProcessEventResult

	// CancelEvent transitions an event to its terminal CANCELLED state.
	// Cancelled events explicitly refuse processing.
	CancelEvent(ctx context.Context, eventID string) error
}

// EventSvcFacade combines all event-related service interfaces.
type EventSvcFacade interface {
	EventProcessorSvc
	EventReaderSvc
	EventLifecycleSvc
}
