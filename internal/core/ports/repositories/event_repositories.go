package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_engine_app/internal/core/domain"
)

// EventReader defines read operations for accounting events.
type EventReader interface {
	// FindEventByID retrieves an event by its unique identifier.
	FindEventByID(ctx context.Context, eventID string) (*domain.AccountingEvent, error)

	// HasNonCancelledEvent reports whether a non-cancelled event already exists
	// for the given (eventType, sourceDocumentType, sourceDocumentID) tuple.
	HasNonCancelledEvent(ctx context.Context, eventType domain.EventType, sourceDocType, sourceDocID string) (bool, error)

	// ListEventsByStatus retrieves events in a given status, oldest first,
	// using token-based pagination. Intended for the external scheduler that
	// polls for pending work.
	ListEventsByStatus(ctx context.Context, status domain.EventStatus, limit int, nextToken *string) ([]domain.AccountingEvent, *string, error)
}

// EventWriter defines write operations for accounting events. Events are
// inserted once and then only have their lifecycle columns mutated; rows are
// never deleted.
type EventWriter interface {
	// SaveEvent inserts a new pending event.
	SaveEvent(ctx context.Context, event domain.AccountingEvent) error

	// ClaimEventForProcessing conditionally transitions an event to
	// PROCESSING. The guard matches PENDING and FAILED rows, plus
	// PROCESSING rows whose claim has gone stale. It returns false when the
	// guard did not match, which turns two processors racing on one event
	// into a harmless no-op for the loser.
	ClaimEventForProcessing(ctx context.Context, eventID string, claimedAt time.Time) (bool, error)

	// MarkEventProcessed records successful processing: status PROCESSED,
	// errorMessage cleared, processedAt set.
	MarkEventProcessed(ctx context.Context, eventID string, processedAt time.Time) error

	// MarkEventFailed records a failure: status FAILED, errorMessage set,
	// retryCount incremented.
	MarkEventFailed(ctx context.Context, eventID string, errorMessage string, failedAt time.Time) error

	// MarkEventCancelled transitions an event to its terminal CANCELLED state.
	MarkEventCancelled(ctx context.Context, eventID string, cancelledAt time.Time) error

	// ResetEventForRetry returns a failed event to PENDING and clears its
	// error message so it can be reprocessed.
	ResetEventForRetry(ctx context.Context, eventID string, resetAt time.Time) error
}

// EventRepositoryFacade combines all event repository interfaces.
type EventRepositoryFacade interface {
	EventReader
	EventWriter
}
