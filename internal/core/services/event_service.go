package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/ledger_engine_app/internal/apperrors"
	"github.com/SscSPs/ledger_engine_app/internal/core/domain"
	"github.com/SscSPs/ledger_engine_app/internal/core/events"
	portsrepo "github.com/SscSPs/ledger_engine_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_engine_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine_app/internal/dto"
	"github.com/SscSPs/ledger_engine_app/internal/middleware"
)

var (
	ErrEventCancelled   = errors.New("event is cancelled and cannot be processed")
	ErrEventInFlight    = errors.New("event is currently being processed")
	ErrNoHandler        = errors.New("no handler registered for event type")
	ErrNoJournals       = errors.New("no journals generated")
	ErrCannotCancel     = errors.New("event can no longer be cancelled")
	ErrUnknownEventType = errors.New("unknown event type")
)

// eventService implements the full event surface: creation, the processing
// pipeline (see event_processor.go) and the lifecycle operations.
type eventService struct {
	eventRepo   portsrepo.EventRepositoryFacade
	journalRepo portsrepo.JournalRepositoryFacade
	settingsSvc portssvc.SettingsSvcFacade
	registry    *events.Registry
}

// NewEventService creates a new EventService.
func NewEventService(
	eventRepo portsrepo.EventRepositoryFacade,
	journalRepo portsrepo.JournalRepositoryFacade,
	settingsSvc portssvc.SettingsSvcFacade,
	registry *events.Registry,
) portssvc.EventSvcFacade {
	return &eventService{
		eventRepo:   eventRepo,
		journalRepo: journalRepo,
		settingsSvc: settingsSvc,
		registry:    registry,
	}
}

// Ensure eventService implements the portssvc.EventSvcFacade interface
var _ portssvc.EventSvcFacade = (*eventService)(nil)

// CreateAndProcessEvent inserts a pending event and immediately processes it.
// This is the recommended external entry point. Deduplication is the caller's
// responsibility via CheckDuplicateEvent; one business action must never
// spawn two event chains.
func (s *eventService) CreateAndProcessEvent(ctx context.Context, req dto.CreateEventRequest, createdBy string) dto.CreateEventResult {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !domain.IsValidEventType(req.EventType) {
		return dto.CreateEventResult{
			Success: false,
			Error:   fmt.Sprintf("%s: %s", ErrUnknownEventType.Error(), req.EventType),
		}
	}
	if len(req.AffectedCompanies) == 0 {
		return dto.CreateEventResult{
			Success: false,
			Error:   "at least one affected company is required",
		}
	}

	now := time.Now().UTC()
	event := domain.AccountingEvent{
		EventID:            uuid.NewString(),
		EventType:          req.EventType,
		EventDate:          req.EventDate,
		Status:             domain.EventPending,
		AffectedCompanies:  req.AffectedCompanies,
		EventData:          req.EventData,
		SourceDocumentType: req.SourceDocumentType,
		SourceDocumentID:   req.SourceDocumentID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     createdBy,
			LastUpdatedAt: now,
			LastUpdatedBy: createdBy,
		},
	}

	if err := s.eventRepo.SaveEvent(ctx, event); err != nil {
		logger.Error("Failed to insert accounting event", slog.String("error", err.Error()))
		return dto.CreateEventResult{
			Success: false,
			Error:   "failed to create event",
		}
	}

	logger.Info("Accounting event created",
		slog.String("event_id", event.EventID),
		slog.String("event_type", string(event.EventType)),
	)

	result := s.ProcessEvent(ctx, event.EventID)
	return dto.CreateEventResult{
		Success:         result.Success,
		EventID:         event.EventID,
		JournalEntryIDs: result.JournalEntryIDs,
		Error:           result.Error,
	}
}

// RetryEvent resets a failed event to pending, clears its error message and
// reprocesses it. Already-processed events short-circuit to the idempotent
// no-op result rather than posting twice.
func (s *eventService) RetryEvent(ctx context.Context, eventID string) dto.ProcessEventResult {
	logger := middleware.GetLoggerFromCtx(ctx)

	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return failResult(eventID, "event not found")
		}
		return failResult(eventID, fmt.Sprintf("failed to load event: %v", err))
	}

	switch event.Status {
	case domain.EventProcessed:
		return dto.ProcessEventResult{Success: true, EventID: eventID, JournalEntryIDs: []string{}}
	case domain.EventCancelled:
		return failResult(eventID, ErrEventCancelled.Error())
	case domain.EventProcessing:
		// Fall through to the claim guard: a stale claim is reclaimable, a
		// fresh one refuses the retry there.
	case domain.EventFailed:
		if err := s.eventRepo.ResetEventForRetry(ctx, eventID, time.Now().UTC()); err != nil {
			logger.Error("Failed to reset event for retry", slog.String("event_id", eventID), slog.String("error", err.Error()))
			return failResult(eventID, "failed to reset event for retry")
		}
		logger.Info("Event reset for retry", slog.String("event_id", eventID))
	}

	return s.ProcessEvent(ctx, eventID)
}

// CancelEvent transitions an event to its terminal CANCELLED state.
// Cancellation only applies before processing starts.
func (s *eventService) CancelEvent(ctx context.Context, eventID string) error {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return err
	}

	switch event.Status {
	case domain.EventCancelled:
		return nil // Already cancelled; nothing to do
	case domain.EventProcessed, domain.EventProcessing:
		return fmt.Errorf("%w: status is %s", ErrCannotCancel, event.Status)
	}

	if err := s.eventRepo.MarkEventCancelled(ctx, eventID, time.Now().UTC()); err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code == 409 {
			// The status changed between our read and the guarded update.
			return fmt.Errorf("%w: event %s changed state before cancellation", ErrCannotCancel, eventID)
		}
		return fmt.Errorf("failed to cancel event %s: %w", eventID, err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Event cancelled", slog.String("event_id", eventID))
	return nil
}

// GetEvent retrieves an event by ID.
func (s *eventService) GetEvent(ctx context.Context, eventID string) (*domain.AccountingEvent, error) {
	return s.eventRepo.FindEventByID(ctx, eventID)
}

// GetEventJournalEntryIDs returns the IDs of journal entries created by an event.
func (s *eventService) GetEventJournalEntryIDs(ctx context.Context, eventID string) ([]string, error) {
	if _, err := s.eventRepo.FindEventByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.journalRepo.FindJournalEntryIDsByEventID(ctx, eventID)
}

// CheckDuplicateEvent reports whether a non-cancelled event already exists
// for the same (eventType, sourceDocumentType, sourceDocumentID) tuple.
func (s *eventService) CheckDuplicateEvent(ctx context.Context, eventType domain.EventType, sourceDocType, sourceDocID string) (bool, error) {
	if sourceDocType == "" || sourceDocID == "" {
		return false, fmt.Errorf("%w: source document type and ID are required", apperrors.ErrValidation)
	}
	return s.eventRepo.HasNonCancelledEvent(ctx, eventType, sourceDocType, sourceDocID)
}

// ListEvents retrieves a paginated list of events by status, oldest first.
// Intended for the external scheduler that polls for pending work.
func (s *eventService) ListEvents(ctx context.Context, params dto.ListEventsParams) (*dto.ListEventsResponse, error) {
	status := domain.EventStatus(params.Status)
	switch status {
	case domain.EventPending, domain.EventProcessing, domain.EventProcessed, domain.EventFailed, domain.EventCancelled:
	default:
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, params.Status)
	}

	domainEvents, nextToken, err := s.eventRepo.ListEventsByStatus(ctx, status, params.Limit, params.NextToken)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListEventsResponse{
		Events:    make([]dto.EventResponse, len(domainEvents)),
		NextToken: nextToken,
	}
	for i, e := range domainEvents {
		resp.Events[i] = dto.ToEventResponse(e)
	}
	return resp, nil
}

func failResult(eventID, msg string) dto.ProcessEventResult {
	return dto.ProcessEventResult{Success: false, EventID: eventID, Error: msg}
}
