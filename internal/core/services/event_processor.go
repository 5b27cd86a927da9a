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
	"github.com/SscSPs/ledger_engine_app/internal/dto"
	"github.com/SscSPs/ledger_engine_app/internal/middleware"
	"github.com/SscSPs/ledger_engine_app/internal/utils/accounting"
)

// ProcessEvent runs one event through the full pipeline: load, claim,
// dispatch to the handler, gate per company, resolve default accounts,
// validate balance, and write all surviving journals atomically. Every path
// returns a structured result and leaves the event in a definite status;
// no raw error or panic escapes.
func (s *eventService) ProcessEvent(ctx context.Context, eventID string) (result dto.ProcessEventResult) {
	logger := middleware.GetLoggerFromCtx(ctx).With(slog.String("event_id", eventID))

	// Every path out of the processor is a structured result, panics
	// included. A panic before the claim leaves the event PENDING or FAILED
	// and retryable; after the claim the failure mark ends it FAILED.
	defer func() {
		if r := recover(); r != nil {
			msg := fmt.Sprintf("unexpected error: %v", r)
			logger.Error("Panic while processing event", slog.String("error", msg))
			s.markFailed(ctx, eventID, msg)
			result = failResult(eventID, msg)
		}
	}()

	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return failResult(eventID, "event not found")
		}
		logger.Error("Failed to load event", slog.String("error", err.Error()))
		return failResult(eventID, fmt.Sprintf("failed to load event: %v", err))
	}

	switch event.Status {
	case domain.EventProcessed:
		// Idempotent no-op: reprocessing a processed event creates nothing.
		logger.Info("Event already processed, skipping")
		return dto.ProcessEventResult{Success: true, EventID: eventID, JournalEntryIDs: []string{}}
	case domain.EventCancelled:
		return failResult(eventID, ErrEventCancelled.Error())
	}

	// Optimistic claim: PENDING/FAILED -> PROCESSING. A PROCESSING row whose
	// claim has gone stale (a processor died between claiming and completing)
	// may also be reclaimed; a fresh claim held by a concurrent processor
	// loses the race here and backs off.
	claimed, err := s.eventRepo.ClaimEventForProcessing(ctx, eventID, time.Now().UTC())
	if err != nil {
		logger.Error("Failed to claim event", slog.String("error", err.Error()))
		return failResult(eventID, fmt.Sprintf("failed to claim event: %v", err))
	}
	if !claimed {
		// Someone else got it between our read and our claim.
		latest, err := s.eventRepo.FindEventByID(ctx, eventID)
		if err == nil && latest.Status == domain.EventProcessed {
			return dto.ProcessEventResult{Success: true, EventID: eventID, JournalEntryIDs: []string{}}
		}
		return failResult(eventID, ErrEventInFlight.Error())
	}

	return s.processClaimed(ctx, logger, *event)
}

// processClaimed runs the handler pipeline for an event already claimed as
// PROCESSING.
func (s *eventService) processClaimed(ctx context.Context, logger *slog.Logger, event domain.AccountingEvent) dto.ProcessEventResult {
	handler, ok := s.registry.Lookup(event.EventType)
	if !ok {
		// Configuration defect, not auto-retried.
		msg := fmt.Sprintf("%s: %s", ErrNoHandler.Error(), event.EventType)
		logger.Error("No handler registered", slog.String("event_type", string(event.EventType)))
		return s.markFailed(ctx, event.EventID, msg)
	}

	if err := handler.Validate(event); err != nil {
		logger.Warn("Event data failed validation", slog.String("error", err.Error()))
		return s.markFailed(ctx, event.EventID, err.Error())
	}

	specs, err := handler.GenerateJournals(event)
	if err != nil {
		logger.Error("Handler failed to generate journals", slog.String("error", err.Error()))
		return s.markFailed(ctx, event.EventID, err.Error())
	}
	if len(specs) == 0 {
		// An event that reaches this stage must always produce at least one
		// spec; an empty set is a modeling defect in the handler.
		logger.Error("Handler generated no journals")
		return s.markFailed(ctx, event.EventID, ErrNoJournals.Error())
	}

	// Gate each spec by its company's settings. Disabled companies are
	// skipped, not failed.
	surviving := make([]domain.JournalSpec, 0, len(specs))
	autoPost := make(map[string]bool, len(specs))
	var skipped []string
	for _, spec := range specs {
		setting, err := s.settingsSvc.GetCompanyEventSetting(ctx, spec.CompanyID, event.EventType)
		if err != nil {
			logger.Error("Failed to load company event setting", slog.String("company_id", spec.CompanyID), slog.String("error", err.Error()))
			return s.markFailed(ctx, event.EventID, fmt.Sprintf("failed to load settings for company %s: %v", spec.CompanyID, err))
		}
		if !setting.IsEnabled {
			skipped = append(skipped, spec.CompanyID)
			continue
		}
		autoPost[spec.CompanyID] = setting.AutoPost
		surviving = append(surviving, spec)
	}

	if len(surviving) == 0 {
		// Every company opted out: that is a successful outcome with zero
		// journals, reported distinctly for observability.
		logger.Info("All companies skipped by settings; event processed with no journals",
			slog.Any("skipped_companies", skipped))
		return s.markProcessed(ctx, event.EventID, nil, skipped)
	}

	// Resolve default accounts, then validate every spec before any write.
	for i, spec := range surviving {
		resolved, err := s.settingsSvc.ApplyDefaultAccounts(ctx, spec, event.EventType)
		if err != nil {
			logger.Error("Default account resolution failed", slog.String("company_id", spec.CompanyID), slog.String("error", err.Error()))
			return s.markFailed(ctx, event.EventID, fmt.Sprintf("failed to resolve default accounts for company %s: %v", spec.CompanyID, err))
		}
		surviving[i] = resolved
	}

	for _, spec := range surviving {
		if err := accounting.ValidateSpecBalance(spec); err != nil {
			// Any unbalanced spec aborts the whole event before any write.
			logger.Error("Journal spec failed balance validation", slog.String("company_id", spec.CompanyID), slog.String("error", err.Error()))
			return s.markFailed(ctx, event.EventID, err.Error())
		}
	}

	entries := make([]domain.JournalEntry, len(surviving))
	for i, spec := range surviving {
		entries[i] = s.buildJournalEntry(event, spec, autoPost[spec.CompanyID])
	}

	journalEntryIDs, err := s.journalRepo.SaveJournalEntriesAtomically(ctx, event.EventID, entries)
	if err != nil {
		logger.Error("Atomic journal write failed; nothing persisted", slog.String("error", err.Error()))
		return s.markFailed(ctx, event.EventID, fmt.Sprintf("failed to persist journals: %v", err))
	}

	logger.Info("Event processed",
		slog.Int("journal_count", len(journalEntryIDs)),
		slog.Any("skipped_companies", skipped),
	)
	return s.markProcessed(ctx, event.EventID, journalEntryIDs, skipped)
}

// buildJournalEntry turns a resolved, validated spec into the entry the
// atomic writer persists. The reference number is left empty; it is claimed
// inside the write transaction.
func (s *eventService) buildJournalEntry(event domain.AccountingEvent, spec domain.JournalSpec, autoPost bool) domain.JournalEntry {
	now := time.Now().UTC()
	totalDebit, totalCredit := accounting.SpecTotals(spec)

	status := domain.Draft
	if autoPost {
		status = domain.Posted
	}

	entryID := uuid.NewString()
	lines := make([]domain.JournalLine, len(spec.Lines))
	for i, lineSpec := range spec.Lines {
		lines[i] = domain.JournalLine{
			LineID:         uuid.NewString(),
			JournalEntryID: entryID,
			LineNo:         i + 1,
			AccountCode:    lineSpec.AccountCode,
			EntryType:      lineSpec.EntryType,
			Amount:         lineSpec.Amount,
			Description:    lineSpec.Description,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     event.CreatedBy,
				LastUpdatedAt: now,
				LastUpdatedBy: event.CreatedBy,
			},
		}
	}

	return domain.JournalEntry{
		JournalEntryID:     entryID,
		CompanyID:          spec.CompanyID,
		EntryDate:          spec.EntryDate,
		Description:        spec.Description,
		Status:             status,
		TotalDebit:         totalDebit,
		TotalCredit:        totalCredit,
		SourceDocumentType: event.SourceDocumentType,
		SourceDocumentID:   event.SourceDocumentID,
		IsAutoGenerated:    true,
		Lines:              lines,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     event.CreatedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: event.CreatedBy,
		},
	}
}

// markFailed records the failure on the event and returns the matching
// result. Marking failure is best-effort: if even that write fails, the
// original message still reaches the caller.
func (s *eventService) markFailed(ctx context.Context, eventID, msg string) dto.ProcessEventResult {
	if err := s.eventRepo.MarkEventFailed(ctx, eventID, msg, time.Now().UTC()); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to mark event as failed",
			slog.String("event_id", eventID), slog.String("error", err.Error()))
	}
	return failResult(eventID, msg)
}

// markProcessed records successful processing: errorMessage cleared,
// processedAt set.
func (s *eventService) markProcessed(ctx context.Context, eventID string, journalEntryIDs, skipped []string) dto.ProcessEventResult {
	if journalEntryIDs == nil {
		journalEntryIDs = []string{}
	}
	if err := s.eventRepo.MarkEventProcessed(ctx, eventID, time.Now().UTC()); err != nil {
		// Journals are committed but the event still reads PROCESSING. The
		// claim guard holds retries off until the staleness window lapses,
		// so this needs an operator before then. Surface it loudly.
		middleware.GetLoggerFromCtx(ctx).Error("Journals persisted but failed to mark event processed",
			slog.String("event_id", eventID), slog.String("error", err.Error()))
		return dto.ProcessEventResult{
			Success:          false,
			EventID:          eventID,
			JournalEntryIDs:  journalEntryIDs,
			SkippedCompanies: skipped,
			Error:            fmt.Sprintf("journals persisted but failed to record completion: %v", err),
		}
	}
	return dto.ProcessEventResult{
		Success:          true,
		EventID:          eventID,
		JournalEntryIDs:  journalEntryIDs,
		SkippedCompanies: skipped,
	}
}
