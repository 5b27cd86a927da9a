package services

import (
	"context"

	"github.com/SscSPs/ledger_engine_app/internal/core/domain"
)

// JournalReaderSvc defines read operations for persisted journal entries.
// Journal entries are created only by the event processor's atomic writer;
// there is no journal write service.
type JournalReaderSvc interface {
	// GetJournalEntryByID retrieves a journal entry with its lines.
	GetJournalEntryByID(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error)

	// GetJournalEntriesByEventID retrieves the full journal entries an event
	// created, including lines.
	GetJournalEntriesByEventID(ctx context.Context, eventID string) ([]domain.JournalEntry, error)
}

// JournalSvcFacade is the journal service surface exposed to handlers.
type JournalSvcFacade interface {
	JournalReaderSvc
}
