package repositories

import (
	"context"

	"github.com/SscSPs/ledger_engine_app/internal/core/domain"
)

// JournalReader defines read operations for persisted journal entries.
type JournalReader interface {
	// FindJournalEntryByID retrieves a journal entry, including its lines.
	FindJournalEntryByID(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error)

	// FindJournalEntryIDsByEventID returns the IDs of all journal entries
	// linked to an event, for audit/traceability consumers.
	FindJournalEntryIDsByEventID(ctx context.Context, eventID string) ([]string, error)

	// FindJournalEntriesByEventID retrieves the full journal entries linked
	// to an event, including lines.
	FindJournalEntriesByEventID(ctx context.Context, eventID string) ([]domain.JournalEntry, error)
}

// JournalWriter is the atomic write boundary for journal entries. It is the
// only component that creates journal entries.
type JournalWriter interface {
	// SaveJournalEntriesAtomically persists every given entry with its lines
	// and its event link as one indivisible operation: either all entries
	// across all companies land, or none do. Reference numbers are claimed
	// from the per-company sequence inside the same transaction.
	// Returns the created journal entry IDs in input order.
	SaveJournalEntriesAtomically(ctx context.Context, eventID string, entries []domain.JournalEntry) ([]string, error)
}

// JournalRepositoryFacade combines all journal repository interfaces.
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}

// JournalRepositoryWithTx extends JournalRepositoryFacade with transaction capabilities.
type JournalRepositoryWithTx interface {
	JournalRepositoryFacade
	TransactionManager
}
