package services

import (
	"context"

	"github.com/SscSPs/ledger_engine_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_engine_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_engine_app/internal/core/ports/services"
)

// journalService is the read-only surface over persisted journal entries.
// Writes go exclusively through the event processor's atomic writer.
type journalService struct {
	journalRepo portsrepo.JournalRepositoryFacade
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade) portssvc.JournalSvcFacade {
	return &journalService{journalRepo: journalRepo}
}

// Ensure journalService implements the portssvc.JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// GetJournalEntryByID retrieves a journal entry with its lines.
func (s *journalService) GetJournalEntryByID(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error) {
	return s.journalRepo.FindJournalEntryByID(ctx, journalEntryID)
}

// GetJournalEntriesByEventID retrieves the full journal entries an event
// created, including lines.
func (s *journalService) GetJournalEntriesByEventID(ctx context.Context, eventID string) ([]domain.JournalEntry, error) {
	return s.journalRepo.FindJournalEntriesByEventID(ctx, eventID)
}
