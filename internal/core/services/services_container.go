package services

import (
	"github.com/SscSPs/ledger_engine_app/internal/core/events"
	portsrepo "github.com/SscSPs/ledger_engine_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_engine_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Settings first: the event service gates and resolves through it
	container.Settings = NewSettingsService(repos.SettingsRepo, SystemDefaults{
		DebitAccountCode:  cfg.DefaultDebitAccount,
		CreditAccountCode: cfg.DefaultCreditAccount,
	})

	container.Journal = NewJournalService(repos.JournalRepo)

	// The handler registry is static; the closed event-type enumeration is
	// fully covered at construction time.
	registry := events.NewRegistry()
	container.Event = NewEventService(repos.EventRepo, repos.JournalRepo, container.Settings, registry)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.EventSvcFacade    = (*eventService)(nil)
	_ portssvc.SettingsSvcFacade = (*settingsService)(nil)
	_ portssvc.JournalSvcFacade  = (*journalService)(nil)
)
